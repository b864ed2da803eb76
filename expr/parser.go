package expr

import (
	"fmt"

	"github.com/rulego/formulaengine/types"
)

// ParseExpression parses expression token list to AST
func ParseExpression(tokens []string) (*ExprNode, error) {
	if len(tokens) == 0 {
		return nil, types.NewExpressionError("empty token list", nil)
	}

	node, remaining, err := parseAdditiveExpression(tokens)
	if err != nil {
		return nil, err
	}

	// Trailing tokens mean the expression did not parse as a whole
	if len(remaining) > 0 {
		return nil, types.NewExpressionError(fmt.Sprintf("unexpected token: %s", remaining[0]), nil)
	}

	return node, nil
}

// parseAdditiveExpression parses addition and subtraction
func parseAdditiveExpression(tokens []string) (*ExprNode, []string, error) {
	left, remaining, err := parseMultiplicativeExpression(tokens)
	if err != nil {
		return nil, nil, err
	}

	for len(remaining) > 0 && (remaining[0] == "+" || remaining[0] == "-") {
		op := remaining[0]
		right, newRemaining, err := parseMultiplicativeExpression(remaining[1:])
		if err != nil {
			return nil, nil, err
		}

		left = &ExprNode{
			Type:  TypeOperator,
			Value: op,
			Left:  left,
			Right: right,
		}
		remaining = newRemaining
	}

	return left, remaining, nil
}

// parseMultiplicativeExpression parses multiplication, division, floor division and modulo
func parseMultiplicativeExpression(tokens []string) (*ExprNode, []string, error) {
	left, remaining, err := parseUnaryExpression(tokens)
	if err != nil {
		return nil, nil, err
	}

	for len(remaining) > 0 && (remaining[0] == "*" || remaining[0] == "/" || remaining[0] == "//" || remaining[0] == "%") {
		op := remaining[0]
		right, newRemaining, err := parseUnaryExpression(remaining[1:])
		if err != nil {
			return nil, nil, err
		}

		left = &ExprNode{
			Type:  TypeOperator,
			Value: op,
			Left:  left,
			Right: right,
		}
		remaining = newRemaining
	}

	return left, remaining, nil
}

// parseUnaryExpression parses unary plus and minus.
// Unary minus binds looser than power, so -2 ** 2 parses as -(2 ** 2).
func parseUnaryExpression(tokens []string) (*ExprNode, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, types.NewExpressionError("unexpected end of expression", nil)
	}

	if tokens[0] == "-" {
		operand, remaining, err := parseUnaryExpression(tokens[1:])
		if err != nil {
			return nil, nil, err
		}

		return &ExprNode{
			Type:  TypeOperator,
			Value: OpNegate,
			Right: operand,
		}, remaining, nil
	}

	// Unary plus is a no-op
	if tokens[0] == "+" {
		return parseUnaryExpression(tokens[1:])
	}

	return parsePowerExpression(tokens)
}

// parsePowerExpression parses power expression.
// Right associative, and the exponent is a unary expression so that 2 ** -1
// parses without parentheses.
func parsePowerExpression(tokens []string) (*ExprNode, []string, error) {
	left, remaining, err := parsePrimaryExpression(tokens)
	if err != nil {
		return nil, nil, err
	}

	if len(remaining) > 0 && (remaining[0] == "**" || remaining[0] == "^") {
		right, newRemaining, err := parseUnaryExpression(remaining[1:])
		if err != nil {
			return nil, nil, err
		}

		// ^ is an alias; the AST always carries the canonical form
		return &ExprNode{
			Type:  TypeOperator,
			Value: "**",
			Left:  left,
			Right: right,
		}, newRemaining, nil
	}

	return left, remaining, nil
}

// parsePrimaryExpression parses primary expression
func parsePrimaryExpression(tokens []string) (*ExprNode, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, types.NewExpressionError("unexpected end of expression", nil)
	}

	token := tokens[0]

	// Handle parentheses
	if token == "(" {
		inner, remaining, err := parseAdditiveExpression(tokens[1:])
		if err != nil {
			return nil, nil, err
		}

		if len(remaining) == 0 || remaining[0] != ")" {
			return nil, nil, types.NewExpressionError("missing closing parenthesis", nil)
		}

		return &ExprNode{
			Type: TypeParenthesis,
			Left: inner,
		}, remaining[1:], nil
	}

	// Handle numbers
	if isNumber(token) {
		return &ExprNode{
			Type:  TypeNumber,
			Value: token,
		}, tokens[1:], nil
	}

	// Handle function calls
	if isIdentifier(token) && len(tokens) > 1 && tokens[1] == "(" {
		return parseFunctionCall(tokens)
	}

	// Handle identifier references
	if isIdentifier(token) {
		return &ExprNode{
			Type:  TypeIdentifier,
			Value: token,
		}, tokens[1:], nil
	}

	return nil, nil, types.NewExpressionError(fmt.Sprintf("unexpected token: %s", token), nil)
}

// parseFunctionCall parses function call
func parseFunctionCall(tokens []string) (*ExprNode, []string, error) {
	funcName := tokens[0]
	remaining := tokens[2:] // Skip function name and opening parenthesis

	var args []*ExprNode

	// Handle empty parameter list
	if len(remaining) > 0 && remaining[0] == ")" {
		return &ExprNode{
			Type:  TypeFunction,
			Value: funcName,
			Args:  args,
		}, remaining[1:], nil
	}

	// Parse arguments
	for {
		arg, newRemaining, err := parseAdditiveExpression(remaining)
		if err != nil {
			return nil, nil, err
		}

		args = append(args, arg)
		remaining = newRemaining

		if len(remaining) == 0 {
			return nil, nil, types.NewExpressionError("missing closing parenthesis in function call", nil)
		}

		if remaining[0] == ")" {
			break
		}

		if remaining[0] != "," {
			return nil, nil, types.NewExpressionError("expected ',' or ')' in function call", nil)
		}

		remaining = remaining[1:] // Skip comma
	}

	return &ExprNode{
		Type:  TypeFunction,
		Value: funcName,
		Args:  args,
	}, remaining[1:], nil // Skip closing parenthesis
}
