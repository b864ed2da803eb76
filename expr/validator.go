package expr

import (
	"fmt"

	"github.com/rulego/formulaengine/functions"
	"github.com/rulego/formulaengine/types"
)

// ValidateExpression checks expression text without evaluating it.
// Returns nil when the expression tokenizes, parses and passes the
// structural walk; identifier bindings are not checked because they
// are only known at evaluation time.
func ValidateExpression(exprStr string) error {
	tokens, err := tokenize(exprStr)
	if err != nil {
		return err
	}

	root, err := ParseExpression(tokens)
	if err != nil {
		return err
	}

	return validateNode(root)
}

// validateNode walks the AST and rejects structures that cannot evaluate:
// malformed literals, unknown functions, wrong argument counts, operator
// nodes with missing operands.
func validateNode(node *ExprNode) error {
	if node == nil {
		return types.NewExpressionError("null expression node", nil)
	}

	switch node.Type {
	case TypeNumber:
		if !isNumber(node.Value) {
			return types.NewExpressionError(fmt.Sprintf("invalid number: %s", node.Value), nil)
		}
		return nil

	case TypeIdentifier:
		if !isIdentifier(node.Value) {
			return types.NewExpressionError(fmt.Sprintf("invalid identifier: %s", node.Value), nil)
		}
		return nil

	case TypeOperator:
		if node.Value == OpNegate {
			if node.Right == nil {
				return types.NewExpressionError("negation missing operand", nil)
			}
			return validateNode(node.Right)
		}

		if _, ok := operatorPrecedence[node.Value]; !ok {
			return types.NewExpressionError(fmt.Sprintf("unknown operator: %s", node.Value), nil)
		}
		if node.Left == nil || node.Right == nil {
			return types.NewExpressionError(fmt.Sprintf("operator %s missing operand", node.Value), nil)
		}
		if err := validateNode(node.Left); err != nil {
			return err
		}
		return validateNode(node.Right)

	case TypeFunction:
		fn, exists := functions.Get(node.Value)
		if !exists {
			return types.NewUnknownFunctionError(node.Value)
		}

		// Arity is declared on the function, so it can be checked without
		// evaluating the arguments
		placeholder := make([]interface{}, len(node.Args))
		if err := fn.Validate(placeholder); err != nil {
			return types.NewExpressionError(fmt.Sprintf("invalid call to %s", node.Value), err)
		}

		for _, arg := range node.Args {
			if err := validateNode(arg); err != nil {
				return err
			}
		}
		return nil

	case TypeParenthesis:
		if node.Left == nil {
			return types.NewExpressionError("empty parentheses", nil)
		}
		return validateNode(node.Left)
	}

	return types.NewExpressionError(fmt.Sprintf("unknown node type: %s", node.Type), nil)
}
