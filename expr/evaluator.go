package expr

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rulego/formulaengine/functions"
	"github.com/rulego/formulaengine/types"
)

// builtinConstants resolve before per-call variable bindings
var builtinConstants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// evaluateNode evaluates the value of a node.
//
// Division follows IEEE-754: x/0 yields ±Inf, 0/0 yields NaN, and both flow
// through subsequent arithmetic instead of aborting evaluation.
func evaluateNode(node *ExprNode, variables map[string]float64) (float64, error) {
	if node == nil {
		return 0, types.NewExpressionError("null expression node", nil)
	}

	switch node.Type {
	case TypeNumber:
		value, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return 0, types.NewExpressionError(fmt.Sprintf("invalid number: %s", node.Value), err)
		}
		return value, nil

	case TypeIdentifier:
		return evaluateIdentifierNode(node, variables)

	case TypeOperator:
		return evaluateOperatorNode(node, variables)

	case TypeFunction:
		return evaluateFunctionNode(node, variables)

	case TypeParenthesis:
		return evaluateNode(node.Left, variables)
	}

	return 0, types.NewExpressionError(fmt.Sprintf("unknown node type: %s", node.Type), nil)
}

// evaluateIdentifierNode resolves an identifier against constants, then bindings
func evaluateIdentifierNode(node *ExprNode, variables map[string]float64) (float64, error) {
	if value, ok := builtinConstants[node.Value]; ok {
		return value, nil
	}
	if value, ok := variables[node.Value]; ok {
		return value, nil
	}
	return 0, types.NewUnknownVariableError(node.Value)
}

// evaluateOperatorNode evaluates the value of an operator node
func evaluateOperatorNode(node *ExprNode, variables map[string]float64) (float64, error) {
	if node.Value == OpNegate {
		operand, err := evaluateNode(node.Right, variables)
		if err != nil {
			return 0, err
		}
		return -operand, nil
	}

	left, err := evaluateNode(node.Left, variables)
	if err != nil {
		return 0, err
	}

	right, err := evaluateNode(node.Right, variables)
	if err != nil {
		return 0, err
	}

	switch node.Value {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		return left / right, nil
	case "//":
		return math.Floor(left / right), nil
	case "%":
		return floatMod(left, right), nil
	case "**", "^":
		return math.Pow(left, right), nil
	}

	return 0, types.NewExpressionError(fmt.Sprintf("unknown operator: %s", node.Value), nil)
}

// floatMod implements modulo with the sign of the divisor, so -7 % 3 is 2.
// A zero divisor yields NaN via math.Mod.
func floatMod(left, right float64) float64 {
	m := math.Mod(left, right)
	if m != 0 && (m < 0) != (right < 0) {
		m += right
	}
	return m
}

// evaluateFunctionNode evaluates the value of a function node.
// All calls dispatch through the function registry, which is the whitelist.
func evaluateFunctionNode(node *ExprNode, variables map[string]float64) (float64, error) {
	fn, exists := functions.Get(node.Value)
	if !exists {
		return 0, types.NewUnknownFunctionError(node.Value)
	}

	args := make([]interface{}, len(node.Args))
	for i, arg := range node.Args {
		value, err := evaluateNode(arg, variables)
		if err != nil {
			return 0, err
		}
		args[i] = value
	}

	if err := fn.Validate(args); err != nil {
		return 0, types.NewExpressionError(fmt.Sprintf("invalid call to %s", node.Value), err)
	}

	ctx := &functions.FunctionContext{
		Data: floatsToData(variables),
	}

	result, err := fn.Execute(ctx, args)
	if err != nil {
		return 0, types.NewExpressionError(fmt.Sprintf("function %s failed", node.Value), err)
	}

	switch r := result.(type) {
	case float64:
		return r, nil
	case float32:
		return float64(r), nil
	case int:
		return float64(r), nil
	case int32:
		return float64(r), nil
	case int64:
		return float64(r), nil
	case nil:
		return 0, types.NewExpressionError(fmt.Sprintf("function %s returned no value", node.Value), nil)
	default:
		return 0, types.NewExpressionError(fmt.Sprintf("function %s returned non-numeric type %T", node.Value, result), nil)
	}
}

// floatsToData exposes variable bindings to function execution contexts
func floatsToData(variables map[string]float64) map[string]interface{} {
	if len(variables) == 0 {
		return nil
	}
	data := make(map[string]interface{}, len(variables))
	for name, value := range variables {
		data[name] = value
	}
	return data
}

// roundToPrecision rounds to the given number of decimal digits, half to even.
// NaN and infinities pass through untouched, as do values too large to shift.
func roundToPrecision(value float64, precision int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	shift := math.Pow(10, float64(precision))
	scaled := value * shift
	if math.IsInf(scaled, 0) {
		return value
	}
	return math.RoundToEven(scaled) / shift
}
