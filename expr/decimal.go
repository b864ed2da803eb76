package expr

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/rulego/formulaengine/functions"
	"github.com/rulego/formulaengine/types"
)

// extraDivisionScale 除法中间结果在最终有效数字舍入前保留的额外小数位
const extraDivisionScale = 14

// maxExactExponent 精确整数幂的指数上限，超出后退回浮点计算
const maxExactExponent = 10000

// decimalResult 十进制化简的中间结果。
// folded为true时子树已折叠为value，否则node保存化简后的剩余结构。
type decimalResult struct {
	value  decimal.Decimal
	folded bool
	node   *ExprNode
}

// evaluateDecimalTree 用高精度十进制后端计算AST。
//
// 完全折叠时返回按precision位有效数字舍入的decimal.Decimal；
// 存在自由标识符时返回化简后的规范文本。pi和e在该模式下保持符号形式，
// 除零直接报错，十进制没有Inf和NaN可以传递。
func evaluateDecimalTree(root *ExprNode, variables map[string]float64, precision int) (interface{}, error) {
	result, err := simplifyDecimal(root, variables, precision)
	if err != nil {
		return nil, err
	}

	if result.folded {
		return roundSignificant(result.value, precision), nil
	}
	return result.node.String(), nil
}

// simplifyDecimal 自底向上折叠所有数值封闭的子树
func simplifyDecimal(node *ExprNode, variables map[string]float64, precision int) (decimalResult, error) {
	if node == nil {
		return decimalResult{}, types.NewExpressionError("null expression node", nil)
	}

	switch node.Type {
	case TypeNumber:
		value, err := decimal.NewFromString(node.Value)
		if err != nil {
			return decimalResult{}, types.NewExpressionError(fmt.Sprintf("invalid number: %s", node.Value), err)
		}
		return decimalResult{value: value, folded: true}, nil

	case TypeIdentifier:
		if value, ok := variables[node.Value]; ok {
			return decimalResult{value: decimal.NewFromFloat(value), folded: true}, nil
		}
		// 未绑定的标识符保持符号形式，包括pi和e
		return decimalResult{node: node}, nil

	case TypeParenthesis:
		// 括号在规范文本中按优先级重建，这里直接穿透
		return simplifyDecimal(node.Left, variables, precision)

	case TypeOperator:
		return simplifyDecimalOperator(node, variables, precision)

	case TypeFunction:
		return simplifyDecimalFunction(node, variables, precision)
	}

	return decimalResult{}, types.NewExpressionError(fmt.Sprintf("unknown node type: %s", node.Type), nil)
}

// simplifyDecimalOperator 化简运算符节点
func simplifyDecimalOperator(node *ExprNode, variables map[string]float64, precision int) (decimalResult, error) {
	if node.Value == OpNegate {
		operand, err := simplifyDecimal(node.Right, variables, precision)
		if err != nil {
			return decimalResult{}, err
		}
		if operand.folded {
			return decimalResult{value: operand.value.Neg(), folded: true}, nil
		}
		return decimalResult{node: &ExprNode{
			Type:  TypeOperator,
			Value: OpNegate,
			Right: operand.node,
		}}, nil
	}

	left, err := simplifyDecimal(node.Left, variables, precision)
	if err != nil {
		return decimalResult{}, err
	}
	right, err := simplifyDecimal(node.Right, variables, precision)
	if err != nil {
		return decimalResult{}, err
	}

	if left.folded && right.folded {
		value, err := applyDecimalOperator(node.Value, left.value, right.value, precision)
		if err != nil {
			return decimalResult{}, err
		}
		return decimalResult{value: value, folded: true}, nil
	}

	return decimalResult{node: &ExprNode{
		Type:  TypeOperator,
		Value: node.Value,
		Left:  materializeNode(left, precision),
		Right: materializeNode(right, precision),
	}}, nil
}

// simplifyDecimalFunction 化简函数调用节点。
// 对十进制封闭的函数精确折叠，其余函数的实参全部折叠后经浮点计算再转回十进制。
func simplifyDecimalFunction(node *ExprNode, variables map[string]float64, precision int) (decimalResult, error) {
	results := make([]decimalResult, len(node.Args))
	allFolded := true
	for i, arg := range node.Args {
		r, err := simplifyDecimal(arg, variables, precision)
		if err != nil {
			return decimalResult{}, err
		}
		results[i] = r
		if !r.folded {
			allFolded = false
		}
	}

	if !allFolded {
		args := make([]*ExprNode, len(results))
		for i, r := range results {
			args[i] = materializeNode(r, precision)
		}
		return decimalResult{node: &ExprNode{
			Type:  TypeFunction,
			Value: node.Value,
			Args:  args,
		}}, nil
	}

	values := make([]decimal.Decimal, len(results))
	for i, r := range results {
		values[i] = r.value
	}

	if value, handled, err := applyDecimalFunction(node.Value, values); handled {
		if err != nil {
			return decimalResult{}, err
		}
		return decimalResult{value: value, folded: true}, nil
	}

	value, err := applyFloatFunction(node.Value, values)
	if err != nil {
		return decimalResult{}, err
	}
	return decimalResult{value: value, folded: true}, nil
}

// materializeNode 将中间结果转回AST节点，折叠值在此处按精度舍入
func materializeNode(result decimalResult, precision int) *ExprNode {
	if !result.folded {
		return result.node
	}
	return &ExprNode{
		Type:  TypeNumber,
		Value: roundSignificant(result.value, precision).String(),
	}
}

// applyDecimalOperator 在十进制域执行二元运算
func applyDecimalOperator(op string, left, right decimal.Decimal, precision int) (decimal.Decimal, error) {
	switch op {
	case "+":
		return left.Add(right), nil
	case "-":
		return left.Sub(right), nil
	case "*":
		return left.Mul(right), nil
	case "/":
		if right.IsZero() {
			return decimal.Decimal{}, types.NewExpressionError("division by zero", nil)
		}
		return left.DivRound(right, divisionScale(precision)), nil
	case "//", "%":
		if right.IsZero() {
			return decimal.Decimal{}, types.NewExpressionError("division by zero", nil)
		}
		quotient, remainder := left.QuoRem(right, 0)
		// QuoRem截断取整，向下取整语义要求余数与除数同号
		if !remainder.IsZero() && (remainder.Sign() < 0) != (right.Sign() < 0) {
			quotient = quotient.Sub(decimal.NewFromInt(1))
			remainder = remainder.Add(right)
		}
		if op == "//" {
			return quotient, nil
		}
		return remainder, nil
	case "**":
		return applyDecimalPower(left, right, precision)
	}
	return decimal.Decimal{}, types.NewExpressionError(fmt.Sprintf("unknown operator: %s", op), nil)
}

// applyDecimalPower 幂运算：整数指数走精确平方乘，其余退回浮点
func applyDecimalPower(base, exponent decimal.Decimal, precision int) (decimal.Decimal, error) {
	if exponent.IsInteger() && exponent.Abs().Cmp(decimal.NewFromInt(maxExactExponent)) <= 0 {
		n := exponent.IntPart()
		if n >= 0 {
			return decimalPowInt(base, n), nil
		}
		if base.IsZero() {
			return decimal.Decimal{}, types.NewExpressionError("division by zero", nil)
		}
		return decimal.NewFromInt(1).DivRound(decimalPowInt(base, -n), divisionScale(precision)), nil
	}

	baseFloat, _ := base.Float64()
	expFloat, _ := exponent.Float64()
	return decimalFromFinite(math.Pow(baseFloat, expFloat), "power result")
}

// decimalPowInt 平方乘计算非负整数次幂
func decimalPowInt(base decimal.Decimal, exponent int64) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result.Mul(base)
		}
		exponent >>= 1
		if exponent > 0 {
			base = base.Mul(base)
		}
	}
	return result
}

// applyDecimalFunction 执行对十进制封闭的函数，handled指示名称是否命中
func applyDecimalFunction(name string, args []decimal.Decimal) (decimal.Decimal, bool, error) {
	switch name {
	case "abs":
		return args[0].Abs(), true, nil
	case "floor":
		return args[0].Floor(), true, nil
	case "ceil":
		return args[0].Ceil(), true, nil
	case "round":
		if len(args) == 1 {
			return args[0].RoundBank(0), true, nil
		}
		if !args[1].IsInteger() {
			return decimal.Decimal{}, true, types.NewExpressionError("round digits must be an integer", nil)
		}
		return args[0].RoundBank(int32(args[1].IntPart())), true, nil
	case "min":
		result := args[0]
		for _, arg := range args[1:] {
			if arg.Cmp(result) < 0 {
				result = arg
			}
		}
		return result, true, nil
	case "max":
		result := args[0]
		for _, arg := range args[1:] {
			if arg.Cmp(result) > 0 {
				result = arg
			}
		}
		return result, true, nil
	case "sum":
		result := decimal.Zero
		for _, arg := range args {
			result = result.Add(arg)
		}
		return result, true, nil
	}
	return decimal.Decimal{}, false, nil
}

// applyFloatFunction 经注册表按浮点执行函数并转回十进制
func applyFloatFunction(name string, args []decimal.Decimal) (decimal.Decimal, error) {
	fn, exists := functions.Get(name)
	if !exists {
		return decimal.Decimal{}, types.NewUnknownFunctionError(name)
	}

	floatArgs := make([]interface{}, len(args))
	for i, arg := range args {
		f, _ := arg.Float64()
		floatArgs[i] = f
	}

	if err := fn.Validate(floatArgs); err != nil {
		return decimal.Decimal{}, types.NewExpressionError(fmt.Sprintf("invalid call to %s", name), err)
	}

	result, err := fn.Execute(&functions.FunctionContext{}, floatArgs)
	if err != nil {
		return decimal.Decimal{}, types.NewExpressionError(fmt.Sprintf("function %s failed", name), err)
	}

	switch r := result.(type) {
	case float64:
		return decimalFromFinite(r, fmt.Sprintf("function %s result", name))
	case int:
		return decimal.NewFromInt(int64(r)), nil
	case int64:
		return decimal.NewFromInt(r), nil
	default:
		return decimal.Decimal{}, types.NewExpressionError(fmt.Sprintf("function %s returned non-numeric type %T", name, result), nil)
	}
}

// decimalFromFinite 将有限浮点值转为十进制，NaN和Inf在十进制域无法表示
func decimalFromFinite(value float64, what string) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Decimal{}, types.NewExpressionError(fmt.Sprintf("%s is not finite", what), nil)
	}
	return decimal.NewFromFloat(value), nil
}

// divisionScale 除法结果保留的小数位数
func divisionScale(precision int) int32 {
	return int32(precision + extraDivisionScale)
}

// roundSignificant 按有效数字位数作四舍六入五成双舍入
func roundSignificant(d decimal.Decimal, digits int) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	places := int32(digits) - (int32(d.NumDigits()) + d.Exponent())
	return d.RoundBank(places)
}
