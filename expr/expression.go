package expr

import (
	"sort"
	"strings"
)

// 表达式节点类型
const (
	TypeNumber      = "number"      // 数字常量
	TypeIdentifier  = "identifier"  // 变量引用
	TypeOperator    = "operator"    // 运算符
	TypeFunction    = "function"    // 函数调用
	TypeParenthesis = "parenthesis" // 括号
)

// OpNegate 一元取负运算符的内部表示，区别于二元减法
const OpNegate = "neg"

// 操作符优先级
var operatorPrecedence = map[string]int{
	"+":      1,
	"-":      1,
	"*":      2,
	"/":      2,
	"//":     2,
	"%":      2,
	OpNegate: 3,
	"**":     4, // 幂运算
	"^":      4,
}

// 表达式节点
type ExprNode struct {
	Type  string
	Value string
	Left  *ExprNode
	Right *ExprNode
	Args  []*ExprNode // 用于函数调用的参数
}

// String 输出节点的规范文本形式。
// 括号只在改变解析结果时出现，规范文本重新解析后得到相同的AST。
func (n *ExprNode) String() string {
	if n == nil {
		return ""
	}

	switch n.Type {
	case TypeNumber, TypeIdentifier:
		return n.Value

	case TypeParenthesis:
		// 规范形式按优先级重新加括号，原始括号不保留
		return n.Left.String()

	case TypeFunction:
		parts := make([]string, len(n.Args))
		for i, arg := range n.Args {
			parts[i] = arg.String()
		}
		return n.Value + "(" + strings.Join(parts, ", ") + ")"

	case TypeOperator:
		if n.Value == OpNegate {
			return "-" + childString(n.Right, operatorPrecedence[OpNegate], false, OpNegate)
		}
		prec := operatorPrecedence[n.Value]
		left := childString(n.Left, prec, false, n.Value)
		right := childString(n.Right, prec, true, n.Value)
		return left + " " + n.Value + " " + right
	}

	return n.Value
}

// childString 渲染子节点，必要时加括号保持解析稳定
func childString(child *ExprNode, parentPrec int, rightSide bool, parentOp string) string {
	s := child.String()

	node := child
	for node != nil && node.Type == TypeParenthesis {
		node = node.Left
	}
	if node == nil || node.Type != TypeOperator {
		return s
	}

	childPrec := operatorPrecedence[node.Value]
	needsParens := false
	if childPrec < parentPrec {
		needsParens = true
	} else if childPrec == parentPrec {
		if parentOp == "**" {
			// 幂运算右结合，左侧同级子式需要括号
			needsParens = !rightSide
		} else if parentOp != OpNegate {
			// 左结合运算符，右侧同级子式需要括号
			needsParens = rightSide
		}
	}

	if needsParens {
		return "(" + s + ")"
	}
	return s
}

// Expression 表示一个可计算的表达式
type Expression struct {
	Root   *ExprNode
	source string
}

// NewExpression 创建一个新的表达式。
// 解析和结构校验在这里一次完成，之后可以反复求值。
func NewExpression(exprStr string) (*Expression, error) {
	tokens, err := tokenize(exprStr)
	if err != nil {
		return nil, err
	}

	root, err := ParseExpression(tokens)
	if err != nil {
		return nil, err
	}

	if err := validateNode(root); err != nil {
		return nil, err
	}

	return &Expression{
		Root:   root,
		source: exprStr,
	}, nil
}

// Evaluate 计算表达式的值
func (e *Expression) Evaluate(variables map[string]float64) (float64, error) {
	return evaluateNode(e.Root, variables)
}

// EvaluateDecimal 使用高精度十进制后端计算表达式。
// 完全折叠为数值时返回decimal.Decimal，存在自由变量时返回化简后的规范文本。
func (e *Expression) EvaluateDecimal(variables map[string]float64, precision int) (interface{}, error) {
	return evaluateDecimalTree(e.Root, variables, normalizePrecision(precision))
}

// Source 返回原始表达式文本
func (e *Expression) Source() string {
	return e.source
}

// String 返回表达式的规范文本形式
func (e *Expression) String() string {
	return e.Root.String()
}

// GetIdentifiers 获取表达式中引用的所有标识符，包括pi、e等常量名
func (e *Expression) GetIdentifiers() []string {
	identifiers := make(map[string]bool)
	collectIdentifiers(e.Root, identifiers)

	result := make([]string, 0, len(identifiers))
	for name := range identifiers {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// collectIdentifiers 收集表达式中所有标识符
func collectIdentifiers(node *ExprNode, identifiers map[string]bool) {
	if node == nil {
		return
	}

	if node.Type == TypeIdentifier {
		identifiers[node.Value] = true
	}

	collectIdentifiers(node.Left, identifiers)
	collectIdentifiers(node.Right, identifiers)

	for _, arg := range node.Args {
		collectIdentifiers(arg, identifiers)
	}
}

// EvaluateWithOptions 解析并计算表达式。
//
// variables为每次调用的变量绑定，precision为结果精度（1-15，越界取10）。
// symbolic为false时走float64求值，结果四舍六入到precision位小数；
// symbolic为true时走高精度十进制后端，返回数值或化简后的表达式文本。
func EvaluateWithOptions(expression string, variables map[string]float64, precision int, symbolic bool) (interface{}, error) {
	e, err := NewExpression(expression)
	if err != nil {
		return nil, err
	}

	if symbolic {
		return e.EvaluateDecimal(variables, precision)
	}

	result, err := e.Evaluate(variables)
	if err != nil {
		return nil, err
	}
	return roundToPrecision(result, normalizePrecision(precision)), nil
}

// normalizePrecision 将精度限定在1-15范围内，越界取默认值10
func normalizePrecision(precision int) int {
	if precision < 1 || precision > 15 {
		return 10
	}
	return precision
}
