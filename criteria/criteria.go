package criteria

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rulego/formulaengine/types"
	"github.com/rulego/formulaengine/utils/cast"
)

// Predicate 是编译后的条件谓词，对任意单元格值返回匹配结果
// Test never errors, values the predicate cannot interpret simply do not match.
type Predicate interface {
	Test(value interface{}) bool
}

// Compile 将 Excel 风格的条件字符串编译为谓词
// 条件形式按最长操作符前缀优先识别：>= <= <> > < = 前缀、*/? 通配符模式、字面量
// 空条件字符串编译为永不匹配的谓词
func Compile(criteriaStr string) (Predicate, error) {
	if criteriaStr == "" {
		return neverPredicate{}, nil
	}

	// 前缀检查顺序即优先级，两字符操作符必须先于单字符操作符
	switch {
	case strings.HasPrefix(criteriaStr, ">="):
		return newComparisonPredicate(criteriaStr, ">=", criteriaStr[2:])
	case strings.HasPrefix(criteriaStr, "<="):
		return newComparisonPredicate(criteriaStr, "<=", criteriaStr[2:])
	case strings.HasPrefix(criteriaStr, "<>"):
		return &notEqualPredicate{text: strings.TrimSpace(criteriaStr[2:])}, nil
	case strings.HasPrefix(criteriaStr, ">"):
		return newComparisonPredicate(criteriaStr, ">", criteriaStr[1:])
	case strings.HasPrefix(criteriaStr, "<"):
		return newComparisonPredicate(criteriaStr, "<", criteriaStr[1:])
	case strings.HasPrefix(criteriaStr, "="):
		return newEqualPredicate(strings.TrimSpace(criteriaStr[1:])), nil
	case strings.ContainsAny(criteriaStr, "*?"):
		return &wildcardPredicate{pattern: criteriaStr}, nil
	default:
		return newLiteralPredicate(criteriaStr), nil
	}
}

// MatchValue 一次性编译并测试，编译失败按不匹配处理
func MatchValue(value interface{}, criteriaStr string) bool {
	predicate, err := Compile(criteriaStr)
	if err != nil {
		return false
	}
	return predicate.Test(value)
}

// neverPredicate 对应空条件，任何值都不匹配
type neverPredicate struct{}

func (neverPredicate) Test(value interface{}) bool {
	return false
}

// comparisonPredicate 处理 >= <= > < 四种数值比较
// 比较通过编译好的 expr-lang 程序执行，求值失败按不匹配处理
type comparisonPredicate struct {
	program   *vm.Program
	threshold float64
}

func newComparisonPredicate(criteriaStr, operator, remainder string) (Predicate, error) {
	threshold, err := cast.ToFloat64E(strings.TrimSpace(remainder))
	if err != nil {
		// 有序比较只定义在数值上，阈值不是数字时谓词恒为假
		return neverPredicate{}, nil
	}

	program, err := expr.Compile("value "+operator+" threshold",
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, types.NewCriteriaError(criteriaStr, err)
	}
	return &comparisonPredicate{program: program, threshold: threshold}, nil
}

func (p *comparisonPredicate) Test(value interface{}) bool {
	num, err := cast.ToFloat64E(value)
	if err != nil {
		return false
	}
	result, err := expr.Run(p.program, map[string]interface{}{
		"value":     num,
		"threshold": p.threshold,
	})
	if err != nil {
		return false
	}
	matched, ok := result.(bool)
	return ok && matched
}

// notEqualPredicate 处理 <> 前缀，按字符串不等比较，从不做数值转换
type notEqualPredicate struct {
	text string
}

func (p *notEqualPredicate) Test(value interface{}) bool {
	return cast.ToString(value) != p.text
}

// equalPredicate 处理 = 前缀
// 余下部分是数字时按数值相等比较，否则按忽略大小写的字符串相等比较
type equalPredicate struct {
	text      string
	number    float64
	isNumeric bool
}

func newEqualPredicate(remainder string) Predicate {
	number, err := cast.ToFloat64E(remainder)
	return &equalPredicate{
		text:      remainder,
		number:    number,
		isNumeric: err == nil,
	}
}

func (p *equalPredicate) Test(value interface{}) bool {
	if p.isNumeric {
		num, err := cast.ToFloat64E(value)
		if err != nil {
			return false
		}
		return num == p.number
	}
	return strings.EqualFold(cast.ToString(value), p.text)
}

// wildcardPredicate 对字符串化的值做通配符匹配
// * 匹配任意长度的字符序列，? 恰好匹配一个字符
type wildcardPredicate struct {
	pattern string
}

func (p *wildcardPredicate) Test(value interface{}) bool {
	return MatchWildcard(cast.ToString(value), p.pattern)
}

// literalPredicate 处理裸字面量
// 两侧都是数字时按数值相等比较，否则按忽略大小写的字符串相等比较
type literalPredicate struct {
	text      string
	number    float64
	isNumeric bool
}

func newLiteralPredicate(criteriaStr string) Predicate {
	number, err := cast.ToFloat64E(criteriaStr)
	return &literalPredicate{
		text:      criteriaStr,
		number:    number,
		isNumeric: err == nil,
	}
}

func (p *literalPredicate) Test(value interface{}) bool {
	if p.isNumeric {
		if num, err := cast.ToFloat64E(value); err == nil {
			return num == p.number
		}
	}
	return strings.EqualFold(cast.ToString(value), p.text)
}

// MatchWildcard 实现通配符模式匹配
// 支持*（匹配任意字符序列）和?（匹配单个字符）
func MatchWildcard(text, pattern string) bool {
	return wildcardMatch(text, pattern, 0, 0)
}

// wildcardMatch 递归实现通配符匹配算法
func wildcardMatch(text, pattern string, textIndex, patternIndex int) bool {
	// 如果模式已经匹配完成
	if patternIndex >= len(pattern) {
		return textIndex >= len(text) // 文本也应该匹配完成
	}

	// 如果文本已经结束，但模式还有非*字符，则不匹配
	if textIndex >= len(text) {
		// 检查剩余的模式是否都是*
		for i := patternIndex; i < len(pattern); i++ {
			if pattern[i] != '*' {
				return false
			}
		}
		return true
	}

	// 处理当前模式字符
	patternChar := pattern[patternIndex]

	if patternChar == '*' {
		// *可以匹配0个或多个字符
		// 尝试匹配0个字符（跳过*）
		if wildcardMatch(text, pattern, textIndex, patternIndex+1) {
			return true
		}
		// 尝试匹配1个或多个字符
		for i := textIndex; i < len(text); i++ {
			if wildcardMatch(text, pattern, i+1, patternIndex+1) {
				return true
			}
		}
		return false
	} else if patternChar == '?' {
		// ?匹配恰好一个字符
		return wildcardMatch(text, pattern, textIndex+1, patternIndex+1)
	} else {
		// 普通字符必须精确匹配
		if text[textIndex] == patternChar {
			return wildcardMatch(text, pattern, textIndex+1, patternIndex+1)
		}
		return false
	}
}
