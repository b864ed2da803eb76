package aggregator

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/rulego/formulaengine/criteria"
	"github.com/rulego/formulaengine/types"
)

// Filter 用布尔表达式过滤记录集，保留求值为真的记录
// 表达式通过 expr-lang 编译，未定义字段按nil处理
// 单条记录求值失败按不保留处理，输入记录集不被修改
// 表达式里可用 wildcard_match、is_null、is_not_null 三个辅助函数
func Filter(records []types.Record, conditionExpr string) ([]types.Record, error) {
	options := []expr.Option{
		expr.Function("wildcard_match", func(params ...any) (any, error) {
			if len(params) != 2 {
				return false, fmt.Errorf("wildcard_match function requires 2 parameters")
			}
			text, ok1 := params[0].(string)
			pattern, ok2 := params[1].(string)
			if !ok1 || !ok2 {
				return false, fmt.Errorf("wildcard_match function requires string parameters")
			}
			return criteria.MatchWildcard(text, pattern), nil
		}),
		expr.Function("is_null", func(params ...any) (any, error) {
			if len(params) != 1 {
				return false, fmt.Errorf("is_null function requires 1 parameter")
			}
			return params[0] == nil, nil
		}),
		expr.Function("is_not_null", func(params ...any) (any, error) {
			if len(params) != 1 {
				return false, fmt.Errorf("is_not_null function requires 1 parameter")
			}
			return params[0] != nil, nil
		}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}

	program, err := expr.Compile(conditionExpr, options...)
	if err != nil {
		return nil, types.NewCriteriaError(conditionExpr, err)
	}

	kept := make([]types.Record, 0, len(records))
	for _, record := range records {
		result, runErr := expr.Run(program, map[string]interface{}(record))
		if runErr != nil {
			continue
		}
		if matched, ok := result.(bool); ok && matched {
			kept = append(kept, record)
		}
	}
	return kept, nil
}
