package functions

import (
	"fmt"
)

// AggregatorFunction 聚合函数接口，支持增量计算
type AggregatorFunction interface {
	Function

	// New 创建新的聚合器实例
	New() AggregatorFunction

	// Add 增量添加数据
	Add(value interface{})

	// Result 获取聚合结果
	Result() interface{}

	// Reset 重置聚合器状态
	Reset()

	// Clone 克隆聚合器，包含已累积的状态
	Clone() AggregatorFunction
}

// CreateAggregator 创建聚合器实例
func CreateAggregator(name string) (AggregatorFunction, error) {
	fn, exists := Get(name)
	if !exists {
		return nil, fmt.Errorf("unknown function: %s", name)
	}

	aggFn, ok := fn.(AggregatorFunction)
	if !ok {
		return nil, fmt.Errorf("function %s is not an aggregator function", name)
	}

	return aggFn.New(), nil
}

// IsAggregatorFunction 检查函数是否为聚合函数
func IsAggregatorFunction(name string) bool {
	fn, exists := Get(name)
	if !exists {
		return false
	}

	_, ok := fn.(AggregatorFunction)
	return ok
}
