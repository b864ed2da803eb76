package aggregator

import (
	"fmt"
	"sync"

	"github.com/rulego/formulaengine/functions"
	"github.com/rulego/formulaengine/types"
	"github.com/rulego/formulaengine/utils/cast"
	"github.com/rulego/formulaengine/utils/fieldpath"
)

// GroupAggregator 按分组字段对记录做增量聚合
// 每个分组持有独立的聚合器实例，结果按分组首次出现的顺序返回
type GroupAggregator struct {
	groupFields       []string
	aggregationFields []types.AggregationField
	prototypes        map[string]functions.AggregatorFunction
	groups            map[string]*groupState
	order             []string
	mu                sync.RWMutex
}

// groupState 保存一个分组的原始键值和聚合器实例
type groupState struct {
	keyValues   []interface{}
	aggregators map[string]functions.AggregatorFunction
}

// NewGroupAggregator 创建分组聚合器
// 每个聚合字段先创建一个原型实例，之后按分组克隆出空白实例
// 聚合类型未注册时返回 UnknownFunction 错误
func NewGroupAggregator(groupFields []string, aggregationFields []types.AggregationField) (*GroupAggregator, error) {
	prototypes := make(map[string]functions.AggregatorFunction, len(aggregationFields))
	for _, field := range aggregationFields {
		aggregator, err := functions.CreateAggregator(string(field.Aggregate))
		if err != nil {
			return nil, types.NewUnknownFunctionError(string(field.Aggregate))
		}
		prototypes[field.OutputName()] = aggregator
	}

	return &GroupAggregator{
		groupFields:       groupFields,
		aggregationFields: aggregationFields,
		prototypes:        prototypes,
		groups:            make(map[string]*groupState),
	}, nil
}

// Add 把一条记录计入对应分组
// 分组字段在记录中缺失时返回 ColumnNotFound
// 聚合字段缺失或无法转成数值时跳过该项
func (ga *GroupAggregator) Add(record types.Record) error {
	ga.mu.Lock()
	defer ga.mu.Unlock()

	keyValues := make([]interface{}, len(ga.groupFields))
	key := ""
	for i, field := range ga.groupFields {
		fieldVal, found := fieldLookup(record, field)
		if !found {
			return types.NewColumnNotFoundError(field)
		}
		keyValues[i] = fieldVal
		key += fmt.Sprintf("%v|", fieldVal)
	}

	state, exists := ga.groups[key]
	if !exists {
		state = &groupState{
			keyValues:   keyValues,
			aggregators: make(map[string]functions.AggregatorFunction, len(ga.prototypes)),
		}
		for name, prototype := range ga.prototypes {
			state.aggregators[name] = prototype.New()
		}
		ga.groups[key] = state
		ga.order = append(ga.order, key)
	}

	for _, aggField := range ga.aggregationFields {
		aggregator, ok := state.aggregators[aggField.OutputName()]
		if !ok {
			continue
		}

		// count(*) 直接计数，不读取具体字段
		if aggField.Column == "*" {
			aggregator.Add(1)
			continue
		}

		fieldVal, found := fieldLookup(record, aggField.Column)
		if !found || fieldVal == nil {
			continue
		}

		if isNumericAggregate(aggField.Aggregate) {
			if num, err := cast.ToFloat64E(fieldVal); err == nil {
				aggregator.Add(num)
			}
			continue
		}
		aggregator.Add(fieldVal)
	}
	return nil
}

// Results 按分组首次出现的顺序输出聚合结果
// 每条结果包含分组字段的原始值和各聚合字段的结果
func (ga *GroupAggregator) Results() []types.Record {
	ga.mu.RLock()
	defer ga.mu.RUnlock()

	results := make([]types.Record, 0, len(ga.order))
	for _, key := range ga.order {
		state := ga.groups[key]
		record := make(types.Record, len(ga.groupFields)+len(ga.aggregationFields))
		for i, field := range ga.groupFields {
			record[field] = state.keyValues[i]
		}
		for _, aggField := range ga.aggregationFields {
			if aggregator, ok := state.aggregators[aggField.OutputName()]; ok {
				record[aggField.OutputName()] = aggregator.Result()
			}
		}
		results = append(results, record)
	}
	return results
}

// GroupCount 返回当前分组个数
func (ga *GroupAggregator) GroupCount() int {
	ga.mu.RLock()
	defer ga.mu.RUnlock()
	return len(ga.groups)
}

// Reset 清空全部分组状态
func (ga *GroupAggregator) Reset() {
	ga.mu.Lock()
	defer ga.mu.Unlock()
	ga.groups = make(map[string]*groupState)
	ga.order = nil
}

// isNumericAggregate 判断聚合类型是否要求数值输入
// count、first、last 接受任意非空值，其余聚合都先转成float64
func isNumericAggregate(aggType types.AggregateType) bool {
	switch aggType {
	case types.Count, types.First, types.Last:
		return false
	default:
		return true
	}
}

// fieldLookup 读取记录字段，支持点号嵌套路径
func fieldLookup(record types.Record, field string) (interface{}, bool) {
	if fieldpath.IsNestedField(field) {
		return fieldpath.GetNestedField(map[string]interface{}(record), field)
	}
	val, ok := record[field]
	return val, ok
}
