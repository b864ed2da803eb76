package aggregator

import (
	"fmt"

	"github.com/rulego/formulaengine/types"
	"github.com/rulego/formulaengine/utils/cast"
)

// Pivot 按行键分组聚合记录集，输出打平后的结果表
// 行键元组相同的记录归入同一输出行，给出列键时再按列键值拆分列
// 输出字段名为 <列名>_<聚合名>，有别名时用别名，按列键拆分时再追加 _<列键值>
// 缺失的分组与列键组合用 fillValue 补齐
// 任何被引用的列在任何一条记录中缺失都在聚合前返回 ColumnNotFound
// 输出顺序是行键元组和列键值各自首次出现的顺序
func Pivot(records []types.Record, rowKeys []string, columnKeys []string,
	aggregations []types.AggregationField, fillValue interface{}) ([]types.Record, error) {

	if len(aggregations) == 0 {
		return nil, types.NewDimensionError("at least one aggregation is required")
	}

	normalized := make([]types.AggregationField, len(aggregations))
	for i, aggField := range aggregations {
		aggType, ok := types.NormalizeAggregateType(string(aggField.Aggregate))
		if !ok {
			return nil, types.NewUnknownFunctionError(string(aggField.Aggregate))
		}
		aggField.Aggregate = aggType
		normalized[i] = aggField
	}

	if err := validateColumns(records, rowKeys, columnKeys, normalized); err != nil {
		return nil, err
	}

	groupFields := make([]string, 0, len(rowKeys)+len(columnKeys))
	groupFields = append(groupFields, rowKeys...)
	groupFields = append(groupFields, columnKeys...)

	ga, err := NewGroupAggregator(groupFields, normalized)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if err := ga.Add(record); err != nil {
			return nil, err
		}
	}

	return flattenPivot(ga, rowKeys, columnKeys, normalized, fillValue), nil
}

// flattenPivot 把按行键加列键分组的聚合状态重组成打平的结果记录
// 每个行键元组输出一条记录，列键组合展开成带后缀的字段
func flattenPivot(ga *GroupAggregator, rowKeys, columnKeys []string,
	aggregations []types.AggregationField, fillValue interface{}) []types.Record {

	type pivotRow struct {
		values []interface{}
		cells  map[string]interface{}
	}

	rows := make(map[string]*pivotRow)
	var rowOrder []string
	var suffixes []string
	suffixSeen := make(map[string]bool)

	ga.mu.RLock()
	for _, key := range ga.order {
		state := ga.groups[key]
		rowPart := state.keyValues[:len(rowKeys)]
		colPart := state.keyValues[len(rowKeys):]

		rowID := joinKey(rowPart)
		row, ok := rows[rowID]
		if !ok {
			row = &pivotRow{values: rowPart, cells: make(map[string]interface{})}
			rows[rowID] = row
			rowOrder = append(rowOrder, rowID)
		}

		suffix := ""
		if len(columnKeys) > 0 {
			suffix = keySuffix(colPart)
			if !suffixSeen[suffix] {
				suffixSeen[suffix] = true
				suffixes = append(suffixes, suffix)
			}
		}

		for _, aggField := range aggregations {
			if aggregator, ok := state.aggregators[aggField.OutputName()]; ok {
				row.cells[aggField.OutputName()+suffix] = aggregator.Result()
			}
		}
	}
	ga.mu.RUnlock()

	if len(columnKeys) == 0 {
		suffixes = []string{""}
	}

	results := make([]types.Record, 0, len(rowOrder))
	for _, rowID := range rowOrder {
		row := rows[rowID]
		record := make(types.Record, len(rowKeys)+len(aggregations)*len(suffixes))
		for i, field := range rowKeys {
			record[field] = row.values[i]
		}
		for _, aggField := range aggregations {
			for _, suffix := range suffixes {
				name := aggField.OutputName() + suffix
				if val, ok := row.cells[name]; ok && val != nil {
					record[name] = val
				} else {
					record[name] = fillValue
				}
			}
		}
		results = append(results, record)
	}
	return results
}

// validateColumns 确认所有被引用的列在每条记录中都存在
// count(*) 的星号列不参与校验
func validateColumns(records []types.Record, rowKeys, columnKeys []string, aggregations []types.AggregationField) error {
	referenced := make([]string, 0, len(rowKeys)+len(columnKeys)+len(aggregations))
	referenced = append(referenced, rowKeys...)
	referenced = append(referenced, columnKeys...)
	for _, aggField := range aggregations {
		if aggField.Column != "*" {
			referenced = append(referenced, aggField.Column)
		}
	}

	for _, record := range records {
		for _, field := range referenced {
			if _, found := fieldLookup(record, field); !found {
				return types.NewColumnNotFoundError(field)
			}
		}
	}
	return nil
}

// joinKey 把键值元组拼成分组用的字符串键
func joinKey(values []interface{}) string {
	key := ""
	for _, v := range values {
		key += fmt.Sprintf("%v|", v)
	}
	return key
}

// keySuffix 把列键值拼成输出字段名后缀
func keySuffix(values []interface{}) string {
	suffix := ""
	for _, v := range values {
		suffix += "_" + cast.ToString(v)
	}
	return suffix
}
