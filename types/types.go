/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import "strings"

// Table 是按行存储的二维表格数据，单元格可以是任意标量类型。
// 所有操作都只读取Table，不会原地修改。
type Table [][]interface{}

// RowCount 返回表格的行数
func (t Table) RowCount() int {
	return len(t)
}

// ColCount 返回表格的最大列数（允许行宽不一致）
func (t Table) ColCount() int {
	max := 0
	for _, row := range t {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Record 是键值对形式的一行数据，不同Record之间的字段集合可以不同
type Record map[string]interface{}

// Clone 返回Record的浅拷贝
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// LookupResult is the outcome of a lookup or match operation.
// Found=false is a normal result, never an error. Index is the zero-based
// matched row/position for VLOOKUP, HLOOKUP and XLOOKUP and the 1-based
// position for MATCH; it is -1 when nothing matched.
type LookupResult struct {
	Found bool        `json:"found"`
	Value interface{} `json:"value"`
	Index int         `json:"index"`
}

// NotFoundResult 构造未命中结果，Value为调用方指定的缺省值（默认nil）
func NotFoundResult(defaultValue interface{}) LookupResult {
	return LookupResult{Found: false, Value: defaultValue, Index: -1}
}

// FoundResult 构造命中结果
func FoundResult(value interface{}, index int) LookupResult {
	return LookupResult{Found: true, Value: value, Index: index}
}

// AggregateType 聚合函数类型
type AggregateType string

const (
	Sum   AggregateType = "sum"
	Count AggregateType = "count"
	Avg   AggregateType = "avg"
	Min   AggregateType = "min"
	Max   AggregateType = "max"
	Std   AggregateType = "std"
	Var   AggregateType = "var"
	First AggregateType = "first"
	Last  AggregateType = "last"
)

// NormalizeAggregateType 将外部传入的聚合名称归一化为内部类型。
// 接受常见别名（mean/average/avg、stddev/std、variance/var）。
func NormalizeAggregateType(name string) (AggregateType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sum":
		return Sum, true
	case "count", "cnt":
		return Count, true
	case "avg", "mean", "average":
		return Avg, true
	case "min":
		return Min, true
	case "max":
		return Max, true
	case "std", "stddev", "stdev":
		return Std, true
	case "var", "variance":
		return Var, true
	case "first":
		return First, true
	case "last":
		return Last, true
	default:
		return "", false
	}
}

// AggregationField 描述对某一列执行的一种聚合运算
type AggregationField struct {
	// Column 输入记录中的字段名，支持点号嵌套路径
	Column string `json:"column"`
	// Aggregate 聚合函数类型
	Aggregate AggregateType `json:"aggregate"`
	// Alias 输出字段别名，为空时输出为 <column>_<aggregate>
	Alias string `json:"alias,omitempty"`
}

// OutputName 返回该聚合结果在输出记录中的字段名
func (f AggregationField) OutputName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Column + "_" + string(f.Aggregate)
}

// MatchMode controls how XLOOKUP compares the lookup value against
// lookup array entries.
type MatchMode int

const (
	// MatchExact requires strict equality.
	MatchExact MatchMode = 0
	// MatchNextSmaller returns an exact hit or the next smaller value.
	MatchNextSmaller MatchMode = -1
	// MatchNextLarger returns an exact hit or the next larger value.
	MatchNextLarger MatchMode = 1
	// MatchWildcard treats the lookup value as a */? wildcard pattern.
	MatchWildcard MatchMode = 2
)

// SearchMode controls the scan direction of XLOOKUP.
//
// The binary modes require pre-sorted input (ascending for
// SearchBinaryAsc, descending for SearchBinaryDesc) and perform an
// exact-match binary search; behavior on unsorted input is undefined.
type SearchMode int

const (
	// SearchFirstToLast scans forward and returns the first match.
	SearchFirstToLast SearchMode = 1
	// SearchLastToFirst scans backward and returns the last match.
	SearchLastToFirst SearchMode = -1
	// SearchBinaryAsc binary-searches an ascending-sorted array.
	SearchBinaryAsc SearchMode = 2
	// SearchBinaryDesc binary-searches a descending-sorted array.
	SearchBinaryDesc SearchMode = -2
)
