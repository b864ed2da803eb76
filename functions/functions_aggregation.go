package functions

import (
	"github.com/montanaflynn/stats"

	"github.com/rulego/formulaengine/utils/cast"
)

// SumFunction 求和函数
type SumFunction struct {
	*BaseFunction
	value     float64
	hasValues bool
}

func NewSumFunction() *SumFunction {
	return &SumFunction{
		BaseFunction: NewBaseFunction("sum", TypeAggregation, "聚合函数", "计算数值总和", 1, -1),
	}
}

func (f *SumFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *SumFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	var sum float64
	hasValues := false
	for _, arg := range args {
		if arg == nil {
			continue
		}
		if val, err := cast.ToFloat64E(arg); err == nil {
			sum += val
			hasValues = true
		}
	}
	if !hasValues {
		return nil, nil
	}
	return sum, nil
}

// 实现AggregatorFunction接口
func (f *SumFunction) New() AggregatorFunction {
	return &SumFunction{BaseFunction: f.BaseFunction}
}

func (f *SumFunction) Add(value interface{}) {
	if value == nil {
		return
	}
	if val, err := cast.ToFloat64E(value); err == nil {
		f.value += val
		f.hasValues = true
	}
}

func (f *SumFunction) Result() interface{} {
	if !f.hasValues {
		return nil
	}
	return f.value
}

func (f *SumFunction) Reset() {
	f.value = 0
	f.hasValues = false
}

func (f *SumFunction) Clone() AggregatorFunction {
	return &SumFunction{BaseFunction: f.BaseFunction, value: f.value, hasValues: f.hasValues}
}

// MinFunction 最小值函数
type MinFunction struct {
	*BaseFunction
	value     float64
	hasValues bool
}

func NewMinFunction() *MinFunction {
	return &MinFunction{
		BaseFunction: NewBaseFunction("min", TypeAggregation, "聚合函数", "计算最小值", 1, -1),
	}
}

func (f *MinFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *MinFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	var min float64
	hasValues := false
	for _, arg := range args {
		if arg == nil {
			continue
		}
		if val, err := cast.ToFloat64E(arg); err == nil {
			if !hasValues || val < min {
				min = val
			}
			hasValues = true
		}
	}
	if !hasValues {
		return nil, nil
	}
	return min, nil
}

// 实现AggregatorFunction接口
func (f *MinFunction) New() AggregatorFunction {
	return &MinFunction{BaseFunction: f.BaseFunction}
}

func (f *MinFunction) Add(value interface{}) {
	if value == nil {
		return
	}
	if val, err := cast.ToFloat64E(value); err == nil {
		if !f.hasValues || val < f.value {
			f.value = val
		}
		f.hasValues = true
	}
}

func (f *MinFunction) Result() interface{} {
	if !f.hasValues {
		return nil
	}
	return f.value
}

func (f *MinFunction) Reset() {
	f.value = 0
	f.hasValues = false
}

func (f *MinFunction) Clone() AggregatorFunction {
	return &MinFunction{BaseFunction: f.BaseFunction, value: f.value, hasValues: f.hasValues}
}

// MaxFunction 最大值函数
type MaxFunction struct {
	*BaseFunction
	value     float64
	hasValues bool
}

func NewMaxFunction() *MaxFunction {
	return &MaxFunction{
		BaseFunction: NewBaseFunction("max", TypeAggregation, "聚合函数", "计算最大值", 1, -1),
	}
}

func (f *MaxFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *MaxFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	var max float64
	hasValues := false
	for _, arg := range args {
		if arg == nil {
			continue
		}
		if val, err := cast.ToFloat64E(arg); err == nil {
			if !hasValues || val > max {
				max = val
			}
			hasValues = true
		}
	}
	if !hasValues {
		return nil, nil
	}
	return max, nil
}

// 实现AggregatorFunction接口
func (f *MaxFunction) New() AggregatorFunction {
	return &MaxFunction{BaseFunction: f.BaseFunction}
}

func (f *MaxFunction) Add(value interface{}) {
	if value == nil {
		return
	}
	if val, err := cast.ToFloat64E(value); err == nil {
		if !f.hasValues || val > f.value {
			f.value = val
		}
		f.hasValues = true
	}
}

func (f *MaxFunction) Result() interface{} {
	if !f.hasValues {
		return nil
	}
	return f.value
}

func (f *MaxFunction) Reset() {
	f.value = 0
	f.hasValues = false
}

func (f *MaxFunction) Clone() AggregatorFunction {
	return &MaxFunction{BaseFunction: f.BaseFunction, value: f.value, hasValues: f.hasValues}
}

// CountFunction 计数函数，统计非空值数量
type CountFunction struct {
	*BaseFunction
	count int
}

func NewCountFunction() *CountFunction {
	return &CountFunction{
		BaseFunction: NewBaseFunction("count", TypeAggregation, "聚合函数", "统计非空值数量", 1, -1),
	}
}

func (f *CountFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *CountFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	count := 0
	for _, arg := range args {
		if arg != nil {
			count++
		}
	}
	return count, nil
}

// 实现AggregatorFunction接口
func (f *CountFunction) New() AggregatorFunction {
	return &CountFunction{BaseFunction: f.BaseFunction}
}

func (f *CountFunction) Add(value interface{}) {
	if value == nil {
		return
	}
	f.count++
}

func (f *CountFunction) Result() interface{} {
	return f.count
}

func (f *CountFunction) Reset() {
	f.count = 0
}

func (f *CountFunction) Clone() AggregatorFunction {
	return &CountFunction{BaseFunction: f.BaseFunction, count: f.count}
}

// AvgFunction 平均值函数
type AvgFunction struct {
	*BaseFunction
	sum   float64
	count int
}

func NewAvgFunction() *AvgFunction {
	return &AvgFunction{
		BaseFunction: NewBaseFunction("avg", TypeAggregation, "聚合函数", "计算平均值", 1, -1),
	}
}

func (f *AvgFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *AvgFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	var sum float64
	count := 0
	for _, arg := range args {
		if arg == nil {
			continue
		}
		if val, err := cast.ToFloat64E(arg); err == nil {
			sum += val
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	return sum / float64(count), nil
}

// 实现AggregatorFunction接口
func (f *AvgFunction) New() AggregatorFunction {
	return &AvgFunction{BaseFunction: f.BaseFunction}
}

func (f *AvgFunction) Add(value interface{}) {
	if value == nil {
		return
	}
	if val, err := cast.ToFloat64E(value); err == nil {
		f.sum += val
		f.count++
	}
}

func (f *AvgFunction) Result() interface{} {
	if f.count == 0 {
		return nil
	}
	return f.sum / float64(f.count)
}

func (f *AvgFunction) Reset() {
	f.sum = 0
	f.count = 0
}

func (f *AvgFunction) Clone() AggregatorFunction {
	return &AvgFunction{BaseFunction: f.BaseFunction, sum: f.sum, count: f.count}
}

// StdFunction 样本标准差函数
type StdFunction struct {
	*BaseFunction
	values []float64
}

func NewStdFunction() *StdFunction {
	return &StdFunction{
		BaseFunction: NewBaseFunction("std", TypeAggregation, "聚合函数", "计算样本标准差", 1, -1),
	}
}

func (f *StdFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *StdFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	values := collectFloats(args)
	if len(values) == 0 {
		return nil, nil
	}
	result, err := stats.StandardDeviationSample(values)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// 实现AggregatorFunction接口
func (f *StdFunction) New() AggregatorFunction {
	return &StdFunction{BaseFunction: f.BaseFunction}
}

func (f *StdFunction) Add(value interface{}) {
	if value == nil {
		return
	}
	if val, err := cast.ToFloat64E(value); err == nil {
		f.values = append(f.values, val)
	}
}

func (f *StdFunction) Result() interface{} {
	if len(f.values) == 0 {
		return nil
	}
	result, err := stats.StandardDeviationSample(f.values)
	if err != nil {
		return nil
	}
	return result
}

func (f *StdFunction) Reset() {
	f.values = nil
}

func (f *StdFunction) Clone() AggregatorFunction {
	clone := &StdFunction{BaseFunction: f.BaseFunction}
	clone.values = append(clone.values, f.values...)
	return clone
}

// VarFunction 样本方差函数
type VarFunction struct {
	*BaseFunction
	values []float64
}

func NewVarFunction() *VarFunction {
	return &VarFunction{
		BaseFunction: NewBaseFunction("var", TypeAggregation, "聚合函数", "计算样本方差", 1, -1),
	}
}

func (f *VarFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *VarFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	values := collectFloats(args)
	if len(values) == 0 {
		return nil, nil
	}
	result, err := stats.VarS(values)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// 实现AggregatorFunction接口
func (f *VarFunction) New() AggregatorFunction {
	return &VarFunction{BaseFunction: f.BaseFunction}
}

func (f *VarFunction) Add(value interface{}) {
	if value == nil {
		return
	}
	if val, err := cast.ToFloat64E(value); err == nil {
		f.values = append(f.values, val)
	}
}

func (f *VarFunction) Result() interface{} {
	if len(f.values) == 0 {
		return nil
	}
	result, err := stats.VarS(f.values)
	if err != nil {
		return nil
	}
	return result
}

func (f *VarFunction) Reset() {
	f.values = nil
}

func (f *VarFunction) Clone() AggregatorFunction {
	clone := &VarFunction{BaseFunction: f.BaseFunction}
	clone.values = append(clone.values, f.values...)
	return clone
}

// FirstFunction 首个非空值函数
type FirstFunction struct {
	*BaseFunction
	value     interface{}
	hasValues bool
}

func NewFirstFunction() *FirstFunction {
	return &FirstFunction{
		BaseFunction: NewBaseFunction("first", TypeAggregation, "聚合函数", "取首个非空值", 1, -1),
	}
}

func (f *FirstFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *FirstFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	for _, arg := range args {
		if arg != nil {
			return arg, nil
		}
	}
	return nil, nil
}

// 实现AggregatorFunction接口
func (f *FirstFunction) New() AggregatorFunction {
	return &FirstFunction{BaseFunction: f.BaseFunction}
}

func (f *FirstFunction) Add(value interface{}) {
	if f.hasValues || value == nil {
		return
	}
	f.value = value
	f.hasValues = true
}

func (f *FirstFunction) Result() interface{} {
	if !f.hasValues {
		return nil
	}
	return f.value
}

func (f *FirstFunction) Reset() {
	f.value = nil
	f.hasValues = false
}

func (f *FirstFunction) Clone() AggregatorFunction {
	return &FirstFunction{BaseFunction: f.BaseFunction, value: f.value, hasValues: f.hasValues}
}

// LastFunction 末个非空值函数
type LastFunction struct {
	*BaseFunction
	value     interface{}
	hasValues bool
}

func NewLastFunction() *LastFunction {
	return &LastFunction{
		BaseFunction: NewBaseFunction("last", TypeAggregation, "聚合函数", "取末个非空值", 1, -1),
	}
}

func (f *LastFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *LastFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	var result interface{}
	for _, arg := range args {
		if arg != nil {
			result = arg
		}
	}
	return result, nil
}

// 实现AggregatorFunction接口
func (f *LastFunction) New() AggregatorFunction {
	return &LastFunction{BaseFunction: f.BaseFunction}
}

func (f *LastFunction) Add(value interface{}) {
	if value == nil {
		return
	}
	f.value = value
	f.hasValues = true
}

func (f *LastFunction) Result() interface{} {
	if !f.hasValues {
		return nil
	}
	return f.value
}

func (f *LastFunction) Reset() {
	f.value = nil
	f.hasValues = false
}

func (f *LastFunction) Clone() AggregatorFunction {
	return &LastFunction{BaseFunction: f.BaseFunction, value: f.value, hasValues: f.hasValues}
}

// collectFloats 收集可转换为数值的参数
func collectFloats(args []interface{}) []float64 {
	var values []float64
	for _, arg := range args {
		if arg == nil {
			continue
		}
		if val, err := cast.ToFloat64E(arg); err == nil {
			values = append(values, val)
		}
	}
	return values
}
