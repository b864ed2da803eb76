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

package formulaengine

import (
	"fmt"

	"github.com/rulego/formulaengine/aggregator"
	"github.com/rulego/formulaengine/criteria"
	"github.com/rulego/formulaengine/expr"
	"github.com/rulego/formulaengine/logger"
	"github.com/rulego/formulaengine/lookup"
	"github.com/rulego/formulaengine/types"
	"github.com/rulego/formulaengine/utils/table"
)

const (
	// DefaultPrecision 数值结果的默认精度（小数位数）
	DefaultPrecision = 10

	// DefaultMaxExpressionLength 表达式文本的默认长度上限
	DefaultMaxExpressionLength = 4096
)

// FormulaEngine 是公式计算引擎的主要接口。
// 它封装了表达式求值、条件匹配、查找匹配和条件聚合四类核心能力。
//
// 引擎自身不持有任何跨调用状态，所有方法都可以被任意多个goroutine并发调用。
//
// 使用示例:
//
//	engine := formulaengine.New()
//	result, err := engine.Eval("2 + 2 * 10")        // 22
//	sum, err := engine.SumIf(fruits, "Apple", sales) // 条件求和
type FormulaEngine struct {
	// 数值结果精度（小数位数），范围1-15
	precision int

	// 表达式文本长度上限，0表示不限制
	maxExpressionLength int

	// 是否全程使用高精度十进制后端
	strictNumerics bool
}

// New 创建一个新的FormulaEngine实例。
// 支持通过可选的Option参数进行配置。
//
// 参数:
//   - options: 可变长度的配置选项，用于自定义引擎行为
//
// 返回值:
//   - *FormulaEngine: 新创建的引擎实例
//
// 示例:
//
//	// 创建默认实例
//	engine := formulaengine.New()
//
//	// 创建高精度实例
//	engine := formulaengine.New(formulaengine.WithPrecision(15))
//
//	// 创建严格数值模式实例
//	engine := formulaengine.New(formulaengine.WithStrictNumerics())
func New(options ...Option) *FormulaEngine {
	f := &FormulaEngine{
		precision:           DefaultPrecision,
		maxExpressionLength: DefaultMaxExpressionLength,
	}

	// 应用所有配置选项
	for _, option := range options {
		option(f)
	}

	logger.Debug("formula engine created: precision=%d, maxExpressionLength=%d, strictNumerics=%v",
		f.precision, f.maxExpressionLength, f.strictNumerics)
	return f
}

// Eval 计算一个不含变量的数学表达式。
//
// 表达式语言仅允许数值字面量、白名单运算符（+ - * / // % **，一元+ -，
// ^作为**的别名）、白名单数学函数调用、常量pi和e以及括号分组；
// 任何其他语法结构在求值前即被拒绝。
//
// 除零不做特殊保护：x/0 得到±Inf，0/0 得到NaN，按IEEE-754语义继续传播。
//
// 参数:
//   - expression: 要计算的表达式文本
//
// 返回值:
//   - interface{}: 计算结果。默认模式下为float64；严格数值模式下为
//     decimal.Decimal，存在自由变量时为化简后的表达式文本
//   - error: 语法越权、表达式格式错误、未知函数等失败原因
//
// 示例:
//
//	result, err := engine.Eval("2 + 2 * 10")   // 22.0
//	result, err := engine.Eval("2 ** 10")      // 1024.0
//	result, err := engine.Eval("sqrt(16)")     // 4.0
//	result, err := engine.Eval("pi * 2")       // 6.2831853072
func (f *FormulaEngine) Eval(expression string) (interface{}, error) {
	return f.EvalWithVars(expression, nil)
}

// EvalWithVars 计算一个带变量绑定的数学表达式。
//
// 变量在求值阶段按名称解析：先查常量表（pi、e），再查本次调用的绑定，
// 都未命中则返回UNKNOWN_VARIABLE错误。表达式文本不做任何替换。
//
// 参数:
//   - expression: 要计算的表达式文本
//   - variables: 本次调用的变量绑定，可为nil
//
// 返回值:
//   - interface{}: 计算结果，类型规则与Eval相同
//   - error: 失败原因
//
// 示例:
//
//	result, err := engine.EvalWithVars("x + y * 2", map[string]float64{
//	    "x": 10,
//	    "y": 5,
//	}) // 20.0
func (f *FormulaEngine) EvalWithVars(expression string, variables map[string]float64) (interface{}, error) {
	if err := f.checkExpressionLength(expression); err != nil {
		return nil, err
	}

	result, err := expr.EvaluateWithOptions(expression, variables, f.precision, f.strictNumerics)
	if err != nil {
		logger.Debug("expression evaluation failed: %s: %v", expression, err)
		return nil, err
	}
	return result, nil
}

// EvalDecimal 使用高精度十进制后端计算表达式。
//
// 对十进制封闭的运算（+ - * / // %、整数指数的**、abs/floor/ceil/round/
// min/max/sum等）做精确折叠，超越函数调用退化为高精度浮点换算。
// 表达式完全折叠为数值时返回decimal.Decimal（四舍五入到precision位有效数字），
// 存在自由变量时返回化简后的规范表达式文本。
//
// 十进制后端没有Inf和NaN，除零在这里返回EXPRESSION_ERROR。
//
// 参数:
//   - expression: 要计算的表达式文本
//   - variables: 本次调用的变量绑定，可为nil
//
// 返回值:
//   - interface{}: decimal.Decimal数值或string形式的化简表达式
//   - error: 失败原因
//
// 示例:
//
//	result, err := engine.EvalDecimal("0.1 + 0.2", nil)  // 精确的0.3
//	result, err := engine.EvalDecimal("x * 2 + 1", nil)  // "x * 2 + 1"（保持符号形式）
func (f *FormulaEngine) EvalDecimal(expression string, variables map[string]float64) (interface{}, error) {
	if err := f.checkExpressionLength(expression); err != nil {
		return nil, err
	}

	result, err := expr.EvaluateWithOptions(expression, variables, f.precision, true)
	if err != nil {
		logger.Debug("decimal evaluation failed: %s: %v", expression, err)
		return nil, err
	}
	return result, nil
}

// checkExpressionLength 按配置的长度上限在求值前拒绝超长输入
func (f *FormulaEngine) checkExpressionLength(expression string) error {
	if f.maxExpressionLength > 0 && len(expression) > f.maxExpressionLength {
		err := types.NewUnsupportedSyntaxError(
			fmt.Sprintf("expression length %d exceeds limit %d", len(expression), f.maxExpressionLength))
		logger.Debug("expression rejected: %v", err)
		return err
	}
	return nil
}

// CompileCriteria 把条件字符串编译成可复用的判定器。
//
// 支持六种条件形式，按最长前缀优先匹配：
//   - ">=n" / "<=n"：数值比较，值无法转数值时判定为false
//   - "<>text"：字符串不等（区分大小写）
//   - ">n" / "<n"：数值比较
//   - "=x"：余下部分为数值时按数值相等，否则按忽略大小写的字符串相等
//   - 含 * 或 ? 的文本：通配符匹配（*匹配任意序列，?匹配单个字符）
//   - 其他文本：数值相等或忽略大小写的字符串相等
//
// 判定器是全函数：任何输入值都返回布尔结果，类型不匹配判定为false，
// 不会panic。空条件编译为永不匹配的判定器。
//
// 参数:
//   - criteriaStr: 条件字符串
//
// 返回值:
//   - criteria.Predicate: 编译后的判定器
//   - error: 条件无法编译时的失败原因（极少发生）
//
// 示例:
//
//	p, err := engine.CompileCriteria(">20")
//	p.Test(25) // true
//	p.Test(20) // false
//
//	p, _ = engine.CompileCriteria("*ing")
//	p.Test("running") // true
func (f *FormulaEngine) CompileCriteria(criteriaStr string) (criteria.Predicate, error) {
	p, err := criteria.Compile(criteriaStr)
	if err != nil {
		logger.Debug("criteria compile failed: %s: %v", criteriaStr, err)
		return nil, err
	}
	return p, nil
}

// MatchCriteria 对单个值做一次性条件判定。
// 等价于编译后立即Test，条件无法编译时返回false。
//
// 参数:
//   - value: 被判定的值
//   - criteriaStr: 条件字符串
//
// 返回值:
//   - bool: 是否匹配
func (f *FormulaEngine) MatchCriteria(value interface{}, criteriaStr string) bool {
	return criteria.MatchValue(value, criteriaStr)
}

// VLookup 在表格第一列中查找值，返回匹配行指定列的内容。
//
// 精确模式下按首个相等行命中（数值两侧可转数值时按数值比较，
// 否则忽略大小写按字符串比较）；近似模式下假定第一列升序，
// 返回首列值不超过查找值的最大行。
//
// 参数:
//   - lookupValue: 要查找的值
//   - table: 行优先的二维表格
//   - colIndex: 返回列序号，从1开始
//   - exactMatch: true为精确匹配，false为近似匹配
//
// 返回值:
//   - types.LookupResult: Found为false表示未找到（不是错误），
//     Index为命中行的零基下标
//   - error: 列序号越界等结构性错误
//
// 示例:
//
//	table := types.Table{
//	    {"A001", "Widget", 10.99},
//	    {"A002", "Gadget", 25.50},
//	}
//	result, err := engine.VLookup("A002", table, 2, true)
//	// result.Found == true, result.Value == "Gadget", result.Index == 1
func (f *FormulaEngine) VLookup(lookupValue interface{}, table types.Table, colIndex int, exactMatch bool) (types.LookupResult, error) {
	result, err := lookup.VLookup(lookupValue, table, colIndex, exactMatch)
	if err != nil {
		logger.Debug("vlookup failed: %v", err)
	}
	return result, err
}

// HLookup 在表格第一行中查找值，返回匹配列指定行的内容。
// 语义与VLookup完全对称，按列方向查找。
//
// 参数:
//   - lookupValue: 要查找的值
//   - table: 行优先的二维表格
//   - rowIndex: 返回行序号，从1开始
//   - exactMatch: true为精确匹配，false为近似匹配
//
// 返回值:
//   - types.LookupResult: 查找结果，Index为命中列的零基下标
//   - error: 行序号越界等结构性错误
func (f *FormulaEngine) HLookup(lookupValue interface{}, table types.Table, rowIndex int, exactMatch bool) (types.LookupResult, error) {
	result, err := lookup.HLookup(lookupValue, table, rowIndex, exactMatch)
	if err != nil {
		logger.Debug("hlookup failed: %v", err)
	}
	return result, err
}

// Index 返回表格指定位置的单元格值。
//
// 参数:
//   - table: 行优先的二维表格
//   - rowNum: 行号，从1开始
//   - colNum: 列号，从1开始
//
// 返回值:
//   - types.LookupResult: 命中的单元格值
//   - error: 行列号越界为DIMENSION_ERROR
func (f *FormulaEngine) Index(table types.Table, rowNum, colNum int) (types.LookupResult, error) {
	result, err := lookup.Index(table, rowNum, colNum)
	if err != nil {
		logger.Debug("index failed: %v", err)
	}
	return result, err
}

// Match 在一维数组中查找值的位置，位置从1开始计数。
//
// matchType取值:
//   - 0: 精确匹配，返回首个相等元素的位置
//   - 1: 假定数组升序，返回不超过查找值的最大元素位置
//   - -1: 假定数组降序，返回不小于查找值的最小元素位置
//
// 参数:
//   - lookupValue: 要查找的值
//   - array: 查找数组
//   - matchType: 匹配类型
//
// 返回值:
//   - types.LookupResult: Index为1基位置，未找到时Found为false
//   - error: matchType非法为DIMENSION_ERROR
//
// 示例:
//
//	result, _ := engine.Match(30, []interface{}{10, 20, 30, 40}, 0)
//	// result.Found == true, result.Index == 3
func (f *FormulaEngine) Match(lookupValue interface{}, array []interface{}, matchType int) (types.LookupResult, error) {
	result, err := lookup.Match(lookupValue, array, matchType)
	if err != nil {
		logger.Debug("match failed: %v", err)
	}
	return result, err
}

// XLookup 在查找数组中定位值，返回返回数组同位置的内容。
//
// matchMode支持精确、精确或取小、精确或取大、通配符四种匹配模式；
// searchMode支持正向、反向、二分升序、二分降序四种查找方向。
// 二分查找仅支持精确匹配模式，且要求输入按对应方向有序。
//
// 参数:
//   - lookupValue: 要查找的值
//   - lookupArray: 查找数组
//   - returnArray: 返回数组，长度必须与查找数组一致
//   - ifNotFound: 未找到时返回的默认值
//   - matchMode: 匹配模式
//   - searchMode: 查找方向
//
// 返回值:
//   - types.LookupResult: 未找到时Found为false且Value为ifNotFound
//   - error: 数组长度不一致或模式值非法为DIMENSION_ERROR
//
// 示例:
//
//	result, _ := engine.XLookup("B",
//	    []interface{}{"A", "B", "C"},
//	    []interface{}{1, 2, 3},
//	    nil, types.MatchExact, types.SearchFirstToLast)
//	// result.Value == 2
func (f *FormulaEngine) XLookup(lookupValue interface{}, lookupArray, returnArray []interface{},
	ifNotFound interface{}, matchMode types.MatchMode, searchMode types.SearchMode) (types.LookupResult, error) {
	result, err := lookup.XLookup(lookupValue, lookupArray, returnArray, ifNotFound, matchMode, searchMode)
	if err != nil {
		logger.Debug("xlookup failed: %v", err)
	}
	return result, err
}

// SumIf 对条件范围逐项判定，汇总值范围中匹配位置的数值。
//
// 参数:
//   - criteriaRange: 被条件判定的范围
//   - criteriaStr: 条件字符串（六种形式之一）
//   - sumRange: 被汇总的值范围，nil时汇总条件范围自身；
//     非nil时长度必须与条件范围一致
//
// 返回值:
//   - float64: 匹配位置的数值之和，无匹配时为0；无法转数值的项跳过
//   - error: 范围长度不一致为DIMENSION_ERROR
//
// 示例:
//
//	fruits := []interface{}{"Apple", "Banana", "Apple", "Orange", "Apple"}
//	sales := []interface{}{100, 50, 75, 200, 150}
//	total, _ := engine.SumIf(fruits, "Apple", sales) // 325.0
func (f *FormulaEngine) SumIf(criteriaRange []interface{}, criteriaStr string, sumRange []interface{}) (float64, error) {
	result, err := aggregator.SumIf(criteriaRange, criteriaStr, sumRange)
	if err != nil {
		logger.Debug("sumif failed: %v", err)
	}
	return result, err
}

// CountIf 统计条件范围中匹配条件的项数。
//
// 参数:
//   - criteriaRange: 被条件判定的范围
//   - criteriaStr: 条件字符串
//
// 返回值:
//   - int: 匹配的项数
//   - error: 条件无法编译时的失败原因
func (f *FormulaEngine) CountIf(criteriaRange []interface{}, criteriaStr string) (int, error) {
	result, err := aggregator.CountIf(criteriaRange, criteriaStr)
	if err != nil {
		logger.Debug("countif failed: %v", err)
	}
	return result, err
}

// AverageIf 对值范围中匹配位置的数值求平均。
//
// 参数:
//   - criteriaRange: 被条件判定的范围
//   - criteriaStr: 条件字符串
//   - avgRange: 被求平均的值范围，nil时使用条件范围自身
//
// 返回值:
//   - interface{}: 匹配数值的平均值（float64），零个匹配时为nil而非除零
//   - error: 范围长度不一致为DIMENSION_ERROR
func (f *FormulaEngine) AverageIf(criteriaRange []interface{}, criteriaStr string, avgRange []interface{}) (interface{}, error) {
	result, err := aggregator.AverageIf(criteriaRange, criteriaStr, avgRange)
	if err != nil {
		logger.Debug("averageif failed: %v", err)
	}
	return result, err
}

// SumIfs 按多组并列条件汇总，所有条件同时成立的行才计入。
//
// 参数:
//   - sumRange: 被汇总的值范围
//   - criteriaRanges: N个条件范围，长度都必须与值范围一致
//   - criteriaList: N个条件字符串，与条件范围一一对应
//
// 返回值:
//   - float64: 全部条件成立的行的数值之和
//   - error: 范围数量或长度不一致为DIMENSION_ERROR
//
// 示例:
//
//	sales := []interface{}{100, 200, 300, 400}
//	regions := []interface{}{"North", "South", "North", "South"}
//	products := []interface{}{"A", "A", "B", "B"}
//	total, _ := engine.SumIfs(sales,
//	    [][]interface{}{regions, products},
//	    []string{"North", "A"}) // 100.0
func (f *FormulaEngine) SumIfs(sumRange []interface{}, criteriaRanges [][]interface{}, criteriaList []string) (float64, error) {
	result, err := aggregator.SumIfs(sumRange, criteriaRanges, criteriaList)
	if err != nil {
		logger.Debug("sumifs failed: %v", err)
	}
	return result, err
}

// CountIfs 统计所有并列条件同时成立的行数。
//
// 参数:
//   - criteriaRanges: N个条件范围，长度必须一致
//   - criteriaList: N个条件字符串
//
// 返回值:
//   - int: 全部条件成立的行数
//   - error: 范围数量或长度不一致为DIMENSION_ERROR
func (f *FormulaEngine) CountIfs(criteriaRanges [][]interface{}, criteriaList []string) (int, error) {
	result, err := aggregator.CountIfs(criteriaRanges, criteriaList)
	if err != nil {
		logger.Debug("countifs failed: %v", err)
	}
	return result, err
}

// MaxIfs 返回所有并列条件同时成立的行中值范围的最大数值。
//
// 返回值:
//   - interface{}: 最大值（float64），零个匹配时为nil
//   - error: 范围数量或长度不一致为DIMENSION_ERROR
func (f *FormulaEngine) MaxIfs(maxRange []interface{}, criteriaRanges [][]interface{}, criteriaList []string) (interface{}, error) {
	result, err := aggregator.MaxIfs(maxRange, criteriaRanges, criteriaList)
	if err != nil {
		logger.Debug("maxifs failed: %v", err)
	}
	return result, err
}

// MinIfs 返回所有并列条件同时成立的行中值范围的最小数值。
//
// 返回值:
//   - interface{}: 最小值（float64），零个匹配时为nil
//   - error: 范围数量或长度不一致为DIMENSION_ERROR
func (f *FormulaEngine) MinIfs(minRange []interface{}, criteriaRanges [][]interface{}, criteriaList []string) (interface{}, error) {
	result, err := aggregator.MinIfs(minRange, criteriaRanges, criteriaList)
	if err != nil {
		logger.Debug("minifs failed: %v", err)
	}
	return result, err
}

// Pivot 对记录集做分组聚合，输出打平的透视结果。
//
// 按行键元组分组；指定列键时再按列键取值细分，每个列键取值展开为一个
// 带后缀的输出字段，缺失的组合用fillValue补齐。输出顺序是行键元组和
// 列键取值各自首次出现的顺序，完全确定。
//
// 聚合前会校验所有被引用的列在每条记录中都存在，任何缺失立即返回
// COLUMN_NOT_FOUND，不产生部分结果。
//
// 参数:
//   - records: 输入记录集
//   - rowKeys: 行分组键，支持点号路径访问嵌套字段（如"user.region"）
//   - columnKeys: 列分组键，可为nil
//   - aggregations: 聚合描述，Alias非空时作为输出字段名，
//     否则为"列名_聚合类型"
//   - fillValue: 缺失组合的填充值
//
// 返回值:
//   - []types.Record: 每个行键元组一条输出记录
//   - error: 列缺失、未知聚合类型或没有聚合描述时的失败原因
//
// 示例:
//
//	records := []types.Record{
//	    {"region": "North", "sales": 100},
//	    {"region": "South", "sales": 200},
//	    {"region": "North", "sales": 150},
//	}
//	result, _ := engine.Pivot(records, []string{"region"}, nil,
//	    []types.AggregationField{{Column: "sales", Aggregate: types.Sum}}, nil)
//	// [{region: North, sales_sum: 250}, {region: South, sales_sum: 200}]
func (f *FormulaEngine) Pivot(records []types.Record, rowKeys, columnKeys []string,
	aggregations []types.AggregationField, fillValue interface{}) ([]types.Record, error) {
	result, err := aggregator.Pivot(records, rowKeys, columnKeys, aggregations, fillValue)
	if err != nil {
		logger.Debug("pivot failed: %v", err)
	}
	return result, err
}

// Filter 用布尔表达式过滤记录集，保留求值为真的记录。
//
// 表达式语言为expr-lang，未定义字段按nil处理，单条记录求值失败按
// 不保留处理。表达式中可用wildcard_match、is_null、is_not_null三个
// 辅助函数。
//
// 参数:
//   - records: 输入记录集
//   - conditionExpr: 过滤表达式，如"region == 'North' && sales > 100"
//
// 返回值:
//   - []types.Record: 保留的记录
//   - error: 表达式无法编译为CRITERIA_ERROR
func (f *FormulaEngine) Filter(records []types.Record, conditionExpr string) ([]types.Record, error) {
	result, err := aggregator.Filter(records, conditionExpr)
	if err != nil {
		logger.Debug("filter failed: %v", err)
	}
	return result, err
}

// PivotWhere 先过滤再透视的组合操作。
// 列存在性校验在过滤之后进行，只覆盖保留下来的记录。
//
// 参数:
//   - records: 输入记录集
//   - conditionExpr: 过滤表达式
//   - rowKeys: 行分组键
//   - columnKeys: 列分组键，可为nil
//   - aggregations: 聚合描述
//   - fillValue: 缺失组合的填充值
//
// 返回值:
//   - []types.Record: 过滤后记录的透视结果
//   - error: 过滤或透视阶段的失败原因
//
// 示例:
//
//	result, _ := engine.PivotWhere(records, "sales > 50",
//	    []string{"region"}, nil,
//	    []types.AggregationField{{Column: "sales", Aggregate: types.Sum}}, nil)
func (f *FormulaEngine) PivotWhere(records []types.Record, conditionExpr string,
	rowKeys, columnKeys []string, aggregations []types.AggregationField, fillValue interface{}) ([]types.Record, error) {
	filtered, err := f.Filter(records, conditionExpr)
	if err != nil {
		return nil, err
	}
	return f.Pivot(filtered, rowKeys, columnKeys, aggregations, fillValue)
}

// PrintTable 以表格形式把记录集打印到控制台，类似数据库输出格式。
// 首先显示列名，然后逐行显示数据。
//
// 参数:
//   - records: 要打印的记录集
//   - fieldOrder: 列显示顺序，缺省时按字段名排序
//
// 示例:
//
//	engine.PrintTable(result, "region", "sales_sum")
//
//	// 输出格式:
//	// +--------+-----------+
//	// | region | sales_sum |
//	// +--------+-----------+
//	// | North  | 250       |
//	// | South  | 200       |
//	// +--------+-----------+
func (f *FormulaEngine) PrintTable(records []types.Record, fieldOrder ...string) {
	rows := make([]map[string]interface{}, len(records))
	for i, record := range records {
		rows[i] = record
	}
	table.Print(rows, fieldOrder)
}
