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

/*
Package formulaengine 是一个轻量级的内存内公式计算与查询引擎。

FormulaEngine 提供了沙箱化的数学表达式求值、电子表格风格的条件匹配、
查找匹配（VLOOKUP/HLOOKUP/INDEX/MATCH/XLOOKUP）以及条件聚合与透视能力，
面向在服务端安全执行用户提交公式的场景。

# 核心特性

• 轻量级设计 - 纯内存操作，无I/O，无跨调用状态，可任意并发
• 沙箱表达式 - 白名单运算符与数学函数，越权语法在求值前拒绝
• 高精度模式 - shopspring/decimal后端，可返回精确数值或化简后的符号表达式
• 查找匹配 - VLOOKUP/HLOOKUP/INDEX/MATCH/XLOOKUP，支持精确、近似、通配符与二分查找
• 条件聚合 - SUMIF/COUNTIF/AVERAGEIF及多条件IFS族，条件语法与匹配器一致
• 分组透视 - 行键列键分组、多种聚合类型、缺失组合填充、确定的输出顺序
• 插件式自定义函数 - 运行时动态注册，白名单外的扩展点

# 入门示例

基本的表达式求值与聚合：

	package main

	import (
		"fmt"

		"github.com/rulego/formulaengine"
		"github.com/rulego/formulaengine/types"
	)

	func main() {
		engine := formulaengine.New()

		// 表达式求值
		result, err := engine.Eval("2 + 2 * 10")
		if err != nil {
			panic(err)
		}
		fmt.Println(result) // 22

		// 带变量的求值
		result, _ = engine.EvalWithVars("x + y * 2", map[string]float64{
			"x": 10,
			"y": 5,
		})
		fmt.Println(result) // 20

		// 条件求和
		fruits := []interface{}{"Apple", "Banana", "Apple", "Orange", "Apple"}
		sales := []interface{}{100, 50, 75, 200, 150}
		total, _ := engine.SumIf(fruits, "Apple", sales)
		fmt.Println(total) // 325

		// 分组透视
		records := []types.Record{
			{"region": "North", "sales": 100},
			{"region": "South", "sales": 200},
			{"region": "North", "sales": 150},
		}
		pivoted, _ := engine.Pivot(records, []string{"region"}, nil,
			[]types.AggregationField{{Column: "sales", Aggregate: types.Sum}}, nil)
		engine.PrintTable(pivoted, "region", "sales_sum")
	}

# 表达式语言

表达式语言只允许数值字面量、八种运算符（+ - * / // % **，一元+ -，
^等价于**）、三十余个白名单数学函数、常量pi和e以及括号分组。
字符串、比较运算、布尔逻辑、下标和属性访问都会在求值前被拒绝：

	engine.Eval("2 ** 10")          // 1024
	engine.Eval("17 % 5")           // 2
	engine.Eval("sqrt(16)")         // 4
	engine.Eval("min(3, 1, 2)")     // 1
	engine.Eval(`"abc" + 1`)        // UNSUPPORTED_SYNTAX
	engine.Eval("x > 1")            // UNSUPPORTED_SYNTAX

除零不做特殊保护，按IEEE-754语义传播Inf和NaN。需要精确十进制
语义时使用EvalDecimal或WithStrictNumerics：

	engine.EvalDecimal("0.1 + 0.2", nil) // 精确的0.3
	engine.EvalDecimal("x * 2 + 1", nil) // "x * 2 + 1"，保持符号形式

# 条件语法

条件匹配器支持六种条件形式，被CountIf等聚合操作和MatchCriteria共用：

	engine.MatchCriteria(25, ">20")          // true
	engine.MatchCriteria("Banana", "<>Apple") // true
	engine.MatchCriteria("running", "*ing")   // true
	engine.MatchCriteria("apple", "Apple")    // true（忽略大小写）

# 查找匹配

五种查找操作都返回types.LookupResult，未找到不是错误：

	table := types.Table{
		{"A001", "Widget", 10.99},
		{"A002", "Gadget", 25.50},
	}
	result, _ := engine.VLookup("A002", table, 2, true)
	// result.Found == true, result.Value == "Gadget"

	result, _ = engine.Match("z", []interface{}{"a", "b", "c"}, 0)
	// result.Found == false，无错误

# 自定义函数

表达式白名单支持插件式扩展，运行时动态注册：

	// 注册温度转换函数
	functions.RegisterCustomFunction(
		"fahrenheit_to_celsius",
		functions.TypeCustom,
		"温度转换",
		"华氏度转摄氏度",
		1, 1,
		func(ctx *functions.FunctionContext, args []interface{}) (interface{}, error) {
			f, _ := cast.ToFloat64E(args[0])
			return (f - 32) * 5 / 9, nil
		},
	)

	// 立即在表达式中使用
	engine.Eval("fahrenheit_to_celsius(212)") // 100

# 日志配置

FormulaEngine 提供灵活的日志配置选项：

	// 设置日志级别
	engine := formulaengine.New(formulaengine.WithLogLevel(logger.DEBUG))

	// 输出到文件
	logFile, _ := os.OpenFile("engine.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	engine := formulaengine.New(formulaengine.WithLogOutput(logFile, logger.INFO))

	// 禁用日志（生产环境）
	engine := formulaengine.New(formulaengine.WithDiscardLog())
*/
package formulaengine
