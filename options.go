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
	"io"

	"github.com/rulego/formulaengine/logger"
)

// Option 定义FormulaEngine的配置选项类型
type Option func(*FormulaEngine)

// WithPrecision 设置数值结果精度（小数位数）。
// 有效范围1-15，越界时求值阶段按默认值10处理。
//
// 示例:
//
//	engine := formulaengine.New(formulaengine.WithPrecision(4))
//	engine.Eval("10 / 3") // 3.3333
func WithPrecision(precision int) Option {
	return func(f *FormulaEngine) {
		f.precision = precision
	}
}

// WithMaxExpressionLength 设置表达式文本长度上限。
// 超长输入在求值前即被拒绝，0表示不限制。默认为4096。
func WithMaxExpressionLength(length int) Option {
	return func(f *FormulaEngine) {
		f.maxExpressionLength = length
	}
}

// WithStrictNumerics 使用严格数值配置。
// Eval和EvalWithVars也走高精度十进制后端，0.1+0.2这类二进制浮点
// 误差不再出现，精度提升到15位有效数字。
// 注意：该模式下结果类型为decimal.Decimal而非float64，
// 且除零返回错误而非Inf。
//
// 示例:
//
//	engine := formulaengine.New(formulaengine.WithStrictNumerics())
//	result, _ := engine.Eval("0.1 + 0.2") // 精确的0.3
func WithStrictNumerics() Option {
	return func(f *FormulaEngine) {
		f.strictNumerics = true
		f.precision = 15
	}
}

// WithLogger 设置自定义日志记录器。
// 允许用户提供自己的日志实现，支持不同的日志后端和格式。
//
// 示例:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	engine := formulaengine.New(formulaengine.WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(f *FormulaEngine) {
		logger.SetDefault(log)
	}
}

// WithLogLevel 设置日志级别
func WithLogLevel(level logger.Level) Option {
	return func(f *FormulaEngine) {
		logger.GetDefault().SetLevel(level)
	}
}

// WithLogOutput 设置日志输出目标。
// 允许用户指定日志输出到文件、标准输出或其他io.Writer。
//
// 示例:
//
//	logFile, _ := os.OpenFile("engine.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
//	engine := formulaengine.New(formulaengine.WithLogOutput(logFile, logger.INFO))
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(f *FormulaEngine) {
		logger.SetDefault(logger.NewLogger(level, output))
	}
}

// WithDiscardLog 禁用日志输出
func WithDiscardLog() Option {
	return func(f *FormulaEngine) {
		logger.SetDefault(logger.NewDiscardLogger())
	}
}
