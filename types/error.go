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

import (
	"errors"
	"fmt"
)

// ErrorCode 定义错误类型
type ErrorCode string

const (
	ErrCodeUnsupportedSyntax ErrorCode = "UNSUPPORTED_SYNTAX"
	ErrCodeUnknownVariable   ErrorCode = "UNKNOWN_VARIABLE"
	ErrCodeUnknownFunction   ErrorCode = "UNKNOWN_FUNCTION"
	ErrCodeExpression        ErrorCode = "EXPRESSION_ERROR"
	ErrCodeDimension         ErrorCode = "DIMENSION_ERROR"
	ErrCodeColumnNotFound    ErrorCode = "COLUMN_NOT_FOUND"
	ErrCodeCriteria          ErrorCode = "CRITERIA_ERROR"
)

// EngineError 携带稳定错误码的引擎错误。
// 所有校验和求值失败都以EngineError形式返回，不向调用方抛出panic。
type EngineError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error 实现 error 接口
func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *EngineError) Unwrap() error {
	return e.Cause
}

// NewUnsupportedSyntaxError 创建语法越权错误：表达式包含白名单之外的语法结构
func NewUnsupportedSyntaxError(construct string) *EngineError {
	return &EngineError{
		Code:    ErrCodeUnsupportedSyntax,
		Message: fmt.Sprintf("unsupported syntax: %s", construct),
	}
}

// NewUnknownVariableError 创建未知变量错误
func NewUnknownVariableError(name string) *EngineError {
	return &EngineError{
		Code:    ErrCodeUnknownVariable,
		Message: fmt.Sprintf("unknown variable: %s", name),
	}
}

// NewUnknownFunctionError 创建未知函数错误
func NewUnknownFunctionError(name string) *EngineError {
	return &EngineError{
		Code:    ErrCodeUnknownFunction,
		Message: fmt.Sprintf("unknown function: %s", name),
	}
}

// NewExpressionError 创建表达式求值错误
func NewExpressionError(message string, cause error) *EngineError {
	return &EngineError{
		Code:    ErrCodeExpression,
		Message: message,
		Cause:   cause,
	}
}

// NewDimensionError 创建维度错误：数组长度不一致或下标越界
func NewDimensionError(message string) *EngineError {
	return &EngineError{
		Code:    ErrCodeDimension,
		Message: message,
	}
}

// NewColumnNotFoundError 创建列缺失错误
func NewColumnNotFoundError(column string) *EngineError {
	return &EngineError{
		Code:    ErrCodeColumnNotFound,
		Message: fmt.Sprintf("column not found: %s", column),
	}
}

// NewCriteriaError 创建条件编译错误
func NewCriteriaError(criteria string, cause error) *EngineError {
	return &EngineError{
		Code:    ErrCodeCriteria,
		Message: fmt.Sprintf("invalid criteria: %s", criteria),
		Cause:   cause,
	}
}

// CodeOf 提取错误携带的错误码，非EngineError返回空字符串
func CodeOf(err error) ErrorCode {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ""
}

// IsCode 判断错误是否携带指定错误码
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
