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

package functions

import (
	"fmt"
	"strings"
	"sync"
)

// FunctionType 函数类型
type FunctionType string

const (
	TypeMath        FunctionType = "math"        // 数学函数
	TypeTrig        FunctionType = "trig"        // 三角函数
	TypeAggregation FunctionType = "aggregation" // 聚合函数
	TypeCustom      FunctionType = "custom"      // 自定义函数
)

// FunctionContext 函数执行上下文
type FunctionContext struct {
	// Data carries the variable bindings visible to the function call.
	Data map[string]interface{}
}

// Function 函数接口
type Function interface {
	// GetName 获取函数名称
	GetName() string

	// GetType 获取函数类型
	GetType() FunctionType

	// GetCategory 获取函数分类
	GetCategory() string

	// GetDescription 获取函数描述
	GetDescription() string

	// Validate 验证参数
	Validate(args []interface{}) error

	// Execute 执行函数
	Execute(ctx *FunctionContext, args []interface{}) (interface{}, error)
}

// FunctionRegistry 函数注册表
type FunctionRegistry struct {
	mu        sync.RWMutex
	functions map[string]Function
}

// NewFunctionRegistry 创建新的函数注册表
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		functions: make(map[string]Function),
	}
}

// Register 注册函数
func (r *FunctionRegistry) Register(fn Function) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(fn.GetName())
	if _, exists := r.functions[name]; exists {
		return fmt.Errorf("function %s already registered", name)
	}

	r.functions[name] = fn
	return nil
}

// Unregister 注销函数
func (r *FunctionRegistry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.ToLower(name)
	if _, exists := r.functions[name]; !exists {
		return false
	}

	delete(r.functions, name)
	return true
}

// Get 获取函数
func (r *FunctionRegistry) Get(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.functions[strings.ToLower(name)]
	return fn, exists
}

// GetByType 按类型获取函数列表
func (r *FunctionRegistry) GetByType(fnType FunctionType) []Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Function
	for _, fn := range r.functions {
		if fn.GetType() == fnType {
			result = append(result, fn)
		}
	}
	return result
}

// ListAll 列出所有函数
func (r *FunctionRegistry) ListAll() map[string]Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]Function, len(r.functions))
	for name, fn := range r.functions {
		result[name] = fn
	}
	return result
}

// 全局函数注册表
var globalRegistry = NewFunctionRegistry()

// Register 注册函数到全局注册表
func Register(fn Function) error {
	return globalRegistry.Register(fn)
}

// Unregister 从全局注册表注销函数
func Unregister(name string) bool {
	return globalRegistry.Unregister(name)
}

// Get 从全局注册表获取函数
func Get(name string) (Function, bool) {
	return globalRegistry.Get(name)
}

// GetByType 按类型从全局注册表获取函数
func GetByType(fnType FunctionType) []Function {
	return globalRegistry.GetByType(fnType)
}

// ListAll 列出全局注册表中的所有函数
func ListAll() map[string]Function {
	return globalRegistry.ListAll()
}

// Execute 执行全局注册表中的函数
func Execute(name string, ctx *FunctionContext, args []interface{}) (interface{}, error) {
	fn, exists := Get(name)
	if !exists {
		return nil, fmt.Errorf("unknown function: %s", name)
	}

	if err := fn.Validate(args); err != nil {
		return nil, err
	}

	return fn.Execute(ctx, args)
}

// CustomFunction 自定义函数包装器
type CustomFunction struct {
	*BaseFunction
	executor func(ctx *FunctionContext, args []interface{}) (interface{}, error)
}

func (f *CustomFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *CustomFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return f.executor(ctx, args)
}

// RegisterCustomFunction 注册自定义函数的便捷方法
func RegisterCustomFunction(name string, fnType FunctionType, category, description string, minArgs, maxArgs int,
	executor func(ctx *FunctionContext, args []interface{}) (interface{}, error)) error {
	fn := &CustomFunction{
		BaseFunction: NewBaseFunction(name, fnType, category, description, minArgs, maxArgs),
		executor:     executor,
	}
	return Register(fn)
}

// init 注册所有内置函数
func init() {
	// 数学函数
	_ = Register(NewAbsFunction())
	_ = Register(NewRoundFunction())
	_ = Register(NewFloorFunction())
	_ = Register(NewCeilFunction())
	_ = Register(NewSqrtFunction())
	_ = Register(NewPowFunction())
	_ = Register(NewExpFunction())
	_ = Register(NewLogFunction())
	_ = Register(NewLog2Function())
	_ = Register(NewLog10Function())
	_ = Register(NewFactorialFunction())
	_ = Register(NewGcdFunction())
	_ = Register(NewHypotFunction())

	// 三角函数
	_ = Register(NewSinFunction())
	_ = Register(NewCosFunction())
	_ = Register(NewTanFunction())
	_ = Register(NewAsinFunction())
	_ = Register(NewAcosFunction())
	_ = Register(NewAtanFunction())
	_ = Register(NewAtan2Function())
	_ = Register(NewDegreesFunction())
	_ = Register(NewRadiansFunction())

	// 聚合函数
	_ = Register(NewSumFunction())
	_ = Register(NewMinFunction())
	_ = Register(NewMaxFunction())
	_ = Register(NewCountFunction())
	_ = Register(NewAvgFunction())
	_ = Register(NewStdFunction())
	_ = Register(NewVarFunction())
	_ = Register(NewFirstFunction())
	_ = Register(NewLastFunction())
}
