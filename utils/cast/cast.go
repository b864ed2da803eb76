/*
 * Copyright 2024 The RuleGo Authors.
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

// Package cast 封装单元格值的类型转换。
// 引擎内所有对单元格、条件操作数和聚合输入的数值/字符串转换都经过这里，
// 保证各组件的转换语义一致。
package cast

import (
	"github.com/spf13/cast"
)

// ToFloat64E 将任意标量转换为float64，无法转换时返回错误
func ToFloat64E(v interface{}) (float64, error) {
	return cast.ToFloat64E(v)
}

// ToFloat64 将任意标量转换为float64，无法转换时返回0
func ToFloat64(v interface{}) float64 {
	return cast.ToFloat64(v)
}

// ToString 将任意标量转换为字符串，无法转换时返回空字符串
func ToString(v interface{}) string {
	return cast.ToString(v)
}

// ToIntE 将任意标量转换为int
func ToIntE(v interface{}) (int, error) {
	return cast.ToIntE(v)
}

// ToInt 将任意标量转换为int，无法转换时返回0
func ToInt(v interface{}) int {
	return cast.ToInt(v)
}

// IsNumeric reports whether v converts cleanly to a float64.
// nil is never numeric, even though numeric casts of nil yield zero.
func IsNumeric(v interface{}) bool {
	if v == nil {
		return false
	}
	_, err := cast.ToFloat64E(v)
	return err == nil
}
