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
	"time"
)

// Response 是宿主HTTP层使用的统一JSON响应信封。
// success恒为布尔值，失败时code携带稳定错误码。
type Response struct {
	Success   bool        `json:"success"`
	Code      string      `json:"code,omitempty"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// OK 构造成功响应
func OK(data interface{}) Response {
	return Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Fail 根据错误构造失败响应。
// 引擎内部产生的错误总是携带错误码；外部错误统一归入EXPRESSION_ERROR。
func Fail(err error) Response {
	code := ErrCodeExpression
	message := ""
	if err != nil {
		message = err.Error()
		var ee *EngineError
		if errors.As(err, &ee) {
			code = ee.Code
			message = ee.Message
			if ee.Cause != nil {
				message = message + ": " + ee.Cause.Error()
			}
		}
	}
	return Response{
		Success:   false,
		Code:      string(code),
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}
}

// WithRequestID 附加请求级关联标识
func (r Response) WithRequestID(id string) Response {
	r.RequestID = id
	return r
}
