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

package cast

import (
	"testing"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		expect float64
		hasErr bool
	}{
		{"int", 123, 123, false},
		{"int64", int64(-7), -7, false},
		{"uint32", uint32(9), 9, false},
		{"float32", float32(1.5), 1.5, false},
		{"float64", 10.99, 10.99, false},
		{"numeric string", "25.50", 25.50, false},
		{"scientific string", "1e3", 1000, false},
		{"bool true", true, 1, false},
		{"invalid string", "Widget", 0, true},
		{"invalid type", []int{1, 2}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToFloat64(tt.input)
			if got != tt.expect {
				t.Errorf("ToFloat64() = %v, want %v", got, tt.expect)
			}

			_, err := ToFloat64E(tt.input)
			if (err != nil) != tt.hasErr {
				t.Errorf("ToFloat64E() error = %v, wantErr %v", err, tt.hasErr)
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		expect string
	}{
		{"string", "Apple", "Apple"},
		{"int", 42, "42"},
		{"float", 10.5, "10.5"},
		{"bool", true, "true"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.input); got != tt.expect {
				t.Errorf("ToString() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		expect int
		hasErr bool
	}{
		{"int", 123, 123, false},
		{"float truncates", 1.9, 1, false},
		{"string", "123", 123, false},
		{"invalid string", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToInt(tt.input)
			if got != tt.expect {
				t.Errorf("ToInt() = %v, want %v", got, tt.expect)
			}

			_, err := ToIntE(tt.input)
			if (err != nil) != tt.hasErr {
				t.Errorf("ToIntE() error = %v, wantErr %v", err, tt.hasErr)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		expect bool
	}{
		{"int", 20, true},
		{"float", 20.5, true},
		{"numeric string", "20", true},
		{"negative string", "-3.5", true},
		{"text", "Apple", false},
		{"nil", nil, false},
		{"slice", []string{"a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNumeric(tt.input); got != tt.expect {
				t.Errorf("IsNumeric(%v) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}
