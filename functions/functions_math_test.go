package functions

import (
	"math"
	"testing"
)

// TestMathFunctions 测试数学函数的基本功能
func TestMathFunctions(t *testing.T) {
	tests := []struct {
		name     string
		funcName string
		args     []interface{}
		expected interface{}
		wantErr  bool
	}{
		{
			name:     "abs positive",
			funcName: "abs",
			args:     []interface{}{5},
			expected: float64(5),
			wantErr:  false,
		},
		{
			name:     "abs negative",
			funcName: "abs",
			args:     []interface{}{-5},
			expected: float64(5),
			wantErr:  false,
		},
		{
			name:     "abs zero",
			funcName: "abs",
			args:     []interface{}{0},
			expected: float64(0),
			wantErr:  false,
		},
		{
			name:     "sqrt positive",
			funcName: "sqrt",
			args:     []interface{}{9},
			expected: float64(3),
			wantErr:  false,
		},
		{
			name:     "sqrt 16",
			funcName: "sqrt",
			args:     []interface{}{16.0},
			expected: float64(4),
			wantErr:  false,
		},
		{
			name:     "sqrt zero",
			funcName: "sqrt",
			args:     []interface{}{0},
			expected: float64(0),
			wantErr:  false,
		},
		{
			name:     "pow basic",
			funcName: "pow",
			args:     []interface{}{2, 3},
			expected: float64(8),
			wantErr:  false,
		},
		{
			name:     "pow of ten",
			funcName: "pow",
			args:     []interface{}{2.0, 10.0},
			expected: float64(1024),
			wantErr:  false,
		},
		{
			name:     "pow zero exponent",
			funcName: "pow",
			args:     []interface{}{2.0, 0.0},
			expected: float64(1),
			wantErr:  false,
		},
		{
			name:     "exp zero",
			funcName: "exp",
			args:     []interface{}{0},
			expected: float64(1),
			wantErr:  false,
		},
		{
			name:     "ceil positive",
			funcName: "ceil",
			args:     []interface{}{3.14},
			expected: float64(4),
			wantErr:  false,
		},
		{
			name:     "floor positive",
			funcName: "floor",
			args:     []interface{}{3.14},
			expected: float64(3),
			wantErr:  false,
		},
		{
			name:     "floor negative",
			funcName: "floor",
			args:     []interface{}{-3.14},
			expected: float64(-4),
			wantErr:  false,
		},
		{
			name:     "round down",
			funcName: "round",
			args:     []interface{}{3.2},
			expected: float64(3),
			wantErr:  false,
		},
		{
			name:     "round up",
			funcName: "round",
			args:     []interface{}{3.7},
			expected: float64(4),
			wantErr:  false,
		},
		{
			// 四舍六入五成双：0.5和2.5都取到偶数
			name:     "round half to even low",
			funcName: "round",
			args:     []interface{}{0.5},
			expected: float64(0),
			wantErr:  false,
		},
		{
			name:     "round half to even high",
			funcName: "round",
			args:     []interface{}{2.5},
			expected: float64(2),
			wantErr:  false,
		},
		{
			name:     "round half odd",
			funcName: "round",
			args:     []interface{}{1.5},
			expected: float64(2),
			wantErr:  false,
		},
		{
			name:     "round with digits",
			funcName: "round",
			args:     []interface{}{3.14159, 2},
			expected: float64(3.14),
			wantErr:  false,
		},
		{
			name:     "round negative digits",
			funcName: "round",
			args:     []interface{}{1234.0, -2},
			expected: float64(1200),
			wantErr:  false,
		},
		{
			name:     "log natural of e",
			funcName: "log",
			args:     []interface{}{math.E},
			expected: float64(1),
			wantErr:  false,
		},
		{
			name:     "log2 eight",
			funcName: "log2",
			args:     []interface{}{8.0},
			expected: float64(3),
			wantErr:  false,
		},
		{
			name:     "log2 one",
			funcName: "log2",
			args:     []interface{}{1.0},
			expected: float64(0),
			wantErr:  false,
		},
		{
			name:     "log10 hundred",
			funcName: "log10",
			args:     []interface{}{100},
			expected: float64(2),
			wantErr:  false,
		},
		{
			name:     "factorial zero",
			funcName: "factorial",
			args:     []interface{}{0},
			expected: float64(1),
			wantErr:  false,
		},
		{
			name:     "factorial five",
			funcName: "factorial",
			args:     []interface{}{5},
			expected: float64(120),
			wantErr:  false,
		},
		{
			name:     "gcd basic",
			funcName: "gcd",
			args:     []interface{}{12, 18},
			expected: float64(6),
			wantErr:  false,
		},
		{
			name:     "gcd three args",
			funcName: "gcd",
			args:     []interface{}{12, 18, 24},
			expected: float64(6),
			wantErr:  false,
		},
		{
			name:     "gcd negative",
			funcName: "gcd",
			args:     []interface{}{-4, 6},
			expected: float64(2),
			wantErr:  false,
		},
		{
			name:     "gcd with zero",
			funcName: "gcd",
			args:     []interface{}{0, 5},
			expected: float64(5),
			wantErr:  false,
		},
		{
			name:     "hypot 3 4",
			funcName: "hypot",
			args:     []interface{}{3, 4},
			expected: float64(5),
			wantErr:  false,
		},
		// 错误处理测试用例
		{
			name:     "sqrt negative",
			funcName: "sqrt",
			args:     []interface{}{-4},
			expected: nil,
			wantErr:  true,
		},
		{
			name:     "abs invalid type",
			funcName: "abs",
			args:     []interface{}{"invalid"},
			expected: nil,
			wantErr:  true,
		},
		{
			name:     "log of zero",
			funcName: "log",
			args:     []interface{}{0},
			expected: nil,
			wantErr:  true,
		},
		{
			name:     "log negative",
			funcName: "log",
			args:     []interface{}{-1.0},
			expected: nil,
			wantErr:  true,
		},
		{
			name:     "log invalid base",
			funcName: "log",
			args:     []interface{}{8.0, 1.0},
			expected: nil,
			wantErr:  true,
		},
		{
			name:     "log2 of zero",
			funcName: "log2",
			args:     []interface{}{0},
			expected: nil,
			wantErr:  true,
		},
		{
			name:     "factorial negative",
			funcName: "factorial",
			args:     []interface{}{-1},
			expected: nil,
			wantErr:  true,
		},
		{
			name:     "factorial non-integer",
			funcName: "factorial",
			args:     []interface{}{1.5},
			expected: nil,
			wantErr:  true,
		},
		{
			name:     "gcd non-integer",
			funcName: "gcd",
			args:     []interface{}{1.5, 2},
			expected: nil,
			wantErr:  true,
		},
		{
			name:     "round invalid digits",
			funcName: "round",
			args:     []interface{}{3.14, "two"},
			expected: nil,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, exists := Get(tt.funcName)
			if !exists {
				t.Fatalf("Function %s not found", tt.funcName)
			}

			result, err := fn.Execute(&FunctionContext{}, tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Execute() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if result != tt.expected {
				t.Errorf("Execute() result = %v, want %v", result, tt.expected)
			}
		})
	}

	// 特殊测试：带底数的对数存在浮点舍入，用误差比较
	t.Run("log with base", func(t *testing.T) {
		fn, _ := Get("log")
		result, err := fn.Execute(&FunctionContext{}, []interface{}{8.0, 2.0})
		if err != nil {
			t.Fatalf("log(8, 2) error = %v", err)
		}
		if math.Abs(result.(float64)-3) > 1e-12 {
			t.Errorf("log(8, 2) = %v, want 3", result)
		}
	})

	// 特殊测试：factorial溢出返回+Inf
	t.Run("factorial overflow", func(t *testing.T) {
		fn, _ := Get("factorial")
		result, err := fn.Execute(&FunctionContext{}, []interface{}{200})
		if err != nil {
			t.Fatalf("factorial(200) error = %v", err)
		}
		if !math.IsInf(result.(float64), 1) {
			t.Errorf("factorial(200) = %v, want +Inf", result)
		}
	})
}

// TestMathFunctionValidation 测试数学函数的参数验证
func TestMathFunctionValidation(t *testing.T) {
	tests := []struct {
		name     string
		funcName string
		args     []interface{}
		wantErr  bool
	}{
		{
			name:     "abs no args",
			funcName: "abs",
			args:     []interface{}{},
			wantErr:  true,
		},
		{
			name:     "abs too many args",
			funcName: "abs",
			args:     []interface{}{1, 2},
			wantErr:  true,
		},
		{
			name:     "pow one arg",
			funcName: "pow",
			args:     []interface{}{2},
			wantErr:  true,
		},
		{
			name:     "round three args",
			funcName: "round",
			args:     []interface{}{3.14, 2, 1},
			wantErr:  true,
		},
		{
			name:     "gcd one arg",
			funcName: "gcd",
			args:     []interface{}{12},
			wantErr:  true,
		},
		{
			name:     "gcd many args ok",
			funcName: "gcd",
			args:     []interface{}{12, 18, 24, 30},
			wantErr:  false,
		},
		{
			name:     "log two args ok",
			funcName: "log",
			args:     []interface{}{8.0, 2.0},
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, exists := Get(tt.funcName)
			if !exists {
				t.Fatalf("Function %s not found", tt.funcName)
			}

			err := fn.Validate(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
