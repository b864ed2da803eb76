package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/formulaengine/types"
)

// TestTokenize 测试基本分词功能
func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			"简单算术",
			"2 + 2 * 10",
			[]string{"2", "+", "2", "*", "10"},
		},
		{
			"幂运算符",
			"2 ** 10",
			[]string{"2", "**", "10"},
		},
		{
			"整除运算符",
			"7 // 2",
			[]string{"7", "//", "2"},
		},
		{
			"幂运算别名",
			"2 ^ 3",
			[]string{"2", "^", "3"},
		},
		{
			"小数与科学计数法",
			"3.14 + 1e3 + 2.5E-2 + .5",
			[]string{"3.14", "+", "1e3", "+", "2.5E-2", "+", ".5"},
		},
		{
			"标识符与函数调用",
			"sqrt(x_1) + rate",
			[]string{"sqrt", "(", "x_1", ")", "+", "rate"},
		},
		{
			"无空白",
			"1+2*3",
			[]string{"1", "+", "2", "*", "3"},
		},
		{
			"函数多参数",
			"pow(2, 10)",
			[]string{"pow", "(", "2", ",", "10", ")"},
		},
		{
			"负数作为运算符序列",
			"-5 + 3",
			[]string{"-", "5", "+", "3"},
		},
		{
			"连续幂与乘",
			"2**3*4",
			[]string{"2", "**", "3", "*", "4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

// TestTokenizeRejects 测试沙箱外字符在分词阶段被拒绝
func TestTokenizeRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  types.ErrorCode
	}{
		{"字符串字面量单引号", "'hello'", types.ErrCodeUnsupportedSyntax},
		{"字符串字面量双引号", `"hello"`, types.ErrCodeUnsupportedSyntax},
		{"比较运算符", "a == b", types.ErrCodeUnsupportedSyntax},
		{"赋值", "x = 1", types.ErrCodeUnsupportedSyntax},
		{"小于号", "a < b", types.ErrCodeUnsupportedSyntax},
		{"下标访问", "a[0]", types.ErrCodeUnsupportedSyntax},
		{"属性访问", "a.b", types.ErrCodeUnsupportedSyntax},
		{"位运算", "a & b", types.ErrCodeUnsupportedSyntax},
		{"语句分隔符", "1; 2", types.ErrCodeUnsupportedSyntax},
		{"未知字符", "1 @ 2", types.ErrCodeUnsupportedSyntax},
		{"空表达式", "   ", types.ErrCodeExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokenize(tt.input)
			require.Error(t, err)
			assert.True(t, types.IsCode(err, tt.code), "expected code %s, got %v", tt.code, err)
		})
	}
}

// TestIsNumber 测试数字判定
func TestIsNumber(t *testing.T) {
	assert.True(t, isNumber("123"))
	assert.True(t, isNumber("3.14"))
	assert.True(t, isNumber(".5"))
	assert.True(t, isNumber("1e3"))
	assert.True(t, isNumber("2.5E-2"))
	assert.False(t, isNumber(""))
	assert.False(t, isNumber("abc"))
	assert.False(t, isNumber("1e"))
	assert.False(t, isNumber("1.2.3"))
}

// TestIsIdentifier 测试标识符判定
func TestIsIdentifier(t *testing.T) {
	assert.True(t, isIdentifier("x"))
	assert.True(t, isIdentifier("_rate"))
	assert.True(t, isIdentifier("x_1"))
	assert.False(t, isIdentifier(""))
	assert.False(t, isIdentifier("1x"))
	assert.False(t, isIdentifier("a-b"))
}
