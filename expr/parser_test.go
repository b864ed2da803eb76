package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/formulaengine/types"
)

// mustParse 解析表达式文本，失败直接终止测试
func mustParse(t *testing.T, input string) *ExprNode {
	t.Helper()
	tokens, err := tokenize(input)
	require.NoError(t, err)
	root, err := ParseExpression(tokens)
	require.NoError(t, err)
	return root
}

// TestParsePrecedence 测试运算符优先级产生的AST形状
func TestParsePrecedence(t *testing.T) {
	t.Run("乘法优先于加法", func(t *testing.T) {
		root := mustParse(t, "2 + 2 * 10")
		require.Equal(t, TypeOperator, root.Type)
		assert.Equal(t, "+", root.Value)
		assert.Equal(t, TypeNumber, root.Left.Type)
		require.Equal(t, TypeOperator, root.Right.Type)
		assert.Equal(t, "*", root.Right.Value)
	})

	t.Run("幂优先于乘法", func(t *testing.T) {
		root := mustParse(t, "2 * 3 ** 2")
		require.Equal(t, "*", root.Value)
		assert.Equal(t, "**", root.Right.Value)
	})

	t.Run("幂运算右结合", func(t *testing.T) {
		// 2 ** 3 ** 2 = 2 ** (3 ** 2)
		root := mustParse(t, "2 ** 3 ** 2")
		require.Equal(t, "**", root.Value)
		assert.Equal(t, TypeNumber, root.Left.Type)
		require.Equal(t, "**", root.Right.Value)
	})

	t.Run("取负比幂松", func(t *testing.T) {
		// -2 ** 2 = -(2 ** 2)
		root := mustParse(t, "-2 ** 2")
		require.Equal(t, OpNegate, root.Value)
		require.NotNil(t, root.Right)
		assert.Equal(t, "**", root.Right.Value)
	})

	t.Run("指数位置的取负不需要括号", func(t *testing.T) {
		// 2 ** -1：指数是一元表达式
		root := mustParse(t, "2 ** -1")
		require.Equal(t, "**", root.Value)
		require.Equal(t, OpNegate, root.Right.Value)
	})

	t.Run("别名规范化为幂", func(t *testing.T) {
		root := mustParse(t, "2 ^ 3")
		assert.Equal(t, "**", root.Value)
	})

	t.Run("同级左结合", func(t *testing.T) {
		// 10 - 4 - 3 = (10 - 4) - 3
		root := mustParse(t, "10 - 4 - 3")
		require.Equal(t, "-", root.Value)
		require.Equal(t, "-", root.Left.Value)
		assert.Equal(t, TypeNumber, root.Right.Type)
	})

	t.Run("括号覆盖优先级", func(t *testing.T) {
		root := mustParse(t, "(2 + 2) * 10")
		require.Equal(t, "*", root.Value)
		assert.Equal(t, TypeParenthesis, root.Left.Type)
		assert.Equal(t, "+", root.Left.Left.Value)
	})

	t.Run("一元加是空操作", func(t *testing.T) {
		root := mustParse(t, "+5")
		assert.Equal(t, TypeNumber, root.Type)
		assert.Equal(t, "5", root.Value)
	})

	t.Run("连续取负", func(t *testing.T) {
		root := mustParse(t, "--5")
		require.Equal(t, OpNegate, root.Value)
		assert.Equal(t, OpNegate, root.Right.Value)
	})
}

// TestParseFunctionCalls 测试函数调用解析
func TestParseFunctionCalls(t *testing.T) {
	t.Run("单参数", func(t *testing.T) {
		root := mustParse(t, "sqrt(16)")
		require.Equal(t, TypeFunction, root.Type)
		assert.Equal(t, "sqrt", root.Value)
		require.Len(t, root.Args, 1)
		assert.Equal(t, "16", root.Args[0].Value)
	})

	t.Run("多参数", func(t *testing.T) {
		root := mustParse(t, "pow(2, 10)")
		require.Equal(t, TypeFunction, root.Type)
		require.Len(t, root.Args, 2)
	})

	t.Run("嵌套调用", func(t *testing.T) {
		root := mustParse(t, "sqrt(abs(-16))")
		require.Equal(t, "sqrt", root.Value)
		require.Len(t, root.Args, 1)
		assert.Equal(t, OpNegate, root.Args[0].Args[0].Value)
	})

	t.Run("参数为表达式", func(t *testing.T) {
		root := mustParse(t, "max(1 + 2, 3 * 4)")
		require.Len(t, root.Args, 2)
		assert.Equal(t, "+", root.Args[0].Value)
		assert.Equal(t, "*", root.Args[1].Value)
	})
}

// TestParseErrors 测试语法错误
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"残留词法单元", "3 5"},
		{"缺少右括号", "(2 + 3"},
		{"缺少操作数", "2 +"},
		{"空括号", "()"},
		{"函数缺少右括号", "sqrt(16"},
		{"函数参数分隔错误", "pow(2 10)"},
		{"孤立运算符", "*"},
		{"连续逗号", "pow(2,,10)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := tokenize(tt.input)
			require.NoError(t, err)
			_, err = ParseExpression(tokens)
			require.Error(t, err)
			assert.True(t, types.IsCode(err, types.ErrCodeExpression), "expected EXPRESSION_ERROR, got %v", err)
		})
	}
}
