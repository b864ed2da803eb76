package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rulego/formulaengine/types"
)

func TestFilter_Equality(t *testing.T) {
	records := []types.Record{
		{"region": "North", "sales": 100},
		{"region": "South", "sales": 200},
		{"region": "Northeast", "sales": 50},
	}

	result, err := Filter(records, "region == 'North'")
	assert.NoError(t, err)

	expected := []types.Record{
		{"region": "North", "sales": 100},
	}
	assert.Equal(t, expected, result)
}

func TestFilter_Comparison(t *testing.T) {
	records := []types.Record{
		{"region": "North", "sales": 100},
		{"region": "South", "sales": 200},
		{"region": "Northeast", "sales": 50},
	}

	result, err := Filter(records, "sales > 100")
	assert.NoError(t, err)

	expected := []types.Record{
		{"region": "South", "sales": 200},
	}
	assert.Equal(t, expected, result)
}

func TestFilter_CombinedCondition(t *testing.T) {
	records := []types.Record{
		{"region": "North", "sales": 100},
		{"region": "South", "sales": 200},
		{"region": "North", "sales": 30},
	}

	result, err := Filter(records, "region == 'North' && sales >= 100")
	assert.NoError(t, err)

	expected := []types.Record{
		{"region": "North", "sales": 100},
	}
	assert.Equal(t, expected, result)
}

func TestFilter_WildcardMatch(t *testing.T) {
	records := []types.Record{
		{"region": "North", "sales": 100},
		{"region": "South", "sales": 200},
		{"region": "Northeast", "sales": 50},
	}

	result, err := Filter(records, "wildcard_match(region, 'N*')")
	assert.NoError(t, err)

	expected := []types.Record{
		{"region": "North", "sales": 100},
		{"region": "Northeast", "sales": 50},
	}
	assert.Equal(t, expected, result)
}

func TestFilter_NullPredicates(t *testing.T) {
	records := []types.Record{
		{"name": "a", "phone": "123"},
		{"name": "b", "phone": nil},
		{"name": "c"},
	}

	// 值为 nil 和字段缺失都按空处理
	result, err := Filter(records, "is_null(phone)")
	assert.NoError(t, err)
	expected := []types.Record{
		{"name": "b", "phone": nil},
		{"name": "c"},
	}
	assert.Equal(t, expected, result)

	result, err = Filter(records, "is_not_null(phone)")
	assert.NoError(t, err)
	expected = []types.Record{
		{"name": "a", "phone": "123"},
	}
	assert.Equal(t, expected, result)
}

func TestFilter_UndefinedFieldIsNil(t *testing.T) {
	records := []types.Record{
		{"region": "North"},
		{"region": "South"},
	}

	result, err := Filter(records, "missing == nil")
	assert.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestFilter_EvaluationErrorExcludesRecord(t *testing.T) {
	records := []types.Record{
		{"region": "North", "sales": 100},
		{"region": "South", "sales": 200},
	}

	// 数值与字符串比较在求值时报错，对应记录不保留
	result, err := Filter(records, "sales > 'x'")
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestFilter_CompileError(t *testing.T) {
	records := []types.Record{
		{"region": "North", "sales": 100},
	}

	_, err := Filter(records, "region >")
	assert.Error(t, err)
	assert.True(t, types.IsCode(err, types.ErrCodeCriteria))
}

func TestFilter_EmptyInput(t *testing.T) {
	result, err := Filter(nil, "sales > 0")
	assert.NoError(t, err)
	assert.Empty(t, result)
}
