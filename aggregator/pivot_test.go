package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rulego/formulaengine/types"
)

func TestPivot_Basic(t *testing.T) {
	records := []types.Record{
		{"region": "North", "sales": 100},
		{"region": "South", "sales": 200},
		{"region": "North", "sales": 150},
	}

	result, err := Pivot(records, []string{"region"}, nil,
		[]types.AggregationField{{Column: "sales", Aggregate: types.Sum}}, nil)
	assert.NoError(t, err)

	expected := []types.Record{
		{"region": "North", "sales_sum": 250.0},
		{"region": "South", "sales_sum": 200.0},
	}
	assert.Equal(t, expected, result)
}

func TestPivot_MultipleAggregations(t *testing.T) {
	records := []types.Record{
		{"region": "North", "sales": 100},
		{"region": "North", "sales": 150},
	}

	result, err := Pivot(records, []string{"region"}, nil,
		[]types.AggregationField{
			{Column: "sales", Aggregate: types.Sum},
			{Column: "sales", Aggregate: types.Count},
			{Column: "sales", Aggregate: types.Avg},
		}, nil)
	assert.NoError(t, err)

	expected := []types.Record{
		{"region": "North", "sales_sum": 250.0, "sales_count": 2, "sales_avg": 125.0},
	}
	assert.Equal(t, expected, result)
}

func TestPivot_AliasWins(t *testing.T) {
	records := []types.Record{
		{"region": "North", "sales": 100},
	}

	result, err := Pivot(records, []string{"region"}, nil,
		[]types.AggregationField{{Column: "sales", Aggregate: types.Sum, Alias: "total"}}, nil)
	assert.NoError(t, err)

	expected := []types.Record{
		{"region": "North", "total": 100.0},
	}
	assert.Equal(t, expected, result)
}

func TestPivot_AggregateNameNormalization(t *testing.T) {
	records := []types.Record{
		{"region": "North", "sales": 100},
		{"region": "North", "sales": 200},
	}

	// mean 归一化为 avg，输出字段名也使用归一化后的名称
	result, err := Pivot(records, []string{"region"}, nil,
		[]types.AggregationField{{Column: "sales", Aggregate: types.AggregateType("mean")}}, nil)
	assert.NoError(t, err)

	expected := []types.Record{
		{"region": "North", "sales_avg": 150.0},
	}
	assert.Equal(t, expected, result)
}

func TestPivot_ColumnKeys(t *testing.T) {
	records := []types.Record{
		{"region": "North", "quarter": "Q1", "sales": 100},
		{"region": "North", "quarter": "Q2", "sales": 150},
		{"region": "South", "quarter": "Q1", "sales": 200},
	}

	result, err := Pivot(records, []string{"region"}, []string{"quarter"},
		[]types.AggregationField{{Column: "sales", Aggregate: types.Sum}}, 0)
	assert.NoError(t, err)

	// South 没有 Q2 记录，该组合用 fillValue 补齐
	expected := []types.Record{
		{"region": "North", "sales_sum_Q1": 100.0, "sales_sum_Q2": 150.0},
		{"region": "South", "sales_sum_Q1": 200.0, "sales_sum_Q2": 0},
	}
	assert.Equal(t, expected, result)
}

func TestPivot_MultipleRowKeys(t *testing.T) {
	records := []types.Record{
		{"region": "North", "product": "A", "sales": 10},
		{"region": "North", "product": "B", "sales": 20},
		{"region": "North", "product": "A", "sales": 30},
	}

	result, err := Pivot(records, []string{"region", "product"}, nil,
		[]types.AggregationField{{Column: "sales", Aggregate: types.Sum}}, nil)
	assert.NoError(t, err)

	expected := []types.Record{
		{"region": "North", "product": "A", "sales_sum": 40.0},
		{"region": "North", "product": "B", "sales_sum": 20.0},
	}
	assert.Equal(t, expected, result)
}

func TestPivot_NestedRowKey(t *testing.T) {
	records := []types.Record{
		{"user": map[string]interface{}{"region": "North"}, "sales": 100},
		{"user": map[string]interface{}{"region": "North"}, "sales": 150},
	}

	result, err := Pivot(records, []string{"user.region"}, nil,
		[]types.AggregationField{{Column: "sales", Aggregate: types.Sum}}, nil)
	assert.NoError(t, err)

	expected := []types.Record{
		{"user.region": "North", "sales_sum": 250.0},
	}
	assert.Equal(t, expected, result)
}

func TestPivot_SampleStatistics(t *testing.T) {
	records := []types.Record{
		{"region": "North", "sales": 100},
		{"region": "North", "sales": 150},
	}

	result, err := Pivot(records, []string{"region"}, nil,
		[]types.AggregationField{
			{Column: "sales", Aggregate: types.Var},
			{Column: "sales", Aggregate: types.Std},
		}, nil)
	assert.NoError(t, err)
	assert.Len(t, result, 1)

	assert.Equal(t, 1250.0, result[0]["sales_var"])
	assert.InDelta(t, 35.35533905932738, result[0]["sales_std"].(float64), 1e-9)
}

func TestPivot_ColumnNotFound(t *testing.T) {
	records := []types.Record{
		{"region": "North", "sales": 100},
		{"region": "South"},
	}

	_, err := Pivot(records, []string{"region"}, nil,
		[]types.AggregationField{{Column: "sales", Aggregate: types.Sum}}, nil)
	assert.Error(t, err)
	assert.True(t, types.IsCode(err, types.ErrCodeColumnNotFound))

	// 行键列缺失同样在聚合前失败
	_, err = Pivot(records, []string{"missing"}, nil,
		[]types.AggregationField{{Column: "region", Aggregate: types.Count}}, nil)
	assert.Error(t, err)
	assert.True(t, types.IsCode(err, types.ErrCodeColumnNotFound))
}

func TestPivot_Validation(t *testing.T) {
	records := []types.Record{
		{"region": "North", "sales": 100},
	}

	_, err := Pivot(records, []string{"region"}, nil, nil, nil)
	assert.True(t, types.IsCode(err, types.ErrCodeDimension))

	_, err = Pivot(records, []string{"region"}, nil,
		[]types.AggregationField{{Column: "sales", Aggregate: types.AggregateType("median")}}, nil)
	assert.True(t, types.IsCode(err, types.ErrCodeUnknownFunction))
}

func TestPivot_EmptyRecords(t *testing.T) {
	result, err := Pivot(nil, []string{"region"}, nil,
		[]types.AggregationField{{Column: "sales", Aggregate: types.Sum}}, nil)
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestPivot_CountStar(t *testing.T) {
	records := []types.Record{
		{"region": "North"},
		{"region": "North"},
		{"region": "South"},
	}

	result, err := Pivot(records, []string{"region"}, nil,
		[]types.AggregationField{{Column: "*", Aggregate: types.Count, Alias: "rows"}}, nil)
	assert.NoError(t, err)

	expected := []types.Record{
		{"region": "North", "rows": 2},
		{"region": "South", "rows": 1},
	}
	assert.Equal(t, expected, result)
}
