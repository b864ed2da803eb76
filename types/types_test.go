package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableDimensions(t *testing.T) {
	table := Table{
		{"A001", "Widget", 10.99},
		{"A002", "Gadget", 25.50},
		{"A003"},
	}

	assert.Equal(t, 3, table.RowCount())
	assert.Equal(t, 3, table.ColCount())
	assert.Equal(t, 0, Table{}.RowCount())
	assert.Equal(t, 0, Table{}.ColCount())
}

func TestRecordClone(t *testing.T) {
	r := Record{"region": "North", "sales": 100}
	c := r.Clone()
	c["sales"] = 999

	assert.Equal(t, 100, r["sales"])
	assert.Equal(t, 999, c["sales"])
}

func TestNormalizeAggregateType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  AggregateType
		ok    bool
	}{
		{"sum", "sum", Sum, true},
		{"mean alias", "mean", Avg, true},
		{"average alias", "Average", Avg, true},
		{"stddev alias", "stddev", Std, true},
		{"variance alias", "variance", Var, true},
		{"first", "first", First, true},
		{"last", "last", Last, true},
		{"whitespace tolerated", " count ", Count, true},
		{"unknown", "median", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeAggregateType(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregationFieldOutputName(t *testing.T) {
	assert.Equal(t, "sales_sum", AggregationField{Column: "sales", Aggregate: Sum}.OutputName())
	assert.Equal(t, "total", AggregationField{Column: "sales", Aggregate: Sum, Alias: "total"}.OutputName())
}

func TestLookupResultConstructors(t *testing.T) {
	hit := FoundResult("Gadget", 1)
	assert.True(t, hit.Found)
	assert.Equal(t, "Gadget", hit.Value)
	assert.Equal(t, 1, hit.Index)

	miss := NotFoundResult(nil)
	assert.False(t, miss.Found)
	assert.Nil(t, miss.Value)
	assert.Equal(t, -1, miss.Index)

	missWithDefault := NotFoundResult("n/a")
	assert.Equal(t, "n/a", missWithDefault.Value)
}
