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

/*
Package aggregator implements conditional aggregation and pivot operations.

The package covers the spreadsheet conditional family (SUMIF, COUNTIF,
AVERAGEIF and the multi-criteria SUMIFS, COUNTIFS, MAXIFS, MINIFS), a
group aggregator over key-value records, and a pivot operator that groups
records by row keys, optionally splits columns by column-key values and
emits a flattened result table. Criteria strings are compiled by the
criteria package; reductions run on the incremental aggregator instances
from the functions package.

# Core Features

• Single-Criterion Aggregation - SUMIF/COUNTIF/AVERAGEIF with optional separate value range
• Multi-Criteria Aggregation - SUMIFS/COUNTIFS/MAXIFS/MINIFS, all criteria ANDed
• Group Aggregation - incremental per-group aggregator instances with first-seen group order
• Pivot - row keys, optional column splitting, fill values, flattened output records
• Record Filtering - boolean expression filter over record sets
• Nested Field Access - dotted paths such as user.region resolve into nested records

# Aggregation Types

sum, count, avg (mean/average), min, max, std, var, first, last. Standard
deviation and variance are the sample variants. Numeric aggregations coerce
cell values to float64 and skip values that do not convert; count, first and
last accept any non-nil value.

# Usage Examples

Conditional sum:

	fruits := []interface{}{"Apple", "Banana", "Apple", "Cherry"}
	sales := []interface{}{100, 150, 225, 75}
	total, err := aggregator.SumIf(fruits, "Apple", sales)
	// total == 325

Pivot:

	records := []types.Record{
		{"region": "North", "sales": 100},
		{"region": "South", "sales": 200},
		{"region": "North", "sales": 150},
	}
	result, err := aggregator.Pivot(records, []string{"region"}, nil,
		[]types.AggregationField{{Column: "sales", Aggregate: types.Sum}}, nil)
	// result[0] == {"region": "North", "sales_sum": 250.0}
	// result[1] == {"region": "South", "sales_sum": 200.0}

Record filtering:

	kept, err := aggregator.Filter(records, "region == 'North' && sales > 100")

# Integration

Integrates with other components:

• Criteria package - criteria string compilation for the IF family
• Functions package - incremental aggregator instances
• Types package - Record, AggregationField, DimensionError, ColumnNotFound
• Utils packages - numeric casting and nested field paths
*/
package aggregator
