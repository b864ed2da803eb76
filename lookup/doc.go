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
Package lookup implements table and array lookup operations.

The package covers the spreadsheet lookup family: vertical and horizontal
table lookup, positional access, position search over one-dimensional
arrays, and the flexible XLOOKUP with configurable match and search modes.
All operations are read-only over their inputs and return
types.LookupResult, where Found=false is a normal outcome and never an
error. Errors are reserved for structural problems such as out-of-range
indexes and length mismatches.

# Core Features

• VLookup - search the first column, return a cell from the matched row
• HLookup - search the first row, return a cell from the matched column
• Index - 1-based positional access into a table
• Match - position search with exact, ascending and descending modes
• XLookup - exact, nearest-smaller, nearest-larger and wildcard matching
  with forward, backward and binary search modes

# Value Comparison

Cells compare numerically when both sides convert to numbers, otherwise
as case-insensitive text. Ordering between a number and a non-numeric
text value is undefined, such cells never satisfy an ordered lookup.

# Usage Examples

Exact vertical lookup:

	table := types.Table{
		{"A001", "Widget", 10.99},
		{"A002", "Gadget", 25.50},
	}
	result, err := lookup.VLookup("A002", table, 2, true)
	// result.Found == true, result.Value == "Gadget", result.Index == 1

Position search:

	result, _ := lookup.Match(30, []interface{}{10, 20, 30, 40}, 0)
	// result.Index == 3 (1-based position)

Flexible lookup with defaults:

	result, _ := lookup.XLookup("C9", keys, names, "missing",
		types.MatchExact, types.SearchFirstToLast)
	// result.Found == false, result.Value == "missing"

# Integration

Integrates with other components:

• Criteria package - wildcard matching for XLOOKUP match mode 2
• Types package - LookupResult, MatchMode, SearchMode, DimensionError
*/
package lookup
