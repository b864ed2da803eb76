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
Package types provides core type definitions and data structures for FormulaEngine.

This package defines the tabular data shapes, lookup result and aggregation
descriptors shared by every engine component, together with the typed error
model and the JSON response envelope used at the host boundary. It has no
dependency on any other engine package.

# Core Features

• Tabular Data - Row-major Table and schemaless Record shapes
• Lookup Results - Found/Value/Index triple where "not found" is not an error
• Aggregation Descriptors - AggregationField with source column, reducer and alias
• Typed Errors - EngineError with a stable machine-readable code per failure kind
• Response Envelope - Stable success/code JSON contract for host HTTP layers

# Tabular Data

Two request-scoped input shapes, never mutated by any operation:

	// 2-D row-major cells, heterogeneous types allowed
	table := types.Table{
		{"A001", "Widget", 10.99},
		{"A002", "Gadget", 25.50},
	}

	// key->value records, heterogeneous schema across records is legal
	records := []types.Record{
		{"region": "North", "sales": 100},
		{"region": "South", "sales": 200},
	}

# Error Model

Every failure carries one of the stable codes:

	UNSUPPORTED_SYNTAX  disallowed construct in an expression
	UNKNOWN_VARIABLE    identifier not bound and not a constant
	UNKNOWN_FUNCTION    call target outside the function whitelist
	EXPRESSION_ERROR    any other evaluation failure (numeric domain etc.)
	DIMENSION_ERROR     mismatched lengths or out-of-range index
	COLUMN_NOT_FOUND    referenced column absent from an input record
	CRITERIA_ERROR      criteria string that cannot be compiled

A missed lookup is deliberately not an error: it surfaces as
LookupResult{Found: false}.

# Response Envelope

Hosts encode results uniformly:

	resp := types.OK(result)
	resp := types.Fail(err) // code and message derived from EngineError

# Integration

Integrates with other FormulaEngine components:

• Expr Package - error kinds raised during parse and evaluation
• Criteria Package - CRITERIA_ERROR construction
• Lookup Package - Table, LookupResult, MatchMode and SearchMode
• Aggregator Package - Record, AggregationField, AggregateType
*/
package types
