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
Package criteria compiles Excel-style criteria strings into predicates.

A criteria string selects cells the way spreadsheet functions such as SUMIF
and COUNTIF do: a comparison operator prefix, a wildcard pattern, or a bare
literal. The compiled predicate is a total function over any cell value,
a type mismatch makes it return false instead of failing.

# Core Features

• Comparison Operators - >=, <=, <>, >, <, = prefixes with numeric or text semantics
• Wildcard Patterns - * matches any run of characters, ? matches exactly one
• Literal Matching - numeric equality when both sides are numbers, otherwise case-insensitive text
• Total Predicates - never panic and never error during matching, mismatches are false
• Compiled Comparisons - ordered comparisons run as compiled expr-lang programs

# Criteria Forms

Forms are recognized in this order, longest operator prefix first:

	">=10", "<=10"  numeric comparison against the remainder
	"<>Apple"       text inequality against the remainder
	">10", "<10"    numeric comparison against the remainder
	"=Apple"        numeric equality when the remainder is a number, else
	                case-insensitive text equality
	"App*", "Gr?y"  wildcard match over the stringified value
	"Apple", "42"   numeric equality when both sides are numbers, else
	                case-insensitive text equality

# Usage Examples

Comparison criteria:

	predicate, err := criteria.Compile(">20")
	if err != nil {
		log.Fatal(err)
	}
	predicate.Test(25)   // true
	predicate.Test(20)   // false
	predicate.Test("eh") // false, non-numeric value

Wildcard criteria:

	predicate, _ := criteria.Compile("*ing")
	predicate.Test("running") // true

One-shot matching:

	criteria.MatchValue("Banana", "<>Apple") // true

# Integration

Integrates with other components:

• Lookup package - XLOOKUP wildcard match mode
• Aggregator package - SUMIF/COUNTIF/AVERAGEIF and the multi-criteria family
• Types package - CriteriaError reporting
*/
package criteria
