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
Package functions provides the function registry and execution framework for FormulaEngine.

This package implements a unified function management system that backs both scalar
expression evaluation and grouped aggregation. Every function callable from a formula
is registered here; an expression may only call names present in the registry, which
is what makes the evaluator safe to expose to untrusted formula text.

# Core Features

• Unified Function Registry - Centralized registration and lookup of all function types
• Plugin Architecture - Runtime registration of custom functions without code modification
• Argument Validation - Declarative min/max argument counts checked before execution
• Aggregation Support - Incremental aggregator interface for grouped and pivoted data
• Thread Safety - Concurrent registration and execution guarded by RWMutex

# Function Types

The package supports four function categories:

	TypeMath        - Mathematical functions (abs, sqrt, pow, log, factorial, etc.)
	TypeTrig        - Trigonometric functions (sin, cos, tan, atan2, degrees, etc.)
	TypeAggregation - Aggregate functions (sum, avg, count, max, min, std, var, etc.)
	TypeCustom      - User-defined custom functions

# Built-in Functions

The built-in set mirrors a familiar calculator vocabulary:

	// Mathematical functions
	abs(x)          - Absolute value
	round(x, d)     - Round to d decimal places (banker's rounding)
	sqrt(x)         - Square root
	pow(x, y)       - Power operation
	log(x, base)    - Logarithm, natural when base is omitted
	factorial(n)    - Factorial of a non-negative integer
	gcd(a, b, ...)  - Greatest common divisor

	// Trigonometric functions
	sin(x), cos(x), tan(x)       - Radian trigonometry
	asin(x), acos(x), atan(x)    - Inverse trigonometry
	atan2(y, x)                  - Two-argument arc tangent
	degrees(x), radians(x)       - Angle unit conversion

	// Aggregation functions
	sum(...)        - Sum of values
	avg(...)        - Average of values
	count(...)      - Count of non-null values
	max(...), min(...) - Extremes
	std(...), var(...) - Sample standard deviation and variance

# Custom Function Registration

Simple API for registering custom functions:

	RegisterCustomFunction(
		"fahrenheit_to_celsius",
		TypeCustom,
		"Temperature conversion",
		"Convert Fahrenheit to Celsius",
		1, 1, // min and max arguments
		func(ctx *FunctionContext, args []interface{}) (interface{}, error) {
			f := args[0].(float64)
			return (f - 32) * 5 / 9, nil
		},
	)

# Aggregator Functions

Aggregation functions additionally implement AggregatorFunction, which supports
incremental accumulation over grouped rows:

	agg, _ := functions.CreateAggregator("sum")
	agg.Add(100.0)
	agg.Add(150.0)
	total := agg.Result() // 250.0

An aggregator instance is stateful; New() produces a fresh accumulator so that each
group in a pivot owns independent state.
*/
package functions
