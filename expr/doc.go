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
Package expr provides sandboxed arithmetic expression parsing and evaluation for FormulaEngine.

This package implements a restricted expression engine for untrusted formula text.
The grammar covers exactly numeric literals, named variables, the arithmetic
operators, parentheses, and calls to functions present in the function registry.
Everything else is rejected structurally before evaluation, which is what makes
the engine safe to feed user-supplied strings.

# Core Features

• Arithmetic Operations - Operators (+, -, *, /, //, %, **) with calculator precedence
• Variable Binding - Identifiers resolve against built-in constants (pi, e) and per-call bindings
• Function Integration - Calls dispatch through the functions package registry
• Structural Sandbox - Strings, comparisons, assignment, subscripts and attribute
  access are rejected at the token level
• Arbitrary Precision Mode - Alternate decimal backend that constant-folds exactly
  and prints partially bound expressions back as canonical text

# Expression Types

The package supports these expression node types:

	TypeNumber      - Numeric constants (integers, floats, scientific notation)
	TypeIdentifier  - Variable and constant references
	TypeOperator    - Binary operators and unary negation
	TypeFunction    - Function calls with argument validation
	TypeParenthesis - Grouped expressions for precedence control

# Usage Examples

Basic mathematical expression:

	expression, err := NewExpression("2 + 2 * 10")
	if err != nil {
		log.Fatal(err)
	}
	result, err := expression.Evaluate(nil) // 22

Expression with variable bindings:

	expression, _ := NewExpression("x + y * 2")
	result, _ := expression.Evaluate(map[string]float64{"x": 10, "y": 5}) // 20

Function call expression:

	expression, _ := NewExpression("sqrt(16) + abs(-2)")
	result, _ := expression.Evaluate(nil) // 6

Arbitrary precision evaluation:

	result, err := EvaluateWithOptions("1 / 3 + x", nil, 10, true)
	// "0.3333333333 + x"

# Operator Precedence

The parser follows calculator precedence rules, loosest to tightest:

 1. Addition, Subtraction (+, -)
 2. Multiplication, Division, Floor Division, Modulo (*, /, //, %)
 3. Unary minus
 4. Power (**, right-associative; ^ is accepted as an alias)
 5. Parentheses, function calls

Unary minus binds looser than power on the left and tighter on the right,
so -2 ** 2 is -4 and 2 ** -1 is 0.5.

# Division Semantics

Division follows IEEE-754 rather than raising: x/0 yields ±Inf and 0/0 yields
NaN, and those values flow through the remaining arithmetic. Domain errors that
the function library reports (such as sqrt of a negative number) surface as
evaluation errors instead.

# Error Handling

Errors carry the engine error codes from the types package:

• UNSUPPORTED_SYNTAX - construct outside the sandboxed grammar
• EXPRESSION_ERROR   - malformed syntax or a failed evaluation step
• UNKNOWN_VARIABLE   - identifier with no binding at evaluation time
• UNKNOWN_FUNCTION   - call target absent from the function registry

# Integration

This package integrates with other FormulaEngine components:

• Functions package - Whitelisted function execution and argument validation
• Types package - Engine error codes and wrapping
*/
package expr
