package expr

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rulego/formulaengine/types"
)

// tokenize breaks expression string into token list.
// The token vocabulary is deliberately small: numbers, identifiers, arithmetic
// operators, parentheses and commas. Any character outside it fails here with
// an unsupported-syntax error so that disallowed constructs never reach the
// parser.
func tokenize(expr string) ([]string, error) {
	if len(strings.TrimSpace(expr)) == 0 {
		return nil, types.NewExpressionError("empty expression", nil)
	}

	var tokens []string
	i := 0

	for i < len(expr) {
		// Skip whitespace characters
		if unicode.IsSpace(rune(expr[i])) {
			i++
			continue
		}

		// Handle numbers (including numbers starting with a decimal point)
		if isDigit(expr[i]) || (expr[i] == '.' && i+1 < len(expr) && isDigit(expr[i+1])) {
			start := i

			// Read integer part
			for i < len(expr) && isDigit(expr[i]) {
				i++
			}

			// Handle decimal point (only one decimal point allowed)
			if i < len(expr) && expr[i] == '.' {
				i++
				for i < len(expr) && isDigit(expr[i]) {
					i++
				}
			}

			// Handle scientific notation
			if i < len(expr) && (expr[i] == 'e' || expr[i] == 'E') {
				j := i + 1
				if j < len(expr) && (expr[j] == '+' || expr[j] == '-') {
					j++
				}
				if j < len(expr) && isDigit(expr[j]) {
					i = j
					for i < len(expr) && isDigit(expr[i]) {
						i++
					}
				}
			}

			tokens = append(tokens, expr[start:i])
			continue
		}

		// Handle multi-character operators
		if i+1 < len(expr) {
			twoChar := expr[i : i+2]
			if twoChar == "**" || twoChar == "//" {
				tokens = append(tokens, twoChar)
				i += 2
				continue
			}
		}

		// Handle single-character operators and parentheses
		switch expr[i] {
		case '+', '-', '*', '/', '%', '^', '(', ')', ',':
			tokens = append(tokens, string(expr[i]))
			i++
			continue
		}

		// Handle identifiers
		if isLetter(expr[i]) || expr[i] == '_' {
			start := i
			for i < len(expr) && (isLetter(expr[i]) || isDigit(expr[i]) || expr[i] == '_') {
				i++
			}
			tokens = append(tokens, expr[start:i])
			continue
		}

		// Everything else is outside the sandboxed grammar. Name the common
		// escape attempts so callers get an actionable message.
		switch expr[i] {
		case '\'', '"':
			return nil, types.NewUnsupportedSyntaxError("string literal")
		case '=', '<', '>', '!':
			return nil, types.NewUnsupportedSyntaxError("comparison or assignment operator")
		case '&', '|', '~':
			return nil, types.NewUnsupportedSyntaxError("bitwise operator")
		case '[', ']':
			return nil, types.NewUnsupportedSyntaxError("subscript access")
		case '.':
			return nil, types.NewUnsupportedSyntaxError("attribute access")
		case ';', ':', '{', '}':
			return nil, types.NewUnsupportedSyntaxError(fmt.Sprintf("statement separator '%c'", expr[i]))
		default:
			return nil, types.NewUnsupportedSyntaxError(fmt.Sprintf("character '%c' at position %d", expr[i], i))
		}
	}

	return tokens, nil
}

// isDigit checks if character is a digit
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isLetter checks if character is a letter
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isNumber checks if string is a number
func isNumber(s string) bool {
	if len(s) == 0 {
		return false
	}

	i := 0
	hasDigit := false
	hasDot := false

	for i < len(s) {
		if isDigit(s[i]) {
			hasDigit = true
		} else if s[i] == '.' && !hasDot {
			hasDot = true
		} else if (s[i] == 'e' || s[i] == 'E') && hasDigit {
			// Scientific notation
			i++
			if i < len(s) && (s[i] == '+' || s[i] == '-') {
				i++
			}
			if i >= len(s) {
				return false
			}
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			return i == len(s)
		} else {
			return false
		}
		i++
	}

	return hasDigit
}

// isIdentifier checks if string is a valid identifier
func isIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}

	// First character must be letter or underscore
	if !isLetter(s[0]) && s[0] != '_' {
		return false
	}

	// Remaining characters can be letters, digits, or underscores
	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) && s[i] != '_' {
			return false
		}
	}

	return true
}

// isBinaryOperator checks if token is a binary arithmetic operator
func isBinaryOperator(s string) bool {
	switch s {
	case "+", "-", "*", "/", "//", "%", "**", "^":
		return true
	}
	return false
}
