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

// Package table renders result record sets as ASCII tables,
// used for pivot and lookup result inspection.
package table

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// FormatRecords renders records as an ASCII table and returns the string.
// Columns follow fieldOrder first; remaining columns are appended alphabetically.
func FormatRecords(records []map[string]interface{}, fieldOrder []string) string {
	var sb strings.Builder
	Fprint(&sb, records, fieldOrder)
	return sb.String()
}

// Print writes the rendered table to standard output
func Print(records []map[string]interface{}, fieldOrder []string) {
	Fprint(os.Stdout, records, fieldOrder)
}

// Fprint writes the rendered table to w
func Fprint(w io.Writer, records []map[string]interface{}, fieldOrder []string) {
	if len(records) == 0 {
		fmt.Fprintln(w, "(0 rows)")
		return
	}

	columns := orderColumns(records, fieldOrder)

	// 计算每列宽度，最小宽度为4
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
		for _, row := range records {
			if val, exists := row[col]; exists {
				if l := len(fmt.Sprintf("%v", val)); l > widths[i] {
					widths[i] = l
				}
			}
		}
		if widths[i] < 4 {
			widths[i] = 4
		}
	}

	writeBorder(w, widths)
	fmt.Fprint(w, "|")
	for i, col := range columns {
		fmt.Fprintf(w, " %-*s |", widths[i], col)
	}
	fmt.Fprintln(w)
	writeBorder(w, widths)

	for _, row := range records {
		fmt.Fprint(w, "|")
		for i, col := range columns {
			val := ""
			if v, exists := row[col]; exists {
				val = fmt.Sprintf("%v", v)
			}
			fmt.Fprintf(w, " %-*s |", widths[i], val)
		}
		fmt.Fprintln(w)
	}

	writeBorder(w, widths)
	fmt.Fprintf(w, "(%d rows)\n", len(records))
}

// orderColumns 按fieldOrder排列列名，剩余列按字母序追加
func orderColumns(records []map[string]interface{}, fieldOrder []string) []string {
	columnSet := make(map[string]bool)
	for _, row := range records {
		for col := range row {
			columnSet[col] = true
		}
	}

	var columns []string
	for _, field := range fieldOrder {
		if columnSet[field] {
			columns = append(columns, field)
			delete(columnSet, field)
		}
	}

	rest := make([]string, 0, len(columnSet))
	for col := range columnSet {
		rest = append(rest, col)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

func writeBorder(w io.Writer, widths []int) {
	fmt.Fprint(w, "+")
	for _, width := range widths {
		fmt.Fprint(w, strings.Repeat("-", width+2), "+")
	}
	fmt.Fprintln(w)
}
