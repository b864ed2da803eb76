package lookup

import (
	"fmt"

	"github.com/rulego/formulaengine/types"
)

// VLookup 在表格第一列中查找目标值，返回命中行指定列的单元格
// colIndex 是1起始的列号，超出表格列数时返回 DimensionError
// exactMatch 为true时自上而下取第一个相等的行
// exactMatch 为false时假定第一列升序，返回第一列值不超过目标值中最大的那一行
// 未命中返回 Found=false，不产生错误
func VLookup(lookupValue interface{}, table types.Table, colIndex int, exactMatch bool) (types.LookupResult, error) {
	if colIndex < 1 || colIndex > table.ColCount() {
		return types.NotFoundResult(nil), types.NewDimensionError(
			fmt.Sprintf("column index %d out of range, table has %d columns", colIndex, table.ColCount()))
	}

	if exactMatch {
		for i, row := range table {
			if len(row) == 0 {
				continue
			}
			if equalValues(row[0], lookupValue) {
				return types.FoundResult(cellAt(row, colIndex-1), i), nil
			}
		}
		return types.NotFoundResult(nil), nil
	}

	bestRow := -1
	for i, row := range table {
		if len(row) == 0 {
			continue
		}
		c, ok := compareValues(row[0], lookupValue)
		if !ok || c > 0 {
			continue
		}
		if bestRow < 0 {
			bestRow = i
			continue
		}
		// 同值时保留靠后的行，与升序扫描语义一致
		if cmp, comparable := compareValues(row[0], table[bestRow][0]); comparable && cmp >= 0 {
			bestRow = i
		}
	}
	if bestRow < 0 {
		return types.NotFoundResult(nil), nil
	}
	return types.FoundResult(cellAt(table[bestRow], colIndex-1), bestRow), nil
}

// HLookup 在表格第一行中查找目标值，返回命中列指定行的单元格
// 是 VLookup 的转置版本，rowIndex 是1起始的行号，超出行数时返回 DimensionError
func HLookup(lookupValue interface{}, table types.Table, rowIndex int, exactMatch bool) (types.LookupResult, error) {
	if rowIndex < 1 || rowIndex > table.RowCount() {
		return types.NotFoundResult(nil), types.NewDimensionError(
			fmt.Sprintf("row index %d out of range, table has %d rows", rowIndex, table.RowCount()))
	}

	headerRow := table[0]
	targetRow := table[rowIndex-1]

	if exactMatch {
		for j, cell := range headerRow {
			if equalValues(cell, lookupValue) {
				return types.FoundResult(cellAt(targetRow, j), j), nil
			}
		}
		return types.NotFoundResult(nil), nil
	}

	bestCol := -1
	for j, cell := range headerRow {
		c, ok := compareValues(cell, lookupValue)
		if !ok || c > 0 {
			continue
		}
		if bestCol < 0 {
			bestCol = j
			continue
		}
		if cmp, comparable := compareValues(cell, headerRow[bestCol]); comparable && cmp >= 0 {
			bestCol = j
		}
	}
	if bestCol < 0 {
		return types.NotFoundResult(nil), nil
	}
	return types.FoundResult(cellAt(targetRow, bestCol), bestCol), nil
}

// Index 按1起始的行列号读取表格单元格
// 行号或列号越界返回 DimensionError，列号按实际行宽校验
func Index(table types.Table, rowNum, colNum int) (types.LookupResult, error) {
	if rowNum < 1 || rowNum > len(table) {
		return types.NotFoundResult(nil), types.NewDimensionError(
			fmt.Sprintf("row number %d out of range, table has %d rows", rowNum, len(table)))
	}
	row := table[rowNum-1]
	if colNum < 1 || colNum > len(row) {
		return types.NotFoundResult(nil), types.NewDimensionError(
			fmt.Sprintf("column number %d out of range, row %d has %d columns", colNum, rowNum, len(row)))
	}
	return types.FoundResult(row[colNum-1], rowNum-1), nil
}

// cellAt 读取行内单元格，行宽不足时返回nil
func cellAt(row []interface{}, idx int) interface{} {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	return row[idx]
}
