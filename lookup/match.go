package lookup

import (
	"fmt"

	"github.com/rulego/formulaengine/criteria"
	"github.com/rulego/formulaengine/types"
	"github.com/rulego/formulaengine/utils/cast"
)

// Match 在一维数组中查找目标值，返回1起始的位置
// matchType=0 精确匹配，取第一个命中
// matchType=1 假定数组升序，取不超过目标值的最大元素
// matchType=-1 假定数组降序，取不小于目标值的最小元素
// 未命中返回 Found=false，不产生错误
func Match(lookupValue interface{}, array []interface{}, matchType int) (types.LookupResult, error) {
	switch matchType {
	case 0:
		for i, cell := range array {
			if equalValues(cell, lookupValue) {
				return matchResult(cell, i), nil
			}
		}
		return types.NotFoundResult(nil), nil

	case 1:
		best := -1
		for i, cell := range array {
			c, ok := compareValues(cell, lookupValue)
			if !ok || c > 0 {
				continue
			}
			if best < 0 {
				best = i
				continue
			}
			if cmp, comparable := compareValues(cell, array[best]); comparable && cmp >= 0 {
				best = i
			}
		}
		if best < 0 {
			return types.NotFoundResult(nil), nil
		}
		return matchResult(array[best], best), nil

	case -1:
		best := -1
		for i, cell := range array {
			c, ok := compareValues(cell, lookupValue)
			if !ok || c < 0 {
				continue
			}
			if best < 0 {
				best = i
				continue
			}
			if cmp, comparable := compareValues(cell, array[best]); comparable && cmp <= 0 {
				best = i
			}
		}
		if best < 0 {
			return types.NotFoundResult(nil), nil
		}
		return matchResult(array[best], best), nil

	default:
		return types.NotFoundResult(nil), types.NewDimensionError(
			fmt.Sprintf("invalid match type: %d", matchType))
	}
}

// matchResult 把0起始下标转成1起始位置
func matchResult(value interface{}, idx int) types.LookupResult {
	return types.LookupResult{Found: true, Value: value, Index: idx + 1}
}

// XLookup 在查找数组中定位目标值，返回结果数组对应位置的元素
// matchMode 控制比较方式，searchMode 控制扫描方式
// 两个数组长度必须一致，否则返回 DimensionError
// 二分查找模式只支持精确匹配并要求输入已按对应方向排序
// 未命中返回 Found=false，Value 为 ifNotFound
func XLookup(lookupValue interface{}, lookupArray, returnArray []interface{},
	ifNotFound interface{}, matchMode types.MatchMode, searchMode types.SearchMode) (types.LookupResult, error) {

	if len(lookupArray) != len(returnArray) {
		return types.NotFoundResult(ifNotFound), types.NewDimensionError(
			fmt.Sprintf("lookup array has %d entries, return array has %d", len(lookupArray), len(returnArray)))
	}

	switch matchMode {
	case types.MatchExact, types.MatchNextSmaller, types.MatchNextLarger, types.MatchWildcard:
	default:
		return types.NotFoundResult(ifNotFound), types.NewDimensionError(
			fmt.Sprintf("invalid match mode: %d", matchMode))
	}

	switch searchMode {
	case types.SearchBinaryAsc, types.SearchBinaryDesc:
		if matchMode != types.MatchExact {
			return types.NotFoundResult(ifNotFound), types.NewDimensionError(
				"binary search supports exact match mode only")
		}
		idx := binarySearch(lookupArray, lookupValue, searchMode == types.SearchBinaryAsc)
		if idx < 0 {
			return types.NotFoundResult(ifNotFound), nil
		}
		return types.FoundResult(returnArray[idx], idx), nil
	case types.SearchFirstToLast, types.SearchLastToFirst:
	default:
		return types.NotFoundResult(ifNotFound), types.NewDimensionError(
			fmt.Sprintf("invalid search mode: %d", searchMode))
	}

	idx := scanLookup(lookupValue, lookupArray, matchMode, searchMode == types.SearchLastToFirst)
	if idx < 0 {
		return types.NotFoundResult(ifNotFound), nil
	}
	return types.FoundResult(returnArray[idx], idx), nil
}

// scanLookup 按扫描方向线性查找，返回命中下标，未命中返回-1
// 精确和通配符模式返回扫描序中第一个命中
// 近似模式在无精确命中时返回最接近目标值的候选
func scanLookup(lookupValue interface{}, lookupArray []interface{}, matchMode types.MatchMode, backward bool) int {
	pattern := ""
	if matchMode == types.MatchWildcard {
		pattern = cast.ToString(lookupValue)
	}

	best := -1
	length := len(lookupArray)
	for step := 0; step < length; step++ {
		i := step
		if backward {
			i = length - 1 - step
		}
		cell := lookupArray[i]

		switch matchMode {
		case types.MatchExact:
			if equalValues(cell, lookupValue) {
				return i
			}
		case types.MatchWildcard:
			if criteria.MatchWildcard(cast.ToString(cell), pattern) {
				return i
			}
		case types.MatchNextSmaller:
			c, ok := compareValues(cell, lookupValue)
			if !ok {
				continue
			}
			if c == 0 {
				return i
			}
			if c < 0 && (best < 0 || betterCandidate(cell, lookupArray[best], true)) {
				best = i
			}
		case types.MatchNextLarger:
			c, ok := compareValues(cell, lookupValue)
			if !ok {
				continue
			}
			if c == 0 {
				return i
			}
			if c > 0 && (best < 0 || betterCandidate(cell, lookupArray[best], false)) {
				best = i
			}
		}
	}
	return best
}

// betterCandidate 判断cell是否严格优于当前最佳候选
// wantGreater 为true时更大者优，否则更小者优
// 同值不更换，保持扫描序中靠前的候选
func betterCandidate(cell, best interface{}, wantGreater bool) bool {
	c, ok := compareValues(cell, best)
	if !ok {
		return false
	}
	if wantGreater {
		return c > 0
	}
	return c < 0
}

// binarySearch 在已排序数组上做精确二分查找
// ascending 指示排序方向，命中返回下标
// 未命中或遇到不可比较元素返回-1
func binarySearch(array []interface{}, lookupValue interface{}, ascending bool) int {
	lo, hi := 0, len(array)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		c, ok := compareValues(array[mid], lookupValue)
		if !ok {
			return -1
		}
		if c == 0 {
			return mid
		}
		if (c < 0) == ascending {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return -1
}
