package lookup

import (
	"strings"

	"github.com/rulego/formulaengine/utils/cast"
)

// equalValues 判断两个单元格值是否相等
// 两侧都能转成数值时按数值比较，否则按忽略大小写的字符串比较
func equalValues(a, b interface{}) bool {
	na, errA := cast.ToFloat64E(a)
	nb, errB := cast.ToFloat64E(b)
	if errA == nil && errB == nil {
		return na == nb
	}
	return strings.EqualFold(cast.ToString(a), cast.ToString(b))
}

// compareValues 对两个单元格值排序比较，返回 -1/0/1
// 两侧都是数值按数值比较，都不是数值按忽略大小写的字典序比较
// 一数值一文本视为不可比较，第二个返回值为false
func compareValues(a, b interface{}) (int, bool) {
	na, errA := cast.ToFloat64E(a)
	nb, errB := cast.ToFloat64E(b)

	switch {
	case errA == nil && errB == nil:
		if na < nb {
			return -1, true
		}
		if na > nb {
			return 1, true
		}
		return 0, true
	case errA != nil && errB != nil:
		sa := strings.ToLower(cast.ToString(a))
		sb := strings.ToLower(cast.ToString(b))
		return strings.Compare(sa, sb), true
	default:
		return 0, false
	}
}
