package aggregator

import (
	"fmt"

	"github.com/rulego/formulaengine/criteria"
	"github.com/rulego/formulaengine/types"
	"github.com/rulego/formulaengine/utils/cast"
)

// SumIf 按条件累加
// 对条件范围逐项应用编译后的条件，累加值范围中对应位置的数值
// sumRange 为nil时直接对条件范围本身求和，非数值项跳过
// 无命中时返回0
func SumIf(criteriaRange []interface{}, criteriaStr string, sumRange []interface{}) (float64, error) {
	valueRange, predicate, err := prepareSingleCriteria(criteriaRange, criteriaStr, sumRange)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for i, cell := range criteriaRange {
		if !predicate.Test(cell) {
			continue
		}
		if num, castErr := cast.ToFloat64E(valueRange[i]); castErr == nil {
			total += num
		}
	}
	return total, nil
}

// CountIf 按条件计数，返回条件范围中命中的项数
func CountIf(criteriaRange []interface{}, criteriaStr string) (int, error) {
	predicate, err := criteria.Compile(criteriaStr)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, cell := range criteriaRange {
		if predicate.Test(cell) {
			count++
		}
	}
	return count, nil
}

// AverageIf 按条件求平均
// avgRange 为nil时对条件范围本身求平均，非数值项跳过
// 没有参与计算的数值时返回nil，不产生除零错误
func AverageIf(criteriaRange []interface{}, criteriaStr string, avgRange []interface{}) (interface{}, error) {
	valueRange, predicate, err := prepareSingleCriteria(criteriaRange, criteriaStr, avgRange)
	if err != nil {
		return nil, err
	}

	total := 0.0
	count := 0
	for i, cell := range criteriaRange {
		if !predicate.Test(cell) {
			continue
		}
		if num, castErr := cast.ToFloat64E(valueRange[i]); castErr == nil {
			total += num
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	return total / float64(count), nil
}

// SumIfs 多条件累加，所有条件同时成立的行才参与求和
func SumIfs(sumRange []interface{}, criteriaRanges [][]interface{}, criteriaList []string) (float64, error) {
	predicates, err := prepareMultiCriteria(len(sumRange), criteriaRanges, criteriaList)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for i := range sumRange {
		if !rowMatches(criteriaRanges, predicates, i) {
			continue
		}
		if num, castErr := cast.ToFloat64E(sumRange[i]); castErr == nil {
			total += num
		}
	}
	return total, nil
}

// CountIfs 多条件计数，返回所有条件同时成立的行数
func CountIfs(criteriaRanges [][]interface{}, criteriaList []string) (int, error) {
	if len(criteriaRanges) == 0 {
		return 0, types.NewDimensionError("at least one criteria range is required")
	}
	predicates, err := prepareMultiCriteria(len(criteriaRanges[0]), criteriaRanges, criteriaList)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range criteriaRanges[0] {
		if rowMatches(criteriaRanges, predicates, i) {
			count++
		}
	}
	return count, nil
}

// MaxIfs 多条件求最大值，没有符合条件的数值时返回nil
func MaxIfs(maxRange []interface{}, criteriaRanges [][]interface{}, criteriaList []string) (interface{}, error) {
	predicates, err := prepareMultiCriteria(len(maxRange), criteriaRanges, criteriaList)
	if err != nil {
		return nil, err
	}

	var best float64
	found := false
	for i := range maxRange {
		if !rowMatches(criteriaRanges, predicates, i) {
			continue
		}
		num, castErr := cast.ToFloat64E(maxRange[i])
		if castErr != nil {
			continue
		}
		if !found || num > best {
			best = num
			found = true
		}
	}
	if !found {
		return nil, nil
	}
	return best, nil
}

// MinIfs 多条件求最小值，没有符合条件的数值时返回nil
func MinIfs(minRange []interface{}, criteriaRanges [][]interface{}, criteriaList []string) (interface{}, error) {
	predicates, err := prepareMultiCriteria(len(minRange), criteriaRanges, criteriaList)
	if err != nil {
		return nil, err
	}

	var best float64
	found := false
	for i := range minRange {
		if !rowMatches(criteriaRanges, predicates, i) {
			continue
		}
		num, castErr := cast.ToFloat64E(minRange[i])
		if castErr != nil {
			continue
		}
		if !found || num < best {
			best = num
			found = true
		}
	}
	if !found {
		return nil, nil
	}
	return best, nil
}

// prepareSingleCriteria 校验单条件聚合的输入并编译条件
// 值范围缺省为条件范围本身，单独给出时长度必须一致
func prepareSingleCriteria(criteriaRange []interface{}, criteriaStr string, valueRange []interface{}) ([]interface{}, criteria.Predicate, error) {
	if valueRange == nil {
		valueRange = criteriaRange
	} else if len(valueRange) != len(criteriaRange) {
		return nil, nil, types.NewDimensionError(
			fmt.Sprintf("criteria range has %d entries, value range has %d", len(criteriaRange), len(valueRange)))
	}

	predicate, err := criteria.Compile(criteriaStr)
	if err != nil {
		return nil, nil, err
	}
	return valueRange, predicate, nil
}

// prepareMultiCriteria 校验多条件聚合的输入并编译全部条件
// 条件范围个数必须与条件个数一致，所有范围长度必须等于目标范围长度
func prepareMultiCriteria(targetLength int, criteriaRanges [][]interface{}, criteriaList []string) ([]criteria.Predicate, error) {
	if len(criteriaRanges) == 0 {
		return nil, types.NewDimensionError("at least one criteria range is required")
	}
	if len(criteriaRanges) != len(criteriaList) {
		return nil, types.NewDimensionError(
			fmt.Sprintf("%d criteria ranges with %d criteria", len(criteriaRanges), len(criteriaList)))
	}
	for i, criteriaRange := range criteriaRanges {
		if len(criteriaRange) != targetLength {
			return nil, types.NewDimensionError(
				fmt.Sprintf("criteria range %d has %d entries, expected %d", i+1, len(criteriaRange), targetLength))
		}
	}

	predicates := make([]criteria.Predicate, len(criteriaList))
	for i, criteriaStr := range criteriaList {
		predicate, err := criteria.Compile(criteriaStr)
		if err != nil {
			return nil, err
		}
		predicates[i] = predicate
	}
	return predicates, nil
}

// rowMatches 判断第i行是否同时满足全部条件
func rowMatches(criteriaRanges [][]interface{}, predicates []criteria.Predicate, i int) bool {
	for j, predicate := range predicates {
		if !predicate.Test(criteriaRanges[j][i]) {
			return false
		}
	}
	return true
}
