package functions

import (
	"fmt"
	"math"

	"github.com/rulego/formulaengine/utils/cast"
)

// AbsFunction 绝对值函数
type AbsFunction struct {
	*BaseFunction
}

func NewAbsFunction() *AbsFunction {
	return &AbsFunction{
		BaseFunction: NewBaseFunction("abs", TypeMath, "math", "Calculate absolute value", 1, 1),
	}
}

func (f *AbsFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *AbsFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	return math.Abs(val), nil
}

// RoundFunction 四舍六入五成双取整函数
type RoundFunction struct {
	*BaseFunction
}

func NewRoundFunction() *RoundFunction {
	return &RoundFunction{
		BaseFunction: NewBaseFunction("round", TypeMath, "math", "Round half to even, optionally to a digit count", 1, 2),
	}
}

func (f *RoundFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *RoundFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return math.RoundToEven(val), nil
	}
	digits, err := cast.ToIntE(args[1])
	if err != nil {
		return nil, fmt.Errorf("round digits must be an integer: %v", args[1])
	}
	shift := math.Pow(10, float64(digits))
	return math.RoundToEven(val*shift) / shift, nil
}

// FloorFunction 向下取整函数
type FloorFunction struct {
	*BaseFunction
}

func NewFloorFunction() *FloorFunction {
	return &FloorFunction{
		BaseFunction: NewBaseFunction("floor", TypeMath, "math", "向下取整", 1, 1),
	}
}

func (f *FloorFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *FloorFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	return math.Floor(val), nil
}

// CeilFunction 向上取整函数
type CeilFunction struct {
	*BaseFunction
}

func NewCeilFunction() *CeilFunction {
	return &CeilFunction{
		BaseFunction: NewBaseFunction("ceil", TypeMath, "math", "向上取整", 1, 1),
	}
}

func (f *CeilFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *CeilFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	return math.Ceil(val), nil
}

// SqrtFunction 平方根函数
type SqrtFunction struct {
	*BaseFunction
}

func NewSqrtFunction() *SqrtFunction {
	return &SqrtFunction{
		BaseFunction: NewBaseFunction("sqrt", TypeMath, "math", "Calculate square root", 1, 1),
	}
}

func (f *SqrtFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *SqrtFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	if val < 0 {
		return nil, fmt.Errorf("sqrt of negative number")
	}
	return math.Sqrt(val), nil
}

// PowFunction 幂运算函数
type PowFunction struct {
	*BaseFunction
}

func NewPowFunction() *PowFunction {
	return &PowFunction{
		BaseFunction: NewBaseFunction("pow", TypeMath, "math", "计算x的y次幂", 2, 2),
	}
}

func (f *PowFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *PowFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	base, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	exponent, err := cast.ToFloat64E(args[1])
	if err != nil {
		return nil, err
	}
	return math.Pow(base, exponent), nil
}

// ExpFunction 自然指数函数
type ExpFunction struct {
	*BaseFunction
}

func NewExpFunction() *ExpFunction {
	return &ExpFunction{
		BaseFunction: NewBaseFunction("exp", TypeMath, "math", "Calculate e raised to the given power", 1, 1),
	}
}

func (f *ExpFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *ExpFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	return math.Exp(val), nil
}

// LogFunction 对数函数，单参数为自然对数，双参数指定底数
type LogFunction struct {
	*BaseFunction
}

func NewLogFunction() *LogFunction {
	return &LogFunction{
		BaseFunction: NewBaseFunction("log", TypeMath, "math", "Calculate logarithm, natural when base is omitted", 1, 2),
	}
}

func (f *LogFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *LogFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	if val <= 0 {
		return nil, fmt.Errorf("log of non-positive number")
	}
	if len(args) == 1 {
		return math.Log(val), nil
	}
	base, err := cast.ToFloat64E(args[1])
	if err != nil {
		return nil, err
	}
	if base <= 0 || base == 1 {
		return nil, fmt.Errorf("invalid log base: %v", base)
	}
	return math.Log(val) / math.Log(base), nil
}

// Log2Function 以2为底的对数函数
type Log2Function struct {
	*BaseFunction
}

func NewLog2Function() *Log2Function {
	return &Log2Function{
		BaseFunction: NewBaseFunction("log2", TypeMath, "math", "计算以2为底的对数", 1, 1),
	}
}

func (f *Log2Function) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *Log2Function) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	if val <= 0 {
		return nil, fmt.Errorf("log2 of non-positive number")
	}
	return math.Log2(val), nil
}

// Log10Function 以10为底的对数函数
type Log10Function struct {
	*BaseFunction
}

func NewLog10Function() *Log10Function {
	return &Log10Function{
		BaseFunction: NewBaseFunction("log10", TypeMath, "math", "Calculate base-10 logarithm", 1, 1),
	}
}

func (f *Log10Function) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *Log10Function) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	if val <= 0 {
		return nil, fmt.Errorf("log10 of non-positive number")
	}
	return math.Log10(val), nil
}

// FactorialFunction 阶乘函数
type FactorialFunction struct {
	*BaseFunction
}

func NewFactorialFunction() *FactorialFunction {
	return &FactorialFunction{
		BaseFunction: NewBaseFunction("factorial", TypeMath, "math", "计算非负整数的阶乘", 1, 1),
	}
}

func (f *FactorialFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *FactorialFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	if val != math.Trunc(val) {
		return nil, fmt.Errorf("factorial requires an integer, got %v", args[0])
	}
	if val < 0 {
		return nil, fmt.Errorf("factorial of negative number")
	}
	// float64 overflows past 170!
	if val > 170 {
		return math.Inf(1), nil
	}
	result := 1.0
	for i := 2.0; i <= val; i++ {
		result *= i
	}
	return result, nil
}

// GcdFunction 最大公约数函数
type GcdFunction struct {
	*BaseFunction
}

func NewGcdFunction() *GcdFunction {
	return &GcdFunction{
		BaseFunction: NewBaseFunction("gcd", TypeMath, "math", "Calculate greatest common divisor", 2, -1),
	}
}

func (f *GcdFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *GcdFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	result := int64(0)
	for _, arg := range args {
		val, err := cast.ToFloat64E(arg)
		if err != nil {
			return nil, err
		}
		if val != math.Trunc(val) {
			return nil, fmt.Errorf("gcd requires integer arguments, got %v", arg)
		}
		n := int64(math.Abs(val))
		for n != 0 {
			result, n = n, result%n
		}
	}
	return float64(result), nil
}

// HypotFunction 斜边长函数
type HypotFunction struct {
	*BaseFunction
}

func NewHypotFunction() *HypotFunction {
	return &HypotFunction{
		BaseFunction: NewBaseFunction("hypot", TypeMath, "math", "计算直角三角形的斜边长", 2, 2),
	}
}

func (f *HypotFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *HypotFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	x, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	y, err := cast.ToFloat64E(args[1])
	if err != nil {
		return nil, err
	}
	return math.Hypot(x, y), nil
}
