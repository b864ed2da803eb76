package functions

import (
	"fmt"
	"math"

	"github.com/rulego/formulaengine/utils/cast"
)

// SinFunction 正弦函数
type SinFunction struct {
	*BaseFunction
}

func NewSinFunction() *SinFunction {
	return &SinFunction{
		BaseFunction: NewBaseFunction("sin", TypeTrig, "trigonometry", "Calculate sine of an angle in radians", 1, 1),
	}
}

func (f *SinFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *SinFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	return math.Sin(val), nil
}

// CosFunction 余弦函数
type CosFunction struct {
	*BaseFunction
}

func NewCosFunction() *CosFunction {
	return &CosFunction{
		BaseFunction: NewBaseFunction("cos", TypeTrig, "trigonometry", "Calculate cosine of an angle in radians", 1, 1),
	}
}

func (f *CosFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *CosFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	return math.Cos(val), nil
}

// TanFunction 正切函数
type TanFunction struct {
	*BaseFunction
}

func NewTanFunction() *TanFunction {
	return &TanFunction{
		BaseFunction: NewBaseFunction("tan", TypeTrig, "trigonometry", "计算正切值", 1, 1),
	}
}

func (f *TanFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *TanFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	return math.Tan(val), nil
}

// AsinFunction 反正弦函数
type AsinFunction struct {
	*BaseFunction
}

func NewAsinFunction() *AsinFunction {
	return &AsinFunction{
		BaseFunction: NewBaseFunction("asin", TypeTrig, "trigonometry", "计算反正弦值", 1, 1),
	}
}

func (f *AsinFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *AsinFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	if val < -1 || val > 1 {
		return nil, fmt.Errorf("asin: value out of range [-1,1]")
	}
	return math.Asin(val), nil
}

// AcosFunction 反余弦函数
type AcosFunction struct {
	*BaseFunction
}

func NewAcosFunction() *AcosFunction {
	return &AcosFunction{
		BaseFunction: NewBaseFunction("acos", TypeTrig, "trigonometry", "计算反余弦值", 1, 1),
	}
}

func (f *AcosFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *AcosFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	if val < -1 || val > 1 {
		return nil, fmt.Errorf("acos: value out of range [-1,1]")
	}
	return math.Acos(val), nil
}

// AtanFunction 反正切函数
type AtanFunction struct {
	*BaseFunction
}

func NewAtanFunction() *AtanFunction {
	return &AtanFunction{
		BaseFunction: NewBaseFunction("atan", TypeTrig, "trigonometry", "计算反正切值", 1, 1),
	}
}

func (f *AtanFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *AtanFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	return math.Atan(val), nil
}

// Atan2Function 双参数反正切函数
type Atan2Function struct {
	*BaseFunction
}

func NewAtan2Function() *Atan2Function {
	return &Atan2Function{
		BaseFunction: NewBaseFunction("atan2", TypeTrig, "trigonometry", "Calculate arc tangent of y/x using signs of both", 2, 2),
	}
}

func (f *Atan2Function) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *Atan2Function) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	y, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	x, err := cast.ToFloat64E(args[1])
	if err != nil {
		return nil, err
	}
	return math.Atan2(y, x), nil
}

// DegreesFunction 弧度转角度函数
type DegreesFunction struct {
	*BaseFunction
}

func NewDegreesFunction() *DegreesFunction {
	return &DegreesFunction{
		BaseFunction: NewBaseFunction("degrees", TypeTrig, "trigonometry", "Convert radians to degrees", 1, 1),
	}
}

func (f *DegreesFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *DegreesFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	return val * 180 / math.Pi, nil
}

// RadiansFunction 角度转弧度函数
type RadiansFunction struct {
	*BaseFunction
}

func NewRadiansFunction() *RadiansFunction {
	return &RadiansFunction{
		BaseFunction: NewBaseFunction("radians", TypeTrig, "trigonometry", "Convert degrees to radians", 1, 1),
	}
}

func (f *RadiansFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *RadiansFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	return val * math.Pi / 180, nil
}
