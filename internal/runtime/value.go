// Package runtime fddl 运行时：值、作用域与运行错误
package runtime

import (
	"math"
	"strconv"
)

// Value 运行时值：Number、Bool、String 或 Nil
// 值都是纯数据，两个 Value 用 == 比较即为结构相等
type Value interface {
	String() string
	TypeName() string
	value()
}

// Number 64 位浮点数
type Number float64

// Bool 布尔值
type Bool bool

// String 不可变字符串
type String string

// Nil 空值
type Nil struct{}

func (Number) value() {}
func (Bool) value()   {}
func (String) value() {}
func (Nil) value()    {}

func (Number) TypeName() string { return "number" }
func (Bool) TypeName() string   { return "bool" }
func (String) TypeName() string { return "string" }
func (Nil) TypeName() string    { return "nil" }

// String 以最短十进制形式输出，不使用指数
func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (s String) String() string { return string(s) }

func (Nil) String() string { return "nil" }

// Truthy 条件判断中的真假，只有 false 和 nil 为假
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Nil, nil:
		return false
	}
	return true
}

// Equal 结构相等，不同类型的值永不相等
func Equal(a, b Value) bool {
	return a == b
}

// Describe 用于错误信息，字符串带引号
func Describe(v Value) string {
	switch v := v.(type) {
	case String:
		return "string " + strconv.Quote(string(v))
	case Nil:
		return "nil"
	}
	return v.TypeName() + " " + v.String()
}
