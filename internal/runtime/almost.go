package runtime

import (
	"math"

	"github.com/segmentio/fasthash/fnv1a"
)

// Almost "~" 运算符
//
// 数字按其位模式的 FNV-1a 哈希得到偏移和缩放，相同输入总是得到相同结果；
// 布尔值取反；字符串反转后追加 "~"；nil 变为字符串 "almost nothing"。
func Almost(v Value) Value {
	switch v := v.(type) {
	case Number:
		return almostNumber(v)
	case Bool:
		return !v
	case String:
		return almostString(v)
	}
	return String("almost nothing")
}

func almostNumber(n Number) Number {
	h := fnv1a.HashUint64(math.Float64bits(float64(n)))
	offset := (float64(h&0xffff)/0xffff - 0.5) / 10
	scale := 1 + (float64((h>>16)&0xffff)/0xffff-0.5)/50
	return Number(float64(n)*scale + offset)
}

func almostString(s String) String {
	runes := []rune(string(s))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return String(string(runes) + "~")
}
