package kview

import (
	"iter"
	"unsafe"
)

// Iterator 是视图中的一个位置，Begin 与 End 界定 [0, Len())。
type Iterator struct {
	s   string
	pos int
}

// Begin 返回指向第一个字符的迭代器。
func (v View) Begin() Iterator {
	return Iterator{s: v.s}
}

// End 返回指向最后一个字符之后的迭代器。
func (v View) End() Iterator {
	return Iterator{s: v.s, pos: len(v.s)}
}

// Deref 返回当前位置的字符。对 End() 调用是未定义的。
func (it Iterator) Deref() byte {
	return it.s[it.pos]
}

// Next 返回下一个位置。
func (it Iterator) Next() Iterator {
	it.pos++
	return it
}

// Pos 返回相对于 Begin 的偏移。
func (it Iterator) Pos() int {
	return it.pos
}

// Equal 判断两个迭代器是否指向同一缓冲区的同一位置。
func (it Iterator) Equal(o Iterator) bool {
	return it.pos == o.pos && unsafe.StringData(it.s) == unsafe.StringData(o.s)
}

// Distance 返回从 it 到 o 的元素个数。
func (it Iterator) Distance(o Iterator) int {
	return o.pos - it.pos
}

// All 依次产出 (下标, 字符)，恰好 Len() 次。
func (v View) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < len(v.s); i++ {
			if !yield(i, v.s[i]) {
				return
			}
		}
	}
}

// Values 依次产出每个字符。
func (v View) Values() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < len(v.s); i++ {
			if !yield(v.s[i]) {
				return
			}
		}
	}
}
