// Package kview 提供一个不可变、不持有数据的字符串视图 View，
// 用于需要同时在主机目标和加速器目标上构建运行的测试与诊断代码。
//
// View 只引用外部持有的字节：被引用的缓冲区必须在所有视图的生命周期内
// 保持有效且不被修改，View 本身无法检测悬空引用。
//
// 越界访问的行为取决于编译目标（见 kView/target）：
//   - 主机目标：At 以 *RangeError 触发 panic，Index 返回该错误；
//   - 加速器目标（-tags accel）：At 与 Index 都静默返回 0，越界不可观测。
//
// 同一个表达式因此在两个目标上具有不同的安全保证。
// 两个目标的测试需要分别运行：
//
//	go test ./...
//	go test -tags accel ./...
package kview

import "unsafe"

// View 是一个不可变的字符串视图。
// 零值是空视图。
type View struct {
	s string // 指向外部缓冲区的字符串头，长度在构造后不再改变
}

// Literal 返回字面量 s 的视图。
// Go 字面量不带终止符，因此长度就是 len(s)。
func Literal(s string) View {
	return View{s: s}
}

// FromArray 返回定长字符数组 a 的视图，数组最后一个元素视为终止符，
// 不属于视图内容：容量为 N 的数组得到长度为 N-1 的视图。
// 不复制数据，调用方不得在视图存活期间修改 a。
func FromArray(a []byte) View {
	if len(a) == 0 {
		return View{}
	}
	return View{s: unsafe.String(&a[0], len(a)-1)}
}

// FromBuffer 返回从 p 开始、长度恰为 n 的视图，不做任何校验。
//
// 前置条件：n >= 0；p 为 nil 时 n 必须为 0，且 [p, p+n) 在视图存活期间有效、不被修改。
// 违反前置条件的行为是未定义的。
func FromBuffer(p *byte, n int) View {
	return View{s: unsafe.String(p, n)}
}

// FromBytes 返回 b 的视图，等价于 FromBuffer(unsafe.SliceData(b), len(b))。
func FromBytes(b []byte) View {
	return FromBuffer(unsafe.SliceData(b), len(b))
}

// Data 返回指向第一个字符的指针，空视图可能返回 nil。
func (v View) Data() *byte {
	return unsafe.StringData(v.s)
}

// Len 返回视图的长度。
func (v View) Len() int {
	return len(v.s)
}

// String 返回与视图共享底层字节的字符串。
func (v View) String() string {
	return v.s
}

// ByteSlice 返回数据的一个副本。
func (v View) ByteSlice() []byte {
	return cloneBytes(v.bytes())
}

// bytes 返回共享底层内存的字节切片，调用方不得修改。
func (v View) bytes() []byte {
	return unsafe.Slice(unsafe.StringData(v.s), len(v.s))
}

// cloneBytes 复制一个字节切片，返回其副本。
func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
