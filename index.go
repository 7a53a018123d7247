package kview

import "kView/target"

// At 返回下标 i 处的字符。
//
// i 越界时：主机目标以 *RangeError 触发 panic，可用 recover 捕获；
// 加速器目标返回 0，不报告任何错误。
func (v View) At(i int) byte {
	c, err := v.Index(i)
	if err != nil {
		panic(err)
	}
	return c
}

// Index 是 At 返回错误的形式。
// 主机目标越界返回 *RangeError；加速器目标越界返回 (0, nil)。
func (v View) Index(i int) (byte, error) {
	if uint(i) < uint(len(v.s)) {
		return v.s[i], nil
	}
	// 编译期常量，另一分支会被消除
	if target.Accelerator {
		return 0, nil
	}
	return 0, &RangeError{Index: i, Len: len(v.s)}
}
