package kview

import (
	"fmt"
	"io"
)

// WriteTo 将视图的 Len() 个字节原样写入 w，不加引号或转义。仅用于主机端诊断输出。
func (v View) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.s)
	return int64(n), err
}

// Format 实现 fmt.Formatter，按原始格式指令（含宽度、精度和标志）把视图当作字符串格式化。
func (v View) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), v.s)
}
