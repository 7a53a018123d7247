package kview

import "google.golang.org/protobuf/encoding/protowire"

// AppendField 将 v 作为 length-delimited 字段 num 追加到 b。
func AppendField(b []byte, num protowire.Number, v View) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v.s)
}

// ConsumeField 从 b 解析一个 length-delimited 字段，返回字段号、
// 指向 b 内部的视图以及消耗的字节数。返回的视图不持有数据，
// 只在 b 不被修改时有效。
func ConsumeField(b []byte) (protowire.Number, View, int, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return 0, View{}, 0, protowire.ParseError(n)
	}
	if typ != protowire.BytesType {
		return num, View{}, 0, ErrWireType
	}
	payload, m := protowire.ConsumeBytes(b[n:])
	if m < 0 {
		return num, View{}, 0, protowire.ParseError(m)
	}
	return num, FromBytes(payload), n + m, nil
}
