package kview

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrOutOfRange 表示下标不在 [0, Len()) 内。只在主机目标上报告。
	ErrOutOfRange = errors.New("kview: index out of range")

	// ErrWireType 表示 protobuf 字段不是 length-delimited 类型。
	ErrWireType = errors.New("kview: field is not length-delimited")
)

// RangeError 描述一次越界访问。
type RangeError struct {
	Index int // 请求的下标
	Len   int // 视图长度
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("kview: index %d out of range [0:%d)", e.Index, e.Len)
}

// Unwrap 使 errors.Is(err, ErrOutOfRange) 成立。
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// GRPCStatus 将越界映射为 codes.OutOfRange，供 status.FromError 使用。
func (e *RangeError) GRPCStatus() *status.Status {
	return status.New(codes.OutOfRange, e.Error())
}
