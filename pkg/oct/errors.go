package oct

import "github.com/cockroachdb/errors"

var (
	// ErrUnexpectedEOF 数据不足，无法继续解码
	ErrUnexpectedEOF = errors.New("oct: unexpected end of data")

	// ErrNegativeLength 长度字段为非法负数
	ErrNegativeLength = errors.New("oct: negative length")

	// ErrUnsupportedType 类型不在编解码范围内
	ErrUnsupportedType = errors.New("oct: unsupported type")
)
