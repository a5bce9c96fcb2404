package core

import "fmt"

// 对象层的错误分类。
// 每个错误都带结构化字段，调用方用 errors.As 匹配，
// 展示层只需要打印 Error() 文本。

// InvalidTypeError 表示 header 的类型 token 不在封闭集合里
type InvalidTypeError struct {
	Found string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("Invalid object type '%s' (expected blob, tree, or commit)", e.Found)
}

// LengthMismatchError 表示 header 声明的长度和实际内容对不上
// Actual == -1 是一个特殊值：内容比声明的多 (多出来的总量没有定义，
// 因为我们发现第一个多余字节后就停止读取了)。
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	if e.Actual < 0 {
		return fmt.Sprintf("Object length mismatch: header indicates %d bytes, but content length is larger", e.Expected)
	}
	return fmt.Sprintf("Object length mismatch: header indicates %d bytes, but content is %d bytes", e.Expected, e.Actual)
}

// MalformedHeaderError 表示 header 行缺 token 或长度字段不是非负十进制数
type MalformedHeaderError struct {
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("Malformed object header: %s", e.Reason)
}

// CorruptedContentError 表示 payload 解压失败 (位腐烂、截断或根本不是 zstd)
type CorruptedContentError struct {
	Reason string
}

func (e *CorruptedContentError) Error() string {
	return fmt.Sprintf("Corrupted object content: %s", e.Reason)
}

// CompressionError 表示写入路径上的压缩失败
type CompressionError struct {
	Reason string
}

func (e *CompressionError) Error() string {
	return fmt.Sprintf("Failed to compress object: %s", e.Reason)
}
