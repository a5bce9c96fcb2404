package core

import "rebar/pkg/types"

// ObjectType 定义了 Rebar 中的对象类型
// 这是一个封闭集合：目前只有 blob，tree/commit 是预留的扩展位。
// 新增类型时只需要加一个常量和 ParseObjectType 的一个 case，
// 再在 exporter 的分发 switch 里挂上对应的解析器。
type ObjectType string

const (
	TypeBlob ObjectType = "blob" // 原始文件内容
	// TypeTree   ObjectType = "tree"
	// TypeCommit ObjectType = "commit"
)

// ParseObjectType 把 header 里的 token 解析成 ObjectType
// 不在封闭集合里的 token 一律拒绝。
func ParseObjectType(s string) (ObjectType, error) {
	switch s {
	case string(TypeBlob):
		return TypeBlob, nil
	default:
		return "", &InvalidTypeError{Found: s}
	}
}

// Object 是所有可持久化对象的通用接口
type Object interface {
	// Type 返回对象类型
	Type() ObjectType

	// ID 返回对象的 Hash (也是它的文件名)
	ID() types.Hash

	// Bytes 返回完整的落盘字节 (header + 压缩后的 payload)
	// 这正是被哈希的那一段，两者永远一致。
	Bytes() []byte
}
