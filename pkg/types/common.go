// pkg/types/common.go
package types

import "fmt"

// HashSize 是 Hash 的十六进制字符数 (SHA256 = 32 字节 = 64 个 hex 字符)
const HashSize = 64

// Hash 代表对象的唯一标识符 (SHA256 Hex String)
// 这是一个“值对象”，应当是不可变的。
// 它同时也是对象在 objects/ 目录下的文件名。
type Hash string

func (h Hash) String() string { return string(h) }

func (h Hash) IsZero() bool { return h == "" }

// Validate 做纯语法检查，不碰文件系统
// 合法条件：长度正好 64，且每个字符都是 ASCII hex (大小写不敏感)
// 这样非法的用户输入可以在任何 IO 之前快速失败。
func (h Hash) Validate() error {
	if len(h) != HashSize {
		return &InvalidLengthError{Length: len(h)}
	}
	for i := 0; i < len(h); i++ {
		if !isHexDigit(h[i]) {
			// 只报告第一个非法字符
			return &InvalidCharacterError{Position: i, Char: rune(h[i])}
		}
	}
	return nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// InvalidLengthError 表示 Hash 字符串长度不对
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("Incorrect hash length: expected %d, got %d chars", HashSize, e.Length)
}

// InvalidCharacterError 表示 Hash 里出现了非 hex 字符
// Position 指向第一个非法字符
type InvalidCharacterError struct {
	Position int
	Char     rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("Invalid character '%c' at position %d", e.Char, e.Position)
}

// RepoPath 是仓库元数据目录 (.rebar) 的路径
type RepoPath string

func (p RepoPath) String() string { return string(p) }
