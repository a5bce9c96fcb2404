package core

import (
	"crypto/sha256"
	"encoding/hex"

	"rebar/pkg/types"
)

// Blob 是一段被“密封”好的文件内容：
// 压缩 -> 加 header -> 对 (header + 压缩字节) 整体做 SHA256。
// 注意哈希覆盖的是完整落盘字节，header 也算在内——
// 同样的逻辑内容，如果压缩结果或 header 不同，Hash 就不同，这是有意的。
type Blob struct {
	hash       types.Hash
	frame      []byte // header + compressed，原样落盘的那一段
	payloadLen int    // 压缩 payload 的字节数 (即 header 里声明的长度)
}

// NewBlob 把原始内容密封成一个 Blob
func NewBlob(content []byte, level int) (*Blob, error) {
	// 1. 压缩 payload
	compressed, err := Compress(content, level)
	if err != nil {
		return nil, err
	}

	// 2. 拼 header，长度 = 压缩后的字节数
	header := EncodeHeader(TypeBlob, len(compressed))

	frame := make([]byte, 0, len(header)+len(compressed))
	frame = append(frame, header...)
	frame = append(frame, compressed...)

	// 3. 对整个 frame 做 SHA256，hex 小写就是 handle
	sum := sha256.Sum256(frame)

	return &Blob{
		hash:       types.Hash(hex.EncodeToString(sum[:])),
		frame:      frame,
		payloadLen: len(compressed),
	}, nil
}

func (b *Blob) Type() ObjectType { return TypeBlob }

func (b *Blob) ID() types.Hash { return b.hash }

func (b *Blob) Bytes() []byte { return b.frame }

// CompressedSize 返回压缩 payload 的字节数 (不含 header)
func (b *Blob) CompressedSize() int { return b.payloadLen }
