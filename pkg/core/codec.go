package core

import (
	"github.com/klauspost/compress/zstd"
)

// zstd 压缩/解压的薄封装。
// level 用 zstd 原生的 0-22 刻度表达 (0 = 用库的默认档位)，
// klauspost 实现内部只有四个速度档，EncoderLevelFromZstd 负责映射。

// Compress 用给定档位压缩 data
// level 是配置值，不是进程常量，所以 encoder 按调用创建。
func Compress(data []byte, level int) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(encoderLevel(level)))
	if err != nil {
		return nil, &CompressionError{Reason: err.Error()}
	}
	defer enc.Close()

	return enc.EncodeAll(data, nil), nil
}

// Decompress 解压一段完整的 zstd 帧
// 任何解码失败都视为内容损坏。
func Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, &CorruptedContentError{Reason: err.Error()}
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, &CorruptedContentError{Reason: "Decompression failed: " + err.Error()}
	}
	return out, nil
}

func encoderLevel(level int) zstd.EncoderLevel {
	if level == 0 {
		return zstd.SpeedDefault
	}
	return zstd.EncoderLevelFromZstd(level)
}
