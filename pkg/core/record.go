package core

import (
	"bufio"
	"fmt"
	"io"
)

// ReadRecord 从 r 中读出一条完整的对象记录 (header + 压缩 payload)，
// 返回对象类型和未解压的 payload。
// 这是读取路径的完整性检查点：
//   - header 声明的长度超过 sizeLimit 时，在分配任何缓冲之前拒绝
//     (防御恶意/损坏的 header 导致无上限分配)
//   - 实际内容不足声明长度 -> LengthMismatch{expected, actual}
//   - 声明长度之后还有数据 -> LengthMismatch{expected, -1}
//     (多出来的总量没有定义，读到第一个多余字节就停)
func ReadRecord(r io.Reader, sizeLimit int) (ObjectType, []byte, error) {
	br := bufio.NewReader(r)

	// 1. 读 header 行
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", nil, fmt.Errorf("failed to read object header: %w", err)
	}

	objectType, size, err := ParseHeader(line)
	if err != nil {
		return "", nil, err
	}

	// 2. 上限检查必须先于分配
	if size > sizeLimit {
		return "", nil, &LengthMismatchError{Expected: sizeLimit, Actual: size}
	}

	// 3. 精确读取声明的字节数
	payload := make([]byte, size)
	n, err := io.ReadFull(br, payload)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return "", nil, &LengthMismatchError{Expected: size, Actual: n}
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to read object content: %w", err)
	}

	// 4. 探测一个多余字节
	var extra [1]byte
	if _, err := io.ReadFull(br, extra[:]); err == nil {
		return "", nil, &LengthMismatchError{Expected: size, Actual: -1}
	}

	return objectType, payload, nil
}
