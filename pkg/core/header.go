package core

import (
	"fmt"
	"strconv"
	"strings"
)

// 对象的 header 是一行文本："<type> <decimal-length>\n"
// length 指的是 header 之后压缩字节的精确数量，无符号、无前导 '+'。
// header 本身参与哈希，所以 Encode/Parse 必须严格互逆。

// EncodeHeader 生成 header 行
func EncodeHeader(t ObjectType, size int) []byte {
	return []byte(fmt.Sprintf("%s %d\n", t, size))
}

// ParseHeader 解析 header 行，返回对象类型和声明长度
// 规则 (与写入端严格对应)：
//   - 去掉首尾空白后按空白切分，取前两个 token，多余的忽略
//   - 第一个 token 必须是合法的对象类型
//   - 第二个 token 必须是非负十进制整数 (带符号、非数字、溢出都算非法)
func ParseHeader(line string) (ObjectType, int, error) {
	parts := strings.Fields(strings.TrimSpace(line))

	if len(parts) < 1 {
		return "", 0, &MalformedHeaderError{Reason: "Missing object type"}
	}
	if len(parts) < 2 {
		return "", 0, &MalformedHeaderError{Reason: "Missing size"}
	}

	objectType, err := ParseObjectType(parts[0])
	if err != nil {
		return "", 0, err
	}

	// ParseUint 不接受任何符号前缀，"-100" 和 "+100" 都会在这里被拒绝
	size, err := strconv.ParseUint(parts[1], 10, 63)
	if err != nil {
		return "", 0, &MalformedHeaderError{Reason: fmt.Sprintf("Invalid size: %s", parts[1])}
	}

	return objectType, int(size), nil
}
