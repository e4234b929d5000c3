// Package varint 提供无符号 LEB128 变长整数编解码
//
// multiformats 各格式（multicodec 标签、multihash 长度前缀、multiaddr
// 组件长度）统一使用该原语。编码必须是最小形式：冗余前导字节在解码时
// 被拒绝，保证同一数值只有唯一的线上表示。
//
// 实现委托给 github.com/multiformats/go-varint，数值范围限制在
// 63 位以内（9 字节），覆盖注册表全部码点。
package varint

import (
	"io"

	gvarint "github.com/multiformats/go-varint"
)

// 编解码错误（从 go-varint 导出）
var (
	// ErrOverflow 数值超出 63 位范围
	ErrOverflow = gvarint.ErrOverflow

	// ErrUnderflow 缓冲区在完整 varint 之前结束
	ErrUnderflow = gvarint.ErrUnderflow

	// ErrNotMinimal 编码含冗余前导字节
	ErrNotMinimal = gvarint.ErrNotMinimal
)

// MaxLen 单个 varint 的最大字节数
const MaxLen = gvarint.MaxLenUvarint63

// Len 返回 x 编码后的字节数
func Len(x uint64) int {
	return gvarint.UvarintSize(x)
}

// Encode 编码 x 为最小形式 varint
func Encode(x uint64) []byte {
	return gvarint.ToUvarint(x)
}

// Put 将 x 编码进 buf，返回写入的字节数
//
// buf 必须至少有 Len(x) 个字节的空间。
func Put(buf []byte, x uint64) int {
	return gvarint.PutUvarint(buf, x)
}

// Decode 从 buf 开头解码一个 varint
//
// 返回数值与消耗的字节数。空缓冲、截断、非最小编码或溢出
// 均返回错误且不消耗任何字节。
func Decode(buf []byte) (uint64, int, error) {
	return gvarint.FromUvarint(buf)
}

// Read 从 r 中读取一个 varint
func Read(r io.ByteReader) (uint64, error) {
	return gvarint.ReadUvarint(r)
}

// WriteTo 将 x 编码写入 w，返回写入的字节数
func WriteTo(w io.Writer, x uint64) (int, error) {
	return w.Write(Encode(x))
}
