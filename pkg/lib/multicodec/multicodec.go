package multicodec

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/dep2p/go-multiformats/pkg/lib/varint"
)

// 注册表查询错误
var (
	ErrUnknownCode = errors.New("unknown multicodec code")
	ErrUnknownName = errors.New("unknown multicodec name")
)

// Code 是注册表中的数值代码
type Code uint64

// Codepoint 描述注册表中的一行
type Codepoint struct {
	// Code 数值代码
	Code Code

	// Name 符号名称（如 "sha2-256"）
	Name string

	// Tag 分类标签（如 "multihash"、"multiaddr"）
	Tag string
}

// String 返回 "name (0xNN)" 形式
func (cp Codepoint) String() string {
	return fmt.Sprintf("%s (0x%x)", cp.Name, uint64(cp.Code))
}

// String 返回代码的符号名称；未注册的代码返回十六进制形式
func (c Code) String() string {
	if idx, ok := codeIndex[c]; ok {
		return table[idx].Name
	}
	return fmt.Sprintf("0x%x", uint64(c))
}

// Known 判断代码是否在注册表中
func (c Code) Known() bool {
	_, ok := codeIndex[c]
	return ok
}

// Tag 返回代码的分类标签；未注册的代码返回空字符串
func (c Code) Tag() string {
	if idx, ok := codeIndex[c]; ok {
		return table[idx].Tag
	}
	return ""
}

// Encode 返回代码的 varint 编码
func (c Code) Encode() []byte {
	return varint.Encode(uint64(c))
}

// EncodeTo 将代码的 varint 编码写入 w，返回写入的字节数
//
// 使用栈上暂存缓冲，不产生中间分配。
func (c Code) EncodeTo(w io.Writer) (int, error) {
	var scratch [varint.MaxLen]byte
	n := varint.Put(scratch[:], uint64(c))
	return w.Write(scratch[:n])
}

// EncodedLen 返回代码 varint 编码后的字节数
func (c Code) EncodedLen() int {
	return varint.Len(uint64(c))
}

// FromCode 按代码查询码点
func FromCode(c Code) (Codepoint, error) {
	idx, ok := codeIndex[c]
	if !ok {
		return Codepoint{}, fmt.Errorf("%w: 0x%x", ErrUnknownCode, uint64(c))
	}
	return table[idx], nil
}

// FromName 按名称查询码点
func FromName(name string) (Codepoint, error) {
	idx, ok := nameIndex[name]
	if !ok {
		return Codepoint{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return table[idx], nil
}

// FromSlice 从 buf 开头消费一个 varint 码点
//
// 返回码点与剩余字节。varint 非法或代码未注册均返回错误，
// 且不消耗任何字节。
func FromSlice(buf []byte) (Codepoint, []byte, error) {
	code, n, err := varint.Decode(buf)
	if err != nil {
		return Codepoint{}, nil, fmt.Errorf("multicodec: decode code: %w", err)
	}
	cp, err := FromCode(Code(code))
	if err != nil {
		return Codepoint{}, nil, err
	}
	return cp, buf[n:], nil
}

// IsMultihash 判断代码是否注册为 multihash 算法
func IsMultihash(c Code) bool {
	return c.Tag() == TagMultihash
}

// Table 返回完整注册表的副本（按规范顺序）
func Table() []Codepoint {
	out := make([]Codepoint, len(table))
	copy(out, table)
	return out
}

// MultihashTable 返回 multihash 标签子表的副本
func MultihashTable() []Codepoint {
	out := make([]Codepoint, len(multihashTable))
	copy(out, multihashTable)
	return out
}

// ValidateTable 校验注册表的完整性，聚合所有问题一次返回：
// 重复代码、重复名称、空字段
func ValidateTable() error {
	var err error
	codes := make(map[Code]string, len(table))
	names := make(map[string]Code, len(table))
	for _, cp := range table {
		if cp.Name == "" || cp.Tag == "" {
			err = multierr.Append(err, fmt.Errorf("codepoint 0x%x: empty name or tag", uint64(cp.Code)))
		}
		if prev, dup := codes[cp.Code]; dup {
			err = multierr.Append(err, fmt.Errorf("code 0x%x claimed by %q and %q", uint64(cp.Code), prev, cp.Name))
		}
		codes[cp.Code] = cp.Name
		if prev, dup := names[cp.Name]; dup {
			err = multierr.Append(err, fmt.Errorf("name %q claimed by 0x%x and 0x%x", cp.Name, uint64(prev), uint64(cp.Code)))
		}
		names[cp.Name] = cp.Code
	}
	return err
}
