package multihash

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/dep2p/go-multiformats/pkg/lib/multicodec"
	"github.com/dep2p/go-multiformats/pkg/lib/varint"
)

var (
	// ErrFinalized 表示终结后继续写入
	ErrFinalized = errors.New("multihash already finalized")
	// ErrDoubleFinalize 表示重复终结
	ErrDoubleFinalize = errors.New("multihash double finalize")
	// ErrNoDigest 表示摘要尚未生成
	ErrNoDigest = errors.New("multihash digest not generated")
	// ErrNotImplemented 表示注册表中存在但未实现的算法
	ErrNotImplemented = errors.New("hash algorithm not implemented")
	// ErrTooShort 表示编码字节不足以容纳声明的摘要长度
	ErrTooShort = errors.New("multihash too short")
	// ErrNotMurmur3 表示对非 murmur3 码点设置种子
	ErrNotMurmur3 = errors.New("not a murmur3 multihash")
	// ErrSeedAfterWrite 表示种子在写入数据之后设置
	ErrSeedAfterWrite = errors.New("murmur3 seed must be set before writing")
)

// Multihash 承载算法码点、哈希状态与终结后的摘要
//
// 零值不可用，必须经 FromCodec、Sum 或 Decode 构造。非并发安全。
type Multihash struct {
	codec   multicodec.Codepoint
	h       hasher
	digest  []byte
	final   bool
	written bool
	seed    uint32
}

// FromCodec 从算法码点构造流式多哈希值
func FromCodec(cp multicodec.Codepoint) (*Multihash, error) {
	h, err := newHasher(cp.Code, 0)
	if err != nil {
		return nil, err
	}
	return &Multihash{codec: cp, h: h}, nil
}

// Sum 一步计算 data 的多哈希值并终结
func Sum(code multicodec.Code, data []byte) (*Multihash, error) {
	cp, err := multicodec.FromCode(code)
	if err != nil {
		return nil, err
	}
	m, err := FromCodec(cp)
	if err != nil {
		return nil, err
	}
	if _, err := m.Write(data); err != nil {
		return nil, err
	}
	if err := m.Finish(); err != nil {
		return nil, err
	}
	return m, nil
}

// Codec 返回算法码点
func (m *Multihash) Codec() multicodec.Codepoint {
	return m.codec
}

// ═══════════════════════════════════════════════════════════════════════════
// 生命周期
// ═══════════════════════════════════════════════════════════════════════════

// Write 吸收待哈希数据，实现 io.Writer；终结后写入返回 ErrFinalized
func (m *Multihash) Write(p []byte) (int, error) {
	if m.final {
		return 0, ErrFinalized
	}
	m.h.write(p)
	m.written = true
	return len(p), nil
}

// Finish 终结哈希状态并生成摘要，重复调用返回 ErrDoubleFinalize
func (m *Multihash) Finish() error {
	if m.final {
		return ErrDoubleFinalize
	}
	m.digest = m.h.sum()
	m.final = true
	m.written = false
	return nil
}

// Reset 清除摘要以复用该值，算法状态在终结时已复位
func (m *Multihash) Reset() {
	m.digest = nil
	m.final = false
	m.written = false
}

// Digest 返回终结后的摘要字节，终结前返回 ErrNoDigest
func (m *Multihash) Digest() ([]byte, error) {
	if !m.final {
		return nil, ErrNoDigest
	}
	return m.digest, nil
}

// SetMurmur3Seed 设置 murmur3 种子，必须在写入任何数据之前调用
func (m *Multihash) SetMurmur3Seed(seed uint32) error {
	if !isMurmur3(m.codec.Code) {
		return ErrNotMurmur3
	}
	if m.final || m.written {
		return ErrSeedAfterWrite
	}
	h, err := newHasher(m.codec.Code, seed)
	if err != nil {
		return err
	}
	m.h = h
	m.seed = seed
	return nil
}

// Murmur3Seed 返回 murmur3 种子，非 murmur3 码点时第二个返回值为 false
func (m *Multihash) Murmur3Seed() (uint32, bool) {
	if !isMurmur3(m.codec.Code) {
		return 0, false
	}
	return m.seed, true
}

// ═══════════════════════════════════════════════════════════════════════════
// 编码与解码
// ═══════════════════════════════════════════════════════════════════════════

// Encode 编码为 <码点><长度><载荷>，murmur3 的载荷为 <种子 varint><摘要>
func (m *Multihash) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := m.EncodeTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo 把编码结果写入 w，返回写入的字节数
func (m *Multihash) EncodeTo(w io.Writer) (int, error) {
	if !m.final {
		return 0, ErrNoDigest
	}

	var payload []byte
	if isMurmur3(m.codec.Code) {
		payload = append(varint.Encode(uint64(m.seed)), m.digest...)
	} else {
		payload = m.digest
	}

	total, err := m.codec.Code.EncodeTo(w)
	if err != nil {
		return total, err
	}
	n, err := varint.WriteTo(w, uint64(len(payload)))
	total += n
	if err != nil {
		return total, err
	}
	n, err = w.Write(payload)
	total += n
	if err != nil {
		return total, err
	}
	return total, nil
}

// Decode 从 buf 头部解出一个终结态的多哈希值，返回剩余字节
//
// 未注册的码点、非最简 varint、长度越界均返回错误。murmur3 载荷中的
// 种子一并还原。
func Decode(buf []byte) (*Multihash, []byte, error) {
	cp, rest, err := multicodec.FromSlice(buf)
	if err != nil {
		return nil, nil, fmt.Errorf("multihash code: %w", err)
	}

	length, n, err := varint.Decode(rest)
	if err != nil {
		return nil, nil, fmt.Errorf("multihash length: %w", err)
	}
	rest = rest[n:]
	if length > uint64(len(rest)) {
		return nil, nil, fmt.Errorf("%w: digest length %d exceeds %d remaining", ErrTooShort, length, len(rest))
	}
	payload, rem := rest[:length], rest[length:]

	var seed uint32
	digest := payload
	if isMurmur3(cp.Code) {
		s, sn, err := varint.Decode(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("murmur3 seed: %w", err)
		}
		if s > math.MaxUint32 {
			return nil, nil, fmt.Errorf("murmur3 seed %d out of range", s)
		}
		seed = uint32(s)
		digest = payload[sn:]
	}

	h, err := newHasher(cp.Code, seed)
	if err != nil {
		return nil, nil, err
	}

	out := make([]byte, len(digest))
	copy(out, digest)
	return &Multihash{
		codec:  cp,
		h:      h,
		digest: out,
		final:  true,
		seed:   seed,
	}, rem, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 辅助
// ═══════════════════════════════════════════════════════════════════════════

// Equal 判断码点、种子与摘要是否全部一致
func (m *Multihash) Equal(other *Multihash) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.codec.Code == other.codec.Code &&
		m.final == other.final &&
		m.seed == other.seed &&
		bytes.Equal(m.digest, other.digest)
}

// String 返回 "<算法名>-<摘要位数>-<十六进制摘要>" 形式的可读表示
func (m *Multihash) String() string {
	return fmt.Sprintf("%s-%d-%s", m.codec.Name, len(m.digest)*8, hex.EncodeToString(m.digest))
}
