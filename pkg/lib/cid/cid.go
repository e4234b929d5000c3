package cid

import (
	"errors"
	"fmt"
	"io"

	"github.com/mr-tron/base58"

	"github.com/dep2p/go-multiformats/pkg/lib/multibase"
	"github.com/dep2p/go-multiformats/pkg/lib/multicodec"
	"github.com/dep2p/go-multiformats/pkg/lib/multihash"
	"github.com/dep2p/go-multiformats/pkg/lib/peer"
)

// 编解码错误
var (
	// ErrUndefined 对未定义（零值）的 Cid 执行编码或渲染
	ErrUndefined = errors.New("undefined cid")

	// ErrNotCidV1 载荷没有以 cidv1 版本标签开头
	ErrNotCidV1 = errors.New("not a cidv1 payload")

	// ErrBaseForV0 CIDv0 只有 base58btc 一种文本形式
	ErrBaseForV0 = errors.New("cidv0 text must be base58btc")

	// ErrNotLibp2pKey 内容类型不是 libp2p-key，无法转换为节点 ID
	ErrNotLibp2pKey = errors.New("cid does not address a libp2p-key")

	// ErrV0Multihash CIDv0 只能承载完整的 sha2-256 multihash
	ErrV0Multihash = errors.New("cidv0 requires a full sha2-256 multihash")

	// ErrBadParseInput Parse 收到不支持的输入类型
	ErrBadParseInput = errors.New("unsupported cid parse input")
)

// Version CID 版本
type Version uint64

// 两个版本是终态，互不转换（IntoV1 产生新值而非原地变更）
const (
	V0 Version = 0
	V1 Version = 1
)

// String 返回版本的规范名称
func (v Version) String() string {
	switch v {
	case V0:
		return "cidv0"
	case V1:
		return "cidv1"
	default:
		return fmt.Sprintf("cidv%d", uint64(v))
	}
}

// Cid 内容标识符
//
// 零值为未定义的 Cid（Defined 返回 false）。合法的值只能由本包的
// 构造函数产生，构造后不可变，可以安全复制与并发读取。multihash
// 以 string 承载，Cid 可作 map 键；相等性判断请使用 Equal 而不是
// ==，后者会把仅渲染用的 base 一并比较。
type Cid struct {
	version Version
	base    multibase.Encoding
	codec   multicodec.Code
	hash    string
}

// Undef 未定义的 Cid（零值）
var Undef = Cid{}

// ═══════════════════════════════════════════════════════════════════════════
// 构造
// ═══════════════════════════════════════════════════════════════════════════

// NewV0 由内容字节构造 CIDv0
//
// sha2-256、dag-pb 与 base58btc 均为隐含值，这是历史形式的固定组合。
func NewV0(data []byte) (Cid, error) {
	mh, err := multihash.Sum(multicodec.Sha2_256, data)
	if err != nil {
		return Undef, err
	}
	wire, err := mh.Encode()
	if err != nil {
		return Undef, err
	}
	return Cid{version: V0, base: multibase.Base58Btc, codec: multicodec.DagPb, hash: string(wire)}, nil
}

// NewV1 由内容字节构造 CIDv1
//
// 内容以 sha2-256 哈希；其它算法可先用 multihash 包计算，
// 再经 NewV1FromMultihash 构造。base 只决定文本渲染。
func NewV1(base multibase.Encoding, contentType multicodec.Code, data []byte) (Cid, error) {
	mh, err := multihash.Sum(multicodec.Sha2_256, data)
	if err != nil {
		return Undef, err
	}
	return NewV1FromMultihash(base, contentType, mh)
}

// NewV0FromMultihash 由已终结的 multihash 构造 CIDv0
//
// v0 的二进制形式没有任何框架，解码方依赖 0x12,0x20 前缀识别，
// 因此只接受完整的 sha2-256 摘要。
func NewV0FromMultihash(mh *multihash.Multihash) (Cid, error) {
	wire, err := mh.Encode()
	if err != nil {
		return Undef, err
	}
	if len(wire) != 34 || wire[0] != 0x12 || wire[1] != 0x20 {
		return Undef, fmt.Errorf("%w: got %s", ErrV0Multihash, mh.Codec().Code)
	}
	return Cid{version: V0, base: multibase.Base58Btc, codec: multicodec.DagPb, hash: string(wire)}, nil
}

// NewV1FromMultihash 由已终结的 multihash 构造 CIDv1
func NewV1FromMultihash(base multibase.Encoding, contentType multicodec.Code, mh *multihash.Multihash) (Cid, error) {
	if !base.Valid() {
		return Undef, fmt.Errorf("%w: 0x%x", multibase.ErrUnknownPrefix, byte(base))
	}
	if _, err := multicodec.FromCode(contentType); err != nil {
		return Undef, fmt.Errorf("content type: %w", err)
	}
	wire, err := mh.Encode()
	if err != nil {
		return Undef, err
	}
	return Cid{version: V1, base: base, codec: contentType, hash: string(wire)}, nil
}

// FromPeerID 由节点 ID 构造 CIDv0
//
// 节点 ID 本身就是编码后的 multihash（identity 或 sha2-256），
// 直接作为 v0 的载荷。
func FromPeerID(id peer.ID) (Cid, error) {
	if _, err := peer.FromBytes(id.Bytes()); err != nil {
		return Undef, err
	}
	return Cid{version: V0, base: multibase.Base58Btc, codec: multicodec.DagPb, hash: string(id)}, nil
}

// NewV1FromPeerID 由节点 ID 构造 CIDv1，内容类型隐含为 libp2p-key
func NewV1FromPeerID(base multibase.Encoding, id peer.ID) (Cid, error) {
	if !base.Valid() {
		return Undef, fmt.Errorf("%w: 0x%x", multibase.ErrUnknownPrefix, byte(base))
	}
	if _, err := peer.FromBytes(id.Bytes()); err != nil {
		return Undef, err
	}
	return Cid{version: V1, base: base, codec: multicodec.Libp2pKey, hash: string(id)}, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 解析
// ═══════════════════════════════════════════════════════════════════════════

// FromText 解析文本形式的 CID
//
// 前两个字符为 'Q','m' 或首字符为 '1'（至少两个字符）时按传统
// base58btc v0 解码，其余经 multibase 解码且载荷必须以 cidv1
// 版本标签开头。与其它实现一致，multihash 之后的尾随字节被忽略。
func FromText(text string) (Cid, error) {
	if len(text) >= 2 && ((text[0] == 'Q' && text[1] == 'm') || text[0] == '1') {
		raw, err := base58.Decode(text)
		if err != nil {
			return Undef, fmt.Errorf("cidv0 text: %w", err)
		}
		_, rest, err := multihash.Decode(raw)
		if err != nil {
			return Undef, fmt.Errorf("cidv0 multihash: %w", err)
		}
		hash := raw[:len(raw)-len(rest)]
		return Cid{version: V0, base: multibase.Base58Btc, codec: multicodec.DagPb, hash: string(hash)}, nil
	}

	base, payload, err := multibase.Decode(text)
	if err != nil {
		return Undef, err
	}
	return fromV1Payload(base, payload)
}

// Decode 从 buf 头部解出一个 CID，返回剩余字节
//
// 0x12,0x20 开头按 v0（裸 multihash）解码；其余按 v1 框架解码，
// 渲染 base 默认 base32（二进制形式不携带 base 信息）。
func Decode(buf []byte) (Cid, []byte, error) {
	if len(buf) >= 2 && buf[0] == 0x12 && buf[1] == 0x20 {
		_, rem, err := multihash.Decode(buf)
		if err != nil {
			return Undef, nil, err
		}
		hash := buf[:len(buf)-len(rem)]
		return Cid{version: V0, base: multibase.Base58Btc, codec: multicodec.DagPb, hash: string(hash)}, rem, nil
	}

	cp, rest, err := multicodec.FromSlice(buf)
	if err != nil {
		return Undef, nil, fmt.Errorf("cid version: %w", err)
	}
	if cp.Code != multicodec.CidV1 {
		return Undef, nil, fmt.Errorf("%w: leading codec %s", ErrNotCidV1, cp)
	}
	ct, rest, err := multicodec.FromSlice(rest)
	if err != nil {
		return Undef, nil, fmt.Errorf("cid content type: %w", err)
	}
	_, rem, err := multihash.Decode(rest)
	if err != nil {
		return Undef, nil, fmt.Errorf("cid multihash: %w", err)
	}
	hash := rest[:len(rest)-len(rem)]
	return Cid{version: V1, base: multibase.Base32Lower, codec: ct.Code, hash: string(hash)}, rem, nil
}

// FromBytes 解析二进制形式的 CID，尾随字节视为错误
func FromBytes(buf []byte) (Cid, error) {
	c, rest, err := Decode(buf)
	if err != nil {
		return Undef, err
	}
	if len(rest) != 0 {
		return Undef, fmt.Errorf("cid contains %d trailing bytes", len(rest))
	}
	return c, nil
}

// Parse 解析任意常见形式的 CID 输入
//
// 接受文本（string）、二进制（[]byte）、Cid 本身与节点 ID。
func Parse(v any) (Cid, error) {
	switch x := v.(type) {
	case string:
		return FromText(x)
	case []byte:
		return FromBytes(x)
	case Cid:
		return x, nil
	case peer.ID:
		return FromPeerID(x)
	default:
		return Undef, fmt.Errorf("%w: %T", ErrBadParseInput, v)
	}
}

// fromV1Payload 解析去掉 multibase 前缀后的 v1 载荷
func fromV1Payload(base multibase.Encoding, payload []byte) (Cid, error) {
	cp, rest, err := multicodec.FromSlice(payload)
	if err != nil {
		return Undef, fmt.Errorf("cid version: %w", err)
	}
	if cp.Code != multicodec.CidV1 {
		return Undef, fmt.Errorf("%w: leading codec %s", ErrNotCidV1, cp)
	}
	ct, rest, err := multicodec.FromSlice(rest)
	if err != nil {
		return Undef, fmt.Errorf("cid content type: %w", err)
	}
	_, rem, err := multihash.Decode(rest)
	if err != nil {
		return Undef, fmt.Errorf("cid multihash: %w", err)
	}
	hash := rest[:len(rest)-len(rem)]
	return Cid{version: V1, base: base, codec: ct.Code, hash: string(hash)}, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 编码与渲染
// ═══════════════════════════════════════════════════════════════════════════

// Encode 返回二进制形式
//
// v0 即裸 multihash 字节（历史兼容，没有 multicodec 框架），
// v1 为 <cidv1><内容类型><multihash>。未定义的值返回 nil。
func (c Cid) Encode() []byte {
	if !c.Defined() {
		return nil
	}
	if c.version == V0 {
		return []byte(c.hash)
	}
	buf := make([]byte, 0, 1+c.codec.EncodedLen()+len(c.hash))
	buf = append(buf, multicodec.CidV1.Encode()...)
	buf = append(buf, c.codec.Encode()...)
	buf = append(buf, c.hash...)
	return buf
}

// EncodeTo 把二进制形式写入 w，返回写入的字节数
func (c Cid) EncodeTo(w io.Writer) (int, error) {
	if !c.Defined() {
		return 0, ErrUndefined
	}
	return w.Write(c.Encode())
}

// ToText 以指定 multibase 渲染文本形式
//
// v0 只有传统 base58btc 一种形式，传入其它 base 返回 ErrBaseForV0。
func (c Cid) ToText(base multibase.Encoding) (string, error) {
	if !c.Defined() {
		return "", ErrUndefined
	}
	if c.version == V0 {
		if base != multibase.Base58Btc {
			return "", fmt.Errorf("%w: got %s", ErrBaseForV0, base)
		}
		return base58.Encode([]byte(c.hash)), nil
	}
	return multibase.Encode(base, c.Encode())
}

// String 以构造时记住的 base 渲染文本形式，未定义的值返回空串
func (c Cid) String() string {
	s, err := c.ToText(c.base)
	if err != nil {
		return ""
	}
	return s
}

// ═══════════════════════════════════════════════════════════════════════════
// 访问器
// ═══════════════════════════════════════════════════════════════════════════

// Defined 判断是否为有效构造的值（零值返回 false）
func (c Cid) Defined() bool {
	return c.hash != ""
}

// Version 返回 CID 版本
func (c Cid) Version() Version {
	return c.version
}

// Base 返回渲染用的 multibase（v0 恒为 base58btc）
func (c Cid) Base() multibase.Encoding {
	return c.base
}

// ContentType 返回内容类型码点（v0 恒为 dag-pb）
func (c Cid) ContentType() multicodec.Code {
	return c.codec
}

// MultihashBytes 返回编码后的 multihash 字节副本
func (c Cid) MultihashBytes() []byte {
	return []byte(c.hash)
}

// Multihash 返回终结态的 multihash 值
func (c Cid) Multihash() (*multihash.Multihash, error) {
	if !c.Defined() {
		return nil, ErrUndefined
	}
	mh, _, err := multihash.Decode([]byte(c.hash))
	return mh, err
}

// Digest 返回 multihash 的摘要字节
func (c Cid) Digest() ([]byte, error) {
	mh, err := c.Multihash()
	if err != nil {
		return nil, err
	}
	return mh.Digest()
}

// IntoV1 转换为 v1 形式
//
// v0 转换后内容类型为 dag-pb，渲染 base 保持 base58btc；
// v1 与未定义的值原样返回。
func (c Cid) IntoV1() Cid {
	if c.version == V0 && c.Defined() {
		return Cid{version: V1, base: multibase.Base58Btc, codec: multicodec.DagPb, hash: c.hash}
	}
	return c
}

// ToPeerID 把 libp2p-key 类型的 CIDv1 转换为节点 ID
//
// 其余版本与内容类型返回 ErrNotLibp2pKey。
func (c Cid) ToPeerID() (peer.ID, error) {
	if c.version != V1 || c.codec != multicodec.Libp2pKey {
		return "", fmt.Errorf("%w: %s %s", ErrNotLibp2pKey, c.version, c.codec)
	}
	return peer.FromBytes([]byte(c.hash))
}

// Equal 判断两个 Cid 是否标识同一内容
//
// 比较版本、内容类型与 multihash；v0 与 v1 即使摘要相同也永不相等。
// 渲染 base 只影响文本形式，不参与比较。
func (c Cid) Equal(other Cid) bool {
	return c.version == other.version && c.codec == other.codec && c.hash == other.hash
}
