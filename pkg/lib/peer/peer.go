package peer

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/mr-tron/base58"

	"github.com/dep2p/go-multiformats/pkg/lib/crypto"
	"github.com/dep2p/go-multiformats/pkg/lib/multibase"
	"github.com/dep2p/go-multiformats/pkg/lib/multicodec"
	"github.com/dep2p/go-multiformats/pkg/lib/multihash"
	"github.com/dep2p/go-multiformats/pkg/lib/varint"
)

// 序列化后超过 42 字节的公钥用 sha2-256 哈希，不超过 42 字节的公钥
// 用 identity 码点内联，节点 ID 本身即携带公钥。
const maxInlineKeyLength = 42

var (
	// ErrEmptyPeerID 表示空的节点 ID 输入
	ErrEmptyPeerID = errors.New("empty peer ID")

	// ErrNoPublicKey 表示节点 ID 未内联公钥（非 identity 哈希）
	ErrNoPublicKey = errors.New("public key is not embedded in peer ID")
)

// ID 节点的唯一标识
//
// 底层为编码后的 multihash 字节（以 string 承载以便作 map 键）。
// 合法的 ID 只能由本包的构造函数产生，直接转换字符串得到的值
// 不保证可解码。
type ID string

// FromPublicKey 从公钥派生节点 ID
//
// 对 protobuf 序列化的公钥做多哈希：不超过 42 字节用 identity
// 内联，否则用 sha2-256。
func FromPublicKey(pub crypto.PublicKey) (ID, error) {
	b, err := crypto.MarshalPublicKey(pub)
	if err != nil {
		return "", err
	}

	code := multicodec.Sha2_256
	if len(b) <= maxInlineKeyLength {
		code = multicodec.Identity
	}

	mh, err := multihash.Sum(code, b)
	if err != nil {
		return "", err
	}
	enc, err := mh.Encode()
	if err != nil {
		return "", err
	}
	return ID(enc), nil
}

// FromPrivateKey 从私钥对应的公钥派生节点 ID
func FromPrivateKey(priv crypto.PrivateKey) (ID, error) {
	if priv == nil {
		return "", crypto.ErrNilPrivateKey
	}
	return FromPublicKey(priv.GetPublic())
}

// FromText 解析文本形式的节点 ID
//
// 支持两种形式：
//   - 传统形式：base58btc 编码的裸 multihash（Qm... 或 1...）
//   - CID 形式：multibase 编码的 CIDv1，内容类型必须为 libp2p-key
func FromText(s string) (ID, error) {
	if len(s) == 0 {
		return "", ErrEmptyPeerID
	}

	if s[0] == 'Q' || s[0] == '1' {
		b, err := base58.Decode(s)
		if err != nil {
			return "", fmt.Errorf("failed to parse peer ID %s: %w", s, err)
		}
		return FromBytes(b)
	}

	_, b, err := multibase.Decode(s)
	if err != nil {
		return "", fmt.Errorf("failed to parse peer ID %s: %w", s, err)
	}
	version, n, err := varint.Decode(b)
	if err != nil || version != uint64(multicodec.CidV1) {
		return "", fmt.Errorf("failed to parse peer ID %s: not a CIDv1", s)
	}
	codec, n2, err := varint.Decode(b[n:])
	if err != nil || codec != uint64(multicodec.Libp2pKey) {
		return "", fmt.Errorf("failed to parse peer ID %s: not a libp2p-key CID", s)
	}
	return FromBytes(b[n+n2:])
}

// FromBytes 解析二进制形式的节点 ID（编码后的 multihash）
//
// 输入必须恰好包含一个合法的 multihash，尾随字节视为错误。
func FromBytes(b []byte) (ID, error) {
	id, rest, err := Decode(b)
	if err != nil {
		return "", err
	}
	if len(rest) != 0 {
		return "", fmt.Errorf("peer ID contains %d trailing bytes", len(rest))
	}
	return id, nil
}

// Decode 从 buf 头部解出一个节点 ID，返回剩余字节
func Decode(buf []byte) (ID, []byte, error) {
	_, rest, err := multihash.Decode(buf)
	if err != nil {
		return "", nil, err
	}
	return ID(buf[:len(buf)-len(rest)]), rest, nil
}

// Random 生成随机节点 ID（测试与 DHT 路由探测用）
//
// 随机选择 identity（32 字节随机摘要，形如真实的内联公钥 ID）
// 或 sha2-256（对 64 随机字节求哈希）。
func Random() (ID, error) {
	var flip [1]byte
	if _, err := io.ReadFull(rand.Reader, flip[:]); err != nil {
		return "", err
	}

	var (
		code multicodec.Code
		data []byte
	)
	if flip[0]&1 == 0 {
		code = multicodec.Identity
		data = make([]byte, 32)
	} else {
		code = multicodec.Sha2_256
		data = make([]byte, 64)
	}
	if _, err := io.ReadFull(rand.Reader, data); err != nil {
		return "", err
	}

	mh, err := multihash.Sum(code, data)
	if err != nil {
		return "", err
	}
	enc, err := mh.Encode()
	if err != nil {
		return "", err
	}
	return ID(enc), nil
}

// Bytes 返回编码后的 multihash 字节
func (id ID) Bytes() []byte {
	return []byte(id)
}

// String 返回传统形式的文本表示（base58btc 编码的裸 multihash）
func (id ID) String() string {
	return base58.Encode([]byte(id))
}

// ToBaseText 以指定 multibase 渲染 CID 形式的文本表示
//
// 输出为 CIDv1 + libp2p-key + multihash 的 multibase 编码。
func (id ID) ToBaseText(base multibase.Encoding) (string, error) {
	buf := make([]byte, 0, len(id)+2)
	buf = append(buf, multicodec.CidV1.Encode()...)
	buf = append(buf, multicodec.Libp2pKey.Encode()...)
	buf = append(buf, id...)
	return multibase.Encode(base, buf)
}

// ShortString 返回截断的文本表示（日志用）
//
// 不超过 10 个字符时返回完整文本，否则返回前 2 位加 '*' 加后 6 位。
func (id ID) ShortString() string {
	s := id.String()
	if len(s) <= 10 {
		return s
	}
	return s[:2] + "*" + s[len(s)-6:]
}

// MatchesPublicKey 判断节点 ID 是否由该公钥派生
func (id ID) MatchesPublicKey(pub crypto.PublicKey) bool {
	derived, err := FromPublicKey(pub)
	if err != nil {
		return false
	}
	return derived == id
}

// MatchesPrivateKey 判断节点 ID 是否由该私钥对应的公钥派生
func (id ID) MatchesPrivateKey(priv crypto.PrivateKey) bool {
	if priv == nil {
		return false
	}
	return id.MatchesPublicKey(priv.GetPublic())
}

// ExtractPublicKey 从内联公钥的节点 ID 还原公钥
//
// 只有 identity 哈希的 ID 内联了公钥，其余返回 ErrNoPublicKey。
func (id ID) ExtractPublicKey() (crypto.PublicKey, error) {
	mh, rest, err := multihash.Decode([]byte(id))
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("peer ID contains %d trailing bytes", len(rest))
	}
	if mh.Codec().Code != multicodec.Identity {
		return nil, ErrNoPublicKey
	}

	digest, err := mh.Digest()
	if err != nil {
		return nil, err
	}
	return crypto.UnmarshalPublicKeyBytes(digest)
}
