package crypto

import (
	"crypto/ed25519"
	"crypto/subtle"
	"fmt"
	"io"
)

// Ed25519 是默认的身份密钥类型：序列化公钥经 protobuf 编码后
// 只有 36 字节，低于节点 ID 的 identity multihash 内联上界（42 字节），
// 因此 Ed25519 节点的公钥可以直接从节点 ID 还原，无需额外查询。

// Ed25519 密钥常量
const (
	// Ed25519PrivateKeySize Ed25519 私钥大小（64 字节：种子 + 公钥）
	Ed25519PrivateKeySize = ed25519.PrivateKeySize
	// Ed25519PublicKeySize Ed25519 公钥大小（32 字节）
	Ed25519PublicKeySize = ed25519.PublicKeySize
	// Ed25519SignatureSize Ed25519 签名大小（64 字节）
	Ed25519SignatureSize = ed25519.SignatureSize
	// Ed25519SeedSize Ed25519 种子大小（32 字节）
	Ed25519SeedSize = ed25519.SeedSize
)

// ============================================================================
//                              生成与反序列化
// ============================================================================

// GenerateEd25519Key 从随机源生成新的 Ed25519 密钥对
func GenerateEd25519Key(src io.Reader) (PrivateKey, PublicKey, error) {
	pub, priv, err := ed25519.GenerateKey(src)
	if err != nil {
		return nil, nil, err
	}
	return &Ed25519PrivateKey{k: priv}, &Ed25519PublicKey{k: pub}, nil
}

// UnmarshalEd25519PublicKey 从原始字节反序列化 Ed25519 公钥
//
// 输入为 32 字节的裸公钥，即 protobuf 消息的 Data 字段内容。
func UnmarshalEd25519PublicKey(data []byte) (PublicKey, error) {
	if len(data) != Ed25519PublicKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeySize, Ed25519PublicKeySize, len(data))
	}

	k := make([]byte, Ed25519PublicKeySize)
	copy(k, data)
	return &Ed25519PublicKey{k: k}, nil
}

// UnmarshalEd25519PrivateKey 从原始字节反序列化 Ed25519 私钥
//
// 接受三种长度：
//   - 64 字节：完整私钥（种子 + 公钥），本包序列化使用的形式
//   - 32 字节：仅种子，完整私钥由种子重新派生
//   - 96 字节：完整私钥 + 冗余公钥，go-libp2p 的历史形式；
//     冗余公钥必须与私钥内嵌的公钥一致
func UnmarshalEd25519PrivateKey(data []byte) (PrivateKey, error) {
	switch len(data) {
	case Ed25519PrivateKeySize + Ed25519PublicKeySize:
		redundant := data[Ed25519PrivateKeySize:]
		embedded := data[Ed25519PrivateKeySize-Ed25519PublicKeySize : Ed25519PrivateKeySize]
		if subtle.ConstantTimeCompare(embedded, redundant) == 0 {
			return nil, fmt.Errorf("%w: redundant public key mismatch", ErrInvalidPrivateKey)
		}
		k := make([]byte, Ed25519PrivateKeySize)
		copy(k, data[:Ed25519PrivateKeySize])
		return &Ed25519PrivateKey{k: k}, nil

	case Ed25519PrivateKeySize:
		k := make([]byte, Ed25519PrivateKeySize)
		copy(k, data)
		return &Ed25519PrivateKey{k: k}, nil

	case Ed25519SeedSize:
		return &Ed25519PrivateKey{k: ed25519.NewKeyFromSeed(data)}, nil

	default:
		return nil, fmt.Errorf("%w: expected %d, %d or %d bytes, got %d",
			ErrInvalidKeySize, Ed25519SeedSize, Ed25519PrivateKeySize, Ed25519PrivateKeySize+Ed25519PublicKeySize, len(data))
	}
}

// ============================================================================
//                              Ed25519PublicKey
// ============================================================================

// Ed25519PublicKey Ed25519 公钥
type Ed25519PublicKey struct {
	k ed25519.PublicKey
}

// Raw 返回原始公钥字节（32 字节副本）
func (k *Ed25519PublicKey) Raw() ([]byte, error) {
	buf := make([]byte, len(k.k))
	copy(buf, k.k)
	return buf, nil
}

// Type 返回密钥类型
func (k *Ed25519PublicKey) Type() KeyType {
	return KeyTypeEd25519
}

// Equals 比较两个公钥是否相等
//
// 同类型密钥做常量时间比较以防止时序攻击。
func (k *Ed25519PublicKey) Equals(other Key) bool {
	ek, ok := other.(*Ed25519PublicKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return subtle.ConstantTimeCompare(k.k, ek.k) == 1
}

// Verify 验证 data 上的签名
//
// 验证不通过返回 (false, nil) 而不是错误；长度不符的签名
// 直接判为不通过，不会进入曲线运算。
func (k *Ed25519PublicKey) Verify(data, sig []byte) (bool, error) {
	if len(sig) != Ed25519SignatureSize {
		return false, nil
	}
	return ed25519.Verify(k.k, data, sig), nil
}

// ============================================================================
//                              Ed25519PrivateKey
// ============================================================================

// Ed25519PrivateKey Ed25519 私钥
type Ed25519PrivateKey struct {
	k ed25519.PrivateKey
}

// Raw 返回原始私钥字节（64 字节副本），即 protobuf 序列化的 Data 字段内容
func (k *Ed25519PrivateKey) Raw() ([]byte, error) {
	buf := make([]byte, len(k.k))
	copy(buf, k.k)
	return buf, nil
}

// Seed 返回私钥种子（32 字节）
func (k *Ed25519PrivateKey) Seed() []byte {
	return k.k.Seed()
}

// Type 返回密钥类型
func (k *Ed25519PrivateKey) Type() KeyType {
	return KeyTypeEd25519
}

// Equals 比较两个私钥是否相等
//
// 同类型密钥做常量时间比较以防止时序攻击。
func (k *Ed25519PrivateKey) Equals(other Key) bool {
	ek, ok := other.(*Ed25519PrivateKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return subtle.ConstantTimeCompare(k.k, ek.k) == 1
}

// GetPublic 返回对应的公钥
func (k *Ed25519PrivateKey) GetPublic() PublicKey {
	// ed25519.PrivateKey.Public() 总是返回 ed25519.PublicKey
	pub := k.k.Public().(ed25519.PublicKey) //nolint:errcheck // 类型断言安全
	return &Ed25519PublicKey{k: pub}
}

// Sign 对 data 签名，返回 64 字节签名
func (k *Ed25519PrivateKey) Sign(data []byte) ([]byte, error) {
	return ed25519.Sign(k.k, data), nil
}
