package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	secp256k1ecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Secp256k1 密钥常量
const (
	// Secp256k1PrivateKeySize Secp256k1 私钥大小（32 字节标量）
	Secp256k1PrivateKeySize = 32
	// Secp256k1PublicKeySize Secp256k1 压缩公钥大小（33 字节）
	Secp256k1PublicKeySize = 33
)

// ============================================================================
//                              Secp256k1PublicKey
// ============================================================================

// Secp256k1PublicKey Secp256k1 公钥实现
type Secp256k1PublicKey struct {
	k *secp256k1.PublicKey
}

// Raw 返回压缩格式的公钥字节（33 字节）
func (k *Secp256k1PublicKey) Raw() ([]byte, error) {
	return k.k.SerializeCompressed(), nil
}

// Type 返回密钥类型
func (k *Secp256k1PublicKey) Type() KeyType {
	return KeyTypeSecp256k1
}

// Equals 比较两个公钥是否相等
func (k *Secp256k1PublicKey) Equals(other Key) bool {
	sk, ok := other.(*Secp256k1PublicKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return k.k.IsEqual(sk.k)
}

// Verify 使用此公钥验证签名
//
// 签名为 DER 编码的 ECDSA 签名，验证对象是数据的 SHA-256 摘要。
// 格式错误的签名视为验证失败而非错误。
func (k *Secp256k1PublicKey) Verify(data, sig []byte) (bool, error) {
	parsed, err := secp256k1ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false, nil
	}

	hash := sha256.Sum256(data)
	return parsed.Verify(hash[:], k.k), nil
}

// ============================================================================
//                              Secp256k1PrivateKey
// ============================================================================

// Secp256k1PrivateKey Secp256k1 私钥实现
type Secp256k1PrivateKey struct {
	k *secp256k1.PrivateKey
}

// Raw 返回原始私钥字节（32 字节大端序标量）
func (k *Secp256k1PrivateKey) Raw() ([]byte, error) {
	return k.k.Serialize(), nil
}

// Type 返回密钥类型
func (k *Secp256k1PrivateKey) Type() KeyType {
	return KeyTypeSecp256k1
}

// Equals 比较两个私钥是否相等
func (k *Secp256k1PrivateKey) Equals(other Key) bool {
	sk, ok := other.(*Secp256k1PrivateKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return k.k.Key.Equals(&sk.k.Key)
}

// GetPublic 返回对应的公钥
func (k *Secp256k1PrivateKey) GetPublic() PublicKey {
	return &Secp256k1PublicKey{k: k.k.PubKey()}
}

// Sign 使用此私钥签名数据
//
// 对数据的 SHA-256 摘要做 ECDSA 签名，返回 DER 编码（约 70-72 字节）。
func (k *Secp256k1PrivateKey) Sign(data []byte) ([]byte, error) {
	hash := sha256.Sum256(data)
	sig := secp256k1ecdsa.Sign(k.k, hash[:])
	return sig.Serialize(), nil
}

// ============================================================================
//                              工厂函数
// ============================================================================

// GenerateSecp256k1Key 生成新的 Secp256k1 密钥对
//
// 参数：
//   - src: 随机源
//
// 返回：
//   - PrivateKey: 私钥
//   - PublicKey: 公钥
//   - error: 生成错误
func GenerateSecp256k1Key(src io.Reader) (PrivateKey, PublicKey, error) {
	priv, err := secp256k1.GeneratePrivateKeyFromRand(src)
	if err != nil {
		return nil, nil, err
	}

	return &Secp256k1PrivateKey{k: priv}, &Secp256k1PublicKey{k: priv.PubKey()}, nil
}

// UnmarshalSecp256k1PublicKey 从字节反序列化 Secp256k1 公钥
//
// 接受压缩（33 字节）或非压缩（65 字节）格式，要求点在曲线上。
//
// 参数：
//   - data: 公钥字节
//
// 返回：
//   - PublicKey: 公钥对象
//   - error: 反序列化错误
func UnmarshalSecp256k1PublicKey(data []byte) (PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return &Secp256k1PublicKey{k: pub}, nil
}

// UnmarshalSecp256k1PrivateKey 从字节反序列化 Secp256k1 私钥
//
// 参数：
//   - data: 原始私钥字节（32 字节大端序标量）
//
// 返回：
//   - PrivateKey: 私钥对象
//   - error: 反序列化错误
func UnmarshalSecp256k1PrivateKey(data []byte) (PrivateKey, error) {
	if len(data) != Secp256k1PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeySize, Secp256k1PrivateKeySize, len(data))
	}

	priv := secp256k1.PrivKeyFromBytes(data)
	if priv.Key.IsZero() {
		return nil, fmt.Errorf("%w: zero scalar", ErrInvalidPrivateKey)
	}
	return &Secp256k1PrivateKey{k: priv}, nil
}
