package crypto

import (
	stdcrypto "crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
	"io"
)

// RSA 公钥以 X.509 SubjectPublicKeyInfo（PKIX）形式序列化，私钥以
// PKCS#1 形式序列化；签名为 PKCS#1 v1.5 + SHA-256。序列化公钥远超
// 节点 ID 的 identity 内联上界，RSA 节点的 ID 总是 sha2-256 哈希。

// RSA 密钥常量
const (
	// RSAMinKeySize RSA 最小密钥大小（位）
	RSAMinKeySize = 2048
	// RSADefaultKeySize RSA 默认密钥大小（位）
	RSADefaultKeySize = 2048
	// RSAMaxKeySize RSA 最大密钥大小（位）
	RSAMaxKeySize = 8192
)

// ============================================================================
//                              生成与反序列化
// ============================================================================

// GenerateRSAKey 从随机源生成新的 RSA 密钥对
//
// bits 限定在 [RSAMinKeySize, RSAMaxKeySize] 区间内。
func GenerateRSAKey(bits int, src io.Reader) (PrivateKey, PublicKey, error) {
	if bits < RSAMinKeySize {
		return nil, nil, fmt.Errorf("%w: RSA key must be at least %d bits", ErrInvalidKeySize, RSAMinKeySize)
	}
	if bits > RSAMaxKeySize {
		return nil, nil, fmt.Errorf("%w: RSA key must be at most %d bits", ErrInvalidKeySize, RSAMaxKeySize)
	}

	priv, err := rsa.GenerateKey(src, bits)
	if err != nil {
		return nil, nil, err
	}
	return &RSAPrivateKey{k: priv}, &RSAPublicKey{k: &priv.PublicKey}, nil
}

// UnmarshalRSAPublicKey 从原始字节反序列化 RSA 公钥
//
// 输入为 X.509 SubjectPublicKeyInfo DER 字节，即 protobuf 消息的
// Data 字段内容。
func UnmarshalRSAPublicKey(data []byte) (PublicKey, error) {
	pub, err := x509.ParsePKIXPublicKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPublicKey)
	}
	if rsaPub.N.BitLen() < RSAMinKeySize {
		return nil, fmt.Errorf("%w: RSA key too small", ErrInvalidPublicKey)
	}

	return &RSAPublicKey{k: rsaPub}, nil
}

// UnmarshalRSAPrivateKey 从原始字节反序列化 RSA 私钥
//
// 接受两种 DER 形式：PKCS#1（本包序列化使用的形式）与 PKCS#8
// PrivateKeyInfo（RFC 5208，外部生成的密钥常用）。
func UnmarshalRSAPrivateKey(data []byte) (PrivateKey, error) {
	if priv, err := x509.ParsePKCS1PrivateKey(data); err == nil {
		if priv.N.BitLen() < RSAMinKeySize {
			return nil, fmt.Errorf("%w: RSA key too small", ErrInvalidPrivateKey)
		}
		return &RSAPrivateKey{k: priv}, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPrivateKey)
	}
	if priv.N.BitLen() < RSAMinKeySize {
		return nil, fmt.Errorf("%w: RSA key too small", ErrInvalidPrivateKey)
	}
	return &RSAPrivateKey{k: priv}, nil
}

// ============================================================================
//                              RSAPublicKey
// ============================================================================

// RSAPublicKey RSA 公钥
type RSAPublicKey struct {
	k *rsa.PublicKey
}

// Raw 返回 X.509 SubjectPublicKeyInfo DER 字节，即 protobuf 序列化的
// Data 字段内容
func (k *RSAPublicKey) Raw() ([]byte, error) {
	return x509.MarshalPKIXPublicKey(k.k)
}

// Type 返回密钥类型
func (k *RSAPublicKey) Type() KeyType {
	return KeyTypeRSA
}

// Equals 比较两个公钥是否相等
func (k *RSAPublicKey) Equals(other Key) bool {
	rk, ok := other.(*RSAPublicKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return k.k.N.Cmp(rk.k.N) == 0 && k.k.E == rk.k.E
}

// Verify 验证 data 上的签名（PKCS#1 v1.5 + SHA-256）
//
// 验证不通过返回 (false, nil) 而不是错误。
func (k *RSAPublicKey) Verify(data, sig []byte) (bool, error) {
	hash := sha256.Sum256(data)
	err := rsa.VerifyPKCS1v15(k.k, stdcrypto.SHA256, hash[:], sig)
	return err == nil, nil
}

// ============================================================================
//                              RSAPrivateKey
// ============================================================================

// RSAPrivateKey RSA 私钥
type RSAPrivateKey struct {
	k *rsa.PrivateKey
}

// Raw 返回 PKCS#1 DER 字节，即 protobuf 序列化的 Data 字段内容
func (k *RSAPrivateKey) Raw() ([]byte, error) {
	return x509.MarshalPKCS1PrivateKey(k.k), nil
}

// Type 返回密钥类型
func (k *RSAPrivateKey) Type() KeyType {
	return KeyTypeRSA
}

// Equals 比较两个私钥是否相等
func (k *RSAPrivateKey) Equals(other Key) bool {
	rk, ok := other.(*RSAPrivateKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return k.k.D.Cmp(rk.k.D) == 0 && k.k.N.Cmp(rk.k.N) == 0
}

// GetPublic 返回对应的公钥
func (k *RSAPrivateKey) GetPublic() PublicKey {
	return &RSAPublicKey{k: &k.k.PublicKey}
}

// Sign 对 data 签名（PKCS#1 v1.5 + SHA-256），签名长度等于模数长度
func (k *RSAPrivateKey) Sign(data []byte) ([]byte, error) {
	hash := sha256.Sum256(data)
	return rsa.SignPKCS1v15(rand.Reader, k.k, stdcrypto.SHA256, hash[:])
}
