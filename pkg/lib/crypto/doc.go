// Package crypto 提供 DeP2P 身份密钥工具
//
// 本包提供节点身份密钥的生成、签名验证、序列化和安全存储。
// 序列化公钥是节点 ID 派生的输入，编码格式见 pkg/lib/proto/key。
//
// # 支持的密钥类型
//
//   - Ed25519（默认推荐）：高性能椭圆曲线签名
//   - Secp256k1（区块链兼容）：比特币/以太坊使用的曲线
//   - RSA（互操作兼容）：PKCS#1 v1.5 + SHA-256 签名，2048 位起
//
// ECDSA 仅作为枚举识别以兼容线格式，反序列化返回 ErrBadKeyType。
//
// # 快速开始
//
// 生成密钥对：
//
//	priv, pub, err := crypto.GenerateKeyPair(crypto.KeyTypeEd25519)
//
// 签名和验证：
//
//	sig, err := crypto.Sign(priv, data)
//	valid, err := crypto.Verify(pub, data, sig)
//
// 序列化（protobuf 线格式）：
//
//	data, err := crypto.MarshalPublicKey(pub)
//	pub2, err := crypto.UnmarshalPublicKeyBytes(data)
//
// 密钥存储：
//
//	ks, err := crypto.NewFSKeystore("/path/to/keys", password)
//	err = ks.Put("node-key", priv)
//	priv, err := ks.Get("node-key")
//
// # 安全特性
//
//   - 常量时间比较防止时序攻击
//   - AES-GCM + Argon2id 加密存储
package crypto
