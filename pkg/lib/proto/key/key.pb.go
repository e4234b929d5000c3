// Package key 包含密钥序列化的 protobuf 定义
//
// 与 libp2p 的 keys.proto 保持线格式兼容：
//
//	enum KeyType { RSA = 0; Ed25519 = 1; Secp256k1 = 2; ECDSA = 3; }
//	message PublicKey  { required KeyType Type = 1; required bytes Data = 2; }
//	message PrivateKey { required KeyType Type = 1; required bytes Data = 2; }
//
// 节点 ID 由序列化公钥哈希派生，跨实现一致性依赖此编码逐字节稳定。
package key

import (
	"errors"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrInvalidMessage 表示无效或不完整的消息数据
var ErrInvalidMessage = errors.New("invalid key message data")

// KeyType 密钥类型枚举
type KeyType int32

// 枚举值与 libp2p keys.proto 对齐，不可变更
const (
	KeyType_RSA       KeyType = 0
	KeyType_Ed25519   KeyType = 1
	KeyType_Secp256k1 KeyType = 2
	KeyType_ECDSA     KeyType = 3
)

// String 返回枚举名称
func (t KeyType) String() string {
	switch t {
	case KeyType_RSA:
		return "RSA"
	case KeyType_Ed25519:
		return "Ed25519"
	case KeyType_Secp256k1:
		return "Secp256k1"
	case KeyType_ECDSA:
		return "ECDSA"
	default:
		return "Unknown"
	}
}

// PublicKey 序列化的公钥
type PublicKey struct {
	// 密钥类型
	Type KeyType
	// 类型特定的公钥字节
	Data []byte
}

// Marshal 序列化 PublicKey
//
// 使用 protobuf wire format 编码：
//   - Field 1 (Type): varint
//   - Field 2 (Data): length-delimited
//
// 两个字段均为 required 语义，即使取零值也会写入。
func (m *PublicKey) Marshal() ([]byte, error) {
	buf := make([]byte, 0, len(m.Data)+8)
	buf = protowire.AppendTag(buf, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(m.Type))
	buf = protowire.AppendTag(buf, 2, protowire.BytesType)
	buf = protowire.AppendBytes(buf, m.Data)
	return buf, nil
}

// Unmarshal 反序列化 PublicKey
//
// 未知字段静默跳过（向前兼容），缺失 required 字段返回 ErrInvalidMessage。
func (m *PublicKey) Unmarshal(data []byte) error {
	typ, dat, err := consumeTypeData(data)
	if err != nil {
		return err
	}
	m.Type = typ
	m.Data = dat
	return nil
}

// PrivateKey 序列化的私钥
type PrivateKey struct {
	// 密钥类型
	Type KeyType
	// 类型特定的私钥字节
	Data []byte
}

// Marshal 序列化 PrivateKey（与 PublicKey 同构）
func (m *PrivateKey) Marshal() ([]byte, error) {
	buf := make([]byte, 0, len(m.Data)+8)
	buf = protowire.AppendTag(buf, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(m.Type))
	buf = protowire.AppendTag(buf, 2, protowire.BytesType)
	buf = protowire.AppendBytes(buf, m.Data)
	return buf, nil
}

// Unmarshal 反序列化 PrivateKey
func (m *PrivateKey) Unmarshal(data []byte) error {
	typ, dat, err := consumeTypeData(data)
	if err != nil {
		return err
	}
	m.Type = typ
	m.Data = dat
	return nil
}

// Signature 序列化的签名（记录签名使用的密钥类型）
type Signature struct {
	// 签名密钥类型
	Type KeyType
	// 签名字节
	Data []byte
}

// Marshal 序列化 Signature（与 PublicKey 同构）
func (m *Signature) Marshal() ([]byte, error) {
	buf := make([]byte, 0, len(m.Data)+8)
	buf = protowire.AppendTag(buf, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(m.Type))
	buf = protowire.AppendTag(buf, 2, protowire.BytesType)
	buf = protowire.AppendBytes(buf, m.Data)
	return buf, nil
}

// Unmarshal 反序列化 Signature
func (m *Signature) Unmarshal(data []byte) error {
	typ, dat, err := consumeTypeData(data)
	if err != nil {
		return err
	}
	m.Type = typ
	m.Data = dat
	return nil
}

// consumeTypeData 解析 {Type=1 varint, Data=2 bytes} 形状的消息体
func consumeTypeData(data []byte) (KeyType, []byte, error) {
	var (
		keyType KeyType
		keyData []byte
		sawType bool
		sawData bool
	)

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return 0, nil, protowire.ParseError(n)
		}
		data = data[n:]

		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return 0, nil, protowire.ParseError(n)
			}
			keyType = KeyType(v)
			sawType = true
			data = data[n:]

		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return 0, nil, protowire.ParseError(n)
			}
			keyData = append([]byte(nil), v...)
			sawData = true
			data = data[n:]

		default:
			// 未知字段跳过（向前兼容）
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return 0, nil, protowire.ParseError(n)
			}
			data = data[n:]
		}
	}

	if !sawType || !sawData {
		return 0, nil, ErrInvalidMessage
	}
	return keyType, keyData, nil
}
