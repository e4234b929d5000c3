package crypto

import (
	"fmt"

	pb "github.com/dep2p/go-multiformats/pkg/lib/proto/key"
)

// ============================================================================
//                              序列化格式
// ============================================================================

// 公钥/私钥/签名统一采用 pkg/lib/proto/key 中的 protobuf 消息：
//
//	message PublicKey  { required KeyType Type = 1; required bytes Data = 2; }
//	message PrivateKey { required KeyType Type = 1; required bytes Data = 2; }
//
// 节点 ID 由 MarshalPublicKey 的输出哈希派生，编码必须逐字节稳定。

// ============================================================================
//                              公钥序列化
// ============================================================================

// MarshalPublicKey 序列化公钥为 protobuf 字节
func MarshalPublicKey(key PublicKey) ([]byte, error) {
	if key == nil {
		return nil, ErrNilPublicKey
	}

	raw, err := key.Raw()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshalFailed, err)
	}

	msg := &pb.PublicKey{
		Type: pb.KeyType(key.Type()),
		Data: raw,
	}
	return msg.Marshal()
}

// UnmarshalPublicKeyBytes 从 protobuf 字节反序列化公钥
func UnmarshalPublicKeyBytes(data []byte) (PublicKey, error) {
	msg := &pb.PublicKey{}
	if err := msg.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnmarshalFailed, err)
	}

	return UnmarshalPublicKey(KeyType(msg.Type), msg.Data)
}

// ============================================================================
//                              私钥序列化
// ============================================================================

// MarshalPrivateKey 序列化私钥为 protobuf 字节
func MarshalPrivateKey(key PrivateKey) ([]byte, error) {
	if key == nil {
		return nil, ErrNilPrivateKey
	}

	raw, err := key.Raw()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshalFailed, err)
	}

	msg := &pb.PrivateKey{
		Type: pb.KeyType(key.Type()),
		Data: raw,
	}
	return msg.Marshal()
}

// UnmarshalPrivateKeyBytes 从 protobuf 字节反序列化私钥
func UnmarshalPrivateKeyBytes(data []byte) (PrivateKey, error) {
	msg := &pb.PrivateKey{}
	if err := msg.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnmarshalFailed, err)
	}

	return UnmarshalPrivateKey(KeyType(msg.Type), msg.Data)
}

// ============================================================================
//                              签名序列化
// ============================================================================

// MarshalSignature 序列化签名（记录密钥类型）
func MarshalSignature(keyType KeyType, sig []byte) ([]byte, error) {
	if sig == nil {
		return nil, ErrNilSignature
	}

	msg := &pb.Signature{
		Type: pb.KeyType(keyType),
		Data: sig,
	}
	return msg.Marshal()
}

// UnmarshalSignature 反序列化签名
//
// 返回：密钥类型和签名数据
func UnmarshalSignature(data []byte) (KeyType, []byte, error) {
	msg := &pb.Signature{}
	if err := msg.Unmarshal(data); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnmarshalFailed, err)
	}

	return KeyType(msg.Type), msg.Data, nil
}
