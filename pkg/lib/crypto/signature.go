package crypto

// Signature 带密钥类型标记的签名
//
// 类型标记让验证方在密钥类型不匹配时直接拒绝，而不进入曲线运算。
type Signature struct {
	// Type 签名使用的密钥类型
	Type KeyType

	// Data 签名数据
	Data []byte
}

// Marshal 序列化签名为 protobuf 字节
func (s *Signature) Marshal() ([]byte, error) {
	if s == nil {
		return nil, ErrNilSignature
	}
	return MarshalSignature(s.Type, s.Data)
}

// UnmarshalSignatureBytes 从 protobuf 字节反序列化签名
func UnmarshalSignatureBytes(data []byte) (*Signature, error) {
	kt, sig, err := UnmarshalSignature(data)
	if err != nil {
		return nil, err
	}
	return &Signature{Type: kt, Data: sig}, nil
}

// Sign 使用私钥签名数据
func Sign(key PrivateKey, data []byte) (*Signature, error) {
	if key == nil {
		return nil, ErrNilPrivateKey
	}

	sig, err := key.Sign(data)
	if err != nil {
		return nil, err
	}

	return &Signature{
		Type: key.Type(),
		Data: sig,
	}, nil
}

// Verify 使用公钥验证签名
//
// 签名的密钥类型必须与公钥一致。
func Verify(key PublicKey, data []byte, sig *Signature) (bool, error) {
	if key == nil {
		return false, ErrNilPublicKey
	}
	if sig == nil {
		return false, ErrNilSignature
	}
	if key.Type() != sig.Type {
		return false, ErrSignatureTypeMismatch
	}

	return key.Verify(data, sig.Data)
}
