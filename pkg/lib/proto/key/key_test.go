package key

import (
	"bytes"
	"errors"
	"testing"
)

func TestKeyType_String(t *testing.T) {
	tests := []struct {
		kt   KeyType
		want string
	}{
		{KeyType_RSA, "RSA"},
		{KeyType_Ed25519, "Ed25519"},
		{KeyType_Secp256k1, "Secp256k1"},
		{KeyType_ECDSA, "ECDSA"},
		{KeyType(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kt.String(); got != tt.want {
			t.Errorf("KeyType(%d).String() = %q, want %q", tt.kt, got, tt.want)
		}
	}
}

// TestKeyTypeValues 测试枚举值与 libp2p keys.proto 对齐
func TestKeyTypeValues(t *testing.T) {
	if KeyType_RSA != 0 {
		t.Errorf("KeyType_RSA = %d, want 0", KeyType_RSA)
	}
	if KeyType_Ed25519 != 1 {
		t.Errorf("KeyType_Ed25519 = %d, want 1", KeyType_Ed25519)
	}
	if KeyType_Secp256k1 != 2 {
		t.Errorf("KeyType_Secp256k1 = %d, want 2", KeyType_Secp256k1)
	}
	if KeyType_ECDSA != 3 {
		t.Errorf("KeyType_ECDSA = %d, want 3", KeyType_ECDSA)
	}
}

func TestPublicKey_MarshalUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		msg  *PublicKey
	}{
		{
			name: "Ed25519 公钥",
			msg: &PublicKey{
				Type: KeyType_Ed25519,
				Data: bytes.Repeat([]byte{0xAA}, 32),
			},
		},
		{
			name: "Secp256k1 压缩公钥",
			msg: &PublicKey{
				Type: KeyType_Secp256k1,
				Data: bytes.Repeat([]byte{0x02}, 33),
			},
		},
		{
			name: "RSA 零值类型仍写入",
			msg: &PublicKey{
				Type: KeyType_RSA,
				Data: []byte("rsa"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.msg.Marshal()
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			got := &PublicKey{}
			if err := got.Unmarshal(data); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			if got.Type != tt.msg.Type {
				t.Errorf("Type = %v, want %v", got.Type, tt.msg.Type)
			}
			if !bytes.Equal(got.Data, tt.msg.Data) {
				t.Errorf("Data mismatch: got %x, want %x", got.Data, tt.msg.Data)
			}
		})
	}
}

// TestPublicKey_WireFormat 测试线格式逐字节稳定
//
// 节点 ID 派生依赖编码稳定性，此处固定断言字节序列。
func TestPublicKey_WireFormat(t *testing.T) {
	msg := &PublicKey{
		Type: KeyType_Ed25519,
		Data: []byte{0x01, 0x02, 0x03},
	}

	data, err := msg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// field 1 varint=1, field 2 bytes len=3
	want := []byte{0x08, 0x01, 0x12, 0x03, 0x01, 0x02, 0x03}
	if !bytes.Equal(data, want) {
		t.Errorf("Marshal() = %x, want %x", data, want)
	}
}

func TestPublicKey_Unmarshal_UnknownField(t *testing.T) {
	// 已知字段 + 未知 varint 字段 7 + 未知 bytes 字段 3
	data := []byte{
		0x08, 0x01, // Type = Ed25519
		0x12, 0x02, 0xCA, 0xFE, // Data
		0x38, 0x2A, // field 7 varint（跳过）
		0x1A, 0x03, 'a', 'b', 'c', // field 3 bytes（跳过）
	}

	got := &PublicKey{}
	if err := got.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Type != KeyType_Ed25519 {
		t.Errorf("Type = %v, want Ed25519", got.Type)
	}
	if !bytes.Equal(got.Data, []byte{0xCA, 0xFE}) {
		t.Errorf("Data = %x, want cafe", got.Data)
	}
}

func TestPublicKey_Unmarshal_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "空数据缺少 required 字段",
			data: nil,
		},
		{
			name: "只有 Type 缺少 Data",
			data: []byte{0x08, 0x01},
		},
		{
			name: "只有 Data 缺少 Type",
			data: []byte{0x12, 0x02, 0xCA, 0xFE},
		},
		{
			name: "长度超出数据",
			data: []byte{0x08, 0x01, 0x12, 0xFF, 0x01},
		},
		{
			name: "截断的 varint",
			data: []byte{0x08, 0x80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := &PublicKey{}
			if err := got.Unmarshal(tt.data); err == nil {
				t.Error("Unmarshal() expected error, got nil")
			}
		})
	}
}

func TestPublicKey_Unmarshal_MissingRequired(t *testing.T) {
	got := &PublicKey{}
	err := got.Unmarshal([]byte{0x08, 0x01})
	if !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("Unmarshal() error = %v, want ErrInvalidMessage", err)
	}
}

func TestPrivateKey_MarshalUnmarshal(t *testing.T) {
	msg := &PrivateKey{
		Type: KeyType_Secp256k1,
		Data: bytes.Repeat([]byte{0x5B}, 32),
	}

	data, err := msg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	got := &PrivateKey{}
	if err := got.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.Type != KeyType_Secp256k1 {
		t.Errorf("Type = %v, want Secp256k1", got.Type)
	}
	if !bytes.Equal(got.Data, msg.Data) {
		t.Errorf("Data mismatch: got %x, want %x", got.Data, msg.Data)
	}
}

func TestSignature_MarshalUnmarshal(t *testing.T) {
	msg := &Signature{
		Type: KeyType_Ed25519,
		Data: bytes.Repeat([]byte{0x51}, 64),
	}

	data, err := msg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	got := &Signature{}
	if err := got.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.Type != msg.Type {
		t.Errorf("Type = %v, want %v", got.Type, msg.Type)
	}
	if !bytes.Equal(got.Data, msg.Data) {
		t.Errorf("Data mismatch: got %x, want %x", got.Data, msg.Data)
	}
}
