package record

import (
	"bytes"
	"testing"

	"github.com/dep2p/go-multiformats/pkg/lib/proto/key"
)

func TestPeerRecord_MarshalUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		rec  *PeerRecord
	}{
		{
			name: "完整记录",
			rec: &PeerRecord{
				PeerId: []byte{0x00, 0x02, 0xCA, 0xFE},
				Seq:    12345,
				Addresses: []*AddressInfo{
					{Multiaddr: []byte{0x04, 0x7F, 0x00, 0x00, 0x01, 0x06, 0x0F, 0xA1}},
					{Multiaddr: []byte{0x04, 0x0A, 0x00, 0x00, 0x01, 0x06, 0x1F, 0x90}},
				},
			},
		},
		{
			name: "无地址",
			rec: &PeerRecord{
				PeerId: []byte{0x00, 0x01, 0xAB},
				Seq:    1,
			},
		},
		{
			name: "空记录",
			rec:  &PeerRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.rec.Marshal()
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			got := &PeerRecord{}
			if err := got.Unmarshal(data); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			if !bytes.Equal(got.PeerId, tt.rec.PeerId) {
				t.Errorf("PeerId = %x, want %x", got.PeerId, tt.rec.PeerId)
			}
			if got.Seq != tt.rec.Seq {
				t.Errorf("Seq = %d, want %d", got.Seq, tt.rec.Seq)
			}
			if len(got.Addresses) != len(tt.rec.Addresses) {
				t.Fatalf("Addresses count = %d, want %d", len(got.Addresses), len(tt.rec.Addresses))
			}
			for i := range got.Addresses {
				if !bytes.Equal(got.Addresses[i].Multiaddr, tt.rec.Addresses[i].Multiaddr) {
					t.Errorf("Addresses[%d] = %x, want %x", i, got.Addresses[i].Multiaddr, tt.rec.Addresses[i].Multiaddr)
				}
			}
		})
	}
}

// TestPeerRecord_WireFormat 测试签名载荷的字节稳定性
func TestPeerRecord_WireFormat(t *testing.T) {
	rec := &PeerRecord{
		PeerId: []byte{0xAA, 0xBB},
		Seq:    5,
		Addresses: []*AddressInfo{
			{Multiaddr: []byte{0x01, 0x02}},
		},
	}

	data, err := rec.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := []byte{
		0x0A, 0x02, 0xAA, 0xBB, // peer_id
		0x10, 0x05, // seq
		0x1A, 0x04, 0x0A, 0x02, 0x01, 0x02, // addresses[0]
	}
	if !bytes.Equal(data, want) {
		t.Errorf("Marshal() = %x, want %x", data, want)
	}
}

func TestPeerRecord_Unmarshal_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "截断的长度前缀",
			data: []byte{0x0A, 0xFF},
		},
		{
			name: "长度超出数据",
			data: []byte{0x0A, 0x10, 0x01},
		},
		{
			name: "截断的 seq varint",
			data: []byte{0x10, 0x80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := &PeerRecord{}
			if err := got.Unmarshal(tt.data); err == nil {
				t.Error("Unmarshal() expected error, got nil")
			}
		})
	}
}

func TestPeerRecord_Unmarshal_UnknownField(t *testing.T) {
	data := []byte{
		0x0A, 0x01, 0xAA, // peer_id
		0x20, 0x07, // field 4 varint（跳过）
		0x10, 0x03, // seq
	}

	got := &PeerRecord{}
	if err := got.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Seq != 3 {
		t.Errorf("Seq = %d, want 3", got.Seq)
	}
}

func TestEnvelope_MarshalUnmarshal(t *testing.T) {
	env := &Envelope{
		PublicKey: &key.PublicKey{
			Type: key.KeyType_Ed25519,
			Data: bytes.Repeat([]byte{0x11}, 32),
		},
		PayloadType: []byte{0x03, 0x01},
		Payload:     []byte("record-payload"),
		Signature:   bytes.Repeat([]byte{0x22}, 64),
	}

	data, err := env.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	got := &Envelope{}
	if err := got.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.PublicKey == nil {
		t.Fatal("PublicKey is nil")
	}
	if got.PublicKey.Type != key.KeyType_Ed25519 {
		t.Errorf("PublicKey.Type = %v, want Ed25519", got.PublicKey.Type)
	}
	if !bytes.Equal(got.PublicKey.Data, env.PublicKey.Data) {
		t.Errorf("PublicKey.Data mismatch")
	}
	if !bytes.Equal(got.PayloadType, env.PayloadType) {
		t.Errorf("PayloadType = %x, want %x", got.PayloadType, env.PayloadType)
	}
	if !bytes.Equal(got.Payload, env.Payload) {
		t.Errorf("Payload = %q, want %q", got.Payload, env.Payload)
	}
	if !bytes.Equal(got.Signature, env.Signature) {
		t.Errorf("Signature mismatch")
	}
}

// TestEnvelope_SkippedField4 测试废弃的 field 4 被静默跳过
func TestEnvelope_SkippedField4(t *testing.T) {
	data := []byte{
		0x12, 0x02, 0x03, 0x01, // payload_type
		0x22, 0x03, 'o', 'l', 'd', // field 4 bytes（已废弃）
		0x2A, 0x02, 0xDE, 0xAD, // signature
	}

	got := &Envelope{}
	if err := got.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !bytes.Equal(got.PayloadType, []byte{0x03, 0x01}) {
		t.Errorf("PayloadType = %x, want 0301", got.PayloadType)
	}
	if !bytes.Equal(got.Signature, []byte{0xDE, 0xAD}) {
		t.Errorf("Signature = %x, want dead", got.Signature)
	}
}

func TestEnvelope_Unmarshal_InvalidNestedKey(t *testing.T) {
	// public_key 字段内容缺少 required Data
	data := []byte{0x0A, 0x02, 0x08, 0x01}

	got := &Envelope{}
	if err := got.Unmarshal(data); err == nil {
		t.Error("Unmarshal() expected error for invalid nested key, got nil")
	}
}
