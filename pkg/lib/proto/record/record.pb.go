// Package record 包含节点记录与签名信封的 protobuf 定义
//
// 与 libp2p 的 peer_record.proto / envelope.proto 保持线格式兼容：
//
//	message PeerRecord {
//	  message AddressInfo { bytes multiaddr = 1; }
//	  bytes  peer_id   = 1;
//	  uint64 seq       = 2;
//	  repeated AddressInfo addresses = 3;
//	}
//
//	message Envelope {
//	  PublicKey public_key   = 1;
//	  bytes     payload_type = 2;
//	  bytes     payload      = 3;
//	  bytes     signature    = 5;
//	}
//
// 信封的 field 4 在上游协议中已废弃，保持跳号。
package record

import (
	"errors"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/dep2p/go-multiformats/pkg/lib/proto/key"
)

// ErrInvalidMessage 表示无效的消息数据
var ErrInvalidMessage = errors.New("invalid record message data")

// AddressInfo 单个监听地址（二进制 multiaddr）
type AddressInfo struct {
	Multiaddr []byte
}

// Marshal 序列化 AddressInfo
func (m *AddressInfo) Marshal() ([]byte, error) {
	buf := make([]byte, 0, len(m.Multiaddr)+4)
	if len(m.Multiaddr) > 0 {
		buf = protowire.AppendTag(buf, 1, protowire.BytesType)
		buf = protowire.AppendBytes(buf, m.Multiaddr)
	}
	return buf, nil
}

// Unmarshal 反序列化 AddressInfo
func (m *AddressInfo) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Multiaddr = append([]byte(nil), v...)
			data = data[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

// PeerRecord 节点的自描述记录
//
// PeerId 为原始 multihash 字节，Seq 为严格递增的版本号，
// Addresses 为节点声明的监听地址列表。
type PeerRecord struct {
	PeerId    []byte
	Seq       uint64
	Addresses []*AddressInfo
}

// Marshal 序列化 PeerRecord
//
// 零值字段省略（proto3 语义），保证与上游实现的签名载荷逐字节一致。
func (m *PeerRecord) Marshal() ([]byte, error) {
	size := len(m.PeerId) + 16
	for _, a := range m.Addresses {
		if a != nil {
			size += len(a.Multiaddr) + 6
		}
	}
	buf := make([]byte, 0, size)

	if len(m.PeerId) > 0 {
		buf = protowire.AppendTag(buf, 1, protowire.BytesType)
		buf = protowire.AppendBytes(buf, m.PeerId)
	}
	if m.Seq != 0 {
		buf = protowire.AppendTag(buf, 2, protowire.VarintType)
		buf = protowire.AppendVarint(buf, m.Seq)
	}
	for _, a := range m.Addresses {
		if a == nil {
			continue
		}
		sub, err := a.Marshal()
		if err != nil {
			return nil, err
		}
		buf = protowire.AppendTag(buf, 3, protowire.BytesType)
		buf = protowire.AppendBytes(buf, sub)
	}
	return buf, nil
}

// Unmarshal 反序列化 PeerRecord
func (m *PeerRecord) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.PeerId = append([]byte(nil), v...)
			data = data[n:]

		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Seq = v
			data = data[n:]

		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			ai := &AddressInfo{}
			if err := ai.Unmarshal(v); err != nil {
				return err
			}
			m.Addresses = append(m.Addresses, ai)
			data = data[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

// Envelope 域分隔的签名信封
//
// PayloadType 标识 Payload 的 multicodec 类型，
// Signature 覆盖域字符串、PayloadType 与 Payload 的长度前缀拼接。
type Envelope struct {
	PublicKey   *key.PublicKey
	PayloadType []byte
	Payload     []byte
	Signature   []byte
}

// Marshal 序列化 Envelope
func (m *Envelope) Marshal() ([]byte, error) {
	buf := make([]byte, 0, len(m.PayloadType)+len(m.Payload)+len(m.Signature)+64)

	if m.PublicKey != nil {
		sub, err := m.PublicKey.Marshal()
		if err != nil {
			return nil, err
		}
		buf = protowire.AppendTag(buf, 1, protowire.BytesType)
		buf = protowire.AppendBytes(buf, sub)
	}
	if len(m.PayloadType) > 0 {
		buf = protowire.AppendTag(buf, 2, protowire.BytesType)
		buf = protowire.AppendBytes(buf, m.PayloadType)
	}
	if len(m.Payload) > 0 {
		buf = protowire.AppendTag(buf, 3, protowire.BytesType)
		buf = protowire.AppendBytes(buf, m.Payload)
	}
	if len(m.Signature) > 0 {
		buf = protowire.AppendTag(buf, 5, protowire.BytesType)
		buf = protowire.AppendBytes(buf, m.Signature)
	}
	return buf, nil
}

// Unmarshal 反序列化 Envelope
func (m *Envelope) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			pk := &key.PublicKey{}
			if err := pk.Unmarshal(v); err != nil {
				return err
			}
			m.PublicKey = pk
			data = data[n:]

		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.PayloadType = append([]byte(nil), v...)
			data = data[n:]

		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Payload = append([]byte(nil), v...)
			data = data[n:]

		case num == 5 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Signature = append([]byte(nil), v...)
			data = data[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}
