// Package record 提供节点记录（peer record）与域分隔的签名信封
//
// PeerRecord 是节点对外公布的自描述信息：节点 ID、监听地址列表与
// 单调递增的序列号。记录经 protobuf 序列化后装入 Envelope，由节点
// 私钥签名；接收方验证签名并确认记录归属后才接受。
//
// # 基本用法
//
//	// 构造并签名
//	priv, pub, _ := crypto.GenerateKeyPair(crypto.KeyTypeEd25519)
//	id, _ := peer.FromPublicKey(pub)
//	rec := record.NewPeerRecord(id, addrs)
//	env, err := record.Seal(rec, priv)
//	wire, err := env.Marshal()
//
//	// 接收并验证
//	env, rec, err := record.ConsumeEnvelope(wire, record.Domain)
//
// # 签名载荷
//
// 签名覆盖的不是裸 payload，而是域分隔的拼接：
//
//	varint(len(domain))      || domain      ||
//	varint(len(payloadType)) || payloadType ||
//	varint(len(payload))     || payload
//
// 域字符串把签名绑定到用途上，同一把钥匙为其它用途签出的字节串
// 不会在这里通过验证。payloadType 是 libp2p-peer-record 码点
// （0x0301）的 varint 编码。
package record
