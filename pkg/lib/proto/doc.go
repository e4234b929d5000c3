// Package proto 定义跨网络传输的协议消息（wire format）
//
// 本包包含两个子包，每个子包定义一组相关的 Protobuf 消息：
//
// # 子包
//
//   - key: 密钥序列化格式（节点 ID 派生的输入）
//   - record: 节点记录与签名信封（可转发的地址声明）
//
// # 职能
//
// pkg/lib/proto 的职能是定义 **跨实现传输** 的协议消息：
//   - 与 libp2p 的 keys.proto / peer_record.proto / envelope.proto
//     保持线格式逐字节兼容
//   - 支持跨语言序列化（Protobuf wire format）
//   - 变更成本高（影响签名校验与节点身份）
//
// # 实现方式
//
// 消息直接基于 protowire 手写编解码，而非 protoc 生成：
// 签名载荷要求零值字段严格省略（proto3 语义），手写编码器
// 保证序列化结果逐字节稳定，且未知字段在解码时被跳过以保持
// 向前兼容。每个消息的字段布局见子包的包注释。
//
// # 使用示例
//
//	import "github.com/dep2p/go-multiformats/pkg/lib/proto/key"
//
//	pk := &key.PublicKey{
//	    Type: key.KeyType_Ed25519,
//	    Data: raw,
//	}
//	data, err := pk.Marshal()
package proto
