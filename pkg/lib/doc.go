// Package lib 包含 multiformats 各格式的实现包
//
// 本目录按格式分包，自底向上依赖：
//
//   - varint: 无符号 LEB128 变长整数（所有格式的公共原语）
//   - multicodec: 静态码点注册表
//   - multibase: 自描述文本基数编码
//   - multihash: 自描述哈希摘要引擎
//   - multiaddr: 可组合网络地址
//   - cid: 版本化内容标识符
//   - cidutil: CID 常用捷径与解析缓存
//
// 身份配套：
//
//   - crypto: 身份密钥（Ed25519 / Secp256k1）
//   - peer: 由公钥派生的节点标识符
//   - record: 节点记录与签名信封
//   - proto: Protobuf 线格式消息（key / record）
//
// 基础设施：
//
//   - log: 日志封装
//
// # 使用示例
//
//	import (
//	    "github.com/dep2p/go-multiformats/pkg/lib/cid"
//	    "github.com/dep2p/go-multiformats/pkg/lib/multiaddr"
//	    "github.com/dep2p/go-multiformats/pkg/lib/multihash"
//	)
package lib
