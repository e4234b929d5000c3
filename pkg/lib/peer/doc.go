// Package peer 提供节点标识（peer ID）的派生、编解码与公钥提取
//
// 节点 ID 是公钥 protobuf 序列化结果的 multihash：不超过 42 字节的
// 公钥用 identity 码点直接内联，超过 42 字节的用 sha2-256 哈希。
// Ed25519 与 Secp256k1 的公钥序列化后均不超过 42 字节，因此它们的
// 节点 ID 内联公钥，可以直接还原。
//
// # 基本用法
//
//	// 从密钥派生
//	priv, pub, err := crypto.GenerateKeyPair(crypto.KeyTypeEd25519)
//	id, err := peer.FromPublicKey(pub)
//
//	// 文本表示：传统形式（base58btc 裸 multihash）
//	s := id.String() // "12D3KooW..."
//
//	// 文本表示：CID 形式（CIDv1 + libp2p-key）
//	s, err := id.ToBaseText(multibase.Base32Lower) // "bafzaa..."
//
//	// 解析：两种文本形式均可
//	id, err := peer.FromText("QmYyQSo1c1Ym7orWxLYvCrM2EmxFTANf8wXmmE7DWjhx5N")
//
//	// 内联公钥的 ID 可还原公钥
//	pub, err := id.ExtractPublicKey()
//
// # 文本形式
//
// 传统形式以 'Q'（sha2-256 哈希）或 '1'（identity 哈希）开头，是
// 裸 multihash 的 base58btc 编码，无 multibase 前缀。CID 形式是
// CIDv1（内容类型 libp2p-key）的 multibase 编码，任何 multibase
// 均可。两种形式解码后得到相同的 ID 字节。
package peer
