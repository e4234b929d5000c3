// Package cid 提供版本化内容标识符（CID）的实现
//
// CID 把内容的 multihash 摘要、内容类型码点与文本渲染用的 multibase
// 组合成一个自描述的标识符，有两个互不兼容的版本：
//
//   - v0: 历史形式。二进制即裸 multihash 字节（sha2-256 固定），
//     文本即其 base58btc 编码（Qm 开头），内容类型隐含为 dag-pb，
//     没有任何 multicodec 框架。
//   - v1: <cidv1 varint><内容类型 varint><multihash>，文本为任意
//     multibase 编码，base 的选择只影响文本渲染，不进入二进制形式。
//
// # 基本用法
//
//	// 由内容字节派生
//	c, err := cid.NewV0(data)                                    // Qm...
//	c, err := cid.NewV1(multibase.Base32Lower, multicodec.Raw, data) // bafk...
//
//	// 解析文本（自动识别 v0 / v1）
//	c, err := cid.FromText("QmRJzsvyCQyizr73Gmms8ZRtvNxmgqumxc2KUp71dfEmoj")
//
//	// 二进制编解码
//	wire := c.Encode()
//	c2, rest, err := cid.Decode(wire)
//
// # 版本识别
//
// 文本以前两个字符嗅探：'Q','m' 或 '1' 开头按传统 base58btc v0 解码，
// 其余走 multibase 解码并要求载荷以 cidv1 版本标签开头。二进制以
// 0x12,0x20（sha2-256 的 multihash 头）嗅探 v0。这个宽松的前缀约定
// 与其它实现保持一致，不做完整的 base58 预校验。
//
// # 相等性
//
// Equal 比较版本、内容类型与 multihash。v0 与 v1 即使摘要相同也永不
// 相等；v1 的渲染 base 不参与比较。
package cid
