// Package multihash 提供自描述哈希摘要（multihash）的实现
//
// multihash 把哈希算法码点、摘要长度与摘要值编码为统一的二进制形式：
//
//	<算法码点 varint><摘要长度 varint><摘要字节>
//
// 算法码点取自 multicodec 注册表中 multihash 标签的行，解码方无需
// 带外约定即可识别摘要由哪种算法生成。
//
// # 基本用法
//
//	// 流式：构造、写入、终结、编码
//	cp, _ := multicodec.FromCode(multicodec.Sha2_256)
//	mh, err := multihash.FromCodec(cp)
//	mh.Write([]byte("hello world"))
//	err = mh.Finish()
//	wire, err := mh.Encode()
//
//	// 一步完成
//	mh, err := multihash.Sum(multicodec.Sha2_256, []byte("hello world"))
//
//	// 解码：返回已终结的 multihash 与剩余字节
//	mh, rest, err := multihash.Decode(wire)
//
// # 生命周期
//
// 值在 Finish 之后进入终结态：继续 Write 返回 ErrFinalized，再次
// Finish 返回 ErrDoubleFinalize。Reset 只清除摘要，算法状态在终结时
// 已经复位，复位后的值可以直接写入新数据。Decode 得到的值处于终结态，
// 携带解出的摘要。
//
// # murmur3 种子
//
// murmur3 系列是带种子的非加密哈希。种子以 varint 形式写在长度域覆盖
// 的载荷内、摘要之前，解码时一并还原。种子必须在写入任何数据之前用
// SetMurmur3Seed 设置，缺省为 0。
package multihash
