// Package multicodec 提供 multicodec 码点注册表的实现
//
// multicodec 是 multiformats 体系的公共注册表：每个码点由数值代码、
// 符号名称与分类标签组成。代码以 varint 形式嵌入各种二进制格式，
// 作为自描述前缀被 multihash、multiaddr、CID 等上层格式复用。
//
// # 基本用法
//
//	// 按代码查询
//	cp, err := multicodec.FromCode(multicodec.Sha2_256)
//
//	// 按名称查询
//	cp, err := multicodec.FromName("sha2-256")
//
//	// 编码为 varint 前缀
//	prefix := multicodec.Sha2_256.Encode() // [0x12]
//
//	// 从缓冲区头部消费一个码点，返回剩余字节
//	cp, rest, err := multicodec.FromSlice(buf)
//
// # 注册表
//
// 内置表与 multiformats/multicodec 规范对齐，进程启动时构建完毕，
// 之后只读，可被多个 goroutine 无锁并发查询：
// https://github.com/multiformats/multicodec/blob/master/table.csv
//
// 表是封闭的：未注册的代码在解码时返回错误，不支持运行时注册。
package multicodec
