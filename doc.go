// Package multiformats 提供 DeP2P 使用的自描述编码族
//
// multiformats 是一组自描述的二进制编码约定，用于在 P2P 网络中
// 标识内容、地址和节点。本模块实现其中五个核心格式及其配套设施：
//
//   - multicodec: 静态码点注册表，varint 编码的格式标签
//   - multibase: 一字符前缀自描述的文本基数编码
//   - multihash: 多算法统一接口的自描述哈希摘要
//   - multiaddr: 可组合、可递归的网络地址链
//   - cid: 版本化内容标识符（v0 / v1）
//
// # 快速开始
//
//	import (
//	    "github.com/dep2p/go-multiformats/pkg/lib/cid"
//	    "github.com/dep2p/go-multiformats/pkg/lib/multibase"
//	    "github.com/dep2p/go-multiformats/pkg/lib/multicodec"
//	)
//
//	// 由内容字节派生 CIDv1
//	c, err := cid.NewV1(multibase.Base32Lower, multicodec.Raw, data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(c.String()) // bafkrei...
//
// # 包层次结构
//
// 自底向上依赖：varint → multicodec → {multibase, multihash} →
// {multiaddr, cid} → {peer, record}。所有包都是纯值变换，
// 除进程级只读注册表外没有共享状态，可以被多 goroutine 并发使用。
//
// 配套包 crypto（身份密钥）、peer（节点标识符）、record（节点记录）
// 把编码栈接入 DeP2P 的身份体系；cidutil 提供常用捷径。
package multiformats
