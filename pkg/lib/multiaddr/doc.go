// Package multiaddr 提供多地址（Multiaddr）的实现
//
// Multiaddr 是一种自描述的网络地址格式，支持多种传输协议和地址类型。
//
// # 基本用法
//
//	// 创建多地址
//	ma, err := multiaddr.NewMultiaddr("/ip4/127.0.0.1/tcp/4001")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// 获取字符串表示
//	fmt.Println(ma.String()) // /ip4/127.0.0.1/tcp/4001
//
//	// 获取二进制表示
//	bytes := ma.Bytes()
//
//	// 封装另一个地址
//	p2p, _ := multiaddr.NewMultiaddr("/p2p/QmYyQSo1c1Ym7orWxLYvCrM2EmxFTANf8wXmmE7DWjhx5N")
//	full := ma.Encapsulate(p2p)
//
// # 支持的协议
//
// 本包支持 multicodec 注册表中带 multiaddr 标签的全部协议：
//
//   - IP4/IP6/IP6ZONE: IPv4 和 IPv6 地址
//   - TCP/UDP/DCCP/SCTP: 传输层端口
//   - DNS/DNS4/DNS6/DNSADDR: DNS 名称
//   - P2P: 对等节点 ID（兼容 ipfs 旧名称）
//   - QUIC/WS/WSS/TLS/HTTP/HTTPS: 上层传输
//   - ONION/ONION3: Tor 地址
//   - GARLIC32/GARLIC64: I2P 地址
//   - UNIX: Unix 域套接字路径
//
// # 地址格式
//
// 字符串格式：
//
//	/ip4/127.0.0.1/tcp/4001
//	/ip6/::1/tcp/8080
//	/ip4/192.168.1.1/udp/4001/quic
//	/ip4/1.2.3.4/tcp/4001/p2p/QmYyQSo1c1Ym7orWxLYvCrM2EmxFTANf8wXmmE7DWjhx5N
//	/dns/example.com/tcp/443/wss
//
// 二进制格式：
//
//	[varint:protocol_code][varint:length][data_bytes]...
//
// 定长协议（如 ip4、tcp）没有长度前缀，变长协议（如 dns、unix）
// 使用 varint 长度前缀；长度前缀只存在于二进制形式。
//
// # 与标准网络类型转换
//
//	// 从 net.TCPAddr 创建
//	tcpAddr := &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 4001}
//	ma, err := multiaddr.FromTCPAddr(tcpAddr)
//
//	// 转换为 net.TCPAddr
//	ma, _ := multiaddr.NewMultiaddr("/ip4/127.0.0.1/tcp/4001")
//	tcpAddr, err := ma.ToTCPAddr()
//
// # 工具函数
//
//	// 拆分为单组件片段
//	parts := multiaddr.Split(ma)
//
//	// 拼接单组件片段（多组件片段会被拒绝）
//	full, err := multiaddr.Join(parts...)
//
//	// 提取 PeerID
//	id, err := multiaddr.GetPeerID(ma)
//
//	// 过滤地址
//	tcpAddrs := multiaddr.FilterAddrs(addrs, func(ma multiaddr.Multiaddr) bool {
//	    return multiaddr.HasProtocol(ma, multiaddr.P_TCP)
//	})
//
//	// 去重
//	unique := multiaddr.UniqueAddrs(addrs)
//
// # 与 multiformats 对齐
//
// 所有协议代码与 multiformats/multicodec 完全对齐：
// https://github.com/multiformats/multicodec/blob/master/table.csv
package multiaddr
