package multiaddr

import (
	"fmt"
	"net"
	"strconv"

	"github.com/dep2p/go-multiformats/pkg/lib/multicodec"
)

// net.Addr 与多地址的互相转换。只覆盖 ip4/ip6 + tcp/udp 的
// 纯传输组合；其余协议（dns、p2p 等）没有唯一的 net.Addr 对应。

// ipOf 提取地址中的 IP 组件，ip4 优先，ip6 其次
//
// 返回 IP 与 ip6zone 区域名（无区域时为空串）。
func ipOf(m Multiaddr) (net.IP, string, error) {
	ipStr, err := m.ValueForProtocol(P_IP4)
	if err != nil {
		ipStr, err = m.ValueForProtocol(P_IP6)
		if err != nil {
			return nil, "", fmt.Errorf("%w: no ip4 or ip6 component", ErrProtocolNotFound)
		}
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return nil, "", fmt.Errorf("%w: bad ip %q", ErrInvalidMultiaddr, ipStr)
	}

	// zone 只出现在 ip6 地址前，缺失不是错误
	zone, _ := m.ValueForProtocol(P_IP6ZONE)
	return ip, zone, nil
}

// portOf 提取指定传输协议的端口值
func portOf(m Multiaddr, transport multicodec.Code) (int, error) {
	portStr, err := m.ValueForProtocol(transport)
	if err != nil {
		return 0, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("%w: bad port %q", ErrInvalidMultiaddr, portStr)
	}
	return port, nil
}

// ToTCPAddr 将 /ip4|ip6/.../tcp/... 地址转换为 *net.TCPAddr
func (m *multiaddr) ToTCPAddr() (*net.TCPAddr, error) {
	ip, zone, err := ipOf(m)
	if err != nil {
		return nil, err
	}
	port, err := portOf(m, P_TCP)
	if err != nil {
		return nil, err
	}
	return &net.TCPAddr{IP: ip, Port: port, Zone: zone}, nil
}

// ToUDPAddr 将 /ip4|ip6/.../udp/... 地址转换为 *net.UDPAddr
func (m *multiaddr) ToUDPAddr() (*net.UDPAddr, error) {
	ip, zone, err := ipOf(m)
	if err != nil {
		return nil, err
	}
	port, err := portOf(m, P_UDP)
	if err != nil {
		return nil, err
	}
	return &net.UDPAddr{IP: ip, Port: port, Zone: zone}, nil
}

// FromIPAndZone 从 net.IP 与区域名创建地址
//
// zone 非空时产出 /ip6zone/<zone>/ip6/<ip>，对应带区域的链路本地
// 地址（如 fe80::1%eth0）；IPv4 地址忽略区域名。
func FromIPAndZone(ip net.IP, zone string) (Multiaddr, error) {
	if ip == nil {
		return nil, fmt.Errorf("%w: nil ip", ErrInvalidMultiaddr)
	}
	if ip4 := ip.To4(); ip4 != nil {
		return NewMultiaddr("/ip4/" + ip4.String())
	}
	if ip.To16() == nil {
		return nil, fmt.Errorf("%w: bad ip %q", ErrInvalidMultiaddr, ip.String())
	}
	if zone == "" {
		return NewMultiaddr("/ip6/" + ip.String())
	}
	return NewMultiaddr("/ip6zone/" + zone + "/ip6/" + ip.String())
}

// FromIP 从 net.IP 创建单组件地址（/ip4/... 或 /ip6/...）
func FromIP(ip net.IP) (Multiaddr, error) {
	return FromIPAndZone(ip, "")
}

// fromIPPort 构造 IP + 传输端口两段式地址
func fromIPPort(ip net.IP, zone, transport string, port int) (Multiaddr, error) {
	base, err := FromIPAndZone(ip, zone)
	if err != nil {
		return nil, err
	}
	tail, err := NewMultiaddr("/" + transport + "/" + strconv.Itoa(port))
	if err != nil {
		return nil, err
	}
	return base.Encapsulate(tail), nil
}

// FromTCPAddr 从 *net.TCPAddr 创建多地址
func FromTCPAddr(addr *net.TCPAddr) (Multiaddr, error) {
	if addr == nil {
		return nil, fmt.Errorf("%w: nil tcp addr", ErrInvalidMultiaddr)
	}
	return fromIPPort(addr.IP, addr.Zone, "tcp", addr.Port)
}

// FromUDPAddr 从 *net.UDPAddr 创建多地址
func FromUDPAddr(addr *net.UDPAddr) (Multiaddr, error) {
	if addr == nil {
		return nil, fmt.Errorf("%w: nil udp addr", ErrInvalidMultiaddr)
	}
	return fromIPPort(addr.IP, addr.Zone, "udp", addr.Port)
}

// FromNetAddr 从 net.Addr 创建多地址
//
// 支持 *net.TCPAddr、*net.UDPAddr 和 *net.IPAddr。
func FromNetAddr(addr net.Addr) (Multiaddr, error) {
	switch a := addr.(type) {
	case *net.TCPAddr:
		return FromTCPAddr(a)
	case *net.UDPAddr:
		return FromUDPAddr(a)
	case *net.IPAddr:
		return FromIPAndZone(a.IP, a.Zone)
	case nil:
		return nil, fmt.Errorf("%w: nil addr", ErrInvalidMultiaddr)
	default:
		return nil, fmt.Errorf("%w: unsupported addr type %T", ErrInvalidMultiaddr, addr)
	}
}
