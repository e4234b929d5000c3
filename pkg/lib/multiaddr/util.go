package multiaddr

import (
	"bytes"
	"fmt"

	"github.com/dep2p/go-multiformats/pkg/lib/multicodec"
)

// Split 将多地址拆分为单组件片段序列
// 输入：/ip4/1.2.3.4/tcp/4001/p2p/Qm...
// 输出：[/ip4/1.2.3.4, /tcp/4001, /p2p/Qm...]
func Split(m Multiaddr) []Multiaddr {
	if m == nil {
		return nil
	}

	var parts []Multiaddr
	b := m.Bytes()
	for len(b) > 0 {
		frag, rest, err := Decode(b)
		if err != nil {
			// 构造时已验证过
			panic(err)
		}
		parts = append(parts, frag)
		b = rest
	}

	return parts
}

// Join 依次拼接单组件片段，是 Split 的左逆操作
// 包含多个组件的片段会被拒绝
func Join(parts ...Multiaddr) (Multiaddr, error) {
	var buf bytes.Buffer
	for _, p := range parts {
		if p == nil {
			return nil, fmt.Errorf("nil multiaddr fragment")
		}
		_, rest, err := Decode(p.Bytes())
		if err != nil {
			return nil, err
		}
		if len(rest) != 0 {
			return nil, fmt.Errorf("%s: %w", p, ErrNotBareFragment)
		}
		buf.Write(p.Bytes())
	}

	if buf.Len() == 0 {
		return nil, fmt.Errorf("empty multiaddr")
	}
	return &multiaddr{bytes: buf.Bytes()}, nil
}

// FilterAddrs 过滤多地址列表
func FilterAddrs(addrs []Multiaddr, filter func(Multiaddr) bool) []Multiaddr {
	result := make([]Multiaddr, 0, len(addrs))
	for _, addr := range addrs {
		if filter(addr) {
			result = append(result, addr)
		}
	}
	return result
}

// UniqueAddrs 去重多地址列表（保持顺序）
func UniqueAddrs(addrs []Multiaddr) []Multiaddr {
	seen := make(map[string]bool)
	result := make([]Multiaddr, 0, len(addrs))

	for _, addr := range addrs {
		s := addr.String()
		if !seen[s] {
			seen[s] = true
			result = append(result, addr)
		}
	}

	return result
}

// HasProtocol 检查多地址是否包含指定协议
func HasProtocol(m Multiaddr, code multicodec.Code) bool {
	if m == nil {
		return false
	}

	protocols := m.Protocols()
	for _, p := range protocols {
		if p.Code == code {
			return true
		}
	}
	return false
}

// IsTCPMultiaddr 检查是否为 TCP 多地址
func IsTCPMultiaddr(m Multiaddr) bool {
	return HasProtocol(m, P_TCP)
}

// IsUDPMultiaddr 检查是否为 UDP 多地址
func IsUDPMultiaddr(m Multiaddr) bool {
	return HasProtocol(m, P_UDP)
}

// IsIP4Multiaddr 检查是否包含 IPv4
func IsIP4Multiaddr(m Multiaddr) bool {
	return HasProtocol(m, P_IP4)
}

// IsIP6Multiaddr 检查是否包含 IPv6
func IsIP6Multiaddr(m Multiaddr) bool {
	return HasProtocol(m, P_IP6)
}

// IsIPMultiaddr 检查是否包含 IP（IPv4 或 IPv6）
func IsIPMultiaddr(m Multiaddr) bool {
	return IsIP4Multiaddr(m) || IsIP6Multiaddr(m)
}

// GetPeerID 从多地址中提取 PeerID（如果有）
func GetPeerID(m Multiaddr) (string, error) {
	if m == nil {
		return "", fmt.Errorf("nil multiaddr")
	}

	var id string
	ForEach(m, func(c Component) bool {
		if c.protocol.Code == P_P2P {
			id = c.value
			return false
		}
		return true
	})

	if id == "" {
		return "", fmt.Errorf("no peer ID in multiaddr")
	}
	return id, nil
}

// WithPeerID 为多地址添加或替换 PeerID
func WithPeerID(m Multiaddr, peerID string) (Multiaddr, error) {
	if m == nil {
		return nil, fmt.Errorf("nil multiaddr")
	}

	p2pAddr, err := NewMultiaddr("/p2p/" + peerID)
	if err != nil {
		return nil, err
	}

	transport := WithoutPeerID(m)
	if transport == nil {
		return p2pAddr, nil
	}
	return transport.Encapsulate(p2pAddr), nil
}

// WithoutPeerID 移除多地址中自第一个 p2p 组件起的部分
func WithoutPeerID(m Multiaddr) Multiaddr {
	if m == nil {
		return nil
	}

	b := m.Bytes()
	offset := 0
	for offset < len(b) {
		code, n, err := readVarintCode(b[offset:])
		if err != nil {
			break
		}
		if code == P_P2P {
			break
		}

		proto := ProtocolWithCode(code)
		if proto.Code == 0 {
			break
		}
		prefixLen, dataLen, err := sizeForAddr(proto, b[offset+n:])
		if err != nil {
			break
		}
		offset += n + prefixLen + dataLen
	}

	if offset == 0 {
		return nil
	}
	if offset == len(b) {
		return m
	}

	cpy := make([]byte, offset)
	copy(cpy, b[:offset])
	return &multiaddr{bytes: cpy}
}

// Component 表示多地址组件
type Component struct {
	protocol Protocol
	value    string
}

// Protocol 返回组件的协议
func (c Component) Protocol() Protocol {
	return c.protocol
}

// Value 返回组件的值
func (c Component) Value() string {
	return c.value
}

// SplitFirst 分离多地址的第一个组件和剩余部分
func SplitFirst(m Multiaddr) (Component, Multiaddr) {
	if m == nil {
		return Component{}, nil
	}

	b := m.Bytes()
	if len(b) == 0 {
		return Component{}, nil
	}

	proto, valueBytes, remaining, err := readComponentBytes(b)
	if err != nil {
		return Component{}, nil
	}

	var value string
	if proto.Transcoder != nil {
		value, err = proto.Transcoder.BytesToString(valueBytes)
		if err != nil {
			return Component{}, nil
		}
	}

	comp := Component{
		protocol: proto,
		value:    value,
	}

	var rest Multiaddr
	if len(remaining) > 0 {
		rest, _ = NewMultiaddrBytes(remaining)
	}

	return comp, rest
}

// ForEach 遍历多地址中的每个组件
// 如果回调函数返回 false，则停止遍历
func ForEach(m Multiaddr, fn func(Component) bool) {
	if m == nil {
		return
	}

	current := m
	for current != nil {
		comp, rest := SplitFirst(current)
		if comp.protocol.Code == 0 {
			break
		}

		if !fn(comp) {
			break
		}

		current = rest
	}
}
