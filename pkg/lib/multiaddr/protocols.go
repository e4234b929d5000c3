package multiaddr

import (
	"fmt"
	"strings"

	"github.com/dep2p/go-multiformats/pkg/lib/multicodec"
)

// Protocol 描述一个 multiaddr 协议
type Protocol struct {
	// Name 协议名称（如 "ip4", "tcp"）
	Name string

	// Code 协议在 multicodec 注册表中的码点
	Code multicodec.Code

	// VCode 预计算的 varint 编码
	VCode []byte

	// Size 协议数据大小（位）
	// 0 表示无数据
	// -1 表示变长（length-prefixed）
	Size int

	// Path 是否为路径协议（终端协议，消费剩余全部文本）
	Path bool

	// Transcoder 值的编解码器
	Transcoder Transcoder
}

// String 返回协议名称
func (p Protocol) String() string {
	return p.Name
}

// LengthPrefixedVarSize 表示变长数据（使用 varint 前缀）
const LengthPrefixedVarSize = -1

// 协议代码常量，直接取 multicodec 注册表的码点
const (
	P_IP4                = multicodec.Ip4
	P_TCP                = multicodec.Tcp
	P_UDP                = multicodec.Udp
	P_DCCP               = multicodec.Dccp
	P_IP6                = multicodec.Ip6
	P_IP6ZONE            = multicodec.Ip6zone
	P_DNS                = multicodec.Dns
	P_DNS4               = multicodec.Dns4
	P_DNS6               = multicodec.Dns6
	P_DNSADDR            = multicodec.Dnsaddr
	P_SCTP               = multicodec.Sctp
	P_UTP                = multicodec.Utp
	P_UDT                = multicodec.Udt
	P_UNIX               = multicodec.Unix
	P_P2P                = multicodec.P2p
	P_IPFS               = multicodec.P2p // 向后兼容别名
	P_HTTP               = multicodec.Http
	P_HTTPS              = multicodec.Https
	P_TLS                = multicodec.Tls
	P_QUIC               = multicodec.Quic
	P_WS                 = multicodec.Ws
	P_WSS                = multicodec.Wss
	P_ONION              = multicodec.Onion
	P_ONION3             = multicodec.Onion3
	P_GARLIC64           = multicodec.Garlic64
	P_GARLIC32           = multicodec.Garlic32
	P_P2P_CIRCUIT        = multicodec.P2pCircuit
	P_CIRCUIT            = multicodec.P2pCircuit // 别名
	P_P2P_WEBRTC_STAR    = multicodec.P2pWebrtcStar
	P_P2P_WEBRTC_DIRECT  = multicodec.P2pWebrtcDirect
	P_P2P_STARDUST       = multicodec.P2pStardust
	P_P2P_WEBSOCKET_STAR = multicodec.P2pWebsocketStar
)

var (
	protoIP4 = Protocol{
		Name:       "ip4",
		Code:       P_IP4,
		VCode:      codeToVarint(P_IP4),
		Size:       32,
		Transcoder: TranscoderIP4,
	}

	protoTCP = Protocol{
		Name:       "tcp",
		Code:       P_TCP,
		VCode:      codeToVarint(P_TCP),
		Size:       16,
		Transcoder: TranscoderPort,
	}

	protoUDP = Protocol{
		Name:       "udp",
		Code:       P_UDP,
		VCode:      codeToVarint(P_UDP),
		Size:       16,
		Transcoder: TranscoderPort,
	}

	protoDCCP = Protocol{
		Name:       "dccp",
		Code:       P_DCCP,
		VCode:      codeToVarint(P_DCCP),
		Size:       16,
		Transcoder: TranscoderPort,
	}

	protoIP6 = Protocol{
		Name:       "ip6",
		Code:       P_IP6,
		VCode:      codeToVarint(P_IP6),
		Size:       128,
		Transcoder: TranscoderIP6,
	}

	protoIP6ZONE = Protocol{
		Name:       "ip6zone",
		Code:       P_IP6ZONE,
		VCode:      codeToVarint(P_IP6ZONE),
		Size:       LengthPrefixedVarSize,
		Transcoder: TranscoderIP6Zone,
	}

	protoDNS = Protocol{
		Name:       "dns",
		Code:       P_DNS,
		VCode:      codeToVarint(P_DNS),
		Size:       LengthPrefixedVarSize,
		Transcoder: TranscoderDNS,
	}

	protoDNS4 = Protocol{
		Name:       "dns4",
		Code:       P_DNS4,
		VCode:      codeToVarint(P_DNS4),
		Size:       LengthPrefixedVarSize,
		Transcoder: TranscoderDNS,
	}

	protoDNS6 = Protocol{
		Name:       "dns6",
		Code:       P_DNS6,
		VCode:      codeToVarint(P_DNS6),
		Size:       LengthPrefixedVarSize,
		Transcoder: TranscoderDNS,
	}

	protoDNSADDR = Protocol{
		Name:       "dnsaddr",
		Code:       P_DNSADDR,
		VCode:      codeToVarint(P_DNSADDR),
		Size:       LengthPrefixedVarSize,
		Transcoder: TranscoderDNS,
	}

	protoSCTP = Protocol{
		Name:       "sctp",
		Code:       P_SCTP,
		VCode:      codeToVarint(P_SCTP),
		Size:       16,
		Transcoder: TranscoderPort,
	}

	protoUTP = Protocol{
		Name:  "utp",
		Code:  P_UTP,
		VCode: codeToVarint(P_UTP),
		Size:  0,
	}

	protoUDT = Protocol{
		Name:  "udt",
		Code:  P_UDT,
		VCode: codeToVarint(P_UDT),
		Size:  0,
	}

	protoUNIX = Protocol{
		Name:       "unix",
		Code:       P_UNIX,
		VCode:      codeToVarint(P_UNIX),
		Size:       LengthPrefixedVarSize,
		Path:       true,
		Transcoder: TranscoderUnix,
	}

	protoP2P = Protocol{
		Name:       "p2p",
		Code:       P_P2P,
		VCode:      codeToVarint(P_P2P),
		Size:       LengthPrefixedVarSize,
		Transcoder: TranscoderP2P,
	}

	protoHTTP = Protocol{
		Name:  "http",
		Code:  P_HTTP,
		VCode: codeToVarint(P_HTTP),
		Size:  0,
	}

	protoHTTPS = Protocol{
		Name:  "https",
		Code:  P_HTTPS,
		VCode: codeToVarint(P_HTTPS),
		Size:  0,
	}

	protoTLS = Protocol{
		Name:  "tls",
		Code:  P_TLS,
		VCode: codeToVarint(P_TLS),
		Size:  0,
	}

	protoQUIC = Protocol{
		Name:  "quic",
		Code:  P_QUIC,
		VCode: codeToVarint(P_QUIC),
		Size:  0,
	}

	protoWS = Protocol{
		Name:  "ws",
		Code:  P_WS,
		VCode: codeToVarint(P_WS),
		Size:  0,
	}

	protoWSS = Protocol{
		Name:  "wss",
		Code:  P_WSS,
		VCode: codeToVarint(P_WSS),
		Size:  0,
	}

	protoONION = Protocol{
		Name:       "onion",
		Code:       P_ONION,
		VCode:      codeToVarint(P_ONION),
		Size:       96,
		Transcoder: TranscoderOnion,
	}

	protoONION3 = Protocol{
		Name:       "onion3",
		Code:       P_ONION3,
		VCode:      codeToVarint(P_ONION3),
		Size:       296,
		Transcoder: TranscoderOnion3,
	}

	protoGARLIC64 = Protocol{
		Name:       "garlic64",
		Code:       P_GARLIC64,
		VCode:      codeToVarint(P_GARLIC64),
		Size:       LengthPrefixedVarSize,
		Transcoder: TranscoderGarlic64,
	}

	protoGARLIC32 = Protocol{
		Name:       "garlic32",
		Code:       P_GARLIC32,
		VCode:      codeToVarint(P_GARLIC32),
		Size:       LengthPrefixedVarSize,
		Transcoder: TranscoderGarlic32,
	}

	protoP2P_CIRCUIT = Protocol{
		Name:  "p2p-circuit",
		Code:  P_P2P_CIRCUIT,
		VCode: codeToVarint(P_P2P_CIRCUIT),
		Size:  0,
	}

	protoP2P_WEBRTC_STAR = Protocol{
		Name:  "p2p-webrtc-star",
		Code:  P_P2P_WEBRTC_STAR,
		VCode: codeToVarint(P_P2P_WEBRTC_STAR),
		Size:  0,
	}

	protoP2P_WEBRTC_DIRECT = Protocol{
		Name:  "p2p-webrtc-direct",
		Code:  P_P2P_WEBRTC_DIRECT,
		VCode: codeToVarint(P_P2P_WEBRTC_DIRECT),
		Size:  0,
	}

	protoP2P_STARDUST = Protocol{
		Name:  "p2p-stardust",
		Code:  P_P2P_STARDUST,
		VCode: codeToVarint(P_P2P_STARDUST),
		Size:  0,
	}

	protoP2P_WEBSOCKET_STAR = Protocol{
		Name:  "p2p-websocket-star",
		Code:  P_P2P_WEBSOCKET_STAR,
		VCode: codeToVarint(P_P2P_WEBSOCKET_STAR),
		Size:  0,
	}
)

// Protocols 数据驱动的协议表，与 multicodec 注册表中 multiaddr
// 标签的 30 行一一对应
var Protocols = []Protocol{
	protoIP4,
	protoTCP,
	protoDCCP,
	protoIP6,
	protoIP6ZONE,
	protoDNS,
	protoDNS4,
	protoDNS6,
	protoDNSADDR,
	protoSCTP,
	protoUDP,
	protoP2P_WEBRTC_STAR,
	protoP2P_WEBRTC_DIRECT,
	protoP2P_STARDUST,
	protoP2P_CIRCUIT,
	protoUDT,
	protoUTP,
	protoUNIX,
	protoP2P,
	protoHTTPS,
	protoONION,
	protoONION3,
	protoGARLIC64,
	protoGARLIC32,
	protoTLS,
	protoQUIC,
	protoWS,
	protoWSS,
	protoP2P_WEBSOCKET_STAR,
	protoHTTP,
}

// protocols 协议注册表（按码点索引）
var protocols = make(map[multicodec.Code]Protocol, len(Protocols))

// protocolsByName 协议注册表（按名称索引）
var protocolsByName = make(map[string]Protocol, len(Protocols)+1)

func init() {
	for _, p := range Protocols {
		// 协议表必须与 multicodec 注册表一致
		cp, err := multicodec.FromCode(p.Code)
		if err != nil {
			panic(fmt.Sprintf("protocol %s: %v", p.Name, err))
		}
		if cp.Name != p.Name || cp.Tag != multicodec.TagMultiaddr {
			panic(fmt.Sprintf("protocol %s does not match registry row %s", p.Name, cp))
		}
		if _, dup := protocols[p.Code]; dup {
			panic(fmt.Sprintf("protocol code %s registered twice", p.Code))
		}
		protocols[p.Code] = p
		protocolsByName[p.Name] = p
	}
	protocolsByName["ipfs"] = protoP2P // 别名
}

// ProtocolWithCode 根据协议码点获取协议
// 如果协议不存在，返回零值协议（Code = 0）
func ProtocolWithCode(code multicodec.Code) Protocol {
	if proto, ok := protocols[code]; ok {
		return proto
	}
	return Protocol{}
}

// ProtocolWithName 根据协议名称获取协议
// 如果协议不存在，返回零值协议（Code = 0）
func ProtocolWithName(name string) Protocol {
	if proto, ok := protocolsByName[name]; ok {
		return proto
	}
	return Protocol{}
}

// ProtocolsWithString 返回多地址字符串中的所有协议名称
func ProtocolsWithString(s string) ([]string, error) {
	ps := []string{}
	parts := strings.Split(s, "/")

	if len(parts) == 0 {
		return nil, nil
	}

	// 跳过第一个空字符串
	for i := 1; i < len(parts); i++ {
		proto := ProtocolWithName(parts[i])
		if proto.Code == 0 {
			return nil, ErrInvalidProtocol
		}
		ps = append(ps, proto.Name)

		if proto.Path {
			// 路径协议消费剩余全部片段
			break
		}
		if proto.Size != 0 {
			// 跳过取值片段
			i++
		}
	}

	return ps, nil
}
