package multiaddr

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"unicode/utf8"

	b32 "github.com/multiformats/go-base32"
	"github.com/mr-tron/base58"

	"github.com/dep2p/go-multiformats/pkg/lib/multibase"
	"github.com/dep2p/go-multiformats/pkg/lib/multicodec"
	"github.com/dep2p/go-multiformats/pkg/lib/multihash"
	"github.com/dep2p/go-multiformats/pkg/lib/varint"
)

// Transcoder 接口定义了协议数据的编解码方法
type Transcoder interface {
	// StringToBytes 将字符串值转换为字节
	StringToBytes(string) ([]byte, error)

	// BytesToString 将字节转换为字符串值
	BytesToString([]byte) (string, error)

	// ValidateBytes 验证字节数据是否有效
	ValidateBytes([]byte) error
}

// NewTranscoderFromFunctions 从函数创建 Transcoder
func NewTranscoderFromFunctions(
	s2b func(string) ([]byte, error),
	b2s func([]byte) (string, error),
	val func([]byte) error,
) Transcoder {
	return &transcoderWrapper{s2b, b2s, val}
}

type transcoderWrapper struct {
	stringToBytes func(string) ([]byte, error)
	bytesToString func([]byte) (string, error)
	validateBytes func([]byte) error
}

func (t *transcoderWrapper) StringToBytes(s string) ([]byte, error) {
	return t.stringToBytes(s)
}

func (t *transcoderWrapper) BytesToString(b []byte) (string, error) {
	return t.bytesToString(b)
}

func (t *transcoderWrapper) ValidateBytes(b []byte) error {
	if t.validateBytes == nil {
		return nil
	}
	return t.validateBytes(b)
}

// IP4 Transcoder
var TranscoderIP4 = NewTranscoderFromFunctions(ip4StringToBytes, ip4BytesToString, nil)

func ip4StringToBytes(s string) ([]byte, error) {
	ip := net.ParseIP(s).To4()
	if ip == nil {
		return nil, fmt.Errorf("failed to parse ip4 addr: %s", s)
	}
	return ip, nil
}

func ip4BytesToString(b []byte) (string, error) {
	if len(b) != 4 {
		return "", fmt.Errorf("invalid ip4 length: %d", len(b))
	}
	return net.IP(b).String(), nil
}

// IP6 Transcoder
var TranscoderIP6 = NewTranscoderFromFunctions(ip6StringToBytes, ip6BytesToString, nil)

func ip6StringToBytes(s string) ([]byte, error) {
	ip := net.ParseIP(s).To16()
	if ip == nil {
		return nil, fmt.Errorf("failed to parse ip6 addr: %s", s)
	}
	return ip, nil
}

func ip6BytesToString(b []byte) (string, error) {
	if len(b) != 16 {
		return "", fmt.Errorf("invalid ip6 length: %d", len(b))
	}
	ip := net.IP(b)
	// 处理 IPv4-mapped IPv6 地址
	if ip4 := ip.To4(); ip4 != nil {
		return "::ffff:" + ip4.String(), nil
	}
	return ip.String(), nil
}

// IP6Zone Transcoder
var TranscoderIP6Zone = NewTranscoderFromFunctions(ip6ZoneStringToBytes, ip6ZoneBytesToString, ip6ZoneValidateBytes)

func ip6ZoneStringToBytes(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, errors.New("empty ip6zone")
	}
	if strings.Contains(s, "/") {
		return nil, fmt.Errorf("IPv6 zone ID contains '/': %s", s)
	}
	return []byte(s), nil
}

func ip6ZoneBytesToString(b []byte) (string, error) {
	if len(b) == 0 {
		return "", errors.New("invalid length (should be > 0)")
	}
	return string(b), nil
}

func ip6ZoneValidateBytes(b []byte) error {
	if len(b) == 0 {
		return errors.New("invalid length (should be > 0)")
	}
	// 不支持 '/' 因为会破坏 multiaddr 解析
	if strings.Contains(string(b), "/") {
		return fmt.Errorf("IPv6 zone ID contains '/': %s", string(b))
	}
	return nil
}

// Port Transcoder (TCP/UDP/SCTP/DCCP)
var TranscoderPort = NewTranscoderFromFunctions(portStringToBytes, portBytesToString, nil)

func portStringToBytes(s string) ([]byte, error) {
	port, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("failed to parse port: %s", err)
	}
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(port))
	return b, nil
}

func portBytesToString(b []byte) (string, error) {
	if len(b) != 2 {
		return "", fmt.Errorf("invalid port length: %d", len(b))
	}
	port := binary.BigEndian.Uint16(b)
	return strconv.Itoa(int(port)), nil
}

// DNS Transcoder (DNS/DNS4/DNS6/DNSADDR)
var TranscoderDNS = NewTranscoderFromFunctions(dnsStringToBytes, dnsBytesToString, dnsValidateBytes)

func dnsStringToBytes(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, errors.New("empty DNS name")
	}
	// 简单的 DNS 名称验证
	if strings.Contains(s, "/") {
		return nil, fmt.Errorf("DNS name contains '/': %s", s)
	}
	return []byte(s), nil
}

func dnsBytesToString(b []byte) (string, error) {
	if err := dnsValidateBytes(b); err != nil {
		return "", err
	}
	return string(b), nil
}

func dnsValidateBytes(b []byte) error {
	if len(b) == 0 {
		return errors.New("invalid length (should be > 0)")
	}
	// DNS 名称必须是合法 UTF-8
	if !utf8.Valid(b) {
		return fmt.Errorf("DNS name is not valid UTF-8: %q", b)
	}
	// 验证不包含 '/'
	if strings.Contains(string(b), "/") {
		return fmt.Errorf("DNS name contains '/': %s", string(b))
	}
	return nil
}

// P2P Transcoder (PeerID)
var TranscoderP2P = NewTranscoderFromFunctions(p2pStringToBytes, p2pBytesToString, p2pValidateBytes)

func p2pStringToBytes(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, errors.New("empty peer ID")
	}

	// 传统形式：base58btc 编码的裸 multihash（Qm... 或 1...）
	// 其他前缀按 multibase 编码的 CIDv1（libp2p-key）解析
	var raw []byte
	if s[0] == 'Q' || s[0] == '1' {
		b, err := base58.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse p2p addr %s: %w", s, err)
		}
		raw = b
	} else {
		_, b, err := multibase.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse p2p addr %s: %w", s, err)
		}
		version, n, err := varint.Decode(b)
		if err != nil || version != uint64(multicodec.CidV1) {
			return nil, fmt.Errorf("failed to parse p2p addr %s: not a CIDv1", s)
		}
		codec, n2, err := varint.Decode(b[n:])
		if err != nil || codec != uint64(multicodec.Libp2pKey) {
			return nil, fmt.Errorf("failed to parse p2p addr %s: not a libp2p-key CID", s)
		}
		raw = b[n+n2:]
	}

	if err := p2pValidateBytes(raw); err != nil {
		return nil, fmt.Errorf("failed to parse p2p addr %s: %w", s, err)
	}
	return raw, nil
}

func p2pBytesToString(b []byte) (string, error) {
	if err := p2pValidateBytes(b); err != nil {
		return "", err
	}
	return base58.Encode(b), nil
}

func p2pValidateBytes(b []byte) error {
	_, rest, err := multihash.Decode(b)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("peer ID contains %d trailing bytes", len(rest))
	}
	return nil
}

// Unix Transcoder
var TranscoderUnix = NewTranscoderFromFunctions(unixStringToBytes, unixBytesToString, unixValidateBytes)

func unixStringToBytes(s string) ([]byte, error) {
	if len(s) == 0 || s == "/" {
		return nil, errors.New("empty unix path")
	}
	// 路径协议的值带前导斜杠
	if s[0] != '/' {
		return nil, fmt.Errorf("unix path is not absolute: %s", s)
	}
	return []byte(s), nil
}

func unixBytesToString(b []byte) (string, error) {
	if err := unixValidateBytes(b); err != nil {
		return "", err
	}
	return string(b), nil
}

func unixValidateBytes(b []byte) error {
	if len(b) == 0 {
		return errors.New("invalid unix path length")
	}
	// 路径必须是合法 UTF-8
	if !utf8.Valid(b) {
		return fmt.Errorf("unix path is not valid UTF-8: %q", b)
	}
	return nil
}

// Onion Transcoder
var TranscoderOnion = NewTranscoderFromFunctions(onionStringToBytes, onionBytesToString, nil)

func onionStringToBytes(s string) ([]byte, error) {
	addr := strings.Split(s, ":")
	if len(addr) != 2 {
		return nil, fmt.Errorf("invalid onion address: %s", s)
	}

	// Onion v2 地址是 16 字符 base32 编码
	host := strings.TrimSuffix(addr[0], ".onion")
	if len(host) != 16 {
		return nil, fmt.Errorf("invalid onion address length: %s", addr[0])
	}
	onionHost, err := base32.StdEncoding.DecodeString(strings.ToUpper(host))
	if err != nil {
		return nil, fmt.Errorf("failed to decode onion address: %w", err)
	}
	if len(onionHost) != 10 {
		return nil, fmt.Errorf("invalid onion address length: %d", len(onionHost))
	}

	port, err := onionPort(addr[1])
	if err != nil {
		return nil, err
	}

	// 组装：10字节地址 + 2字节端口
	result := make([]byte, 12)
	copy(result[:10], onionHost)
	binary.BigEndian.PutUint16(result[10:], port)

	return result, nil
}

func onionBytesToString(b []byte) (string, error) {
	if len(b) != 12 {
		return "", fmt.Errorf("invalid onion length: %d", len(b))
	}

	addr := base32.StdEncoding.EncodeToString(b[:10])
	port := binary.BigEndian.Uint16(b[10:])

	return fmt.Sprintf("%s:%d", strings.ToLower(addr), port), nil
}

// Onion3 Transcoder
var TranscoderOnion3 = NewTranscoderFromFunctions(onion3StringToBytes, onion3BytesToString, nil)

func onion3StringToBytes(s string) ([]byte, error) {
	addr := strings.Split(s, ":")
	if len(addr) != 2 {
		return nil, fmt.Errorf("invalid onion3 address: %s", s)
	}

	// Onion v3 地址是 56 字符 base32 编码（去掉 .onion 后缀）
	host := strings.TrimSuffix(addr[0], ".onion")
	if len(host) != 56 {
		return nil, fmt.Errorf("invalid onion3 address length: %s", addr[0])
	}
	hostBytes, err := base32.StdEncoding.DecodeString(strings.ToUpper(host))
	if err != nil {
		return nil, fmt.Errorf("failed to decode onion3 address: %w", err)
	}
	if len(hostBytes) != 35 {
		return nil, fmt.Errorf("invalid onion3 address length: %d", len(hostBytes))
	}

	port, err := onionPort(addr[1])
	if err != nil {
		return nil, err
	}

	// 组装：35字节地址 + 2字节端口
	result := make([]byte, 37)
	copy(result[:35], hostBytes)
	binary.BigEndian.PutUint16(result[35:], port)

	return result, nil
}

func onion3BytesToString(b []byte) (string, error) {
	if len(b) != 37 {
		return "", fmt.Errorf("invalid onion3 length: %d", len(b))
	}

	addr := base32.StdEncoding.EncodeToString(b[:35])
	port := binary.BigEndian.Uint16(b[35:])

	return fmt.Sprintf("%s:%d", strings.ToLower(addr), port), nil
}

// onionPort 解析 onion 端口，端口 0 不可用
func onionPort(s string) (uint16, error) {
	port, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("failed to parse onion port: %w", err)
	}
	if port == 0 {
		return 0, errors.New("onion port must be > 0")
	}
	return uint16(port), nil
}

// garlicBase64 I2P 使用的 base64 变体字母表
var garlicBase64 = base64.NewEncoding("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-~")

// Garlic64 Transcoder
var TranscoderGarlic64 = NewTranscoderFromFunctions(garlic64StringToBytes, garlic64BytesToString, garlic64ValidateBytes)

func garlic64StringToBytes(s string) ([]byte, error) {
	// I2P base64 地址长度在 516 到 616 之间，取决于证书类型
	if len(s) < 516 || len(s) > 616 {
		return nil, fmt.Errorf("invalid garlic64 address length: %d", len(s))
	}
	b, err := garlicBase64.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode garlic64: %w", err)
	}
	return b, nil
}

func garlic64BytesToString(b []byte) (string, error) {
	if err := garlic64ValidateBytes(b); err != nil {
		return "", err
	}
	return garlicBase64.EncodeToString(b), nil
}

func garlic64ValidateBytes(b []byte) error {
	// I2P destination 至少 386 字节
	if len(b) < 386 {
		return fmt.Errorf("invalid garlic64 length: %d", len(b))
	}
	return nil
}

// garlicBase32 I2P 短地址使用的小写 base32，解码时大小写不敏感
var garlicBase32 = b32.NewEncodingCI("abcdefghijklmnopqrstuvwxyz234567").
	WithPadding(b32.NoPadding)

// Garlic32 Transcoder
var TranscoderGarlic32 = NewTranscoderFromFunctions(garlic32StringToBytes, garlic32BytesToString, garlic32ValidateBytes)

func garlic32StringToBytes(s string) ([]byte, error) {
	host := strings.TrimSuffix(s, ".b32.i2p")

	// 普通地址恒为 52 字符，Encrypted Leaseset v2 地址至少 55 字符
	if len(host) < 55 && len(host) != 52 {
		return nil, fmt.Errorf("invalid garlic32 address length: %d", len(host))
	}
	b, err := garlicBase32.DecodeString(host)
	if err != nil {
		return nil, fmt.Errorf("failed to decode garlic32: %w", err)
	}
	if err := garlic32ValidateBytes(b); err != nil {
		return nil, err
	}
	return b, nil
}

func garlic32BytesToString(b []byte) (string, error) {
	if err := garlic32ValidateBytes(b); err != nil {
		return "", err
	}
	return garlicBase32.EncodeToString(b), nil
}

func garlic32ValidateBytes(b []byte) error {
	// 普通地址恒为 32 字节，Encrypted Leaseset v2 至少 35 字节
	if len(b) < 35 && len(b) != 32 {
		return fmt.Errorf("invalid garlic32 length: %d", len(b))
	}
	return nil
}
