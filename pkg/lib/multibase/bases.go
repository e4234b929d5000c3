package multibase

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	base32 "github.com/multiformats/go-base32"
	"github.com/mr-tron/base58"
)

// RFC4648 与 z-base-32 字母表
// 大小写不敏感的变体用 NewEncodingCI 构造，解码时接受两种大小写；
// base32z 按规范是大小写敏感的
var (
	base32StdLower = base32.NewEncodingCI("abcdefghijklmnopqrstuvwxyz234567").
			WithPadding(base32.NoPadding)
	base32StdLowerPad = base32.NewEncodingCI("abcdefghijklmnopqrstuvwxyz234567").
				WithPadding(base32.StdPadding)
	base32StdUpper = base32.NewEncodingCI("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567").
			WithPadding(base32.NoPadding)
	base32StdUpperPad = base32.NewEncodingCI("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567").
				WithPadding(base32.StdPadding)
	base32HexLower = base32.NewEncodingCI("0123456789abcdefghijklmnopqrstuv").
			WithPadding(base32.NoPadding)
	base32HexLowerPad = base32.NewEncodingCI("0123456789abcdefghijklmnopqrstuv").
				WithPadding(base32.StdPadding)
	base32HexUpper = base32.NewEncodingCI("0123456789ABCDEFGHIJKLMNOPQRSTUV").
			WithPadding(base32.NoPadding)
	base32HexUpperPad = base32.NewEncodingCI("0123456789ABCDEFGHIJKLMNOPQRSTUV").
				WithPadding(base32.StdPadding)
	base32zEnc = base32.NewEncoding("ybndrfg8ejkmcpqxot1uwisza345h769").
			WithPadding(base32.NoPadding)
)

// identityEncode 原样返回
func identityEncode(data []byte) string {
	return string(data)
}

func identityDecode(s string) ([]byte, error) {
	return []byte(s), nil
}

// base2Encode 每字节展开为 8 个 '0'/'1' 字符，高位在前
func base2Encode(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			sb.WriteByte('0' + (b >> uint(i) & 1))
		}
	}
	return sb.String()
}

func base2Decode(s string) ([]byte, error) {
	if len(s)%8 != 0 {
		return nil, fmt.Errorf("length %d is not a multiple of 8", len(s))
	}
	out := make([]byte, len(s)/8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			out[i/8] |= 1 << uint(7-i%8)
		default:
			return nil, fmt.Errorf("invalid bit character %q", s[i])
		}
	}
	return out, nil
}

// base8Encode 按高位在前切成 3 位一组，末组右侧补零位
func base8Encode(data []byte) string {
	out := make([]byte, 0, (len(data)*8+2)/3)
	var acc, bits uint
	for _, b := range data {
		acc = acc<<8 | uint(b)
		bits += 8
		for bits >= 3 {
			bits -= 3
			out = append(out, '0'+byte(acc>>bits&0x7))
		}
		acc &= (1 << bits) - 1
	}
	if bits > 0 {
		out = append(out, '0'+byte(acc<<(3-bits)&0x7))
	}
	return string(out)
}

func base8Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)*3/8)
	var acc, bits uint
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '7' {
			return nil, fmt.Errorf("invalid octal character %q", c)
		}
		acc = acc<<3 | uint(c-'0')
		bits += 3
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
			acc &= (1 << bits) - 1
		}
	}
	// 末组的补零位必须为零，保证编码唯一
	if acc != 0 {
		return nil, fmt.Errorf("non-zero trailing bits")
	}
	return out, nil
}

// base10Encode 前导零字节逐个映射为 '0'，其余按大整数十进制表示
func base10Encode(data []byte) string {
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}
	s := strings.Repeat("0", zeros)
	if zeros < len(data) {
		s += new(big.Int).SetBytes(data[zeros:]).Text(10)
	}
	return s
}

func base10Decode(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("invalid decimal character %q", s[i])
		}
	}
	zeros := 0
	for zeros < len(s) && s[zeros] == '0' {
		zeros++
	}
	out := make([]byte, zeros)
	if zeros == len(s) {
		return out, nil
	}
	n, _ := new(big.Int).SetString(s[zeros:], 10)
	return append(out, n.Bytes()...), nil
}

func base16UpperEncode(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

func base58FlickrEncode(data []byte) string {
	return base58.FastBase58EncodingAlphabet(data, base58.FlickrAlphabet)
}

func base58FlickrDecode(s string) ([]byte, error) {
	return base58.FastBase58DecodingAlphabet(s, base58.FlickrAlphabet)
}
