package multibase

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	base36 "github.com/multiformats/go-base36"
	"github.com/mr-tron/base58"
)

// 编解码错误
var (
	ErrUnknownPrefix = errors.New("unknown multibase prefix")
	ErrUnknownName   = errors.New("unknown multibase name")
	ErrBadBody       = errors.New("invalid multibase body")
)

// Encoding 标识一种 base 编码，值为其单字符前缀
type Encoding byte

// 编码常量（值为前缀字符），与规范表的 23 行一一对应
const (
	Identity          Encoding = 0x00
	Base2             Encoding = '0'
	Base8             Encoding = '7'
	Base10            Encoding = '9'
	Base16Lower       Encoding = 'f'
	Base16Upper       Encoding = 'F'
	Base32HexLower    Encoding = 'v'
	Base32HexUpper    Encoding = 'V'
	Base32HexPadLower Encoding = 't'
	Base32HexPadUpper Encoding = 'T'
	Base32Lower       Encoding = 'b'
	Base32Upper       Encoding = 'B'
	Base32PadLower    Encoding = 'c'
	Base32PadUpper    Encoding = 'C'
	Base32Z           Encoding = 'h'
	Base36Lower       Encoding = 'k'
	Base36Upper       Encoding = 'K'
	Base58Btc         Encoding = 'z'
	Base58Flickr      Encoding = 'Z'
	Base64            Encoding = 'm'
	Base64Pad         Encoding = 'M'
	Base64Url         Encoding = 'u'
	Base64UrlPad      Encoding = 'U'
)

// row 注册表的一行：前缀、名称与正文编解码器
type row struct {
	encoding Encoding
	name     string
	encode   func([]byte) string
	decode   func(string) ([]byte, error)
}

// rows 注册表，顺序与 multibase.csv 一致
var rows = []row{
	{Identity, "identity", identityEncode, identityDecode},
	{Base2, "base2", base2Encode, base2Decode},
	{Base8, "base8", base8Encode, base8Decode},
	{Base10, "base10", base10Encode, base10Decode},
	{Base16Lower, "base16", hex.EncodeToString, hex.DecodeString},
	{Base16Upper, "base16upper", base16UpperEncode, hex.DecodeString},
	{Base32HexLower, "base32hex", base32HexLower.EncodeToString, base32HexLower.DecodeString},
	{Base32HexUpper, "base32hexupper", base32HexUpper.EncodeToString, base32HexUpper.DecodeString},
	{Base32HexPadLower, "base32hexpad", base32HexLowerPad.EncodeToString, base32HexLowerPad.DecodeString},
	{Base32HexPadUpper, "base32hexpadupper", base32HexUpperPad.EncodeToString, base32HexUpperPad.DecodeString},
	{Base32Lower, "base32", base32StdLower.EncodeToString, base32StdLower.DecodeString},
	{Base32Upper, "base32upper", base32StdUpper.EncodeToString, base32StdUpper.DecodeString},
	{Base32PadLower, "base32pad", base32StdLowerPad.EncodeToString, base32StdLowerPad.DecodeString},
	{Base32PadUpper, "base32padupper", base32StdUpperPad.EncodeToString, base32StdUpperPad.DecodeString},
	{Base32Z, "base32z", base32zEnc.EncodeToString, base32zEnc.DecodeString},
	{Base36Lower, "base36", base36.EncodeToStringLc, base36.DecodeString},
	{Base36Upper, "base36upper", base36.EncodeToStringUc, base36.DecodeString},
	{Base58Btc, "base58btc", base58.Encode, base58.Decode},
	{Base58Flickr, "base58flickr", base58FlickrEncode, base58FlickrDecode},
	{Base64, "base64", base64.RawStdEncoding.EncodeToString, base64.RawStdEncoding.DecodeString},
	{Base64Pad, "base64pad", base64.StdEncoding.EncodeToString, base64.StdEncoding.DecodeString},
	{Base64Url, "base64url", base64.RawURLEncoding.EncodeToString, base64.RawURLEncoding.DecodeString},
	{Base64UrlPad, "base64urlpad", base64.URLEncoding.EncodeToString, base64.URLEncoding.DecodeString},
}

var (
	byPrefix map[Encoding]*row
	byName   map[string]*row
)

func init() {
	byPrefix = make(map[Encoding]*row, len(rows))
	byName = make(map[string]*row, len(rows))
	for i := range rows {
		byPrefix[rows[i].encoding] = &rows[i]
		byName[rows[i].name] = &rows[i]
	}
}

// Name 返回编码在规范表中的名称；未注册返回空字符串
func (e Encoding) Name() string {
	if r, ok := byPrefix[e]; ok {
		return r.name
	}
	return ""
}

// Valid 判断前缀是否在规范表中
func (e Encoding) Valid() bool {
	_, ok := byPrefix[e]
	return ok
}

// String 返回编码名称；未注册的前缀返回十六进制形式
func (e Encoding) String() string {
	if r, ok := byPrefix[e]; ok {
		return r.name
	}
	return fmt.Sprintf("0x%x", byte(e))
}

// EncodingFromName 按规范名称查找编码
func EncodingFromName(name string) (Encoding, error) {
	r, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return r.encoding, nil
}

// EncodingFromPrefix 按前缀字符查找编码
func EncodingFromPrefix(prefix byte) (Encoding, error) {
	if _, ok := byPrefix[Encoding(prefix)]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPrefix, prefix)
	}
	return Encoding(prefix), nil
}

// Encode 编码 data，返回前缀字符加 base 正文
func Encode(enc Encoding, data []byte) (string, error) {
	r, ok := byPrefix[enc]
	if !ok {
		return "", fmt.Errorf("%w: 0x%x", ErrUnknownPrefix, byte(enc))
	}
	body := r.encode(data)
	var sb strings.Builder
	sb.Grow(1 + len(body))
	sb.WriteByte(byte(enc))
	sb.WriteString(body)
	return sb.String(), nil
}

// Decode 按前缀自动选择字母表解码
//
// 返回检测到的编码与原始数据。未知前缀返回 ErrUnknownPrefix，
// 正文不符合该字母表返回 ErrBadBody。
func Decode(text string) (Encoding, []byte, error) {
	if len(text) == 0 {
		return 0, nil, fmt.Errorf("%w: empty text", ErrBadBody)
	}
	enc := Encoding(text[0])
	r, ok := byPrefix[enc]
	if !ok {
		return 0, nil, fmt.Errorf("%w: %q", ErrUnknownPrefix, text[0])
	}
	data, err := r.decode(text[1:])
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s: %v", ErrBadBody, r.name, err)
	}
	return enc, data, nil
}

// DecodeBytes 解码以字节流携带的 multibase 文本
//
// 与 Decode 相同，但先校验输入是合法 UTF-8。
func DecodeBytes(buf []byte) (Encoding, []byte, error) {
	if !utf8.Valid(buf) {
		return 0, nil, fmt.Errorf("%w: not valid UTF-8", ErrBadBody)
	}
	return Decode(string(buf))
}
