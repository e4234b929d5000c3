package multibase

import (
	"bytes"
	"errors"
	"testing"
)

// 规范测试夹具中 "yes mani !" 的全表编码结果
var yesManiVectors = []struct {
	name string
	enc  Encoding
	text string
}{
	{"identity", Identity, "\x00yes mani !"},
	{"base2", Base2, "001111001011001010111001100100000011011010110000101101110011010010010000000100001"},
	{"base8", Base8, "7362625631006654133464440102"},
	{"base10", Base10, "9573277761329450583662625"},
	{"base16", Base16Lower, "f796573206d616e692021"},
	{"base16upper", Base16Upper, "F796573206D616E692021"},
	{"base32hex", Base32HexLower, "vf5in683dc5n6i811"},
	{"base32hexupper", Base32HexUpper, "VF5IN683DC5N6I811"},
	{"base32hexpad", Base32HexPadLower, "tf5in683dc5n6i811"},
	{"base32hexpadupper", Base32HexPadUpper, "TF5IN683DC5N6I811"},
	{"base32", Base32Lower, "bpfsxgidnmfxgsibb"},
	{"base32upper", Base32Upper, "BPFSXGIDNMFXGSIBB"},
	{"base32pad", Base32PadLower, "cpfsxgidnmfxgsibb"},
	{"base32padupper", Base32PadUpper, "CPFSXGIDNMFXGSIBB"},
	{"base32z", Base32Z, "hxf1zgedpcfzg1ebb"},
	{"base36", Base36Lower, "k2lcpzo5yikidynfl"},
	{"base36upper", Base36Upper, "K2LCPZO5YIKIDYNFL"},
	{"base58btc", Base58Btc, "z7paNL19xttacUY"},
	{"base58flickr", Base58Flickr, "Z7Pznk19XTTzBtx"},
	{"base64", Base64, "meWVzIG1hbmkgIQ"},
	{"base64pad", Base64Pad, "MeWVzIG1hbmkgIQ=="},
	{"base64url", Base64Url, "ueWVzIG1hbmkgIQ"},
	{"base64urlpad", Base64UrlPad, "UeWVzIG1hbmkgIQ=="},
}

// TestTableShape 测试注册表行数与前缀唯一性
func TestTableShape(t *testing.T) {
	if len(rows) != 23 {
		t.Fatalf("len(rows) = %d, want 23", len(rows))
	}

	prefixes := make(map[Encoding]string)
	names := make(map[string]Encoding)
	for _, r := range rows {
		if prev, dup := prefixes[r.encoding]; dup {
			t.Errorf("prefix %q claimed by %q and %q", byte(r.encoding), prev, r.name)
		}
		prefixes[r.encoding] = r.name
		if _, dup := names[r.name]; dup {
			t.Errorf("name %q registered twice", r.name)
		}
		names[r.name] = r.encoding
	}
}

// TestEncodeVectors 测试全表编码与规范夹具一致
func TestEncodeVectors(t *testing.T) {
	for _, tt := range yesManiVectors {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.enc, []byte("yes mani !"))
			if err != nil {
				t.Fatalf("Encode(%s) error = %v", tt.name, err)
			}
			if got != tt.text {
				t.Errorf("Encode(%s) = %q, want %q", tt.name, got, tt.text)
			}
		})
	}
}

// TestDecodeVectors 测试全表解码与规范夹具一致
func TestDecodeVectors(t *testing.T) {
	for _, tt := range yesManiVectors {
		t.Run(tt.name, func(t *testing.T) {
			enc, data, err := Decode(tt.text)
			if err != nil {
				t.Fatalf("Decode(%s) error = %v", tt.name, err)
			}
			if enc != tt.enc {
				t.Errorf("Decode(%s) encoding = %q, want %q", tt.name, enc.Name(), tt.enc.Name())
			}
			if string(data) != "yes mani !" {
				t.Errorf("Decode(%s) = %q, want %q", tt.name, data, "yes mani !")
			}
		})
	}
}

// TestRoundTripAllRows 测试全表 "hello world" 编解码往返
func TestRoundTripAllRows(t *testing.T) {
	input := []byte("hello world")
	for _, r := range rows {
		t.Run(r.name, func(t *testing.T) {
			text, err := Encode(r.encoding, input)
			if err != nil {
				t.Fatalf("Encode error = %v", err)
			}
			enc, data, err := Decode(text)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", text, err)
			}
			if enc != r.encoding {
				t.Errorf("encoding = %q, want %q", enc.Name(), r.name)
			}
			if !bytes.Equal(data, input) {
				t.Errorf("data = %q, want %q", data, input)
			}
		})
	}
}

// TestLeadingZeroVectors 测试前导零字节在各进制下的保留
func TestLeadingZeroVectors(t *testing.T) {
	input := []byte("\x00yes mani !")
	tests := []struct {
		name string
		enc  Encoding
		text string
	}{
		{"identity", Identity, "\x00\x00yes mani !"},
		{"base2", Base2, "0" + "00000000" + "01111001011001010111001100100000011011010110000101101110011010010010000000100001"},
		{"base8", Base8, "7000745453462015530267151100204"},
		{"base10", Base10, "90573277761329450583662625"},
		{"base16", Base16Lower, "f00796573206d616e692021"},
		{"base32", Base32Lower, "bab4wk4zanvqw42jaee"},
		{"base58btc", Base58Btc, "z17paNL19xttacUY"},
		{"base64", Base64, "mAHllcyBtYW5pICE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.enc, input)
			if err != nil {
				t.Fatalf("Encode error = %v", err)
			}
			if got != tt.text {
				t.Errorf("Encode = %q, want %q", got, tt.text)
			}
			_, data, err := Decode(tt.text)
			if err != nil {
				t.Fatalf("Decode error = %v", err)
			}
			if !bytes.Equal(data, input) {
				t.Errorf("Decode = %x, want %x", data, input)
			}
		})
	}
}

// TestCaseInsensitiveDecode 测试大小写不敏感字母表的交叉解码
func TestCaseInsensitiveDecode(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"base32 lower prefix upper body", "bPFSXGIDNMFXGSIBB"},
		{"base32 upper prefix lower body", "Bpfsxgidnmfxgsibb"},
		{"base16 lower prefix upper body", "f796573206D616E692021"},
		{"base16 upper prefix lower body", "F796573206d616e692021"},
		{"base36 upper prefix lower body", "K2lcpzo5yikidynfl"},
		{"base32hex lower prefix upper body", "vF5IN683DC5N6I811"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, data, err := Decode(tt.text)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tt.text, err)
			}
			if string(data) != "yes mani !" {
				t.Errorf("Decode(%q) = %q, want %q", tt.text, data, "yes mani !")
			}
		})
	}
}

// TestDecodeErrors 测试非法输入的错误分类
func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"Empty text", "", ErrBadBody},
		{"Unknown prefix q", "qabc", ErrUnknownPrefix},
		{"Unknown prefix 8", "8101", ErrUnknownPrefix},
		{"Bad hex body", "f0g", ErrBadBody},
		{"Bad bit count", "00101", ErrBadBody},
		{"Bad octal digit", "78", ErrBadBody},
		{"Bad decimal digit", "9a", ErrBadBody},
		{"Bad base58 alphabet", "z0OIl", ErrBadBody},
		{"Bad base64 body", "m!!!", ErrBadBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

// TestEncodeUnknownEncoding 测试未注册编码的拒绝
func TestEncodeUnknownEncoding(t *testing.T) {
	_, err := Encode(Encoding('q'), []byte("x"))
	if !errors.Is(err, ErrUnknownPrefix) {
		t.Errorf("Encode(unknown) error = %v, want ErrUnknownPrefix", err)
	}
}

// TestEncodingLookups 测试名称与前缀查找
func TestEncodingLookups(t *testing.T) {
	enc, err := EncodingFromName("base58btc")
	if err != nil {
		t.Fatalf("EncodingFromName error = %v", err)
	}
	if enc != Base58Btc {
		t.Errorf("EncodingFromName = %q, want base58btc", enc.Name())
	}

	if _, err := EncodingFromName("base1024"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("EncodingFromName(base1024) error = %v, want ErrUnknownName", err)
	}

	enc, err = EncodingFromPrefix('z')
	if err != nil {
		t.Fatalf("EncodingFromPrefix error = %v", err)
	}
	if enc != Base58Btc {
		t.Errorf("EncodingFromPrefix('z') = %q, want base58btc", enc.Name())
	}

	if _, err := EncodingFromPrefix('q'); !errors.Is(err, ErrUnknownPrefix) {
		t.Errorf("EncodingFromPrefix('q') error = %v, want ErrUnknownPrefix", err)
	}
}

// TestEncodingString 测试编码的字符串表示
func TestEncodingString(t *testing.T) {
	if got := Base32Lower.String(); got != "base32" {
		t.Errorf("Base32Lower.String() = %q, want base32", got)
	}
	if got := Encoding('q').String(); got != "0x71" {
		t.Errorf("Encoding('q').String() = %q, want 0x71", got)
	}
	if Encoding('q').Valid() {
		t.Error("Encoding('q').Valid() = true")
	}
	if got := Encoding('q').Name(); got != "" {
		t.Errorf("Encoding('q').Name() = %q, want empty", got)
	}
}

// TestDecodeBytes 测试字节形式输入的 UTF-8 校验
func TestDecodeBytes(t *testing.T) {
	enc, data, err := DecodeBytes([]byte("f796573206d616e692021"))
	if err != nil {
		t.Fatalf("DecodeBytes error = %v", err)
	}
	if enc != Base16Lower || string(data) != "yes mani !" {
		t.Errorf("DecodeBytes = (%q, %q)", enc.Name(), data)
	}

	if _, _, err := DecodeBytes([]byte{0xff, 0xfe}); !errors.Is(err, ErrBadBody) {
		t.Errorf("DecodeBytes(invalid UTF-8) error = %v, want ErrBadBody", err)
	}
}

// TestIdentityBinary 测试 identity 编码携带任意字节
func TestIdentityBinary(t *testing.T) {
	raw := []byte{0x01, 0x55, 0x12, 0x20}
	text, err := Encode(Identity, raw)
	if err != nil {
		t.Fatalf("Encode error = %v", err)
	}
	if text[0] != 0x00 {
		t.Fatalf("identity prefix = 0x%x, want 0x00", text[0])
	}
	enc, data, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if enc != Identity || !bytes.Equal(data, raw) {
		t.Errorf("Decode = (%q, %x), want (identity, %x)", enc.Name(), data, raw)
	}
}

// BenchmarkEncodeBase32 基准测试 base32 编码
func BenchmarkEncodeBase32(b *testing.B) {
	data := bytes.Repeat([]byte{0xa5}, 36)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Encode(Base32Lower, data)
	}
}

// BenchmarkDecodeBase58 基准测试 base58 解码
func BenchmarkDecodeBase58(b *testing.B) {
	text, _ := Encode(Base58Btc, bytes.Repeat([]byte{0xa5}, 36))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = Decode(text)
	}
}
