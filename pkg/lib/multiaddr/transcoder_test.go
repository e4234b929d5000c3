package multiaddr

import (
	"bytes"
	"strings"
	"testing"
)

func TestTranscoderIP4(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid IPv4", "127.0.0.1", false},
		{"Invalid IPv4", "999.999.999.999", true},
		{"Not IPv4", "::1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := TranscoderIP4.StringToBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("StringToBytes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				s, err := TranscoderIP4.BytesToString(b)
				if err != nil {
					t.Errorf("BytesToString() error = %v", err)
				}
				if s != tt.input {
					t.Errorf("Round trip: got %v, want %v", s, tt.input)
				}
			}
		})
	}
}

func TestTranscoderIP6(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid IPv6", "::1", false},
		{"Valid IPv6 full", "2001:db8::1", false},
		{"Invalid IPv6", "not-an-ip", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := TranscoderIP6.StringToBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("StringToBytes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && b != nil {
				_, err := TranscoderIP6.BytesToString(b)
				if err != nil {
					t.Errorf("BytesToString() error = %v", err)
				}
			}
		})
	}
}

func TestTranscoderPort(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid port", "4001", false},
		{"Zero port", "0", false},
		{"Max port", "65535", false},
		{"Over max", "65536", true},
		{"Invalid", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := TranscoderPort.StringToBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("StringToBytes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				s, err := TranscoderPort.BytesToString(b)
				if err != nil {
					t.Errorf("BytesToString() error = %v", err)
				}
				if s != tt.input {
					t.Errorf("Round trip: got %v, want %v", s, tt.input)
				}
			}
		})
	}
}

func TestTranscoderDNS(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid DNS", "example.com", false},
		{"Valid subdomain", "sub.example.com", false},
		{"Empty", "", true},
		{"With slash", "example.com/path", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := TranscoderDNS.StringToBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("StringToBytes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				s, err := TranscoderDNS.BytesToString(b)
				if err != nil {
					t.Errorf("BytesToString() error = %v", err)
				}
				if s != tt.input {
					t.Errorf("Round trip: got %v, want %v", s, tt.input)
				}

				// Test validate
				if err := TranscoderDNS.ValidateBytes(b); err != nil {
					t.Errorf("ValidateBytes() error = %v", err)
				}
			}
		})
	}
}

func TestTranscoderP2P(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid PeerID", "QmYyQSo1c1Ym7orWxLYvCrM2EmxFTANf8wXmmE7DWjhx5N", false},
		{"Truncated ID", "12D3KooW", true},
		{"Empty", "", true},
		{"Not a CID", "zzzz", true},
		{"Bad base58", "Qm0OIl", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := TranscoderP2P.StringToBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("StringToBytes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				s, err := TranscoderP2P.BytesToString(b)
				if err != nil {
					t.Errorf("BytesToString() error = %v", err)
				}
				if s != tt.input {
					t.Errorf("Round trip: got %v, want %v", s, tt.input)
				}

				// Test validate
				if err := TranscoderP2P.ValidateBytes(b); err != nil {
					t.Errorf("ValidateBytes() error = %v", err)
				}
			}
		})
	}
}

// TestTranscoderP2P_CID 测试 CIDv1 libp2p-key 文本形式的 PeerID
func TestTranscoderP2P_CID(t *testing.T) {
	// CIDv1(libp2p-key, identity multihash of [0x08 0x01]) 的 base32 形式
	b, err := TranscoderP2P.StringToBytes("bafzaaaqiae")
	if err != nil {
		t.Fatalf("StringToBytes() error = %v", err)
	}

	// 存储的是裸 multihash 字节
	want := []byte{0x00, 0x02, 0x08, 0x01}
	if !bytes.Equal(b, want) {
		t.Fatalf("StringToBytes() = %x, want %x", b, want)
	}

	// 规范文本形式是 base58btc
	s, err := TranscoderP2P.BytesToString(b)
	if err != nil {
		t.Fatalf("BytesToString() error = %v", err)
	}
	if s != "1gaC" {
		t.Errorf("BytesToString() = %s, want 1gaC", s)
	}

	// 非 libp2p-key 的 CID 被拒绝
	if _, err := TranscoderP2P.StringToBytes("bafkreibme22gw2h7y2h7tg2fhqotaqjucnbc24deqo72b6mkl2egezxhvy"); err == nil {
		t.Error("raw-codec CID should be rejected as peer ID")
	}
}

// TestTranscoderP2P_TrailingBytes 测试带尾随字节的 PeerID 被拒绝
func TestTranscoderP2P_TrailingBytes(t *testing.T) {
	// identity multihash [0x00 0x02 0x08 0x01] 后附加一个字节
	err := TranscoderP2P.ValidateBytes([]byte{0x00, 0x02, 0x08, 0x01, 0xff})
	if err == nil {
		t.Error("ValidateBytes() should reject trailing bytes")
	}
}

func TestTranscoderIP6Zone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid zone", "eth0", false},
		{"Empty", "", true},
		{"With slash", "eth0/bad", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := TranscoderIP6Zone.StringToBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("StringToBytes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				s, err := TranscoderIP6Zone.BytesToString(b)
				if err != nil {
					t.Errorf("BytesToString() error = %v", err)
				}
				if s != tt.input {
					t.Errorf("Round trip: got %v, want %v", s, tt.input)
				}

				// Test validate
				if err := TranscoderIP6Zone.ValidateBytes(b); err != nil {
					t.Errorf("ValidateBytes() error = %v", err)
				}
			}
		})
	}

	// Test validate with slash
	t.Run("ValidateBytes with slash", func(t *testing.T) {
		err := TranscoderIP6Zone.ValidateBytes([]byte("bad/zone"))
		if err == nil {
			t.Error("ValidateBytes() should reject zone with slash")
		}
	})

	// Test validate empty
	t.Run("ValidateBytes empty", func(t *testing.T) {
		err := TranscoderIP6Zone.ValidateBytes([]byte{})
		if err == nil {
			t.Error("ValidateBytes() should reject empty bytes")
		}
	})
}

func TestTranscoderUnix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid path", "/tmp/socket", false},
		{"Nested path", "/var/run/p2p.sock", false},
		{"Relative path", "socket", true},
		{"Bare slash", "/", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := TranscoderUnix.StringToBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("StringToBytes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				s, err := TranscoderUnix.BytesToString(b)
				if err != nil {
					t.Errorf("BytesToString() error = %v", err)
				}
				if s != tt.input {
					t.Errorf("Round trip: got %v, want %v", s, tt.input)
				}
			}
		})
	}
}

// TestTranscoderInvalidUTF8 测试非法 UTF-8 字节在解码侧被拒绝
func TestTranscoderInvalidUTF8(t *testing.T) {
	bad := []byte{0xff, 0xfe}

	for _, tc := range []struct {
		name string
		tr   Transcoder
	}{
		{"DNS", TranscoderDNS},
		{"Unix", TranscoderUnix},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.tr.BytesToString(bad); err == nil {
				t.Error("BytesToString() should reject invalid UTF-8")
			}
			if err := tc.tr.ValidateBytes(bad); err == nil {
				t.Error("ValidateBytes() should reject invalid UTF-8")
			}
		})
	}

	// 二进制形式：dns 协议码 + varint 长度 2 + 非法 UTF-8 载荷
	t.Run("BinaryDecode", func(t *testing.T) {
		if _, err := NewMultiaddrBytes([]byte{0x35, 0x02, 0xff, 0xfe}); err == nil {
			t.Error("NewMultiaddrBytes() should reject dns value with invalid UTF-8")
		}
	})
}

// TestTranscoderOnion 测试 Onion transcoder
func TestTranscoderOnion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid", "timaq4ygg2iegci7:1234", false},
		{"With suffix", "timaq4ygg2iegci7.onion:80", false},
		{"Zero port", "timaq4ygg2iegci7:0", true},
		{"Bad port", "timaq4ygg2iegci7:x", true},
		{"Short host", "timaq4ygg2iegci:1234", true},
		{"No port", "timaq4ygg2iegci7", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := TranscoderOnion.StringToBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("StringToBytes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if len(b) != 12 {
					t.Fatalf("binary length = %d, want 12", len(b))
				}
				s, err := TranscoderOnion.BytesToString(b)
				if err != nil {
					t.Errorf("BytesToString() error = %v", err)
				}
				want := strings.TrimSuffix(strings.Split(tt.input, ":")[0], ".onion") + ":" + strings.Split(tt.input, ":")[1]
				if s != want {
					t.Errorf("Round trip: got %v, want %v", s, want)
				}
			}
		})
	}
}

// TestTranscoderOnion3 测试 Onion3 transcoder
func TestTranscoderOnion3(t *testing.T) {
	valid := "vww6ybal4bd7szmgncyruucpgfkqahzddi37ktceo3ah7ngmcopnpyyd:1234"

	t.Run("Valid", func(t *testing.T) {
		b, err := TranscoderOnion3.StringToBytes(valid)
		if err != nil {
			t.Fatalf("StringToBytes() error = %v", err)
		}
		if len(b) != 37 {
			t.Fatalf("binary length = %d, want 37", len(b))
		}
		s, err := TranscoderOnion3.BytesToString(b)
		if err != nil {
			t.Fatalf("BytesToString() error = %v", err)
		}
		if s != valid {
			t.Errorf("Round trip: got %v, want %v", s, valid)
		}
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := TranscoderOnion3.StringToBytes("invalid")
		if err == nil {
			t.Error("Should reject invalid onion3 address")
		}
	})

	t.Run("Short hash", func(t *testing.T) {
		_, err := TranscoderOnion3.StringToBytes("vww6ybal4bd7szmgncyruucpgfkqahzddi37ktceo3ah7ngm:1234")
		if err == nil {
			t.Error("Should reject short onion3 hash")
		}
	})

	t.Run("Zero port", func(t *testing.T) {
		_, err := TranscoderOnion3.StringToBytes("vww6ybal4bd7szmgncyruucpgfkqahzddi37ktceo3ah7ngmcopnpyyd:0")
		if err == nil {
			t.Error("Should reject zero port")
		}
	})
}

// TestTranscoderGarlic64 测试 Garlic64 transcoder
func TestTranscoderGarlic64(t *testing.T) {
	t.Run("Valid destination", func(t *testing.T) {
		// 387 字节全零 destination
		input := strings.Repeat("A", 516)
		b, err := TranscoderGarlic64.StringToBytes(input)
		if err != nil {
			t.Fatalf("StringToBytes() error = %v", err)
		}
		if len(b) != 387 {
			t.Fatalf("binary length = %d, want 387", len(b))
		}

		s, err := TranscoderGarlic64.BytesToString(b)
		if err != nil {
			t.Fatalf("BytesToString() error = %v", err)
		}
		if s != input {
			t.Errorf("Round trip mismatch")
		}
	})

	t.Run("Too short", func(t *testing.T) {
		_, err := TranscoderGarlic64.StringToBytes("AAAAAAAAAAAAAAAA")
		if err == nil {
			t.Error("Should reject short garlic64 address")
		}
	})

	t.Run("Invalid base64", func(t *testing.T) {
		_, err := TranscoderGarlic64.StringToBytes(strings.Repeat("A", 515) + "!")
		if err == nil {
			t.Error("Should reject invalid i2p base64")
		}
	})

	t.Run("Short bytes", func(t *testing.T) {
		if err := TranscoderGarlic64.ValidateBytes(make([]byte, 100)); err == nil {
			t.Error("ValidateBytes() should reject destinations under 386 bytes")
		}
	})
}

// TestTranscoderGarlic32 测试 Garlic32 transcoder
func TestTranscoderGarlic32(t *testing.T) {
	t.Run("Standard address", func(t *testing.T) {
		input := strings.Repeat("a", 52)
		b, err := TranscoderGarlic32.StringToBytes(input)
		if err != nil {
			t.Fatalf("StringToBytes() error = %v", err)
		}
		if len(b) != 32 {
			t.Fatalf("binary length = %d, want 32", len(b))
		}

		s, err := TranscoderGarlic32.BytesToString(b)
		if err != nil {
			t.Fatalf("BytesToString() error = %v", err)
		}
		if s != input {
			t.Errorf("BytesToString() = %s, want %s", s, input)
		}
	})

	t.Run("Leaseset address", func(t *testing.T) {
		input := strings.Repeat("a", 56)
		b, err := TranscoderGarlic32.StringToBytes(input)
		if err != nil {
			t.Fatalf("StringToBytes() error = %v", err)
		}
		if len(b) != 35 {
			t.Fatalf("binary length = %d, want 35", len(b))
		}
	})

	t.Run("Suffix trimmed", func(t *testing.T) {
		input := strings.Repeat("a", 52) + ".b32.i2p"
		if _, err := TranscoderGarlic32.StringToBytes(input); err != nil {
			t.Errorf("StringToBytes() error = %v", err)
		}
	})

	t.Run("Bad length", func(t *testing.T) {
		if _, err := TranscoderGarlic32.StringToBytes("AAAABBBB"); err == nil {
			t.Error("Should reject 8 character garlic32 address")
		}
	})

	t.Run("Bad bytes", func(t *testing.T) {
		if err := TranscoderGarlic32.ValidateBytes(make([]byte, 20)); err == nil {
			t.Error("ValidateBytes() should reject 20 byte hashes")
		}
	})
}
