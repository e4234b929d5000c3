package cid

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/dep2p/go-multiformats/pkg/lib/multibase"
	"github.com/dep2p/go-multiformats/pkg/lib/multicodec"
)

func fooCid(t testing.TB) Cid {
	t.Helper()
	c, err := NewV1(multibase.Base32Lower, multicodec.Raw, []byte("foo"))
	if err != nil {
		t.Fatalf("NewV1() error = %v", err)
	}
	return c
}

// TestJSON 测试 DAG-JSON 链接形式
func TestJSON(t *testing.T) {
	c := fooCid(t)

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"/":"bafkreibme22gw2h7y2h7tg2fhqotaqjucnbc24deqo72b6mkl2egezxhvy"}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var back Cid
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !back.Equal(c) {
		t.Errorf("round trip = %v, want %v", back, c)
	}

	// 未定义的值与 null 互转
	data, err = json.Marshal(Undef)
	if err != nil {
		t.Fatalf("json.Marshal(Undef) error = %v", err)
	}
	if string(data) != "null" {
		t.Errorf("json.Marshal(Undef) = %s, want null", data)
	}
	back = c
	if err := json.Unmarshal([]byte("null"), &back); err != nil {
		t.Fatalf("json.Unmarshal(null) error = %v", err)
	}
	if back.Defined() {
		t.Error("json.Unmarshal(null) produced a defined value")
	}

	// 链接文本非法
	if err := json.Unmarshal([]byte(`{"/":"zzz"}`), &back); err == nil {
		t.Error("json.Unmarshal() expected error for bad link")
	}
}

// TestText 测试 encoding.TextMarshaler 往返
func TestText(t *testing.T) {
	c := fooCid(t)

	data, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(data) != c.String() {
		t.Errorf("MarshalText() = %s, want %s", data, c.String())
	}

	var back Cid
	if err := back.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if !back.Equal(c) {
		t.Errorf("round trip = %v, want %v", back, c)
	}

	if _, err := Undef.MarshalText(); !errors.Is(err, ErrUndefined) {
		t.Errorf("Undef.MarshalText() error = %v, want ErrUndefined", err)
	}
}

// TestBinary 测试 encoding.BinaryMarshaler 往返
func TestBinary(t *testing.T) {
	c := fooCid(t)

	data, err := c.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if !bytes.Equal(data, c.Encode()) {
		t.Errorf("MarshalBinary() = %x, want %x", data, c.Encode())
	}

	var back Cid
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if !back.Equal(c) {
		t.Errorf("round trip = %v, want %v", back, c)
	}

	if _, err := Undef.MarshalBinary(); !errors.Is(err, ErrUndefined) {
		t.Errorf("Undef.MarshalBinary() error = %v, want ErrUndefined", err)
	}
}

// TestCBOR 测试 IPLD tag 42 形式
func TestCBOR(t *testing.T) {
	c := fooCid(t)

	data, err := cbor.Marshal(c)
	if err != nil {
		t.Fatalf("cbor.Marshal() error = %v", err)
	}

	// tag(42) | bytes(37) | 0x00 | <v1 二进制>
	want := append([]byte{0xd8, 0x2a, 0x58, 0x25, 0x00}, c.Encode()...)
	if !bytes.Equal(data, want) {
		t.Errorf("cbor.Marshal() = %x, want %x", data, want)
	}

	var back Cid
	if err := cbor.Unmarshal(data, &back); err != nil {
		t.Fatalf("cbor.Unmarshal() error = %v", err)
	}
	if !back.Equal(c) {
		t.Errorf("round trip = %v, want %v", back, c)
	}
}

// TestCBOR_Invalid 测试非法 CBOR 输入
func TestCBOR_Invalid(t *testing.T) {
	c := fooCid(t)

	// 错误的 tag 号
	wrongTag, err := cbor.Marshal(cbor.Tag{Number: 43, Content: append([]byte{0x00}, c.Encode()...)})
	if err != nil {
		t.Fatalf("cbor.Marshal() error = %v", err)
	}
	var back Cid
	if err := back.UnmarshalCBOR(wrongTag); err == nil {
		t.Error("UnmarshalCBOR() expected error for tag 43")
	}

	// 内容不是字节串
	textContent, err := cbor.Marshal(cbor.Tag{Number: cborTagCid, Content: "not bytes"})
	if err != nil {
		t.Fatalf("cbor.Marshal() error = %v", err)
	}
	if err := back.UnmarshalCBOR(textContent); err == nil {
		t.Error("UnmarshalCBOR() expected error for text content")
	}

	// 缺少 identity multibase 前缀
	noPrefix, err := cbor.Marshal(cbor.Tag{Number: cborTagCid, Content: c.Encode()})
	if err != nil {
		t.Fatalf("cbor.Marshal() error = %v", err)
	}
	if err := back.UnmarshalCBOR(noPrefix); err == nil {
		t.Error("UnmarshalCBOR() expected error for missing identity prefix")
	}

	// 未定义的值不可编码
	if _, err := Undef.MarshalCBOR(); !errors.Is(err, ErrUndefined) {
		t.Errorf("Undef.MarshalCBOR() error = %v, want ErrUndefined", err)
	}
}
