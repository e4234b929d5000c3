package cid

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// IPLD 在 CBOR 里用 tag 42 承载 CID，内容为 identity multibase
// 前缀（0x00）加二进制 CID。
const cborTagCid = 42

// jsonCid DAG-JSON 的 CID 表示：{"/": "<文本形式>"}
type jsonCid struct {
	Link string `json:"/"`
}

// MarshalJSON 实现 json.Marshaler，输出 DAG-JSON 链接形式
func (c Cid) MarshalJSON() ([]byte, error) {
	if !c.Defined() {
		return []byte("null"), nil
	}
	return json.Marshal(jsonCid{Link: c.String()})
}

// UnmarshalJSON 实现 json.Unmarshaler
func (c *Cid) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Undef
		return nil
	}
	var link jsonCid
	if err := json.Unmarshal(data, &link); err != nil {
		return fmt.Errorf("cid json: %w", err)
	}
	parsed, err := FromText(link.Link)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText 实现 encoding.TextMarshaler
func (c Cid) MarshalText() ([]byte, error) {
	if !c.Defined() {
		return nil, ErrUndefined
	}
	return []byte(c.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (c *Cid) UnmarshalText(data []byte) error {
	parsed, err := FromText(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalBinary 实现 encoding.BinaryMarshaler
func (c Cid) MarshalBinary() ([]byte, error) {
	if !c.Defined() {
		return nil, ErrUndefined
	}
	return c.Encode(), nil
}

// UnmarshalBinary 实现 encoding.BinaryUnmarshaler
func (c *Cid) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalCBOR 实现 cbor.Marshaler，输出 IPLD 的 tag 42 形式
func (c Cid) MarshalCBOR() ([]byte, error) {
	if !c.Defined() {
		return nil, ErrUndefined
	}
	wire := c.Encode()
	content := make([]byte, 0, 1+len(wire))
	content = append(content, 0x00)
	content = append(content, wire...)
	return cbor.Marshal(cbor.Tag{Number: cborTagCid, Content: content})
}

// UnmarshalCBOR 实现 cbor.Unmarshaler
func (c *Cid) UnmarshalCBOR(data []byte) error {
	var tag cbor.Tag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("cid cbor: %w", err)
	}
	if tag.Number != cborTagCid {
		return fmt.Errorf("cid cbor: unexpected tag %d", tag.Number)
	}
	content, ok := tag.Content.([]byte)
	if !ok {
		return fmt.Errorf("cid cbor: tag content is %T, want bytes", tag.Content)
	}
	if len(content) == 0 || content[0] != 0x00 {
		return fmt.Errorf("cid cbor: missing identity multibase prefix")
	}
	parsed, err := FromBytes(content[1:])
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
