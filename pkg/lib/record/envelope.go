package record

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dep2p/go-multiformats/pkg/lib/crypto"
	keypb "github.com/dep2p/go-multiformats/pkg/lib/proto/key"
	pb "github.com/dep2p/go-multiformats/pkg/lib/proto/record"
	"github.com/dep2p/go-multiformats/pkg/lib/varint"
)

// 信封错误
var (
	// ErrEmptyDomain 表示签名或验证时域字符串为空
	ErrEmptyDomain = errors.New("envelope domain must not be empty")

	// ErrWrongPayloadType 表示信封载荷类型不是节点记录
	ErrWrongPayloadType = errors.New("envelope payload is not a peer record")

	// ErrInvalidSignature 表示信封签名验证失败
	ErrInvalidSignature = errors.New("invalid envelope signature")

	// ErrPeerMismatch 表示记录所属节点与签名公钥不符
	ErrPeerMismatch = errors.New("peer record does not match envelope key")

	// ErrNoPublicKey 表示信封缺少公钥
	ErrNoPublicKey = errors.New("envelope has no public key")
)

// Envelope 域分隔的签名信封
//
// 信封把任意载荷与签名者公钥、载荷类型绑在一起。签名覆盖的是
// 域分隔拼接（见包文档），因此同一载荷在不同域下的签名互不通用。
type Envelope struct {
	// PublicKey 签名者公钥
	PublicKey crypto.PublicKey

	// PayloadType 载荷类型（multicodec varint 字节）
	PayloadType []byte

	// Payload 序列化后的载荷
	Payload []byte

	// Signature 对域分隔拼接的签名
	Signature []byte
}

// Seal 序列化记录并用私钥签名，返回信封
func Seal(rec *PeerRecord, priv crypto.PrivateKey) (*Envelope, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}
	if priv == nil {
		return nil, crypto.ErrNilPrivateKey
	}

	payload, err := rec.Marshal()
	if err != nil {
		return nil, err
	}

	payloadType := PayloadType()
	unsigned := signedPayload(Domain, payloadType, payload)
	sig, err := crypto.Sign(priv, unsigned)
	if err != nil {
		return nil, err
	}

	return &Envelope{
		PublicKey:   priv.GetPublic(),
		PayloadType: payloadType,
		Payload:     payload,
		Signature:   sig.Data,
	}, nil
}

// ConsumeEnvelope 解析并验证信封，返回信封与其中的节点记录
//
// 验证分三步：签名对 domain 下的拼接有效；载荷类型是节点记录；
// 记录声明的节点 ID 与签名公钥匹配。任何一步失败都拒绝整个信封。
func ConsumeEnvelope(data []byte, domain string) (*Envelope, *PeerRecord, error) {
	if domain == "" {
		return nil, nil, ErrEmptyDomain
	}

	env, err := UnmarshalEnvelope(data)
	if err != nil {
		return nil, nil, err
	}

	if !bytes.Equal(env.PayloadType, PayloadType()) {
		return nil, nil, fmt.Errorf("%w: type %x", ErrWrongPayloadType, env.PayloadType)
	}
	if err := env.Verify(domain); err != nil {
		logger.Debug("envelope rejected", "err", err)
		return nil, nil, err
	}

	rec, err := UnmarshalPeerRecord(env.Payload)
	if err != nil {
		return nil, nil, err
	}
	if !rec.PeerID.MatchesPublicKey(env.PublicKey) {
		logger.Debug("envelope rejected", "err", ErrPeerMismatch, "record", rec)
		return nil, nil, ErrPeerMismatch
	}

	return env, rec, nil
}

// UnmarshalEnvelope 从 protobuf 字节解析信封，不做验证
func UnmarshalEnvelope(data []byte) (*Envelope, error) {
	msg := &pb.Envelope{}
	if err := msg.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}
	if msg.PublicKey == nil {
		return nil, ErrNoPublicKey
	}

	pk, err := crypto.UnmarshalPublicKey(crypto.KeyType(msg.PublicKey.Type), msg.PublicKey.Data)
	if err != nil {
		return nil, fmt.Errorf("envelope key: %w", err)
	}

	return &Envelope{
		PublicKey:   pk,
		PayloadType: msg.PayloadType,
		Payload:     msg.Payload,
		Signature:   msg.Signature,
	}, nil
}

// Marshal 序列化信封为 protobuf 字节
func (e *Envelope) Marshal() ([]byte, error) {
	if e.PublicKey == nil {
		return nil, ErrNoPublicKey
	}
	raw, err := e.PublicKey.Raw()
	if err != nil {
		return nil, err
	}

	msg := &pb.Envelope{
		PublicKey: &keypb.PublicKey{
			Type: keypb.KeyType(e.PublicKey.Type()),
			Data: raw,
		},
		PayloadType: e.PayloadType,
		Payload:     e.Payload,
		Signature:   e.Signature,
	}
	return msg.Marshal()
}

// Verify 验证信封签名对指定域有效
func (e *Envelope) Verify(domain string) error {
	if domain == "" {
		return ErrEmptyDomain
	}
	if e.PublicKey == nil {
		return ErrNoPublicKey
	}

	unsigned := signedPayload(domain, e.PayloadType, e.Payload)
	sig := &crypto.Signature{Type: e.PublicKey.Type(), Data: e.Signature}
	valid, err := crypto.Verify(e.PublicKey, unsigned, sig)
	if err != nil {
		return err
	}
	if !valid {
		return ErrInvalidSignature
	}
	return nil
}

// Record 解析信封中的节点记录，不验证签名
func (e *Envelope) Record() (*PeerRecord, error) {
	if !bytes.Equal(e.PayloadType, PayloadType()) {
		return nil, fmt.Errorf("%w: type %x", ErrWrongPayloadType, e.PayloadType)
	}
	return UnmarshalPeerRecord(e.Payload)
}

// Equal 判断两个信封是否相同
func (e *Envelope) Equal(other *Envelope) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.PublicKey == nil || other.PublicKey == nil {
		return e.PublicKey == other.PublicKey
	}
	return e.PublicKey.Equals(other.PublicKey) &&
		bytes.Equal(e.PayloadType, other.PayloadType) &&
		bytes.Equal(e.Payload, other.Payload) &&
		bytes.Equal(e.Signature, other.Signature)
}

// signedPayload 组装签名覆盖的域分隔拼接
func signedPayload(domain string, payloadType, payload []byte) []byte {
	buf := make([]byte, 0, len(domain)+len(payloadType)+len(payload)+3*varint.MaxLen)
	buf = append(buf, varint.Encode(uint64(len(domain)))...)
	buf = append(buf, domain...)
	buf = append(buf, varint.Encode(uint64(len(payloadType)))...)
	buf = append(buf, payloadType...)
	buf = append(buf, varint.Encode(uint64(len(payload)))...)
	buf = append(buf, payload...)
	return buf
}
