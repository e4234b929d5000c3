package record

import (
	"errors"
	"fmt"
	"time"

	"github.com/dep2p/go-multiformats/pkg/lib/log"
	"github.com/dep2p/go-multiformats/pkg/lib/multiaddr"
	"github.com/dep2p/go-multiformats/pkg/lib/multicodec"
	"github.com/dep2p/go-multiformats/pkg/lib/peer"
	pb "github.com/dep2p/go-multiformats/pkg/lib/proto/record"
)

var logger = log.Logger("record")

// Domain 节点记录签名的域字符串
const Domain = "libp2p-peer-record"

// 编解码错误
var (
	// ErrNilRecord 表示对 nil 记录执行操作
	ErrNilRecord = errors.New("nil peer record")

	// ErrNoPeerID 表示记录缺少节点 ID
	ErrNoPeerID = errors.New("peer record has no peer id")
)

// PayloadType 返回信封中标识节点记录的载荷类型字节
//
// 即 libp2p-peer-record 码点（0x0301）的 varint 编码。
func PayloadType() []byte {
	return multicodec.Libp2pPeerRecord.Encode()
}

// PeerRecord 节点的自描述记录
//
// Seq 用于在时间上排序同一节点的多份记录：新记录的 Seq 必须大于
// 旧记录。Seq 为零的记录不视为错误，但接收方可能忽略或拒绝它。
// 记录本身不携带签名，对外分发时装入 Envelope。
type PeerRecord struct {
	// PeerID 记录所属的节点
	PeerID peer.ID

	// Addrs 节点公布的监听地址，不含 /p2p 尾段
	Addrs []multiaddr.Multiaddr

	// Seq 单调递增的序列号
	Seq uint64
}

// NewPeerRecord 构造节点记录，Seq 取当前 Unix 纳秒时间戳
//
// 同一进程内连续构造的记录因此天然有序；跨进程或跨重启的排序
// 由时钟保证。
func NewPeerRecord(id peer.ID, addrs []multiaddr.Multiaddr) *PeerRecord {
	return &PeerRecord{
		PeerID: id,
		Addrs:  addrs,
		Seq:    uint64(time.Now().UnixNano()),
	}
}

// FromAddrInfo 由地址信息构造节点记录
func FromAddrInfo(info AddrInfo) *PeerRecord {
	return NewPeerRecord(info.ID, info.Addrs)
}

// UnmarshalPeerRecord 从 protobuf 字节解析节点记录
//
// 与上游实现一致：节点 ID 与各地址按组件解码，multihash 之后的
// 尾随字节被忽略。
func UnmarshalPeerRecord(data []byte) (*PeerRecord, error) {
	msg := &pb.PeerRecord{}
	if err := msg.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("peer record: %w", err)
	}

	if len(msg.PeerId) == 0 {
		return nil, ErrNoPeerID
	}
	id, _, err := peer.Decode(msg.PeerId)
	if err != nil {
		return nil, fmt.Errorf("peer record id: %w", err)
	}

	var addrs []multiaddr.Multiaddr
	for _, ai := range msg.Addresses {
		if ai == nil || len(ai.Multiaddr) == 0 {
			continue
		}
		ma, _, err := multiaddr.Decode(ai.Multiaddr)
		if err != nil {
			return nil, fmt.Errorf("peer record address: %w", err)
		}
		addrs = append(addrs, ma)
	}

	return &PeerRecord{PeerID: id, Addrs: addrs, Seq: msg.Seq}, nil
}

// Marshal 序列化节点记录为 protobuf 字节
//
// 同一记录的序列化结果逐字节稳定，签名与验证依赖这一点。
func (r *PeerRecord) Marshal() ([]byte, error) {
	if r == nil {
		return nil, ErrNilRecord
	}
	if len(r.PeerID) == 0 {
		return nil, ErrNoPeerID
	}

	msg := &pb.PeerRecord{
		PeerId: r.PeerID.Bytes(),
		Seq:    r.Seq,
	}
	for _, addr := range r.Addrs {
		if addr == nil {
			continue
		}
		msg.Addresses = append(msg.Addresses, &pb.AddressInfo{Multiaddr: addr.Bytes()})
	}
	return msg.Marshal()
}

// Equal 判断两份记录是否相同
func (r *PeerRecord) Equal(other *PeerRecord) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.PeerID != other.PeerID || r.Seq != other.Seq {
		return false
	}
	if len(r.Addrs) != len(other.Addrs) {
		return false
	}
	for i := range r.Addrs {
		if !r.Addrs[i].Equal(other.Addrs[i]) {
			return false
		}
	}
	return true
}

// String 返回记录的可读表示
func (r *PeerRecord) String() string {
	if r == nil {
		return "<nil>"
	}
	return fmt.Sprintf("{%s seq=%d addrs=%d}", r.PeerID.ShortString(), r.Seq, len(r.Addrs))
}
