package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-multiformats/pkg/lib/crypto"
	"github.com/dep2p/go-multiformats/pkg/lib/multiaddr"
	"github.com/dep2p/go-multiformats/pkg/lib/peer"
	pb "github.com/dep2p/go-multiformats/pkg/lib/proto/record"
)

func newTestPeer(t *testing.T) (crypto.PrivateKey, peer.ID) {
	t.Helper()
	priv, pub, err := crypto.GenerateKeyPair(crypto.KeyTypeEd25519)
	require.NoError(t, err)
	id, err := peer.FromPublicKey(pub)
	require.NoError(t, err)
	return priv, id
}

func mustAddr(t *testing.T, s string) multiaddr.Multiaddr {
	t.Helper()
	ma, err := multiaddr.NewMultiaddr(s)
	require.NoError(t, err)
	return ma
}

// TestNewPeerRecord 测试记录构造与序列号
func TestNewPeerRecord(t *testing.T) {
	_, id := newTestPeer(t)
	addrs := []multiaddr.Multiaddr{
		mustAddr(t, "/ip4/127.0.0.1/tcp/4001"),
		mustAddr(t, "/ip4/192.168.1.10/udp/4001/quic"),
	}

	rec := NewPeerRecord(id, addrs)
	require.NotNil(t, rec)
	assert.Equal(t, id, rec.PeerID)
	assert.Len(t, rec.Addrs, 2)
	assert.NotZero(t, rec.Seq)

	// 后构造的记录序列号不回退
	later := NewPeerRecord(id, nil)
	assert.GreaterOrEqual(t, later.Seq, rec.Seq)
}

// TestPeerRecord_MarshalRoundTrip 测试 protobuf 往返
func TestPeerRecord_MarshalRoundTrip(t *testing.T) {
	_, id := newTestPeer(t)
	rec := NewPeerRecord(id, []multiaddr.Multiaddr{
		mustAddr(t, "/ip4/127.0.0.1/tcp/4001"),
		mustAddr(t, "/ip6/::1/tcp/4001"),
	})

	wire, err := rec.Marshal()
	require.NoError(t, err)

	back, err := UnmarshalPeerRecord(wire)
	require.NoError(t, err)
	assert.True(t, rec.Equal(back), "round trip mismatch: %s != %s", rec, back)

	// 序列化结果逐字节稳定（签名依赖）
	again, err := rec.Marshal()
	require.NoError(t, err)
	assert.Equal(t, wire, again)
}

// TestPeerRecord_Marshal_Invalid 测试缺失字段的序列化错误
func TestPeerRecord_Marshal_Invalid(t *testing.T) {
	var nilRec *PeerRecord
	_, err := nilRec.Marshal()
	assert.ErrorIs(t, err, ErrNilRecord)

	_, err = (&PeerRecord{Seq: 1}).Marshal()
	assert.ErrorIs(t, err, ErrNoPeerID)
}

// TestUnmarshalPeerRecord_Invalid 测试非法 protobuf 数据
func TestUnmarshalPeerRecord_Invalid(t *testing.T) {
	_, err := UnmarshalPeerRecord([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)

	// 缺少节点 ID
	msg := &pb.PeerRecord{Seq: 7}
	wire, err := msg.Marshal()
	require.NoError(t, err)
	_, err = UnmarshalPeerRecord(wire)
	assert.ErrorIs(t, err, ErrNoPeerID)

	// 地址不是合法的二进制 multiaddr
	_, id := newTestPeer(t)
	msg = &pb.PeerRecord{
		PeerId:    id.Bytes(),
		Seq:       7,
		Addresses: []*pb.AddressInfo{{Multiaddr: []byte{0xff, 0x01, 0x02}}},
	}
	wire, err = msg.Marshal()
	require.NoError(t, err)
	_, err = UnmarshalPeerRecord(wire)
	assert.Error(t, err)
}

// TestPeerRecord_Equal 测试记录相等性
func TestPeerRecord_Equal(t *testing.T) {
	_, id := newTestPeer(t)
	addr := mustAddr(t, "/ip4/127.0.0.1/tcp/4001")

	a := &PeerRecord{PeerID: id, Addrs: []multiaddr.Multiaddr{addr}, Seq: 42}
	b := &PeerRecord{PeerID: id, Addrs: []multiaddr.Multiaddr{addr}, Seq: 42}
	assert.True(t, a.Equal(b))

	b.Seq = 43
	assert.False(t, a.Equal(b))

	b.Seq = 42
	b.Addrs = nil
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(nil))
	var nilRec *PeerRecord
	assert.True(t, nilRec.Equal(nil))
}

// TestFromP2pMultiaddr 测试完整地址拆解
func TestFromP2pMultiaddr(t *testing.T) {
	_, id := newTestPeer(t)
	full := mustAddr(t, "/ip4/127.0.0.1/tcp/4001/p2p/"+id.String())

	info, err := FromP2pMultiaddr(full)
	require.NoError(t, err)
	assert.Equal(t, id, info.ID)
	require.Len(t, info.Addrs, 1)
	assert.Equal(t, "/ip4/127.0.0.1/tcp/4001", info.Addrs[0].String())

	// 末尾不是 p2p 组件
	_, err = FromP2pMultiaddr(mustAddr(t, "/ip4/127.0.0.1/tcp/4001"))
	assert.ErrorIs(t, err, ErrNotP2pAddr)

	// 只有 p2p 组件：无传输地址
	info, err = FromP2pMultiaddr(mustAddr(t, "/p2p/"+id.String()))
	require.NoError(t, err)
	assert.Equal(t, id, info.ID)
	assert.Empty(t, info.Addrs)
}

// TestFromP2pMultiaddrs 测试按节点归并
func TestFromP2pMultiaddrs(t *testing.T) {
	_, idA := newTestPeer(t)
	_, idB := newTestPeer(t)

	infos, err := FromP2pMultiaddrs(
		mustAddr(t, "/ip4/127.0.0.1/tcp/4001/p2p/"+idA.String()),
		mustAddr(t, "/ip4/10.0.0.2/tcp/4002/p2p/"+idB.String()),
		mustAddr(t, "/ip6/::1/tcp/4001/p2p/"+idA.String()),
	)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	assert.Equal(t, idA, infos[0].ID)
	assert.Len(t, infos[0].Addrs, 2)
	assert.Equal(t, idB, infos[1].ID)
	assert.Len(t, infos[1].Addrs, 1)
}

// TestAddrInfo_P2pMultiaddrs 测试补回 /p2p 尾段
func TestAddrInfo_P2pMultiaddrs(t *testing.T) {
	_, id := newTestPeer(t)
	info := AddrInfo{
		ID: id,
		Addrs: []multiaddr.Multiaddr{
			mustAddr(t, "/ip4/127.0.0.1/tcp/4001"),
			mustAddr(t, "/ip6/::1/tcp/4001"),
		},
	}

	full, err := info.P2pMultiaddrs()
	require.NoError(t, err)
	require.Len(t, full, 2)
	for _, addr := range full {
		back, err := FromP2pMultiaddr(addr)
		require.NoError(t, err)
		assert.Equal(t, id, back.ID)
	}

	_, err = AddrInfo{}.P2pMultiaddrs()
	assert.ErrorIs(t, err, ErrNoPeerID)
}

// TestAddrInfo_String 测试可读表示
func TestAddrInfo_String(t *testing.T) {
	_, id := newTestPeer(t)
	info := AddrInfo{
		ID: id,
		Addrs: []multiaddr.Multiaddr{
			mustAddr(t, "/ip4/127.0.0.1/tcp/4001"),
			mustAddr(t, "/ip6/::1/tcp/4001"),
		},
	}

	want := "{" + id.String() + " : /ip4/127.0.0.1/tcp/4001,/ip6/::1/tcp/4001}"
	assert.Equal(t, want, info.String())
}

// TestFromAddrInfo 测试由地址信息构造记录
func TestFromAddrInfo(t *testing.T) {
	_, id := newTestPeer(t)
	info := AddrInfo{
		ID:    id,
		Addrs: []multiaddr.Multiaddr{mustAddr(t, "/ip4/127.0.0.1/tcp/4001")},
	}

	rec := FromAddrInfo(info)
	require.NotNil(t, rec)
	assert.Equal(t, id, rec.PeerID)
	assert.Len(t, rec.Addrs, 1)
	assert.NotZero(t, rec.Seq)
}
