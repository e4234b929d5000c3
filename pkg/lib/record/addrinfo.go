package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dep2p/go-multiformats/pkg/lib/multiaddr"
	"github.com/dep2p/go-multiformats/pkg/lib/peer"
)

// ErrNotP2pAddr 表示多地址末尾不是 p2p 组件
var ErrNotP2pAddr = errors.New("multiaddr does not end with a p2p component")

// AddrInfo 节点与其地址列表的组合
//
// Addrs 中的地址不含 /p2p 尾段；完整地址用 P2pMultiaddrs 还原。
type AddrInfo struct {
	// ID 节点标识
	ID peer.ID

	// Addrs 传输层地址
	Addrs []multiaddr.Multiaddr
}

// FromP2pMultiaddr 拆解形如 /ip4/.../tcp/.../p2p/<id> 的完整地址
//
// 末尾组件必须是 p2p；其余组件作为传输地址保留。中继地址
// （/.../p2p/A/p2p-circuit/p2p/B）取最末尾的节点 B。
func FromP2pMultiaddr(addr multiaddr.Multiaddr) (AddrInfo, error) {
	if addr == nil {
		return AddrInfo{}, fmt.Errorf("nil multiaddr")
	}

	parts := multiaddr.Split(addr)
	if len(parts) == 0 {
		return AddrInfo{}, fmt.Errorf("empty multiaddr")
	}

	last, _ := multiaddr.SplitFirst(parts[len(parts)-1])
	if last.Protocol().Code != multiaddr.P_P2P {
		return AddrInfo{}, fmt.Errorf("%w: %s", ErrNotP2pAddr, addr)
	}
	id, err := peer.FromText(last.Value())
	if err != nil {
		return AddrInfo{}, fmt.Errorf("p2p component: %w", err)
	}

	info := AddrInfo{ID: id}
	if len(parts) > 1 {
		transport, err := multiaddr.Join(parts[:len(parts)-1]...)
		if err != nil {
			return AddrInfo{}, err
		}
		info.Addrs = []multiaddr.Multiaddr{transport}
	}
	return info, nil
}

// FromP2pMultiaddrs 拆解一组完整地址并按节点归并
//
// 同一节点的多个地址合并到一个 AddrInfo，顺序按首次出现。
func FromP2pMultiaddrs(addrs ...multiaddr.Multiaddr) ([]AddrInfo, error) {
	var infos []AddrInfo
	index := make(map[peer.ID]int)

	for _, addr := range addrs {
		info, err := FromP2pMultiaddr(addr)
		if err != nil {
			return nil, err
		}
		if i, ok := index[info.ID]; ok {
			infos[i].Addrs = append(infos[i].Addrs, info.Addrs...)
			continue
		}
		index[info.ID] = len(infos)
		infos = append(infos, info)
	}
	return infos, nil
}

// P2pMultiaddrs 为每个传输地址补回 /p2p/<id> 尾段
func (ai AddrInfo) P2pMultiaddrs() ([]multiaddr.Multiaddr, error) {
	if len(ai.ID) == 0 {
		return nil, ErrNoPeerID
	}
	suffix, err := multiaddr.NewMultiaddr("/p2p/" + ai.ID.String())
	if err != nil {
		return nil, err
	}

	addrs := make([]multiaddr.Multiaddr, 0, len(ai.Addrs))
	for _, addr := range ai.Addrs {
		if addr == nil {
			continue
		}
		addrs = append(addrs, addr.Encapsulate(suffix))
	}
	return addrs, nil
}

// String 返回 {<id> : addr1,addr2} 形式的可读表示
func (ai AddrInfo) String() string {
	texts := make([]string, 0, len(ai.Addrs))
	for _, addr := range ai.Addrs {
		if addr != nil {
			texts = append(texts, addr.String())
		}
	}
	return fmt.Sprintf("{%s : %s}", ai.ID, strings.Join(texts, ","))
}
