package multiaddr

import (
	"math"

	"github.com/dep2p/go-multiformats/pkg/lib/multicodec"
	"github.com/dep2p/go-multiformats/pkg/lib/varint"
)

// codeToVarint 将协议代码预编码为 varint 字节
func codeToVarint(code multicodec.Code) []byte {
	return varint.Encode(uint64(code))
}

// readVarintCode 从字节流头部读取 varint 编码的协议代码
// 返回：(code, bytes_read, error)
func readVarintCode(buf []byte) (multicodec.Code, int, error) {
	code, n, err := varint.Decode(buf)
	if err != nil {
		return 0, 0, err
	}
	if code > math.MaxInt32 {
		// 协议代码限定在 32 位以内
		return 0, 0, varint.ErrOverflow
	}
	return multicodec.Code(code), n, nil
}

// uvarintEncode 编码无符号 varint（最简形式）
func uvarintEncode(x uint64) []byte {
	return varint.Encode(x)
}

// uvarintDecode 解码无符号 varint，拒绝非最简形式
// 返回：(value, bytes_read, error)
func uvarintDecode(buf []byte) (uint64, int, error) {
	return varint.Decode(buf)
}
