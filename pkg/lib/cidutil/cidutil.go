// Package cidutil 提供内容到 CID 的一步式辅助函数与解析缓存
package cidutil

import (
	"github.com/dep2p/go-multiformats/pkg/lib/cid"
	"github.com/dep2p/go-multiformats/pkg/lib/multibase"
	"github.com/dep2p/go-multiformats/pkg/lib/multicodec"
	"github.com/dep2p/go-multiformats/pkg/lib/multihash"
)

// V1RawSha256 返回内容的 CIDv1 文本（raw + sha2-256，base32 渲染）
//
// 这是内容寻址最常用的组合。sha2-256 对任意输入都能完成哈希，
// 错误分支实际走不到，失败时返回空串。
func V1RawSha256(data []byte) string {
	c, err := V1RawSha256Cid(data)
	if err != nil {
		return ""
	}
	return c.String()
}

// V1RawSha256Cid 返回内容的 CIDv1 值（raw + sha2-256）
func V1RawSha256Cid(data []byte) (cid.Cid, error) {
	return cid.NewV1(multibase.Base32Lower, multicodec.Raw, data)
}

// V1Sha256Cid 返回内容的 CIDv1 值，内容类型由调用方指定
func V1Sha256Cid(contentType multicodec.Code, data []byte) (cid.Cid, error) {
	return cid.NewV1(multibase.Base32Lower, contentType, data)
}

// V1FromMultihash 把算好的 multihash 包装为 base32 渲染的 CIDv1
func V1FromMultihash(contentType multicodec.Code, mh *multihash.Multihash) (cid.Cid, error) {
	return cid.NewV1FromMultihash(multibase.Base32Lower, contentType, mh)
}
