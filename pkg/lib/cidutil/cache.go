package cidutil

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dep2p/go-multiformats/pkg/lib/cid"
)

// DefaultCacheSize 解析缓存的默认容量
const DefaultCacheSize = 256

// Cache 文本到 Cid 的 LRU 解析缓存
//
// 热路径上反复解析同一批 CID 文本（去重、索引、日志归并）时，
// 缓存省去 multibase 解码与校验。解析结果是不可变值，缓存命中
// 直接返回副本，可以并发使用。
type Cache struct {
	inner *lru.Cache[string, cid.Cid]
}

// NewCache 创建指定容量的解析缓存
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	inner, err := lru.New[string, cid.Cid](size)
	if err != nil {
		return nil, err
	}
	return &Cache{inner: inner}, nil
}

// Parse 解析 CID 文本，命中缓存时跳过解码
//
// 解析失败不缓存，下次调用会重新尝试。
func (c *Cache) Parse(text string) (cid.Cid, error) {
	if v, ok := c.inner.Get(text); ok {
		return v, nil
	}

	v, err := cid.FromText(text)
	if err != nil {
		return cid.Undef, err
	}
	c.inner.Add(text, v)
	return v, nil
}

// Contains 判断文本是否已在缓存中，不影响淘汰顺序
func (c *Cache) Contains(text string) bool {
	return c.inner.Contains(text)
}

// Len 返回缓存中的条目数
func (c *Cache) Len() int {
	return c.inner.Len()
}

// Purge 清空缓存
func (c *Cache) Purge() {
	c.inner.Purge()
}
