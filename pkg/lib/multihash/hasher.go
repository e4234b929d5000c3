package multihash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha512"
	"fmt"
	"hash"

	sha256 "github.com/minio/sha256-simd"
	"github.com/spaolacci/murmur3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"

	"github.com/dep2p/go-multiformats/pkg/lib/multicodec"
)

// hasher 屏蔽具体算法：write 吸收数据，sum 生成摘要并复位内部状态
type hasher interface {
	write(p []byte)
	sum() []byte
}

// stdHasher 适配标准 hash.Hash 实现
type stdHasher struct {
	h hash.Hash
}

func (s *stdHasher) write(p []byte) {
	s.h.Write(p)
}

func (s *stdHasher) sum() []byte {
	d := s.h.Sum(nil)
	s.h.Reset()
	return d
}

// identityHasher 原样累积输入，摘要即输入本身
type identityHasher struct {
	buf []byte
}

func (i *identityHasher) write(p []byte) {
	i.buf = append(i.buf, p...)
}

func (i *identityHasher) sum() []byte {
	d := make([]byte, len(i.buf))
	copy(d, i.buf)
	i.buf = i.buf[:0]
	return d
}

// doubleHasher 在终结时对首轮摘要再哈希一次
type doubleHasher struct {
	h hash.Hash
}

func (d *doubleHasher) write(p []byte) {
	d.h.Write(p)
}

func (d *doubleHasher) sum() []byte {
	first := d.h.Sum(nil)
	d.h.Reset()
	d.h.Write(first)
	second := d.h.Sum(nil)
	d.h.Reset()
	return second
}

// shakeHasher 以固定输出长度截取 SHAKE 可扩展输出
type shakeHasher struct {
	s    sha3.ShakeHash
	size int
}

func (s *shakeHasher) write(p []byte) {
	s.s.Write(p)
}

func (s *shakeHasher) sum() []byte {
	d := make([]byte, s.size)
	s.s.Read(d)
	s.s.Reset()
	return d
}

// newHasher 按算法码点构造哈希状态，seed 仅对 murmur3 系列生效
func newHasher(code multicodec.Code, seed uint32) (hasher, error) {
	switch {
	case code == multicodec.Identity:
		return &identityHasher{}, nil
	case code == multicodec.Sha1:
		return &stdHasher{h: sha1.New()}, nil
	case code == multicodec.Sha2_256:
		return &stdHasher{h: sha256.New()}, nil
	case code == multicodec.Sha2_512:
		return &stdHasher{h: sha512.New()}, nil
	case code == multicodec.DblSha2_256:
		return &doubleHasher{h: sha256.New()}, nil
	case code == multicodec.Sha3_224:
		return &stdHasher{h: sha3.New224()}, nil
	case code == multicodec.Sha3_256:
		return &stdHasher{h: sha3.New256()}, nil
	case code == multicodec.Sha3_384:
		return &stdHasher{h: sha3.New384()}, nil
	case code == multicodec.Sha3_512:
		return &stdHasher{h: sha3.New512()}, nil
	case code == multicodec.Shake128:
		return &shakeHasher{s: sha3.NewShake128(), size: 32}, nil
	case code == multicodec.Shake256:
		return &shakeHasher{s: sha3.NewShake256(), size: 64}, nil
	case code == multicodec.Keccak256:
		return &stdHasher{h: sha3.NewLegacyKeccak256()}, nil
	case code == multicodec.Keccak512:
		return &stdHasher{h: sha3.NewLegacyKeccak512()}, nil
	case code == multicodec.Blake3:
		return &stdHasher{h: blake3.New(32, nil)}, nil
	case code == multicodec.Murmur3_128:
		return &stdHasher{h: murmur3.New128WithSeed(seed)}, nil
	case code == multicodec.Murmur3_32:
		return &stdHasher{h: murmur3.New32WithSeed(seed)}, nil
	case code == multicodec.Md4:
		return &stdHasher{h: md4.New()}, nil
	case code == multicodec.Md5:
		return &stdHasher{h: md5.New()}, nil
	case code == multicodec.Ripemd160:
		return &stdHasher{h: ripemd160.New()}, nil
	case code >= multicodec.Blake2bMin && code <= multicodec.Blake2bMax:
		h, err := blake2b.New(int(code-multicodec.Blake2bMin)+1, nil)
		if err != nil {
			return nil, fmt.Errorf("blake2b: %w", err)
		}
		return &stdHasher{h: h}, nil
	case code == multicodec.Blake2s256:
		h, err := blake2s.New256(nil)
		if err != nil {
			return nil, fmt.Errorf("blake2s: %w", err)
		}
		return &stdHasher{h: h}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, code)
}

// isMurmur3 判断码点是否属于带种子的 murmur3 系列
func isMurmur3(code multicodec.Code) bool {
	return code == multicodec.Murmur3_128 || code == multicodec.Murmur3_32
}
