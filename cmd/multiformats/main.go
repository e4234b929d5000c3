// Package main 提供 multiformats 命令行入口
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	multiformats "github.com/dep2p/go-multiformats"
	"github.com/dep2p/go-multiformats/pkg/lib/cid"
	"github.com/dep2p/go-multiformats/pkg/lib/cidutil"
	"github.com/dep2p/go-multiformats/pkg/lib/crypto"
	"github.com/dep2p/go-multiformats/pkg/lib/log"
	"github.com/dep2p/go-multiformats/pkg/lib/multiaddr"
	"github.com/dep2p/go-multiformats/pkg/lib/multibase"
	"github.com/dep2p/go-multiformats/pkg/lib/multicodec"
	"github.com/dep2p/go-multiformats/pkg/lib/multihash"
	"github.com/dep2p/go-multiformats/pkg/lib/peer"
)

var logger = log.Logger("multiformats/cmd")

// ═══════════════════════════════════════════════════════════════════════════
// 命令行参数
// ═══════════════════════════════════════════════════════════════════════════
//
// 三种工作模式：
//
//   检视模式（默认）：解析命令行给出的 CID / multiaddr / multibase 文本，
//   打印逐层分解结果（「这个值」是什么）
//
//   哈希模式（-sum）：对文件或标准输入计算 multihash，可选输出 CIDv1
//   （「这份内容」的自描述摘要是什么）
//
//   密钥模式（-keygen）：生成身份密钥并打印派生的节点 ID，可选存入
//   密钥存储（「这个节点」叫什么）
//
// ═══════════════════════════════════════════════════════════════════════════
var (
	// ─────────────────────────────────────────────────────────────────────
	// 哈希参数（-sum 模式）
	// ─────────────────────────────────────────────────────────────────────
	sumMode  = flag.Bool("sum", false, "计算文件（或标准输入）的 multihash")
	algoName = flag.String("algo", "sha2-256", "哈希算法名称")
	seed     = flag.Uint("seed", 0, "murmur3 种子（仅 murmur3 系列有效）")

	// ─────────────────────────────────────────────────────────────────────
	// 编码参数
	// ─────────────────────────────────────────────────────────────────────
	encName   = flag.String("enc", "base16", "multibase 编码名称")
	codecName = flag.String("codec", "raw", "CID 内容类型名称（配合 -cid）")
	asCid     = flag.Bool("cid", false, "以 CIDv1 形式输出摘要")

	// ─────────────────────────────────────────────────────────────────────
	// 身份密钥参数（-keygen 模式）
	// ─────────────────────────────────────────────────────────────────────
	keygenMode  = flag.Bool("keygen", false, "生成身份密钥并打印节点 ID")
	keyTypeName = flag.String("type", "ed25519", "密钥类型（ed25519 / secp256k1 / rsa）")
	keystoreDir = flag.String("keystore", "", "密钥存储目录（为空则输出到标准输出）")
	keyName     = flag.String("name", "default", "密钥在存储中的名称")

	// ─────────────────────────────────────────────────────────────────────
	// 信息显示
	// ─────────────────────────────────────────────────────────────────────
	showVersion = flag.Bool("version", false, "显示版本信息")
	showHelp    = flag.Bool("help", false, "显示帮助信息")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	// 显示版本
	if *showVersion {
		printVersion()
		return nil
	}

	// 显示帮助
	if *showHelp {
		printHelp()
		return nil
	}

	// 哈希模式
	if *sumMode {
		return runSum(flag.Args())
	}

	// 密钥模式
	if *keygenMode {
		return runKeygen()
	}

	// 检视模式
	args := flag.Args()
	if len(args) == 0 {
		printHelp()
		return nil
	}
	return runInspect(args)
}

// ═══════════════════════════════════════════════════════════════════════════
// 检视模式
// ═══════════════════════════════════════════════════════════════════════════

// runInspect 逐个分解命令行给出的自描述值
//
// 单个值解析失败不影响其余值，所有错误聚合后一次返回。
func runInspect(args []string) error {
	cache, err := cidutil.NewCache(cidutil.DefaultCacheSize)
	if err != nil {
		return err
	}

	var errs error
	for i, arg := range args {
		if i > 0 {
			fmt.Println()
		}
		if err := inspect(cache, arg); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", arg, err))
		}
	}
	return errs
}

// inspect 分解单个值
//
// 以 '/' 开头的参数按 multiaddr 解析，其余先按 CID 解析，
// 失败后退回裸 multibase 文本。
func inspect(cache *cidutil.Cache, arg string) error {
	logger.Debug("检视", "arg", arg)
	if strings.HasPrefix(arg, "/") {
		return inspectMultiaddr(arg)
	}
	if c, err := cache.Parse(arg); err == nil {
		return inspectCid(c)
	}
	return inspectMultibase(arg)
}

// inspectCid 打印 CID 的逐层分解
func inspectCid(c cid.Cid) error {
	mh, err := c.Multihash()
	if err != nil {
		return err
	}

	fmt.Printf("CID        %s\n", c)
	fmt.Printf("  版本      %s\n", c.Version())
	fmt.Printf("  多进制    %s ('%c')\n", c.Base(), byte(c.Base()))
	fmt.Printf("  内容类型  %s (0x%x)\n", c.ContentType(), uint64(c.ContentType()))
	fmt.Printf("  多哈希    %s\n", mh)
	fmt.Printf("  字节数    %d\n", len(c.Encode()))

	// libp2p-key 的 CID 与节点 ID 互为表示
	if c.ContentType() == multicodec.Libp2pKey {
		if id, err := c.ToPeerID(); err == nil {
			fmt.Printf("  节点 ID   %s\n", id)
		}
	}
	return nil
}

// inspectMultiaddr 打印 multiaddr 的协议分解
func inspectMultiaddr(s string) error {
	m, err := multiaddr.NewMultiaddr(s)
	if err != nil {
		return err
	}

	fmt.Printf("multiaddr  %s\n", m)
	fmt.Printf("  字节      %s (%d 字节)\n", hex.EncodeToString(m.Bytes()), len(m.Bytes()))
	multiaddr.ForEach(m, func(comp multiaddr.Component) bool {
		p := comp.Protocol()
		if comp.Value() == "" {
			fmt.Printf("  协议      %s (0x%x)\n", p.Name, uint64(p.Code))
		} else {
			fmt.Printf("  协议      %s (0x%x) = %s\n", p.Name, uint64(p.Code), comp.Value())
		}
		return true
	})

	if id, err := multiaddr.GetPeerID(m); err == nil {
		fmt.Printf("  节点 ID   %s\n", id)
	}
	return nil
}

// inspectMultibase 按裸 multibase 文本解码
func inspectMultibase(s string) error {
	enc, data, err := multibase.Decode(s)
	if err != nil {
		return err
	}

	fmt.Printf("multibase  %s\n", s)
	fmt.Printf("  编码      %s ('%c')\n", enc, byte(enc))
	fmt.Printf("  数据      %s (%d 字节)\n", hex.EncodeToString(data), len(data))
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 哈希模式
// ═══════════════════════════════════════════════════════════════════════════

// runSum 计算文件的 multihash
//
// 文件之间并发哈希，输出按参数顺序排列。单个文件失败不影响
// 其它文件，所有错误聚合后一次返回。无文件参数时读取标准输入。
func runSum(paths []string) error {
	cp, err := multicodec.FromName(*algoName)
	if err != nil {
		return fmt.Errorf("哈希算法: %w", err)
	}
	if !multicodec.IsMultihash(cp.Code) {
		return fmt.Errorf("%s 不是 multihash 算法", cp)
	}
	enc, err := multibase.EncodingFromName(*encName)
	if err != nil {
		return fmt.Errorf("multibase 编码: %w", err)
	}
	var contentType multicodec.Code
	if *asCid {
		ct, err := multicodec.FromName(*codecName)
		if err != nil {
			return fmt.Errorf("内容类型: %w", err)
		}
		contentType = ct.Code
	}
	if uint64(*seed) > math.MaxUint32 {
		return fmt.Errorf("种子 %d 超出 uint32 范围", *seed)
	}

	logger.Debug("计算 multihash", "algo", cp.Name, "files", len(paths))

	// 无参数：读取标准输入
	if len(paths) == 0 {
		text, err := sumFile(cp, enc, contentType, "-")
		if err != nil {
			return err
		}
		fmt.Printf("%s  -\n", text)
		return nil
	}

	results := make([]string, len(paths))
	errs := make([]error, len(paths))

	eg, _ := errgroup.WithContext(context.Background())
	eg.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			results[i], errs[i] = sumFile(cp, enc, contentType, path)
			return nil
		})
	}
	_ = eg.Wait()

	for i, path := range paths {
		if errs[i] != nil {
			continue
		}
		fmt.Printf("%s  %s\n", results[i], path)
	}
	return multierr.Combine(errs...)
}

// sumFile 流式哈希单个文件，path 为 "-" 时读取标准输入
func sumFile(cp multicodec.Codepoint, enc multibase.Encoding, contentType multicodec.Code, path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	m, err := multihash.FromCodec(cp)
	if err != nil {
		return "", err
	}
	if isFlagSet("seed") {
		if err := m.SetMurmur3Seed(uint32(*seed)); err != nil {
			return "", err
		}
	}
	if _, err := io.Copy(m, r); err != nil {
		return "", err
	}
	if err := m.Finish(); err != nil {
		return "", err
	}

	if *asCid {
		c, err := cid.NewV1FromMultihash(enc, contentType, m)
		if err != nil {
			return "", err
		}
		return c.String(), nil
	}
	wire, err := m.Encode()
	if err != nil {
		return "", err
	}
	return multibase.Encode(enc, wire)
}

// ═══════════════════════════════════════════════════════════════════════════
// 密钥模式
// ═══════════════════════════════════════════════════════════════════════════

// runKeygen 生成身份密钥并打印派生的节点 ID
//
// 指定 -keystore 时私钥落盘存储，加密口令从环境变量
// MULTIFORMATS_KEY_PASSWORD 读取（为空则明文存储）；
// 未指定时私钥以 multibase 编码的线格式输出到标准输出。
func runKeygen() error {
	var kt crypto.KeyType
	switch strings.ToLower(*keyTypeName) {
	case "ed25519":
		kt = crypto.KeyTypeEd25519
	case "secp256k1":
		kt = crypto.KeyTypeSecp256k1
	case "rsa":
		kt = crypto.KeyTypeRSA
	default:
		return fmt.Errorf("不支持的密钥类型 %q（可选 ed25519 / secp256k1 / rsa）", *keyTypeName)
	}

	priv, pub, err := crypto.GenerateKeyPair(kt)
	if err != nil {
		return err
	}
	id, err := peer.FromPublicKey(pub)
	if err != nil {
		return err
	}

	logger.Debug("生成身份密钥", "type", kt, "id", id.ShortString())

	fmt.Printf("节点 ID    %s\n", id)
	fmt.Printf("  密钥类型  %s\n", kt)
	if c, err := cid.NewV1FromPeerID(multibase.Base36Lower, id); err == nil {
		fmt.Printf("  CIDv1     %s\n", c)
	}

	if *keystoreDir == "" {
		wire, err := crypto.MarshalPrivateKey(priv)
		if err != nil {
			return err
		}
		enc, err := multibase.EncodingFromName(*encName)
		if err != nil {
			return fmt.Errorf("multibase 编码: %w", err)
		}
		text, err := multibase.Encode(enc, wire)
		if err != nil {
			return err
		}
		fmt.Printf("  私钥      %s\n", text)
		return nil
	}

	password := []byte(os.Getenv("MULTIFORMATS_KEY_PASSWORD"))
	ks, err := crypto.NewFSKeystore(*keystoreDir, password)
	if err != nil {
		return err
	}
	if err := ks.Put(*keyName, priv); err != nil {
		return fmt.Errorf("存储密钥 %q: %w", *keyName, err)
	}
	fmt.Printf("  已存储    %s\n", filepath.Join(*keystoreDir, *keyName+".key"))
	return nil
}

// isFlagSet 检查命令行参数是否被显式设置
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// printVersion 打印版本信息
func printVersion() {
	fmt.Printf("multiformats %s\n", multiformats.Version)
	if multiformats.GitCommit != "" {
		fmt.Printf("  commit: %s\n", multiformats.GitCommit)
	}
	if multiformats.BuildDate != "" {
		fmt.Printf("  built:  %s\n", multiformats.BuildDate)
	}
}

// printHelp 打印帮助信息
func printHelp() {
	fmt.Println("multiformats - 自描述值工具（multihash / multibase / multiaddr / CID）")
	fmt.Println()
	fmt.Println("用法:")
	fmt.Println("  multiformats [选项] <值>...")
	fmt.Println("  multiformats -sum [选项] [文件]...")
	fmt.Println("  multiformats -keygen [选项]")
	fmt.Println()
	fmt.Println("选项:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════════════════")
	fmt.Println("检视模式")
	fmt.Println("═══════════════════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("以 '/' 开头的参数按 multiaddr 解析，其余先按 CID 解析，失败后按裸")
	fmt.Println("multibase 文本解码。")
	fmt.Println()
	fmt.Println("  # 分解 CID（v0 与 v1 均可）")
	fmt.Println("  multiformats QmdfTbBqBPQ7VNxZEYEj14VmRuZBkqFbiwReogJgS1zR1n")
	fmt.Println("  multiformats bafkreibme22gw2h7y2h7tg2fhqotaqjucnbc24deqo72b6mkl2egezxhvy")
	fmt.Println()
	fmt.Println("  # 分解 multiaddr")
	fmt.Println("  multiformats /ip4/127.0.0.1/tcp/4001")
	fmt.Println("  multiformats /ip4/1.2.3.4/udp/4001/quic/p2p/12D3KooW...")
	fmt.Println()
	fmt.Println("  # 解码 multibase 文本")
	fmt.Println("  multiformats f68656c6c6f")
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════════════════")
	fmt.Println("哈希模式 (-sum)")
	fmt.Println("═══════════════════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("  # 计算文件的 sha2-256 multihash（base16 输出）")
	fmt.Println("  multiformats -sum file.txt")
	fmt.Println()
	fmt.Println("  # 标准输入 + 指定算法与编码")
	fmt.Println("  echo -n 'hello world' | multiformats -sum -algo blake3 -enc base58btc")
	fmt.Println()
	fmt.Println("  # 带种子的 murmur3")
	fmt.Println("  multiformats -sum -algo murmur3-128 -seed 42 file.txt")
	fmt.Println()
	fmt.Println("  # 输出 CIDv1（默认 raw 内容类型）")
	fmt.Println("  multiformats -sum -cid -enc base32 file.txt")
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════════════════")
	fmt.Println("密钥模式 (-keygen)")
	fmt.Println("═══════════════════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("  # 生成 Ed25519 身份密钥，打印节点 ID 与私钥")
	fmt.Println("  multiformats -keygen")
	fmt.Println()
	fmt.Println("  # 生成并存入密钥存储（口令读自 MULTIFORMATS_KEY_PASSWORD）")
	fmt.Println("  multiformats -keygen -type secp256k1 -keystore ~/.dep2p/keys -name node1")
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════════════════")
	fmt.Println("常用哈希算法 (-algo)")
	fmt.Println("═══════════════════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("  sha2-256 (默认)   sha2-512   sha1   dbl-sha2-256")
	fmt.Println("  sha3-224  sha3-256  sha3-384  sha3-512  shake-128  shake-256")
	fmt.Println("  keccak-256  keccak-512  blake3  blake2b-256  blake2s-256")
	fmt.Println("  murmur3-128  murmur3-32  md4  md5  ripemd-160  identity")
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════════════════")
	fmt.Println("常用 multibase 编码 (-enc)")
	fmt.Println("═══════════════════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("  base16 ('f')      十六进制（默认）")
	fmt.Println("  base32 ('b')      CIDv1 文本惯用")
	fmt.Println("  base58btc ('z')   multihash / 节点 ID 惯用")
	fmt.Println("  base64 ('m')      无填充 base64")
}
