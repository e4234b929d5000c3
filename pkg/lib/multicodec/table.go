package multicodec

import "fmt"

// 分类标签
const (
	TagMultihash     = "multihash"
	TagMultiaddr     = "multiaddr"
	TagMultiformat   = "multiformat"
	TagIpld          = "ipld"
	TagSerialization = "serialization"
	TagNamespace     = "namespace"
	TagKey           = "key"
	TagLibp2p        = "libp2p"
	TagZeroxcert     = "zeroxcert"
	TagFilecoin      = "filecoin"
	TagHolochain     = "holochain"
)

// ═══════════════════════════════════════════════════════════════════════════
//  代码常量（按注册表顺序）
// ═══════════════════════════════════════════════════════════════════════════

const (
	Identity Code = 0x00
	CidV1    Code = 0x01
	CidV2    Code = 0x02
	CidV3    Code = 0x03
	Ip4      Code = 0x04
	Tcp      Code = 0x06
	Sha1     Code = 0x11
	Sha2_256 Code = 0x12
	Sha2_512 Code = 0x13
	Sha3_512 Code = 0x14
	Sha3_384 Code = 0x15
	Sha3_256 Code = 0x16
	Sha3_224 Code = 0x17
	Shake128 Code = 0x18
	Shake256 Code = 0x19

	Keccak224 Code = 0x1a
	Keccak256 Code = 0x1b
	Keccak384 Code = 0x1c
	Keccak512 Code = 0x1d
	Blake3    Code = 0x1e

	Dccp        Code = 0x21
	Murmur3_128 Code = 0x22
	Murmur3_32  Code = 0x23
	Ip6         Code = 0x29
	Ip6zone     Code = 0x2a
	Path        Code = 0x2f

	// multiformat 自描述标签
	Multicodec Code = 0x30
	Multihash  Code = 0x31
	Multiaddr  Code = 0x32
	Multibase  Code = 0x33

	Dns     Code = 0x35
	Dns4    Code = 0x36
	Dns6    Code = 0x37
	Dnsaddr Code = 0x38

	Protobuf    Code = 0x50
	Cbor        Code = 0x51
	Raw         Code = 0x55
	DblSha2_256 Code = 0x56
	Rlp         Code = 0x60
	Bencode     Code = 0x63

	DagPb       Code = 0x70
	DagCbor     Code = 0x71
	Libp2pKey   Code = 0x72
	GitRaw      Code = 0x78
	TorrentInfo Code = 0x7b
	TorrentFile Code = 0x7c

	LeofcoinBlock Code = 0x81
	LeofcoinTx    Code = 0x82
	LeofcoinPr    Code = 0x83
	Sctp          Code = 0x84
	DagJose       Code = 0x85
	DagCose       Code = 0x86

	EthBlock           Code = 0x90
	EthBlockList       Code = 0x91
	EthTxTrie          Code = 0x92
	EthTx              Code = 0x93
	EthTxReceiptTrie   Code = 0x94
	EthTxReceipt       Code = 0x95
	EthStateTrie       Code = 0x96
	EthAccountSnapshot Code = 0x97
	EthStorageTrie     Code = 0x98

	BitcoinBlock             Code = 0xb0
	BitcoinTx                Code = 0xb1
	BitcoinWitnessCommitment Code = 0xb2
	ZcashBlock               Code = 0xc0
	ZcashTx                  Code = 0xc1
	StellarBlock             Code = 0xd0
	StellarTx                Code = 0xd1

	Md4 Code = 0xd4
	Md5 Code = 0xd5
	Bmt Code = 0xd6

	DecredBlock Code = 0xe0
	DecredTx    Code = 0xe1

	IpldNs  Code = 0xe2
	IpfsNs  Code = 0xe3
	SwarmNs Code = 0xe4
	IpnsNs  Code = 0xe5
	Zeronet Code = 0xe6

	Secp256k1Pub   Code = 0xe7
	Bls12_381G1Pub Code = 0xea
	Bls12_381G2Pub Code = 0xeb
	X25519Pub      Code = 0xec
	Ed25519Pub     Code = 0xed

	DashBlock     Code = 0xf0
	DashTx        Code = 0xf1
	SwarmManifest Code = 0xfa
	SwarmFeed     Code = 0xfb

	Udp              Code = 0x0111
	P2pWebrtcStar    Code = 0x0113
	P2pWebrtcDirect  Code = 0x0114
	P2pStardust      Code = 0x0115
	P2pCircuit       Code = 0x0122
	DagJson          Code = 0x0129
	Udt              Code = 0x012d
	Utp              Code = 0x012e
	Unix             Code = 0x0190
	P2p              Code = 0x01a5
	Https            Code = 0x01bb
	Onion            Code = 0x01bc
	Onion3           Code = 0x01bd
	Garlic64         Code = 0x01be
	Garlic32         Code = 0x01bf
	Tls              Code = 0x01c0
	Quic             Code = 0x01cc
	Ws               Code = 0x01dd
	Wss              Code = 0x01de
	P2pWebsocketStar Code = 0x01df
	Http             Code = 0x01e0

	Json        Code = 0x0200
	Messagepack Code = 0x0201

	Libp2pPeerRecord Code = 0x0301

	Sha2_256Trunc254Padded Code = 0x1012
	Ripemd128              Code = 0x1052
	Ripemd160              Code = 0x1053
	Ripemd256              Code = 0x1054
	Ripemd320              Code = 0x1055
	X11                    Code = 0x1100

	P256Pub  Code = 0x1200
	P384Pub  Code = 0x1201
	P521Pub  Code = 0x1202
	Ed448Pub Code = 0x1203
	X448Pub  Code = 0x1204

	Kangarootwelve Code = 0x1d01
	Sm3_256        Code = 0x534d

	// blake2b/blake2s/skein 变长摘要系列的码点按 8 位步进连续分配，
	// 表行由 sizedFamily 展开，这里只命名端点与常用档位
	Blake2bMin   Code = 0xb201 // blake2b-8
	Blake2b256   Code = 0xb220 // blake2b-256
	Blake2bMax   Code = 0xb240 // blake2b-512
	Blake2sMin   Code = 0xb241 // blake2s-8
	Blake2s128   Code = 0xb250 // blake2s-128
	Blake2s256   Code = 0xb260 // blake2s-256
	Blake2sMax   Code = 0xb260
	Skein256Min  Code = 0xb301 // skein256-8
	Skein256Max  Code = 0xb320 // skein256-256
	Skein512Min  Code = 0xb321 // skein512-8
	Skein512Max  Code = 0xb360 // skein512-512
	Skein1024Min Code = 0xb361 // skein1024-8
	Skein1024Max Code = 0xb3e0 // skein1024-1024

	PoseidonBls12_381A2Fc1   Code = 0xb401
	PoseidonBls12_381A2Fc1Sc Code = 0xb402

	ZeroxcertImprint256 Code = 0xce11

	FilCommitmentUnsealed Code = 0xf101
	FilCommitmentSealed   Code = 0xf102

	HolochainAdrV0 Code = 0x807124
	HolochainAdrV1 Code = 0x817124
	HolochainKeyV0 Code = 0x947124
	HolochainKeyV1 Code = 0x957124
	HolochainSigV0 Code = 0xa27124
	HolochainSigV1 Code = 0xa37124
)

// ═══════════════════════════════════════════════════════════════════════════
//  注册表
// ═══════════════════════════════════════════════════════════════════════════

// table 完整注册表，顺序与上游 table.csv 一致（不含已废弃的 ipfs 行，
// 0x01a5 由 p2p 持有）
var table = buildTable()

func buildTable() []Codepoint {
	t := make([]Codepoint, 0, 455)

	t = append(t,
		Codepoint{Identity, "identity", TagMultihash},
		Codepoint{CidV1, "cidv1", TagIpld},
		Codepoint{CidV2, "cidv2", TagIpld},
		Codepoint{CidV3, "cidv3", TagIpld},
		Codepoint{Ip4, "ip4", TagMultiaddr},
		Codepoint{Tcp, "tcp", TagMultiaddr},
		Codepoint{Sha1, "sha1", TagMultihash},
		Codepoint{Sha2_256, "sha2-256", TagMultihash},
		Codepoint{Sha2_512, "sha2-512", TagMultihash},
		Codepoint{Sha3_512, "sha3-512", TagMultihash},
		Codepoint{Sha3_384, "sha3-384", TagMultihash},
		Codepoint{Sha3_256, "sha3-256", TagMultihash},
		Codepoint{Sha3_224, "sha3-224", TagMultihash},
		Codepoint{Shake128, "shake-128", TagMultihash},
		Codepoint{Shake256, "shake-256", TagMultihash},
		Codepoint{Keccak224, "keccak-224", TagMultihash},
		Codepoint{Keccak256, "keccak-256", TagMultihash},
		Codepoint{Keccak384, "keccak-384", TagMultihash},
		Codepoint{Keccak512, "keccak-512", TagMultihash},
		Codepoint{Blake3, "blake3", TagMultihash},
		Codepoint{Dccp, "dccp", TagMultiaddr},
		Codepoint{Murmur3_128, "murmur3-128", TagMultihash},
		Codepoint{Murmur3_32, "murmur3-32", TagMultihash},
		Codepoint{Ip6, "ip6", TagMultiaddr},
		Codepoint{Ip6zone, "ip6zone", TagMultiaddr},
		Codepoint{Path, "path", TagNamespace},
		Codepoint{Multicodec, "multicodec", TagMultiformat},
		Codepoint{Multihash, "multihash", TagMultiformat},
		Codepoint{Multiaddr, "multiaddr", TagMultiformat},
		Codepoint{Multibase, "multibase", TagMultiformat},
		Codepoint{Dns, "dns", TagMultiaddr},
		Codepoint{Dns4, "dns4", TagMultiaddr},
		Codepoint{Dns6, "dns6", TagMultiaddr},
		Codepoint{Dnsaddr, "dnsaddr", TagMultiaddr},
		Codepoint{Protobuf, "protobuf", TagSerialization},
		Codepoint{Cbor, "cbor", TagSerialization},
		Codepoint{Raw, "raw", TagIpld},
		Codepoint{DblSha2_256, "dbl-sha2-256", TagMultihash},
		Codepoint{Rlp, "rlp", TagSerialization},
		Codepoint{Bencode, "bencode", TagSerialization},
		Codepoint{DagPb, "dag-pb", TagIpld},
		Codepoint{DagCbor, "dag-cbor", TagIpld},
		Codepoint{Libp2pKey, "libp2p-key", TagIpld},
		Codepoint{GitRaw, "git-raw", TagIpld},
		Codepoint{TorrentInfo, "torrent-info", TagIpld},
		Codepoint{TorrentFile, "torrent-file", TagIpld},
		Codepoint{LeofcoinBlock, "leofcoin-block", TagIpld},
		Codepoint{LeofcoinTx, "leofcoin-tx", TagIpld},
		Codepoint{LeofcoinPr, "leofcoin-pr", TagIpld},
		Codepoint{Sctp, "sctp", TagMultiaddr},
		Codepoint{DagJose, "dag-jose", TagIpld},
		Codepoint{DagCose, "dag-cose", TagIpld},
		Codepoint{EthBlock, "eth-block", TagIpld},
		Codepoint{EthBlockList, "eth-block-list", TagIpld},
		Codepoint{EthTxTrie, "eth-tx-trie", TagIpld},
		Codepoint{EthTx, "eth-tx", TagIpld},
		Codepoint{EthTxReceiptTrie, "eth-tx-receipt-trie", TagIpld},
		Codepoint{EthTxReceipt, "eth-tx-receipt", TagIpld},
		Codepoint{EthStateTrie, "eth-state-trie", TagIpld},
		Codepoint{EthAccountSnapshot, "eth-account-snapshot", TagIpld},
		Codepoint{EthStorageTrie, "eth-storage-trie", TagIpld},
		Codepoint{BitcoinBlock, "bitcoin-block", TagIpld},
		Codepoint{BitcoinTx, "bitcoin-tx", TagIpld},
		Codepoint{BitcoinWitnessCommitment, "bitcoin-witness-commitment", TagIpld},
		Codepoint{ZcashBlock, "zcash-block", TagIpld},
		Codepoint{ZcashTx, "zcash-tx", TagIpld},
		Codepoint{StellarBlock, "stellar-block", TagIpld},
		Codepoint{StellarTx, "stellar-tx", TagIpld},
		Codepoint{Md4, "md4", TagMultihash},
		Codepoint{Md5, "md5", TagMultihash},
		Codepoint{Bmt, "bmt", TagMultihash},
		Codepoint{DecredBlock, "decred-block", TagIpld},
		Codepoint{DecredTx, "decred-tx", TagIpld},
		Codepoint{IpldNs, "ipld-ns", TagNamespace},
		Codepoint{IpfsNs, "ipfs-ns", TagNamespace},
		Codepoint{SwarmNs, "swarm-ns", TagNamespace},
		Codepoint{IpnsNs, "ipns-ns", TagNamespace},
		Codepoint{Zeronet, "zeronet", TagNamespace},
		Codepoint{Secp256k1Pub, "secp256k1-pub", TagKey},
		Codepoint{Bls12_381G1Pub, "bls12_381-g1-pub", TagKey},
		Codepoint{Bls12_381G2Pub, "bls12_381-g2-pub", TagKey},
		Codepoint{X25519Pub, "x25519-pub", TagKey},
		Codepoint{Ed25519Pub, "ed25519-pub", TagKey},
		Codepoint{DashBlock, "dash-block", TagIpld},
		Codepoint{DashTx, "dash-tx", TagIpld},
		Codepoint{SwarmManifest, "swarm-manifest", TagIpld},
		Codepoint{SwarmFeed, "swarm-feed", TagIpld},
		Codepoint{Udp, "udp", TagMultiaddr},
		Codepoint{P2pWebrtcStar, "p2p-webrtc-star", TagMultiaddr},
		Codepoint{P2pWebrtcDirect, "p2p-webrtc-direct", TagMultiaddr},
		Codepoint{P2pStardust, "p2p-stardust", TagMultiaddr},
		Codepoint{P2pCircuit, "p2p-circuit", TagMultiaddr},
		Codepoint{DagJson, "dag-json", TagIpld},
		Codepoint{Udt, "udt", TagMultiaddr},
		Codepoint{Utp, "utp", TagMultiaddr},
		Codepoint{Unix, "unix", TagMultiaddr},
		Codepoint{P2p, "p2p", TagMultiaddr},
		Codepoint{Https, "https", TagMultiaddr},
		Codepoint{Onion, "onion", TagMultiaddr},
		Codepoint{Onion3, "onion3", TagMultiaddr},
		Codepoint{Garlic64, "garlic64", TagMultiaddr},
		Codepoint{Garlic32, "garlic32", TagMultiaddr},
		Codepoint{Tls, "tls", TagMultiaddr},
		Codepoint{Quic, "quic", TagMultiaddr},
		Codepoint{Ws, "ws", TagMultiaddr},
		Codepoint{Wss, "wss", TagMultiaddr},
		Codepoint{P2pWebsocketStar, "p2p-websocket-star", TagMultiaddr},
		Codepoint{Http, "http", TagMultiaddr},
		Codepoint{Json, "json", TagSerialization},
		Codepoint{Messagepack, "messagepack", TagSerialization},
		Codepoint{Libp2pPeerRecord, "libp2p-peer-record", TagLibp2p},
		Codepoint{Sha2_256Trunc254Padded, "sha2-256-trunc254-padded", TagMultihash},
		Codepoint{Ripemd128, "ripemd-128", TagMultihash},
		Codepoint{Ripemd160, "ripemd-160", TagMultihash},
		Codepoint{Ripemd256, "ripemd-256", TagMultihash},
		Codepoint{Ripemd320, "ripemd-320", TagMultihash},
		Codepoint{X11, "x11", TagMultihash},
		Codepoint{P256Pub, "p256-pub", TagKey},
		Codepoint{P384Pub, "p384-pub", TagKey},
		Codepoint{P521Pub, "p521-pub", TagKey},
		Codepoint{Ed448Pub, "ed448-pub", TagKey},
		Codepoint{X448Pub, "x448-pub", TagKey},
		Codepoint{Kangarootwelve, "kangarootwelve", TagMultihash},
		Codepoint{Sm3_256, "sm3-256", TagMultihash},
	)

	t = append(t, sizedFamily("blake2b", Blake2bMin, 64)...)
	t = append(t, sizedFamily("blake2s", Blake2sMin, 32)...)
	t = append(t, sizedFamily("skein256", Skein256Min, 32)...)
	t = append(t, sizedFamily("skein512", Skein512Min, 64)...)
	t = append(t, sizedFamily("skein1024", Skein1024Min, 128)...)

	t = append(t,
		Codepoint{PoseidonBls12_381A2Fc1, "poseidon-bls12_381-a2-fc1", TagMultihash},
		Codepoint{PoseidonBls12_381A2Fc1Sc, "poseidon-bls12_381-a2-fc1-sc", TagMultihash},
		Codepoint{ZeroxcertImprint256, "zeroxcert-imprint-256", TagZeroxcert},
		Codepoint{FilCommitmentUnsealed, "fil-commitment-unsealed", TagFilecoin},
		Codepoint{FilCommitmentSealed, "fil-commitment-sealed", TagFilecoin},
		Codepoint{HolochainAdrV0, "holochain-adr-v0", TagHolochain},
		Codepoint{HolochainAdrV1, "holochain-adr-v1", TagHolochain},
		Codepoint{HolochainKeyV0, "holochain-key-v0", TagHolochain},
		Codepoint{HolochainKeyV1, "holochain-key-v1", TagHolochain},
		Codepoint{HolochainSigV0, "holochain-sig-v0", TagHolochain},
		Codepoint{HolochainSigV1, "holochain-sig-v1", TagHolochain},
	)

	return t
}

// sizedFamily 展开一个按 8 位步进的变长摘要系列，
// 如 sizedFamily("blake2b", 0xb201, 64) 生成 blake2b-8 至 blake2b-512
func sizedFamily(prefix string, first Code, n int) []Codepoint {
	cps := make([]Codepoint, 0, n)
	for i := 1; i <= n; i++ {
		cps = append(cps, Codepoint{
			Code: first + Code(i-1),
			Name: fmt.Sprintf("%s-%d", prefix, 8*i),
			Tag:  TagMultihash,
		})
	}
	return cps
}

// ═══════════════════════════════════════════════════════════════════════════
//  索引
// ═══════════════════════════════════════════════════════════════════════════

var (
	multihashTable []Codepoint
	codeIndex      map[Code]int
	nameIndex      map[string]int
)

func init() {
	codeIndex = make(map[Code]int, len(table))
	nameIndex = make(map[string]int, len(table))
	for i, cp := range table {
		codeIndex[cp.Code] = i
		nameIndex[cp.Name] = i
		if cp.Tag == TagMultihash {
			multihashTable = append(multihashTable, cp)
		}
	}
}
