// Package multibase 提供自描述 base 编码（multibase）的实现
//
// multibase 在 base 编码文本前附加一个单字符前缀，标识正文使用的
// base 字母表，使文本自携带解码所需的全部信息。
//
// # 基本用法
//
//	// 编码：前缀 + base 正文
//	text, err := multibase.Encode(multibase.Base32Lower, data)
//	// "bafkrei..."
//
//	// 解码：按前缀自动选择字母表
//	enc, data, err := multibase.Decode(text)
//
//	// 按名称查找编码
//	enc, err := multibase.EncodingFromName("base58btc")
//
// # 前缀表
//
// 内置表与 multiformats/multibase 规范的 23 行完全一致：
// https://github.com/multiformats/multibase/blob/master/multibase.csv
//
//   - identity (0x00)：原样字节，不做变换
//   - base2 '0'、base8 '7'、base10 '9'：位展开 / 八进制 / 十进制
//   - base16 f/F：十六进制
//   - base32 b/B、base32pad c/C、base32hex v/V、base32hexpad t/T、
//     base32z 'h'：RFC4648 变体与 z-base-32
//   - base36 k/K：大小写不敏感的 [0-9a-z]
//   - base58btc 'z'、base58flickr 'Z'
//   - base64 m/M、base64url u/U：RFC4648 变体
//
// 大小写不敏感的字母表解码时接受两种大小写，编码时输出规范大小写。
package multibase
