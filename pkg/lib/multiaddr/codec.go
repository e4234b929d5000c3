package multiaddr

import (
	"bytes"
	"fmt"
	"strings"
)

// 文本与二进制形式的通用编解码。两个方向都由协议表驱动：
// 文本侧按 '/' 分词后查表消费值记号，二进制侧按 varint 码点
// 查表切出定长或变长的值字节。

// stringToBytes 将多地址字符串转换为二进制格式
func stringToBytes(s string) ([]byte, error) {
	// 尾部斜杠不参与语义
	s = strings.TrimRight(s, "/")
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidMultiaddr)
	}
	if s[0] != '/' {
		return nil, fmt.Errorf("%w: must begin with /", ErrInvalidMultiaddr)
	}

	var buf bytes.Buffer
	parts := strings.Split(s, "/")[1:]

	for len(parts) > 0 {
		name := parts[0]
		proto := ProtocolWithName(name)
		if proto.Code == 0 {
			return nil, fmt.Errorf("%w: unknown protocol %q", ErrInvalidProtocol, name)
		}
		buf.Write(proto.VCode)
		parts = parts[1:]

		if proto.Size == 0 {
			continue
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("%w: protocol %s requires a value", ErrInvalidMultiaddr, name)
		}

		// 路径协议吞掉剩余全部记号，值以斜杠开头
		if proto.Path {
			parts = []string{"/" + strings.Join(parts, "/")}
		}

		valueBytes, err := proto.Transcoder.StringToBytes(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: protocol %s value: %v", ErrInvalidMultiaddr, name, err)
		}
		if proto.Size == LengthPrefixedVarSize {
			buf.Write(uvarintEncode(uint64(len(valueBytes))))
		}
		buf.Write(valueBytes)
		parts = parts[1:]
	}

	return buf.Bytes(), nil
}

// readComponentBytes 从缓冲区头部切出一个组件
//
// 返回协议、值字节（无数据协议为 nil）与剩余字节。值字节已通过
// transcoder 校验。
func readComponentBytes(b []byte) (Protocol, []byte, []byte, error) {
	code, n, err := readVarintCode(b)
	if err != nil {
		return Protocol{}, nil, nil, fmt.Errorf("%w: protocol code: %v", ErrInvalidMultiaddr, err)
	}
	b = b[n:]

	proto := ProtocolWithCode(code)
	if proto.Code == 0 {
		return Protocol{}, nil, nil, fmt.Errorf("%w: unknown code %s", ErrInvalidProtocol, code)
	}
	if proto.Size == 0 {
		return proto, nil, b, nil
	}

	prefixLen, dataLen, err := sizeForAddr(proto, b)
	if err != nil {
		return Protocol{}, nil, nil, fmt.Errorf("%w: protocol %s length: %v", ErrInvalidMultiaddr, proto.Name, err)
	}
	b = b[prefixLen:]
	if len(b) < dataLen {
		return Protocol{}, nil, nil, fmt.Errorf("%w: protocol %s needs %d bytes, have %d",
			ErrInvalidMultiaddr, proto.Name, dataLen, len(b))
	}
	valueBytes := b[:dataLen]
	if err := proto.Transcoder.ValidateBytes(valueBytes); err != nil {
		return Protocol{}, nil, nil, fmt.Errorf("%w: protocol %s value: %v", ErrInvalidMultiaddr, proto.Name, err)
	}
	return proto, valueBytes, b[dataLen:], nil
}

// bytesToString 将二进制格式的多地址转换为字符串
func bytesToString(b []byte) (string, error) {
	if len(b) == 0 {
		return "", fmt.Errorf("%w: empty bytes", ErrInvalidMultiaddr)
	}

	var sb strings.Builder
	for len(b) > 0 {
		proto, valueBytes, rest, err := readComponentBytes(b)
		if err != nil {
			return "", err
		}
		b = rest

		sb.WriteByte('/')
		sb.WriteString(proto.Name)
		if proto.Size == 0 {
			continue
		}

		valueStr, err := proto.Transcoder.BytesToString(valueBytes)
		if err != nil {
			return "", fmt.Errorf("%w: protocol %s value: %v", ErrInvalidMultiaddr, proto.Name, err)
		}
		// 路径协议的值自带前导斜杠
		if !proto.Path || len(valueStr) == 0 || valueStr[0] != '/' {
			sb.WriteByte('/')
		}
		sb.WriteString(valueStr)
	}

	return sb.String(), nil
}

// validateBytes 验证二进制多地址的格式
func validateBytes(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("%w: empty bytes", ErrInvalidMultiaddr)
	}
	for len(b) > 0 {
		_, _, rest, err := readComponentBytes(b)
		if err != nil {
			return err
		}
		b = rest
	}
	return nil
}

// sizeForAddr 计算协议数据部分的大小
//
// 返回长度前缀占用的字节数与数据字节数。变长协议声明的长度
// 超出缓冲区剩余量时直接报错，避免把恶意长度转成切片容量。
func sizeForAddr(proto Protocol, b []byte) (int, int, error) {
	switch {
	case proto.Size == 0:
		return 0, 0, nil
	case proto.Size == LengthPrefixedVarSize:
		length, n, err := uvarintDecode(b)
		if err != nil {
			return 0, 0, err
		}
		if length > uint64(len(b)-n) {
			return 0, 0, fmt.Errorf("declared length %d exceeds remaining %d bytes", length, len(b)-n)
		}
		return n, int(length), nil
	default:
		return 0, proto.Size / 8, nil
	}
}
