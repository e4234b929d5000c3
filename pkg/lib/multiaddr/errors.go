package multiaddr

import "errors"

// 通用错误
var (
	ErrInvalidMultiaddr = errors.New("invalid multiaddr")
	ErrInvalidProtocol  = errors.New("invalid protocol")
	ErrUnmarshalFailed  = errors.New("failed to unmarshal multiaddr")
	ErrProtocolNotFound = errors.New("protocol not found in multiaddr")
	ErrNotBareFragment  = errors.New("multiaddr fragment is not a single component")
)
