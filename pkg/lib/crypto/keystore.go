package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
)

// ============================================================================
//                              密钥文件格式
// ============================================================================

// 密钥文件格式：
//
//   ┌────────────────────────────────────────────────────────────┐
//   │                    密钥文件                                 │
//   ├────────────────────────────────────────────────────────────┤
//   │  Magic:     "DEP2P-KEY"  (9 bytes)                         │
//   │  Version:   uint8                                           │
//   │  Encrypted: uint8 (0=否, 1=是)                              │
//   │  Payload:   protobuf 私钥消息（或其密文）                    │
//   └────────────────────────────────────────────────────────────┘
//
//   Payload 是 MarshalPrivateKey 的输出（Type + Data 的 protobuf
//   编码），与网络上传输的私钥形式一致，密钥类型由消息自描述。
//
//   加密时 Payload 为：
//   ┌────────────────────────────────────────────────────────────┐
//   │  Salt:       16 bytes                                       │
//   │  Nonce:      12 bytes                                       │
//   │  Ciphertext: 变长（AES-GCM 加密）                           │
//   └────────────────────────────────────────────────────────────┘

const (
	keyFileMagic   = "DEP2P-KEY"
	keyFileVersion = 1

	// 加密参数
	saltSize  = 16
	nonceSize = 12

	// Argon2 参数
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32
)

// ============================================================================
//                              Keystore 接口
// ============================================================================

// Keystore 密钥存储接口
//
// 实现可以拒绝其存储形式不支持的 ID（如文件系统实现拒绝
// 含路径分隔符的 ID）。
type Keystore interface {
	// Has 检查是否存在指定 ID 的密钥
	Has(id string) (bool, error)

	// Put 存储密钥
	Put(id string, key PrivateKey) error

	// Get 获取密钥
	Get(id string) (PrivateKey, error)

	// Delete 删除密钥
	Delete(id string) error

	// List 列出所有密钥 ID
	List() ([]string, error)
}

// ============================================================================
//                              文件系统密钥存储
// ============================================================================

// FSKeystore 基于文件系统的密钥存储
//
// 每个密钥保存为目录下的一个 <id>.key 文件。
type FSKeystore struct {
	dir      string
	password []byte // 可选：用于加密存储
}

// NewFSKeystore 创建文件系统密钥存储
//
// 参数：
//   - dir: 存储目录（不存在时创建）
//   - password: 加密密码（为空则不加密）
func NewFSKeystore(dir string, password []byte) (*FSKeystore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	return &FSKeystore{
		dir:      dir,
		password: password,
	}, nil
}

// Has 检查是否存在指定 ID 的密钥
func (ks *FSKeystore) Has(id string) (bool, error) {
	if err := validateKeyID(id); err != nil {
		return false, err
	}

	_, err := os.Stat(ks.keyPath(id))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}

// Put 存储密钥
//
// ID 已存在时返回 ErrKeyExists。
func (ks *FSKeystore) Put(id string, key PrivateKey) error {
	if err := validateKeyID(id); err != nil {
		return err
	}

	data, err := ks.encodeKey(key)
	if err != nil {
		return err
	}

	// O_EXCL 保证并发 Put 同一 ID 时只有一个成功
	path := ks.keyPath(id)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return ErrKeyExists
		}
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}

// Get 获取密钥
func (ks *FSKeystore) Get(id string) (PrivateKey, error) {
	if err := validateKeyID(id); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(ks.keyPath(id))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}

	return ks.decodeKey(data)
}

// Delete 删除密钥
func (ks *FSKeystore) Delete(id string) error {
	if err := validateKeyID(id); err != nil {
		return err
	}

	err := os.Remove(ks.keyPath(id))
	if os.IsNotExist(err) {
		return ErrKeyNotFound
	}
	return err
}

// List 列出所有密钥 ID
func (ks *FSKeystore) List() ([]string, error) {
	entries, err := os.ReadDir(ks.dir)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".key" {
			ids = append(ids, strings.TrimSuffix(entry.Name(), ".key"))
		}
	}
	return ids, nil
}

// keyPath 返回密钥文件路径
func (ks *FSKeystore) keyPath(id string) string {
	return filepath.Join(ks.dir, id+".key")
}

// validateKeyID 校验密钥 ID 可安全用作文件名
//
// 拒绝空 ID、路径导航成分和路径分隔符，避免读写逃逸出存储目录。
func validateKeyID(id string) error {
	if id == "" || id == "." || id == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKeyID, id)
	}
	if strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKeyID, id)
	}
	return nil
}

// encodeKey 编码密钥（可选加密）
func (ks *FSKeystore) encodeKey(key PrivateKey) ([]byte, error) {
	payload, err := MarshalPrivateKey(key)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(keyFileMagic)
	buf.WriteByte(keyFileVersion)

	if len(ks.password) > 0 {
		buf.WriteByte(1) // encrypted
		encrypted, err := encryptData(payload, ks.password)
		if err != nil {
			return nil, err
		}
		buf.Write(encrypted)
	} else {
		buf.WriteByte(0)
		buf.Write(payload)
	}

	return buf.Bytes(), nil
}

// decodeKey 解码密钥
func (ks *FSKeystore) decodeKey(data []byte) (PrivateKey, error) {
	if len(data) < len(keyFileMagic)+2 {
		return nil, ErrInvalidKeyFile
	}
	if string(data[:len(keyFileMagic)]) != keyFileMagic {
		return nil, ErrInvalidKeyFile
	}

	offset := len(keyFileMagic)

	version := data[offset]
	if version != keyFileVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidKeyFile, version)
	}
	offset++

	encrypted := data[offset] == 1
	offset++

	payload := data[offset:]
	if encrypted {
		if len(ks.password) == 0 {
			return nil, ErrInvalidPassword
		}
		var err error
		payload, err = decryptData(payload, ks.password)
		if err != nil {
			return nil, err
		}
	}

	return UnmarshalPrivateKeyBytes(payload)
}

// ============================================================================
//                              加密辅助函数
// ============================================================================

// encryptData 使用 AES-GCM 加密数据
func encryptData(plaintext, password []byte) ([]byte, error) {
	// 生成随机盐
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}

	// 派生密钥
	key := argon2.IDKey(password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	// 创建 AES-GCM
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	// 生成随机 nonce
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// 加密
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	// 组装结果：salt || nonce || ciphertext
	result := make([]byte, saltSize+nonceSize+len(ciphertext))
	copy(result[:saltSize], salt)
	copy(result[saltSize:saltSize+nonceSize], nonce)
	copy(result[saltSize+nonceSize:], ciphertext)

	return result, nil
}

// decryptData 使用 AES-GCM 解密数据
func decryptData(data, password []byte) ([]byte, error) {
	if len(data) < saltSize+nonceSize {
		return nil, ErrDecryptionFailed
	}

	// 解析数据
	salt := data[:saltSize]
	nonce := data[saltSize : saltSize+nonceSize]
	ciphertext := data[saltSize+nonceSize:]

	// 派生密钥
	key := argon2.IDKey(password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	// 创建 AES-GCM
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	// 解密
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// ============================================================================
//                              内存密钥存储
// ============================================================================

// MemKeystore 内存密钥存储
//
// 并发安全，适合测试和短生命周期进程。
type MemKeystore struct {
	mu   sync.RWMutex
	keys map[string]PrivateKey
}

// NewMemKeystore 创建内存密钥存储
func NewMemKeystore() *MemKeystore {
	return &MemKeystore{
		keys: make(map[string]PrivateKey),
	}
}

// Has 检查是否存在指定 ID 的密钥
func (ks *MemKeystore) Has(id string) (bool, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()

	_, ok := ks.keys[id]
	return ok, nil
}

// Put 存储密钥
func (ks *MemKeystore) Put(id string, key PrivateKey) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	if _, ok := ks.keys[id]; ok {
		return ErrKeyExists
	}
	ks.keys[id] = key
	return nil
}

// Get 获取密钥
func (ks *MemKeystore) Get(id string) (PrivateKey, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()

	key, ok := ks.keys[id]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return key, nil
}

// Delete 删除密钥
func (ks *MemKeystore) Delete(id string) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	if _, ok := ks.keys[id]; !ok {
		return ErrKeyNotFound
	}
	delete(ks.keys, id)
	return nil
}

// List 列出所有密钥 ID
func (ks *MemKeystore) List() ([]string, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()

	ids := make([]string, 0, len(ks.keys))
	for id := range ks.keys {
		ids = append(ids, id)
	}
	return ids, nil
}
