package habit

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"

	"golang.org/x/crypto/scrypt"
)

var (
	// ErrDecryptFailed is returned for a wrong passphrase or a tampered file.
	ErrDecryptFailed = errors.New("decryption failed: wrong passphrase or corrupted file")

	// ErrPassphraseNeeded is returned when an encrypted file is decoded
	// without a passphrase.
	ErrPassphraseNeeded = errors.New("file is encrypted: passphrase required")
)

const (
	scryptN   = 32768
	scryptR   = 8
	scryptP   = 1
	keyLength = 32
	saltSize  = 16
)

type encryptedEnvelope struct {
	Encrypted bool   `json:"encrypted"`
	Salt      string `json:"salt"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

// EncryptEnvelope wraps an exported payload with passphrase-derived
// AES-256-GCM encryption.
func EncryptEnvelope(payload []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	ciphertext := gcm.Seal(nil, nonce, payload, nil)
	wrapped := encryptedEnvelope{
		Encrypted: true,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(ciphertext),
	}
	return json.Marshal(wrapped)
}

// IsEncrypted sniffs whether data is an encrypted envelope wrapper.
func IsEncrypted(data []byte) bool {
	var probe struct {
		Encrypted bool `json:"encrypted"`
	}
	return json.Unmarshal(data, &probe) == nil && probe.Encrypted
}

// DecryptEnvelope unwraps an encrypted export back to the plain envelope
// payload.
func DecryptEnvelope(data []byte, passphrase string) ([]byte, error) {
	var wrapped encryptedEnvelope
	if err := json.Unmarshal(data, &wrapped); err != nil || !wrapped.Encrypted {
		return nil, ErrDecryptFailed
	}
	salt, err := base64.StdEncoding.DecodeString(wrapped.Salt)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	nonce, err := base64.StdEncoding.DecodeString(wrapped.Nonce)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	ciphertext, err := base64.StdEncoding.DecodeString(wrapped.Data)
	if err != nil {
		return nil, ErrDecryptFailed
	}

	key, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrDecryptFailed
	}
	payload, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return payload, nil
}
