package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver stretches a low-entropy master passphrase into a fixed-length
// symmetric key.
//
// Derive must be deterministic: the same passphrase and salt always yield
// the same key, otherwise a stored envelope could never be opened again.
type KeyDeriver interface {
	// Derive returns a [KeySize]-byte key for passphrase and salt.
	// An empty salt is rejected with [ErrInvalidInput].
	Derive(passphrase string, salt []byte) ([]byte, error)
}

// RandomSource produces cryptographically secure random bytes. It backs
// salts, IVs, and password generation and must never be a plain PRNG.
type RandomSource interface {
	// Bytes returns n fresh random bytes. n must be positive.
	Bytes(n int) ([]byte, error)
}

// BlockCipher encrypts and decrypts raw bytes with an explicit key and IV.
//
// The default implementation is AES-256-CBC with PKCS#7 padding, which
// provides confidentiality only. A successful Decrypt is not proof that
// the key was correct.
type BlockCipher interface {
	// Encrypt pads plaintext and encrypts it under key and iv.
	Encrypt(plaintext, key, iv []byte) ([]byte, error)

	// Decrypt reverses Encrypt. It returns [ErrDecryption] when the
	// ciphertext is not block-aligned or its padding is invalid.
	Decrypt(ciphertext, key, iv []byte) ([]byte, error)
}
