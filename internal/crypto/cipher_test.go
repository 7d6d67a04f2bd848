package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func TestAESCBC_KnownAnswer(t *testing.T) {
	// NIST SP 800-38A F.2.5, CBC-AES256, first block.
	key := mustHex(t, "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4")
	iv := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	plain := mustHex(t, "6bc1bee22e409f96e93d7e117393172a")
	want := mustHex(t, "f58c4c04d6e5f1ba779eabfb5f7bfbd6")

	ct, err := NewAESCBC().Encrypt(plain, key, iv)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	// A full padding block follows the aligned plaintext.
	if len(ct) != 32 {
		t.Fatalf("ciphertext length = %d, want 32", len(ct))
	}
	if !bytes.Equal(ct[:16], want) {
		t.Fatalf("first block = %x, want %x", ct[:16], want)
	}
}

func TestAESCBC_RoundTrip(t *testing.T) {
	c := NewAESCBC()
	key := bytes.Repeat([]byte{0x2A}, KeySize)
	iv := bytes.Repeat([]byte{0x01}, IVSize)

	for _, n := range []int{0, 1, 15, 16, 17, 100} {
		plain := bytes.Repeat([]byte{'x'}, n)

		ct, err := c.Encrypt(plain, key, iv)
		if err != nil {
			t.Fatalf("Encrypt(len=%d) error: %v", n, err)
		}
		if len(ct)%16 != 0 || len(ct) <= n {
			t.Fatalf("Encrypt(len=%d): ciphertext length %d", n, len(ct))
		}

		got, err := c.Decrypt(ct, key, iv)
		if err != nil {
			t.Fatalf("Decrypt(len=%d) error: %v", n, err)
		}
		if !bytes.Equal(got, plain) {
			t.Fatalf("Decrypt(len=%d) mismatch", n)
		}
	}
}

func TestAESCBC_DecryptDoesNotModifyInput(t *testing.T) {
	c := NewAESCBC()
	key := bytes.Repeat([]byte{0x2A}, KeySize)
	iv := bytes.Repeat([]byte{0x01}, IVSize)

	ct, _ := c.Encrypt([]byte("secret"), key, iv)
	before := append([]byte(nil), ct...)

	if _, err := c.Decrypt(ct, key, iv); err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(ct, before) {
		t.Fatalf("Decrypt modified its input")
	}
}

func TestAESCBC_DecryptRejectsMisalignedCiphertext(t *testing.T) {
	c := NewAESCBC()
	key := bytes.Repeat([]byte{0x2A}, KeySize)
	iv := bytes.Repeat([]byte{0x01}, IVSize)

	for _, n := range []int{0, 1, 15, 17} {
		_, err := c.Decrypt(make([]byte, n), key, iv)
		if !errors.Is(err, ErrDecryption) {
			t.Fatalf("Decrypt(len=%d): expected ErrDecryption, got %v", n, err)
		}
	}
}

func TestAESCBC_InvalidKeyAndIVSizes(t *testing.T) {
	c := NewAESCBC()

	_, err := c.Encrypt([]byte("x"), make([]byte, 16), make([]byte, IVSize))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short key: expected ErrInvalidInput, got %v", err)
	}

	_, err = c.Encrypt([]byte("x"), make([]byte, KeySize), make([]byte, 8))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short iv: expected ErrInvalidInput, got %v", err)
	}
}

func TestPKCS7Unpad(t *testing.T) {
	valid := append(bytes.Repeat([]byte{'a'}, 13), 3, 3, 3)

	tests := []struct {
		name    string
		data    []byte
		want    []byte
		wantErr bool
	}{
		{name: "valid", data: valid, want: bytes.Repeat([]byte{'a'}, 13)},
		{name: "full block", data: bytes.Repeat([]byte{16}, 16), want: []byte{}},
		{name: "zero pad byte", data: append(bytes.Repeat([]byte{'a'}, 15), 0), wantErr: true},
		{name: "pad too large", data: append(bytes.Repeat([]byte{'a'}, 15), 17), wantErr: true},
		{name: "inconsistent pad", data: append(bytes.Repeat([]byte{'a'}, 13), 2, 3, 3), wantErr: true},
		{name: "empty", data: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pkcs7Unpad(tt.data, 16)
			if tt.wantErr {
				if !errors.Is(err, ErrDecryption) {
					t.Fatalf("expected ErrDecryption, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}
