package models

// SealRequest asks for a plaintext credential to be encrypted under a
// master passphrase. Neither field is retained after the call.
type SealRequest struct {
	Plaintext  string
	Passphrase string
}

// OpenRequest asks for a stored envelope to be decrypted with a master
// passphrase.
type OpenRequest struct {
	Envelope   string
	Passphrase string
}
