package crypto

// Zero overwrites b with zeros. Used on derived keys and plaintext buffers
// once an operation no longer needs them.
func Zero(b []byte) {
	clear(b)
}
