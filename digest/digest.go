// Package digest produces cryptographic hashes of the VDP framebuffer and
// the combined YM2612/PSG sample stream, chained frame-to-frame so that a
// hash differing from a previously recorded value means something changed
// upstream of it. Used as the basis for regression tests comparing two runs
// of the same ROM, or two builds of the core against each other.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
package digest

// Digest implementations return a hex-encoded hash identifying the data fed
// to them since the last ResetDigest (for Audio, up to its last buffer
// flush).
type Digest interface {
	String() string
	ResetDigest()
}
