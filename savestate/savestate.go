// This file is part of mdcore.
//
// mdcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mdcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mdcore.  If not, see <https://www.gnu.org/licenses/>.

// Package savestate serializes and restores a Console's full state: the
// scheduler cycle counter and every component's RAM, registers and latches,
// per spec §6 "Save state". The encoding is a versioned, self-describing
// binary record so a mismatched version or length fails deserialization
// cleanly rather than corrupting a running core.
package savestate

import (
	"bytes"
	"encoding/binary"

	"github.com/mdcore/mdcore/curated"
)

// magic and version identify the record format. A version bump is required
// any time a field is added, removed or reordered.
const (
	magic          = "MDCR"
	version uint32 = 1
)

const (
	// ErrBadMagic is returned when the record doesn't begin with the
	// expected 4-byte magic, per spec §7 "State faults".
	ErrBadMagic = "savestate: not a valid record (bad magic)"
	// ErrVersionMismatch is returned for a record written by an
	// incompatible encoder version.
	ErrVersionMismatch = "savestate: version mismatch: record is v%d, this build supports v%d"
	// ErrLengthMismatch is returned when a region's declared length
	// doesn't match what the decoder expects to read.
	ErrLengthMismatch = "savestate: length mismatch reading %s: got %d bytes, want %d"
)

// Writer accumulates a record's fields in a fixed, documented order: magic,
// version, then one section per component.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter starts a new record, writing the magic and version header.
func NewWriter() *Writer {
	w := &Writer{}
	w.buf.WriteString(magic)
	binary.Write(&w.buf, binary.BigEndian, version)
	return w
}

// Bytes returns the completed record.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// WriteUint8/16/32/64 append a fixed-width field in big-endian order,
// matching the 68K bus's own byte order per spec §3.
func (w *Writer) WriteUint8(v uint8)   { w.buf.WriteByte(v) }
func (w *Writer) WriteUint16(v uint16) { binary.Write(&w.buf, binary.BigEndian, v) }
func (w *Writer) WriteUint32(v uint32) { binary.Write(&w.buf, binary.BigEndian, v) }
func (w *Writer) WriteUint64(v uint64) { binary.Write(&w.buf, binary.BigEndian, v) }
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// WriteBytes appends a length-prefixed byte region (a RAM array, for
// example), so the reader can validate its length without knowing the
// caller's fixed size in advance.
func (w *Writer) WriteBytes(b []byte) {
	binary.Write(&w.buf, binary.BigEndian, uint32(len(b)))
	w.buf.Write(b)
}

// Reader walks a record section by section, validating the header up
// front and returning a curated error for any malformed field per spec §7
// "State faults": "fail deserialization with a taxonomized reason."
type Reader struct {
	buf *bytes.Reader
	err error
}

// NewReader validates the magic and version header and returns a Reader
// positioned at the first component section.
func NewReader(data []byte) (*Reader, error) {
	if len(data) < len(magic)+4 {
		return nil, curated.Errorf(ErrBadMagic)
	}
	if string(data[:len(magic)]) != magic {
		return nil, curated.Errorf(ErrBadMagic)
	}
	gotVersion := binary.BigEndian.Uint32(data[len(magic):])
	if gotVersion != version {
		return nil, curated.Errorf(ErrVersionMismatch, gotVersion, version)
	}
	return &Reader{buf: bytes.NewReader(data[len(magic)+4:])}, nil
}

// Err returns the first error encountered by any Read call, if any - the
// caller should check this once after reading every section rather than
// after each individual field.
func (r *Reader) Err() error { return r.err }

func (r *Reader) ReadUint8() uint8 {
	if r.err != nil {
		return 0
	}
	b, err := r.buf.ReadByte()
	if err != nil {
		r.err = curated.Errorf("savestate: truncated record")
	}
	return b
}

func (r *Reader) ReadUint16() uint16 {
	var v uint16
	r.read(&v)
	return v
}

func (r *Reader) ReadUint32() uint32 {
	var v uint32
	r.read(&v)
	return v
}

func (r *Reader) ReadUint64() uint64 {
	var v uint64
	r.read(&v)
	return v
}

func (r *Reader) ReadBool() bool { return r.ReadUint8() != 0 }

func (r *Reader) read(v interface{}) {
	if r.err != nil {
		return
	}
	if err := binary.Read(r.buf, binary.BigEndian, v); err != nil {
		r.err = curated.Errorf("savestate: truncated record")
	}
}

// ReadBytes reads a length-prefixed region and validates it against want,
// the caller's fixed region size, per the ErrLengthMismatch taxonomy.
func (r *Reader) ReadBytes(name string, want int) []byte {
	if r.err != nil {
		return nil
	}
	var n uint32
	r.read(&n)
	if r.err != nil {
		return nil
	}
	if int(n) != want {
		r.err = curated.Errorf(ErrLengthMismatch, name, n, want)
		return nil
	}
	out := make([]byte, n)
	if _, err := r.buf.Read(out); err != nil {
		r.err = curated.Errorf(ErrLengthMismatch, name, 0, want)
		return nil
	}
	return out
}
