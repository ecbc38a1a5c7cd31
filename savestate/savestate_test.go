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

package savestate

import "testing"

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(0x12)
	w.WriteUint16(0x3456)
	w.WriteUint32(0x789ABCDE)
	w.WriteUint64(0x0102030405060708)
	w.WriteBool(true)
	w.WriteBytes([]byte{1, 2, 3, 4})

	r, err := NewReader(w.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if got := r.ReadUint8(); got != 0x12 {
		t.Fatalf("ReadUint8 = %#x", got)
	}
	if got := r.ReadUint16(); got != 0x3456 {
		t.Fatalf("ReadUint16 = %#x", got)
	}
	if got := r.ReadUint32(); got != 0x789ABCDE {
		t.Fatalf("ReadUint32 = %#x", got)
	}
	if got := r.ReadUint64(); got != 0x0102030405060708 {
		t.Fatalf("ReadUint64 = %#x", got)
	}
	if got := r.ReadBool(); !got {
		t.Fatal("ReadBool = false, want true")
	}
	if got := r.ReadBytes("test", 4); string(got) != string([]byte{1, 2, 3, 4}) {
		t.Fatalf("ReadBytes = %v", got)
	}
	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
}

func TestReaderRejectsBadMagic(t *testing.T) {
	if _, err := NewReader([]byte("xxxx")); err == nil {
		t.Fatal("expected an error for bad magic")
	}
}

func TestReaderRejectsVersionMismatch(t *testing.T) {
	w := NewWriter()
	data := w.Bytes()
	data[4] = 0xFF // corrupt the version field
	if _, err := NewReader(data); err == nil {
		t.Fatal("expected an error for a version mismatch")
	}
}

func TestReaderRejectsLengthMismatch(t *testing.T) {
	w := NewWriter()
	w.WriteBytes([]byte{1, 2, 3})
	r, err := NewReader(w.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	r.ReadBytes("test", 99)
	if r.Err() == nil {
		t.Fatal("expected a length-mismatch error")
	}
}
