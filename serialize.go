package lcp

import (
	"bytes"
	"encoding/binary"
	"io"
)

// coreRecordSize is the fixed width of one serialized core: u32 bit_size,
// u64 bit_rep, u32 label, u64 start, u64 end.
const coreRecordSize = 4 + 8 + 4 + 8 + 8

// WriteTo serializes l as little-endian int32 level, int32 size, then size
// fixed-width core records, with no magic header.
func (l *LPS) WriteTo(w io.Writer) (int64, error) {
	var n int64
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(l.Level))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(l.Cores)))
	nn, err := w.Write(hdr[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}

	buf := make([]byte, coreRecordSize)
	for _, c := range l.Cores {
		binary.LittleEndian.PutUint32(buf[0:4], c.BitSize)
		binary.LittleEndian.PutUint64(buf[4:12], c.BitRep)
		binary.LittleEndian.PutUint32(buf[12:16], c.Label)
		binary.LittleEndian.PutUint64(buf[16:24], c.Start)
		binary.LittleEndian.PutUint64(buf[24:32], c.End)
		nn, err := w.Write(buf)
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ReadFrom deserializes an LPS written by WriteTo. A short read at any
// point is fatal and reported as a BadStream error.
func (l *LPS) ReadFrom(r io.Reader) (int64, error) {
	var n int64
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return n, errorf(BadStream, "reading level/size header: %v", err)
	}
	n += 8
	level := int32(binary.LittleEndian.Uint32(hdr[0:4]))
	size := int32(binary.LittleEndian.Uint32(hdr[4:8]))
	if size < 0 {
		return n, errorf(BadStream, "negative core count %d", size)
	}

	l.Level = int(level)
	if size == 0 {
		l.Cores = nil
		return n, nil
	}

	l.Cores = make([]Core, size)
	buf := make([]byte, coreRecordSize)
	for i := range l.Cores {
		if _, err := io.ReadFull(r, buf); err != nil {
			return n, errorf(BadStream, "reading core %d: %v", i, err)
		}
		n += int64(coreRecordSize)
		l.Cores[i] = newCoreExplicit(
			binary.LittleEndian.Uint32(buf[0:4]),
			binary.LittleEndian.Uint64(buf[4:12]),
			binary.LittleEndian.Uint32(buf[12:16]),
			binary.LittleEndian.Uint64(buf[16:24]),
			binary.LittleEndian.Uint64(buf[24:32]),
		)
	}
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (l *LPS) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := l.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (l *LPS) UnmarshalBinary(data []byte) error {
	_, err := l.ReadFrom(bytes.NewReader(data))
	return err
}
