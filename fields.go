package icu

import (
	"encoding/binary"

	"github.com/dloidolt/plato-rdcu/internal/shape"
)

// readField reads sample index i's field f out of buf, a big-endian byte
// buffer laid out as consecutive records per d.
func readField(buf []byte, d shape.Descriptor, i int, f shape.Field) uint64 {
	off := i*d.Size + f.Offset
	switch f.Width {
	case 8:
		return uint64(buf[off])
	case 16:
		return uint64(binary.BigEndian.Uint16(buf[off:]))
	case 32:
		return uint64(binary.BigEndian.Uint32(buf[off:]))
	default:
		panic("icu: unsupported field width")
	}
}

// writeField writes v into sample index i's field f within buf.
func writeField(buf []byte, d shape.Descriptor, i int, f shape.Field, v uint64) {
	off := i*d.Size + f.Offset
	switch f.Width {
	case 8:
		buf[off] = byte(v)
	case 16:
		binary.BigEndian.PutUint16(buf[off:], uint16(v))
	case 32:
		binary.BigEndian.PutUint32(buf[off:], uint32(v))
	default:
		panic("icu: unsupported field width")
	}
}

// fieldColumn extracts field f's value across all samples into a freshly
// sized column slice owned by the caller (out must have length samples).
func fieldColumn(out []uint64, buf []byte, d shape.Descriptor, f shape.Field, samples int) {
	for i := 0; i < samples; i++ {
		out[i] = readField(buf, d, i, f)
	}
}

// writeFieldColumn writes col back into buf's field f across all samples.
func writeFieldColumn(buf []byte, d shape.Descriptor, f shape.Field, col []uint64, samples int) {
	for i := 0; i < samples; i++ {
		writeField(buf, d, i, f, col[i])
	}
}
