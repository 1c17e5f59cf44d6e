// Package endian provides the byte-order engine every persisted varind
// format writes through: dimension bitmaps, Frame-of-Reference blocks,
// databox cells, and flex.Multilist's block offset index. All of them
// persist explicit little-endian, independent of the host's native order,
// so this package never needs to probe or branch on host endianness —
// only to hand out a fixed, stateless engine value.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into one interface, satisfied by binary.LittleEndian and binary.BigEndian,
// so callers get both read/write and allocation-free append operations
// through a single value.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the engine every persisted format in this
// module uses.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine, for interoperating
// with external big-endian wire formats.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
