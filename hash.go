package lcp

import "encoding/binary"

// murmurHash3_32 is a direct translation of the 32-bit MurmurHash3
// (block/tail/fmix32 finalizer) used to fingerprint upper-level core
// labels. Hand-rolled rather than imported: its exact byte-for-byte output
// for a fixed seed is load-bearing, and this is the only hash call in the
// package, always over a fixed 16-byte key.
func murmurHash3_32(key []byte, seed uint32) uint32 {
	const c1 = 0xcc9e2d51
	const c2 = 0x1b873593

	h1 := seed
	nblocks := len(key) / 4

	for i := 0; i < nblocks; i++ {
		k1 := binary.LittleEndian.Uint32(key[i*4 : i*4+4])
		k1 *= c1
		k1 = (k1 << 15) | (k1 >> 17)
		k1 *= c2

		h1 ^= k1
		h1 = (h1 << 13) | (h1 >> 19)
		h1 = h1*5 + 0xe6546b64
	}

	tail := key[nblocks*4:]
	var k1 uint32
	switch len(tail) {
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		k1 *= c1
		k1 = (k1 << 15) | (k1 >> 17)
		k1 *= c2
		h1 ^= k1
	}

	h1 ^= uint32(len(key))

	// fmix32
	h1 ^= h1 >> 16
	h1 *= 0x85ebca6b
	h1 ^= h1 >> 13
	h1 *= 0xc2b2ae35
	h1 ^= h1 >> 16

	return h1
}

// murmurHash3_32Labels hashes the four-uint32 tuple the upper-level core
// constructor labels itself with: the first child's label, the
// second-to-last child's label, the last child's label, and the child-count
// minus two.
func murmurHash3_32Labels(first, secondLast, last, countMinus2 uint32) uint32 {
	var key [16]byte
	binary.LittleEndian.PutUint32(key[0:4], first)
	binary.LittleEndian.PutUint32(key[4:8], secondLast)
	binary.LittleEndian.PutUint32(key[8:12], last)
	binary.LittleEndian.PutUint32(key[12:16], countMinus2)
	return murmurHash3_32(key[:], 42)
}
