package lcp

// level1Flag marks bit_rep as a level-1 (raw-symbol) core rather than an
// upper-level (DCT-compressed) one. It occupies the top bit of the packed
// 64-bit representation, mirroring the C source's tagged-union layout.
const level1Flag = uint64(1) << 63

// Core is the unit of an LCP parse: a compact bit-representation plus the
// metadata needed to compare, rehash, and locate it in the original input.
//
// bitRep's interpretation is tagged by its top bit:
//   - set: a level-1 core. The bits below the flag are the label; bits
//     [6..62] hold the core's length minus two (the middle-run count for
//     RINT cores, 1 for LMIN/LMAX).
//   - clear: an upper-level core produced by DCT compression (compress.go).
//
// Core is a plain value: no heap indirection, safe to copy, safe to compare
// with ==... except callers should prefer Equal/Less/Greater below, since
// only bitRep participates in ordering (label/start/end are metadata).
type Core struct {
	BitSize uint32
	BitRep  uint64
	Label   uint32
	Start   uint64
	End     uint64
}

// IsLevel1 reports whether cr originated directly from raw symbols rather
// than from DCT-compressing a run of lower-level cores.
func (cr Core) IsLevel1() bool {
	return cr.BitRep&level1Flag != 0
}

// newCoreFromSymbols builds a level-1 core from a forward-coded window
// s[0:distance), anchored at absolute offsets [start, end). distance must be
// at least 3 (the minimum LMIN/LMAX span).
func newCoreFromSymbols(a *Alphabet, s []byte, distance uint64, start, end uint64) Core {
	return newCoreFromCoder(a.Code, s, distance, start, end)
}

// newCoreFromSymbolsRC is newCoreFromSymbols using the reverse-complement
// table, for the RC parser.
func newCoreFromSymbolsRC(a *Alphabet, s []byte, distance uint64, start, end uint64) Core {
	return newCoreFromCoder(a.RCCode, s, distance, start, end)
}

func newCoreFromCoder(code func(byte) int8, s []byte, distance uint64, start, end uint64) Core {
	label := uint32(distance-2)<<6 |
		uint32(code(s[0]))<<4 |
		uint32(code(s[distance-2]))<<2 |
		uint32(code(s[distance-1]))
	return Core{
		Label:   label,
		BitRep:  level1Flag | uint64(label),
		BitSize: uint32(2 * distance),
		Start:   start,
		End:     end,
	}
}

// newCoreFromChildren builds an upper-level core from a run of k >= 3
// already-parsed children, concatenating their bit-representations
// low-to-high and hashing their boundary labels into a fresh 32-bit label.
func newCoreFromChildren(children []Core) Core {
	first := children[0]
	last := children[len(children)-1]

	var bitSize uint32
	for _, c := range children {
		bitSize += c.BitSize
	}

	var bitRep uint64
	var index uint32
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		bitRep |= c.BitRep << index
		index += c.BitSize
	}
	bitRep &^= level1Flag
	if bitSize > 63 {
		bitSize = 63
	}

	k := uint64(len(children))
	secondLast := children[len(children)-2]
	label := murmurHash3_32Labels(first.Label, secondLast.Label, last.Label, uint32(k-2))

	return Core{
		Label:   label,
		BitRep:  bitRep,
		BitSize: bitSize,
		Start:   first.Start,
		End:     last.End,
	}
}

// newCoreExplicit builds a core from already-computed fields, used by
// deserialization.
func newCoreExplicit(bitSize uint32, bitRep uint64, label uint32, start, end uint64) Core {
	return Core{BitSize: bitSize, BitRep: bitRep, Label: label, Start: start, End: end}
}

// Equal, Less, Greater, LessOrEqual, GreaterOrEqual compare cores solely by
// bitRep. Label, start, and end are metadata the parsers never compare on.

func (cr Core) Equal(other Core) bool          { return cr.BitRep == other.BitRep }
func (cr Core) NotEqual(other Core) bool       { return cr.BitRep != other.BitRep }
func (cr Core) Less(other Core) bool           { return cr.BitRep < other.BitRep }
func (cr Core) Greater(other Core) bool        { return cr.BitRep > other.BitRep }
func (cr Core) LessOrEqual(other Core) bool    { return cr.BitRep <= other.BitRep }
func (cr Core) GreaterOrEqual(other Core) bool { return cr.BitRep >= other.BitRep }
