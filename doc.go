// Package lcp implements Locally Consistent Parsing (LCP), a hierarchical,
// deterministic decomposition of a symbol sequence (primarily DNA over
// {A,C,G,T}) into variable-length segments called cores.
//
// # Overview
//
// At level 1, the sequence is segmented by a local rule (LMIN/LMAX/RINT,
// connected by an SSEQ fallback) that looks at a constant-size window.
// Level ℓ+1 is obtained by deterministic coin-tossing (DCT) compression of
// level-ℓ cores followed by the same local rule applied to the compressed
// stream. Identical substrings produce identical cores at every level
// regardless of where they occur, given enough surrounding context. This
// is useful for indexing, sketching, and alignment-free comparison of
// biological sequences at any resolution.
//
// # When to Use LCP
//
//   - Indexing long genomic sequences by position-stable anchors
//   - Comparing sequences without alignment, at a chosen granularity
//   - Building multi-resolution sketches of DNA/RNA
//
// # Basic Usage
//
//	parse := lcp.New([]byte("GGGACCTGGTGACCCCAGCCCACGACAGCC"))
//	parse.DeepenTo(3)
//
//	var buf bytes.Buffer
//	parse.WriteTo(&buf)
//
//	var restored lcp.LPS
//	restored.ReadFrom(&buf)
//
// # Chunked Input
//
// For sequences too large to parse in one pass, NewChunked splits the
// input into overlapping windows and stitches the per-window results back
// into the same sequence a single-pass parse would produce.
//
//	parse, err := lcp.NewChunked(sequence, 7, 100000)
//
// # Reverse Complement
//
// NewRC parses a sequence with the reverse-complement alphabet, yielding
// the same cores a forward parse of the sequence's reverse complement
// would. Core start/end are positions along the reversed sequence; they
// are not mapped back to the input's own coordinates.
package lcp
