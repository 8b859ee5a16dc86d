package lcp

// NewChunked parses seq to level in chunks of roughly chunkSize symbols,
// stitching the chunk results back into a single sequence equivalent to a
// single-pass parse (property P4). It exists so arbitrarily long inputs
// never need their whole symbol buffer and an entire level-1 core buffer
// live in memory across one parse call.
//
// Each chunk is deepened independently with its own absolute offset, then
// merged against the accumulated output by matching on core.Start: the two
// trailing cores of the previous chunk are recomputed in the next chunk's
// leading window, and the overlap is dropped once found.
func NewChunked(seq []byte, level int, chunkSize int) (*LPS, error) {
	return NewChunkedWithAlphabet(seq, level, chunkSize, DefaultAlphabet)
}

// NewChunkedWithAlphabet is NewChunked using a caller-supplied alphabet.
func NewChunkedWithAlphabet(seq []byte, level int, chunkSize int, a *Alphabet) (*LPS, error) {
	if level < 1 {
		return nil, errorf(BadInput, "level must be >= 1, got %d", level)
	}
	if chunkSize < 3 {
		return nil, errorf(BadInput, "chunk size must be >= 3, got %d", chunkSize)
	}

	n := len(seq)
	estimated := n
	for i := 0; i < level; i++ {
		estimated = estimatedCapacity(estimated)
	}
	out := &LPS{Level: 1, Cores: make([]Core, 0, estimated)}

	strIndex := 0

	// Process chunk 0 and seed the merge loop.
	{
		strLen := min(chunkSize, n)
		chunk := NewOffsetWithAlphabet(seq[:strLen], 0, a)
		chunk.DeepenTo(level)

		if len(chunk.Cores) > 0 {
			out.Cores = append(out.Cores, chunk.Cores...)
			if len(chunk.Cores) > 1 {
				strIndex = int(out.Cores[len(out.Cores)-2].Start)
			} else {
				strIndex = int(out.Cores[len(out.Cores)-1].Start)
			}
		}
	}

	for strIndex < n {
		strLen := min(chunkSize, n-strIndex)
		chunk := NewOffsetWithAlphabet(seq[strIndex:strIndex+strLen], uint64(strIndex), a)
		chunk.DeepenTo(level)

		advanced := false
		if len(chunk.Cores) > 1 {
			overlap := min(2, len(out.Cores))
			for overlap > 0 {
				if out.Cores[len(out.Cores)-overlap].Start == chunk.Cores[0].Start {
					break
				}
				overlap--
			}
			out.Cores = append(out.Cores, chunk.Cores[overlap:]...)

			if len(out.Cores) >= 2 && uint64(strIndex) < out.Cores[len(out.Cores)-2].Start {
				strIndex = int(out.Cores[len(out.Cores)-2].Start)
				advanced = true
			}
		}
		if advanced {
			continue
		}

		// No progress from the merge: scan backwards for the last invalid
		// symbol in this window and resume one past it. If every symbol in
		// the window is valid, no core can start here either, so skip the
		// whole window. Known weakness: a pathological all-valid-alphabet
		// input can in principle skip a core straddling the boundary (see
		// DESIGN.md).
		found := false
		for i := strIndex + strLen - 1; i >= strIndex; i-- {
			if a.Code(seq[i]) == invalidCode {
				strIndex = i + 1
				found = true
				break
			}
		}
		if !found {
			strIndex += strLen
		}
	}

	out.Level = level
	return out, nil
}
