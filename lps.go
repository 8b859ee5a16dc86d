package lcp

// constantFactor is the estimated symbols-per-core ratio used to size the
// initial core buffer (len/constantFactor cores).
const constantFactor = 1.5

// dctIterationCount is the number of right-to-left DCT passes run per
// deepening.
const dctIterationCount = 1

// LPS ("locally consistent parse") owns the ordered sequence of cores
// produced at Level. It is created by one of the New* constructors and
// advanced in place by DeepenOnce/DeepenTo.
type LPS struct {
	Level int
	Cores []Core
}

func estimatedCapacity(n int) int {
	c := int(float64(n) / constantFactor)
	if c < 1 {
		c = 1
	}
	return c
}

// New parses seq with the default alphabet, starting at absolute offset 0.
func New(seq []byte) *LPS {
	return NewOffset(seq, 0)
}

// NewOffset parses seq with the default alphabet, shifting every core's
// start/end by offset so callers can parse a sub-window of a larger
// sequence while keeping absolute coordinates.
func NewOffset(seq []byte, offset uint64) *LPS {
	return NewOffsetWithAlphabet(seq, offset, DefaultAlphabet)
}

// NewWithAlphabet is New using a caller-supplied alphabet instead of the
// process-wide default.
func NewWithAlphabet(seq []byte, a *Alphabet) *LPS {
	return NewOffsetWithAlphabet(seq, 0, a)
}

// NewOffsetWithAlphabet is NewOffset using a caller-supplied alphabet.
func NewOffsetWithAlphabet(seq []byte, offset uint64, a *Alphabet) *LPS {
	cores := make([]Core, 0, estimatedCapacity(len(seq)))
	cores = parseLevel1(a, seq, offset, cores)
	return &LPS{Level: 1, Cores: cores}
}

// NewRC parses seq with the reverse-complement variant of the default
// alphabet: the sequence is reversed first, then scanned with the RC
// table.
func NewRC(seq []byte) *LPS {
	return NewRCWithAlphabet(seq, DefaultAlphabet)
}

// NewRCWithAlphabet is NewRC using a caller-supplied alphabet.
func NewRCWithAlphabet(seq []byte, a *Alphabet) *LPS {
	rev := make([]byte, len(seq))
	for i, b := range seq {
		rev[len(seq)-1-i] = b
	}
	cores := make([]Core, 0, estimatedCapacity(len(seq)))
	cores = parseLevel1RC(a, rev, 0, cores)
	return &LPS{Level: 1, Cores: cores}
}

// dct runs dctIterationCount right-to-left compression passes over cores in
// place. Each pass must process from the rightmost pair to the leftmost so
// that core i is always compressed against core i-1's not-yet-rewritten
// value.
func dct(cores []Core) bool {
	if len(cores) < dctIterationCount+1 {
		return false
	}
	for dctIndex := 0; dctIndex < dctIterationCount; dctIndex++ {
		for i := len(cores) - 2; i >= dctIndex; i-- {
			compress(&cores[i], &cores[i+1])
		}
	}
	return true
}

// DeepenOnce advances the parse by exactly one level: it DCT-compresses the
// current cores and re-parses the compressed stream. It reports whether
// deepening actually progressed (false means the parse had fewer than two
// cores and is now empty at the incremented level).
func (l *LPS) DeepenOnce() bool {
	if !dct(l.Cores) {
		l.Cores = nil
		l.Level++
		return false
	}

	// positions [0, dctIterationCount) were consumed by compression and are
	// not valid emission starting points at the next level.
	next := parseLevelN(l.Cores[dctIterationCount:], make([]Core, 0, estimatedCapacity(len(l.Cores))))
	l.Cores = next
	l.Level++
	return true
}

// DeepenTo repeatedly calls DeepenOnce until level reaches target or no
// further progress is possible. It returns false without modifying the
// parse if target is at or below the current level.
func (l *LPS) DeepenTo(target int) bool {
	if target <= l.Level {
		return false
	}
	for l.Level < target && l.DeepenOnce() {
	}
	return true
}

// Equal reports whether l and other hold the same ordered sequence of
// cores (compared by BitRep only), ignoring Level. Most callers will also
// want to compare Level directly.
func (l *LPS) Equal(other *LPS) bool {
	if len(l.Cores) != len(other.Cores) {
		return false
	}
	for i := range l.Cores {
		if l.Cores[i].NotEqual(other.Cores[i]) {
			return false
		}
	}
	return true
}
