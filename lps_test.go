package lcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSequence = "GGGACCTGGTGACCCCAGCCCACGACAGCCAAGCGCCAGCTGAGCTCAGGTGTGAGGAGATCACAGTCCT"

func TestNewLevel1CoreCount(t *testing.T) {
	parse := New([]byte(sampleSequence))
	require.Len(t, parse.Cores, 31)

	first := parse.Cores[0]
	assert.Equal(t, uint64(0x8000000000000061), first.BitRep)
	assert.EqualValues(t, 6, first.BitSize)
	assert.EqualValues(t, 0x61, first.Label)

	last := parse.Cores[30]
	assert.Equal(t, uint64(0x80000000000000b7), last.BitRep)
	assert.EqualValues(t, 8, last.BitSize)
}

func TestDeepenToLevel2(t *testing.T) {
	parse := New([]byte(sampleSequence))
	require.True(t, parse.DeepenTo(2))
	require.Len(t, parse.Cores, 12)

	assert.Equal(t, uint64(0b110001), parse.Cores[0].BitRep)
	assert.EqualValues(t, 6, parse.Cores[0].BitSize)

	sixth := parse.Cores[5]
	assert.Equal(t, uint64(0b1011101), sixth.BitRep)
	assert.EqualValues(t, 7, sixth.BitSize)
}

func TestDeepenToLevel3(t *testing.T) {
	parse := New([]byte(sampleSequence))
	require.True(t, parse.DeepenTo(3))
	require.Len(t, parse.Cores, 4)

	assert.Equal(t, uint64(0b110011), parse.Cores[0].BitRep)
	assert.EqualValues(t, 6, parse.Cores[0].BitSize)

	fourth := parse.Cores[3]
	assert.Equal(t, uint64(0b110000101), fourth.BitRep)
	assert.EqualValues(t, 9, fourth.BitSize)
}

func TestDeepenToBelowCurrentLevelIsNoop(t *testing.T) {
	parse := New([]byte(sampleSequence))
	require.True(t, parse.DeepenTo(3))
	cores := append([]Core(nil), parse.Cores...)
	level := parse.Level

	progressed := parse.DeepenTo(2)

	assert.False(t, progressed)
	assert.Equal(t, level, parse.Level)
	assert.Equal(t, cores, parse.Cores)
}

func TestDeepenToSameLevelIsNoop(t *testing.T) {
	parse := New([]byte(sampleSequence))
	require.True(t, parse.DeepenTo(3))

	progressed := parse.DeepenTo(3)

	assert.False(t, progressed)
}

func TestNewRCMatchesForwardParseOfMatchedPair(t *testing.T) {
	rcInput := "AGGACTgtgatCTCCTCACACCTGAGCTCAGCTGGCGCTTGGCTGTCGtGggCTGGGGTCAccAGGTCCC"
	rcParse := NewRC([]byte(rcInput))
	fwdParse := New([]byte(sampleSequence))

	require.Len(t, rcParse.Cores, 31)
	assert.True(t, rcParse.Equal(fwdParse))
}

func TestEqualIgnoresLevelButComparesCores(t *testing.T) {
	a := New([]byte(sampleSequence))
	b := New([]byte(sampleSequence))
	require.True(t, a.DeepenTo(2))

	assert.False(t, a.Equal(b))
	assert.True(t, b.Equal(b))
}

func TestDeepenOnceOnTinyInputHasNoProgress(t *testing.T) {
	parse := New([]byte("AC"))
	progressed := parse.DeepenOnce()

	assert.False(t, progressed)
	assert.Empty(t, parse.Cores)
	assert.Equal(t, 2, parse.Level)
}

// findCoreWithContext returns the first core in cores with at least margin
// symbols of context on both sides of the full sequence of length n.
func findCoreWithContext(cores []Core, n, margin int) (Core, bool) {
	for _, c := range cores {
		if int(c.Start) >= margin && int(c.End)+margin <= n {
			return c, true
		}
	}
	return Core{}, false
}

func TestPositionStabilityWithTwoSymbolsOfContext(t *testing.T) {
	full := New([]byte(sampleSequence))
	target, found := findCoreWithContext(full.Cores, len(sampleSequence), 2)
	require.True(t, found, "expected some core with 2 symbols of context on both sides")

	a := int(target.Start) - 2
	b := int(target.End) + 2
	window := NewOffset([]byte(sampleSequence[a:b]), uint64(a))

	assert.Contains(t, window.Cores, target)
}

func TestNegativeBoundaryTrimmedSpanYieldsNoEqualCore(t *testing.T) {
	full := New([]byte(sampleSequence))
	target, found := findCoreWithContext(full.Cores, len(sampleSequence), 2)
	require.True(t, found, "expected some core with 2 symbols of context on both sides")

	p, q := int(target.Start), int(target.End)

	// s[p+1..q) and s[p..q-1) each drop one symbol from the core's own
	// span, so the core itself can no longer be produced at all.
	droppedFirst := NewOffset([]byte(sampleSequence[p+1:q]), uint64(p+1))
	droppedLast := NewOffset([]byte(sampleSequence[p:q-1]), uint64(p))

	assert.NotContains(t, droppedFirst.Cores, target)
	assert.NotContains(t, droppedLast.Cores, target)
}
