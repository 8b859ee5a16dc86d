package lcp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAlphabetCodes(t *testing.T) {
	assert.EqualValues(t, 0, DefaultAlphabet.Code('A'))
	assert.EqualValues(t, 1, DefaultAlphabet.Code('C'))
	assert.EqualValues(t, 2, DefaultAlphabet.Code('G'))
	assert.EqualValues(t, 3, DefaultAlphabet.Code('T'))
	assert.EqualValues(t, 0, DefaultAlphabet.Code('a'))
	assert.EqualValues(t, invalidCode, DefaultAlphabet.Code('N'))
	assert.EqualValues(t, invalidCode, DefaultAlphabet.Code(200))
}

func TestDefaultAlphabetRCCodes(t *testing.T) {
	assert.EqualValues(t, 3, DefaultAlphabet.RCCode('A'))
	assert.EqualValues(t, 2, DefaultAlphabet.RCCode('C'))
	assert.EqualValues(t, 1, DefaultAlphabet.RCCode('G'))
	assert.EqualValues(t, 0, DefaultAlphabet.RCCode('T'))
}

func TestParseAlphabetFile(t *testing.T) {
	src := "A 0 3\nC 1 2\nG 2 1\nT 3 0\n"
	a, err := parseAlphabetFile(strings.NewReader(src))
	require.NoError(t, err)

	assert.EqualValues(t, 0, a.Code('A'))
	assert.EqualValues(t, 3, a.RCCode('A'))
	assert.EqualValues(t, invalidCode, a.Code('N'))
}

func TestParseAlphabetFileIgnoresBlankLines(t *testing.T) {
	src := "A 0 3\n\nC 1 2\n\n"
	a, err := parseAlphabetFile(strings.NewReader(src))
	require.NoError(t, err)
	assert.EqualValues(t, 1, a.Code('C'))
}

func TestParseAlphabetFileRejectsWideCodes(t *testing.T) {
	src := "A 0 3\nC 7 2\n"
	_, err := parseAlphabetFile(strings.NewReader(src))
	require.Error(t, err)

	var lcpErr *Error
	require.ErrorAs(t, err, &lcpErr)
	assert.Equal(t, BadEncoding, lcpErr.Kind)
}

func TestParseAlphabetFileRejectsMalformedLine(t *testing.T) {
	_, err := parseAlphabetFile(strings.NewReader("AB 0 3\n"))
	require.Error(t, err)

	var lcpErr *Error
	require.ErrorAs(t, err, &lcpErr)
	assert.Equal(t, BadEncoding, lcpErr.Kind)
}

func TestParseAlphabetFileRejectsNarrowCodes(t *testing.T) {
	// max code is 1, needing only a single bit: must be rejected just like
	// a too-wide code, since the width has to be exactly two bits.
	src := "A 0 1\nC 1 0\n"
	_, err := parseAlphabetFile(strings.NewReader(src))
	require.Error(t, err)

	var lcpErr *Error
	require.ErrorAs(t, err, &lcpErr)
	assert.Equal(t, BadEncoding, lcpErr.Kind)
}

func TestParseAlphabetFileRejectsEmptyInput(t *testing.T) {
	_, err := parseAlphabetFile(strings.NewReader(""))
	require.Error(t, err)

	var lcpErr *Error
	require.ErrorAs(t, err, &lcpErr)
	assert.Equal(t, BadEncoding, lcpErr.Kind)
}
