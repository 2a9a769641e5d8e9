package dna

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSequence(t *testing.T) {
	a := NewAnalyzer()
	require.NoError(t, a.LoadSequence("GAATTC"))
	assert.Equal(t, 6, a.Length())
	assert.Equal(t, "GAATTC", a.Sequence())
}

func TestLoadSequenceInvalidBase(t *testing.T) {
	a := NewAnalyzer()
	err := a.LoadSequence("GANTC")
	require.ErrorIs(t, err, ErrInvalidBase)
	assert.Equal(t, 0, a.Length(), "failed load must not leave partial state")
}

func TestLoadSequenceReplacesPrevious(t *testing.T) {
	a := NewAnalyzer()
	require.NoError(t, a.LoadSequence("GAATTC"))
	require.NoError(t, a.LoadSequence("ACGT"))
	assert.Equal(t, "ACGT", a.Sequence())
}

func TestFindPalindromes(t *testing.T) {
	a := NewAnalyzer()
	// GAATTC is the EcoRI recognition site, a classic 6-base palindrome.
	// Repeating it makes its windows recur so pattern mining surfaces them.
	require.NoError(t, a.LoadSequence(strings.Repeat("GAATTC", 3)))

	palindromes := a.FindPalindromes(6)
	require.NotEmpty(t, palindromes)

	var found *Palindrome
	for i := range palindromes {
		if palindromes[i].Sequence == "GAATTC" {
			found = &palindromes[i]
		}
	}
	require.NotNil(t, found, "expected GAATTC among %v", palindromes)
	assert.GreaterOrEqual(t, found.Count, 2)
}

func TestFindPalindromesRejectsNonPalindromic(t *testing.T) {
	a := NewAnalyzer()
	require.NoError(t, a.LoadSequence(strings.Repeat("GGGG", 3)))

	// GGGG recurs but G pairs with C, so no window is palindromic.
	assert.Empty(t, a.FindPalindromes(4))
}

func TestIsPalindromic(t *testing.T) {
	tests := []struct {
		name  string
		bases string
		want  bool
	}{
		{name: "EcoRI site", bases: "GAATTC", want: true},
		{name: "two-base pair", bases: "AT", want: true},
		{name: "four-base palindrome", bases: "AATT", want: true},
		{name: "mismatch", bases: "AAGT", want: false},
		{name: "same base run", bases: "GGGG", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPalindromic([]rune(tt.bases)))
		})
	}
}
