// Package dna detects palindromic DNA sequences using an alternating cycle.
// Orientation 0 stands for the forward strand and orientation 1 for the
// complementary strand, so strand membership alternates base by base around
// the ring exactly as pattern mining needs it.
package dna

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mobiusdev/altercycle"
)

// ErrInvalidBase indicates a sequence contained a character outside ACGT.
var ErrInvalidBase = errors.New("invalid DNA base")

// complement maps each base to its Watson-Crick pair.
var complement = map[rune]rune{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}

// Palindrome is a recurring window that reads the same on both strands under
// base-pair complementarity.
type Palindrome struct {
	Sequence string
	Count    int
}

// Analyzer loads DNA sequences into a cycle and mines them for palindromes.
type Analyzer struct {
	sequence *altercycle.Cycle[string]
}

// NewAnalyzer creates an analyzer with no sequence loaded.
func NewAnalyzer() *Analyzer {
	return &Analyzer{sequence: altercycle.New[string]()}
}

// LoadSequence replaces the analyzer's contents with the given sequence,
// appending one base per node with its position and complement as metadata.
func (a *Analyzer) LoadSequence(sequence string) error {
	cycle := altercycle.New[string]()
	for i, base := range sequence {
		comp, ok := complement[base]
		if !ok {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidBase, base, i)
		}
		cycle.Append(string(base), map[string]any{
			"position":   i,
			"complement": string(comp),
		})
	}
	a.sequence = cycle
	return nil
}

// Length returns the number of loaded bases.
func (a *Analyzer) Length() int {
	return a.sequence.Size()
}

// Sequence returns the loaded bases in order.
func (a *Analyzer) Sequence() string {
	var b strings.Builder
	for base := range a.sequence.All() {
		b.WriteString(base)
	}
	return b.String()
}

// FindPalindromes returns every recurring window of minLength bases whose
// bases pair with themselves read backwards (GAATTC-style palindromes),
// together with how often the window occurs.
func (a *Analyzer) FindPalindromes(minLength int) []Palindrome {
	var palindromes []Palindrome
	for _, pattern := range a.sequence.FindPatterns(minLength) {
		bases := make([]rune, 0, len(pattern.Window))
		for _, pair := range pattern.Window {
			bases = append(bases, []rune(pair.Value)[0])
		}
		if isPalindromic(bases) {
			palindromes = append(palindromes, Palindrome{
				Sequence: string(bases),
				Count:    pattern.Count,
			})
		}
	}
	return palindromes
}

// isPalindromic reports whether the bases complement their own reversal.
func isPalindromic(bases []rune) bool {
	for i := 0; i < len(bases)/2; i++ {
		if complement[bases[i]] != bases[len(bases)-1-i] {
			return false
		}
	}
	return true
}
