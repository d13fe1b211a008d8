package longread

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestBandedEditDistanceIdentical(t *testing.T) {
	s := "ACGTACGTACGT"
	d := FiniteScore(0)
	got := BandedEditDistance(s, s, 5)
	v, ok := got.Finite()
	expect.True(t, ok)
	expect.EQ(t, v, uint32(0))
	expect.EQ(t, got, d)
}

func TestBandedEditDistanceIsSymmetric(t *testing.T) {
	a, b := "ACGTACGT", "ACGAACCT"
	d1 := BandedEditDistance(a, b, 4)
	d2 := BandedEditDistance(b, a, 4)
	expect.EQ(t, d1, d2)
}

func TestBandedEditDistanceSingleSubstitution(t *testing.T) {
	a, b := "ACGTACGT", "ACGAACGT"
	got := BandedEditDistance(a, b, 3)
	v, ok := got.Finite()
	expect.True(t, ok)
	expect.EQ(t, v, uint32(1))
}

func TestBandedEditDistanceUnreachableOutsideBand(t *testing.T) {
	a := "ACGTACGTACGTACGT"
	b := "TTTTTTTTTTTTTTTTTTTTTTTT" // very different length, forces out-of-band
	got := BandedEditDistance(a, b, 0)
	_, ok := got.Finite()
	expect.False(t, ok)
}

func TestScoreLess(t *testing.T) {
	expect.True(t, FiniteScore(1).Less(FiniteScore(2)))
	expect.False(t, FiniteScore(2).Less(FiniteScore(1)))
	expect.True(t, FiniteScore(5).Less(UnreachableScore))
	expect.False(t, UnreachableScore.Less(FiniteScore(5)))
}

func TestBandWidthFloor(t *testing.T) {
	cfg := DefaultConfig
	got := BandWidth(cfg, 3, 3)
	expect.EQ(t, got, cfg.BandWidthFloor)
}

func TestBandWidthScalesWithLength(t *testing.T) {
	cfg := DefaultConfig
	got := BandWidth(cfg, 300, 300)
	expect.EQ(t, got, int(300*cfg.BandWidthCoefficient))
}
