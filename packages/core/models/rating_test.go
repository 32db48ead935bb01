package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestCanonicalPairOrderIndependent(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	x1, y1 := CanonicalPair(a, b)
	x2, y2 := CanonicalPair(b, a)

	if x1 != x2 || y1 != y2 {
		t.Errorf("CanonicalPair(a, b) = (%s, %s), CanonicalPair(b, a) = (%s, %s)", x1, y1, x2, y2)
	}
	if x1.String() > y1.String() {
		t.Errorf("canonical pair (%s, %s) is not ordered", x1, y1)
	}
}

func TestPartnerOf(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	stranger := uuid.New()

	team := TeamRating{PlayerA: a, PlayerB: b}

	partner, ok := team.PartnerOf(a)
	if !ok || partner != b {
		t.Errorf("PartnerOf(a) = (%s, %v), want (%s, true)", partner, ok, b)
	}

	partner, ok = team.PartnerOf(b)
	if !ok || partner != a {
		t.Errorf("PartnerOf(b) = (%s, %v), want (%s, true)", partner, ok, a)
	}

	if _, ok := team.PartnerOf(stranger); ok {
		t.Error("PartnerOf(stranger) = true, want false")
	}
}
