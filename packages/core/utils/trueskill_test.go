package utils

import (
	"math"
	"testing"
)

func defaultTeams() ([2]Rating, [2]Rating) {
	return [2]Rating{NewDefaultRating(), NewDefaultRating()},
		[2]Rating{NewDefaultRating(), NewDefaultRating()}
}

func TestRateDoublesWinnersGainLosersLose(t *testing.T) {
	winners, losers := defaultTeams()

	newWinners, newLosers := RateDoubles(winners, losers)

	for i := 0; i < 2; i++ {
		if newWinners[i].Mu <= winners[i].Mu {
			t.Errorf("winner %d mu = %f, expected > %f", i, newWinners[i].Mu, winners[i].Mu)
		}
		if newLosers[i].Mu >= losers[i].Mu {
			t.Errorf("loser %d mu = %f, expected < %f", i, newLosers[i].Mu, losers[i].Mu)
		}
	}
}

func TestRateDoublesSigmaShrinksButStaysPositive(t *testing.T) {
	winners, losers := defaultTeams()

	newWinners, newLosers := RateDoubles(winners, losers)

	all := []struct {
		before Rating
		after  Rating
	}{
		{winners[0], newWinners[0]},
		{winners[1], newWinners[1]},
		{losers[0], newLosers[0]},
		{losers[1], newLosers[1]},
	}

	for i, pair := range all {
		if pair.after.Sigma > pair.before.Sigma {
			t.Errorf("rating %d sigma grew from %f to %f", i, pair.before.Sigma, pair.after.Sigma)
		}
		if pair.after.Sigma <= 0 {
			t.Errorf("rating %d sigma = %f, expected > 0", i, pair.after.Sigma)
		}
	}
}

func TestRateDoublesSymmetricUpdateForEqualPriors(t *testing.T) {
	winners, losers := defaultTeams()

	newWinners, newLosers := RateDoubles(winners, losers)

	// Equal priors: both winners move identically, and winner gain mirrors
	// loser loss around the shared prior mean.
	if math.Abs(newWinners[0].Mu-newWinners[1].Mu) > 1e-9 {
		t.Errorf("winners diverged: %f vs %f", newWinners[0].Mu, newWinners[1].Mu)
	}
	gain := newWinners[0].Mu - DefaultMu
	loss := DefaultMu - newLosers[0].Mu
	if math.Abs(gain-loss) > 1e-9 {
		t.Errorf("gain %f != loss %f", gain, loss)
	}
}

func TestRateDoublesDeterministic(t *testing.T) {
	winners, losers := defaultTeams()

	w1, l1 := RateDoubles(winners, losers)
	w2, l2 := RateDoubles(winners, losers)

	if w1 != w2 || l1 != l2 {
		t.Errorf("same input produced different output: %v/%v vs %v/%v", w1, l1, w2, l2)
	}
}

func TestRateDoublesUnderdogSwingIsLarger(t *testing.T) {
	strong := Rating{Mu: 30, Sigma: DefaultSigma}
	weak := Rating{Mu: 20, Sigma: DefaultSigma}

	// Expected result: strong team beats weak team.
	expWinners, _ := RateDoubles([2]Rating{strong, strong}, [2]Rating{weak, weak})
	expectedGain := expWinners[0].Mu - strong.Mu

	// Upset: weak team beats strong team.
	upsetWinners, _ := RateDoubles([2]Rating{weak, weak}, [2]Rating{strong, strong})
	upsetGain := upsetWinners[0].Mu - weak.Mu

	if upsetGain <= expectedGain {
		t.Errorf("upset gain %f should exceed expected-result gain %f", upsetGain, expectedGain)
	}
}

func TestRateDoublesHighSigmaMovesMore(t *testing.T) {
	uncertain := Rating{Mu: DefaultMu, Sigma: DefaultSigma}
	settled := Rating{Mu: DefaultMu, Sigma: 2.0}

	winners, losers := RateDoubles([2]Rating{uncertain, settled}, [2]Rating{NewDefaultRating(), NewDefaultRating()})
	_ = losers

	uncertainGain := winners[0].Mu - uncertain.Mu
	settledGain := winners[1].Mu - settled.Mu

	if uncertainGain <= settledGain {
		t.Errorf("uncertain player gained %f, settled player gained %f, expected uncertain > settled", uncertainGain, settledGain)
	}
}

func TestNewDefaultRating(t *testing.T) {
	r := NewDefaultRating()
	if r.Mu != DefaultMu {
		t.Errorf("mu = %f, want %f", r.Mu, DefaultMu)
	}
	if r.Sigma != DefaultSigma {
		t.Errorf("sigma = %f, want %f", r.Sigma, DefaultSigma)
	}
}
