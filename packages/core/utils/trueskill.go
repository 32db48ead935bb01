package utils

import "math"

// TrueSkill parameters for the doubles rating model.
// Mean and deviation defaults follow the standard TrueSkill environment:
// beta is the per-player performance variance, tau the additive dynamics
// noise, and drawProbability the assumed chance of a drawn game.
const (
	DefaultMu       = 25.0
	DefaultSigma    = DefaultMu / 3.0
	Beta            = DefaultMu / 6.0
	Tau             = DefaultMu / 300.0
	DrawProbability = 0.10

	// sigmaMin keeps the deviation strictly positive after an update.
	sigmaMin = 1e-4
)

// Rating is a Gaussian belief about a player's skill.
type Rating struct {
	Mu    float64
	Sigma float64
}

// NewDefaultRating returns the prior used for unrated players.
func NewDefaultRating() Rating {
	return Rating{Mu: DefaultMu, Sigma: DefaultSigma}
}

// RateDoubles computes post-match ratings for a two-versus-two game given a
// win/loss outcome. Team performance is modeled as the sum of its members'
// skills. Winners' means increase and losers' means decrease, each player
// weighted by its share of the total uncertainty; deviations only shrink.
// The input slices are not modified; results keep the input ordering.
func RateDoubles(winners, losers [2]Rating) ([2]Rating, [2]Rating) {
	// Dynamics noise is added to each player's variance before the update.
	var winVar, loseVar [2]float64
	totalVar := 0.0
	for i := 0; i < 2; i++ {
		winVar[i] = winners[i].Sigma*winners[i].Sigma + Tau*Tau
		loseVar[i] = losers[i].Sigma*losers[i].Sigma + Tau*Tau
		totalVar += winVar[i] + loseVar[i]
	}

	c2 := totalVar + 4*Beta*Beta
	c := math.Sqrt(c2)

	muWinners := winners[0].Mu + winners[1].Mu
	muLosers := losers[0].Mu + losers[1].Mu

	t := (muWinners - muLosers) / c
	margin := drawMargin() / c

	v := vWin(t, margin)
	w := wWin(t, margin)

	var newWinners, newLosers [2]Rating
	for i := 0; i < 2; i++ {
		newWinners[i] = updated(winners[i], winVar[i], c, c2, v, w, +1)
		newLosers[i] = updated(losers[i], loseVar[i], c, c2, v, w, -1)
	}

	return newWinners, newLosers
}

// updated applies the mean shift and variance shrink for one player.
// sign is +1 for winners and -1 for losers.
func updated(r Rating, adjVar, c, c2, v, w, sign float64) Rating {
	mu := r.Mu + sign*(adjVar/c)*v

	variance := adjVar * (1 - (adjVar/c2)*w)
	sigma := math.Sqrt(math.Max(variance, sigmaMin*sigmaMin))

	// An observed game never increases uncertainty, even with the tau
	// dynamics term folded in.
	if sigma > r.Sigma {
		sigma = r.Sigma
	}
	if sigma < sigmaMin {
		sigma = sigmaMin
	}

	return Rating{Mu: mu, Sigma: sigma}
}

// drawMargin converts the draw probability into a performance-space margin
// for a four-player game.
func drawMargin() float64 {
	return normPPF((DrawProbability+1)/2) * math.Sqrt(4) * Beta
}

// vWin is the additive correction for a won game: N(t-e) / Phi(t-e).
func vWin(t, margin float64) float64 {
	x := t - margin
	denom := normCDF(x)
	if denom < 1e-12 {
		// Limit of pdf/cdf as x goes to negative infinity.
		return -x
	}
	return normPDF(x) / denom
}

// wWin is the multiplicative variance correction for a won game.
func wWin(t, margin float64) float64 {
	x := t - margin
	v := vWin(t, margin)
	return v * (v + x)
}

func normPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

func normCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

func normPPF(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
