package compression

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/classify"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// SolverConfig bounds the fixed-point iteration on Q
type SolverConfig struct {
	MaxIter int     `json:"max_iter"`
	Tol     float64 `json:"tol"`
}

// DefaultSolverConfig returns 5 iterations at 1 % relative change
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{MaxIter: 5, Tol: 0.01}
}

// Validate rejects a non-positive cap or tolerance
func (c SolverConfig) Validate() error {
	if c.MaxIter < 1 {
		return diag.Invalid("solver iteration cap must be at least 1: %d", c.MaxIter)
	}
	return diag.Positive("solver tolerance", c.Tol)
}

// ReductionFactors is the outcome of the E7 slender-element reduction
type ReductionFactors struct {
	Qs         float64       `json:"qs"`
	Qa         float64       `json:"qa"`
	Q          float64       `json:"q"`
	Iterations int           `json:"iterations"`
	Converged  bool          `json:"converged"`
	Notes      diag.Warnings `json:"notes"`
}

func unity() ReductionFactors {
	return ReductionFactors{Qs: 1, Qa: 1, Q: 1, Converged: true}
}

// unstiffened lists the E7.1 rules of the elements of each family
var unstiffened = map[section.Family][]struct {
	element aisc.Element
	rule    aisc.Unstiffened
}{
	section.IShape:  {{aisc.RolledFlange, aisc.FlangeReduction}},
	section.Channel: {{aisc.ChannelFlange, aisc.FlangeReduction}},
	section.Tee:     {{aisc.RolledFlange, aisc.FlangeReduction}, {aisc.TeeStem, aisc.StemReduction}},
	section.Angle:   {{aisc.AngleLeg, aisc.AngleReduction}},
}

// reducedQs returns the governing unstiffened factor. Within the elastic
// zone the value is held to [0.35, 0.76].
func reducedQs(p *section.Properties, c classify.Classification, m aisc.Material) float64 {
	qs := 1.0
	zone := aisc.FullyEffective
	for _, u := range unstiffened[p.Family] {
		el, ok := c.Element(u.element)
		if !ok {
			continue
		}
		q, z := u.rule.Qs(el.Lambda, m)
		if q < qs {
			qs, zone = q, z
		}
	}
	if zone == aisc.Elastic {
		qs = math.Min(math.Max(qs, aisc.MinQs), aisc.MaxQs)
	}
	return qs
}

// SingleStep evaluates Q in closed form for a given critical stress.
// A section that is not slender has Q = 1 exactly. Without fcr the
// stiffened elements are taken as fully effective and a warning is recorded.
func SingleStep(p *section.Properties, c classify.Classification, m aisc.Material, fcr section.Opt) (ReductionFactors, error) {
	if !c.Slender() {
		return unity(), nil
	}
	rf := unity()
	rf.Qs = reducedQs(p, c, m)

	web, hasWeb := c.Element(aisc.RolledWeb)
	switch {
	case !hasWeb:
	case !fcr.Valid():
		rf.Notes = rf.Notes.With(diag.New(diag.MissingCriticalStress, "reduction",
			"no critical stress for the web effective width: Qa = 1.0"))
	default:
		f := fcr.Or(0)
		if web.Lambda > aisc.EffectiveWidthLimit(m.E, f, aisc.WebWidthCoefficient) {
			if err := p.Require("area", "tw"); err != nil {
				return ReductionFactors{}, err
			}
			a, tw := p.A.Or(0), p.Tw.Or(0)
			b := web.Lambda * tw
			be := aisc.EffectiveWidth(b, tw, f, m.E, aisc.WebWidthCoefficient)
			rf.Qa = (a - (b-be)*tw) / a
		}
	}
	rf.Q = rf.Qs * rf.Qa
	return rf, nil
}

// Solve iterates Fcr(Q) and Q(Fcr) from Q = 1 with the trial elastic stress
// fe until the relative change in Q drops below cfg.Tol. Running out of
// iterations is not an error: the last iterate is returned with a warning.
func Solve(p *section.Properties, c classify.Classification, m aisc.Material, fe float64, cfg SolverConfig) (ReductionFactors, error) {
	if err := cfg.Validate(); err != nil {
		return ReductionFactors{}, err
	}
	if err := diag.Positive("Fe", fe); err != nil {
		return ReductionFactors{}, err
	}
	if !c.Slender() {
		return unity(), nil
	}

	q := 1.0
	var rf ReductionFactors
	var change float64
	for it := 1; it <= cfg.MaxIter; it++ {
		fcr := aisc.CriticalStress(fe, m.Fy, q)
		next, err := SingleStep(p, c, m, section.Some(fcr))
		if err != nil {
			return ReductionFactors{}, err
		}
		rf = next
		rf.Iterations = it
		rf.Converged = false
		change = math.Abs(rf.Q-q) / q
		if change < cfg.Tol {
			rf.Converged = true
			break
		}
		q = rf.Q
	}

	if rf.Converged {
		rf.Notes = rf.Notes.With(diag.New(diag.Note, "reduction",
			"Q converged in %d iterations: Q = %.4f (Qs = %.4f, Qa = %.4f)", rf.Iterations, rf.Q, rf.Qs, rf.Qa))
	} else {
		rf.Notes = rf.Notes.With(diag.New(diag.NonConvergence, "reduction",
			"Q did not converge in %d iterations (last change %.2f %%): using Q = %.4f", cfg.MaxIter, 100*change, rf.Q))
	}
	return rf, nil
}
