package interaction

import (
	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/diag"
)

// CombinationResult is the check of one load combination
type CombinationResult struct {
	Combination aisc.LoadCombination `json:"combination"`
	Result      Result               `json:"result"`
}

// Sweep is the check of a member under a set of load combinations
type Sweep struct {
	Designation string              `json:"designation"`
	Capacities  Capacities          `json:"capacities"`
	Results     []CombinationResult `json:"results"`
	Governing   CombinationResult   `json:"governing"`
	Pass        bool                `json:"pass"`
	Warnings    diag.Warnings       `json:"warnings"`
}

// CheckCombinations factors the unfactored effects with every combination
// and checks each demand. Capacities are evaluated once; the governing
// combination is the one with the highest ratio, the first listed on ties.
// Combinations producing net tension are skipped with a note.
func CheckCombinations(m Member, effects aisc.LoadEffects, combos []aisc.LoadCombination) (Sweep, error) {
	if len(combos) == 0 {
		return Sweep{}, diag.Invalid("no load combinations given")
	}
	c, err := Evaluate(m)
	if err != nil {
		return Sweep{}, err
	}

	s := Sweep{Designation: m.Section.Name(), Capacities: c, Pass: true, Warnings: c.Warnings()}
	for _, lc := range combos {
		d := lc.Factored(effects)
		if d.N < 0 {
			s.Warnings = s.Warnings.With(diag.New(diag.Note, "interaction",
				"combination %s (%s) gives net tension Nu = %.2f kN: not checked", lc.ID, lc.Description, d.N))
			continue
		}
		r, err := Interact(c, d)
		if err != nil {
			return Sweep{}, err
		}
		// warnings are carried once on the sweep
		r.Warnings = nil
		cr := CombinationResult{Combination: lc, Result: r}
		s.Results = append(s.Results, cr)
		if len(s.Results) == 1 || r.Ratio > s.Governing.Result.Ratio {
			s.Governing = cr
		}
		s.Pass = s.Pass && r.Pass
	}
	if len(s.Results) == 0 {
		return Sweep{}, diag.Invalid("every combination puts %s in net tension", s.Designation)
	}
	return s, nil
}
