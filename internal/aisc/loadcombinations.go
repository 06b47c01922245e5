package aisc

// LoadCombination represents an LRFD strength load combination
// Based on AISC 360-10 B2 / ASCE 7 section 2.3.2
type LoadCombination struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	// Load factors for each load type
	Dead       float64 `json:"dead"`       // D - Dead load
	Live       float64 `json:"live"`       // L - Live load
	Roof       float64 `json:"roof"`       // Lr - Roof live load
	Wind       float64 `json:"wind"`       // W - Wind load
	Earthquake float64 `json:"earthquake"` // E - Earthquake load
	Rain       float64 `json:"rain"`       // R - Rain load
}

// Basic LRFD combinations. "Lr or R" carries the factor on both loads;
// only one of them is expected to be nonzero for a given member.
var LoadCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L + 0.5(Lr or R)", Dead: 1.2, Live: 1.6, Roof: 0.5, Rain: 0.5},
	{ID: "3", Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)", Dead: 1.2, Live: 1.0, Roof: 1.6, Rain: 1.6, Wind: 0.5},
	{ID: "4", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)", Dead: 1.2, Live: 1.0, Wind: 1.0, Roof: 0.5, Rain: 0.5},
	{ID: "5", Description: "1.2D + 1.0E + 1.0L", Dead: 1.2, Live: 1.0, Earthquake: 1.0},
	{ID: "6", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "7", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// SimplifiedCombinations covers gravity-only members
var SimplifiedCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L", Dead: 1.2, Live: 1.6},
}

// Combinations returns the named set: "full" (default) or "gravity"
func Combinations(name string) ([]LoadCombination, bool) {
	switch name {
	case "", "full", "lrfd":
		return LoadCombinations, true
	case "gravity", "simplified":
		return SimplifiedCombinations, true
	}
	return nil, false
}

// Effect is one set of member forces: axial compression N (kN),
// moments Mx and My (kN·m)
type Effect struct {
	N  float64 `json:"n"`
	Mx float64 `json:"mx"`
	My float64 `json:"my"`
}

// LoadEffects holds unfactored member forces per load type
type LoadEffects struct {
	Dead       Effect `json:"dead"`
	Live       Effect `json:"live"`
	Roof       Effect `json:"roof"`
	Wind       Effect `json:"wind"`
	Earthquake Effect `json:"earthquake"`
	Rain       Effect `json:"rain"`
}

// factor applies the combination factor to a single component
func (lc LoadCombination) factor(pick func(Effect) float64, le LoadEffects) float64 {
	return lc.Dead*pick(le.Dead) +
		lc.Live*pick(le.Live) +
		lc.Roof*pick(le.Roof) +
		lc.Wind*pick(le.Wind) +
		lc.Earthquake*pick(le.Earthquake) +
		lc.Rain*pick(le.Rain)
}

// Factored calculates the factored demand for the combination
func (lc LoadCombination) Factored(le LoadEffects) Effect {
	return Effect{
		N:  lc.factor(func(e Effect) float64 { return e.N }, le),
		Mx: lc.factor(func(e Effect) float64 { return e.Mx }, le),
		My: lc.factor(func(e Effect) float64 { return e.My }, le),
	}
}
