package aisc

import "math"

// Element identifies a plate element kind of table B4.1
type Element int

const (
	RolledFlange  Element = iota // bf/2tf of I-shapes and tees, case 1 / 10
	ChannelFlange                // bf/tf of channels, case 1 / 10
	RolledWeb                    // h/tw of I-shapes and channels, case 9 / 15
	AngleLeg                     // b/t of single angles, case 3
	TeeStem                      // d/tw of tees, case 4 / 14
	RoundWall                    // D/t of circular tubes, case 20
	TubeFlange                   // b/t of rectangular tube flanges, case 17
	TubeWeb                      // h/t of rectangular tube webs, case 19
)

func (e Element) String() string {
	switch e {
	case RolledFlange:
		return "flange (bf/2tf)"
	case ChannelFlange:
		return "flange (bf/tf)"
	case RolledWeb:
		return "web (h/tw)"
	case AngleLeg:
		return "leg (b/t)"
	case TeeStem:
		return "stem (d/tw)"
	case RoundWall:
		return "wall (D/t)"
	case TubeFlange:
		return "flange (b/t)"
	case TubeWeb:
		return "web (h/t)"
	}
	return "unknown"
}

// Ratio holds the λp and λr coefficients of one element.
// Coefficients multiply √(E/Fy), or E/Fy when Linear is set.
type Ratio struct {
	Compact    float64
	Noncompact float64
	HasCompact bool
	Linear     bool
}

// WidthThickness is table B4.1 as used for classification.
// The angle λp has no code value and reuses the rolled flange coefficient.
var WidthThickness = map[Element]Ratio{
	RolledFlange:  {Compact: 0.38, Noncompact: 1.00, HasCompact: true},
	ChannelFlange: {Compact: 0.38, Noncompact: 1.00, HasCompact: true},
	RolledWeb:     {Compact: 3.76, Noncompact: 5.70, HasCompact: true},
	AngleLeg:      {Compact: 0.38, Noncompact: 0.45, HasCompact: true},
	TeeStem:       {Compact: 0.84, Noncompact: 1.52, HasCompact: true},
	RoundWall:     {Compact: 0.07, Noncompact: 0.31, HasCompact: true, Linear: true},
	TubeFlange:    {Compact: 1.12, Noncompact: 1.40, HasCompact: true},
	TubeWeb:       {Compact: 2.42, Noncompact: 5.70, HasCompact: true},
}

// Limits evaluates λp and λr for the material
func (r Ratio) Limits(m Material) (lambdaP, lambdaR float64) {
	base := m.RootEFy()
	if r.Linear {
		base = m.E / m.Fy
	}
	return r.Compact * base, r.Noncompact * base
}

// Zone is the branch of a three-zone reduction rule
type Zone int

const (
	FullyEffective Zone = iota
	Transition
	Elastic
)

func (z Zone) String() string {
	switch z {
	case FullyEffective:
		return "fully effective"
	case Transition:
		return "transition"
	case Elastic:
		return "elastic"
	}
	return "unknown"
}

// Unstiffened holds the E7.1 coefficients of an unstiffened element:
// thresholds β1√(E/Fy), β2√(E/Fy) and the inverse-square coefficient k
type Unstiffened struct {
	Beta1 float64
	Beta2 float64
	K     float64
}

var (
	// E7-4 to E7-6, flanges of rolled shapes
	FlangeReduction = Unstiffened{Beta1: 0.56, Beta2: 1.03, K: 0.69}
	// E7-10 to E7-12, single angle legs
	AngleReduction = Unstiffened{Beta1: 0.45, Beta2: 0.91, K: 0.53}
	// E7-13 to E7-15, stems of tees
	StemReduction = Unstiffened{Beta1: 0.75, Beta2: 1.03, K: 0.69}
)

// Qs bounds applied when the governing element buckles elastically
const (
	MinQs = 0.35
	MaxQs = 0.76
)

// Thresholds returns the two slenderness limits of the rule
func (u Unstiffened) Thresholds(m Material) (lambda1, lambda2 float64) {
	base := m.RootEFy()
	return u.Beta1 * base, u.Beta2 * base
}

// Elastic evaluates the inverse-square branch Qs = k·E/(Fy·λ²)
func (u Unstiffened) Elastic(lambda float64, m Material) float64 {
	return u.K * m.E / (m.Fy * lambda * lambda)
}

// Qs evaluates the reduction factor of an unstiffened element.
// The transition zone is the chord from (λ1, 1) to (λ2, Qs_elastic(λ2)) so
// both joints are exact; the printed E7-5/E7-11 lines are its rounded form.
func (u Unstiffened) Qs(lambda float64, m Material) (float64, Zone) {
	l1, l2 := u.Thresholds(m)
	switch {
	case lambda <= l1:
		return 1.0, FullyEffective
	case lambda <= l2:
		q2 := u.Elastic(l2, m)
		return 1.0 - (1.0-q2)*(lambda-l1)/(l2-l1), Transition
	default:
		return u.Elastic(lambda, m), Elastic
	}
}

// Stiffened-element reduction, E7-17 (webs of rolled shapes)
const (
	EffectiveWidthFactor = 1.92
	WebWidthCoefficient  = 0.34
)

// EffectiveWidthLimit returns the b/t above which the effective width
// expression drops below the full width: the larger root of be = b.
// For the web coefficient this is 1.4785·√(E/f), just under the printed 1.49.
func EffectiveWidthLimit(e, f, coef float64) float64 {
	s := math.Sqrt(e / f)
	k := EffectiveWidthFactor
	return s * (k + math.Sqrt(k*k-4*k*coef)) / 2
}

// EffectiveWidth computes be for a stiffened element of width b and thickness t
// under the stress f (E7-17), never larger than b
func EffectiveWidth(b, t, f, e, coef float64) float64 {
	lambda := b / t
	if lambda <= EffectiveWidthLimit(e, f, coef) {
		return b
	}
	s := math.Sqrt(e / f)
	be := EffectiveWidthFactor * t * s * (1 - coef/lambda*s)
	return math.Min(be, b)
}
