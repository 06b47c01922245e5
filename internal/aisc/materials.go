package aisc

import "math"

// CIRSOC 301 / AISC 360-10 Material Constants

const (
	// Structural steel moduli
	E = 200000.0 // MPa
	G = 77200.0  // MPa

	// Resistance factors (LRFD)
	PhiCompression = 0.90 // Chapter E
	PhiFlexure     = 0.90 // Chapter F

	// Inelastic/elastic buckling boundary for Q·Fy/Fe (E3-2, E3-3)
	InelasticLimit = 2.25

	// Residual stress factor for FL = 0.7·Fy (F2, F3)
	ResidualFactor = 0.7

	// Recommended maximum member slenderness KL/r (E2 user note)
	MaxSlenderness = 200.0
)

// Material holds the elastic constants and yield stress used by one calculation
type Material struct {
	Fy float64 // Yield stress (MPa)
	E  float64 // Modulus of elasticity (MPa)
	G  float64 // Shear modulus (MPa)
}

// Steel returns a material with the code moduli and the given yield stress
func Steel(fy float64) Material {
	return Material{Fy: fy, E: E, G: G}
}

// Valid reports whether every constant is positive and finite
func (m Material) Valid() bool {
	for _, v := range []float64{m.Fy, m.E, m.G} {
		if !(v > 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// RootEFy returns √(E/Fy), the base of every width-to-thickness limit
func (m Material) RootEFy() float64 {
	return math.Sqrt(m.E / m.Fy)
}

// ElasticFactor is the E3-3 coefficient. The code prints it rounded to 0.877;
// the unrounded 2.25·0.658^2.25 makes E3-2 and E3-3 meet at Q·Fy/Fe = 2.25.
var ElasticFactor = InelasticLimit * math.Pow(0.658, InelasticLimit)

// CriticalStress computes Fcr from the elastic buckling stress
// AISC 360-10 E3-2 / E3-3 with the E7 reduction factor Q
//
//	Q·Fy/Fe ≤ 2.25 → Fcr = 0.658^(Q·Fy/Fe) · Q·Fy
//	Q·Fy/Fe > 2.25 → Fcr = ElasticFactor · Fe  (≈ 0.877)
func CriticalStress(fe, fy, q float64) float64 {
	qfy := q * fy
	ratio := qfy / fe
	if ratio <= InelasticLimit {
		return math.Pow(0.658, ratio) * qfy
	}
	return ElasticFactor * fe
}

// EulerStress computes Fe = π²E/(KL/r)² for flexural buckling (E3-4)
func EulerStress(e, kl, r float64) float64 {
	slenderness := kl / r
	return math.Pi * math.Pi * e / (slenderness * slenderness)
}
