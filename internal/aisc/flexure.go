package aisc

import "math"

// Chapter F coefficients

const (
	// F2-5, F2-6
	PlasticLengthFactor   = 1.76
	InelasticLengthFactor = 1.95
	InelasticLengthTerm   = 6.76

	// F2-4
	TorsionTerm = 0.078

	// F3-2: kc = 4/√(h/tw), 0.35 ≤ kc ≤ 0.76
	MinKc = 0.35
	MaxKc = 0.76

	// Elastic local buckling coefficients of k·E/λ²
	FlangeElasticFactor     = 0.9  // F3-2, multiplied by kc
	WeakFlangeElasticFactor = 0.69 // F6-4
	StemElasticFactor       = 1.52 // F9-19 (2016 edition)

	// F6-1 cap on the weak-axis plastic moment, Mp ≤ 1.6·Fy·Sy
	WeakAxisShapeCap = 1.6

	// F8-2 noncompact round wall, Mn = (0.021E/(D/t) + Fy)·S
	RoundWallFactor = 0.021

	// F7-4 effective width of a slender tube flange
	TubeFlangeWidthCoefficient = 0.38

	// F10-1 simplified single angle, Mn = 1.5·My
	AngleShapeFactor = 1.5

	// F4-12/F5-6 web plastification ratio cap
	MaxWebAreaRatio = 10.0
)

// PlasticLength computes Lp = 1.76·ry·√(E/Fy), F2-5
func PlasticLength(ry float64, m Material) float64 {
	return PlasticLengthFactor * ry * m.RootEFy()
}

// InelasticLength computes Lr, F2-6, where u = J·c/(Sx·ho)
//
//	Lr = 1.95·rts·E/(0.7Fy)·√(u + √(u² + 6.76·(0.7Fy/E)²))
func InelasticLength(rts, u float64, m Material) float64 {
	fl := ResidualFactor * m.Fy
	r := fl / m.E
	return InelasticLengthFactor * rts * m.E / fl * math.Sqrt(u+math.Sqrt(u*u+InelasticLengthTerm*r*r))
}

// LTBStress computes the elastic lateral-torsional buckling stress, F2-4
//
//	Fcr = Cb·π²E/(Lb/rts)²·√(1 + 0.078·u·(Lb/rts)²)
func LTBStress(cb, lb, rts, u float64, m Material) float64 {
	s := lb / rts
	return cb * math.Pi * math.Pi * m.E / (s * s) * math.Sqrt(1+TorsionTerm*u*s*s)
}

// Kc returns the flange buckling coefficient for the web ratio h/tw
func Kc(hw float64) float64 {
	return math.Min(math.Max(4/math.Sqrt(hw), MinKc), MaxKc)
}

// PlateGirderFactor computes Rpg = 1 − aw/(1200 + 300aw)·(hc/tw − 5.7√(E/Fy)) ≤ 1, F4-12 / F5-6
func PlateGirderFactor(aw, hw float64, m Material) float64 {
	aw = math.Min(aw, MaxWebAreaRatio)
	rpg := 1 - aw/(1200+300*aw)*(hw-5.70*m.RootEFy())
	return math.Min(rpg, 1)
}
