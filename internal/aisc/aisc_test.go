package aisc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_fcr01(tst *testing.T) {

	chk.PrintTitle("fcr01")

	fy, q := 250.0, 0.85
	fe := q * fy / InelasticLimit

	inelastic := math.Pow(0.658, q*fy/fe) * q * fy
	elastic := ElasticFactor * fe
	chk.Float64(tst, "branches meet at 2.25", 1e-9*inelastic, inelastic, elastic)
	chk.Float64(tst, "Fcr at boundary", 1e-9*inelastic, CriticalStress(fe, fy, q), inelastic)
	chk.Float64(tst, "Fcr just elastic", 1e-6, CriticalStress(fe*0.999999, fy, q), ElasticFactor*fe*0.999999)
	chk.Float64(tst, "rounded coefficient", 5e-4, ElasticFactor, 0.877)

	// stocky column reaches Q·Fy
	chk.Float64(tst, "Fcr stocky", 1e-3, CriticalStress(1e9, fy, 1), fy)
	chk.Float64(tst, "Fe", 1e-9, EulerStress(E, 5000, 70), math.Pi*math.Pi*E/math.Pow(5000.0/70, 2))
}

func Test_limits01(tst *testing.T) {

	chk.PrintTitle("limits01")

	m := Steel(345)
	lp, lr := WidthThickness[RolledWeb].Limits(m)
	chk.Float64(tst, "web λp", 1e-12, lp, 3.76*math.Sqrt(E/345))
	chk.Float64(tst, "web λr", 1e-12, lr, 5.70*math.Sqrt(E/345))
	lp, lr = WidthThickness[RoundWall].Limits(m)
	chk.Float64(tst, "wall λp", 1e-12, lp, 0.07*E/345)
	chk.Float64(tst, "wall λr", 1e-12, lr, 0.31*E/345)
}

func Test_reduction01(tst *testing.T) {

	chk.PrintTitle("reduction01")

	m := Steel(250)
	for _, u := range []Unstiffened{FlangeReduction, AngleReduction} {
		l1, l2 := u.Thresholds(m)

		q, z := u.Qs(l1, m)
		chk.Float64(tst, "Qs at λ1", 1e-15, q, 1)
		chk.String(tst, z.String(), "fully effective")

		above := math.Nextafter(l1, l2)
		q, z = u.Qs(above, m)
		chk.String(tst, z.String(), "transition")
		chk.Float64(tst, "transition starts at 1", 1e-12, q, 1)

		q, z = u.Qs(l2, m)
		chk.String(tst, z.String(), "transition")
		beyond := math.Nextafter(l2, 2*l2)
		qe, ze := u.Qs(beyond, m)
		chk.String(tst, ze.String(), "elastic")
		chk.Float64(tst, "transition meets elastic at λ2", 1e-9, q, qe)

		// non-increasing across the zones
		prev := 1.0
		for lambda := 0.5 * l1; lambda < 3*l2; lambda += 0.05 {
			q, _ := u.Qs(lambda, m)
			if q > prev+1e-15 {
				tst.Errorf("Qs increased at λ=%g", lambda)
			}
			prev = q
		}
	}
}

func Test_effectivewidth01(tst *testing.T) {

	chk.PrintTitle("effectivewidth01")

	f := 200.0
	lim := EffectiveWidthLimit(E, f, WebWidthCoefficient)
	chk.Float64(tst, "limit coefficient", 1e-4, lim/math.Sqrt(E/f), 1.4785)

	t := 10.0
	b := lim * t
	chk.Float64(tst, "be = b at the limit", 1e-9, EffectiveWidth(b, t, f, E, WebWidthCoefficient), b)
	b2 := math.Nextafter(lim, 2*lim) * t
	chk.Float64(tst, "continuous past the limit", 1e-9, EffectiveWidth(b2, t, f, E, WebWidthCoefficient), b2)

	b3 := 2.5 * lim * t
	be := EffectiveWidth(b3, t, f, E, WebWidthCoefficient)
	if !(be < b3) {
		tst.Errorf("slender web must lose width: be=%g b=%g", be, b3)
	}
}

func Test_combos01(tst *testing.T) {

	chk.PrintTitle("combos01")

	le := LoadEffects{
		Dead: Effect{N: 100, Mx: 10},
		Live: Effect{N: 50, Mx: 20, My: 2},
		Wind: Effect{Mx: 30},
	}
	got := LoadCombinations[1].Factored(le)
	chk.Float64(tst, "N combo 2", 1e-12, got.N, 1.2*100+1.6*50)
	chk.Float64(tst, "Mx combo 2", 1e-12, got.Mx, 1.2*10+1.6*20)
	chk.Float64(tst, "My combo 2", 1e-12, got.My, 1.6*2)

	got = LoadCombinations[5].Factored(le)
	chk.Float64(tst, "Mx 0.9D+1.0W", 1e-12, got.Mx, 0.9*10+30)

	set, ok := Combinations("gravity")
	if !ok || len(set) != 2 {
		tst.Errorf("gravity set must have two combinations")
	}
	if _, ok := Combinations("asd"); ok {
		tst.Errorf("unknown set must be rejected")
	}
}
