package flexure

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// Z/S ratios used when the plastic modulus is not tabulated
const (
	RolledMajorShape = 1.12
	WeakAxisShape    = 1.50
	TeeMajorShape    = 1.50
	RoundTubeShape   = 1.27
	RectTubeShape    = 1.20
)

func yielding(mp float64) LimitState {
	return LimitState{Name: Yielding, Zone: Plastic, Mn: knm(mp)}
}

func flangeElement(f section.Family) aisc.Element {
	if f == section.Channel {
		return aisc.ChannelFlange
	}
	return aisc.RolledFlange
}

// rolled covers I-shapes and channels: F2 and F3 about x, F6 about y
type rolled struct{}

func (rolled) strength(in input) (outcome, error) {
	if in.axis == Minor {
		return weakAxis(in)
	}
	p, m := in.p, in.m
	if err := p.Require("sx", "iy", "ry", "j", "cw", "d", "tf", "flange_ratio", "web_ratio"); err != nil {
		return outcome{}, err
	}
	sx, zx, w, err := moduli(p, Major, RolledMajorShape)
	if err != nil {
		return outcome{}, err
	}
	iy, ry, j, cw := p.Iy.Or(0), p.Ry.Or(0), p.J.Or(0), p.Cw.Or(0)
	ho := p.D.Or(0) - p.Tf.Or(0)
	if ho <= 0 {
		return outcome{}, diag.Invalid("%s: d must exceed tf", p.Name())
	}

	o := outcome{mp: m.Fy * zx, my: m.Fy * sx, warnings: w}
	rts := math.Sqrt(math.Sqrt(iy*cw) / sx)
	c := 1.0
	if p.Family == section.Channel {
		c = ho / 2 * math.Sqrt(iy/cw)
	}
	u := j * c / (sx * ho)
	lp := aisc.PlasticLength(ry, m)
	lr := aisc.InelasticLength(rts, u, m)
	o.lp, o.lr, o.rts, o.ho = section.Some(lp), section.Some(lr), section.Some(rts), section.Some(ho)

	fl := aisc.ResidualFactor * m.Fy * sx
	ltb := LimitState{Name: LateralTorsional}
	var mn float64
	switch {
	case in.lb <= lp:
		mn, ltb.Zone = o.mp, Plastic
	case in.lb <= lr:
		mn, ltb.Zone = in.cb*(o.mp-(o.mp-fl)*(in.lb-lp)/(lr-lp)), Inelastic
	default:
		mn, ltb.Zone = aisc.LTBStress(in.cb, in.lb, rts, u, m)*sx, Elastic
	}
	ltb.Mn = knm(math.Min(mn, o.mp))

	hw := p.WebSlenderness().Or(0)
	lpf, lrf := aisc.WidthThickness[flangeElement(p.Family)].Limits(m)
	flb := local(FlangeLocalBuckling, p.FlangeSlenderness().Or(0), lpf, lrf, o.mp, fl, func(l float64) float64 {
		return aisc.FlangeElasticFactor * m.E * aisc.Kc(hw) * sx / (l * l)
	})

	o.states = []LimitState{yielding(o.mp), ltb, flb}
	return o, nil
}

// weakAxis is F6: yielding capped at 1.6·Fy·Sy and flange local buckling
func weakAxis(in input) (outcome, error) {
	p, m := in.p, in.m
	if err := p.Require("sy", "flange_ratio"); err != nil {
		return outcome{}, err
	}
	sy, zy, w, err := moduli(p, Minor, WeakAxisShape)
	if err != nil {
		return outcome{}, err
	}
	my := m.Fy * sy
	o := outcome{mp: math.Min(m.Fy*zy, aisc.WeakAxisShapeCap*my), my: my, warnings: w}

	lpf, lrf := aisc.WidthThickness[flangeElement(p.Family)].Limits(m)
	flb := local(FlangeLocalBuckling, p.FlangeSlenderness().Or(0), lpf, lrf, o.mp, aisc.ResidualFactor*my, func(l float64) float64 {
		return aisc.WeakFlangeElasticFactor * m.E / (l * l) * sy
	})
	o.states = []LimitState{yielding(o.mp), flb}
	return o, nil
}

// tee uses the stem rule about x with the stem in compression, and the
// flange rule about y
type tee struct{}

func (tee) strength(in input) (outcome, error) {
	if in.axis == Minor {
		return weakAxis(in)
	}
	p, m := in.p, in.m
	if err := p.Require("sx", "stem_ratio"); err != nil {
		return outcome{}, err
	}
	sx, zx, w, err := moduli(p, Major, TeeMajorShape)
	if err != nil {
		return outcome{}, err
	}
	my := m.Fy * sx
	o := outcome{mp: math.Min(m.Fy*zx, my), my: my, warnings: w}
	o.warnings = o.warnings.With(diag.New(diag.Note, "flexure",
		"tee: stem taken in compression, Mp limited to My = %.2f kN·m", knm(my)))

	elastic := func(l float64) float64 {
		return aisc.StemElasticFactor * m.E / (l * l) * sx
	}
	lps, lrs := aisc.WidthThickness[aisc.TeeStem].Limits(m)
	stem := local(StemLocalBuckling, p.StemSlenderness().Or(0), lps, lrs, o.mp, elastic(lrs), elastic)
	o.states = []LimitState{yielding(o.mp), stem}
	return o, nil
}

// angle applies Mn = 1.5·My about either leg axis
type angle struct{}

func (angle) strength(in input) (outcome, error) {
	p, m := in.p, in.m
	if err := p.Require("sx"); err != nil {
		return outcome{}, err
	}
	my := m.Fy * p.Sx.Or(0)
	mn := aisc.AngleShapeFactor * my
	o := outcome{mp: mn, my: my}
	o.warnings = diag.Warnings{diag.New(diag.Surrogate, "flexure",
		"single angle: Mn = 1.5·My with no lateral-torsional or leg local buckling check")}
	if in.axis == Minor {
		o.warnings = o.warnings.With(diag.New(diag.Note, "flexure", "equal legs: Sy taken as Sx"))
	}
	o.states = []LimitState{{Name: SimplifiedAngle, Zone: Plastic, Mn: knm(mn)}}
	return o, nil
}

// roundTube is F8, identical about every axis
type roundTube struct{}

func (roundTube) strength(in input) (outcome, error) {
	p, m := in.p, in.m
	if err := p.Require("sx", "wall_ratio"); err != nil {
		return outcome{}, err
	}
	s, z, w, err := moduli(p, Major, RoundTubeShape)
	if err != nil {
		return outcome{}, err
	}
	o := outcome{mp: m.Fy * z, my: m.Fy * s, warnings: w}

	lambda := p.WallSlenderness().Or(0)
	lp, lr := aisc.WidthThickness[aisc.RoundWall].Limits(m)
	wall := LimitState{Name: WallLocalBuckling, Lambda: lambda, LambdaP: lp, LambdaR: lr}
	mn := o.mp
	switch {
	case lambda <= lp:
		wall.Zone = Compact
	default:
		mn = math.Min(o.mp, (aisc.RoundWallFactor*m.E/lambda+m.Fy)*s)
		wall.Zone = Noncompact
		if lambda > lr {
			wall.Zone = Slender
			o.warnings = o.warnings.With(diag.New(diag.Surrogate, "flexure",
				"D/t = %.1f exceeds λr = %.1f: noncompact wall equation applied", lambda, lr))
		}
	}
	wall.Mn = knm(mn)
	o.states = []LimitState{yielding(o.mp), wall}
	return o, nil
}

// rectTube is F7. The flange is the wall parallel to the bending axis, so
// flange and web swap between x and y.
type rectTube struct{}

func (rectTube) strength(in input) (outcome, error) {
	p, m := in.p, in.m
	axis := in.axis
	var notes diag.Warnings
	if axis == Minor && p.Square() {
		axis = Major
		notes = diag.Warnings{diag.New(diag.Note, "flexure", "square tube: the x result applies to both axes")}
	}
	if err := p.Require("t", "flange_ratio", "web_ratio"); err != nil {
		return outcome{}, err
	}
	lf, lw := p.FlangeSlenderness().Or(0), p.WebSlenderness().Or(0)
	depth, inertia := p.D, p.Ix
	names := []string{"area", "d", "ix"}
	if axis == Minor {
		lf, lw = lw, lf
		depth, inertia = p.Bf, p.Iy
		names = []string{"area", "bf", "iy"}
	}
	s, z, w, err := moduli(p, axis, RectTubeShape)
	if err != nil {
		return outcome{}, err
	}
	t := p.T.Or(0)
	o := outcome{mp: m.Fy * z, my: m.Fy * s, warnings: diag.Merge(notes, w)}

	lpf, lrf := aisc.WidthThickness[aisc.TubeFlange].Limits(m)
	if lf > lrf {
		if err := p.Require(names...); err != nil {
			return outcome{}, err
		}
	}
	flange := local(FlangeLocalBuckling, lf, lpf, lrf, o.mp, o.my, func(l float64) float64 {
		b := l * t
		be := aisc.EffectiveWidth(b, t, m.Fy, m.E, aisc.TubeFlangeWidthCoefficient)
		return m.Fy * effectiveModulus(p.A.Or(0), inertia.Or(0), depth.Or(0), t, b, be)
	})

	lpw, lrw := aisc.WidthThickness[aisc.TubeWeb].Limits(m)
	web := local(WebLocalBuckling, lw, lpw, lrw, o.mp, o.my, func(l float64) float64 {
		return aisc.PlateGirderFactor(2*l/lf, l, m) * o.my
	})
	o.states = []LimitState{yielding(o.mp), flange, web}
	return o, nil
}

// effectiveModulus returns the smaller elastic modulus of a box section of
// area a and inertia i whose compression flange keeps be of its flat width b
func effectiveModulus(a, i, depth, t, b, be float64) float64 {
	lost := (b - be) * t
	if lost <= 0 {
		return 2 * i / depth
	}
	arm := depth/2 - t/2
	an := a - lost
	shift := lost * arm / an
	ie := i - lost*(arm*arm+t*t/12) - an*shift*shift
	return ie / (depth/2 + shift)
}
