// Package flexure computes the flexural strength of a member about one axis
// per AISC 360-10 chapter F. Each family evaluates its own limit states; the
// lowest nominal moment governs.
package flexure

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// Axis is the bending axis
type Axis int

const (
	Major Axis = iota // x, strong axis
	Minor             // y, weak axis
)

func (a Axis) String() string {
	if a == Minor {
		return "y"
	}
	return "x"
}

// ParseAxis accepts x/major/strong and y/minor/weak
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "major", "strong":
		return Major, nil
	case "y", "minor", "weak":
		return Minor, nil
	}
	return Major, diag.Invalid("unknown bending axis %q", s)
}

func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Axis) UnmarshalText(b []byte) error {
	v, err := ParseAxis(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Limit state names
const (
	Yielding            = "yielding"
	LateralTorsional    = "lateral-torsional buckling"
	FlangeLocalBuckling = "flange local buckling"
	WebLocalBuckling    = "web local buckling"
	StemLocalBuckling   = "stem local buckling"
	WallLocalBuckling   = "wall local buckling"
	SimplifiedAngle     = "single angle 1.5·My"
)

// Zones of a limit state
const (
	Plastic    = "plastic"
	Inelastic  = "inelastic"
	Elastic    = "elastic"
	Compact    = "compact"
	Noncompact = "noncompact"
	Slender    = "slender"
)

// LimitState is one evaluated limit state. Mn in kN·m.
type LimitState struct {
	Name    string  `json:"name"`
	Zone    string  `json:"zone"`
	Mn      float64 `json:"mn"`
	Lambda  float64 `json:"lambda,omitempty"`
	LambdaP float64 `json:"lambda_p,omitempty"`
	LambdaR float64 `json:"lambda_r,omitempty"`
}

// Result is the flexural strength about one axis. Moments in kN·m,
// lengths in mm.
type Result struct {
	Designation string         `json:"designation"`
	Family      section.Family `json:"family"`
	Axis        Axis           `json:"axis"`
	Fy          float64        `json:"fy"`
	Lb          float64        `json:"lb"`
	Cb          float64        `json:"cb"`
	Mp          float64        `json:"mp"`
	My          float64        `json:"my"`
	Lp          section.Opt    `json:"lp"`
	Lr          section.Opt    `json:"lr"`
	Rts         section.Opt    `json:"rts"`
	Ho          section.Opt    `json:"ho"`
	LimitStates []LimitState   `json:"limit_states"`
	Governing   string         `json:"governing"`
	Mn          float64        `json:"mn"`
	Md          float64        `json:"md"`
	Warnings    diag.Warnings  `json:"warnings"`
}

// State returns the named limit state when it was evaluated
func (r Result) State(name string) (LimitState, bool) {
	for _, s := range r.LimitStates {
		if s.Name == name {
			return s, true
		}
	}
	return LimitState{}, false
}

// input is the common argument set of the family rules
type input struct {
	p    *section.Properties
	m    aisc.Material
	axis Axis
	lb   float64
	cb   float64
}

// outcome is what a family rule produces, moments in N·mm
type outcome struct {
	mp, my          float64
	lp, lr, rts, ho section.Opt
	states          []LimitState
	warnings        diag.Warnings
}

type strategy interface {
	strength(in input) (outcome, error)
}

func strategyFor(f section.Family) (strategy, error) {
	switch f {
	case section.IShape, section.Channel:
		return rolled{}, nil
	case section.Tee:
		return tee{}, nil
	case section.Angle:
		return angle{}, nil
	case section.CircularTube:
		return roundTube{}, nil
	case section.RectTube:
		return rectTube{}, nil
	case section.Unknown:
	}
	return nil, fmt.Errorf("no flexural rule for %s: %w", f, diag.ErrUnsupportedFamily)
}

// Capacity computes Mn and Md = φb·Mn about the axis for the unbraced
// length lb (mm). A zero cb means 1.0.
func Capacity(p *section.Properties, m aisc.Material, axis Axis, lb, cb float64) (Result, error) {
	if !m.Valid() {
		return Result{}, diag.Invalid("material must have positive Fy, E and G")
	}
	if axis != Major && axis != Minor {
		return Result{}, diag.Invalid("unknown bending axis %d", int(axis))
	}
	if lb < 0 || math.IsNaN(lb) || math.IsInf(lb, 0) {
		return Result{}, diag.Invalid("unbraced length must be zero or positive: Lb=%g", lb)
	}
	if cb == 0 {
		cb = 1
	}
	if err := diag.Positive("Cb", cb); err != nil {
		return Result{}, err
	}
	s, err := strategyFor(p.Family)
	if err != nil {
		return Result{}, fmt.Errorf("flexure %s: %w", p.Name(), err)
	}
	o, err := s.strength(input{p: p, m: m, axis: axis, lb: lb, cb: cb})
	if err != nil {
		return Result{}, err
	}

	gov := o.states[0]
	for _, st := range o.states[1:] {
		if st.Mn < gov.Mn {
			gov = st
		}
	}
	return Result{
		Designation: p.Name(),
		Family:      p.Family,
		Axis:        axis,
		Fy:          m.Fy,
		Lb:          lb,
		Cb:          cb,
		Mp:          knm(o.mp),
		My:          knm(o.my),
		Lp:          o.lp,
		Lr:          o.lr,
		Rts:         o.rts,
		Ho:          o.ho,
		LimitStates: o.states,
		Governing:   gov.Name,
		Mn:          gov.Mn,
		Md:          aisc.PhiFlexure * gov.Mn,
		Warnings:    o.warnings,
	}, nil
}

// CurvePoint is one sample of the moment capacity curve
type CurvePoint struct {
	Lb float64 `json:"lb"` // mm
	Mn float64 `json:"mn"` // kN·m
	Md float64 `json:"md"` // kN·m
}

// Curve samples Mn over n unbraced lengths from 0 to lbMax
func Curve(p *section.Properties, m aisc.Material, axis Axis, cb, lbMax float64, n int) ([]CurvePoint, error) {
	if err := diag.Positive("Lb max", lbMax); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, diag.Invalid("curve needs at least 2 samples: %d", n)
	}
	out := make([]CurvePoint, 0, n)
	for i := 0; i < n; i++ {
		lb := lbMax * float64(i) / float64(n-1)
		res, err := Capacity(p, m, axis, lb, cb)
		if err != nil {
			return nil, err
		}
		out = append(out, CurvePoint{Lb: lb, Mn: res.Mn, Md: res.Md})
	}
	return out, nil
}

func knm(nmm float64) float64 { return nmm / 1e6 }

// moduli returns S and Z about the axis. A missing Z is estimated as
// ratio·S and reported.
func moduli(p *section.Properties, axis Axis, ratio float64) (s, z float64, w diag.Warnings, err error) {
	name, zo := "sx", p.Zx
	if axis == Minor {
		name, zo = "sy", p.Zy
	}
	if err = p.Require(name); err != nil {
		return
	}
	sv, _ := p.Field(name)
	s = sv.Or(0)
	if zo.Valid() {
		return s, zo.Or(0), nil, nil
	}
	z = ratio * s
	w = diag.Warnings{diag.New(diag.Fallback, "flexure",
		"Z%s not available: Z%s ≈ %.2f·S%s", axis, axis, ratio, axis)}
	return
}

// local evaluates a three-zone plate limit state: mp up to λp, the chord to
// mr at λr, elastic(λ) beyond. Moments in N·mm, never above mp.
func local(name string, lambda, lp, lr, mp, mr float64, elastic func(lambda float64) float64) LimitState {
	st := LimitState{Name: name, Lambda: lambda, LambdaP: lp, LambdaR: lr}
	var mn float64
	switch {
	case lambda <= lp:
		mn, st.Zone = mp, Compact
	case lambda <= lr:
		mn, st.Zone = mp-(mp-mr)*(lambda-lp)/(lr-lp), Noncompact
	default:
		mn, st.Zone = elastic(lambda), Slender
	}
	st.Mn = knm(math.Min(mn, mp))
	return st
}
