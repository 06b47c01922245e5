package section

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/diag"
)

// Properties is the geometric description of one rolled profile.
// Lengths in mm, areas mm², inertias mm⁴, moduli mm³, Cw mm⁶.
// The engines read it and never modify it.
type Properties struct {
	Designation string `json:"designation"`
	TypeTag     string `json:"type,omitempty"`
	Family      Family `json:"family"`

	// Overall dimensions
	D  Opt `json:"d"`  // Depth, outside diameter or tube height
	Bf Opt `json:"bf"` // Flange width or tube width
	Tf Opt `json:"tf"` // Flange thickness
	Tw Opt `json:"tw"` // Web or stem thickness
	Hw Opt `json:"hw"` // Clear web height
	B  Opt `json:"b"`  // Angle leg length
	T  Opt `json:"t"`  // Angle leg or tube wall thickness

	A  Opt `json:"area"`
	Ix Opt `json:"ix"`
	Iy Opt `json:"iy"`
	Rx Opt `json:"rx"`
	Ry Opt `json:"ry"`
	Rz Opt `json:"rz"` // Minor principal radius of angles
	Sx Opt `json:"sx"`
	Sy Opt `json:"sy"`
	Zx Opt `json:"zx"`
	Zy Opt `json:"zy"`

	// Torsion
	J  Opt `json:"j"`
	Cw Opt `json:"cw"`

	// Shear centre
	Xo Opt `json:"xo"` // Offset from the centroid
	Ro Opt `json:"ro"` // Polar radius of gyration about the shear centre
	H  Opt `json:"h"`  // Flexural constant 1 − xo²/ro²

	// Tabulated width-to-thickness ratios; derived from dimensions when absent
	FlangeRatio Opt `json:"flange_ratio"`
	WebRatio    Opt `json:"web_ratio"`
	LegRatio    Opt `json:"leg_ratio"`
	StemRatio   Opt `json:"stem_ratio"`
}

// Name returns the designation with its type tag
func (p *Properties) Name() string {
	if p.TypeTag == "" || strings.HasPrefix(p.Designation, p.TypeTag) {
		return p.Designation
	}
	return p.TypeTag + " " + p.Designation
}

func ratio(num, den Opt) Opt {
	n, okN := num.Get()
	d, okD := den.Get()
	if !okN || !okD || d <= 0 {
		return None()
	}
	return Some(n / d)
}

// WebHeight returns hw, or d − 2tf when only the outer dimensions are known
func (p *Properties) WebHeight() Opt {
	if p.Hw.Valid() {
		return p.Hw
	}
	if p.D.Valid() && p.Tf.Valid() {
		return Some(p.D.Or(0) - 2*p.Tf.Or(0)).Usable()
	}
	return None()
}

// FlangeSlenderness is bf/2tf for I-shapes and tees, bf/tf for channels
// and (b − 3t)/t for rectangular tubes
func (p *Properties) FlangeSlenderness() Opt {
	if p.FlangeRatio.Valid() {
		return p.FlangeRatio
	}
	switch p.Family {
	case IShape, Tee:
		return ratio(p.Bf, Some(2*p.Tf.Or(0))).Usable()
	case Channel:
		return ratio(p.Bf, p.Tf).Usable()
	case RectTube:
		return p.wallRatio(p.Bf)
	}
	return None()
}

// WebSlenderness is h/tw for I-shapes and channels and (d − 3t)/t for
// rectangular tubes
func (p *Properties) WebSlenderness() Opt {
	if p.WebRatio.Valid() {
		return p.WebRatio
	}
	switch p.Family {
	case IShape, Channel:
		return ratio(p.WebHeight(), p.Tw).Usable()
	case RectTube:
		return p.wallRatio(p.D)
	}
	return None()
}

// LegSlenderness is b/t of an angle leg
func (p *Properties) LegSlenderness() Opt {
	if p.LegRatio.Valid() {
		return p.LegRatio
	}
	return ratio(p.B, p.T).Usable()
}

// StemSlenderness is d/tw of a tee stem
func (p *Properties) StemSlenderness() Opt {
	if p.StemRatio.Valid() {
		return p.StemRatio
	}
	return ratio(p.D, p.Tw).Usable()
}

// WallSlenderness is D/t of a circular tube
func (p *Properties) WallSlenderness() Opt {
	return ratio(p.D, p.T).Usable()
}

// wallRatio uses the flat width dim − 3t of a cold-formed tube wall
func (p *Properties) wallRatio(dim Opt) Opt {
	t, ok := p.T.Get()
	if !ok || !dim.Valid() || t <= 0 {
		return None()
	}
	return Some((dim.Or(0) - 3*t) / t).Usable()
}

// Square reports whether a rectangular tube has equal sides
func (p *Properties) Square() bool {
	if p.Family != RectTube {
		return false
	}
	d, okD := p.D.Get()
	b, okB := p.Bf.Get()
	if !okD || !okB {
		return false
	}
	return IsSquare(d, b)
}

// PolarRadius returns ro about the shear centre, from the table or from
// ro² = xo² + (Ix + Iy)/A, or xo² + rx² + ry² when the inertias are absent
func (p *Properties) PolarRadius() Opt {
	if p.Ro.Valid() {
		return p.Ro
	}
	xo := p.Xo.Or(0)
	switch {
	case p.A.Valid() && p.Ix.Valid() && p.Iy.Valid():
		return Some(math.Sqrt(xo*xo + (p.Ix.Or(0)+p.Iy.Or(0))/p.A.Or(0)))
	case p.Rx.Valid() && p.Ry.Valid():
		rx, ry := p.Rx.Or(0), p.Ry.Or(0)
		return Some(math.Sqrt(xo*xo + rx*rx + ry*ry))
	}
	return None()
}

// FlexuralConstant returns H, from the table or from 1 − xo²/ro²
func (p *Properties) FlexuralConstant() Opt {
	if p.H.Valid() {
		return p.H
	}
	ro := p.PolarRadius()
	xo, ok := p.Xo.Get()
	if !ok || !ro.Valid() {
		return None()
	}
	r := ro.Or(0)
	return Some(1 - xo*xo/(r*r)).Usable()
}

// fields exposes the named quantities for validation and reporting
var fields = []struct {
	name string
	get  func(*Properties) Opt
}{
	{"area", func(p *Properties) Opt { return p.A }},
	{"d", func(p *Properties) Opt { return p.D }},
	{"bf", func(p *Properties) Opt { return p.Bf }},
	{"tf", func(p *Properties) Opt { return p.Tf }},
	{"tw", func(p *Properties) Opt { return p.Tw }},
	{"b", func(p *Properties) Opt { return p.B }},
	{"t", func(p *Properties) Opt { return p.T }},
	{"ix", func(p *Properties) Opt { return p.Ix }},
	{"iy", func(p *Properties) Opt { return p.Iy }},
	{"rx", func(p *Properties) Opt { return p.Rx }},
	{"ry", func(p *Properties) Opt { return p.Ry }},
	{"rz", func(p *Properties) Opt { return p.Rz }},
	{"sx", func(p *Properties) Opt { return p.Sx }},
	{"sy", func(p *Properties) Opt { return p.Sy }},
	{"zx", func(p *Properties) Opt { return p.Zx }},
	{"zy", func(p *Properties) Opt { return p.Zy }},
	{"j", func(p *Properties) Opt { return p.J }},
	{"cw", func(p *Properties) Opt { return p.Cw }},
	{"xo", func(p *Properties) Opt { return p.Xo }},
	{"ro", func(p *Properties) Opt { return p.PolarRadius() }},
	{"h", func(p *Properties) Opt { return p.FlexuralConstant() }},
	{"flange_ratio", func(p *Properties) Opt { return p.FlangeSlenderness() }},
	{"web_ratio", func(p *Properties) Opt { return p.WebSlenderness() }},
	{"leg_ratio", func(p *Properties) Opt { return p.LegSlenderness() }},
	{"stem_ratio", func(p *Properties) Opt { return p.StemSlenderness() }},
	{"wall_ratio", func(p *Properties) Opt { return p.WallSlenderness() }},
}

// Field returns the named quantity, derived where the getter derives it
func (p *Properties) Field(name string) (Opt, bool) {
	for _, f := range fields {
		if f.name == name {
			return f.get(p), true
		}
	}
	return None(), false
}

// FieldNames lists every name accepted by Field
func FieldNames() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// required lists the properties every engine needs, per family
var required = map[Family][]string{
	IShape:       {"area", "ix", "iy", "rx", "ry", "sx", "sy", "d", "tf", "tw", "flange_ratio", "web_ratio"},
	Channel:      {"area", "ix", "iy", "rx", "ry", "sx", "sy", "d", "tf", "tw", "flange_ratio", "web_ratio"},
	Angle:        {"area", "leg_ratio", "b", "t", "rz", "sx"},
	Tee:          {"area", "ix", "iy", "rx", "ry", "sx", "sy", "stem_ratio", "flange_ratio"},
	CircularTube: {"area", "d", "t", "ix", "rx", "sx"},
	RectTube:     {"area", "d", "bf", "t", "ix", "iy", "rx", "ry", "sx", "sy"},
}

// Required returns the mandatory property names of a family
func Required(f Family) []string {
	return append([]string(nil), required[f]...)
}

// Validate checks that every mandatory property of the family is present
// and positive. The error wraps diag.ErrIncompleteProperties or
// diag.ErrUnsupportedFamily.
func (p *Properties) Validate() error {
	if !p.Family.Supported() {
		return fmt.Errorf("%s: %w", p.Name(), diag.ErrUnsupportedFamily)
	}
	return p.Require(required[p.Family]...)
}

// Require checks a list of named properties
func (p *Properties) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		v, ok := p.Field(n)
		if !ok || !v.Valid() {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Designation: p.Name(), Family: p.Family, Missing: missing}
	}
	return nil
}

// ValidationError represents an incomplete property set
type ValidationError struct {
	Designation string
	Family      Family
	Missing     []string
}

func (e *ValidationError) Error() string {
	name := e.Designation
	if name == "" {
		name = "section"
	}
	return fmt.Sprintf("%s (%s) is missing %s", name, e.Family, strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error {
	return diag.ErrIncompleteProperties
}
