// Package classify sorts the plate elements of a cross-section into compact,
// noncompact and slender per table B4.1.
package classify

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// Class of a plate element or of a whole section, ordered by severity
type Class int

const (
	Compact Class = iota
	Noncompact
	Slender
)

func (c Class) String() string {
	switch c {
	case Compact:
		return "COMPACT"
	case Noncompact:
		return "NONCOMPACT"
	case Slender:
		return "SLENDER"
	}
	return "UNKNOWN"
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Class) UnmarshalText(b []byte) error {
	for _, k := range []Class{Compact, Noncompact, Slender} {
		if string(b) == k.String() {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("unknown class %q", b)
}

// ElementCheck is the classification of one plate element
type ElementCheck struct {
	Name    string       `json:"name"`
	Element aisc.Element `json:"-"`
	Lambda  float64      `json:"lambda"`
	LambdaP section.Opt  `json:"lambda_p"`
	LambdaR float64      `json:"lambda_r"`
	Class   Class        `json:"class"`
}

// Classification is the ordered list of element checks of a section
type Classification struct {
	Family   section.Family `json:"family"`
	Elements []ElementCheck `json:"elements"`
	Class    Class          `json:"class"`
	Notes    diag.Warnings  `json:"notes"`
}

// Slender reports whether any element is slender
func (c Classification) Slender() bool { return c.Class == Slender }

// Element returns the check of the given element kind
func (c Classification) Element(e aisc.Element) (ElementCheck, bool) {
	for _, el := range c.Elements {
		if el.Element == e {
			return el, true
		}
	}
	return ElementCheck{}, false
}

// Check classifies a single element: compact when λp is defined and
// λ ≤ λp, noncompact when λ ≤ λr, slender otherwise
func Check(name string, lambda float64, lambdaP section.Opt, lambdaR float64) ElementCheck {
	el := ElementCheck{Name: name, Lambda: lambda, LambdaP: lambdaP, LambdaR: lambdaR}
	lp, hasP := lambdaP.Get()
	switch {
	case hasP && lambda <= lp:
		el.Class = Compact
	case lambda <= lambdaR:
		el.Class = Noncompact
	default:
		el.Class = Slender
	}
	return el
}

// Worst returns the most severe class of the list, Compact when empty
func Worst(elements []ElementCheck) Class {
	worst := Compact
	for _, el := range elements {
		if el.Class > worst {
			worst = el.Class
		}
	}
	return worst
}

// elementRule binds an element kind to the slenderness accessor of the profile
type elementRule struct {
	element aisc.Element
	lambda  func(*section.Properties) section.Opt
	field   string
}

var (
	flangeRule = func(e aisc.Element) elementRule {
		return elementRule{e, (*section.Properties).FlangeSlenderness, "flange_ratio"}
	}
	webRule = func(e aisc.Element) elementRule {
		return elementRule{e, (*section.Properties).WebSlenderness, "web_ratio"}
	}
)

// rules maps every family to its elements
var rules = map[section.Family][]elementRule{
	section.IShape:       {flangeRule(aisc.RolledFlange), webRule(aisc.RolledWeb)},
	section.Channel:      {flangeRule(aisc.ChannelFlange), webRule(aisc.RolledWeb)},
	section.Angle:        {{aisc.AngleLeg, (*section.Properties).LegSlenderness, "leg_ratio"}},
	section.Tee:          {flangeRule(aisc.RolledFlange), {aisc.TeeStem, (*section.Properties).StemSlenderness, "stem_ratio"}},
	section.CircularTube: {{aisc.RoundWall, (*section.Properties).WallSlenderness, "wall_ratio"}},
	section.RectTube:     {flangeRule(aisc.TubeFlange), webRule(aisc.TubeWeb)},
}

// Section classifies every element of the profile for the material
func Section(p *section.Properties, m aisc.Material) (Classification, error) {
	if !m.Valid() {
		return Classification{}, diag.Invalid("material must have positive Fy, E and G: %+v", m)
	}
	rs, ok := rules[p.Family]
	if !ok {
		return Classification{}, fmt.Errorf("classify %s: %w", p.Name(), diag.ErrUnsupportedFamily)
	}

	out := Classification{Family: p.Family}
	var missing []string
	for _, r := range rs {
		lambda, ok := r.lambda(p).Get()
		if !ok || !(lambda > 0) {
			missing = append(missing, r.field)
			continue
		}
		limits := aisc.WidthThickness[r.element]
		lp, lr := limits.Limits(m)
		lambdaP := section.None()
		if limits.HasCompact {
			lambdaP = section.Some(lp)
		}
		el := Check(r.element.String(), lambda, lambdaP, lr)
		el.Element = r.element
		out.Elements = append(out.Elements, el)
	}
	if len(missing) > 0 {
		return Classification{}, &section.ValidationError{Designation: p.Name(), Family: p.Family, Missing: missing}
	}

	out.Class = Worst(out.Elements)
	if p.Family == section.Angle {
		out.Notes = out.Notes.With(diag.New(diag.Surrogate, "classify",
			"angle leg λp taken as the rolled flange value 0.38·√(E/Fy); check applicability for the load case"))
	}
	return out, nil
}
