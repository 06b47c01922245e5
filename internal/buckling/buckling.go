// Package buckling computes the elastic critical stress Fe of every member
// buckling mode that applies to a section family (AISC 360-10 E3, E4, E5).
package buckling

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// Mode names
const (
	FlexuralX        = "Flexural_X"
	FlexuralY        = "Flexural_Y"
	TorsionalZ       = "Torsional_Z"
	FlexoTorsionalYZ = "Flexo_torsional_YZ"
	FlexuralMinor    = "Flexural_Z"
)

// Lengths holds the unbraced lengths (mm) and effective-length factors of
// a compression member. A zero K means 1.0 and a zero Lz means max(Lx, Ly).
type Lengths struct {
	Lx float64 `json:"lx"`
	Ly float64 `json:"ly"`
	Lz float64 `json:"lz,omitempty"`
	Kx float64 `json:"kx,omitempty"`
	Ky float64 `json:"ky,omitempty"`
	Kz float64 `json:"kz,omitempty"`
}

// Normalize applies the defaults and rejects non-positive lengths
func (l Lengths) Normalize() (Lengths, error) {
	if err := diag.Positive("Lx", l.Lx, "Ly", l.Ly); err != nil {
		return l, err
	}
	if l.Lz == 0 {
		l.Lz = math.Max(l.Lx, l.Ly)
	}
	for _, k := range []*float64{&l.Kx, &l.Ky, &l.Kz} {
		if *k == 0 {
			*k = 1.0
		}
	}
	if err := diag.Positive("Lz", l.Lz, "Kx", l.Kx, "Ky", l.Ky, "Kz", l.Kz); err != nil {
		return l, err
	}
	return l, nil
}

// KLx returns the effective length about x
func (l Lengths) KLx() float64 { return l.Kx * l.Lx }

// KLy returns the effective length about y
func (l Lengths) KLy() float64 { return l.Ky * l.Ly }

// KLz returns the effective torsional length
func (l Lengths) KLz() float64 { return l.Kz * l.Lz }

// Mode is one elastic buckling mode. Slenderness is KL/r for flexural
// modes and zero for torsional ones.
type Mode struct {
	Name        string  `json:"name"`
	Fe          float64 `json:"fe"`
	Slenderness float64 `json:"slenderness,omitempty"`
}

// Result lists every mode evaluated, in a fixed order, and the governing one
type Result struct {
	Modes          []Mode        `json:"modes"`
	Governing      Mode          `json:"governing"`
	MaxSlenderness float64       `json:"max_slenderness"`
	Warnings       diag.Warnings `json:"warnings"`
}

// Strategy evaluates the modes of one family
type Strategy interface {
	Modes(p *section.Properties, m aisc.Material, l Lengths) ([]Mode, diag.Warnings, error)
}

// For selects the strategy of a family. Only the families with a defined
// axial mode set are accepted.
func For(f section.Family) (Strategy, error) {
	switch f {
	case section.IShape:
		return doublySymmetric{}, nil
	case section.Channel:
		return singlySymmetric{}, nil
	case section.Angle:
		return singleAngle{}, nil
	case section.Tee, section.CircularTube, section.RectTube, section.Unknown:
		return nil, fmt.Errorf("no axial buckling modes for %s: %w", f, diag.ErrUnsupportedFamily)
	}
	return nil, fmt.Errorf("family %d: %w", int(f), diag.ErrUnsupportedFamily)
}

// Analyze evaluates every mode of the profile and selects the governing
// one: the lowest Fe, the first listed on ties
func Analyze(p *section.Properties, m aisc.Material, l Lengths) (Result, error) {
	if !m.Valid() {
		return Result{}, diag.Invalid("material must have positive Fy, E and G")
	}
	l, err := l.Normalize()
	if err != nil {
		return Result{}, err
	}
	s, err := For(p.Family)
	if err != nil {
		return Result{}, err
	}
	modes, warnings, err := s.Modes(p, m, l)
	if err != nil {
		return Result{}, err
	}

	res := Result{Modes: modes, Governing: modes[0], Warnings: warnings}
	for _, md := range modes {
		if md.Fe < res.Governing.Fe {
			res.Governing = md
		}
		res.MaxSlenderness = math.Max(res.MaxSlenderness, md.Slenderness)
	}
	if res.MaxSlenderness > aisc.MaxSlenderness {
		res.Warnings = res.Warnings.With(diag.New(diag.SlendernessLimit, "buckling",
			"KL/r = %.1f exceeds the recommended limit of %.0f", res.MaxSlenderness, aisc.MaxSlenderness))
	}
	return res, nil
}

func flexural(name string, m aisc.Material, kl, r float64) Mode {
	return Mode{Name: name, Fe: aisc.EulerStress(m.E, kl, r), Slenderness: kl / r}
}

// Torsional computes Fe_z = (π²E·Cw/(KzLz)² + G·J) / (A·ro²), E4-4
func Torsional(m aisc.Material, cw, j, klz, a, ro float64) float64 {
	return (math.Pi*math.Pi*m.E*cw/(klz*klz) + m.G*j) / (a * ro * ro)
}

// FlexuralTorsional combines the flexural Fe of the symmetry axis with the
// torsional Fe, E4-5:
// Fe = (Fe_y+Fe_z)/(2H)·(1 − √(1 − 4·Fe_y·Fe_z·H/(Fe_y+Fe_z)²))
func FlexuralTorsional(fey, fez, h float64) float64 {
	sum := fey + fez
	return sum / (2 * h) * (1 - math.Sqrt(1-4*fey*fez*h/(sum*sum)))
}

// doublySymmetric covers I-shapes: flexural about both axes and pure torsion
type doublySymmetric struct{}

func (doublySymmetric) Modes(p *section.Properties, m aisc.Material, l Lengths) ([]Mode, diag.Warnings, error) {
	if err := p.Require("area", "rx", "ry", "j", "cw", "ro"); err != nil {
		return nil, nil, err
	}
	a, rx, ry := p.A.Or(0), p.Rx.Or(0), p.Ry.Or(0)
	fez := Torsional(m, p.Cw.Or(0), p.J.Or(0), l.KLz(), a, p.PolarRadius().Or(0))
	return []Mode{
		flexural(FlexuralX, m, l.KLx(), rx),
		flexural(FlexuralY, m, l.KLy(), ry),
		{Name: TorsionalZ, Fe: fez},
	}, nil, nil
}

// singlySymmetric covers channels: flexural about x and the coupled
// flexural-torsional mode about y and z
type singlySymmetric struct{}

func (singlySymmetric) Modes(p *section.Properties, m aisc.Material, l Lengths) ([]Mode, diag.Warnings, error) {
	if err := p.Require("area", "rx", "ry", "j", "cw", "ro"); err != nil {
		return nil, nil, err
	}
	a, rx, ry := p.A.Or(0), p.Rx.Or(0), p.Ry.Or(0)
	fx := flexural(FlexuralX, m, l.KLx(), rx)
	fy := flexural(FlexuralY, m, l.KLy(), ry)

	yz := Mode{Name: FlexoTorsionalYZ, Fe: fy.Fe, Slenderness: fy.Slenderness}
	var warnings diag.Warnings
	h := p.FlexuralConstant()
	if p.Xo.Valid() && h.Valid() {
		fez := Torsional(m, p.Cw.Or(0), p.J.Or(0), l.KLz(), a, p.PolarRadius().Or(0))
		yz.Fe = FlexuralTorsional(fy.Fe, fez, h.Or(0))
	} else {
		warnings = warnings.With(diag.New(diag.Fallback, "buckling",
			"shear centre offset or H not available: flexural-torsional mode taken as Fe_y = %.2f MPa", fy.Fe))
	}
	return []Mode{fx, yz}, warnings, nil
}

// singleAngle uses the largest effective length about the minor principal axis
type singleAngle struct{}

func (singleAngle) Modes(p *section.Properties, m aisc.Material, l Lengths) ([]Mode, diag.Warnings, error) {
	if err := p.Require("area", "rz"); err != nil {
		return nil, nil, err
	}
	kl := math.Max(l.KLx(), math.Max(l.KLy(), l.KLz()))
	warnings := diag.Warnings{diag.New(diag.Surrogate, "buckling",
		"single angle: flexural buckling about the minor principal axis with KL = max(KxLx, KyLy, KzLz) = %.0f mm", kl)}
	return []Mode{flexural(FlexuralMinor, m, kl, p.Rz.Or(0))}, warnings, nil
}
