// Package compression computes the axial compressive strength of a member
// per AISC 360-10 chapter E, including the E7 slender-element reduction.
package compression

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/buckling"
	"github.com/alexiusacademia/gosteel/internal/classify"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// Result holds the axial capacity of one member. Stresses in MPa,
// capacities in kN.
type Result struct {
	Designation    string                  `json:"designation"`
	Family         section.Family          `json:"family"`
	Fy             float64                 `json:"fy"`
	Lengths        buckling.Lengths        `json:"lengths"`
	Classification classify.Classification `json:"classification"`
	Reduction      ReductionFactors        `json:"reduction"`
	Modes          []buckling.Mode         `json:"modes"`
	Mode           string                  `json:"mode"`
	Slenderness    float64                 `json:"slenderness"`
	Fe             float64                 `json:"fe"`
	Fcr            float64                 `json:"fcr"`
	Pn             float64                 `json:"pn"`
	Pd             float64                 `json:"pd"`
	Warnings       diag.Warnings           `json:"warnings"`
}

// Capacity runs classification, buckling analysis and, for slender
// sections, the Q iteration, and returns Pn = Fcr·A and Pd = φc·Pn
func Capacity(p *section.Properties, m aisc.Material, l buckling.Lengths, cfg SolverConfig) (Result, error) {
	if _, err := buckling.For(p.Family); err != nil {
		return Result{}, fmt.Errorf("compression %s: %w", p.Name(), err)
	}
	if err := p.Require("area"); err != nil {
		return Result{}, err
	}
	l, err := l.Normalize()
	if err != nil {
		return Result{}, err
	}

	cls, err := classify.Section(p, m)
	if err != nil {
		return Result{}, err
	}
	bk, err := buckling.Analyze(p, m, l)
	if err != nil {
		return Result{}, err
	}

	rf, err := Solve(p, cls, m, bk.Governing.Fe, cfg)
	if err != nil {
		return Result{}, err
	}
	if !cls.Slender() {
		rf.Notes = rf.Notes.With(diag.New(diag.Note, "reduction",
			"section is %s: Q = 1.0", cls.Class))
	}

	fcr := aisc.CriticalStress(bk.Governing.Fe, m.Fy, rf.Q)
	pn := fcr * p.A.Or(0) / 1000

	return Result{
		Designation:    p.Name(),
		Family:         p.Family,
		Fy:             m.Fy,
		Lengths:        l,
		Classification: cls,
		Reduction:      rf,
		Modes:          bk.Modes,
		Mode:           bk.Governing.Name,
		Slenderness:    bk.MaxSlenderness,
		Fe:             bk.Governing.Fe,
		Fcr:            fcr,
		Pn:             pn,
		Pd:             aisc.PhiCompression * pn,
		Warnings:       diag.Merge(cls.Notes, rf.Notes, bk.Warnings),
	}, nil
}

// CurvePoint is one sample of the column curve
type CurvePoint struct {
	KL float64 `json:"kl"` // mm
	Pd float64 `json:"pd"` // kN
}

// Curve samples Pd over n effective lengths up to klMax, the same length
// applied about every axis
func Curve(p *section.Properties, m aisc.Material, cfg SolverConfig, klMax float64, n int) ([]CurvePoint, error) {
	if err := diag.Positive("KL max", klMax); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, diag.Invalid("curve needs at least 2 samples: %d", n)
	}
	out := make([]CurvePoint, 0, n)
	for i := 1; i <= n; i++ {
		kl := klMax * float64(i) / float64(n)
		res, err := Capacity(p, m, buckling.Lengths{Lx: kl, Ly: kl, Lz: kl}, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, CurvePoint{KL: kl, Pd: res.Pd})
	}
	return out, nil
}
