// Package interaction checks members under combined axial compression and
// biaxial bending per AISC 360-10 chapter H (H1-1a / H1-1b).
package interaction

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/buckling"
	"github.com/alexiusacademia/gosteel/internal/compression"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/flexure"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// Equation tags
const (
	H11a = "H1-1a"
	H11b = "H1-1b"
)

// AxialThreshold selects H1-1a when Nu/Pd reaches it
const AxialThreshold = 0.2

// Member is one section under one set of unbraced lengths
type Member struct {
	Section  *section.Properties      `json:"section"`
	Material aisc.Material            `json:"material"`
	Lengths  buckling.Lengths         `json:"lengths"`
	Lb       float64                  `json:"lb"` // Unbraced length for LTB (mm)
	Cb       float64                  `json:"cb"`
	Solver   compression.SolverConfig `json:"solver"`
}

// Capacities holds the design strengths a check divides into
type Capacities struct {
	Axial compression.Result `json:"axial"`
	Major flexure.Result     `json:"major"`
	Minor flexure.Result     `json:"minor"`
}

// Pd returns φc·Pn (kN)
func (c Capacities) Pd() float64 { return c.Axial.Pd }

// Mdx returns φb·Mnx (kN·m)
func (c Capacities) Mdx() float64 { return c.Major.Md }

// Mdy returns φb·Mny (kN·m)
func (c Capacities) Mdy() float64 { return c.Minor.Md }

// Warnings merges the warnings of the three engines
func (c Capacities) Warnings() diag.Warnings {
	return diag.Merge(c.Axial.Warnings, c.Major.Warnings, c.Minor.Warnings)
}

// Evaluate runs the axial engine and the flexural engine about both axes
func Evaluate(m Member) (Capacities, error) {
	if m.Section == nil {
		return Capacities{}, diag.Invalid("member has no section")
	}
	axial, err := compression.Capacity(m.Section, m.Material, m.Lengths, m.Solver)
	if err != nil {
		return Capacities{}, err
	}
	major, err := flexure.Capacity(m.Section, m.Material, flexure.Major, m.Lb, m.Cb)
	if err != nil {
		return Capacities{}, err
	}
	minor, err := flexure.Capacity(m.Section, m.Material, flexure.Minor, m.Lb, m.Cb)
	if err != nil {
		return Capacities{}, err
	}
	return Capacities{Axial: axial, Major: major, Minor: minor}, nil
}

// Demand holds the required strengths: Nu (kN, compression positive),
// Mux and Muy (kN·m)
type Demand = aisc.Effect

// Result is the outcome of one interaction check
type Result struct {
	Demand      Demand        `json:"demand"`
	Pd          float64       `json:"pd"`
	Mdx         float64       `json:"mdx"`
	Mdy         float64       `json:"mdy"`
	AxialRatio  float64       `json:"axial_ratio"`  // Nu/Pd
	MomentRatio float64       `json:"moment_ratio"` // Mux/Mdx + Muy/Mdy
	Equation    string        `json:"equation"`
	Ratio       float64       `json:"ratio"`
	Pass        bool          `json:"pass"`
	Warnings    diag.Warnings `json:"warnings"`
}

// Interact applies H1-1 to a demand using capacities already computed
func Interact(c Capacities, d Demand) (Result, error) {
	pd, mdx, mdy := c.Pd(), c.Mdx(), c.Mdy()
	if !(pd > 0) {
		return Result{}, diag.Invalid("design axial strength must be positive: Pd = %.4g kN", pd)
	}
	if d.N < 0 || math.IsNaN(d.N) {
		return Result{}, diag.Invalid("Nu must be a compression force, zero or positive: %g kN", d.N)
	}
	mx, my := math.Abs(d.Mx), math.Abs(d.My)
	if mx > 0 && !(mdx > 0) {
		return Result{}, diag.Invalid("Mux = %.4g kN·m with Mdx = %.4g kN·m", d.Mx, mdx)
	}
	if my > 0 && !(mdy > 0) {
		return Result{}, diag.Invalid("Muy = %.4g kN·m with Mdy = %.4g kN·m", d.My, mdy)
	}

	r := Result{Demand: d, Pd: pd, Mdx: mdx, Mdy: mdy, Warnings: c.Warnings()}
	r.AxialRatio = d.N / pd
	if mx > 0 {
		r.MomentRatio += mx / mdx
	}
	if my > 0 {
		r.MomentRatio += my / mdy
	}
	if r.AxialRatio >= AxialThreshold {
		r.Equation = H11a
		r.Ratio = r.AxialRatio + 8.0/9.0*r.MomentRatio
	} else {
		r.Equation = H11b
		r.Ratio = r.AxialRatio/2 + r.MomentRatio
	}
	r.Pass = r.Ratio <= 1.0
	return r, nil
}

// Check evaluates the member capacities and applies H1-1 to the demand
func Check(m Member, d Demand) (Result, Capacities, error) {
	c, err := Evaluate(m)
	if err != nil {
		return Result{}, Capacities{}, err
	}
	r, err := Interact(c, d)
	if err != nil {
		return Result{}, c, err
	}
	return r, c, nil
}
