package profile

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// column names one or more alternative headers and the factor converting
// the tabulated unit to mm-based units
type column struct {
	names []string
	scale float64
}

func col(scale float64, names ...string) column {
	return column{names: names, scale: scale}
}

func (c column) read(r Row) section.Opt {
	for _, n := range c.names {
		if v, ok := r.Float(n); ok {
			return section.Some(v * c.scale)
		}
	}
	return section.None()
}

// columns maps section field names to table columns
type columns map[string]column

// CIRSOC tables tabulate cm, cm², cm⁴, cm³ and cm⁶ except for plate
// dimensions in mm. The AISC SI database uses mm with inertias in 10⁶ mm⁴,
// moduli in 10³ mm³, J in 10³ mm⁴ and Cw in 10⁹ mm⁶.
var (
	cirsocRolled = columns{
		"area": col(100, "Ag"),
		"d":    col(1, "d"), "bf": col(1, "bf"), "tf": col(1, "tf"), "tw": col(1, "tw"), "hw": col(1, "hw"),
		"ix": col(1e4, "Ix"), "sx": col(1e3, "Sx"), "rx": col(10, "rx"), "zx": col(1e3, "Zx"),
		"iy": col(1e4, "Iy"), "sy": col(1e3, "Sy"), "ry": col(10, "ry"), "zy": col(1e3, "Zy"),
		"j": col(1e4, "J"), "cw": col(1e6, "Cw"),
		"flange_ratio": col(1, "bf/2tf"), "web_ratio": col(1, "hw/tw"),
	}
	aiscRolled = columns{
		"area": col(1, "A"),
		"d":    col(1, "d"), "bf": col(1, "bf"), "tf": col(1, "tf"), "tw": col(1, "tw"),
		"ix": col(1e6, "Ix"), "sx": col(1e3, "Sx"), "rx": col(1, "rx"), "zx": col(1e3, "Zx"),
		"iy": col(1e6, "Iy"), "sy": col(1e3, "Sy"), "ry": col(1, "ry"), "zy": col(1e3, "Zy"),
		"j": col(1e3, "J"), "cw": col(1e9, "Cw"),
		"flange_ratio": col(1, "bf/2tf"), "web_ratio": col(1, "h/tw"),
	}

	cirsocAngle = columns{
		"area": col(100, "Ag"), "b": col(1, "b"), "t": col(1, "t"),
		"ix": col(1e4, "Ix-Iy"), "sx": col(1e3, "Sx-Sy"), "rx": col(10, "rx-ry"),
		"rz": col(10, "iv"), "leg_ratio": col(1, "b/t"),
		"j": col(1e4, "J"), "cw": col(1e6, "Cw"),
	}
	aiscAngle = columns{
		"area": col(1, "A"), "b": col(1, "b"), "t": col(1, "t"),
		"ix": col(1e6, "Ix"), "sx": col(1e3, "Sx"), "rx": col(1, "rx"),
		"rz": col(1, "rz"), "leg_ratio": col(1, "b/t"),
		"j": col(1e3, "J"), "cw": col(1e9, "Cw"),
	}

	cirsocTee = columns{
		"area": col(100, "Ag"),
		"d":    col(1, "d"), "bf": col(1, "bf"), "tf": col(1, "tf"),
		"ix": col(1e4, "Ix"), "sx": col(1e3, "Sx"), "rx": col(10, "rx"), "zx": col(1e3, "Zx"),
		"iy": col(1e4, "Iy"), "sy": col(1e3, "Sy"), "ry": col(10, "ry"), "zy": col(1e3, "Zy"),
		"j": col(1e4, "J"), "cw": col(1e6, "Cw"),
		"flange_ratio": col(1, "bf/2tf"), "stem_ratio": col(1, "d/tw"),
	}
	aiscTee = columns{
		"area": col(1, "A"),
		"d":    col(1, "d"), "bf": col(1, "bf"), "tf": col(1, "tf"), "tw": col(1, "tw"),
		"ix": col(1e6, "Ix"), "sx": col(1e3, "Sx"), "rx": col(1, "rx"), "zx": col(1e3, "Zx"),
		"iy": col(1e6, "Iy"), "sy": col(1e3, "Sy"), "ry": col(1, "ry"), "zy": col(1e3, "Zy"),
		"j": col(1e3, "J"), "cw": col(1e9, "Cw"),
		"flange_ratio": col(1, "bf/2tf"), "stem_ratio": col(1, "d/tw"),
	}

	cirsocTube = columns{
		"area": col(100, "Ag"),
		"d":    col(1, "d"), "bf": col(1, "bf"), "t": col(1, "tf"),
		"ix": col(1e4, "Ix"), "sx": col(1e3, "Sx"), "rx": col(10, "rx"), "zx": col(1e3, "Zx"),
		"iy": col(1e4, "Iy"), "sy": col(1e3, "Sy"), "ry": col(10, "ry"), "zy": col(1e3, "Zy"),
		"j": col(1e4, "J"),
	}
	aiscTube = columns{
		"area": col(1, "A"),
		"d":    col(1, "Ht", "OD"), "bf": col(1, "B"), "t": col(1, "tdes", "t"),
		"ix": col(1e6, "Ix"), "sx": col(1e3, "Sx"), "rx": col(1, "rx"), "zx": col(1e3, "Zx"),
		"iy": col(1e6, "Iy"), "sy": col(1e3, "Sy"), "ry": col(1, "ry"), "zy": col(1e3, "Zy"),
		"j": col(1e3, "J"),
	}
)

func mapFor(f section.Family, sys System) columns {
	aisc := sys == AISC
	pick := func(c, a columns) columns {
		if aisc {
			return a
		}
		return c
	}
	switch f {
	case section.IShape, section.Channel:
		return pick(cirsocRolled, aiscRolled)
	case section.Angle:
		return pick(cirsocAngle, aiscAngle)
	case section.Tee:
		return pick(cirsocTee, aiscTee)
	}
	return pick(cirsocTube, aiscTube)
}

func target(p *section.Properties, name string) *section.Opt {
	switch name {
	case "area":
		return &p.A
	case "d":
		return &p.D
	case "bf":
		return &p.Bf
	case "tf":
		return &p.Tf
	case "tw":
		return &p.Tw
	case "hw":
		return &p.Hw
	case "b":
		return &p.B
	case "t":
		return &p.T
	case "ix":
		return &p.Ix
	case "iy":
		return &p.Iy
	case "rx":
		return &p.Rx
	case "ry":
		return &p.Ry
	case "rz":
		return &p.Rz
	case "sx":
		return &p.Sx
	case "sy":
		return &p.Sy
	case "zx":
		return &p.Zx
	case "zy":
		return &p.Zy
	case "j":
		return &p.J
	case "cw":
		return &p.Cw
	case "flange_ratio":
		return &p.FlangeRatio
	case "web_ratio":
		return &p.WebRatio
	case "leg_ratio":
		return &p.LegRatio
	case "stem_ratio":
		return &p.StemRatio
	}
	panic(fmt.Sprintf("profile: no section field %q", name))
}

// Family resolves the family of a row. AISC HSS rows are round when they
// tabulate an outside diameter and no height.
func Family(r Row) (section.Family, error) {
	f, err := section.FamilyOf(r.Tag)
	if err != nil {
		return section.Unknown, fmt.Errorf("%s: %w", r.Name(), err)
	}
	if f == section.RectTube {
		_, hasOD := r.Float("OD")
		_, hasHt := r.Float("Ht")
		if hasOD && !hasHt {
			return section.CircularTube, nil
		}
	}
	return f, nil
}

// Extract converts a table row to section properties in mm-based units
// and validates the family's required set
func Extract(r Row, sys System) (*section.Properties, error) {
	f, err := Family(r)
	if err != nil {
		return nil, err
	}
	p := &section.Properties{Designation: r.Designation, TypeTag: r.Tag, Family: f}
	for name, c := range mapFor(f, sys) {
		*target(p, name) = c.read(r)
	}

	switch f {
	case section.IShape:
		if sys == AISC {
			p.Hw = scaled(p.WebRatio, p.Tw)
		}
	case section.Channel:
		if sys == AISC {
			p.Hw = scaled(p.WebRatio, p.Tw)
		}
		// bf/tf is the channel flange ratio; the tabulated bf/2tf is not
		p.FlangeRatio = section.None()
		shearCentre(p, r, sys)
	case section.Angle:
		// equal legs
		p.Iy, p.Sy, p.Ry = p.Ix, p.Sx, p.Rx
	case section.CircularTube:
		p.Iy, p.Sy, p.Ry, p.Zy = p.Ix, p.Sx, p.Rx, p.Zx
	case section.RectTube:
		if !p.Bf.Valid() {
			p.Bf = p.D
		}
		if p.Square() {
			p.Iy, p.Sy, p.Ry, p.Zy = or(p.Iy, p.Ix), or(p.Sy, p.Sx), or(p.Ry, p.Rx), or(p.Zy, p.Zx)
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func scaled(ratio, t section.Opt) section.Opt {
	if !ratio.Valid() || !t.Valid() {
		return section.None()
	}
	return section.Some(ratio.Or(0) * t.Or(0))
}

func or(v, def section.Opt) section.Opt {
	if v.Valid() {
		return v
	}
	return def
}

// shearCentre sets xo, and ro and H when the AISC table gives them.
// CIRSOC rows give the centroid x and the shear centre eo from the web.
func shearCentre(p *section.Properties, r Row, sys System) {
	scale := 10.0
	if sys == AISC {
		scale = 1
		ro, okRo := r.Float("ro")
		h, okH := r.Float("H")
		if okRo && okH && ro > 0 && h > 0 && h <= 1 {
			p.Ro, p.H = section.Some(ro), section.Some(h)
			p.Xo = section.Some(math.Sqrt((1 - h) * ro * ro))
			return
		}
	}
	x, okX := r.Float("x")
	eo, okE := r.Float("eo")
	if okX && okE {
		p.Xo = section.Some(math.Abs(x-eo) * scale)
	}
}

// Section looks a profile up and extracts its properties
func (t *Table) Section(designation, tag string) (*section.Properties, diag.Warnings, error) {
	r, w, err := t.Lookup(designation, tag)
	if err != nil {
		return nil, nil, err
	}
	p, err := Extract(r, t.System)
	if err != nil {
		return nil, w, err
	}
	return p, w, nil
}
