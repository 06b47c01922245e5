package section

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/cpmech/gosl/chk"
)

func w310() *Properties {
	return &Properties{
		Designation: "W310x97",
		TypeTag:     "W",
		Family:      IShape,
		D:           Some(308), Bf: Some(305), Tf: Some(15.4), Tw: Some(9.9),
		A: Some(12300), Ix: Some(222e6), Iy: Some(72.4e6),
		Rx: Some(134), Ry: Some(76.7), Sx: Some(1440e3), Sy: Some(475e3),
		Zx: Some(1590e3), Zy: Some(723e3), J: Some(907e3), Cw: Some(1.56e12),
	}
}

func Test_opt01(tst *testing.T) {

	chk.PrintTitle("opt01")

	var o Opt
	if _, ok := o.Get(); ok {
		tst.Errorf("zero Opt must be absent")
	}
	chk.Float64(tst, "Or", 1e-15, o.Or(7), 7)
	chk.Float64(tst, "Some", 1e-15, Some(3).Or(7), 3)
	if Some(-1).Valid() || Some(math.Inf(1)).Valid() || !Some(2).Valid() {
		tst.Errorf("Valid must accept positive finite values only")
	}

	var s struct {
		A Opt `json:"a"`
		B Opt `json:"b"`
		C Opt `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a": 12.5, "b": null}`), &s); err != nil {
		tst.Fatalf("unmarshal: %v", err)
	}
	chk.Float64(tst, "a", 1e-15, s.A.Or(0), 12.5)
	if _, ok := s.B.Get(); ok {
		tst.Errorf("null must decode to absent")
	}
	if _, ok := s.C.Get(); ok {
		tst.Errorf("missing key must decode to absent")
	}
	out, _ := json.Marshal(s)
	chk.String(tst, string(out), `{"a":12.5,"b":null,"c":null}`)
}

func Test_family01(tst *testing.T) {

	chk.PrintTitle("family01")

	cases := map[string]Family{
		"W": IShape, "ipe": IShape, "IPBl": IShape, "UPN": Channel, "L": Angle,
		"WT": Tee, "PIPE": CircularTube, "TUBO CIRC.": CircularTube, "HSS": RectTube,
	}
	for tag, want := range cases {
		got, err := FamilyOf(tag)
		if err != nil {
			tst.Errorf("%s: %v", tag, err)
			continue
		}
		chk.String(tst, got.String(), want.String())
	}
	if _, err := FamilyOf("Z"); !errors.Is(err, diag.ErrUnsupportedFamily) {
		tst.Errorf("unknown tag must fail with ErrUnsupportedFamily, got %v", err)
	}

	f, err := ParseFamily("rectangular_tube")
	if err != nil || f != RectTube {
		tst.Errorf("ParseFamily: %v %v", f, err)
	}
	for _, s := range []string{"I-shape", "i-shape", "ishape", "Circular Tube", "circular_tube"} {
		if _, err := ParseFamily(s); err != nil {
			tst.Errorf("ParseFamily(%q): %v", s, err)
		}
	}
	for _, fam := range Families {
		data, err := json.Marshal(&Properties{Designation: "X", Family: fam})
		if err != nil {
			tst.Fatalf("%v", err)
		}
		var back Properties
		if err := json.Unmarshal(data, &back); err != nil {
			tst.Errorf("%s: %v", fam, err)
			continue
		}
		chk.String(tst, back.Family.String(), fam.String())
	}
	if _, err := Parse([]byte(`{"designation": "PG400", "family": "I-shape", "plates": {"d": 400, "bf": 200, "tf": 15, "tw": 10}}`)); err != nil {
		tst.Errorf("inline I-shape: %v", err)
	}
	if !IsSquare(100, 96) || IsSquare(100, 94) {
		tst.Errorf("square tolerance is 5%%")
	}
}

func Test_slenderness01(tst *testing.T) {

	chk.PrintTitle("slenderness01")

	p := w310()
	chk.Float64(tst, "bf/2tf", 1e-12, p.FlangeSlenderness().Or(0), 305/(2*15.4))
	chk.Float64(tst, "h/tw", 1e-12, p.WebSlenderness().Or(0), (308-2*15.4)/9.9)

	p.FlangeRatio = Some(9.9)
	chk.Float64(tst, "tabulated ratio wins", 1e-15, p.FlangeSlenderness().Or(0), 9.9)

	c := &Properties{Family: Channel, Bf: Some(100), Tf: Some(10)}
	chk.Float64(tst, "channel bf/tf", 1e-15, c.FlangeSlenderness().Or(0), 10)

	hss := &Properties{Family: RectTube, D: Some(200), Bf: Some(100), T: Some(5)}
	chk.Float64(tst, "tube flange", 1e-12, hss.FlangeSlenderness().Or(0), 17)
	chk.Float64(tst, "tube web", 1e-12, hss.WebSlenderness().Or(0), 37)
	if hss.Square() {
		tst.Errorf("200x100 is not square")
	}

	ch := &Properties{Family: Channel, A: Some(5000), Ix: Some(20e6), Iy: Some(1e6), Xo: Some(20)}
	ro := math.Sqrt(20*20 + 21e6/5000)
	chk.Float64(tst, "ro", 1e-12, ch.PolarRadius().Or(0), ro)
	chk.Float64(tst, "H", 1e-12, ch.FlexuralConstant().Or(0), 1-400/(ro*ro))
}

func Test_validate01(tst *testing.T) {

	chk.PrintTitle("validate01")

	p := w310()
	if err := p.Validate(); err != nil {
		tst.Fatalf("complete W shape: %v", err)
	}

	p.Sy = None()
	p.Rx = Some(math.NaN())
	err := p.Validate()
	if !errors.Is(err, diag.ErrIncompleteProperties) {
		tst.Fatalf("expected ErrIncompleteProperties, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		tst.Fatalf("expected *ValidationError")
	}
	chk.Strings(tst, "missing", ve.Missing, []string{"rx", "sy"})

	q := &Properties{Designation: "X1"}
	if err := q.Validate(); !errors.Is(err, diag.ErrUnsupportedFamily) {
		tst.Errorf("unknown family must fail with ErrUnsupportedFamily, got %v", err)
	}
}

func Test_geometry01(tst *testing.T) {

	chk.PrintTitle("geometry01")

	pl := Plates{D: 400, Bf: 200, Tf: 12, Tw: 8}
	p, err := pl.IShape("PG400")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	if err := p.Validate(); err != nil {
		tst.Fatalf("built-up shape must be complete: %v", err)
	}

	poly := Outline(p)
	area, cx, cy := poly.AreaAndCentroid()
	chk.Float64(tst, "area", 1e-9, area, p.A.Or(0))
	chk.Float64(tst, "cx", 1e-9, cx, 100)
	chk.Float64(tst, "cy", 1e-9, cy, 200)
	chk.Float64(tst, "width in flange", 1e-12, poly.WidthAtY(5), 200)
	chk.Float64(tst, "width in web", 1e-12, poly.WidthAtY(200.5), 8)
	chk.Float64(tst, "pna", 1e-6, poly.PlasticNeutralAxis(), 200)
	chk.Float64(tst, "Zx by strips", 1e-3*p.Zx.Or(0), poly.PlasticModulusX(), p.Zx.Or(0))

	if _, err := (Plates{D: 20, Bf: 100, Tf: 12, Tw: 8}).IShape("bad"); !errors.Is(err, diag.ErrInvalidInput) {
		tst.Errorf("d < 2tf must be invalid input, got %v", err)
	}
}

func Test_parse01(tst *testing.T) {

	chk.PrintTitle("parse01")

	p, err := Parse([]byte(`{"designation": "PG", "type": "W", "plates": {"d": 400, "bf": 200, "tf": 12, "tw": 8}}`))
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.String(tst, p.Family.String(), "I-shape")
	chk.Float64(tst, "A", 1e-9, p.A.Or(0), 2*200*12+376*8)

	_, err = Parse([]byte(`{"designation": "L1", "family": "angle", "area": 900, "b": 75, "t": 6}`))
	if !errors.Is(err, diag.ErrIncompleteProperties) {
		tst.Errorf("angle without rz/sx must be incomplete, got %v", err)
	}
}

func Test_spans01(tst *testing.T) {

	chk.PrintTitle("spans01")

	tube := &Properties{Family: RectTube, D: Some(200), Bf: Some(100), T: Some(10)}
	outer, hole := Outline(tube), Hole(tube)
	chk.Int(tst, "outer spans", len(outer.Spans(100)), 1)
	s := hole.Spans(100)
	chk.Int(tst, "hole spans", len(s), 1)
	chk.Float64(tst, "hole left", 1e-12, s[0][0], 10)
	chk.Float64(tst, "hole right", 1e-12, s[0][1], 90)
	chk.Float64(tst, "wall", 1e-12, outer.WidthAtY(100)-hole.WidthAtY(100), 20)

	ch := &Properties{Family: Channel, D: Some(200), Bf: Some(75), Tf: Some(11), Tw: Some(8)}
	chk.Int(tst, "channel web", len(Outline(ch).Spans(100)), 1)
	if Hole(ch) != nil {
		tst.Errorf("open shapes have no hole")
	}
}
