package profile

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/cpmech/gosl/chk"
)

// table writes rows under a header, leaving absent columns as "-"
func table(tst *testing.T, sys System, header []string, rows ...map[string]string) *Table {
	sep := ","
	if sys == CIRSOC {
		sep = ";"
	}
	var b strings.Builder
	b.WriteString(bom + strings.Join(header, sep) + "\n")
	for _, r := range rows {
		cells := make([]string, len(header))
		for i, h := range header {
			cells[i] = "-"
			if v, ok := r[h]; ok {
				cells[i] = v
			}
		}
		b.WriteString(strings.Join(cells, sep) + "\n")
	}
	t, err := ReadCSV(strings.NewReader(b.String()), sys)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	return t
}

var cirsocHeader = []string{"Tipo", "PERFIL", "Ag", "d", "bf", "tf", "tw", "hw", "Ix", "Sx", "rx", "Zx",
	"Iy", "Sy", "ry", "Zy", "J", "Cw", "bf/2tf", "hw/tw", "x", "eo", "b", "t", "Ix-Iy", "Sx-Sy", "rx-ry", "iv", "b/t"}

func ipe200() map[string]string {
	return map[string]string{"Tipo": "IPE", "PERFIL": "200", "Ag": "28,5", "d": "200", "bf": "100", "tf": "8,5",
		"tw": "5,6", "hw": "159", "Ix": "1943", "Sx": "194", "rx": "8,26", "Zx": "221", "Iy": "142", "Sy": "28,5",
		"ry": "2,24", "Zy": "44,6", "J": "6,98", "Cw": "12990", "bf/2tf": "5,88", "hw/tw": "28,4"}
}

func upn200() map[string]string {
	return map[string]string{"Tipo": "UPN", "PERFIL": "200", "Ag": "32,2", "d": "200", "bf": "75", "tf": "11,5",
		"tw": "8,5", "hw": "151", "Ix": "1910", "Sx": "191", "rx": "7,70", "Zx": "228", "Iy": "148", "Sy": "27,0",
		"ry": "2,14", "J": "11,9", "Cw": "9070", "hw/tw": "17,8", "x": "2,01", "eo": "3,94"}
}

func Test_cirsoc01(tst *testing.T) {

	chk.PrintTitle("cirsoc01")

	t := table(tst, CIRSOC, cirsocHeader, ipe200())
	chk.String(tst, t.Columns[0], TypeColumn)
	chk.Int(tst, "rows", len(t.Rows), 1)

	p, w, err := t.Section("200", "IPE")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Int(tst, "warnings", len(w), 0)
	if p.Family != section.IShape {
		tst.Errorf("family %v", p.Family)
	}
	chk.Float64(tst, "A", 1e-9, p.A.Or(0), 2850)
	chk.Float64(tst, "Ix", 1e-6, p.Ix.Or(0), 1943e4)
	chk.Float64(tst, "Sx", 1e-9, p.Sx.Or(0), 194e3)
	chk.Float64(tst, "rx", 1e-9, p.Rx.Or(0), 82.6)
	chk.Float64(tst, "tf", 1e-12, p.Tf.Or(0), 8.5)
	chk.Float64(tst, "J", 1e-9, p.J.Or(0), 6.98e4)
	chk.Float64(tst, "Cw", 1e-3, p.Cw.Or(0), 12990e6)
	chk.Float64(tst, "bf/2tf", 1e-12, p.FlangeSlenderness().Or(0), 5.88)
	chk.Float64(tst, "hw/tw", 1e-12, p.WebSlenderness().Or(0), 28.4)
}

func Test_lookup01(tst *testing.T) {

	chk.PrintTitle("lookup01")

	t := table(tst, CIRSOC, cirsocHeader, ipe200(), upn200())

	r, w, err := t.Lookup("200", "")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.String(tst, r.Tag, "IPE")
	chk.Int(tst, "W-AMBIG", w.Count(diag.AmbiguousLookup), 1)

	r, w, err = t.Lookup("200", "upn")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.String(tst, r.Name(), "UPN 200")
	chk.Int(tst, "tagged", len(w), 0)

	if _, _, err := t.Lookup("300", ""); !errors.Is(err, diag.ErrNotFound) {
		tst.Errorf("missing designation: %v", err)
	}
	if _, _, err := t.Lookup("200", "HEB"); !errors.Is(err, diag.ErrNotFound) {
		tst.Errorf("missing tag: %v", err)
	}

	t.Strict = true
	if _, _, err := t.Lookup("200", ""); !errors.Is(err, diag.ErrAmbiguousLookup) {
		tst.Errorf("strict: %v", err)
	}
	if _, _, err := t.Lookup("200", "IPE"); err != nil {
		tst.Errorf("strict with tag: %v", err)
	}

	dups := t.Ambiguous()
	chk.Int(tst, "duplicates", len(dups), 1)
	chk.String(tst, dups[0].Designation, "200")
	chk.Int(tst, "count", dups[0].Count, 2)
	chk.String(tst, strings.Join(dups[0].Tags, ","), "IPE,UPN")
	chk.String(tst, strings.Join(t.Tags(), ","), "IPE,UPN")
	chk.Int(tst, "by tag", len(t.ByTag("upn")), 1)
}

func Test_channel01(tst *testing.T) {

	chk.PrintTitle("channel01")

	t := table(tst, CIRSOC, cirsocHeader, upn200())
	p, _, err := t.Section("200", "UPN")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	if p.Family != section.Channel {
		tst.Errorf("family %v", p.Family)
	}
	chk.Float64(tst, "xo", 1e-9, p.Xo.Or(0), 19.3)
	chk.Float64(tst, "bf/tf", 1e-12, p.FlangeSlenderness().Or(0), 75/11.5)
	ro := math.Sqrt(19.3*19.3 + (1910e4+148e4)/3220)
	chk.Float64(tst, "ro", 1e-9, p.PolarRadius().Or(0), ro)
	chk.Float64(tst, "H", 1e-12, p.FlexuralConstant().Or(0), 1-19.3*19.3/(ro*ro))
}

var aiscHeader = []string{"Tipo", "PERFIL", "A", "d", "bf", "tf", "tw", "Ix", "Sx", "rx", "Zx", "Iy", "Sy", "ry", "Zy",
	"J", "Cw", "bf/2tf", "h/tw", "ro", "H", "b", "t", "rz", "b/t", "Ht", "B", "OD", "tdes"}

func Test_aisc01(tst *testing.T) {

	chk.PrintTitle("aisc01")

	t := table(tst, AISC, aiscHeader,
		map[string]string{"Tipo": "W", "PERFIL": "W310X97", "A": "12300", "d": "307", "bf": "305", "tf": "15.4",
			"tw": "9.91", "Ix": "222", "Sx": "1440", "rx": "134", "Zx": "1590", "Iy": "72.4", "Sy": "475", "ry": "76.9",
			"Zy": "722", "J": "912", "Cw": "1570", "bf/2tf": "9.92", "h/tw": "24.6"},
		map[string]string{"Tipo": "C", "PERFIL": "C250X30", "A": "3790", "d": "254", "bf": "69.6", "tf": "11.1",
			"tw": "9.63", "Ix": "32.8", "Sx": "258", "rx": "93.0", "Zx": "317", "Iy": "1.17", "Sy": "21.6", "ry": "17.6",
			"Zy": "42.8", "J": "99.5", "Cw": "7.6", "h/tw": "21.2", "ro": "99.8", "H": "0.890"},
		map[string]string{"Tipo": "L", "PERFIL": "L102X102X9.5", "A": "1850", "b": "102", "t": "9.5", "Ix": "1.81",
			"Sx": "24.9", "rx": "31.2", "rz": "19.9", "b/t": "10.7"},
		map[string]string{"Tipo": "HSS", "PERFIL": "HSS168.3X6.4", "A": "3010", "OD": "168", "tdes": "5.92",
			"Ix": "9.90", "Sx": "118", "rx": "57.4", "Zx": "156"},
		map[string]string{"Tipo": "HSS", "PERFIL": "HSS203X102X6.4", "A": "3550", "Ht": "203", "B": "102",
			"tdes": "5.92", "Ix": "18.4", "Sx": "181", "rx": "72", "Iy": "6.1", "Sy": "120", "ry": "41.5"},
	)

	w, _, err := t.Section("W310X97", "")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Float64(tst, "Ix", 1e-6, w.Ix.Or(0), 222e6)
	chk.Float64(tst, "J", 1e-9, w.J.Or(0), 912e3)
	chk.Float64(tst, "Cw", 1e-3, w.Cw.Or(0), 1570e9)
	chk.Float64(tst, "hw", 1e-9, w.Hw.Or(0), 24.6*9.91)

	c, _, err := t.Section("C250X30", "C")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Float64(tst, "ro", 1e-12, c.PolarRadius().Or(0), 99.8)
	chk.Float64(tst, "H", 1e-12, c.FlexuralConstant().Or(0), 0.890)
	chk.Float64(tst, "xo", 1e-9, c.Xo.Or(0), math.Sqrt(0.11*99.8*99.8))

	l, _, err := t.Section("L102X102X9.5", "L")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	if l.Family != section.Angle {
		tst.Errorf("family %v", l.Family)
	}
	chk.Float64(tst, "rz", 1e-12, l.Rz.Or(0), 19.9)
	chk.Float64(tst, "Sy = Sx", 1e-9, l.Sy.Or(0), 24.9e3)

	round, _, err := t.Section("HSS168.3X6.4", "HSS")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	if round.Family != section.CircularTube {
		tst.Errorf("HSS with OD is round: %v", round.Family)
	}
	chk.Float64(tst, "D", 1e-12, round.D.Or(0), 168)
	chk.Float64(tst, "t", 1e-12, round.T.Or(0), 5.92)
	chk.Float64(tst, "Zy", 1e-9, round.Zy.Or(0), 156e3)

	rect, _, err := t.Section("HSS203X102X6.4", "HSS")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	if rect.Family != section.RectTube || rect.Square() {
		tst.Errorf("rectangular tube expected: %v", rect.Family)
	}
	chk.Float64(tst, "Iy", 1e-6, rect.Iy.Or(0), 6.1e6)
}

func Test_incomplete01(tst *testing.T) {

	chk.PrintTitle("incomplete01")

	row := ipe200()
	delete(row, "Ix")
	t := table(tst, CIRSOC, cirsocHeader, row)
	_, _, err := t.Section("200", "IPE")
	if !errors.Is(err, diag.ErrIncompleteProperties) {
		tst.Fatalf("expected incomplete properties: %v", err)
	}
	var ve *section.ValidationError
	if !errors.As(err, &ve) {
		tst.Fatalf("expected a validation error")
	}
	chk.String(tst, strings.Join(ve.Missing, ","), "ix")

	odd := ipe200()
	odd["Tipo"] = "Z"
	t = table(tst, CIRSOC, cirsocHeader, odd)
	if _, _, err := t.Section("200", ""); !errors.Is(err, diag.ErrUnsupportedFamily) {
		tst.Errorf("unknown tag: %v", err)
	}

	if _, err := ReadCSV(strings.NewReader("a;b\n1;2\n"), CIRSOC); !errors.Is(err, diag.ErrInvalidInput) {
		tst.Errorf("missing key columns: %v", err)
	}
	if _, err := ParseSystem("eurocode"); !errors.Is(err, diag.ErrInvalidInput) {
		tst.Errorf("unknown system: %v", err)
	}
}
