package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/classify"
	"github.com/alexiusacademia/gosteel/internal/compression"
	"github.com/alexiusacademia/gosteel/internal/flexure"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/cpmech/gosl/chk"
)

func girder(tst *testing.T) *section.Properties {
	p, err := section.Plates{D: 400, Bf: 200, Tf: 15, Tw: 10}.IShape("PG400")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	return p
}

func Test_box01(tst *testing.T) {

	chk.PrintTitle("box01")

	s := DrawSummaryBox("FLEXURE", []string{"φMn = 123.4 kN·m", "governing: lateral-torsional buckling"})
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	chk.Int(tst, "lines", len(lines), 6)
	n := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		chk.Int(tst, "width", utf8.RuneCountInString(l), n)
	}
}

func Test_section01(tst *testing.T) {

	chk.PrintTitle("section01")

	s := DrawSection(girder(tst))
	rows := strings.Split(strings.TrimRight(s, "\n"), "\n")
	// blank, title, top border, raster, bottom border, dimensions
	chk.Int(tst, "rows", len(rows), SectionRows+5)
	if !strings.Contains(s, "█") {
		tst.Errorf("no steel drawn:\n%s", s)
	}

	// the web row is narrower than the flange rows
	mid := rows[3+SectionRows/2]
	top := rows[3]
	if n := strings.Count(mid, "█"); n == 0 || n >= strings.Count(top, "█") {
		tst.Errorf("web must be narrower than the flange:\n%s", s)
	}

	tube := &section.Properties{Designation: "T200", Family: section.RectTube,
		D: section.Some(200), Bf: section.Some(200), T: section.Some(20)}
	s = DrawSection(tube)
	rows = strings.Split(strings.TrimRight(s, "\n"), "\n")
	mid = rows[3+SectionRows/2]
	if !strings.Contains(strings.Trim(mid, " │"), " ") {
		tst.Errorf("tube must be hollow:\n%s", s)
	}

	if !strings.Contains(DrawSection(&section.Properties{Family: section.Angle}), "no outline") {
		tst.Errorf("missing dimensions must be reported")
	}
}

func Test_gauges01(tst *testing.T) {

	chk.PrintTitle("gauges01")

	p := girder(tst)
	c, err := classify.Section(p, aisc.Steel(250))
	if err != nil {
		tst.Fatalf("%v", err)
	}
	s := DrawSlenderness(c)
	for _, e := range c.Elements {
		if !strings.Contains(s, e.Name) {
			tst.Errorf("missing element %q", e.Name)
		}
	}

	pts, err := flexure.Curve(p, aisc.Steel(250), flexure.Major, 1, 12000, 30)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	if !strings.Contains(DrawFlexureCurve(pts), "Lb from 0 to 12000 mm") {
		tst.Errorf("caption missing")
	}
	if DrawCurve(nil, "", 5) != "" {
		tst.Errorf("empty curve draws nothing")
	}
}

func Test_export01(tst *testing.T) {

	chk.PrintTitle("export01")

	p := girder(tst)
	m := aisc.Steel(250)
	dir := tst.TempDir()

	pts, err := flexure.Curve(p, m, flexure.Major, 1, 12000, 25)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	ref, err := flexure.Capacity(p, m, flexure.Major, 6000, 1)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	mnlb := filepath.Join(dir, "plots", "mn-lb.png")
	if err := ExportFlexureCurve(pts, &ref, mnlb); err != nil {
		tst.Fatalf("%v", err)
	}

	cols, err := compression.Curve(p, m, compression.DefaultSolverConfig(), 10000, 20)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	pdkl := filepath.Join(dir, "pd-kl.svg")
	if err := ExportColumnCurve(cols, "PG400", pdkl); err != nil {
		tst.Fatalf("%v", err)
	}

	outline := filepath.Join(dir, "section")
	if err := ExportSection(p, outline); err != nil {
		tst.Fatalf("%v", err)
	}

	for _, f := range []string{mnlb, pdkl, outline + ".png"} {
		info, err := os.Stat(f)
		if err != nil {
			tst.Errorf("%v", err)
			continue
		}
		if info.Size() == 0 {
			tst.Errorf("%s is empty", f)
		}
	}

	if err := ExportFlexureCurve(pts[:1], nil, mnlb); err == nil {
		tst.Errorf("one point is not a curve")
	}
}
