package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/buckling"
	"github.com/alexiusacademia/gosteel/internal/compression"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/interaction"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/cpmech/gosl/chk"
)

func member(tst *testing.T) interaction.Member {
	p, err := section.Plates{D: 400, Bf: 200, Tf: 15, Tw: 10}.IShape("PG400")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	return interaction.Member{
		Section:  p,
		Material: aisc.Steel(250),
		Lengths:  buckling.Lengths{Lx: 4000, Ly: 4000},
		Lb:       4000,
		Cb:       1,
		Solver:   compression.DefaultSolverConfig(),
	}
}

func Test_pdf01(tst *testing.T) {

	chk.PrintTitle("pdf01")

	m := member(tst)
	r, c, err := interaction.Check(m, interaction.Demand{N: 300, Mx: 60, My: 5})
	if err != nil {
		tst.Fatalf("%v", err)
	}
	var buf bytes.Buffer
	err = Write(&buf, Sheet{
		Header:     Header{Project: "Nave industrial", Author: "J. Pérez", Notes: "Columna eje B"},
		Member:     m,
		Capacities: c,
		Check:      &r,
		Date:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.String(tst, string(buf.Bytes()[:5]), "%PDF-")

	effects := aisc.LoadEffects{Dead: aisc.Effect{N: 100, Mx: 10}, Live: aisc.Effect{N: 150, Mx: 20}}
	s, err := interaction.CheckCombinations(m, effects, aisc.LoadCombinations)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	buf.Reset()
	if err := Write(&buf, Sheet{Member: m, Capacities: s.Capacities, Sweep: &s}); err != nil {
		tst.Fatalf("%v", err)
	}
	if buf.Len() < 1000 {
		tst.Errorf("sweep report is too short: %d bytes", buf.Len())
	}
}

func Test_pdf02(tst *testing.T) {

	chk.PrintTitle("pdf02")

	if _, err := Render(Sheet{}); !errors.Is(err, diag.ErrInvalidInput) {
		tst.Errorf("no section: %v", err)
	}
	if _, err := Render(Sheet{Member: member(tst)}); !errors.Is(err, diag.ErrInvalidInput) {
		tst.Errorf("nothing to report: %v", err)
	}
}
