// Package report renders a member check as a PDF calculation sheet
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/interaction"
	"github.com/phpdave11/gofpdf"
)

// spelled replaces the symbols the core fonts lack
var spelled = strings.NewReplacer("φ", "phi", "λ", "lambda", "≤", "<=", "≥", ">=", "√", "sqrt", "π", "pi", "‖", "||")

// Header identifies the calculation
type Header struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// Sheet is everything printed on the report. Sweep is optional.
type Sheet struct {
	Header     Header
	Member     interaction.Member
	Capacities interaction.Capacities
	Check      *interaction.Result
	Sweep      *interaction.Sweep
	Date       time.Time
}

// Render builds the PDF document
func Render(s Sheet) (*gofpdf.Fpdf, error) {
	if s.Member.Section == nil {
		return nil, diag.Invalid("report needs a member section")
	}
	if s.Check == nil && s.Sweep == nil {
		return nil, diag.Invalid("report needs a check or a combination sweep")
	}
	title := s.Header.Title
	if title == "" {
		title = "Steel member check"
	}
	if s.Date.IsZero() {
		s.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	cp1252 := pdf.UnicodeTranslatorFromDescriptor("")
	tr := func(s string) string { return cp1252(spelled.Replace(s)) }
	pdf.SetTitle(title, true)
	pdf.SetAuthor(s.Header.Author, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", s.Header.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", s.Header.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", s.Date.Format("2006-01-02")))
	pdf.Ln(10)

	m, c := s.Member, s.Capacities
	l := c.Axial.Lengths
	heading(pdf, "Member")
	rows(pdf, tr, [][2]string{
		{"Section", fmt.Sprintf("%s (%s)", m.Section.Name(), m.Section.Family)},
		{"Steel", fmt.Sprintf("Fy = %.0f MPa, E = %.0f MPa", m.Material.Fy, m.Material.E)},
		{"Lengths", fmt.Sprintf("Lx = %.0f, Ly = %.0f, Lz = %.0f mm", l.Lx, l.Ly, l.Lz)},
		{"Factors", fmt.Sprintf("Kx = %.2f, Ky = %.2f, Kz = %.2f", l.Kx, l.Ky, l.Kz)},
		{"Lateral bracing", fmt.Sprintf("Lb = %.0f mm, Cb = %.2f", m.Lb, m.Cb)},
	})

	heading(pdf, "Axial compression (chapter E)")
	a := c.Axial
	rows(pdf, tr, [][2]string{
		{"Classification", a.Classification.Class.String()},
		{"Governing mode", a.Mode},
		{"Slenderness", fmt.Sprintf("KL/r = %.1f", a.Slenderness)},
		{"Reduction", fmt.Sprintf("Qs = %.3f, Qa = %.3f, Q = %.3f", a.Reduction.Qs, a.Reduction.Qa, a.Reduction.Q)},
		{"Stresses", fmt.Sprintf("Fe = %.1f MPa, Fcr = %.1f MPa", a.Fe, a.Fcr)},
		{"Strength", fmt.Sprintf("Pn = %.1f kN, φPn = %.1f kN", a.Pn, a.Pd)},
	})

	heading(pdf, "Flexure (chapter F)")
	for _, f := range []struct {
		label string
		mn    float64
		md    float64
		gov   string
	}{
		{"Major axis", c.Major.Mn, c.Major.Md, c.Major.Governing},
		{"Minor axis", c.Minor.Mn, c.Minor.Md, c.Minor.Governing},
	} {
		rows(pdf, tr, [][2]string{{f.label, fmt.Sprintf("Mn = %.2f kN·m, φMn = %.2f kN·m (%s)", f.mn, f.md, f.gov)}})
	}

	if s.Check != nil {
		heading(pdf, "Interaction (chapter H)")
		checkRows(pdf, tr, *s.Check)
	}
	if s.Sweep != nil {
		heading(pdf, "Load combinations")
		sweepTable(pdf, tr, *s.Sweep)
	}

	warnings := c.Warnings()
	if s.Sweep != nil {
		warnings = s.Sweep.Warnings
	}
	if len(warnings) > 0 {
		heading(pdf, "Warnings")
		pdf.SetFont("Helvetica", "", 9)
		for _, w := range warnings {
			pdf.MultiCell(0, 5, tr(w.String()), "", "L", false)
		}
	}
	if s.Header.Notes != "" {
		heading(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(s.Header.Notes), "", "L", false)
	}
	return pdf, pdf.Error()
}

// Write renders the sheet to w
func Write(w io.Writer, s Sheet) error {
	pdf, err := Render(s)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, text)
	pdf.Ln(8)
}

func rows(pdf *gofpdf.Fpdf, tr func(string) string, kv [][2]string) {
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range kv {
		pdf.CellFormat(45, 6, tr(r[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(r[1]), "", 1, "L", false, 0, "")
	}
}

func verdict(pass bool) string {
	if pass {
		return "OK"
	}
	return "NOT OK"
}

func checkRows(pdf *gofpdf.Fpdf, tr func(string) string, r interaction.Result) {
	rows(pdf, tr, [][2]string{
		{"Demand", fmt.Sprintf("Nu = %.1f kN, Mux = %.2f kN·m, Muy = %.2f kN·m", r.Demand.N, r.Demand.Mx, r.Demand.My)},
		{"Axial ratio", fmt.Sprintf("Nu/φPn = %.3f", r.AxialRatio)},
		{"Equation", r.Equation},
		{"Ratio", fmt.Sprintf("%.3f  %s", r.Ratio, verdict(r.Pass))},
	})
}

func sweepTable(pdf *gofpdf.Fpdf, tr func(string) string, s interaction.Sweep) {
	widths := []float64{14, 70, 22, 22, 22, 18, 22}
	head := []string{"ID", "Combination", "Nu (kN)", "Mux", "Muy", "Eq.", "Ratio"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range head {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, cr := range s.Results {
		r := cr.Result
		style := ""
		if cr.Combination.ID == s.Governing.Combination.ID {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		cells := []string{
			cr.Combination.ID,
			cr.Combination.Description,
			fmt.Sprintf("%.1f", r.Demand.N),
			fmt.Sprintf("%.2f", r.Demand.Mx),
			fmt.Sprintf("%.2f", r.Demand.My),
			r.Equation,
			fmt.Sprintf("%.3f", r.Ratio),
		}
		for i, cell := range cells {
			align := "R"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Governing: combination %s, ratio %.3f  %s",
		s.Governing.Combination.ID, s.Governing.Result.Ratio, verdict(s.Pass)))
	pdf.Ln(6)
}
