package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/compression"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/flexure"
	"github.com/alexiusacademia/gosteel/internal/section"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	steelBlue = color.RGBA{R: 70, G: 110, B: 160, A: 255}
	limitRed  = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	zoneGray  = color.Gray{Y: 128}
)

// ExportFlexureCurve saves φMn(Lb) with the Lp and Lr markers of ref.
// ref may be nil for families without lateral-torsional buckling.
func ExportFlexureCurve(points []flexure.CurvePoint, ref *flexure.Result, filename string) error {
	if len(points) < 2 {
		return diag.Invalid("flexure curve needs at least 2 points")
	}
	p := plot.New()
	p.Title.Text = "Design flexural strength"
	p.X.Label.Text = "Unbraced length Lb (mm)"
	p.Y.Label.Text = "φMn (kN·m)"
	if ref != nil {
		p.Title.Text = fmt.Sprintf("%s, %s axis, Cb = %.2f", ref.Designation, ref.Axis, ref.Cb)
	}

	pts := make(plotter.XYs, len(points))
	top := 0.0
	for i, pt := range points {
		pts[i] = plotter.XY{X: pt.Lb, Y: pt.Md}
		top = max(top, pt.Md)
	}
	if err := addCurve(p, pts, "φMn"); err != nil {
		return err
	}

	if ref != nil {
		for _, m := range []struct {
			name string
			at   section.Opt
		}{{"Lp", ref.Lp}, {"Lr", ref.Lr}} {
			x, ok := m.at.Get()
			if !ok || x > points[len(points)-1].Lb {
				continue
			}
			if err := addMarker(p, x, top, m.name); err != nil {
				return err
			}
		}
	}
	p.Y.Min = 0
	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportColumnCurve saves φPn(KL)
func ExportColumnCurve(points []compression.CurvePoint, title, filename string) error {
	if len(points) < 2 {
		return diag.Invalid("column curve needs at least 2 points")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Effective length KL (mm)"
	p.Y.Label.Text = "φPn (kN)"

	pts := make(plotter.XYs, len(points))
	for i, pt := range points {
		pts[i] = plotter.XY{X: pt.KL, Y: pt.Pd}
	}
	if err := addCurve(p, pts, "φPn"); err != nil {
		return err
	}
	p.Y.Min = 0
	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportSection saves the idealised outline with its centroid
func ExportSection(props *section.Properties, filename string) error {
	outer := section.Outline(props)
	if len(outer) < 3 {
		return diag.Invalid("%s: outline needs the overall dimensions", props.Name())
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%s)", props.Name(), props.Family)
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"

	shape, err := plotter.NewPolygon(xys(outer))
	if err != nil {
		return err
	}
	shape.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	shape.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	shape.LineStyle.Width = vg.Points(1.5)
	p.Add(shape)

	if hole := section.Hole(props); len(hole) >= 3 {
		inner, err := plotter.NewPolygon(xys(hole))
		if err != nil {
			return err
		}
		inner.Color = color.White
		inner.LineStyle.Color = shape.LineStyle.Color
		p.Add(inner)
	}

	_, cx, cy := outer.AreaAndCentroid()
	if props.Family == section.RectTube || props.Family == section.CircularTube {
		minX, minY, maxX, maxY := outer.Bounds()
		cx, cy = (minX+maxX)/2, (minY+maxY)/2
	}
	centroid, err := plotter.NewScatter(plotter.XYs{{X: cx, Y: cy}})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Color = limitRed
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroid)

	minX, minY, maxX, maxY := outer.Bounds()
	span := max(maxX-minX, maxY-minY)
	p.X.Min, p.X.Max = minX-0.1*span, minX+1.1*span
	p.Y.Min, p.Y.Max = minY-0.1*span, minY+1.1*span
	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

func xys(poly section.Polygon) plotter.XYs {
	out := make(plotter.XYs, len(poly))
	for i, v := range poly {
		out[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return out
}

func addCurve(p *plot.Plot, pts plotter.XYs, name string) error {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = steelBlue
	p.Add(line)
	p.Legend.Add(name, line)
	p.Legend.Top = true
	return nil
}

func addMarker(p *plot.Plot, x, top float64, name string) error {
	l, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: top}})
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Color = zoneGray
	l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(l)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: top}},
		Labels: []string{fmt.Sprintf("%s=%.0f", name, x)},
	})
	if err != nil {
		return err
	}
	p.Add(lbl)
	return nil
}

// save writes PNG, SVG or PDF by extension; other names get .png
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
