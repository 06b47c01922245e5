package section

import (
	"math"
	"sort"

	"github.com/alexiusacademia/gosteel/internal/diag"
)

// Point represents a 2D coordinate (mm)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is a closed outline, counter-clockwise, without holes
type Polygon []Point

// Outline returns the idealised outer contour of a profile (no fillets,
// origin at the bottom-left corner). Tubes return their outer boundary only.
// The result is empty when the dimensions needed for the family are absent.
func Outline(p *Properties) Polygon {
	d, bf, tf, tw := p.D.Or(0), p.Bf.Or(0), p.Tf.Or(0), p.Tw.Or(0)
	switch p.Family {
	case IShape:
		if d <= 0 || bf <= 0 || tf <= 0 || tw <= 0 {
			return nil
		}
		x1 := (bf - tw) / 2
		x2 := x1 + tw
		return Polygon{
			{0, 0}, {bf, 0}, {bf, tf}, {x2, tf}, {x2, d - tf}, {bf, d - tf},
			{bf, d}, {0, d}, {0, d - tf}, {x1, d - tf}, {x1, tf}, {0, tf},
		}
	case Channel:
		if d <= 0 || bf <= 0 || tf <= 0 || tw <= 0 {
			return nil
		}
		return Polygon{
			{0, 0}, {bf, 0}, {bf, tf}, {tw, tf}, {tw, d - tf}, {bf, d - tf},
			{bf, d}, {0, d},
		}
	case Tee:
		tw = p.Tw.Or(tf)
		if d <= 0 || bf <= 0 || tf <= 0 || tw <= 0 {
			return nil
		}
		x1 := (bf - tw) / 2
		x2 := x1 + tw
		return Polygon{
			{x1, 0}, {x2, 0}, {x2, d - tf}, {bf, d - tf}, {bf, d}, {0, d}, {0, d - tf}, {x1, d - tf},
		}
	case Angle:
		b, t := p.B.Or(0), p.T.Or(0)
		if b <= 0 || t <= 0 {
			return nil
		}
		return Polygon{{0, 0}, {b, 0}, {b, t}, {t, t}, {t, b}, {0, b}}
	case RectTube:
		if d <= 0 || bf <= 0 {
			return nil
		}
		return Polygon{{0, 0}, {bf, 0}, {bf, d}, {0, d}}
	case CircularTube:
		if d <= 0 {
			return nil
		}
		const n = 48
		out := make(Polygon, n)
		r := d / 2
		for i := range out {
			a := 2 * math.Pi * float64(i) / n
			out[i] = Point{r + r*math.Cos(a), r + r*math.Sin(a)}
		}
		return out
	}
	return nil
}

// Bounds returns the bounding box
func (poly Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	if len(poly) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = poly[0].X, poly[0].X
	minY, maxY = poly[0].Y, poly[0].Y
	for _, v := range poly {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}

// AreaAndCentroid uses the shoelace formula
func (poly Polygon) AreaAndCentroid() (area, cx, cy float64) {
	n := len(poly)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
		signedArea += cross
		sumX += (poly[i].X + poly[j].X) * cross
		sumY += (poly[i].Y + poly[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// Spans returns the solid intervals of the outline along the horizontal
// line at height y, sorted by x
func (poly Polygon) Spans(y float64) [][2]float64 {
	var xs []float64
	n := len(poly)
	for i := 0; i < n; i++ {
		v1, v2 := poly[i], poly[(i+1)%n]
		// Check if the edge crosses the Y level
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			xs = append(xs, v1.X+t*(v2.X-v1.X))
		}
	}
	sort.Float64s(xs)

	var out [][2]float64
	for i := 0; i+1 < len(xs); i += 2 {
		out = append(out, [2]float64{xs[i], xs[i+1]})
	}
	return out
}

// WidthAtY calculates the solid width of the outline at a height y
// using horizontal line intersection
func (poly Polygon) WidthAtY(y float64) float64 {
	var width float64
	for _, s := range poly.Spans(y) {
		width += s[1] - s[0]
	}
	return width
}

// Hole returns the inner contour of a tube in the coordinates of Outline,
// or nil for open shapes
func Hole(p *Properties) Polygon {
	t := p.T.Or(0)
	if t <= 0 || (p.Family != RectTube && p.Family != CircularTube) {
		return nil
	}
	inner := *p
	inner.D = Some(p.D.Or(0) - 2*t)
	inner.Bf = Some(p.Bf.Or(0) - 2*t)
	poly := Outline(&inner)
	for i := range poly {
		poly[i].X += t
		poly[i].Y += t
	}
	return poly
}

// integrationSteps is the strip count used by the numerical integrals below
const integrationSteps = 400

// PlasticNeutralAxis returns the height that splits the outline into equal
// areas, by strip integration from the bottom
func (poly Polygon) PlasticNeutralAxis() float64 {
	area, _, _ := poly.AreaAndCentroid()
	_, minY, _, maxY := poly.Bounds()
	if area <= 0 {
		return 0
	}
	dy := (maxY - minY) / integrationSteps
	var acc float64
	for i := 0; i < integrationSteps; i++ {
		y1 := minY + float64(i)*dy
		// Strip midpoint avoids sampling exactly on horizontal edges
		w := poly.WidthAtY(y1 + dy/2)
		if acc+w*dy >= area/2 {
			return y1 + (area/2-acc)/w
		}
		acc += w * dy
	}
	return maxY
}

// PlasticModulusX integrates |y − ypna|·dA over the outline
func (poly Polygon) PlasticModulusX() float64 {
	ypna := poly.PlasticNeutralAxis()
	_, minY, _, maxY := poly.Bounds()
	dy := (maxY - minY) / integrationSteps
	var z float64
	for i := 0; i < integrationSteps; i++ {
		ym := minY + (float64(i)+0.5)*dy
		z += poly.WidthAtY(ym) * dy * math.Abs(ym-ypna)
	}
	return z
}

// Plates describes a doubly symmetric I-shape built from three plates
type Plates struct {
	D  float64 `json:"d"`
	Bf float64 `json:"bf"`
	Tf float64 `json:"tf"`
	Tw float64 `json:"tw"`
}

// IShape computes the full property set of the plate girder, ignoring
// fillets and welds
func (pl Plates) IShape(designation string) (*Properties, error) {
	p := &Properties{
		Designation: designation,
		Family:      IShape,
		D:           Some(pl.D),
		Bf:          Some(pl.Bf),
		Tf:          Some(pl.Tf),
		Tw:          Some(pl.Tw),
	}
	hw := pl.D - 2*pl.Tf
	if pl.D <= 0 || pl.Bf <= 0 || pl.Tf <= 0 || pl.Tw <= 0 || hw <= 0 || pl.Tw > pl.Bf {
		return nil, diag.Invalid("plates of %s: need positive d, bf, tf, tw with d > 2tf and tw ≤ bf", designation)
	}
	ho := pl.D - pl.Tf
	a := 2*pl.Bf*pl.Tf + hw*pl.Tw
	ix := (pl.Bf*math.Pow(pl.D, 3) - (pl.Bf-pl.Tw)*math.Pow(hw, 3)) / 12
	iy := (2*pl.Tf*math.Pow(pl.Bf, 3) + hw*math.Pow(pl.Tw, 3)) / 12

	p.Hw = Some(hw)
	p.A = Some(a)
	p.Ix = Some(ix)
	p.Iy = Some(iy)
	p.Rx = Some(math.Sqrt(ix / a))
	p.Ry = Some(math.Sqrt(iy / a))
	p.Sx = Some(2 * ix / pl.D)
	p.Sy = Some(2 * iy / pl.Bf)
	p.Zx = Some(pl.Bf*pl.Tf*ho + pl.Tw*hw*hw/4)
	p.Zy = Some(pl.Bf*pl.Bf*pl.Tf/2 + hw*pl.Tw*pl.Tw/4)
	p.J = Some((2*pl.Bf*math.Pow(pl.Tf, 3) + ho*math.Pow(pl.Tw, 3)) / 3)
	p.Cw = Some(pl.Tf * math.Pow(pl.Bf, 3) * ho * ho / 24)
	p.Xo = Some(0)
	return p, nil
}
