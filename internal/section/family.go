package section

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/diag"
)

// Family is the closed set of cross-section families
type Family int

const (
	Unknown Family = iota
	IShape
	Channel
	Angle
	Tee
	CircularTube
	RectTube
)

// Families lists every supported family in a stable order
var Families = []Family{IShape, Channel, Angle, Tee, CircularTube, RectTube}

var familyNames = map[Family]string{
	IShape:       "I-shape",
	Channel:      "channel",
	Angle:        "angle",
	Tee:          "tee",
	CircularTube: "circular tube",
	RectTube:     "rectangular tube",
}

func (f Family) String() string {
	if n, ok := familyNames[f]; ok {
		return n
	}
	return "unknown"
}

// Supported reports whether f belongs to the closed set
func (f Family) Supported() bool {
	_, ok := familyNames[f]
	return ok
}

// ParseFamily accepts a family name as printed by String
func ParseFamily(s string) (Family, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for f, name := range familyNames {
		n := strings.ToLower(name)
		if key == n || key == strings.ReplaceAll(n, " ", "_") || key == strings.ReplaceAll(n, "-", "") {
			return f, nil
		}
	}
	return Unknown, fmt.Errorf("family %q: %w", s, diag.ErrUnsupportedFamily)
}

func (f Family) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Family) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFamily(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// typeTags maps designation type tags of the CIRSOC and AISC tables
var typeTags = map[string]Family{
	"W": IShape, "M": IShape, "HP": IShape, "S": IShape,
	"IPE": IShape, "IPN": IShape, "IPB": IShape, "IPBL": IShape, "IPBV": IShape,
	"C": Channel, "MC": Channel, "UPN": Channel,
	"L": Angle,
	"T": Tee, "WT": Tee, "MT": Tee, "ST": Tee,
	"PIPE": CircularTube, "TUBO CIRC.": CircularTube,
	"TUBO CUAD.": RectTube, "TUBO RECT.": RectTube, "HSS": RectTube,
}

// SquareTolerance is the relative difference under which two tube
// dimensions are considered equal
const SquareTolerance = 0.05

// FamilyOf resolves a type tag to its family
func FamilyOf(tag string) (Family, error) {
	if f, ok := typeTags[strings.ToUpper(strings.TrimSpace(tag))]; ok {
		return f, nil
	}
	return Unknown, fmt.Errorf("type tag %q: %w", tag, diag.ErrUnsupportedFamily)
}

// TypeTags returns the known tags of a family
func TypeTags(f Family) []string {
	var tags []string
	for t, fam := range typeTags {
		if fam == f {
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}

// IsSquare compares two outer dimensions against SquareTolerance
func IsSquare(d, b float64) bool {
	m := math.Max(math.Max(d, b), 1)
	return math.Abs(d-b)/m < SquareTolerance
}
