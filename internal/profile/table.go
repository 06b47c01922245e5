// Package profile reads tabulated steel profile databases (CIRSOC metric
// tables and the AISC shapes database in SI units) and converts their rows
// into section properties.
package profile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/xuri/excelize/v2"
)

// System identifies the unit convention of a table
type System string

const (
	CIRSOC System = "CIRSOC"
	AISC   System = "AISC"
)

// ParseSystem accepts cirsoc or aisc in any case
func ParseSystem(s string) (System, error) {
	switch System(strings.ToUpper(strings.TrimSpace(s))) {
	case CIRSOC:
		return CIRSOC, nil
	case AISC:
		return AISC, nil
	}
	return "", diag.Invalid("unknown profile database %q, use CIRSOC or AISC", s)
}

// FileName is the table looked up under the database directory
func (s System) FileName() string {
	if s == AISC {
		return "perfiles_SI.csv"
	}
	return "cirsoc-shapes-database.csv"
}

// Column names shared by both tables
const (
	TypeColumn        = "Tipo"
	DesignationColumn = "PERFIL"
)

const bom = "\ufeff"

// Row is one profile of a table, keyed by column header
type Row struct {
	Tag         string
	Designation string
	values      map[string]string
	decimal     rune
}

// Text returns the raw cell under a column
func (r Row) Text(col string) string {
	return r.values[col]
}

// Float parses a numeric cell. Empty cells and "-" are absent.
func (r Row) Float(col string) (float64, bool) {
	s := strings.TrimSpace(r.values[col])
	if s == "" || s == "-" {
		return 0, false
	}
	if r.decimal == ',' {
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Name returns the tag and designation as printed in the tables
func (r Row) Name() string {
	if r.Tag == "" {
		return r.Designation
	}
	return r.Tag + " " + r.Designation
}

// Table is an in-memory profile database
type Table struct {
	System  System
	Columns []string
	Rows    []Row

	// Strict turns an ambiguous designation into an error instead of a
	// warning
	Strict bool
}

// ReadCSV loads a table. CIRSOC files are ';' separated with decimal
// commas and may start with a byte order mark; AISC files use ','.
func ReadCSV(r io.Reader, sys System) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	decimal := '.'
	if sys == CIRSOC {
		cr.Comma = ';'
		decimal = ','
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s table: %w", sys, err)
	}
	return build(records, sys, decimal)
}

// ReadXLSX loads the first sheet of a workbook
func ReadXLSX(r io.Reader, sys System) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open %s workbook: %w", sys, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	// numeric cells come back formatted by excelize with a decimal point
	return build(records, sys, '.')
}

// Open loads a .csv or .xlsx file
func Open(path string, sys System) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(f, sys)
	case ".csv":
		return ReadCSV(f, sys)
	}
	return nil, diag.Invalid("%s: profile tables are .csv or .xlsx", path)
}

// Load opens the table of a system under a database directory
func Load(dir string, sys System) (*Table, error) {
	return Open(filepath.Join(dir, sys.FileName()), sys)
}

func build(records [][]string, sys System, decimal rune) (*Table, error) {
	if len(records) < 1 {
		return nil, diag.Invalid("%s table is empty", sys)
	}
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, bom))
	}
	t := &Table{System: sys, Columns: header}
	if !t.has(TypeColumn) || !t.has(DesignationColumn) {
		return nil, diag.Invalid("%s table needs %q and %q columns", sys, TypeColumn, DesignationColumn)
	}

	for _, rec := range records[1:] {
		row := Row{values: make(map[string]string, len(header)), decimal: decimal}
		for i, cell := range rec {
			if i < len(header) {
				row.values[header[i]] = strings.TrimSpace(cell)
			}
		}
		row.Tag = row.values[TypeColumn]
		row.Designation = row.values[DesignationColumn]
		if row.Designation == "" {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func (t *Table) has(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Lookup finds a profile by designation, and by type tag when one is
// given. Without a tag and with several matches the first row is
// returned with an AmbiguousLookup warning, or ErrAmbiguousLookup when
// the table is strict.
func (t *Table) Lookup(designation, tag string) (Row, diag.Warnings, error) {
	designation = strings.TrimSpace(designation)
	tag = strings.TrimSpace(tag)

	var matches []Row
	for _, r := range t.Rows {
		if r.Designation != designation {
			continue
		}
		if tag != "" && !strings.EqualFold(r.Tag, tag) {
			continue
		}
		matches = append(matches, r)
	}

	name := designation
	if tag != "" {
		name = tag + " " + designation
	}
	switch {
	case len(matches) == 0:
		return Row{}, nil, fmt.Errorf("%s in %s: %w", name, t.System, diag.ErrNotFound)
	case len(matches) == 1 || tag != "":
		return matches[0], nil, nil
	}

	tags := distinctTags(matches)
	if t.Strict {
		return Row{}, nil, fmt.Errorf("%s exists as %s: %w", designation, strings.Join(tags, ", "), diag.ErrAmbiguousLookup)
	}
	w := diag.New(diag.AmbiguousLookup, "profile",
		"%s exists as %s, using %s; give a type tag to choose", designation, strings.Join(tags, ", "), matches[0].Name())
	return matches[0], diag.Warnings{w}, nil
}

func distinctTags(rows []Row) []string {
	var tags []string
	seen := map[string]bool{}
	for _, r := range rows {
		if !seen[r.Tag] {
			seen[r.Tag] = true
			tags = append(tags, r.Tag)
		}
	}
	return tags
}

// Duplicate is a designation shared by several rows
type Duplicate struct {
	Designation string   `json:"designation"`
	Count       int      `json:"count"`
	Tags        []string `json:"tags"`
}

// Ambiguous lists the designations that need a type tag, most repeated
// first and in table order on ties
func (t *Table) Ambiguous() []Duplicate {
	var order []string
	groups := map[string][]Row{}
	for _, r := range t.Rows {
		if _, ok := groups[r.Designation]; !ok {
			order = append(order, r.Designation)
		}
		groups[r.Designation] = append(groups[r.Designation], r)
	}

	var out []Duplicate
	for _, d := range order {
		if rows := groups[d]; len(rows) > 1 {
			out = append(out, Duplicate{Designation: d, Count: len(rows), Tags: distinctTags(rows)})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Tags lists the type tags present in the table
func (t *Table) Tags() []string {
	return distinctTags(t.Rows)
}

// ByTag lists the designations of one type tag in table order
func (t *Table) ByTag(tag string) []string {
	var out []string
	for _, r := range t.Rows {
		if strings.EqualFold(r.Tag, tag) {
			out = append(out, r.Designation)
		}
	}
	return out
}
