package section

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Opt is a geometric quantity that may be absent from a tabulated row.
// The zero value is absent. JSON null and missing keys decode to absent.
type Opt struct {
	v  float64
	ok bool
}

// Some wraps a present value
func Some(v float64) Opt { return Opt{v: v, ok: true} }

// None is the absent value
func None() Opt { return Opt{} }

// Get returns the value and whether it is present
func (o Opt) Get() (float64, bool) { return o.v, o.ok }

// Or returns the value, or def when absent
func (o Opt) Or(def float64) float64 {
	if o.ok {
		return o.v
	}
	return def
}

// Valid reports whether the value is present, finite and positive
func (o Opt) Valid() bool {
	return o.ok && o.v > 0 && !math.IsInf(o.v, 0)
}

// Usable drops values that are not positive finite numbers
func (o Opt) Usable() Opt {
	if o.Valid() {
		return o
	}
	return Opt{}
}

func (o Opt) MarshalJSON() ([]byte, error) {
	if !o.ok || math.IsNaN(o.v) || math.IsInf(o.v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, o.v, 'g', -1, 64), nil
}

func (o *Opt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Opt{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o Opt) String() string {
	if !o.ok {
		return "n/a"
	}
	return strconv.FormatFloat(o.v, 'f', -1, 64)
}
