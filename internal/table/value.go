package table

import (
	"strconv"
	"strings"
)

// Value is a single cell. The zero Value is not missing; use Missing()
// to build the missing marker.
type Value struct {
	text    string
	num     float64
	numeric bool
	missing bool
}

func Missing() Value { return Value{missing: true} }

func Text(s string) Value { return Value{text: s} }

// Number stores f in canonical form: integral values print without a
// fractional part.
func Number(f float64) Value {
	return Value{text: strconv.FormatFloat(f, 'f', -1, 64), num: f, numeric: true}
}

func (v Value) IsMissing() bool { return v.missing }

func (v Value) IsNumeric() bool { return v.numeric }

func (v Value) Float() float64 { return v.num }

// String returns the cell's text, or "" for the missing marker.
func (v Value) String() string { return v.text }

// Less orders non-missing values: numbers numerically, text byte-wise.
// Numbers sort before text when kinds differ.
func (v Value) Less(o Value) bool {
	switch {
	case v.numeric && o.numeric:
		return v.num < o.num
	case v.numeric != o.numeric:
		return v.numeric
	default:
		return strings.Compare(v.text, o.text) < 0
	}
}
