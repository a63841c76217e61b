// ABOUTME: Quantity holds a user-entered reps, weight, or RPE value as text.
// ABOUTME: Numeric parsing for aggregation lives here so every caller agrees on it.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quantity is a numeric-or-textual field. The empty string means unset.
// Aggregations use Number, which treats blank or non-numeric text as 0.
type Quantity string

// QuantityOf formats a number as a Quantity.
func QuantityOf(v float64) Quantity {
	return Quantity(strconv.FormatFloat(v, 'f', -1, 64))
}

// Number parses the quantity. Blank, non-numeric, NaN and infinite values yield 0.
func (q Quantity) Number() float64 {
	s := strings.TrimSpace(string(q))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// IsNumeric reports whether the quantity parses as a finite number.
func (q Quantity) IsNumeric() bool {
	s := strings.TrimSpace(string(q))
	if s == "" {
		return false
	}
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsBlank reports whether the quantity is empty after trimming.
func (q Quantity) IsBlank() bool {
	return strings.TrimSpace(string(q)) == ""
}

func (q Quantity) String() string {
	return string(q)
}

// UnmarshalJSON accepts a JSON string, number, or null.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*q = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode quantity: %w", err)
		}
		*q = Quantity(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode quantity: %w", err)
	}
	*q = Quantity(n.String())
	return nil
}
