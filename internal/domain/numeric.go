package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a lenient numeric value. Upstream forms post quantities and
// monetary values as either JSON numbers or free-text strings; anything
// unparseable coerces to zero rather than failing the request.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*a = 0
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = Amount(coerceFloat(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// Float returns the underlying value.
func (a Amount) Float() float64 {
	return float64(a)
}

func coerceFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Tolerate thousands separators from UI input.
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// CoerceFloat parses a UI-entered numeric string, returning 0 for anything
// unparseable. Negative values pass through; validation is the caller's job.
func CoerceFloat(s string) float64 {
	return coerceFloat(s)
}
