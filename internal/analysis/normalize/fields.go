package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Raw is an untrusted JSON object as decoded from a generator response.
type Raw = map[string]interface{}

const (
	FallbackText = "Analysis unavailable"
	LevelLow     = "Low"
	LevelMedium  = "Medium"
	LevelHigh    = "High"

	DefaultConfidence = 0.7
	DefaultSEOScore   = 50
)

var levels = []string{LevelLow, LevelMedium, LevelHigh}

// lookup returns the first present value among keys. Generators drift between
// snake_case and camelCase, so callers list both.
func lookup(raw Raw, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// text returns a trimmed non-empty string or fallback.
func text(raw Raw, fallback string, keys ...string) string {
	v, ok := lookup(raw, keys...)
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

// stringList coerces the value to a list of non-empty strings; never nil.
func stringList(raw Raw, keys ...string) []string {
	out := []string{}
	v, ok := lookup(raw, keys...)
	if !ok {
		return out
	}
	items, ok := v.([]interface{})
	if !ok {
		return out
	}
	for _, item := range items {
		switch s := item.(type) {
		case string:
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		case float64:
			out = append(out, strconv.FormatFloat(s, 'f', -1, 64))
		case json.Number:
			out = append(out, s.String())
		}
	}
	return out
}

// objects returns the list under keys with its original indexes. Non-object
// elements are skipped but still consume an index.
func objects(raw Raw, keys ...string) ([]Raw, []int) {
	v, ok := lookup(raw, keys...)
	if !ok {
		return nil, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, nil
	}
	objs := make([]Raw, 0, len(items))
	idx := make([]int, 0, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]interface{}); ok {
			objs = append(objs, obj)
			idx = append(idx, i)
		}
	}
	return objs, idx
}

func object(raw Raw, keys ...string) Raw {
	v, ok := lookup(raw, keys...)
	if !ok {
		return Raw{}
	}
	if obj, ok := v.(map[string]interface{}); ok {
		return obj
	}
	return Raw{}
}

// enum matches the value case-insensitively against allowed and returns the
// canonical spelling, or fallback.
func enum(raw Raw, allowed []string, fallback string, keys ...string) string {
	v, ok := lookup(raw, keys...)
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	s = strings.TrimSpace(s)
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return a
		}
	}
	return fallback
}

// number reads a finite numeric value. Numeric strings are accepted.
func number(raw Raw, keys ...string) (float64, bool) {
	v, ok := lookup(raw, keys...)
	if !ok {
		return 0, false
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func clampFloat(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// confidence returns a value in [0,1], DefaultConfidence when non-numeric.
func confidence(raw Raw, keys ...string) float64 {
	f, ok := number(raw, keys...)
	if !ok {
		return DefaultConfidence
	}
	return clampFloat(f, 0, 1)
}

// score returns an integer in [0,100], DefaultSEOScore when non-numeric.
func score(raw Raw, keys ...string) int {
	f, ok := number(raw, keys...)
	if !ok {
		return DefaultSEOScore
	}
	return int(math.Round(clampFloat(f, 0, 100)))
}

// count returns a non-negative integer, 0 when non-numeric.
func count(raw Raw, keys ...string) int {
	f, ok := number(raw, keys...)
	if !ok || f < 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// itemID keeps a generator supplied id or synthesizes prefix-<index>.
func itemID(raw Raw, prefix string, index int) string {
	if v, ok := lookup(raw, "id"); ok {
		switch id := v.(type) {
		case string:
			if id = strings.TrimSpace(id); id != "" {
				return id
			}
		case float64:
			return strconv.FormatFloat(id, 'f', -1, 64)
		}
	}
	return fmt.Sprintf("%s-%d", prefix, index)
}
