package config

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// cssNumber is a plain CSS decimal, optionally signed and in exponent form.
var cssNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseSelector splits a keyframe selector such as "5%, 10%" into its offsets.
// "from" and "to" stand for 0 and 100. Every offset must lie in [0,100].
func ParseSelector(selector string) ([]float64, error) {
	if strings.TrimSpace(selector) == "" {
		return nil, fmt.Errorf("empty keyframe selector")
	}

	parts := strings.Split(selector, ",")
	offsets := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch strings.ToLower(part) {
		case "from":
			offsets = append(offsets, 0)
			continue
		case "to":
			offsets = append(offsets, 100)
			continue
		case "":
			return nil, fmt.Errorf("empty offset in keyframe selector %q", selector)
		}

		if !strings.HasSuffix(part, "%") {
			return nil, fmt.Errorf("keyframe offset %q must be a percentage, 'from' or 'to'", part)
		}
		number := strings.TrimSpace(strings.TrimSuffix(part, "%"))
		if !cssNumber.MatchString(number) {
			return nil, fmt.Errorf("keyframe offset %q is not a number", part)
		}
		value, err := strconv.ParseFloat(number, 64)
		if err != nil || math.IsNaN(value) {
			return nil, fmt.Errorf("keyframe offset %q is not a number", part)
		}
		if value < 0 || value > 100 {
			return nil, fmt.Errorf("keyframe offset %q is outside 0%%..100%%", part)
		}
		offsets = append(offsets, value)
	}

	return offsets, nil
}

// Selectors returns the keyframe selectors ordered by their first offset.
// Selectors that do not parse sort last, by name.
func (k Keyframes) Selectors() []string {
	type entry struct {
		name   string
		offset float64
		ok     bool
	}

	entries := make([]entry, 0, len(k))
	for selector := range k {
		offsets, err := ParseSelector(selector)
		if err != nil {
			entries = append(entries, entry{name: selector})
			continue
		}
		entries = append(entries, entry{name: selector, offset: offsets[0], ok: true})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.ok != b.ok {
			return a.ok
		}
		if a.ok && a.offset != b.offset {
			return a.offset < b.offset
		}
		return a.name < b.name
	})

	selectors := make([]string, len(entries))
	for i, e := range entries {
		selectors[i] = e.name
	}
	return selectors
}

// animationName returns the keyframes name referenced by a CSS animation
// shorthand: the first token that is not a time, number, keyword or easing.
func animationName(shorthand string) string {
	depth := 0
	for _, token := range strings.Fields(shorthand) {
		opened := depth > 0 || strings.Contains(token, "(")
		depth += strings.Count(token, "(") - strings.Count(token, ")")
		if opened {
			continue
		}
		lower := strings.ToLower(token)
		if animationKeywords[lower] {
			continue
		}
		if isTimeOrNumber(lower) {
			continue
		}
		return token
	}
	return ""
}

var animationKeywords = map[string]bool{
	"none": true, "infinite": true,
	"linear": true, "ease": true, "ease-in": true, "ease-out": true, "ease-in-out": true,
	"step-start": true, "step-end": true,
	"normal": true, "reverse": true, "alternate": true, "alternate-reverse": true,
	"forwards": true, "backwards": true, "both": true,
	"running": true, "paused": true,
	"initial": true, "inherit": true, "unset": true,
}

func isTimeOrNumber(token string) bool {
	token = strings.TrimSuffix(strings.TrimSuffix(token, "ms"), "s")
	_, err := strconv.ParseFloat(token, 64)
	return err == nil
}
