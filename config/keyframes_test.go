package config

import (
	"reflect"
	"testing"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		selector string
		want     []float64
		wantErr  bool
	}{
		{selector: "0%", want: []float64{0}},
		{selector: "5%, 10%", want: []float64{5, 10}},
		{selector: "95%,100%", want: []float64{95, 100}},
		{selector: "12.5%", want: []float64{12.5}},
		{selector: ".5%", want: []float64{0.5}},
		{selector: "1e1%", want: []float64{10}},
		{selector: "from", want: []float64{0}},
		{selector: "TO", want: []float64{100}},
		{selector: "from, 50%, to", want: []float64{0, 50, 100}},
		{selector: "100.5%", wantErr: true},
		{selector: "-1%", wantErr: true},
		{selector: "50", wantErr: true},
		{selector: "half%", wantErr: true},
		{selector: "NaN%", wantErr: true},
		{selector: "1_0%", wantErr: true},
		{selector: "0x1p6%", wantErr: true},
		{selector: "Inf%", wantErr: true},
		{selector: "10%,", wantErr: true},
		{selector: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			got, err := ParseSelector(tt.selector)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.selector, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected %q to parse, got %v", tt.selector, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestKeyframesSelectors(t *testing.T) {
	frames := Keyframes{
		"95%, 100%": {"transform": "translateX(11ch)"},
		"0%":        {"transform": "translateX(0ch)"},
		"to":        {"opacity": "1"},
		"15%, 20%":  {"transform": "translateX(2ch)"},
		"5%, 10%":   {"transform": "translateX(1ch)"},
		"bogus":     {"opacity": "0"},
	}

	want := []string{"0%", "5%, 10%", "15%, 20%", "95%, 100%", "to", "bogus"}
	if got := frames.Selectors(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestAnimationName(t *testing.T) {
	tests := map[string]string{
		"cursor .6s linear infinite alternate":           "cursor",
		"type 2.7s ease-out .8s infinite alternate both": "type",
		"1s cubic-bezier(0, 0, 0.2, 1) infinite ping":    "ping",
		"steps(4, end) 300ms infinite blink":             "blink",
		"none":                                           "",
		"1s infinite":                                    "",
	}

	for shorthand, want := range tests {
		if got := animationName(shorthand); got != want {
			t.Errorf("animationName(%q): expected '%s', got '%s'", shorthand, want, got)
		}
	}
}
