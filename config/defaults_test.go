package config

import (
	"reflect"
	"testing"
)

func TestMergeTokensIsAdditive(t *testing.T) {
	base := BaseTokens()
	ext := ThemeExtension{
		FontFamily: map[string][]string{"sans": {"Nunito", "sans"}, "display": {"Oswald"}},
		Animation:  map[string]string{"type": "type 2.7s ease-out infinite"},
		Keyframes: map[string]Keyframes{
			"type": {"0%": {"transform": "translateX(0ch)"}},
		},
	}

	merged := MergeTokens(base, ext)

	if len(merged.FontFamily) != len(base.FontFamily)+1 {
		t.Errorf("Expected %d font stacks, got %d", len(base.FontFamily)+1, len(merged.FontFamily))
	}
	if !reflect.DeepEqual(merged.FontFamily["sans"], []string{"Nunito", "sans"}) {
		t.Errorf("Expected sans to be overridden, got %v", merged.FontFamily["sans"])
	}
	if !reflect.DeepEqual(merged.FontFamily["serif"], base.FontFamily["serif"]) {
		t.Error("Expected serif to keep its base stack")
	}
	if merged.Animation["spin"] != base.Animation["spin"] || merged.Animation["type"] == "" {
		t.Errorf("Expected base and extension animations, got %v", merged.Animation)
	}
	if _, ok := merged.Keyframes["bounce"]; !ok {
		t.Error("Expected base bounce keyframes to be kept")
	}

	merged.Keyframes["type"]["0%"]["transform"] = "changed"
	merged.FontFamily["display"][0] = "changed"
	if ext.Keyframes["type"]["0%"]["transform"] != "translateX(0ch)" || ext.FontFamily["display"][0] != "Oswald" {
		t.Error("Expected MergeTokens not to alias the extension")
	}
	if !reflect.DeepEqual(BaseTokens(), base) {
		t.Error("Expected MergeTokens not to modify the base set")
	}
}

func TestMergeTokensEmptyExtension(t *testing.T) {
	if got := MergeTokens(BaseTokens(), ThemeExtension{}); !reflect.DeepEqual(got, BaseTokens()) {
		t.Error("Expected an empty extension to yield the base set")
	}
}

func TestBaseKeyframesAreValid(t *testing.T) {
	for name, frames := range BaseTokens().Keyframes {
		for selector := range frames {
			if _, err := ParseSelector(selector); err != nil {
				t.Errorf("Base keyframes %s has invalid selector %q: %v", name, selector, err)
			}
		}
	}
}
