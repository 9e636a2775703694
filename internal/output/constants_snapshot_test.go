package output

import "testing"

func TestRubyFrame_Stable(t *testing.T) {
	if RubyPrefix != "systems =[ " || RubySuffix != "]" {
		t.Fatalf("ruby frame changed: %q ... %q", RubyPrefix, RubySuffix)
	}
}

func TestFormats_Stable(t *testing.T) {
	if FormatRuby != "ruby" || FormatJSON != "json" {
		t.Fatalf("output format constants changed")
	}
}
