package output

// Format names accepted by --format.
const (
	FormatRuby = "ruby"
	FormatJSON = "json"
)

// RubyPrefix and RubySuffix frame the generated assignment. Record lines sit
// between them; the prefix's trailing space is part of the format.
const (
	RubyPrefix = "systems =[ "
	RubySuffix = "]"
)
