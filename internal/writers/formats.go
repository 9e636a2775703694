package writers

import "systemsgen/internal/output"

func init() {
	Register(output.FormatRuby, output.WriteRuby)
	Register(output.FormatJSON, output.WriteJSON)
}
