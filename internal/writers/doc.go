// Package writers turns parsed records into a generated file.
//
// Design:
//   • Renderers (internal/output) own all presentation knowledge.
//   • The registry maps a --format name to its renderer.
//   • WriteFile owns delivery: whole-file overwrite or stdout.
package writers
