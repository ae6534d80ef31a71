//go:build tools

// Build-tag-gated file tracking build-time-only tool dependencies in go.mod,
// the standard pattern for go:generate tools that otherwise wouldn't show
// up as an import anywhere in the module.
package tools

import (
	_ "golang.org/x/tools/cmd/stringer"
)
