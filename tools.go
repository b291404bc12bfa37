//go:build tools

// Package tools pins build tool dependencies used via go:generate directives.
package tools

import (
	_ "golang.org/x/tools/cmd/stringer"
)
