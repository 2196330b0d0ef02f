// Package compilers provides the source compilers and the registry that binds them to media types.
package compilers

import (
	"errors"
	"strings"
)

// compileError carries a compiler's diagnostics verbatim.
func compileError(diagnostics string) error {
	diagnostics = strings.TrimSpace(diagnostics)
	if diagnostics == "" {
		diagnostics = "compiler reported no diagnostics"
	}
	return errors.New(diagnostics)
}
