// Package typecheck loads a package from source and reports its type errors.
// Tests use it to prove that misuse of the clock API does not compile.
package typecheck

import (
	"errors"
	"strings"

	"golang.org/x/tools/go/packages"
)

var ErrLoadFailed = errors.New("package could not be loaded")

// Errors type checks the package in dir and returns its type errors. Errors
// that stop the package from being loaded at all are returned as err.
func Errors(dir string) ([]packages.Error, error) {
	return ErrorsWithOverlay(dir, nil)
}

// ErrorsWithOverlay is Errors with the files in overlay, keyed by absolute
// path, added to or replacing the files on disk.
func ErrorsWithOverlay(dir string, overlay map[string][]byte) ([]packages.Error, error) {
	parserConfig := packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedImports |
			packages.NeedDeps |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
		Overlay: overlay,
	}

	pkgs, err := packages.Load(&parserConfig, dir)
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}

	var typeErrors []packages.Error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			switch e.Kind {
			case packages.TypeError:
				typeErrors = append(typeErrors, e)
			default:
				err = errors.Join(err, e)
			}
		}
	}
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}
	return typeErrors, nil
}

// Mentions reports whether any of errs contains substr.
func Mentions(errs []packages.Error, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}
