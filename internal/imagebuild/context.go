package imagebuild

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var ErrMissingInput = errors.New("missing build input")

// MissingInputError lists every required path absent from the build context.
type MissingInputError struct {
	Paths []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingInput, strings.Join(e.Paths, ", "))
}

func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

// CheckContext verifies that the manifest, the readme and every source tree
// of spec exist under dir. Trees must be directories, the rest regular files.
func CheckContext(dir string, spec Spec) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to open build context: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("build context %q is not a directory", dir)
	}

	var missing []string

	for _, name := range []string{spec.Manifest, spec.Readme} {
		if !exists(dir, name, false) {
			missing = append(missing, name)
		}
	}

	for _, tree := range spec.SourceTrees {
		if !exists(dir, tree, true) {
			missing = append(missing, tree+"/")
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)
		return &MissingInputError{Paths: missing}
	}

	return nil
}

func exists(dir, name string, wantDir bool) bool {
	info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		return false
	}

	if wantDir {
		return info.IsDir()
	}

	return info.Mode().IsRegular()
}
