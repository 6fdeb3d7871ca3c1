package imagebuild

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// ContextExcludes are never sent to the builder and never hashed.
var ContextExcludes = []string{
	"**/__pycache__/**",
	"**/*.pyc",
	"**/.git/**",
}

// ContextDigest hashes the inputs spec copies into the image. Two trees with
// the same paths, modes and contents produce the same digest.
func ContextDigest(dir string, spec Spec) (string, error) {
	if err := CheckContext(dir, spec); err != nil {
		return "", err
	}

	files := []string{spec.Manifest, spec.Readme}
	root := os.DirFS(dir)

	for _, tree := range spec.SourceTrees {
		err := fs.WalkDir(root, tree, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if excluded(p) {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return "", fmt.Errorf("failed to walk %s: %w", tree, err)
		}
	}

	slices.Sort(files)
	files = slices.Compact(files)

	h := sha256.New()
	for _, name := range files {
		if err := hashFile(h, dir, name); err != nil {
			return "", err
		}
	}

	return "sha256:" + hex.EncodeToString(h.Sum(nil)), nil
}

func excluded(p string) bool {
	for _, pattern := range ContextExcludes {
		if doublestar.MatchUnvalidated(pattern, p) {
			return true
		}
	}

	return false
}

func hashFile(w io.Writer, dir, name string) error {
	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", name, err)
	}

	fmt.Fprintf(w, "%s\x00%o\x00%d\x00", name, info.Mode().Perm(), info.Size())
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	return nil
}
