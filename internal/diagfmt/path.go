package diagfmt

import (
	"path/filepath"

	"mofkit/internal/source"
)

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if f.Flags&source.FileVirtual != 0 {
			return f.Path
		}
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
		return f.Path
	case PathModeRelative:
		base := fs.BaseDir()
		if abs, err := filepath.Abs(f.Path); err == nil && f.Flags&source.FileVirtual == 0 {
			if rel, err := filepath.Rel(base, abs); err == nil && filepath.IsLocal(rel) {
				return filepath.ToSlash(rel)
			}
		}
		return f.Path
	case PathModeBasename:
		return filepath.Base(f.Path)
	}
	return f.DisplayPath(fs.BaseDir())
}

// located reports whether span can be resolved in fs.
func located(span source.Span, fs *source.FileSet) bool {
	return fs != nil && int(span.File) < fs.Len()
}
