package source

import (
	"path/filepath"
	"slices"
)

// FileID indexes a File inside its FileSet.
type FileID uint32

// FileFlags records what normalisation did to a file and where it came from.
type FileFlags uint8

const (
	FileVirtual FileFlags = 1 << iota // in memory: a test, stdin or a reader
	FileHadBOM
	FileNormalizedCRLF
)

// File is one MOF document after normalisation.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Hash    [32]byte // SHA-256 of Content
	Flags   FileFlags
}

// position maps a byte offset to its line and column.
func (f *File) position(off uint32) LineCol {
	// Lines before off equal the newlines strictly before it.
	n, _ := slices.BinarySearch(f.LineIdx, off)
	if n == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	return LineCol{Line: uint32(n) + 1, Col: off - f.LineIdx[n-1]} // #nosec G115 -- n <= len(LineIdx)
}

// GetLine returns line lineNum (1-based) without its newline, or "" when
// out of range.
func (f *File) GetLine(lineNum uint32) string {
	lines := uint32(len(f.LineIdx)) + 1 // #nosec G115 -- bounded by content size
	if lineNum == 0 || lineNum > lines {
		return ""
	}
	start, end := uint32(0), uint32(len(f.Content)) // #nosec G115 -- checked in Add
	if lineNum > 1 {
		start = f.LineIdx[lineNum-2] + 1
	}
	if lineNum < lines {
		end = f.LineIdx[lineNum-1]
	}
	return string(f.Content[start:end])
}

// Text returns the source covered by span, or "" for a span outside the file.
func (f *File) Text(span Span) string {
	if span.Start > span.End || int(span.End) > len(f.Content) {
		return ""
	}
	return string(f.Content[span.Start:span.End])
}

// DisplayPath shortens an absolute path to one relative to baseDir when the
// file lies below it.
func (f *File) DisplayPath(baseDir string) string {
	if baseDir == "" || f.Flags&FileVirtual != 0 || !filepath.IsAbs(f.Path) {
		return f.Path
	}
	if rel, err := filepath.Rel(baseDir, f.Path); err == nil && filepath.IsLocal(rel) {
		return filepath.ToSlash(rel)
	}
	return f.Path
}
