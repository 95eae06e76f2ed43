package source

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"fortio.org/safecast"
)

// FileSet owns the documents of one run and resolves spans against them.
// Adding files is not safe for concurrent use; the driver loads every file
// before its parse workers start, after which reads are safe.
type FileSet struct {
	files   []File
	byPath  map[string]FileID // path -> most recent id
	baseDir string
}

func NewFileSet() *FileSet {
	return &FileSet{byPath: make(map[string]FileID)}
}

// NewFileSetWithBase is NewFileSet with diagnostics paths shown relative to
// baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	s := NewFileSet()
	s.baseDir = baseDir
	return s
}

// BaseDir returns the base directory, or the working directory when unset.
func (s *FileSet) BaseDir() string {
	if s.baseDir != "" {
		return s.baseDir
	}
	wd, _ := os.Getwd()
	return wd
}

// Add registers already-normalised content under path. Adding a path twice
// yields a second id; GetLatest returns the newer one.
func (s *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("source %s exceeds 4 GiB: %w", path, err))
	}
	n, err := safecast.Conv[uint32](len(s.files))
	if err != nil {
		panic(fmt.Errorf("too many source files: %w", err))
	}
	id := FileID(n)
	path = cleanPath(path)
	s.files = append(s.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: lineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	s.byPath[path] = id
	return id
}

// Load reads path from disk.
func (s *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, flags := normalize(content)
	return s.Add(path, content, flags), nil
}

// LoadReader drains r before registering it, so the grammar never sees a
// partially read document.
func (s *FileSet) LoadReader(name string, r io.Reader) (FileID, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", name, err)
	}
	return s.AddVirtual(name, content), nil
}

// AddVirtual registers an in-memory document.
func (s *FileSet) AddVirtual(name string, content []byte) FileID {
	content, flags := normalize(content)
	return s.Add(name, content, flags|FileVirtual)
}

func (s *FileSet) Get(id FileID) *File { return &s.files[id] }
func (s *FileSet) Len() int            { return len(s.files) }

func (s *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := s.byPath[cleanPath(path)]
	return id, ok
}

// Resolve converts span into start and end positions.
func (s *FileSet) Resolve(span Span) (start, end LineCol) {
	f := s.Get(span.File)
	return f.position(span.Start), f.position(span.End)
}
