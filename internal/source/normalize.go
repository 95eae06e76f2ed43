package source

import (
	"bytes"
	"path/filepath"
)

var (
	utf8BOM = []byte("\xEF\xBB\xBF")
	crlf    = []byte("\r\n")
	lf      = []byte("\n")
)

// normalize strips a leading UTF-8 byte order mark and turns CRLF pairs into
// LF. A lone CR is kept; the lexer treats it as whitespace.
func normalize(content []byte) ([]byte, FileFlags) {
	var flags FileFlags
	if rest, ok := bytes.CutPrefix(content, utf8BOM); ok {
		content = rest
		flags |= FileHadBOM
	}
	if bytes.Contains(content, crlf) {
		content = bytes.ReplaceAll(content, crlf, lf)
		flags |= FileNormalizedCRLF
	}
	return content, flags
}

func lineIndex(content []byte) []uint32 {
	idx := make([]uint32, 0, bytes.Count(content, lf))
	for off := 0; ; {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return idx
		}
		off += i
		idx = append(idx, uint32(off)) // #nosec G115 -- content size checked in Add
		off++
	}
}

func cleanPath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
