package diagfmt

import (
	"encoding/json"
	"io"

	"mofkit/internal/diag"
	"mofkit/internal/driver"
	"mofkit/internal/observ"
	"mofkit/internal/source"
)

type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string        `json:"message"`
	Location *LocationJSON `json:"location,omitempty"`
}

type DiagnosticJSON struct {
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Location *LocationJSON `json:"location,omitempty"`
	Notes    []NoteJSON    `json:"notes,omitempty"`
}

type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// FileJSON is one entry of the parse output.
type FileJSON struct {
	Path        string           `json:"path"`
	Cached      bool             `json:"cached,omitempty"`
	Error       string           `json:"error,omitempty"`
	Document    *driver.Document `json:"document,omitempty"`
	Timing      *observ.Report   `json:"timing,omitempty"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
}

type DocumentsOutput struct {
	Files []FileJSON `json:"files"`
	Count int        `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, opts JSONOpts) *LocationJSON {
	if !located(span, fs) {
		return nil
	}
	loc := &LocationJSON{
		File:      formatPath(fs.Get(span.File), fs, opts.PathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if opts.IncludePositions {
		start, end := fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

func diagnosticsJSON(items []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) []DiagnosticJSON {
	n := len(items)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}
	out := make([]DiagnosticJSON, 0, n)
	for _, d := range items[:n] {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
		}
		if d.Code.HasLocation() {
			dj.Location = makeLocation(d.Primary, fs, opts)
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{Message: note.Msg, Location: makeLocation(note.Span, fs, opts)})
			}
		}
		out = append(out, dj)
	}
	return out
}

// BuildDiagnosticsOutput prepares the JSON form without encoding it.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	ds := diagnosticsJSON(bag.Items(), fs, opts)
	return DiagnosticsOutput{Diagnostics: ds, Count: len(ds)}
}

func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	return encode(w, BuildDiagnosticsOutput(bag, fs, opts))
}

// BuildDocumentsOutput pairs every parsed file with its declarations and
// diagnostics.
func BuildDocumentsOutput(results []driver.Result, fs *source.FileSet, opts JSONOpts) DocumentsOutput {
	out := DocumentsOutput{Files: make([]FileJSON, 0, len(results))}
	for _, r := range results {
		fj := FileJSON{
			Path:        r.Path,
			Cached:      r.Cached,
			Document:    r.Document,
			Diagnostics: []DiagnosticJSON{},
		}
		if r.Err != nil {
			fj.Error = r.Err.Error()
		}
		if r.Document != nil && len(r.Document.Timing.Phases) > 0 {
			timing := r.Document.Timing
			fj.Timing = &timing
		}
		if r.Bag != nil {
			fj.Diagnostics = diagnosticsJSON(r.Bag.Items(), fs, opts)
		}
		out.Files = append(out.Files, fj)
	}
	out.Count = len(out.Files)
	return out
}

func Documents(w io.Writer, results []driver.Result, fs *source.FileSet, opts JSONOpts) error {
	return encode(w, BuildDocumentsOutput(results, fs, opts))
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
