package driver

import (
	"context"
	"errors"
	"path/filepath"

	"mofkit/internal/cst"
	"mofkit/internal/diag"
	"mofkit/internal/grammar"
	"mofkit/internal/parser"
	"mofkit/internal/source"
)

type StreamResult struct {
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
}

// Stream parses one file into a caller-supplied handler. Every error the
// handler sees is also collected in the bag. The returned error is a load
// failure or the error that aborted the parse.
func Stream(ctx context.Context, path string, h parser.Handler, maxDiagnostics int) (*StreamResult, error) {
	maxDiagnostics = diagnosticLimit(maxDiagnostics)
	fs := source.NewFileSetWithBase(filepath.Dir(path))
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	res := &StreamResult{FileSet: fs, File: fs.Get(fileID), Bag: diag.NewBag(maxDiagnostics)}
	p := parser.New(parser.Options{Reporter: diag.BagReporter{Bag: res.Bag}})
	err = p.ParseContext(ctx, res.File, &collector{Handler: h, bag: res.Bag})
	res.Bag.Dedup()
	res.Bag.Sort()
	return res, err
}

type collector struct {
	parser.Handler
	bag *diag.Bag
}

func (c *collector) Error(err *parser.Error) error {
	c.bag.Add(err.Diagnostic())
	return c.Handler.Error(err)
}

type TreeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *cst.Tree // nil when the grammar failed
	Bag     *diag.Bag
}

// Tree runs only the grammar over one file.
func Tree(path string, maxDiagnostics int) (*TreeResult, error) {
	maxDiagnostics = diagnosticLimit(maxDiagnostics)
	fs := source.NewFileSetWithBase(filepath.Dir(path))
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	res := &TreeResult{FileSet: fs, File: fs.Get(fileID), Bag: diag.NewBag(maxDiagnostics)}
	tree, err := grammar.Parse(res.File, grammar.Options{Reporter: diag.BagReporter{Bag: res.Bag}})
	if err != nil {
		var se *grammar.SyntaxError
		if !errors.As(err, &se) {
			return nil, err
		}
		res.Bag.Add(se.Diagnostic())
		res.Bag.Dedup()
		return res, nil
	}
	res.Tree = tree
	return res, nil
}
