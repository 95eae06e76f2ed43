package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mofkit/internal/diag"
	"mofkit/internal/handler"
	"mofkit/internal/mof"
	"mofkit/internal/observ"
	"mofkit/internal/parser"
	"mofkit/internal/source"
	"mofkit/internal/trace"
)

const defaultMaxDiagnostics = 100

type Options struct {
	Jobs            int  // parallel files; 0 means GOMAXPROCS
	MaxDiagnostics  int  // per file; 0 means 100
	ContinueOnError bool // keep extracting after a failed production
	Cache           *DiskCache
	Progress        ProgressSink
}

// Result is the outcome of one file. Err is set when the file could not be
// read or the parse was aborted; Document then holds what was extracted
// before the failure, if anything.
type Result struct {
	Path     string
	FileID   source.FileID
	Document *Document
	Bag      *diag.Bag
	Cached   bool
	Err      error
}

// ListFiles returns the .mof files under dir, sorted.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".mof") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseFile parses a single file.
func ParseFile(ctx context.Context, path string, opts Options) (*source.FileSet, *Result, error) {
	fileSet := source.NewFileSetWithBase(filepath.Dir(path))
	results, err := parseFiles(ctx, fileSet, []string{path}, opts)
	if len(results) == 0 {
		return fileSet, nil, err
	}
	return fileSet, &results[0], err
}

// ParseDir parses every .mof file under dir in parallel. Results follow the
// order of ListFiles. The error is non-nil only when listing failed or ctx
// was cancelled; per-file failures are in Result.Err.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []Result, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	results, err := parseFiles(ctx, fileSet, files, opts)
	return fileSet, results, err
}

type loaded struct {
	id   source.FileID
	err  error
	took time.Duration
}

func parseFiles(ctx context.Context, fileSet *source.FileSet, files []string, opts Options) ([]Result, error) {
	opts.MaxDiagnostics = diagnosticLimit(opts.MaxDiagnostics)
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	root, ctx := trace.BeginCtx(ctx, trace.ScopeDriver, "parse")
	defer root.WithAttr("files", strconv.Itoa(len(files))).End("")

	for _, path := range files {
		opts.emit(path, StageRead, StatusQueued, nil, 0)
	}

	// The FileSet is filled here, before any worker starts; workers only read it.
	read, _ := trace.BeginCtx(ctx, trace.ScopePass, "read")
	loads := make([]loaded, len(files))
	for i, path := range files {
		opts.emit(path, StageRead, StatusWorking, nil, 0)
		start := time.Now()
		id, err := fileSet.Load(path)
		loads[i] = loaded{id: id, err: err, took: time.Since(start)}
		if err != nil {
			opts.emit(path, StageRead, StatusError, err, loads[i].took)
			continue
		}
		opts.emit(path, StageRead, StatusDone, nil, loads[i].took)
	}
	read.End("")

	results := make([]Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loads[i].err != nil {
				results[i] = loadFailure(path, loads[i].err, opts)
				return nil
			}
			results[i] = parseOne(gctx, fileSet.Get(loads[i].id), path, loads[i].took, opts)
			return nil
		})
	}
	return results, g.Wait()
}

func loadFailure(path string, err error, opts Options) Result {
	bag := diag.NewBag(opts.MaxDiagnostics)
	bag.Add(diag.NewError(diag.IOLoadFailed, source.Span{}, "failed to load file: "+err.Error()))
	return Result{Path: path, Bag: bag, Err: err}
}

func parseOne(ctx context.Context, file *source.File, path string, readTook time.Duration, opts Options) Result {
	sp, ctx := trace.BeginCtx(ctx, trace.ScopeFile, path)
	timer := observ.NewTimer()
	timer.Add("read", readTook)
	res := Result{Path: path, FileID: file.ID}

	key := CacheKey(file.Hash, opts.ContinueOnError)
	if doc, ok := cached(ctx, opts.Cache, key); ok {
		doc.remap(file.ID)
		doc.Path = path
		timer.Add("cache", 0)
		doc.Timing = timer.Report()
		res.Document, res.Cached = doc, true
		res.Bag = diag.NewBag(opts.MaxDiagnostics)
		for _, d := range doc.Diagnostics {
			res.Bag.Add(d)
		}
		opts.emit(path, StageExtract, StatusCached, nil, 0)
		sp.End("cached")
		return res
	}

	start := time.Now()
	bag := diag.NewBag(opts.MaxDiagnostics)
	h := handler.NewDefault(opts.ContinueOnError)
	parseIdx := timer.Begin("parse")
	extractIdx := -1
	staged := &stageHandler{Handler: h, onExtract: func() {
		timer.End(parseIdx, "")
		extractIdx = timer.Begin("extract")
		opts.emit(path, StageExtract, StatusWorking, nil, 0)
	}}

	opts.emit(path, StageParse, StatusWorking, nil, 0)
	p := parser.New(parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	err := p.ParseContext(ctx, file, staged)
	if extractIdx < 0 {
		timer.End(parseIdx, "")
	} else {
		timer.End(extractIdx, strconv.Itoa(len(h.Declarations()))+" declarations")
	}

	for _, e := range h.Errors {
		bag.Add(e.Diagnostic())
	}
	bag.Dedup()
	bag.Sort()

	res.Bag = bag
	res.Document = NewDocument(path, h, bag)
	res.Document.Timing = timer.Report()
	if err != nil {
		res.Err = err
		opts.emit(path, StageExtract, StatusError, err, time.Since(start))
		sp.Fail(err)
		return res
	}

	if opts.Cache != nil {
		if perr := opts.Cache.Put(key, res.Document); perr != nil {
			trace.Failure(trace.FromContext(ctx), trace.ScopeFile, "cache-put", perr, sp.Context())
		}
	}
	status := StatusDone
	if bag.HasErrors() {
		status = StatusError
	}
	opts.emit(path, StageExtract, status, nil, time.Since(start))
	sp.WithAttr("diagnostics", strconv.Itoa(bag.Len())).End("")
	return res
}

// cached treats an unreadable entry as a miss.
func cached(ctx context.Context, c *DiskCache, key Digest) (*Document, bool) {
	if c == nil {
		return nil, false
	}
	doc, ok, err := c.Get(key)
	if err != nil {
		trace.Failure(trace.FromContext(ctx), trace.ScopeFile, "cache-get", err, trace.CurrentSpan(ctx))
		return nil, false
	}
	return doc, ok
}

// stageHandler notices the first production, which marks the end of the
// grammar pass.
type stageHandler struct {
	parser.Handler
	extracting bool
	onExtract  func()
}

func (h *stageHandler) StartProduction(kind mof.Production) error {
	if !h.extracting {
		h.extracting = true
		h.onExtract()
	}
	return h.Handler.StartProduction(kind)
}
