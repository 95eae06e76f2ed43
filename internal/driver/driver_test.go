package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mofkit/internal/cst"
	"mofkit/internal/diag"
	"mofkit/internal/driver"
	"mofkit/internal/handler"
	"mofkit/internal/token"
)

const (
	managedElement = `
[Abstract, Description ("ManagedElement is an abstract class.")]
class CIM_ManagedElement {
      [MaxLen(256) : ToSubclass]
   string Caption;
   uint16 Codes[] = {1, 2};
};`
	disk = `
#pragma include ("qualifiers.mof")
instance of Acme_LogicalDisk as $Disk { DriveLetter = "C"; Empty = null; };`
	broken = `
class A { string S[99999999999999999999999]; };
class B { string T; };`
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	}
	return dir
}

type collector struct {
	mu     sync.Mutex
	events []driver.Event
}

func (c *collector) OnEvent(ev driver.Event) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
}

func (c *collector) statuses(file string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, ev := range c.events {
		if ev.File == file {
			out = append(out, string(ev.Stage)+":"+string(ev.Status))
		}
	}
	return out
}

func TestListFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"b.mof":        "",
		"a.MOF":        "",
		"sub/c.mof":    "",
		"notes.txt":    "",
		"sub/skip.mfl": "",
	})
	files, err := driver.ListFiles(dir)
	require.NoError(t, err)
	rel := make([]string, len(files))
	for i, f := range files {
		rel[i], _ = filepath.Rel(dir, f)
	}
	assert.Equal(t, []string{"a.MOF", "b.mof", filepath.Join("sub", "c.mof")}, rel)
}

func TestParseDir(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a_element.mof": managedElement,
		"b_disk.mof":    disk,
		"c_broken.mof":  broken,
	})
	sink := &collector{}
	fs, results, err := driver.ParseDir(context.Background(), dir, driver.Options{
		Jobs:            2,
		ContinueOnError: true,
		Progress:        sink,
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 3, fs.Len())

	elem := results[0]
	require.NoError(t, elem.Err)
	assert.Equal(t, "a_element.mof", filepath.Base(elem.Path))
	require.Len(t, elem.Document.Classes, 1)
	assert.Equal(t, "CIM_ManagedElement", elem.Document.Classes[0].Name)
	assert.Zero(t, elem.Bag.Len())
	_, ok := elem.Document.Timing.Phase("extract")
	assert.True(t, ok)

	d := results[1].Document
	require.Len(t, d.Instances, 1)
	assert.Equal(t, "Disk", d.Instances[0].Alias)
	assert.Equal(t, []string{"qualifiers.mof"}, d.Includes)
	require.Len(t, d.Pragmas, 1)
	assert.Equal(t, 2, d.Len())

	bad := results[2]
	require.NoError(t, bad.Err)
	require.Len(t, bad.Document.Classes, 1)
	assert.Equal(t, "B", bad.Document.Classes[0].Name)
	require.True(t, bad.Bag.HasErrors())
	assert.Equal(t, diag.ExtInvalidArraySize, bad.Bag.Items()[0].Code)
	assert.Equal(t, bad.FileID, bad.Bag.Items()[0].Primary.File)

	assert.Equal(t, []string{
		"read:queued", "read:working", "read:done",
		"parse:working", "extract:working", "extract:done",
	}, sink.statuses(elem.Path))
	assert.Equal(t, "extract:error", sink.statuses(bad.Path)[5])
}

func TestAbortKeepsPartialDocument(t *testing.T) {
	dir := writeTree(t, map[string]string{"x.mof": "class Z { };" + broken})
	_, res, err := driver.ParseFile(context.Background(), filepath.Join(dir, "x.mof"), driver.Options{})
	require.NoError(t, err)
	require.Error(t, res.Err)
	require.Len(t, res.Document.Classes, 1)
	assert.Equal(t, "Z", res.Document.Classes[0].Name)
	assert.True(t, res.Bag.HasErrors())
}

func TestParseFileMissing(t *testing.T) {
	_, res, err := driver.ParseFile(context.Background(), filepath.Join(t.TempDir(), "none.mof"), driver.Options{})
	require.NoError(t, err)
	require.Error(t, res.Err)
	assert.Nil(t, res.Document)
	require.Equal(t, 1, res.Bag.Len())
	assert.Equal(t, diag.IOLoadFailed, res.Bag.Items()[0].Code)
}

func TestParseDirCancelled(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.mof": managedElement})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := driver.ParseDir(ctx, dir, driver.Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCacheHit(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.mof": managedElement, "b.mof": disk, "c.mof": broken})
	cache, err := driver.OpenDiskCache(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	opts := driver.Options{ContinueOnError: true, Cache: cache}

	_, first, err := driver.ParseDir(context.Background(), dir, opts)
	require.NoError(t, err)
	for _, r := range first {
		assert.False(t, r.Cached)
	}

	_, second, err := driver.ParseDir(context.Background(), dir, opts)
	require.NoError(t, err)
	require.Len(t, second, 3)
	for i, r := range second {
		assert.True(t, r.Cached, r.Path)
		assert.Equal(t, first[i].Document.Classes, r.Document.Classes)
		assert.Equal(t, first[i].Document.Instances, r.Document.Instances)
		assert.Equal(t, first[i].Document.Includes, r.Document.Includes)
		assert.Equal(t, first[i].Bag.Len(), r.Bag.Len())
	}
	assert.Equal(t, diag.ExtInvalidArraySize, second[2].Bag.Items()[0].Code)
	assert.Equal(t, second[2].FileID, second[2].Bag.Items()[0].Primary.File)

	// A different error policy is a different key.
	_, strict, err := driver.ParseDir(context.Background(), dir, driver.Options{Cache: cache})
	require.NoError(t, err)
	assert.False(t, strict[0].Cached)
}

func TestCorruptCacheEntryIsAMiss(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.mof": managedElement})
	cacheDir := filepath.Join(t.TempDir(), "cache")
	cache, err := driver.OpenDiskCache(cacheDir)
	require.NoError(t, err)
	opts := driver.Options{Cache: cache}

	_, _, err = driver.ParseDir(context.Background(), dir, opts)
	require.NoError(t, err)

	entries, err := filepath.Glob(filepath.Join(cacheDir, "docs", "*.mp"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(entries[0], []byte{0xc1, 0x00}, 0o600))

	_, results, err := driver.ParseDir(context.Background(), dir, opts)
	require.NoError(t, err)
	assert.False(t, results[0].Cached)
	assert.Len(t, results[0].Document.Classes, 1)

	require.NoError(t, cache.DropAll())
	entries, err = filepath.Glob(filepath.Join(cacheDir, "docs", "*.mp"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCacheKey(t *testing.T) {
	var content [32]byte
	content[0] = 1
	assert.Equal(t, driver.CacheKey(content, true), driver.CacheKey(content, true))
	assert.NotEqual(t, driver.CacheKey(content, true), driver.CacheKey(content, false))
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := driver.DefaultCacheDir("mofkit")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "mofkit"), dir)
}

func TestTokenize(t *testing.T) {
	dir := writeTree(t, map[string]string{"t.mof": `class A { string "x; };`})
	res, err := driver.Tokenize(filepath.Join(dir, "t.mof"), 0)
	require.NoError(t, err)
	require.NotEmpty(t, res.Tokens)
	assert.Equal(t, token.EOF, res.Tokens[len(res.Tokens)-1].Kind)
	assert.True(t, res.Bag.HasErrors())
}

func TestStream(t *testing.T) {
	dir := writeTree(t, map[string]string{"broken.mof": broken})
	path := filepath.Join(dir, "broken.mof")

	h := handler.NewDefault(true)
	res, err := driver.Stream(context.Background(), path, h, 0)
	require.NoError(t, err)
	require.Len(t, h.Classes, 1)
	assert.Equal(t, "B", h.Classes[0].Name)
	assert.True(t, res.Bag.HasErrors())
	assert.Len(t, res.Bag.Items(), len(h.Errors))

	strict := handler.NewDefault(false)
	res, err = driver.Stream(context.Background(), path, strict, 0)
	require.Error(t, err)
	assert.Empty(t, strict.Classes)
	assert.True(t, res.Bag.HasErrors())

	_, err = driver.Stream(context.Background(), filepath.Join(dir, "nope.mof"), h, 0)
	assert.Error(t, err)
}

func TestTree(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"one.mof": managedElement,
		"two.mof": managedElement + disk,
		"bad.mof": "class {",
	})

	res, err := driver.Tree(filepath.Join(dir, "one.mof"), 0)
	require.NoError(t, err)
	require.NotNil(t, res.Tree)
	assert.True(t, res.Tree.Root.Is(cst.LabelClass))
	assert.False(t, res.Bag.HasErrors())

	res, err = driver.Tree(filepath.Join(dir, "two.mof"), 0)
	require.NoError(t, err)
	assert.True(t, res.Tree.Wrapped())
	assert.Len(t, res.Tree.Productions(), 3)

	res, err = driver.Tree(filepath.Join(dir, "bad.mof"), 0)
	require.NoError(t, err)
	assert.Nil(t, res.Tree)
	assert.True(t, res.Bag.HasErrors())
}
