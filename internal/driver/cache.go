package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Bump when Document or any declaration type changes shape.
const cacheSchemaVersion uint16 = 2

// Digest is a SHA-256 cache key.
type Digest [32]byte

// CacheKey derives the key for a file's content hash. The error policy is
// part of the key since it changes what the document holds.
func CacheKey(content [32]byte, continueOnError bool) Digest {
	h := sha256.New()
	_ = binary.Write(h, binary.BigEndian, cacheSchemaVersion)
	if continueOnError {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write(content[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// DiskCache stores parsed documents as msgpack files. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema   uint16    `msgpack:"schema"`
	Document *Document `msgpack:"document"`
}

// DefaultCacheDir is $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func DefaultCacheDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// OpenDiskCache creates dir if needed. An empty dir selects DefaultCacheDir("mofkit").
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultCacheDir("mofkit"); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "docs", hex.EncodeToString(key[:])+".mp")
}

// Put writes doc under key, replacing any previous entry atomically.
func (c *DiskCache) Put(key Digest, doc *Document) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(&cachePayload{Schema: cacheSchemaVersion, Document: doc}); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get loads the entry for key. A missing entry or one written under another
// schema reports false with no error; an unreadable entry reports the error.
func (c *DiskCache) Get(key Digest) (*Document, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() { _ = f.Close() }()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("decode cache entry: %w", err)
	}
	if payload.Schema != cacheSchemaVersion || payload.Document == nil {
		return nil, false, nil
	}
	return payload.Document, true, nil
}

// DropAll removes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
