// Package util provides shared infrastructure: structured logging,
// pool sizing, and an mmap-backed file cache.
package util

import (
	"fmt"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// FileCache provides zero-copy cached access to files via mmap.
//
// Watch mode re-extracts the same stylesheet tree repeatedly; mapping
// the files keeps those passes from rereading unchanged content. When
// mmap fails (permissions, exotic filesystems) the cache falls back to
// os.ReadFile transparently.
//
// Thread-safe: reads don't block each other, only loads and Close do.
type FileCache interface {
	// Get returns the cached file, mapping it on first access.
	Get(filePath string) (*MappedFile, error)

	// Release invalidates a cached file so the next Get remaps it.
	// Call it after a watcher reports the file changed.
	Release(filePath string)

	// Stats returns cache usage counters.
	Stats() FileCacheStats

	// Close unmaps everything. The cache is unusable afterwards.
	Close() error
}

// FileCacheConfig bounds the cache. Limits apply to virtual address
// space, not resident memory; mapped pages are paged in on demand.
type FileCacheConfig struct {
	// MaxFiles caps the number of cached files. 0 means unlimited.
	MaxFiles int

	// MaxMemoryMB caps total mapped bytes. 0 means unlimited.
	MaxMemoryMB int
}

// DefaultFileCacheConfig suits a typical project stylesheet tree.
func DefaultFileCacheConfig() *FileCacheConfig {
	return &FileCacheConfig{
		MaxFiles:    4096,
		MaxMemoryMB: 512,
	}
}

// MappedFile is one cached file. Data is nil for fallback entries.
type MappedFile struct {
	Path string
	Size int64
	Data mmap.MMap

	fallback []byte
}

// Bytes returns the file content without copying. The slice is only
// valid until Release or Close.
func (mf *MappedFile) Bytes() []byte {
	if mf.Data != nil {
		return mf.Data
	}
	return mf.fallback
}

// FileCacheStats are cumulative cache counters.
type FileCacheStats struct {
	Files        int
	MappedBytes  int64
	Hits         int64
	Misses       int64
	MmapFailures int64
}

// NewFileCache creates a cache with the given limits. A nil config uses
// the defaults.
func NewFileCache(config *FileCacheConfig) FileCache {
	if config == nil {
		config = DefaultFileCacheConfig()
	}
	return &fileCache{
		config: *config,
		cache:  make(map[string]*MappedFile),
	}
}

type fileCache struct {
	config FileCacheConfig

	mu     sync.RWMutex
	cache  map[string]*MappedFile
	mapped int64
	stats  FileCacheStats
	closed bool
}

func (fc *fileCache) Get(filePath string) (*MappedFile, error) {
	fc.mu.RLock()
	mf, ok := fc.cache[filePath]
	fc.mu.RUnlock()
	if ok {
		fc.mu.Lock()
		fc.stats.Hits++
		fc.mu.Unlock()
		return mf, nil
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.closed {
		return nil, fmt.Errorf("file cache is closed")
	}
	// Another goroutine may have loaded it while we waited.
	if mf, ok := fc.cache[filePath]; ok {
		fc.stats.Hits++
		return mf, nil
	}
	fc.stats.Misses++

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", filePath, err)
	}
	if err := fc.checkLimits(info.Size()); err != nil {
		return nil, err
	}

	mf, err = fc.load(filePath, info.Size())
	if err != nil {
		return nil, err
	}
	fc.cache[filePath] = mf
	fc.mapped += mf.Size
	return mf, nil
}

func (fc *fileCache) checkLimits(newSize int64) error {
	if fc.config.MaxFiles > 0 && len(fc.cache) >= fc.config.MaxFiles {
		return fmt.Errorf("file cache limit reached: %d files", fc.config.MaxFiles)
	}
	if fc.config.MaxMemoryMB > 0 {
		limit := int64(fc.config.MaxMemoryMB) << 20
		if fc.mapped+newSize > limit {
			return fmt.Errorf("file cache memory limit reached: %dMB", fc.config.MaxMemoryMB)
		}
	}
	return nil
}

// load maps the file, falling back to a plain read when mmap fails.
// Zero-byte files cannot be mapped and always use the fallback path.
func (fc *fileCache) load(filePath string, size int64) (*MappedFile, error) {
	if size == 0 {
		return &MappedFile{Path: filePath, fallback: []byte{}}, nil
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		fc.stats.MmapFailures++
		content, rerr := os.ReadFile(filePath)
		if rerr != nil {
			return nil, fmt.Errorf("mmap and read both failed for %s: mmap: %v, read: %w", filePath, err, rerr)
		}
		return &MappedFile{Path: filePath, Size: size, fallback: content}, nil
	}

	return &MappedFile{Path: filePath, Size: size, Data: data}, nil
}

func (fc *fileCache) Release(filePath string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	mf, ok := fc.cache[filePath]
	if !ok {
		return
	}
	delete(fc.cache, filePath)
	fc.mapped -= mf.Size
	if mf.Data != nil {
		_ = mf.Data.Unmap()
	}
}

func (fc *fileCache) Stats() FileCacheStats {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	s := fc.stats
	s.Files = len(fc.cache)
	s.MappedBytes = fc.mapped
	return s
}

func (fc *fileCache) Close() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.closed {
		return nil
	}
	fc.closed = true

	var firstErr error
	for path, mf := range fc.cache {
		if mf.Data != nil {
			if err := mf.Data.Unmap(); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("unmap %s: %w", path, err)
			}
		}
	}
	fc.cache = make(map[string]*MappedFile)
	fc.mapped = 0
	return firstErr
}
