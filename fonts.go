package drawkit

import (
	"image/draw"

	"github.com/dgraph-io/ristretto"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"

	"github.com/RadonCoding/drawkit/internal/logging"
)

// DefaultFontCacheEntries is the cache size used when FontCacheConfig.MaxEntries is zero.
const DefaultFontCacheEntries = 64

// FontCacheConfig sizes a FontCache.
type FontCacheConfig struct {
	// MaxEntries is the number of parsed fonts kept. Zero uses the default.
	MaxEntries int
}

// FontCache keeps parsed fonts keyed by file path so repeated text draws
// skip reading and parsing the font file. It is owned by the caller; the
// package-level helpers never use one implicitly.
//
// A FontCache is safe for concurrent use. Faces returned by Face are not,
// so each call builds a fresh one.
type FontCache struct {
	cache *ristretto.Cache
}

// NewFontCache creates an empty cache.
func NewFontCache(cfg FontCacheConfig) (*FontCache, error) {
	entries := cfg.MaxEntries
	if entries <= 0 {
		entries = DefaultFontCacheEntries
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(entries) * 10,
		MaxCost:     int64(entries),
		BufferItems: 64,
		// cost is counted in entries, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create font cache")
	}
	return &FontCache{cache: cache}, nil
}

// Face returns a face for the font at path, rasterized at size points.
// An empty path selects the embedded Go Regular font.
func (fc *FontCache) Face(path string, size float64) (font.Face, error) {
	f, err := fc.font(path)
	if err != nil {
		return nil, err
	}
	return newFace(f, size), nil
}

// DrawText behaves like the package-level DrawText but takes the font
// from the cache.
func (fc *FontCache) DrawText(dst draw.Image, path, text string, position Vector2, size float64) error {
	face, err := fc.Face(path, size)
	if err != nil {
		return err
	}
	drawText(dst, face, text, position)
	return nil
}

// Close releases the cache. It must not be used afterwards.
func (fc *FontCache) Close() {
	fc.cache.Close()
}

func (fc *FontCache) font(path string) (*truetype.Font, error) {
	if cached, found := fc.cache.Get(path); found {
		return cached.(*truetype.Font), nil
	}

	logging.Debug("Load font %q", path)
	f, err := loadFont(path)
	if err != nil {
		return nil, err
	}

	fc.cache.Set(path, f, 1)
	fc.cache.Wait()
	return f, nil
}
