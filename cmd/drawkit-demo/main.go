package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/RadonCoding/drawkit"
	"github.com/RadonCoding/drawkit/internal/logging"
)

const DEFAULT_PORT = "8080"
const DEFAULT_CANVAS_WIDTH = 480
const DEFAULT_CANVAS_HEIGHT = 160
const DEFAULT_CACHE_MAX_BYTES = 200 * 1024 * 1024
const DEFAULT_CACHE_NUM_COUNTERS = 1024
const DEFAULT_CACHE_TTL_HOURS = 6

type server struct {
	scene    *Scene
	cache    *ristretto.Cache
	cacheTTL time.Duration
}

func newServer(scene *Scene) (*server, error) {
	maxCost := getEnvInt("CACHE_MAX_BYTES", DEFAULT_CACHE_MAX_BYTES)
	numCounters := getEnvInt("CACHE_NUM_COUNTERS", DEFAULT_CACHE_NUM_COUNTERS)

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(numCounters),
		MaxCost:     int64(maxCost),
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &server{
		scene:    scene,
		cache:    cache,
		cacheTTL: time.Duration(getEnvInt("CACHE_TTL_HOURS", DEFAULT_CACHE_TTL_HOURS)) * time.Hour,
	}, nil
}

func createCacheKey(label string, fps, duration int) string {
	key := fmt.Sprintf("label=%s&fps=%d&duration=%d", label, fps, duration)
	hasher := sha256.New()
	hasher.Write([]byte(key))
	return hex.EncodeToString(hasher.Sum(nil))
}

func (s *server) handler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	label := query.Get("label")
	if label == "" {
		http.Error(w, "Missing 'label' query parameter", http.StatusBadRequest)
		return
	}

	var err error

	fps := 12
	if f := query.Get("fps"); f != "" {
		fps, err = strconv.Atoi(f)
		if err != nil {
			http.Error(w, "Invalid 'fps' value", http.StatusBadRequest)
			return
		}
		fps = drawkit.Clamp(fps, 1, 24)
	}

	duration := 3
	if d := query.Get("duration"); d != "" {
		duration, err = strconv.Atoi(d)
		if err != nil {
			http.Error(w, "Invalid 'duration' value", http.StatusBadRequest)
			return
		}
		duration = drawkit.Clamp(duration, 1, 10)
	}

	key := createCacheKey(label, fps, duration)
	if cached, found := s.cache.Get(key); found {
		logging.Info("Serving GIF from cache for key: %s", key)
		writeGIF(w, cached.([]byte))
		return
	}

	start := time.Now()

	var buf bytes.Buffer
	err = s.scene.RenderGIF(&buf, label, fps, duration)
	if err != nil {
		logging.Error("Error rendering GIF: %v", err)
		http.Error(w, "Failed to render GIF", http.StatusInternalServerError)
		return
	}

	logging.Info("Rendered GIF in %v (duration=%d, fps=%d).", time.Since(start), duration, fps)

	gif := buf.Bytes()
	s.cache.SetWithTTL(key, gif, int64(len(gif)), s.cacheTTL)

	writeGIF(w, gif)
}

func writeGIF(w http.ResponseWriter, gif []byte) {
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(gif)
}

func main() {
	if name := os.Getenv("LOG_LEVEL"); name != "" {
		level, ok := logging.ParseLevel(name)
		if !ok {
			log.Printf("Warning: Invalid LOG_LEVEL '%s'. Using warning.", name)
		}
		logging.SetLevel(level)
	}

	fonts, err := drawkit.NewFontCache(drawkit.FontCacheConfig{
		MaxEntries: getEnvInt("FONT_CACHE_ENTRIES", drawkit.DefaultFontCacheEntries),
	})
	if err != nil {
		log.Fatalf("Failed to initialize font cache: %v", err)
	}
	defer fonts.Close()

	scene, err := NewScene(SceneConfig{
		Width:        getEnvInt("CANVAS_WIDTH", DEFAULT_CANVAS_WIDTH),
		Height:       getEnvInt("CANVAS_HEIGHT", DEFAULT_CANVAS_HEIGHT),
		FontPath:     getEnvString("FONT_PATH", ""),
		BackdropPath: getEnvString("BACKDROP_PATH", ""),
		IconPath:     getEnvString("ICON_PATH", ""),
		IconScale:    getEnvFloat("ICON_SCALE", 1),
		From:         getEnvColor("COLOR_FROM", colorFrom),
		To:           getEnvColor("COLOR_TO", colorTo),
	}, fonts)
	if err != nil {
		log.Fatalf("Failed to load scene assets: %v", err)
	}

	srv, err := newServer(scene)
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}

	port := getEnvString("PORT", DEFAULT_PORT)
	addr := fmt.Sprintf(":%s", port)

	http.HandleFunc("/", srv.handler)

	fmt.Printf("Server running on http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(addr, nil))
}
