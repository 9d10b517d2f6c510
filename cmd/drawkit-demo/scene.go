package main

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"sync"

	"github.com/RadonCoding/drawkit"
	"github.com/RadonCoding/drawkit/internal/logging"
)

var (
	colorBackground = color.RGBA{54, 57, 63, 255}   // #36393F
	colorTrack      = color.RGBA{32, 34, 37, 255}   // #202225
	colorFrom       = color.RGBA{237, 66, 69, 255}  // #ED4245
	colorTo         = color.RGBA{88, 101, 242, 255} // #5865F2
)

const (
	LABEL_SIZE    = 20
	BAR_HEIGHT    = 12
	MARKER_RADIUS = 6
)

// SceneConfig describes the canvas and assets of a progress animation.
type SceneConfig struct {
	Width, Height int
	FontPath      string
	BackdropPath  string
	IconPath      string
	IconScale     float64
	From, To      color.RGBA
}

// Scene renders animated progress bars. Assets are loaded once, when the
// scene is created.
type Scene struct {
	width, height int
	fontPath      string
	from, to      color.RGBA
	backdrop      *image.RGBA
	icon          *image.RGBA
	fonts         *drawkit.FontCache
}

func NewScene(cfg SceneConfig, fonts *drawkit.FontCache) (*Scene, error) {
	s := &Scene{
		width:    cfg.Width,
		height:   cfg.Height,
		fontPath: cfg.FontPath,
		from:     cfg.From,
		to:       cfg.To,
		fonts:    fonts,
	}

	var err error
	if cfg.BackdropPath != "" {
		size := drawkit.Vector2{X: float64(cfg.Width), Y: float64(cfg.Height)}
		s.backdrop, err = drawkit.LoadBackdrop(cfg.BackdropPath, size)
		if err != nil {
			return nil, err
		}
	}
	if cfg.IconPath != "" {
		s.icon, err = drawkit.LoadImageScaled(cfg.IconPath, cfg.IconScale)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

// drawFrame paints a single frame. progress and pulse are within [0, 1].
func (s *Scene) drawFrame(dst *image.RGBA, label string, progress, pulse float64) error {
	w, h := float64(s.width), float64(s.height)
	center := drawkit.Vector2{X: w / 2, Y: h / 2}

	drawkit.DrawRect(dst, center, drawkit.Vector2{X: w, Y: h}, colorBackground)
	if s.backdrop != nil {
		drawkit.DrawSurface(dst, s.backdrop, center)
	}

	// Track
	barWidth := w * 0.8
	barLeft := (w - barWidth) / 2
	barY := h * 0.65
	drawkit.DrawRect(dst, drawkit.Vector2{X: center.X, Y: barY}, drawkit.Vector2{X: barWidth, Y: BAR_HEIGHT}, colorTrack)

	// Fill
	filled, err := drawkit.Lerp(0, barWidth, progress)
	if err != nil {
		return err
	}
	fill, err := drawkit.LerpRGB(s.from, s.to, progress)
	if err != nil {
		return err
	}
	drawkit.DrawRect(dst, drawkit.Vector2{X: barLeft + filled/2, Y: barY}, drawkit.Vector2{X: filled, Y: BAR_HEIGHT}, fill)

	// Marker
	radius, err := drawkit.Lerp(MARKER_RADIUS, MARKER_RADIUS*1.5, pulse)
	if err != nil {
		return err
	}
	drawkit.DrawCircle(dst, drawkit.Vector2{X: barLeft + filled, Y: barY}, radius, fill)

	// Label
	labelY := h * 0.3
	text := fmt.Sprintf("%s %d%%", label, int(progress*100))
	err = s.fonts.DrawText(dst, s.fontPath, text, drawkit.Vector2{X: center.X, Y: labelY}, LABEL_SIZE)
	if err != nil {
		return err
	}

	if s.icon != nil {
		drawkit.DrawSurface(dst, s.icon, drawkit.Vector2{X: barLeft, Y: labelY})
	}

	return nil
}

// RenderGIF writes an animation of a bar filling up over duration seconds,
// followed by one second at 100%.
func (s *Scene) RenderGIF(w io.Writer, label string, fps int, duration int) error {
	delay := 100 / fps

	filling := fps * duration
	lingering := fps
	frames := filling + lingering

	rendered := make([]*image.RGBA, frames)
	errs := make([]error, frames)

	var wg sync.WaitGroup
	wg.Add(frames)

	for frame := 0; frame < frames; frame++ {
		go func(frame int) {
			defer wg.Done()

			animation := 1.0
			if filling > 1 {
				animation = math.Min(1, float64(frame)/float64(filling-1))
			}
			eased := 1 - math.Pow(1-animation, 3)
			pulse := (math.Sin(float64(frame)/float64(fps)*2*math.Pi) + 1) / 2

			dst := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
			errs[frame] = s.drawFrame(dst, label, eased, pulse)
			rendered[frame] = dst
		}(frame)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			logging.Error("Failed to draw frame %d: %v", i, err)
			return err
		}
	}

	images := make([]*image.Paletted, frames)
	delays := make([]int, frames)
	for i, render := range rendered {
		bounds := render.Bounds()
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.Draw(paletted, bounds, render, bounds.Min, draw.Src)
		images[i] = paletted
		delays[i] = delay
	}

	return gif.EncodeAll(w, &gif.GIF{
		Image: images,
		Delay: delays,
	})
}
