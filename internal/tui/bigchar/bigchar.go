// Package bigchar renders Chinese characters as large block art using half-block characters.
package bigchar

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFontPaths lists common CJK font locations.
var DefaultFontPaths = []string{
	// macOS
	"/System/Library/Fonts/STHeiti Light.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// Windows
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\simsun.ttc",
}

// threshold is the gray level above which a pixel counts as ink.
const threshold = 40

type cacheKey struct {
	char       string
	cols, rows int
}

// Renderer draws glyphs from the first loadable font. The font is loaded on
// first use.
type Renderer struct {
	paths []string

	once sync.Once
	face font.Face

	mu    sync.Mutex
	cache map[cacheKey]string
}

// New creates a renderer trying the given font files in order.
// With no paths DefaultFontPaths is used.
func New(paths ...string) *Renderer {
	if len(paths) == 0 {
		paths = DefaultFontPaths
	}
	return &Renderer{paths: paths, cache: make(map[cacheKey]string)}
}

// Available reports whether a CJK font was found.
func (r *Renderer) Available() bool {
	r.once.Do(r.load)
	return r.face != nil
}

func (r *Renderer) load() {
	for _, path := range r.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if face := parseFace(data); face != nil {
			r.face = face
			return
		}
	}
}

// parseFace accepts a font collection or a single font file.
func parseFace(data []byte) font.Face {
	opts := &opentype.FaceOptions{Size: 64, DPI: 72}

	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if face, err := opentype.NewFace(fnt, opts); err == nil {
				return face
			}
		}
	}
	if fnt, err := opentype.Parse(data); err == nil {
		if face, err := opentype.NewFace(fnt, opts); err == nil {
			return face
		}
	}
	return nil
}

// Render returns char as cols×rows half-block art, or "" when no font is
// available. Results are cached.
func (r *Renderer) Render(char string, cols, rows int) string {
	if char == "" || cols <= 0 || rows <= 0 || !r.Available() {
		return ""
	}

	key := cacheKey{char, cols, rows}
	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	art := HalfBlocks(scaleDown(r.rasterize(char), cols, rows*2), cols, rows)
	r.cache[key] = art
	return art
}

// rasterize draws the first rune of char white on black at the face's size.
func (r *Renderer) rasterize(char string) *image.Gray {
	ch, _ := utf8.DecodeRuneInString(char)

	bounds, _, _ := r.face.GlyphBounds(ch)
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	const padding = 4
	width := max(glyphWidth+padding*2, 64)
	height := max(glyphHeight+padding*2, 64)

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P((width-glyphWidth)/2, height-padding-bounds.Max.Y.Ceil()),
	}
	d.DrawString(string(ch))
	return img
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Dx()
	srcHeight := src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		sy1, sy2 := int(float64(dy)*yRatio), min(int(float64(dy+1)*yRatio), srcHeight)
		for dx := 0; dx < dstWidth; dx++ {
			sx1, sx2 := int(float64(dx)*xRatio), min(int(float64(dx+1)*xRatio), srcWidth)

			sum, count := 0, 0
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// HalfBlocks converts a grayscale image to rows of ▀▄█ characters, each cell
// covering two vertical pixels.
func HalfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := ink(img, col, row*2)
			bottom := ink(img, col, row*2+1)

			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}

func ink(img *image.Gray, x, y int) bool {
	if !(image.Point{x, y}).In(img.Bounds()) {
		return false
	}
	return img.GrayAt(x, y).Y > threshold
}
