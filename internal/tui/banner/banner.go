// Package banner renders short text as large block art using half-block characters.
package banner

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/fixed"
)

const (
	fontSize  = 48
	padding   = 2
	threshold = uint8(60)

	// maxCacheEntries bounds the render cache; it is cleared when full.
	maxCacheEntries = 32
)

var (
	faceOnce sync.Once
	face     font.Face

	cacheMu sync.Mutex
	cache   = make(map[string]string)
)

// loadFace parses the embedded Go Bold font.
func loadFace() font.Face {
	faceOnce.Do(func() {
		f, err := truetype.Parse(gobold.TTF)
		if err != nil {
			return
		}
		face = truetype.NewFace(f, &truetype.Options{
			Size:    fontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return face
}

// Render draws text rows terminal lines tall. It returns "" when the
// text is empty or the art would be wider than maxCols.
func Render(text string, maxCols, rows int) string {
	if text == "" || rows <= 0 || maxCols <= 0 {
		return ""
	}

	fc := loadFace()
	if fc == nil {
		return ""
	}

	metrics := fc.Metrics()
	ascent := metrics.Ascent.Ceil()
	textWidth := font.MeasureString(fc, text).Ceil()
	textHeight := ascent + metrics.Descent.Ceil()

	srcWidth := textWidth + padding*2
	srcHeight := textHeight + padding*2

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: fc,
		Dot:  fixed.P(padding, padding+ascent),
	}
	d.DrawString(text)

	// Half blocks give two square-ish pixels per cell.
	targetHeight := rows * 2
	cols := srcWidth * targetHeight / srcHeight
	if cols < 1 {
		cols = 1
	}
	if cols > maxCols {
		return ""
	}

	scaled := scaleDown(srcImg, cols, targetHeight)
	return imageToHalfBlocks(scaled, cols, rows)
}

// Cached returns the cached rendering of text or renders and stores it.
func Cached(text string, maxCols, rows int) string {
	key := fmt.Sprintf("%s\x00%d\x00%d", text, maxCols, rows)

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		return cached
	}
	rendered := Render(text, maxCols, rows)
	if len(cache) >= maxCacheEntries {
		clear(cache)
	}
	cache[key] = rendered
	return rendered
}

// scaleDown scales a grayscale image using area averaging
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := max(int(float64(dx+1)*xRatio), sx1+1)
			sy2 := max(int(float64(dy+1)*yRatio), sy1+1)
			sx2 = min(sx2, srcWidth)
			sy2 = min(sy2, srcHeight)

			var sum, count int
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

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := brightness(img, col, row*2) > threshold
			bottomOn := brightness(img, col, row*2+1) > threshold

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	b := img.Bounds()
	if x < 0 || y < 0 || x >= b.Max.X || y >= b.Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}
