package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// PWA manifest icon sizes.
var sizes = []int{72, 96, 128, 144, 152, 192, 384, 512}

// Matte behind transparent logos, matches the app theme color.
var matte = color.RGBA{R: 28, G: 40, B: 60, A: 255}

func main() {

	input := flag.String("in", "public/logo.png", "source logo (png or webp)")
	output := flag.String("out", "public/icons", "output directory")
	flag.Parse()

	src, err := loadImage(*input)
	if err != nil {
		log.Fatalf("failed to load %s: %v", *input, err)
	}

	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatalf("failed to create %s: %v", *output, err)
	}

	for _, size := range sizes {
		name := fmt.Sprintf("icon-%dx%d.png", size, size)
		path := filepath.Join(*output, name)
		if err := writeIcon(path, src, size); err != nil {
			log.Fatalf("failed to write %s: %v", name, err)
		}
		log.Printf("icon %dx%d created", size, size)
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".webp") {
		return webp.Decode(f)
	}
	img, _, err := image.Decode(f)
	return img, err
}

// writeIcon scales the logo to fit inside a size x size square, centered
// over the matte, and writes it as PNG.
func writeIcon(path string, src image.Image, size int) error {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(matte), image.Point{}, draw.Src)

	draw.CatmullRom.Scale(dst, fitRect(src.Bounds(), size), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, dst)
}

// fitRect computes the centered rectangle that contains the source aspect
// ratio inside a size x size square.
func fitRect(src image.Rectangle, size int) image.Rectangle {
	w, h := src.Dx(), src.Dy()
	if w >= h {
		scaled := h * size / w
		top := (size - scaled) / 2
		return image.Rect(0, top, size, top+scaled)
	}
	scaled := w * size / h
	left := (size - scaled) / 2
	return image.Rect(left, 0, left+scaled, size)
}
