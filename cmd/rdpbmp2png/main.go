// Command rdpbmp2png decodes a raw RDP Interleaved RLE bitmap and writes it
// out as a PNG, for inspecting captured bitmap_update payloads offline.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/rdpbitmap/codec/codec"
)

func main() {
	var (
		inputFile  = flag.String("input", "", "Input file containing a compressed RDP bitmap")
		outputFile = flag.String("output", "", "Output PNG file (defaults to input filename with .png extension)")
		width      = flag.Int("width", 0, "Bitmap width in pixels (required)")
		height     = flag.Int("height", 0, "Bitmap height in pixels (required)")
		depth      = flag.Int("depth", 16, "Bits per pixel: 15, 16, 24, or 32")
	)
	flag.Parse()

	if *inputFile == "" {
		log.Fatal("Input file is required. Use -input flag.")
	}
	if *width <= 0 || *height <= 0 {
		log.Fatal("Both -width and -height are required and must be positive.")
	}

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	c, err := codec.GetByDepth(*depth)
	if err != nil {
		log.Fatalf("Unsupported depth %d: %v", *depth, err)
	}

	result, err := c.Decode(data, *width, *height)
	if err != nil {
		log.Fatalf("Failed to decode %s bitmap: %v", c.Name(), err)
	}

	img := &image.NRGBA{
		Pix:    result.RGBA,
		Stride: result.Width * 4,
		Rect:   image.Rect(0, 0, result.Width, result.Height),
	}

	output := *outputFile
	if output == "" {
		ext := filepath.Ext(*inputFile)
		output = (*inputFile)[:len(*inputFile)-len(ext)] + ".png"
	}

	file, err := os.Create(output)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	fmt.Printf("Successfully decoded %s (%s) to %s\n", *inputFile, c.Name(), output)
	fmt.Printf("Image size: %dx%d pixels\n", result.Width, result.Height)
}
