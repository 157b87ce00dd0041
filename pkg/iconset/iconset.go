// Package iconset writes a set of square PNG icons rendered from one SVG source.
package iconset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/tidwall/pretty"

	"github.com/hrko/iconset/pkg/graphics"
)

// CompletionMessage is printed once every icon has been written.
const CompletionMessage = "All icons created successfully!"

// DefaultSizes are the icon sizes a browser extension package expects.
var DefaultSizes = []int{16, 48, 128}

// FileName returns the output file name for an icon of the given size.
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// Generate renders source once per size and writes icon{size}.png next to it,
// printing one "Created" line per file to w and a completion line at the end.
//
// Every size is rendered from the vector source; smaller icons are never
// downscaled from a larger raster. Sizes are validated and the source is read
// and checked for well-formed SVG before anything is written. The first
// failure stops the run and leaves files written so far in place.
func Generate(w io.Writer, source string, sizes []int, r graphics.Renderer) error {
	for _, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("icon size must be greater than 0, got %d", size)
		}
	}

	svg, err := os.ReadFile(source)
	if err != nil {
		return err
	}
	if _, err := graphics.ParseDocument(svg); err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	dir := filepath.Dir(source)

	for _, size := range sizes {
		name := FileName(size)
		if err := writeIcon(filepath.Join(dir, name), svg, size, r); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintf(w, "Created %s\n", name)
	}

	fmt.Fprintln(w, CompletionMessage)
	return nil
}

func writeIcon(dest string, svg []byte, size int, r graphics.Renderer) error {
	img, err := r.Render(svg, size)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(dest, buf.Bytes(), 0644)
}

// Manifest returns the "icons" member of a browser extension manifest for
// the given sizes, in size order. dir is the icon directory relative to the
// extension root.
func Manifest(dir string, sizes []int) []byte {
	dir = filepath.ToSlash(dir)

	var buf bytes.Buffer
	buf.WriteString(`{"icons":{`)
	for i, size := range sizes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(strconv.Itoa(size))
		value, _ := json.Marshal(path.Join(dir, FileName(size)))
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteString(`}}`)

	return pretty.Pretty(buf.Bytes())
}
