// create-icons renders icons/icon.svg into icons/icon16.png, icons/icon48.png
// and icons/icon128.png for the extension package.
// Usage: go run ./cmd/create-icons [-renderer canvas|oksvg] [-manifest]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hrko/iconset/pkg/graphics"
	"github.com/hrko/iconset/pkg/iconset"
)

const source = "icons/icon.svg"

func main() {
	log.SetPrefix("create-icons: ")
	log.SetFlags(0)

	rendererName := flag.String("renderer", graphics.DefaultRenderer, "svg renderer: "+strings.Join(graphics.RendererNames(), ", "))
	manifest := flag.Bool("manifest", false, "print the manifest \"icons\" entry after generating")
	flag.Parse()

	if err := run(os.Stdout, source, *rendererName, *manifest); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, source, rendererName string, manifest bool) error {
	r, err := graphics.Lookup(rendererName)
	if err != nil {
		return err
	}
	if err := iconset.Generate(w, source, iconset.DefaultSizes, r); err != nil {
		return err
	}
	if manifest {
		fmt.Fprint(w, string(iconset.Manifest(filepath.Dir(source), iconset.DefaultSizes)))
	}
	return nil
}
