package graphics

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

var (
	svgRootTag   = regexp.MustCompile(`<svg\b[^>]*>`)
	rootSizeAttr = regexp.MustCompile(`\s(?:width|height)\s*=\s*(?:"[^"]*"|'[^']*')`)
)

// Document holds the sizing attributes of an SVG root element.
type Document struct {
	Width   string
	Height  string
	ViewBox struct {
		X, Y, W, H float64
	}
	HasViewBox bool
}

// ParseDocument reads svg to the end and fails unless it is well-formed XML
// whose root element is <svg>.
func ParseDocument(svg []byte) (*Document, error) {
	d := xml.NewDecoder(bytes.NewReader(svg))
	d.CharsetReader = charset.NewReaderLabel

	var doc *Document
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed svg: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || doc != nil {
			continue
		}
		if start.Name.Local != "svg" {
			return nil, fmt.Errorf("root element is <%s>, want <svg>", start.Name.Local)
		}
		doc = &Document{}
		for _, attr := range start.Attr {
			switch attr.Name.Local {
			case "width":
				doc.Width = strings.TrimSpace(attr.Value)
			case "height":
				doc.Height = strings.TrimSpace(attr.Value)
			case "viewBox":
				if err := doc.parseViewBox(attr.Value); err != nil {
					return nil, err
				}
			}
		}
	}
	if doc == nil {
		return nil, fmt.Errorf("malformed svg: no <svg> root element")
	}
	return doc, nil
}

func (doc *Document) parseViewBox(s string) error {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return fmt.Errorf("viewBox must have 4 values, got '%s'", s)
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("invalid viewBox '%s': %w", s, err)
		}
		v[i] = n
	}
	if v[2] <= 0 || v[3] <= 0 {
		return fmt.Errorf("viewBox width and height must be greater than 0, got '%s'", s)
	}
	doc.ViewBox.X, doc.ViewBox.Y, doc.ViewBox.W, doc.ViewBox.H = v[0], v[1], v[2], v[3]
	doc.HasViewBox = true
	return nil
}

// RelativeSize reports whether width or height is given as a percentage.
func (doc *Document) RelativeSize() bool {
	return strings.HasSuffix(doc.Width, "%") || strings.HasSuffix(doc.Height, "%")
}

// stripRootSize drops width and height from the root <svg> tag.
func stripRootSize(svg []byte) []byte {
	loc := svgRootTag.FindIndex(svg)
	if loc == nil {
		return svg
	}
	tag := rootSizeAttr.ReplaceAll(svg[loc[0]:loc[1]], nil)
	out := make([]byte, 0, len(svg))
	out = append(out, svg[:loc[0]]...)
	out = append(out, tag...)
	return append(out, svg[loc[1]:]...)
}
