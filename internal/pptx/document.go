package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"strconv"
	"strings"
)

// Document is an in-memory PPTX package. All parts are kept as raw bytes and
// written back untouched on save, except those mutated when slides are
// appended (presentation.xml, its rels and [Content_Types].xml).
type Document struct {
	parts      map[string][]byte
	order      []string // zip entry order, appended parts at the end
	slidePaths []string // slide part paths in presentation order
}

// Open reads a PPTX file into memory.
func Open(filename string) (*Document, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	defer zr.Close()

	d := &Document{parts: make(map[string][]byte)}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		d.parts[f.Name] = data
		d.order = append(d.order, f.Name)
	}

	if err := d.validate(); err != nil {
		return nil, err
	}
	if err := d.resolveSlidePaths(); err != nil {
		return nil, fmt.Errorf("resolving slides: %w", err)
	}
	return d, nil
}

// validate checks that required PPTX parts exist.
func (d *Document) validate() error {
	required := []string{
		"[Content_Types].xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
	}
	for _, name := range required {
		if _, ok := d.parts[name]; !ok {
			return fmt.Errorf("missing required part: %s", name)
		}
	}
	return nil
}

// resolveSlidePaths maps the presentation's slide id list through the
// relationships file to concrete part paths, preserving presentation order.
func (d *Document) resolveSlidePaths() error {
	rels, err := d.relationships("ppt/_rels/presentation.xml.rels")
	if err != nil {
		return err
	}
	byID := make(map[string]string, len(rels.Relationship))
	for _, rel := range rels.Relationship {
		byID[rel.ID] = rel.Target
	}

	var pres presentationXML
	if err := xml.Unmarshal(d.parts["ppt/presentation.xml"], &pres); err != nil {
		return fmt.Errorf("parsing presentation.xml: %w", err)
	}
	if pres.SlideIdList == nil || len(pres.SlideIdList.SlideId) == 0 {
		return fmt.Errorf("presentation has no slides")
	}

	d.slidePaths = d.slidePaths[:0]
	for _, id := range pres.SlideIdList.SlideId {
		target, ok := byID[id.RID]
		if !ok {
			return fmt.Errorf("slide relationship %s not found", id.RID)
		}
		d.slidePaths = append(d.slidePaths, resolveTarget("ppt", target))
	}
	return nil
}

func (d *Document) relationships(name string) (*relationshipsXML, error) {
	data, ok := d.parts[name]
	if !ok {
		return nil, fmt.Errorf("part not found: %s", name)
	}
	rels := &relationshipsXML{}
	if err := xml.Unmarshal(data, rels); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return rels, nil
}

// SlideCount returns the number of slides in presentation order.
func (d *Document) SlideCount() int {
	return len(d.slidePaths)
}

// Slide returns the slide at the given index (0-indexed).
func (d *Document) Slide(index int) (*Slide, error) {
	if index < 0 || index >= len(d.slidePaths) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(d.slidePaths)-1)
	}
	return d.parseSlide(d.slidePaths[index])
}

// Save writes the package to the given path, preserving entry order.
func (d *Document) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range d.order {
		w, err := zw.Create(name)
		if err != nil {
			zw.Close()
			return fmt.Errorf("creating zip entry %s: %w", name, err)
		}
		if _, err := w.Write(d.parts[name]); err != nil {
			zw.Close()
			return fmt.Errorf("writing zip entry %s: %w", name, err)
		}
	}
	return zw.Close()
}

// setPart stores part bytes, keeping the entry order stable for known parts.
func (d *Document) setPart(name string, data []byte) {
	if _, ok := d.parts[name]; !ok {
		d.order = append(d.order, name)
	}
	d.parts[name] = data
}

// nextSlideNumber returns one past the highest slideN.xml part number.
func (d *Document) nextSlideNumber() int {
	max := 0
	for name := range d.parts {
		if !strings.HasPrefix(name, "ppt/slides/slide") || !strings.HasSuffix(name, ".xml") {
			continue
		}
		if strings.Contains(name, "_rels") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "ppt/slides/slide"), ".xml"))
		if err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

// nextRelID returns an unused rId for the presentation relationships.
func (d *Document) nextRelID(rels *relationshipsXML) string {
	max := 0
	for _, rel := range rels.Relationship {
		n, err := strconv.Atoi(strings.TrimPrefix(rel.ID, "rId"))
		if err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("rId%d", max+1)
}

// nextSlideID returns an unused sldId value. PowerPoint starts these at 256.
func nextSlideID(pres *presentationXML) int {
	max := 255
	for _, id := range pres.SlideIdList.SlideId {
		n, err := strconv.Atoi(id.ID)
		if err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

// resolveTarget resolves a relationship target against the directory that
// owns the .rels part, e.g. ("ppt", "slides/slide1.xml") or
// ("ppt/slides", "../slideLayouts/slideLayout1.xml").
func resolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

// insertBeforeClose inserts bytes just before the closing tag of the named
// element, matching any namespace prefix. Used for the targeted edits to
// presentation.xml, relationship parts and [Content_Types].xml so the rest
// of those parts stays byte-identical.
func insertBeforeClose(data []byte, localName string, insertion []byte) ([]byte, error) {
	re := regexp.MustCompile(`</(?:[A-Za-z0-9]+:)?` + localName + `>`)
	loc := re.FindIndex(data)
	if loc == nil {
		return nil, fmt.Errorf("closing tag for %s not found", localName)
	}
	out := make([]byte, 0, len(data)+len(insertion))
	out = append(out, data[:loc[0]]...)
	out = append(out, insertion...)
	out = append(out, data[loc[0]:]...)
	return out, nil
}

// escapeXML escapes text for use in element content or attribute values.
func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
