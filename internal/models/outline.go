package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SlideDescriptor describes one generated slide. Pointer fields distinguish
// a missing key from an empty string so incomplete descriptors can be
// skipped without failing the whole request.
type SlideDescriptor struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// OutlineSection is a named, ordered group of slide descriptors. Each
// section produces one header slide followed by its descriptor slides.
type OutlineSection struct {
	Name   string
	Slides []SlideDescriptor
}

// Outline is the content outline driving presentation generation. Sections
// keep the order the source document listed them in.
type Outline struct {
	Sections []OutlineSection
}

// UnmarshalJSON decodes the outline's JSON form, an object mapping section
// names to descriptor arrays, at token level so that object key order is
// preserved.
func (o *Outline) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("outline must be a JSON object, got %v", tok)
	}

	o.Sections = nil
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in outline", keyTok)
		}
		var slides []SlideDescriptor
		if err := dec.Decode(&slides); err != nil {
			return fmt.Errorf("section %q: %w", name, err)
		}
		// A duplicate key overwrites the earlier value in place, the same
		// way plain map decoding would keep only the last one.
		if i, seen := index[name]; seen {
			o.Sections[i].Slides = slides
			continue
		}
		index[name] = len(o.Sections)
		o.Sections = append(o.Sections, OutlineSection{Name: name, Slides: slides})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// TotalSlides returns the number of slides the outline will generate: one
// header slide per section plus one per descriptor.
func (o *Outline) TotalSlides() int {
	total := 0
	for _, s := range o.Sections {
		total += 1 + len(s.Slides)
	}
	return total
}
