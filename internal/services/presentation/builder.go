// Package presentation assembles PPTX documents from a template and a
// content outline.
package presentation

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/slidesmith/ppt-generator-service/internal/models"
	"github.com/slidesmith/ppt-generator-service/internal/pptx"
	"github.com/slidesmith/ppt-generator-service/internal/utils"
)

// maxTitleLength is the longest title written to a slide; longer titles are
// truncated with an ellipsis.
const maxTitleLength = 200

// Builder generates slides into an opened template document. The template's
// first slide is the base: its layout and decoration shapes are reused for
// every generated slide.
type Builder struct {
	doc  *pptx.Document
	base *pptx.Slide
}

// NewBuilder opens the template and records its first slide as the base.
func NewBuilder(templatePath string) (*Builder, error) {
	logrus.Infof("Loading template from: %s", templatePath)
	doc, err := pptx.Open(templatePath)
	if err != nil {
		return nil, fmt.Errorf("opening template: %w", err)
	}
	base, err := doc.Slide(0)
	if err != nil {
		return nil, fmt.Errorf("loading base slide: %w", err)
	}
	logrus.Debug("Base slide loaded")
	return &Builder{doc: doc, base: base}, nil
}

// AddContentSlide appends one slide with the given title and body content.
// The body is split into paragraphs on newlines; blank lines are dropped.
func (b *Builder) AddContentSlide(title, content string) error {
	logrus.Infof("Adding slide: %s", title)
	_, err := b.doc.AppendSlide(b.base, utils.TruncateWithEllipsis(title, maxTitleLength), splitContentLines(content))
	if err != nil {
		return fmt.Errorf("adding slide %q: %w", title, err)
	}
	return nil
}

// BuildFromOutline generates all slides for the outline in section order:
// a header slide per section, then one slide per descriptor. Descriptors
// missing a title or content are logged and skipped.
func (b *Builder) BuildFromOutline(outline *models.Outline) error {
	logrus.Infof("Building presentation: %d sections, %d slides", len(outline.Sections), outline.TotalSlides())
	for _, section := range outline.Sections {
		logrus.Infof("Processing section: %s", section.Name)
		if err := b.AddContentSlide(section.Name, ""); err != nil {
			return err
		}
		for i, slide := range section.Slides {
			if slide.Title == nil || slide.Content == nil {
				logrus.Warnf("Skipping slide %d in section %q: missing title or content", i, section.Name)
				continue
			}
			if err := b.AddContentSlide(*slide.Title, *slide.Content); err != nil {
				return err
			}
		}
	}
	logrus.Info("Presentation build complete")
	return nil
}

// SlideCount returns the current number of slides in the document.
func (b *Builder) SlideCount() int {
	return b.doc.SlideCount()
}

// Save writes the assembled presentation to the given path.
func (b *Builder) Save(outputPath string) error {
	logrus.Infof("Saving presentation to: %s", outputPath)
	if err := b.doc.Save(outputPath); err != nil {
		return fmt.Errorf("saving presentation: %w", err)
	}
	return nil
}

func splitContentLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
