// Package excel imports content outlines from Excel workbooks.
package excel

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/slidesmith/ppt-generator-service/internal/models"
	"github.com/xuri/excelize/v2"
)

// Service parses .xlsx content outlines into the outline model.
type Service struct{}

// NewOutlineService creates a new Excel outline service instance.
func NewOutlineService() *Service {
	return &Service{}
}

// ParseOutline reads an outline workbook from disk. The first sheet holds
// one row per slide with columns section | title | content; an optional
// header row is skipped. Consecutive rows sharing a section name are
// grouped, preserving row order. A blank section cell continues the
// previous section.
func (s *Service) ParseOutline(filePath string) (*models.Outline, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}

	outline := &models.Outline{}
	currentSection := ""
	for i, row := range rows {
		section := cellAt(row, 0)
		title := cellAt(row, 1)
		content := cellAt(row, 2)

		// Header row
		if i == 0 && strings.EqualFold(section, "section") {
			continue
		}

		if section == "" {
			section = currentSection
		}
		if section == "" {
			logrus.Warnf("Skipping row %d: no section name", i+1)
			continue
		}

		if section != currentSection {
			outline.Sections = append(outline.Sections, models.OutlineSection{Name: section})
			currentSection = section
		}

		if title == "" && content == "" {
			continue
		}

		last := &outline.Sections[len(outline.Sections)-1]
		last.Slides = append(last.Slides, models.SlideDescriptor{Title: &title, Content: &content})
	}

	if len(outline.Sections) == 0 {
		return nil, fmt.Errorf("workbook contains no outline rows")
	}

	logrus.Infof("Parsed Excel outline: %d sections, %d slides", len(outline.Sections), outline.TotalSlides())
	return outline, nil
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
