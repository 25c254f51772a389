package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("setting row %d: %v", i+1, err)
		}
	}

	path := filepath.Join(t.TempDir(), "outline.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving workbook: %v", err)
	}
	return path
}

func TestParseOutline(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Section", "Title", "Content"},
		{"Intro", "Welcome", "hello\nworld"},
		{"", "Agenda", "one\ntwo"},
		{"Deep Dive", "Details", "stuff"},
	})

	svc := NewOutlineService()
	outline, err := svc.ParseOutline(path)
	if err != nil {
		t.Fatalf("ParseOutline failed: %v", err)
	}

	if len(outline.Sections) != 2 {
		t.Fatalf("section count = %d, want 2", len(outline.Sections))
	}
	if outline.Sections[0].Name != "Intro" || outline.Sections[1].Name != "Deep Dive" {
		t.Errorf("section names = %q, %q", outline.Sections[0].Name, outline.Sections[1].Name)
	}
	if got := len(outline.Sections[0].Slides); got != 2 {
		t.Fatalf("Intro slide count = %d, want 2", got)
	}
	second := outline.Sections[0].Slides[1]
	if second.Title == nil || *second.Title != "Agenda" {
		t.Errorf("blank section cell did not continue the previous section")
	}
	if got := outline.TotalSlides(); got != 5 {
		t.Errorf("TotalSlides = %d, want 5", got)
	}
}

func TestParseOutlineWithoutHeader(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Only", "Slide", "body"},
	})

	outline, err := NewOutlineService().ParseOutline(path)
	if err != nil {
		t.Fatalf("ParseOutline failed: %v", err)
	}
	if len(outline.Sections) != 1 || outline.Sections[0].Name != "Only" {
		t.Fatalf("sections = %+v", outline.Sections)
	}
}

func TestParseOutlineRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.xlsx")
	if err := os.WriteFile(path, []byte("not a workbook"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if _, err := NewOutlineService().ParseOutline(path); err == nil {
		t.Error("ParseOutline accepted a non-xlsx file")
	}
}

func TestParseOutlineRejectsEmptyWorkbook(t *testing.T) {
	path := writeWorkbook(t, nil)
	if _, err := NewOutlineService().ParseOutline(path); err == nil {
		t.Error("ParseOutline accepted a workbook without outline rows")
	}
}
