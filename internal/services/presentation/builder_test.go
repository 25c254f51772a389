package presentation_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/slidesmith/ppt-generator-service/internal/models"
	"github.com/slidesmith/ppt-generator-service/internal/pptx"
	"github.com/slidesmith/ppt-generator-service/internal/pptx/pptxtest"
	"github.com/slidesmith/ppt-generator-service/internal/services/presentation"
)

func strPtr(s string) *string { return &s }

func newTestBuilder(t *testing.T) *presentation.Builder {
	t.Helper()
	b, err := presentation.NewBuilder(pptxtest.WriteTemplate(t, t.TempDir()))
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	return b
}

// buildAndReopen saves the builder's document and reads it back.
func buildAndReopen(t *testing.T, b *presentation.Builder) *pptx.Document {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out.pptx")
	if err := b.Save(out); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	doc, err := pptx.Open(out)
	if err != nil {
		t.Fatalf("reopening output: %v", err)
	}
	return doc
}

func slideTitle(t *testing.T, doc *pptx.Document, index int) string {
	t.Helper()
	slide, err := doc.Slide(index)
	if err != nil {
		t.Fatalf("Slide(%d) failed: %v", index, err)
	}
	for _, sh := range slide.Shapes() {
		if sh.IsPlaceholder() && sh.PlaceholderIndex() == 0 {
			return sh.Text()
		}
	}
	t.Fatalf("slide %d has no title placeholder", index)
	return ""
}

func TestBuildFromOutlineSlideCount(t *testing.T) {
	b := newTestBuilder(t)

	outline := &models.Outline{Sections: []models.OutlineSection{
		{Name: "Basics", Slides: []models.SlideDescriptor{
			{Title: strPtr("What"), Content: strPtr("a\nb")},
			{Title: strPtr("Why"), Content: strPtr("c")},
		}},
		{Name: "Advanced", Slides: []models.SlideDescriptor{
			{Title: strPtr("How"), Content: strPtr("d")},
		}},
	}}

	if err := b.BuildFromOutline(outline); err != nil {
		t.Fatalf("BuildFromOutline failed: %v", err)
	}

	// 1 template slide + (1 header + 2) + (1 header + 1)
	if got := b.SlideCount(); got != 6 {
		t.Fatalf("builder slide count = %d, want 6", got)
	}
	doc := buildAndReopen(t, b)
	if got := doc.SlideCount(); got != 6 {
		t.Fatalf("slide count = %d, want 6", got)
	}

	wantTitles := []string{"Basics", "What", "Why", "Advanced", "How"}
	for i, want := range wantTitles {
		if got := slideTitle(t, doc, i+1); got != want {
			t.Errorf("slide %d title = %q, want %q", i+1, got, want)
		}
	}
}

func TestBuildSkipsIncompleteDescriptors(t *testing.T) {
	b := newTestBuilder(t)

	outline := &models.Outline{Sections: []models.OutlineSection{
		{Name: "S", Slides: []models.SlideDescriptor{
			{Title: strPtr("First"), Content: strPtr("x")},
			{Title: strPtr("No content")},
			{Content: strPtr("no title")},
			{Title: strPtr("Last"), Content: strPtr("y")},
		}},
	}}

	if err := b.BuildFromOutline(outline); err != nil {
		t.Fatalf("BuildFromOutline failed: %v", err)
	}

	doc := buildAndReopen(t, b)
	// Template + header + First + Last; incomplete descriptors skipped.
	if got := doc.SlideCount(); got != 4 {
		t.Fatalf("slide count = %d, want 4", got)
	}
	if got := slideTitle(t, doc, 3); got != "Last" {
		t.Errorf("slide after skipped descriptors = %q, want %q", got, "Last")
	}
}

func TestLongTitleTruncated(t *testing.T) {
	b := newTestBuilder(t)

	long := strings.Repeat("x", 250)
	if err := b.AddContentSlide(long, ""); err != nil {
		t.Fatalf("AddContentSlide failed: %v", err)
	}

	doc := buildAndReopen(t, b)
	got := slideTitle(t, doc, 1)
	want := strings.Repeat("x", 197) + "..."
	if got != want {
		t.Errorf("title length = %d, want 200 with ellipsis", len(got))
	}
}

func TestTitleAtBoundaryTruncated(t *testing.T) {
	b := newTestBuilder(t)

	// Exactly 200 runes is already too long; 199 is kept as-is.
	if err := b.AddContentSlide(strings.Repeat("a", 200), ""); err != nil {
		t.Fatalf("AddContentSlide failed: %v", err)
	}
	if err := b.AddContentSlide(strings.Repeat("b", 199), ""); err != nil {
		t.Fatalf("AddContentSlide failed: %v", err)
	}

	doc := buildAndReopen(t, b)
	if got, want := slideTitle(t, doc, 1), strings.Repeat("a", 197)+"..."; got != want {
		t.Errorf("200-rune title not truncated: got %d runes", len(got))
	}
	if got, want := slideTitle(t, doc, 2), strings.Repeat("b", 199); got != want {
		t.Errorf("199-rune title modified: got %d runes", len(got))
	}
}

func TestBlankContentLinesOmitted(t *testing.T) {
	b := newTestBuilder(t)

	if err := b.AddContentSlide("Bullets", "first\n\n   \nsecond\n\t\nthird\n"); err != nil {
		t.Fatalf("AddContentSlide failed: %v", err)
	}

	doc := buildAndReopen(t, b)
	slide, err := doc.Slide(1)
	if err != nil {
		t.Fatalf("Slide(1) failed: %v", err)
	}
	for _, sh := range slide.Shapes() {
		if sh.IsPlaceholder() && sh.PlaceholderIndex() != 0 {
			got := sh.TextLines()
			want := []string{"first", "second", "third"}
			if len(got) != len(want) {
				t.Fatalf("body lines = %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("body line %d = %q, want %q", i, got[i], want[i])
				}
			}
			return
		}
	}
	t.Fatal("generated slide has no body placeholder")
}

func TestNewBuilderRejectsMissingTemplate(t *testing.T) {
	if _, err := presentation.NewBuilder(filepath.Join(t.TempDir(), "absent.pptx")); err == nil {
		t.Error("NewBuilder accepted a missing template")
	}
}
