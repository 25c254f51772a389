package models

import (
	"encoding/json"
	"testing"
)

func TestOutlinePreservesSectionOrder(t *testing.T) {
	payload := `{
		"Zeta": [{"title": "z1", "content": "c"}],
		"Alpha": [{"title": "a1", "content": "c"}, {"title": "a2", "content": "c"}],
		"Mid": []
	}`

	var outline Outline
	if err := json.Unmarshal([]byte(payload), &outline); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	want := []string{"Zeta", "Alpha", "Mid"}
	if len(outline.Sections) != len(want) {
		t.Fatalf("section count = %d, want %d", len(outline.Sections), len(want))
	}
	for i, name := range want {
		if outline.Sections[i].Name != name {
			t.Errorf("section %d = %q, want %q", i, outline.Sections[i].Name, name)
		}
	}
	if got := len(outline.Sections[1].Slides); got != 2 {
		t.Errorf("Alpha slide count = %d, want 2", got)
	}
}

func TestOutlineMissingKeys(t *testing.T) {
	payload := `{"S": [{"title": "only title"}, {"content": "only content"}, {}]}`

	var outline Outline
	if err := json.Unmarshal([]byte(payload), &outline); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	slides := outline.Sections[0].Slides
	if len(slides) != 3 {
		t.Fatalf("slide count = %d, want 3", len(slides))
	}
	if slides[0].Title == nil || slides[0].Content != nil {
		t.Error("descriptor 0: want title set, content missing")
	}
	if slides[1].Title != nil || slides[1].Content == nil {
		t.Error("descriptor 1: want title missing, content set")
	}
	if slides[2].Title != nil || slides[2].Content != nil {
		t.Error("descriptor 2: want both missing")
	}
}

func TestOutlineDuplicateKeyKeepsLastValue(t *testing.T) {
	payload := `{
		"Intro": [{"title": "old", "content": "c"}],
		"Middle": [{"title": "m", "content": "c"}],
		"Intro": [{"title": "new", "content": "c"}, {"title": "new2", "content": "c"}]
	}`

	var outline Outline
	if err := json.Unmarshal([]byte(payload), &outline); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(outline.Sections) != 2 {
		t.Fatalf("section count = %d, want 2", len(outline.Sections))
	}
	// The duplicate keeps its first position but carries the last value.
	if outline.Sections[0].Name != "Intro" || outline.Sections[1].Name != "Middle" {
		t.Errorf("section order = %q, %q", outline.Sections[0].Name, outline.Sections[1].Name)
	}
	slides := outline.Sections[0].Slides
	if len(slides) != 2 || slides[0].Title == nil || *slides[0].Title != "new" {
		t.Errorf("Intro slides = %+v, want the later value", slides)
	}
}

func TestOutlineRejectsNonObject(t *testing.T) {
	for _, payload := range []string{`[]`, `"text"`, `42`, `{"S": "not a list"}`, `{"S": [1, 2]}`, `not json at all`} {
		var outline Outline
		if err := json.Unmarshal([]byte(payload), &outline); err == nil {
			t.Errorf("Unmarshal accepted %q", payload)
		}
	}
}

func TestTotalSlides(t *testing.T) {
	outline := Outline{Sections: []OutlineSection{
		{Name: "A", Slides: make([]SlideDescriptor, 3)},
		{Name: "B"},
		{Name: "C", Slides: make([]SlideDescriptor, 1)},
	}}
	// One header slide per section plus one per descriptor.
	if got := outline.TotalSlides(); got != 7 {
		t.Errorf("TotalSlides = %d, want 7", got)
	}
}
