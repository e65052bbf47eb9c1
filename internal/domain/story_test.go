package domain

import (
	"fmt"
	"testing"
)

func TestStoriesSkipsEntriesWithoutImage(t *testing.T) {
	catalog := []*Entry{
		{ID: "1", Title: "A", ImageURL: "data:image/png;base64,xxx", DateAdded: 30},
		{ID: "2", Title: "B", DateAdded: 20},
		{ID: "3", Title: "C", ImageURL: "https://example.com/c.jpg", DateAdded: 10},
	}

	stories := Stories(catalog)
	if len(stories) != 2 {
		t.Fatalf("Stories() = %d stories, want 2", len(stories))
	}
	if stories[0].ID != "1" || stories[1].ID != "3" {
		t.Errorf("Stories() IDs = [%s %s], want [1 3]", stories[0].ID, stories[1].ID)
	}
	if stories[0].IsSeen {
		t.Error("Stories() should start unseen")
	}
	if stories[0].Date != 30 {
		t.Errorf("Date = %d, want 30", stories[0].Date)
	}
}

func TestStoriesCapped(t *testing.T) {
	catalog := make([]*Entry, 0, StoryLimit+5)
	for i := 0; i < StoryLimit+5; i++ {
		catalog = append(catalog, &Entry{
			ID:       fmt.Sprintf("s%d", i),
			Title:    "X",
			ImageURL: "https://example.com/x.jpg",
		})
	}

	stories := Stories(catalog)
	if len(stories) != StoryLimit {
		t.Errorf("Stories() = %d stories, want %d", len(stories), StoryLimit)
	}
	// Catalog order is newest first; the cap keeps the head.
	if stories[0].ID != "s0" {
		t.Errorf("Stories()[0].ID = %s, want s0", stories[0].ID)
	}
}

func TestStoriesEmptyCatalog(t *testing.T) {
	if stories := Stories(nil); len(stories) != 0 {
		t.Errorf("Stories(nil) = %v, want empty", stories)
	}
}
