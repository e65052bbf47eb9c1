package domain

// StoryLimit caps the story feed at the most recent discoveries.
const StoryLimit = 10

// Story is a derived projection of a recent catalog entry for the
// "recent discoveries" strip. Recomputed whenever the catalog changes;
// never persisted.
type Story struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Date     int64  `json:"date"`
	IsSeen   bool   `json:"isSeen"`
}

// Stories projects the catalog onto its story feed: the first StoryLimit
// entries that carry an image, in catalog order (newest first).
func Stories(catalog []*Entry) []Story {
	stories := make([]Story, 0, StoryLimit)
	for _, entry := range catalog {
		if entry.ImageURL == "" {
			continue
		}
		stories = append(stories, Story{
			ID:       entry.ID,
			Title:    entry.Title,
			ImageURL: entry.ImageURL,
			Date:     entry.DateAdded,
		})
		if len(stories) == StoryLimit {
			break
		}
	}
	return stories
}
