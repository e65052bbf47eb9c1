package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PowerLevelMax is the upper bound of the ranking scale.
const PowerLevelMax = 10000

// PowerLevelStep is the granularity of the ranking scale.
const PowerLevelStep = 50

// ValidationError rejects a candidate entry at creation time.
// No partial record is ever stored.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// EntryInput is a candidate entry as supplied by the creation
// collaborator, before ID and DateAdded assignment.
type EntryInput struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	ImageURL     string        `json:"imageUrl"`
	Tags         string        `json:"tags"`    // comma separated
	Lat          string        `json:"lat"`     // free text, "." or "," decimal separator
	Lng          string        `json:"lng"`     // free text, "." or "," decimal separator
	Notes        string        `json:"notes"`
	CustomFields []CustomField `json:"customFields"`
	BearerName   string        `json:"bearerName"`
	BearerRank   BearerRank    `json:"bearerRank"`
	ThreatGrade  string        `json:"threatGrade"`
	PowerLevel   int           `json:"powerLevel"`
}

// NewEntry validates and normalizes a candidate entry, assigning its
// identity. Returns a *ValidationError when the candidate is rejected.
func NewEntry(in EntryInput) (*Entry, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	grade, err := ParseThreatGrade(in.ThreatGrade)
	if err != nil {
		return nil, &ValidationError{Field: "threatGrade", Reason: err.Error()}
	}

	if in.PowerLevel < 0 || in.PowerLevel > PowerLevelMax {
		return nil, &ValidationError{
			Field:  "powerLevel",
			Reason: fmt.Sprintf("must be between 0 and %d", PowerLevelMax),
		}
	}

	entry := &Entry{
		ID:           uuid.NewString(),
		DateAdded:    time.Now().UnixMilli(),
		Title:        title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		Tags:         splitTags(in.Tags),
		Notes:        in.Notes,
		CustomFields: filterCustomFields(in.CustomFields),
		Coordinates:  parseCoordinates(in.Lat, in.Lng),
		ThreatGrade:  grade,
		PowerLevel:   snapPowerLevel(in.PowerLevel),
	}

	if name := strings.TrimSpace(in.BearerName); name != "" {
		rank := in.BearerRank
		if !rank.Valid() {
			rank = RankObject
		}
		entry.Bearer = &Bearer{Name: name, Rank: rank}
	}

	return entry, nil
}

// splitTags splits a comma-separated tag list, trimming each tag and
// discarding empties. Duplicates are kept.
func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// filterCustomFields drops pairs with an empty key. Values may be empty.
func filterCustomFields(fields []CustomField) []CustomField {
	kept := make([]CustomField, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f.Key) == "" {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// parseCoordinates parses a lat/lng pair from free text, accepting both
// "." and "," as decimal separator. Partial coordinates are not allowed:
// if either side fails to parse as a finite number, the pair is omitted.
func parseCoordinates(lat, lng string) *Coordinates {
	parsedLat, okLat := parseDegree(lat)
	parsedLng, okLng := parseDegree(lng)
	if !okLat || !okLng {
		return nil
	}
	return &Coordinates{Lat: parsedLat, Lng: parsedLng}
}

func parseDegree(raw string) (float64, bool) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// snapPowerLevel rounds a power level to the nearest granularity step.
func snapPowerLevel(v int) int {
	return (v + PowerLevelStep/2) / PowerLevelStep * PowerLevelStep
}
