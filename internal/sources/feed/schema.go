package feed

// wireEvent is the JSON shape of one event as served by the feed
// endpoint. Coordinates are optional.
type wireEvent struct {
	ID          string  `json:"id"`
	Location    string  `json:"location"`
	Type        string  `json:"type"`
	Severity    string  `json:"severity"`
	Description string  `json:"description"`
	Timestamp   string  `json:"timestamp"`
	Coordinates *struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"coordinates"`
}
