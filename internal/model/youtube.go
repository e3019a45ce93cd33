package model

// Video represents YouTube video information
type Video struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Channel     string  `json:"channel"`
	Description string  `json:"description,omitempty"`
	Duration    float64 `json:"duration"` // duration in seconds
	Views       int64   `json:"views"`
	Thumbnail   string  `json:"thumbnail"`
}

// URL returns the canonical watch URL for the video
func (v *Video) URL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// DisplayTitle returns the video title, falling back to the ID
// when metadata could not be fetched.
func (v *Video) DisplayTitle() string {
	if v.Title != "" {
		return v.Title
	}
	return v.ID
}

// TranscriptSegment is one timed unit of caption text.
// Segments are ordered chronologically and never mutated after fetch.
type TranscriptSegment struct {
	Start float64 `json:"start"` // start time in seconds
	Text  string  `json:"text"`
}
