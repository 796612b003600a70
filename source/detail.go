package source

import "github.com/samber/mo"

// DetailRecord is the full page of a movie or series.
type DetailRecord struct {
	Title         string       `json:"title"`
	PosterURL     string       `json:"posterUrl"`
	BackgroundURL string       `json:"backgroundUrl"`
	Description   string       `json:"description"`
	Rating        string       `json:"rating"`
	Year          string       `json:"year"`
	Views         string       `json:"views"`
	Genres        []string     `json:"genres"`
	Countries     []string     `json:"countries"`
	PlayerLinks   []PlayerLink `json:"playerLinks"`
	Comments      []Comment    `json:"comments"`
	Seasons       []Season     `json:"seasons"`
	IsSeries      bool         `json:"isSeries"`
}

// EpisodeCount sums episodes over all seasons.
func (d DetailRecord) EpisodeCount() int {
	var n int
	for _, s := range d.Seasons {
		n += len(s.Episodes)
	}
	return n
}

type Season struct {
	Title    string    `json:"title"`
	Episodes []Episode `json:"episodes"`
}

type Episode struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// EpisodeDetailRecord is a single episode page of a series.
type EpisodeDetailRecord struct {
	SeriesTitle   string            `json:"seriesTitle"`
	EpisodeTitle  string            `json:"episodeTitle"`
	Description   string            `json:"description"`
	BackgroundURL string            `json:"backgroundUrl"`
	PlayerLinks   []PlayerLink      `json:"playerLinks"`
	Comments      []Comment         `json:"comments"`
	PrevURL       mo.Option[string] `json:"prevUrl"`
	NextURL       mo.Option[string] `json:"nextUrl"`
}
