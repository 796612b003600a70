package source

import "strings"

// PlayerLink is one row of the playback link table.
// EncodedPayload is the opaque base64 blob from the row; see package playback.
type PlayerLink struct {
	HostName       string `json:"hostName"`
	EncodedPayload string `json:"encodedPayload"`
	Quality        string `json:"quality"`
	Version        string `json:"version"`
	AddedDate      string `json:"addedDateRaw"`
}

func (p PlayerLink) String() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.HostName, p.Version, p.Quality} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " · ")
}

// Comment is a flattened node of the comment thread. Depth 0 is a top-level comment.
type Comment struct {
	Author string `json:"author"`
	Date   string `json:"dateRaw"`
	Text   string `json:"text"`
	Depth  int    `json:"depth"`
}
