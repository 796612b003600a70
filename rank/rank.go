// Package rank orders playback links so the most watchable one comes first.
package rank

import (
	"slices"
	"strings"

	"github.com/kinotv/kino/source"
)

const unknownVersion = 100

// VersionScore rates an audio/subtitle version label. Lower is better; rules are checked in order.
func VersionScore(version string) int {
	v := strings.ToLower(strings.TrimSpace(version))
	has := func(s string) bool { return strings.Contains(v, strings.ToLower(s)) }

	switch {
	case v == "pl":
		return 0
	case has("dubbing") && !has("kino"):
		return 1
	case v == "lektor":
		return 2
	case has("dubbing_kino"):
		return 3
	case has("lektor_ai"):
		return 4
	case has("lektor_ivo"):
		return 5
	case v == "napisy":
		return 6
	case has("napisy_transl"):
		return 7
	case has("eng"):
		return 8
	default:
		return unknownVersion
	}
}

// QualityScore rates a resolution label. Higher is better. Matching is case-sensitive,
// so "4K" is not recognised while "4k" is.
func QualityScore(q string) int {
	switch {
	case strings.Contains(q, "2160"), strings.Contains(q, "4k"):
		return 4
	case strings.Contains(q, "1080"):
		return 3
	case strings.Contains(q, "720"):
		return 2
	case strings.Contains(q, "480"):
		return 1
	default:
		return 0
	}
}

// PreferredHost reports whether host is one the player handles best.
func PreferredHost(host string) bool {
	return strings.Contains(strings.ToLower(host), "voe")
}

// Sort returns a stably sorted copy of links: version ascending, quality descending,
// then preferred hosts first. links itself is left untouched.
func Sort(links []source.PlayerLink) []source.PlayerLink {
	sorted := slices.Clone(links)
	slices.SortStableFunc(sorted, Compare)
	return sorted
}

// Compare is the ordering used by Sort.
func Compare(a, b source.PlayerLink) int {
	if d := VersionScore(a.Version) - VersionScore(b.Version); d != 0 {
		return d
	}
	if d := QualityScore(b.Quality) - QualityScore(a.Quality); d != 0 {
		return d
	}

	pa, pb := PreferredHost(a.HostName), PreferredHost(b.HostName)
	switch {
	case pa && !pb:
		return -1
	case pb && !pa:
		return 1
	default:
		return 0
	}
}
