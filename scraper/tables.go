package scraper

import "strings"

// Choice is a display name and the identifier the site expects in the URL.
type Choice struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Table is an ordered, read-only name to identifier mapping with a fallback identifier.
type Table struct {
	choices  []Choice
	fallback string
}

func newTable(fallback string, choices ...Choice) Table {
	return Table{choices: choices, fallback: fallback}
}

// Lookup returns the identifier for name, matched case-insensitively, or the fallback.
func (t Table) Lookup(name string) string {
	name = strings.TrimSpace(name)
	for _, c := range t.choices {
		if strings.EqualFold(c.Name, name) {
			return c.ID
		}
	}
	return t.fallback
}

func (t Table) Names() []string {
	names := make([]string, len(t.choices))
	for i, c := range t.choices {
		names[i] = c.Name
	}
	return names
}

func (t Table) Choices() []Choice {
	return append([]Choice(nil), t.choices...)
}

func (t Table) Default() string {
	for _, c := range t.choices {
		if c.ID == t.fallback {
			return c.Name
		}
	}
	return ""
}

var Categories = newTable("",
	Choice{"Wszystkie", ""},
	Choice{"Akcja", "1"},
	Choice{"Animacja", "2"},
	Choice{"Czarna Komedia", "95"},
	Choice{"Dla Młodzieży", "90"},
	Choice{"Erotyczny", "72"},
	Choice{"Familijny", "22"},
	Choice{"Horror", "29"},
	Choice{"Komedia", "32"},
	Choice{"Sci-Fi", "57"},
	Choice{"Thriller", "63"},
)

var MovieSorts = newTable("link",
	Choice{"Nowe Linki", "link"},
	Choice{"Liczba Głosów", "vote"},
	Choice{"Premiera", "premiere"},
	Choice{"Odsłony", "view"},
	Choice{"Ocena", "rate"},
	Choice{"Ocena Filmweb", "filmweb"},
)

var SeriesSorts = newTable("newepisode",
	Choice{"Nowe Odcinki", "newepisode"},
	Choice{"Nowe Seriale", "date"},
	Choice{"Liczba Głosów", "vote"},
	Choice{"Odsłony", "view"},
	Choice{"Ocena", "rate"},
)
