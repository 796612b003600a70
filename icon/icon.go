// Package icon renders status and content symbols in the configured variant.
package icon

import (
	"github.com/kinotv/kino/key"
	"github.com/spf13/viper"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Movie
	Series
	Link
	Comment
	Star
	Lock
	Bookmark
	Search
)

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: " ", plain: "✓"},
	Fail:     {emoji: "💀", nerd: " ", plain: "X"},
	Progress: {emoji: "⏳", nerd: " ", plain: "..."},
	Movie:    {emoji: "🎬", nerd: " ", plain: "[M]"},
	Series:   {emoji: "📺", nerd: " ", plain: "[S]"},
	Link:     {emoji: "🔗", nerd: " ", plain: "->"},
	Comment:  {emoji: "💬", nerd: " ", plain: ">"},
	Star:     {emoji: "⭐", nerd: " ", plain: "*"},
	Lock:     {emoji: "🔒", nerd: " ", plain: "#"},
	Bookmark: {emoji: "🔖", nerd: " ", plain: "+"},
	Search:   {emoji: "🔍", nerd: " ", plain: "?"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get returns i in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}
