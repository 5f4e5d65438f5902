// Package palette implements the site's command palette: a fixed list of
// navigation and action commands filtered by an ordered-subsequence match.
package palette

import (
	"strings"
	"unicode/utf8"
)

type Category string

const (
	Navigate Category = "navigate"
	Action   Category = "action"
)

// Command is one palette entry. Href is where the browser goes when the
// command runs; Copy, when set, is copied to the clipboard instead.
type Command struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	Icon     string   `json:"icon"`
	Href     string   `json:"href,omitempty"`
	Copy     string   `json:"copy,omitempty"`
	External bool     `json:"external,omitempty"`
}

// Matches reports whether query appears in candidate as an ordered,
// case-insensitive subsequence.
func Matches(query, candidate string) bool {
	q := strings.ToLower(query)
	c := strings.ToLower(candidate)
	for _, r := range c {
		if q == "" {
			break
		}
		qr, size := utf8.DecodeRuneInString(q)
		if r == qr {
			q = q[size:]
		}
	}
	return q == ""
}

// Filter returns the commands whose label matches query, in their original
// order. A blank query returns every command.
func Filter(commands []Command, query string) []Command {
	if strings.TrimSpace(query) == "" {
		return commands
	}
	out := make([]Command, 0, len(commands))
	for _, cmd := range commands {
		if Matches(query, cmd.Label) {
			out = append(out, cmd)
		}
	}
	return out
}

// Section is a page section reachable from the palette.
type Section struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Links are the contact and social targets offered as actions. Empty links
// produce no command.
type Links struct {
	Email     string
	LinkedIn  string
	Instagram string
	TikTok    string
	BookCall  string
}

// Commands builds the palette: one "Go to" entry per section followed by
// the contact actions.
func Commands(sections []Section, links Links) []Command {
	cmds := make([]Command, 0, len(sections)+5)
	for _, s := range sections {
		cmds = append(cmds, Command{
			ID:       "nav-" + s.ID,
			Label:    "Go to " + s.Label,
			Category: Navigate,
			Icon:     "→",
			Href:     "#" + s.ID,
		})
	}
	if links.Email != "" {
		cmds = append(cmds, Command{
			ID:       "copy-email",
			Label:    "Copy email address",
			Category: Action,
			Icon:     "✉",
			Copy:     links.Email,
		})
	}
	external := []struct {
		id, label, icon, href string
	}{
		{"open-linkedin", "Open LinkedIn", "\U0001F517", links.LinkedIn},
		{"open-instagram", "Open Instagram", "\U0001F4F7", links.Instagram},
		{"open-tiktok", "Open TikTok", "\U0001F3B5", links.TikTok},
		{"book-call", "Book a call", "\U0001F4C5", links.BookCall},
	}
	for _, e := range external {
		if e.href == "" {
			continue
		}
		cmds = append(cmds, Command{
			ID:       e.id,
			Label:    e.label,
			Category: Action,
			Icon:     e.icon,
			Href:     e.href,
			External: true,
		})
	}
	return cmds
}
