// Package picker provides an interactive fuzzy-filtered single-select list.
//
// The list renders to stderr so stdout stays usable for piping, as in
// cd "$(maestro wt path -i)".
package picker

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/fikriauliya/maestro-ai/internal/ui/styles"
)

// ErrCancelled is returned by Run when the user aborts the selection.
var ErrCancelled = errors.New("selection cancelled")

// ErrNoItems is returned by Run when there is nothing to pick from.
var ErrNoItems = errors.New("nothing to select")

const maxVisible = 10

// Item is one selectable entry. Label is what the filter matches against.
type Item struct {
	Label       string
	Description string
}

type itemSource []Item

func (s itemSource) String(i int) string { return s[i].Label }
func (s itemSource) Len() int            { return len(s) }

// Filter returns the items matching query, best match first. An empty
// query matches every item in its original order.
func Filter(items []Item, query string) []fuzzy.Match {
	if query == "" {
		matches := make([]fuzzy.Match, len(items))
		for i, it := range items {
			matches[i] = fuzzy.Match{Str: it.Label, Index: i}
		}
		return matches
	}
	return fuzzy.FindFrom(query, itemSource(items))
}

// Best returns the index of the item best matching query.
func Best(items []Item, query string) (int, bool) {
	matches := Filter(items, query)
	if len(matches) == 0 {
		return -1, false
	}
	return matches[0].Index, true
}

type model struct {
	title   string
	items   []Item
	input   textinput.Model
	matches []fuzzy.Match
	cursor  int

	chosen    int
	cancelled bool
	done      bool
}

func newModel(title string, items []Item) model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "Filter: "
	ti.SetWidth(50)
	ti.Focus()

	return model{
		title:   title,
		items:   items,
		input:   ti,
		matches: Filter(items, ""),
		chosen:  -1,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			if m.cursor < len(m.matches) {
				m.chosen = m.matches[m.cursor].Index
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.matches = Filter(m.items, m.input.Value())
		m.cursor = 0
	}
	return m, cmd
}

func (m model) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.render())
}

func (m model) render() string {
	var b strings.Builder
	b.WriteString(styles.Bold.Render(m.title) + "\n")
	b.WriteString(m.input.View() + "\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.matches))

	if start > 0 {
		b.WriteString(styles.MutedStyle.Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		match := m.matches[i]
		item := m.items[match.Index]

		cursor := "  "
		if i == m.cursor {
			cursor = styles.AccentStyle.Render("> ")
		}
		b.WriteString(cursor + highlight(item.Label, match.MatchedIndexes, i == m.cursor))
		if item.Description != "" {
			b.WriteString("  " + styles.MutedStyle.Render(item.Description))
		}
		b.WriteString("\n")
	}
	if end < len(m.matches) {
		b.WriteString(styles.MutedStyle.Render("  ↓ more below") + "\n")
	}
	if len(m.matches) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching items") + "\n")
	}

	b.WriteString("\n" + styles.MutedStyle.Render("↑/↓ select • type to filter • enter confirm • esc cancel"))
	return b.String()
}

// highlight renders label with the fuzzy-matched bytes emphasized.
func highlight(label string, matched []int, selected bool) string {
	base := styles.NormalStyle
	if selected {
		base = styles.AccentStyle
	}
	if len(matched) == 0 {
		return base.Render(label)
	}

	set := make(map[int]bool, len(matched))
	for _, idx := range matched {
		set[idx] = true
	}

	var b strings.Builder
	for i, r := range label {
		if set[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// Run shows the picker and returns the index of the chosen item.
// Returns ErrCancelled if the user aborted.
func Run(title string, items []Item) (int, error) {
	if len(items) == 0 {
		return -1, ErrNoItems
	}

	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(newModel(title, items),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	final, err := p.Run()
	if err != nil {
		return -1, fmt.Errorf("picker: %w", err)
	}

	m := final.(model)
	if m.cancelled || m.chosen < 0 {
		return -1, ErrCancelled
	}
	return m.chosen, nil
}
