package picker

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

var branches = []Item{
	{Label: "main"},
	{Label: "feature-login", Description: "/src/app.feature-login"},
	{Label: "fix-logout"},
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"main", "feature-login", "fix-logout"}},
		{"login", []string{"feature-login"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		var got []string
		for _, m := range Filter(branches, tt.query) {
			got = append(got, branches[m.Index].Label)
		}
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestBest(t *testing.T) {
	t.Parallel()

	if i, ok := Best(branches, "fxlo"); !ok || branches[i].Label != "fix-logout" {
		t.Errorf("Best(fxlo) = %d, %v", i, ok)
	}
	if _, ok := Best(branches, "qqq"); ok {
		t.Error("Best(qqq) should not match")
	}
	if i, ok := Best(branches, ""); !ok || i != 0 {
		t.Errorf("Best(\"\") = %d, %v, want first item", i, ok)
	}
}

func press(m tea.Model, keys ...tea.KeyPressMsg) model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m.(model)
}

func TestModel_Navigate(t *testing.T) {
	t.Parallel()

	m := press(newModel("Pick", branches),
		tea.KeyPressMsg{Code: tea.KeyDown},
		tea.KeyPressMsg{Code: tea.KeyDown},
		tea.KeyPressMsg{Code: tea.KeyDown},
		tea.KeyPressMsg{Code: tea.KeyUp},
		tea.KeyPressMsg{Code: tea.KeyEnter},
	)

	if !m.done || m.cancelled {
		t.Fatalf("done = %v, cancelled = %v", m.done, m.cancelled)
	}
	if m.chosen != 1 {
		t.Errorf("chosen = %d, want 1", m.chosen)
	}
}

func TestModel_Filter(t *testing.T) {
	t.Parallel()

	m := press(newModel("Pick", branches),
		tea.KeyPressMsg{Code: 'o', Text: "o"},
		tea.KeyPressMsg{Code: 'u', Text: "u"},
		tea.KeyPressMsg{Code: 't', Text: "t"},
	)
	if len(m.matches) != 1 || branches[m.matches[0].Index].Label != "fix-logout" {
		t.Fatalf("matches = %+v", m.matches)
	}

	m = press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.chosen != 2 {
		t.Errorf("chosen = %d, want 2", m.chosen)
	}
}

func TestModel_Cancel(t *testing.T) {
	t.Parallel()

	m := press(newModel("Pick", branches), tea.KeyPressMsg{Code: tea.KeyEscape})
	if !m.cancelled {
		t.Error("esc should cancel")
	}
	if m.chosen != -1 {
		t.Errorf("chosen = %d, want -1", m.chosen)
	}
}

func TestModel_EnterWithoutMatches(t *testing.T) {
	t.Parallel()

	m := press(newModel("Pick", branches),
		tea.KeyPressMsg{Code: 'q', Text: "q"},
		tea.KeyPressMsg{Code: 'q', Text: "q"},
		tea.KeyPressMsg{Code: tea.KeyEnter},
	)
	if m.done {
		t.Error("enter with no matches should not finish")
	}
	if !strings.Contains(ansi.Strip(m.render()), "No matching items") {
		t.Error("view should report no matches")
	}
}

func TestHighlight(t *testing.T) {
	t.Parallel()

	got := ansi.Strip(highlight("feature", []int{0, 2}, false))
	if got != "feature" {
		t.Errorf("highlight() stripped = %q, want %q", got, "feature")
	}
}

func TestRun_NoItems(t *testing.T) {
	t.Parallel()

	if _, err := Run("Pick", nil); err != ErrNoItems {
		t.Errorf("Run() error = %v, want ErrNoItems", err)
	}
}
