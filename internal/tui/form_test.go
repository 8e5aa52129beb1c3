package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeString(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func pressEnter(m tea.Model) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestFormCollectsPoolAndJob(t *testing.T) {
	var m tea.Model = NewForm()

	// Pool: skill, level, quantity, certifiers
	m = typeString(m, "Go")
	m = pressEnter(m)
	m = typeString(m, "high")
	m = pressEnter(m)
	m = typeString(m, "3")
	m = pressEnter(m)
	m = typeString(m, "a@x.com, b@x.com")
	m = pressEnter(m)

	// Empty skill advances to jobs
	m = pressEnter(m)

	// Job: name, skills
	m = typeString(m, "Backend Developer")
	m = pressEnter(m)
	m = pressEnter(m) // empty skills

	// Empty name finishes
	m = pressEnter(m)

	form := m.(FormModel)
	if form.Aborted() {
		t.Fatal("form should not be aborted")
	}

	req := form.Request()
	if len(req.Pools) != 1 {
		t.Fatalf("pool count = %d, want 1", len(req.Pools))
	}
	p := req.Pools[0]
	if p.Skill != "Go" || p.Level != "HIGH" || p.Quantity != 3 {
		t.Errorf("pool = %+v", p)
	}
	if len(p.Certifiers) != 2 {
		t.Errorf("certifiers = %v", p.Certifiers)
	}

	if len(req.Jobs) != 1 {
		t.Fatalf("job count = %d, want 1", len(req.Jobs))
	}
	j := req.Jobs[0]
	if j.Name != "Backend Developer" {
		t.Errorf("job name = %q", j.Name)
	}
	if len(j.Skills) != 1 || j.Skills[0] != "Go" {
		t.Errorf("job skills should default to first pool skill, got %v", j.Skills)
	}
}

func TestFormRequiresOnePool(t *testing.T) {
	var m tea.Model = NewForm()

	// Empty skill with no pools yet: stays in pool phase with an error
	m = pressEnter(m)

	form := m.(FormModel)
	if form.phase != phasePools {
		t.Error("form should stay in the pools phase")
	}
	if form.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestFormInvalidQuantity(t *testing.T) {
	var m tea.Model = NewForm()

	m = typeString(m, "Go")
	m = pressEnter(m)
	m = pressEnter(m) // level default
	m = typeString(m, "zero")
	m = pressEnter(m)
	m = pressEnter(m) // certifiers, triggers commit

	form := m.(FormModel)
	if len(form.request.Pools) != 0 {
		t.Error("pool with bad quantity should not commit")
	}
	if form.errMsg == "" {
		t.Error("expected quantity error")
	}
}

func TestFormAbort(t *testing.T) {
	var m tea.Model = NewForm()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if !m.(FormModel).Aborted() {
		t.Error("esc should abort the form")
	}
}
