// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package tui implements the interactive full-screen form for
// collecting pools and jobs, an alternative to generate's flag and
// prompt driven flow.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"seedgen/cli/internal/inputs"
)

type phase int

const (
	phasePools phase = iota
	phaseJobs
	phaseDone
)

// Pool entry fields, in focus order.
const (
	fieldSkill = iota
	fieldLevel
	fieldQuantity
	fieldCertifiers
	poolFieldCount
)

// Job entry fields.
const (
	fieldJobName = iota
	fieldJobSkills
	jobFieldCount
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// FormModel collects pools and jobs field by field. An empty skill
// advances from pools to jobs; an empty job name finishes the form.
type FormModel struct {
	phase   phase
	focus   int
	fields  []textinput.Model
	request inputs.Request
	errMsg  string
	aborted bool
}

// NewForm builds the form positioned on the first pool field.
func NewForm() FormModel {
	m := FormModel{phase: phasePools}
	m.fields = poolFields()
	m.fields[0].Focus()
	return m
}

func poolFields() []textinput.Model {
	fields := make([]textinput.Model, poolFieldCount)

	skill := textinput.New()
	skill.Placeholder = "e.g. Go (empty to continue to jobs)"
	skill.CharLimit = 80
	skill.Width = 44
	fields[fieldSkill] = skill

	level := textinput.New()
	level.Placeholder = "LOW / MEDIUM / HIGH (default LOW)"
	level.CharLimit = 10
	level.Width = 44
	fields[fieldLevel] = level

	quantity := textinput.New()
	quantity.Placeholder = fmt.Sprintf("questions per pool (default %d)", inputs.DefaultQuantity)
	quantity.CharLimit = 4
	quantity.Width = 44
	fields[fieldQuantity] = quantity

	certifiers := textinput.New()
	certifiers.Placeholder = "comma-separated certifier emails"
	certifiers.CharLimit = 200
	certifiers.Width = 44
	fields[fieldCertifiers] = certifiers

	return fields
}

func jobFields() []textinput.Model {
	fields := make([]textinput.Model, jobFieldCount)

	name := textinput.New()
	name.Placeholder = "e.g. Backend Developer (empty to finish)"
	name.CharLimit = 120
	name.Width = 44
	fields[fieldJobName] = name

	skills := textinput.New()
	skills.Placeholder = "comma-separated skills (default: first pool's skill)"
	skills.CharLimit = 200
	skills.Width = 44
	fields[fieldJobSkills] = skills

	return fields
}

// Init implements tea.Model.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			return m.advance()
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.fields))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + len(m.fields)) % len(m.fields))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m *FormModel) setFocus(i int) {
	m.fields[m.focus].Blur()
	m.focus = i
	m.fields[m.focus].Focus()
}

// advance moves to the next field, committing the current entry when
// Enter is pressed on the last one.
func (m FormModel) advance() (tea.Model, tea.Cmd) {
	m.errMsg = ""

	if m.focus < len(m.fields)-1 {
		// Empty first field is the exit signal for the phase; commit
		// immediately instead of walking the remaining fields.
		if m.focus == 0 && strings.TrimSpace(m.fields[0].Value()) == "" {
			return m.commit()
		}
		m.setFocus(m.focus + 1)
		return m, nil
	}

	return m.commit()
}

func (m FormModel) commit() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phasePools:
		skill := strings.TrimSpace(m.fields[fieldSkill].Value())
		if skill == "" {
			if len(m.request.Pools) == 0 {
				m.errMsg = "at least one pool is required"
				m.setFocus(fieldSkill)
				return m, nil
			}
			m.phase = phaseJobs
			m.fields = jobFields()
			m.focus = 0
			m.fields[0].Focus()
			return m, nil
		}

		pool := inputs.PoolInput{
			Skill:      skill,
			Level:      inputs.ParseLevel(m.fields[fieldLevel].Value()),
			Certifiers: inputs.ParseList(m.fields[fieldCertifiers].Value()),
		}
		if raw := strings.TrimSpace(m.fields[fieldQuantity].Value()); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				m.errMsg = "quantity must be a positive number"
				m.setFocus(fieldQuantity)
				return m, nil
			}
			pool.Quantity = n
		}
		m.request.Pools = append(m.request.Pools, pool)
		m.fields = poolFields()
		m.focus = 0
		m.fields[0].Focus()
		return m, nil

	case phaseJobs:
		name := strings.TrimSpace(m.fields[fieldJobName].Value())
		if name == "" {
			if len(m.request.Jobs) == 0 {
				m.errMsg = "at least one job is required"
				m.setFocus(fieldJobName)
				return m, nil
			}
			m.phase = phaseDone
			return m, tea.Quit
		}

		m.request.Jobs = append(m.request.Jobs, inputs.JobInput{
			Name:   name,
			Skills: inputs.ParseList(m.fields[fieldJobSkills].Value()),
		})
		m.fields = jobFields()
		m.focus = 0
		m.fields[0].Focus()
		return m, nil
	}

	return m, tea.Quit
}

// View implements tea.Model.
func (m FormModel) View() string {
	if m.phase == phaseDone {
		return ""
	}

	var b strings.Builder

	switch m.phase {
	case phasePools:
		b.WriteString(titleStyle.Render("Question pools"))
		b.WriteString("\n")
		b.WriteString(doneStyle.Render(fmt.Sprintf("  %d pool(s) added", len(m.request.Pools))))
		b.WriteString("\n\n")
		m.renderField(&b, "Skill", fieldSkill)
		m.renderField(&b, "Level", fieldLevel)
		m.renderField(&b, "Questions", fieldQuantity)
		m.renderField(&b, "Certifiers", fieldCertifiers)
	case phaseJobs:
		b.WriteString(titleStyle.Render("Job positions"))
		b.WriteString("\n")
		b.WriteString(doneStyle.Render(fmt.Sprintf("  %d job(s) added", len(m.request.Jobs))))
		b.WriteString("\n\n")
		m.renderField(&b, "Name", fieldJobName)
		m.renderField(&b, "Skills", fieldJobSkills)
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("  " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("  enter: next · tab/↑↓: move · leave first field empty to continue · esc: cancel"))
	b.WriteString("\n")

	return b.String()
}

func (m FormModel) renderField(b *strings.Builder, label string, index int) {
	style := labelStyle
	if index == m.focus {
		style = activeStyle
	}
	fmt.Fprintf(b, "  %s\n  %s\n\n", style.Render(label), m.fields[index].View())
}

// Request returns the collected inputs, normalized.
func (m FormModel) Request() *inputs.Request {
	req := m.request
	req.Normalize()
	return &req
}

// Aborted reports whether the user cancelled the form.
func (m FormModel) Aborted() bool {
	return m.aborted
}

// Run drives the form to completion and returns the validated request.
func Run() (*inputs.Request, error) {
	final, err := tea.NewProgram(NewForm()).Run()
	if err != nil {
		return nil, fmt.Errorf("form failed: %w", err)
	}

	model, ok := final.(FormModel)
	if !ok {
		return nil, fmt.Errorf("unexpected form state")
	}
	if model.Aborted() {
		return nil, ErrAborted
	}

	req := model.Request()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// ErrAborted is returned when the user backs out of the form.
var ErrAborted = fmt.Errorf("cancelled")
