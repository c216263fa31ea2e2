// Package tui is an interactive terminal front end for the lookup widget.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"nutrisearch/internal/config"
	"nutrisearch/internal/models"
	"nutrisearch/internal/widget"
)

// resolvedMsg carries the widget state once a pending lookup settles.
type resolvedMsg struct {
	state models.QueryState
}

// Model is the bubbletea model for the food search screen.
type Model struct {
	widget  *widget.Widget
	landing *config.LandingConfig
	quick   []string

	input   textinput.Model
	spinner spinner.Model
	state   models.QueryState
}

// New creates a model driving w. quick lists the preset searches bound to
// the number keys, in order.
func New(w *widget.Widget, landing *config.LandingConfig, quick []string) Model {
	ti := textinput.New()
	ti.Placeholder = landing.Placeholder
	ti.CharLimit = 64
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = highlightStyle

	return Model{
		widget:  w,
		landing: landing,
		quick:   quick,
		input:   ti,
		spinner: s,
		state:   w.State(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case resolvedMsg:
		// Superseded lookups report a state that is no longer ours.
		if msg.state.ID == m.state.ID {
			m.state = msg.state
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.IsPending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "ctrl+r":
		m.state = m.widget.Reset()
		m.input.Reset()
		return m, nil

	case "enter":
		return m.submit(m.input.Value())

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		// Digits type normally once the user has started a query.
		if m.input.Value() == "" {
			if i := int(key[0] - '1'); i < len(m.quick) {
				m.input.SetValue(m.quick[i])
				return m.submit(m.quick[i])
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(query string) (tea.Model, tea.Cmd) {
	st := m.widget.Search(query)
	if st.ID == m.state.ID {
		return m, nil
	}
	m.state = st
	if !st.IsPending() {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, awaitResult(m.widget))
}

// awaitResult blocks until the widget's pending lookup settles.
func awaitResult(w *widget.Widget) tea.Cmd {
	return func() tea.Msg {
		st, _ := w.Await(context.Background())
		return resolvedMsg{state: st}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.landing.WidgetTitle))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.landing.WidgetSub))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch m.state.Phase {
	case models.PhasePending:
		fmt.Fprintf(&b, "%s %s\n", m.spinner.View(), m.landing.PendingLabel)

	case models.PhaseFound:
		b.WriteString(renderRecord(m.state.Result))
		b.WriteString("\n")

	case models.PhaseNotFound:
		b.WriteString(errorStyle.Render(m.state.Error))
		b.WriteString("\n")
		b.WriteString(m.renderQuick())

	default:
		b.WriteString(m.renderQuick())
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter search • ctrl+r reset • esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderQuick() string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render("Popular searches:"))
	b.WriteString("\n")
	for i, food := range m.quick {
		fmt.Fprintf(&b, "  %s %s\n", quickKeyStyle.Render(fmt.Sprintf("%d", i+1)), food)
	}
	return b.String()
}

// renderRecord formats a record as a card of nutrient values.
func renderRecord(rec *models.NutritionRecord) string {
	if rec == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(rec.Name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Per " + rec.ServingSize))
	for _, n := range rec.Nutrients() {
		value := fmt.Sprintf("%g %s", n.Value, n.Unit)
		if n.Highlight {
			value = highlightStyle.Render(value)
		}
		fmt.Fprintf(&b, "\n%s%s", nutrientStyle.Render(n.Label), value)
	}
	return cardStyle.Render(b.String())
}

// RenderRecord is the card used by the interactive screen, for one-shot output.
func RenderRecord(rec models.NutritionRecord) string {
	return renderRecord(&rec)
}
