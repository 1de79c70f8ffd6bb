package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/redthread/internal/model"
	"github.com/idilsaglam/redthread/internal/store/jsonstore"
)

func habitSource(s *jsonstore.Store[model.Habit]) Source {
	return Source{
		Title: "Habits",
		Rows: func() []Row {
			var rows []Row
			for i, h := range s.Records() {
				rows = append(rows, Row{Pos: i + 1, Text: h.Name, Checkable: true, Done: h.Completed})
			}
			return rows
		},
		Toggle: func(pos int) error {
			return s.MarkField(pos, func(h *model.Habit) { h.Completed = !h.Completed })
		},
	}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestSpaceTogglesSelected(t *testing.T) {
	s := jsonstore.NewStore([]model.Habit{{Name: "Read"}, {Name: "Run"}})
	m := New(habitSource(s))

	m = press(t, m, down)
	m = press(t, m, space)

	assert.True(t, m.Changed())
	h, err := s.At(2)
	require.NoError(t, err)
	assert.True(t, h.Completed)
	first, _ := s.At(1)
	assert.False(t, first.Completed)

	m = press(t, m, space)
	h, _ = s.At(2)
	assert.False(t, h.Completed)
}

func TestReadOnlySourceIgnoresSpace(t *testing.T) {
	s := jsonstore.NewStore([]model.Habit{{Name: "Read"}})
	src := habitSource(s)
	src.Toggle = nil
	m := New(src)

	m = press(t, m, space)
	assert.False(t, m.Changed())
}

func TestQuit(t *testing.T) {
	m := New(habitSource(jsonstore.NewStore([]model.Habit{{Name: "Read"}})))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsRows(t *testing.T) {
	m := New(habitSource(jsonstore.NewStore([]model.Habit{{Name: "Read"}, {Name: "Run", Completed: true}})))
	v := m.View()
	assert.Contains(t, v, "Read")
	assert.Contains(t, v, "Run")
}
