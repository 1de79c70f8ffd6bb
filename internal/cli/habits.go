package cli

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/idilsaglam/redthread/internal/model"
	"github.com/idilsaglam/redthread/internal/store/jsonstore"
	"github.com/idilsaglam/redthread/internal/tui"
	"github.com/idilsaglam/redthread/internal/ui"
)

// Habits is the RedThread habit tracker.
var Habits = App{
	Name:    "habits",
	Short:   "RedThread habit tracker",
	session: runHabits,
	browse:  browseHabits,
}

type habitSession struct {
	*console
	store *jsonstore.Store[model.Habit]
	log   *zap.Logger
}

func openHabits(e *env) (*jsonstore.File[model.Habit], *jsonstore.Store[model.Habit], error) {
	f, err := jsonstore.Open[model.Habit](e.cfg.File, jsonstore.WithFs(e.fs), jsonstore.WithLogger(e.log))
	if err != nil {
		return nil, nil, err
	}
	s, err := f.Load()
	if err != nil {
		e.p.Warn("Error loading habits file. Starting with an empty list.")
	}
	return f, s, nil
}

func runHabits(e *env) int {
	f, s, err := openHabits(e)
	if err != nil {
		e.p.Fail(err.Error())
		return 2
	}
	hs := &habitSession{console: newConsole(e.in, e.p), store: s, log: e.log}
	hs.runMenu("RedThread Habit Tracker", []menuEntry{
		{"Add a habit", hs.add},
		{"View habits", hs.view},
		{"Mark habit as completed", hs.markCompleted},
	}, "Exit")

	if err := f.Save(s); err != nil {
		e.p.Fail("Error saving habits.")
		return 1
	}
	e.p.OK("Habits saved. Goodbye!")
	return 0
}

func (hs *habitSession) add() {
	name, ok := hs.ask("Enter habit name: ")
	if !ok {
		return
	}
	if name == "" {
		hs.p.Fail("Habit name cannot be empty.")
		return
	}
	err := hs.store.InsertUnique(model.Habit{Name: name})
	switch {
	case errors.Is(err, model.ErrDuplicateKey):
		hs.p.Fail("This habit already exists.")
	case err != nil:
		hs.p.Fail(err.Error())
	default:
		hs.log.Debug("habit added", zap.String("name", name))
		hs.p.OK(fmt.Sprintf("Habit '%s' added successfully.", name))
	}
}

func (hs *habitSession) view() {
	habits := hs.store.Records()
	if len(habits) == 0 {
		hs.p.Println("No habits found.")
		return
	}
	t := ui.Current()
	done := 0
	lines := []string{t.Title.Render("Your Habits:"), ""}
	for i, h := range habits {
		status := t.Pending.Render(h.Status())
		if h.Completed {
			status = t.Success.Render(h.Status())
			done++
		}
		lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, h.Name, status))
	}
	lines = append(lines, "", t.Muted.Render(ui.ProgressBar(done, len(habits), 20)))
	hs.p.Panel(lines)
}

func (hs *habitSession) markCompleted() {
	if hs.store.Len() == 0 {
		hs.p.Println("No habits to update.")
		return
	}
	hs.view()

	answer, ok := hs.ask("Enter habit number to mark as completed: ")
	if !ok {
		return
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		hs.p.Fail("Please enter a valid number.")
		return
	}
	if err := hs.store.MarkField(n, func(h *model.Habit) { h.Completed = true }); err != nil {
		hs.log.Debug("mark rejected", zap.Error(err))
		hs.p.Fail("Invalid habit number.")
		return
	}
	h, _ := hs.store.At(n)
	hs.p.OK(fmt.Sprintf("Habit '%s' marked as completed.", h.Name))
}

func browseHabits(e *env) int {
	f, s, err := openHabits(e)
	if err != nil {
		e.p.Fail(err.Error())
		return 2
	}
	src := tui.Source{
		Title: "Habits",
		Rows: func() []tui.Row {
			rows := make([]tui.Row, 0, s.Len())
			for i, h := range s.Records() {
				rows = append(rows, tui.Row{Pos: i + 1, Text: h.Name, Checkable: true, Done: h.Completed})
			}
			return rows
		},
		Toggle: func(pos int) error {
			return s.MarkField(pos, func(h *model.Habit) { h.Completed = !h.Completed })
		},
	}
	return runBrowser(e, src, func() error { return f.Save(s) }, "Error saving habits.")
}

// runBrowser shows src and saves once on the way out if anything changed.
func runBrowser(e *env, src tui.Source, save func() error, saveFailed string) int {
	changed, err := tui.Run(src, e.in, e.p.Out)
	if err != nil {
		e.p.Fail(err.Error())
		return 1
	}
	if !changed {
		return 0
	}
	if err := save(); err != nil {
		e.p.Fail(saveFailed)
		return 1
	}
	e.p.OK("saved")
	return 0
}
