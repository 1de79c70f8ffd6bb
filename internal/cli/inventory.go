package cli

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/idilsaglam/redthread/internal/model"
	"github.com/idilsaglam/redthread/internal/store/jsonstore"
	"github.com/idilsaglam/redthread/internal/tui"
	"github.com/idilsaglam/redthread/internal/ui"
)

// Inventory is the inventory manager.
var Inventory = App{
	Name:    "inventory",
	Short:   "Inventory manager",
	session: runInventory,
	browse:  browseInventory,
}

type inventorySession struct {
	*console
	store *jsonstore.Store[model.Item]
	log   *zap.Logger
}

func itemName(it model.Item) string { return it.Name }

func openInventory(e *env) (*jsonstore.File[model.Item], *jsonstore.Store[model.Item], error) {
	f, err := jsonstore.Open[model.Item](e.cfg.File, jsonstore.WithFs(e.fs), jsonstore.WithLogger(e.log))
	if err != nil {
		return nil, nil, err
	}
	s, err := f.Load()
	if err != nil {
		e.p.Warn("Error loading inventory file. Starting with an empty list.")
	}
	return f, s, nil
}

func runInventory(e *env) int {
	f, s, err := openInventory(e)
	if err != nil {
		e.p.Fail(err.Error())
		return 2
	}
	is := &inventorySession{console: newConsole(e.in, e.p), store: s, log: e.log}
	is.runMenu("Inventory Manager", []menuEntry{
		{"Add item", is.add},
		{"View items", is.view},
		{"Update item", is.update},
		{"Search items", is.search},
	}, "Exit")

	if err := f.Save(s); err != nil {
		e.p.Fail("Error saving inventory.")
		return 1
	}
	e.p.OK("Inventory saved. Goodbye!")
	return 0
}

func (is *inventorySession) add() {
	id, ok := is.ask("Enter item ID (blank to generate): ")
	if !ok {
		return
	}
	name, ok := is.ask("Enter item name: ")
	if !ok {
		return
	}
	price, ok := is.ask("Enter price: ")
	if !ok {
		return
	}
	qty, ok := is.ask("Enter quantity: ")
	if !ok {
		return
	}

	it, err := model.ParseItem(id, name, price, qty)
	if err != nil {
		is.p.Fail("Price and quantity must be numbers.")
		return
	}
	if it.ID == "" {
		it.ID = model.NewItemID()
	}
	err = is.store.InsertUnique(it)
	switch {
	case errors.Is(err, model.ErrDuplicateKey):
		is.p.Fail(fmt.Sprintf("An item with ID '%s' already exists.", it.ID))
	case err != nil:
		is.p.Fail(err.Error())
	default:
		is.log.Debug("item added", zap.String("id", it.ID))
		is.p.OK(fmt.Sprintf("Item '%s' added with ID %s.", it.Name, it.ID))
	}
}

func (is *inventorySession) view() {
	items := is.store.Records()
	if len(items) == 0 {
		is.p.Println("No items in inventory.")
		return
	}
	is.p.Panel(itemLines("Inventory:", items))
}

func itemLines(heading string, items []model.Item) []string {
	t := ui.Current()
	lines := []string{t.Title.Render(heading), ""}
	for _, it := range items {
		lines = append(lines, formatItem(it))
	}
	return lines
}

func formatItem(it model.Item) string {
	return fmt.Sprintf("%s | %s | $%.2f | qty %d", ui.Current().Accent.Render(it.ID), it.Name, it.Price, it.Quantity)
}

func (is *inventorySession) update() {
	id, ok := is.ask("Enter item ID to update: ")
	if !ok {
		return
	}
	current, found := is.store.FindByKey(id)
	if !found {
		is.p.Fail("Item not found.")
		return
	}
	price, ok := is.ask(fmt.Sprintf("New price (blank keeps %.2f): ", current.Price))
	if !ok {
		return
	}
	qty, ok := is.ask(fmt.Sprintf("New quantity (blank keeps %d): ", current.Quantity))
	if !ok {
		return
	}

	err := is.store.UpdateFields(id, model.ItemUpdate{Price: price, Quantity: qty}.Apply)
	switch {
	case errors.Is(err, model.ErrInvalidNumericInput):
		is.p.Fail("Invalid input. Price and quantity must be numbers. No changes made.")
	case errors.Is(err, model.ErrRecordNotFound):
		is.p.Fail("Item not found.")
	case err != nil:
		is.p.Fail(err.Error() + ". No changes made.")
	default:
		is.log.Debug("item updated", zap.String("id", id))
		is.p.OK(fmt.Sprintf("Item '%s' updated.", id))
	}
}

func (is *inventorySession) search() {
	term, ok := is.ask("Enter search term: ")
	if !ok {
		return
	}
	matches := is.store.FilterContains(itemName, term)
	if len(matches) == 0 {
		is.p.Println("No matching items found.")
		return
	}
	is.p.Panel(itemLines("Matching items:", matches))
}

func browseInventory(e *env) int {
	f, s, err := openInventory(e)
	if err != nil {
		e.p.Fail(err.Error())
		return 2
	}
	src := tui.Source{
		Title: "Inventory",
		Rows: func() []tui.Row {
			rows := make([]tui.Row, 0, s.Len())
			for i, it := range s.Records() {
				rows = append(rows, tui.Row{
					Pos:    i + 1,
					Text:   it.Name,
					Detail: fmt.Sprintf("%s  $%.2f  qty %d", it.ID, it.Price, it.Quantity),
				})
			}
			return rows
		},
	}
	return runBrowser(e, src, func() error { return f.Save(s) }, "Error saving inventory.")
}
