package cli

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/redthread/internal/ui"
)

// maxLine bounds a single answer; bufio's default is 64 KiB.
const maxLine = 1 << 20

// console reads answers line by line. Once input is exhausted or broken
// every question gets ok=false.
type console struct {
	sc *bufio.Scanner
	p  *ui.Printer
}

func newConsole(in io.Reader, p *ui.Printer) *console {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &console{sc: sc, p: p}
}

// ask prints prompt and returns the next line, trimmed.
func (c *console) ask(prompt string) (string, bool) {
	c.p.Prompt(prompt)
	if !c.sc.Scan() {
		c.p.Println("")
		if err := c.sc.Err(); err != nil {
			c.p.Fail("Cannot read input: " + err.Error())
		}
		return "", false
	}
	return strings.TrimSpace(c.sc.Text()), true
}

type menuEntry struct {
	label string
	run   func()
}

// runMenu shows the numbered menu until the exit entry (numbered after the
// others) is chosen or input ends, then returns. The caller saves.
func (c *console) runMenu(title string, entries []menuEntry, exitLabel string) {
	exitChoice := strconv.Itoa(len(entries) + 1)
	for {
		c.p.Println("")
		c.p.Title("=== " + title + " ===")
		for i, e := range entries {
			c.p.Println(strconv.Itoa(i+1) + ". " + e.label)
		}
		c.p.Println(exitChoice + ". " + exitLabel)

		choice, ok := c.ask("Choose an option (1-" + exitChoice + "): ")
		if !ok || choice == exitChoice {
			return
		}
		if e, found := pick(entries, choice); found {
			e.run()
			continue
		}
		c.p.Fail("Invalid choice. Please try again.")
	}
}

func pick(entries []menuEntry, choice string) (menuEntry, bool) {
	for i, e := range entries {
		if choice == strconv.Itoa(i+1) {
			return e, true
		}
	}
	return menuEntry{}, false
}
