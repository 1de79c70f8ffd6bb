package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "█████ 100%", ProgressBar(3, 3, 5))
}

func TestPrinterStreams(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	var out, errw bytes.Buffer
	p := NewPrinter(&out, &errw)
	p.OK("added")
	p.Fail("not found")
	p.Warn("corrupt file")

	assert.Equal(t, "ok added\n", out.String())
	assert.Equal(t, "x not found\n! corrupt file\n", errw.String())
}

func TestPanelMono(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	got := PanelString([]string{"ab", "c"})
	lines := strings.Split(got, "\n")
	assert.Equal(t, []string{
		"+----+",
		"| ab |",
		"| c  |",
		"+----+",
	}, lines)
}
