package style

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestBoxesContainTitleAndMessage(t *testing.T) {
	ok := SuccessBox("Success", "FE configuration saved to Chip.txt")
	assert.Contains(t, ok, "Success")
	assert.Contains(t, ok, "FE configuration saved to Chip.txt")

	bad := ErrorBox("Error", "Invalid input: Page Size")
	assert.Contains(t, bad, "Error")
	assert.Contains(t, bad, "Invalid input: Page Size")
}

func TestNote(t *testing.T) {
	out := Note("Note:", "Left block uses decimal (block).")
	assert.Contains(t, out, "Note:")
	assert.Contains(t, out, "Left block uses decimal (block).")
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "done")
	PrintYAML(&buf, map[string]string{"Page Size": "12288"})

	out := buf.String()
	assert.Contains(t, out, "done")
	assert.True(t, strings.Contains(out, "Page Size: \"12288\""))
}

func TestSuccess_PlainWriterGetsPlainText(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "wrote "+FormatFilePath("templates/chip.tpl"))

	assert.Equal(t, "✓ wrote templates/chip.tpl\n", ansi.Strip(buf.String()))
	assert.Contains(t, buf.String(), "templates/chip.tpl")
}
