// Package interaction reads the sample name and category from the user.
// Terminals get huh forms; piped input is read line by line so the tool can
// be scripted.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// SampleNamePrompt is shown before the sample name is read.
const SampleNamePrompt = `Enter Name of the sample with spaces (Eg. "Display New Map"): `

// Prompter defines the interface for interactive user input and selection.
type Prompter interface {
	// Input asks for one line of free text.
	Input(title string) (string, error)
	// Select asks for one of options and returns its index.
	Select(title string, options []string) (int, error)
	// Confirm asks a yes/no question.
	Confirm(title string) (bool, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewPrompter returns a HuhPrompter when in is a terminal and a LinePrompter
// reading from in otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && IsTerminal(f) {
		return HuhPrompter{}
	}
	return NewLinePrompter(in, out)
}

// ReadSampleName asks for the sample's display name.
func ReadSampleName(p Prompter) (string, error) {
	name, err := p.Input(SampleNamePrompt)
	if err != nil {
		return "", fmt.Errorf("reading sample name: %w", err)
	}
	return strings.TrimSpace(name), nil
}

// LinePrompter prompts on w and reads answers line by line from r.
type LinePrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLinePrompter creates a LinePrompter.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(r), w: w}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		// A last line without a newline still counts.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Input prints title and returns the next line.
func (p *LinePrompter) Input(title string) (string, error) {
	fmt.Fprintln(p.w, title)
	return p.readLine()
}

// Select prints a numbered menu and returns the zero-based index of the choice.
func (p *LinePrompter) Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("no options to choose from")
	}
	fmt.Fprintf(p.w, "%s\n", title)
	for i, opt := range options {
		fmt.Fprintf(p.w, "%d: %s\n", i+1, opt)
	}
	fmt.Fprintf(p.w, "Enter a number (1-%d): ", len(options))

	line, err := p.readLine()
	if err != nil {
		return 0, fmt.Errorf("reading selection: %w", err)
	}

	num, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || num < 1 || num > len(options) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", strings.TrimSpace(line), len(options))
	}
	return num - 1, nil
}

// Confirm prints title with a [y/N] hint and accepts y or yes. Anything else,
// including end of input, is a no.
func (p *LinePrompter) Confirm(title string) (bool, error) {
	fmt.Fprintf(p.w, "%s [y/N]: ", title)
	line, err := p.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
