// Package confirm provides yes/no confirmation prompts for destructive
// operations.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Confirmer asks the user to confirm an action.
type Confirmer interface {
	// Confirm asks and reports the answer. Implementations decide what
	// happens when no interactive answer is possible.
	Confirm(message string) bool
}

// Terminal prompts on the terminal. Without a TTY it declines, so a
// piped invocation never destroys anything silently.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminal creates a prompt bound to stdin/stderr.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stderr}
}

// Confirm prompts with message and reads a y/n answer.
func (t *Terminal) Confirm(message string) bool {
	if f, ok := t.In.(*os.File); ok {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return false
		}
	}

	fmt.Fprintf(t.Out, "%s [y/N]: ", message)

	reader := bufio.NewReader(t.In)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// Static always answers the same way. Used by --force and in tests.
type Static struct {
	Answer bool
}

// Confirm returns the fixed answer.
func (s Static) Confirm(string) bool {
	return s.Answer
}
