// Package prompt provides the interactive confirmation adapter implementation.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"tftp-router-flasher/internal/port"
)

// ConfirmerAdapter is an adapter that implements the Confirmer port on a line-oriented terminal.
type ConfirmerAdapter struct {
	in  *bufio.Reader
	out io.Writer
}

// Ensure ConfirmerAdapter implements the Confirmer port
var _ port.Confirmer = (*ConfirmerAdapter)(nil)

// NewConfirmerAdapter creates a confirmer reading answers from in and writing questions to out.
func NewConfirmerAdapter(in io.Reader, out io.Writer) *ConfirmerAdapter {
	return &ConfirmerAdapter{in: bufio.NewReader(in), out: out}
}

// Confirm prints the question and blocks until a line is read.
// Only "y" or "yes" (any case) count as consent; end of input counts as a refusal.
func (c *ConfirmerAdapter) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(c.out, "%s (Y/N): ", question); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
