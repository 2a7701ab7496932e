package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	bannerText  = "Weather CSV Export Tool"
	startPrompt = "Starting log date [YYYY/MM/DD]: "
	endPrompt   = "Ending log date   [YYYY/MM/DD]: "
)

// Prompter reads operator answers line by line
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter over in and out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Banner prints the tool title followed by a blank line
func (p *Prompter) Banner() {
	fmt.Fprintf(p.out, "%s\n\n", bannerText)
}

// Ask prints label and returns the next input line with surrounding
// whitespace removed. End of input yields whatever was read, possibly "".
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if err == io.EOF {
		// keep the transcript on separate lines when stdin closes early
		fmt.Fprintln(p.out)
	}
	return strings.TrimSpace(line), nil
}

// CollectDates returns the start and end inputs, prompting only for the
// ones not already supplied.
func (p *Prompter) CollectDates(start, end string) (string, string, error) {
	var err error
	if start == "" {
		if start, err = p.Ask(startPrompt); err != nil {
			return "", "", err
		}
	}
	if end == "" {
		if end, err = p.Ask(endPrompt); err != nil {
			return "", "", err
		}
	}
	return strings.TrimSpace(start), strings.TrimSpace(end), nil
}
