// Package console talks to the operator over a line-oriented terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/ppiankov/triage/internal/model"
	"github.com/ppiankov/triage/internal/session"
)

// PromptChoice asks the operator to pick a presented candidate
const PromptChoice = "Choose a course of action"

// Console implements session.Input and session.Output
type Console struct {
	r       *bufio.Reader
	w       io.Writer
	decline map[string]bool
	prompt  *color.Color
	warn    *color.Color
}

// Option configures a Console
type Option func(*Console)

// WithDeclineTokens sets the inputs read as "decline to answer".
// Tokens are compared after trimming surrounding space.
func WithDeclineTokens(tokens ...string) Option {
	return func(c *Console) {
		c.decline = make(map[string]bool, len(tokens))
		for _, t := range tokens {
			c.decline[strings.TrimSpace(t)] = true
		}
	}
}

// WithColor turns colored prompts off. When enabled, color is used only
// if the output is a terminal.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		if !enabled {
			c.prompt.DisableColor()
			c.warn.DisableColor()
		}
	}
}

// New creates a console reading operator input from r and writing to w
func New(r io.Reader, w io.Writer, opts ...Option) *Console {
	c := &Console{
		r:       bufio.NewReader(r),
		w:       w,
		decline: map[string]bool{"": true},
		prompt:  color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AskAnswer prompts for an answer. A decline token yields Absent.
func (c *Console) AskAnswer(prompt string) (model.Answer, error) {
	line, err := c.ask(prompt)
	if err != nil {
		return model.Absent, err
	}
	if c.decline[line] {
		return model.Absent, nil
	}
	return model.Ground(line), nil
}

// AskChoice reads the position of a presented candidate
func (c *Console) AskChoice(candidates []session.Candidate) (model.OutcomeID, error) {
	line, err := c.ask(PromptChoice)
	if err != nil {
		return 0, err
	}

	pos, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", session.ErrMalformedChoice, line)
	}
	if pos < 0 || pos >= len(candidates) {
		return 0, fmt.Errorf("%w: %d is out of range", session.ErrMalformedChoice, pos)
	}
	return candidates[pos].ID, nil
}

// AskFreeText prompts for a line of text
func (c *Console) AskFreeText(prompt string) (string, error) {
	return c.ask(prompt)
}

// DisplayLine writes one line
func (c *Console) DisplayLine(text string) {
	_, _ = fmt.Fprintln(c.w, text)
}

// Warn writes one highlighted line
func (c *Console) Warn(text string) {
	_, _ = c.warn.Fprintln(c.w, text)
}

// ask writes prompt and returns the next trimmed input line.
// It returns io.EOF only when no further input exists.
func (c *Console) ask(prompt string) (string, error) {
	if _, err := c.prompt.Fprint(c.w, prompt+": "); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := c.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		if err != io.EOF {
			err = fmt.Errorf("read input: %w", err)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
