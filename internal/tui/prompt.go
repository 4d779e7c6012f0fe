package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrQuit is returned by a Prompter when the person at the terminal asks to
// leave (Ctrl-C).
var ErrQuit = errors.New("quit requested")

// Prompter abstracts the terminal so the console loop can be driven by a
// script in tests.
type Prompter interface {
	// Select returns the index of the chosen option.
	Select(ctx context.Context, message string, options []string) (int, error)
	Input(ctx context.Context, message, def string) (string, error)
	// Password reads without echo. An empty answer is returned as "".
	Password(ctx context.Context, message string) (string, error)
	Info(ctx context.Context, msg string) error
}

// SurveyPrompter talks to a real terminal.
type SurveyPrompter struct {
	out      io.Writer
	pageSize int
}

func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{out: os.Stdout, pageSize: 15}
}

func (p *SurveyPrompter) Select(ctx context.Context, message string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var out string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: p.pageSize,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}

	for i, option := range options {
		if option == out {
			return i, nil
		}
	}
	return 0, fmt.Errorf("survey returned unknown option %q", out)
}

func (p *SurveyPrompter) Input(ctx context.Context, message, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var out string
	prompt := &survey.Input{Message: message, Default: def}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (p *SurveyPrompter) Password(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var out string
	prompt := &survey.Password{Message: message, Help: "Leave empty to keep the current value"}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (p *SurveyPrompter) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.out, msg)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrQuit
	}
	return err
}
