// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui provides the interactive prompts of cftunnel.
//
// Every prompt is a small bubbletea program that runs inline (no alt screen)
// and leaves its final answer on the terminal.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

//go:generate mockgen -source=tui.go -destination=../mock/tui_mock.go -package=mock

var (
	// ErrCancelled is returned when the operator aborts a prompt.
	ErrCancelled = errors.New("cancelled")
	// ErrNoOptions is returned by Select when there is nothing to choose.
	ErrNoOptions = errors.New("no options to select from")
)

// Option is one entry of a Select prompt.
type Option struct {
	Label string
	Hint  string
}

// Field describes a single line text prompt.
type Field struct {
	Title       string
	Placeholder string
	Initial     string
	// Secret masks the typed value.
	Secret bool
	// Validate rejects a submitted value; the prompt stays open.
	Validate func(string) error
}

// Prompter asks the operator questions.
type Prompter interface {
	Confirm(ctx context.Context, title string, defaultYes bool) (bool, error)
	Input(ctx context.Context, field Field) (string, error)
	// Select returns the index of the chosen option.
	Select(ctx context.Context, title string, options []Option) (int, error)
}

// Terminal runs prompts on the given streams.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

var _ Prompter = (*Terminal)(nil)

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// result is implemented by every prompt model.
type result interface {
	tea.Model
	cancelled() bool
}

func (t *Terminal) run(ctx context.Context, m result) (tea.Model, error) {
	final, err := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	).Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	r, ok := final.(result)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if r.cancelled() {
		return nil, ErrCancelled
	}
	return final, nil
}

func (t *Terminal) Confirm(ctx context.Context, title string, defaultYes bool) (bool, error) {
	final, err := t.run(ctx, newConfirmModel(title, defaultYes))
	if err != nil {
		return false, err
	}
	return final.(confirmModel).value, nil
}

func (t *Terminal) Input(ctx context.Context, field Field) (string, error) {
	final, err := t.run(ctx, newInputModel(field))
	if err != nil {
		return "", err
	}
	return final.(inputModel).value, nil
}

func (t *Terminal) Select(ctx context.Context, title string, options []Option) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}
	final, err := t.run(ctx, newSelectModel(title, options))
	if err != nil {
		return 0, err
	}
	return final.(selectModel).idx, nil
}
