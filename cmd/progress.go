// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"io"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

// spinnerProgress shows one pterm spinner per workflow step.
// The cursor is hidden while a spinner is running.
type spinnerProgress struct {
	w       io.Writer
	current *pterm.SpinnerPrinter
}

func newSpinnerProgress(w io.Writer) *spinnerProgress {
	return &spinnerProgress{w: w}
}

// Begin starts a spinner for step. Spinner failures only lose the animation.
func (p *spinnerProgress) Begin(step string) {
	cursor.Hide()
	sp, err := pterm.DefaultSpinner.WithWriter(p.w).WithRemoveWhenDone(false).Start(step)
	if err != nil {
		cursor.Show()
		return
	}
	p.current = sp
}

// End stops the running spinner, marking it failed when err is non-nil.
func (p *spinnerProgress) End(step string, err error) {
	defer cursor.Show()
	if p.current == nil {
		return
	}
	if err != nil {
		p.current.Fail(step)
	} else {
		p.current.Success(step)
	}
	p.current = nil
}
