//go:build headless

// Package window implements the desktop frontend on top of ebiten.
package window

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnsupported is returned by Run in builds without window support.
var ErrUnsupported = errors.New("window frontend not available in headless builds")

// Window is a placeholder for builds without window support.
type Window struct{}

func New(_ context.Context, _ *log.Logger, _ *host.Runner, _ string, _ int) *Window {
	return &Window{}
}

func (w *Window) Run() error {
	return ErrUnsupported
}
