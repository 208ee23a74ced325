// Package signal provides graceful shutdown handling for long-running
// commands. The serve command uses it to drain HTTP traffic and stop every
// deployed child process before exiting.
//
// This package imports only the standard library so any other package can
// depend on it without cycles.
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler manages graceful shutdown by listening for interrupt signals.
// It wraps a context and cancels it when SIGINT or SIGTERM is received.
type Handler struct {
	ctx         context.Context //nolint:containedctx // intentional: handler manages context lifecycle
	cancel      context.CancelFunc
	interrupted chan struct{}
	done        chan struct{}
	once        sync.Once
	stopOnce    sync.Once
	sigChan     chan os.Signal
}

// NewHandler creates a signal handler that listens for SIGINT and SIGTERM.
// When a signal is received, the handler cancels the context and closes
// the interrupted channel.
//
// Usage:
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	ctx = h.Context()
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		interrupted: make(chan struct{}),
		done:        make(chan struct{}),
		// Buffer of 1 so signal.Notify never drops a signal while the
		// handler is busy.
		sigChan: make(chan os.Signal, 1),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context returns the cancellable context. Use it for all operations that
// should stop when the user interrupts the process.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted returns a channel that closes when an interrupt is received.
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// Stop deregisters the signal handler and cancels the context. Always call
// it when done to avoid leaking the listener goroutine.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

func (h *Handler) handleSignal() {
	h.once.Do(func() {
		h.cancel()
		close(h.interrupted)
	})
}

// listen loops until Stop is called or the context is canceled. Only the
// first signal has effect; later ones are drained so delivery never blocks.
func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case <-h.sigChan:
			h.handleSignal()
		}
	}
}
