package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptHandler manages graceful shutdown with friendly messages.
type InterruptHandler struct {
	writer      io.Writer
	sigChan     chan os.Signal
	progress    func() string
	interrupted bool
	mu          sync.Mutex
}

// NewInterruptHandler creates a new interrupt handler.
func NewInterruptHandler(writer io.Writer) *InterruptHandler {
	if writer == nil {
		writer = os.Stderr
	}
	return &InterruptHandler{
		writer:  writer,
		sigChan: make(chan os.Signal, 1),
	}
}

// HandleInterrupts sets up signal handling and returns a context that will be
// canceled on interrupt. progress, when non-nil, describes how far the work got.
func (h *InterruptHandler) HandleInterrupts(ctx context.Context, progress func() string) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	h.progress = progress

	signal.Notify(h.sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(h.sigChan)

		select {
		case <-h.sigChan:
			h.mu.Lock()
			if !h.interrupted {
				h.interrupted = true
				h.showInterruptMessage()
			}
			h.mu.Unlock()
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx
}

// showInterruptMessage displays a friendly interrupt message.
func (h *InterruptHandler) showInterruptMessage() {
	msg := "\n" + FormatWarning("The forge fire went out!")

	if h.progress != nil {
		msg += "\n" + FormatInfo(h.progress())
	}

	msg += "\n" + FormatInfo("Come back when the anvil is cool. "+ForgeIcon) + "\n"

	if _, err := fmt.Fprint(h.writer, msg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write interrupt message: %v\n", err)
	}
}

// WasInterrupted returns true if the process was interrupted.
func (h *InterruptHandler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}
