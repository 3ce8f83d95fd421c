package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestNewInterruptHandler(t *testing.T) {
	tests := []struct {
		writer io.Writer
		name   string
	}{
		{
			name:   "with custom writer",
			writer: &bytes.Buffer{},
		},
		{
			name:   "with nil writer",
			writer: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInterruptHandler(tt.writer)
			assert.NotNil(t, handler)
			assert.NotNil(t, handler.writer)
			assert.False(t, handler.WasInterrupted())
		})
	}
}

func TestHandleInterrupts_Signal(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	ctx := handler.HandleInterrupts(context.Background(), func() string {
		return "3 of 10 passwords forged"
	})

	select {
	case <-ctx.Done():
		t.Fatal("context should not be canceled before a signal")
	default:
	}

	handler.sigChan <- os.Interrupt

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled after interrupt")
	}

	require.Eventually(t, handler.WasInterrupted, time.Second, 10*time.Millisecond)
	out := output.String()
	assert.Contains(t, out, "The forge fire went out!")
	assert.Contains(t, out, "3 of 10 passwords forged")
}

func TestHandleInterrupts_NoProgress(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	ctx := handler.HandleInterrupts(context.Background(), nil)
	handler.sigChan <- os.Interrupt
	<-ctx.Done()

	require.Eventually(t, handler.WasInterrupted, time.Second, 10*time.Millisecond)
	assert.Contains(t, output.String(), "The forge fire went out!")
	assert.NotContains(t, output.String(), "passwords forged")
}

func TestHandleInterrupts_ParentCancelIsNotAnInterrupt(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	parent, cancel := context.WithCancel(context.Background())
	ctx := handler.HandleInterrupts(parent, nil)
	cancel()
	<-ctx.Done()

	time.Sleep(20 * time.Millisecond)
	assert.False(t, handler.WasInterrupted())
	assert.Empty(t, output.String())
}
