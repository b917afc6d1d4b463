package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var spinnerFrames = []string{"◐", "◓", "◑", "◒"}

// Progress is a running activity indicator.
type Progress interface {
	SetLabel(label string)
	Done()
}

type spinner struct {
	mu    sync.Mutex
	out   io.Writer
	label string
	frame int
	done  bool
	stop  chan struct{}
}

// Spinner starts an animated spinner on stderr. On a non-TTY it does nothing.
func Spinner(label string) Progress {
	if !isTTY() {
		return noopProgress{}
	}
	s := &spinner{out: os.Stderr, label: label, stop: make(chan struct{})}
	go s.animate()
	return s
}

func (s *spinner) animate() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if !s.done {
				s.render()
				s.frame = (s.frame + 1) % len(spinnerFrames)
			}
			s.mu.Unlock()
		}
	}
}

func (s *spinner) render() {
	frame := spinnerFrames[s.frame]
	if IsRich() {
		frame = Primary("%s", frame)
	}
	fmt.Fprintf(s.out, "\r\033[K  %s %s", frame, Subtle("%s", s.label))
}

func (s *spinner) SetLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.label = label
}

func (s *spinner) Done() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return
	}
	s.done = true
	close(s.stop)
	fmt.Fprint(s.out, "\r\033[K")
}

type noopProgress struct{}

func (noopProgress) SetLabel(string) {}
func (noopProgress) Done()           {}

// WithSpinner runs fn while a spinner shows label.
func WithSpinner(label string, fn func() error) error {
	p := Spinner(label)
	defer p.Done()
	return fn()
}
