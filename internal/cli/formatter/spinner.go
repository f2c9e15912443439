package formatter

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const spinnerInterval = 80 * time.Millisecond

// Braille dot spinner frames.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a one-line wait indicator with a message while a slow
// call (usually the model) is in flight.
type Spinner struct {
	message string
	out     io.Writer

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewSpinner creates a spinner with the given message.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		out:     os.Stdout,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins the animation. Call Stop to end it and clear the line.
func (s *Spinner) Start() {
	go s.spin()
}

func (s *Spinner) spin() {
	defer close(s.done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.stop:
			// Erase the spinner line.
			fmt.Fprint(s.out, "\r\033[K")
			return
		case <-ticker.C:
			s.render(frame)
		}
	}
}

func (s *Spinner) render(frame int) {
	glyph := spinnerFrames[frame%len(spinnerFrames)]
	fmt.Fprintf(s.out, "\r  %s %s", StylePurple.Render(glyph), Dim(s.message))
}

// Stop ends the animation and waits for the line to be cleared. Safe to
// call more than once.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

// StartSpinner creates and starts a spinner. Call the returned function
// to stop it.
func StartSpinner(message string) func() {
	s := NewSpinner(message)
	s.Start()
	return s.Stop
}
