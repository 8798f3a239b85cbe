// Package clipboard adapts the system clipboard to ytt.Clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnavailable means there is no clipboard utility to talk to.
var ErrUnavailable = errors.New("could not access clipboard. Please install xclip or xsel (for Linux) or pbcopy (for macOS) or wl-copy (for Wayland)")

var utilities = []string{"pbcopy", "xclip", "xsel", "wl-copy", "wl-clipboard"}

// System is the system clipboard.
type System struct{}

func New() System {
	return System{}
}

func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return wrap(clipboard.WriteAll(text))
}

func (System) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	return text, wrap(err)
}

// wrap turns "no utility installed" errors into ErrUnavailable, so the user gets an actionable message.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	message := strings.ToLower(err.Error())
	for _, utility := range utilities {
		if strings.Contains(message, utility) {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	return err
}

// Memory is an in-process clipboard, useful where there is no system clipboard.
type Memory struct {
	Text string
	Err  error
}

func (m *Memory) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}

func (m *Memory) Read() (string, error) {
	return m.Text, m.Err
}
