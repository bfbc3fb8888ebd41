// Package clipboard writes text to the user's clipboard, either through the
// platform's clipboard utilities or through the OSC 52 terminal escape
// sequence for sessions where no local clipboard exists (SSH, containers).
package clipboard

import (
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/Iron-Ham/feeflow/internal/errors"
)

// Modes accepted by New.
const (
	ModeSystem = "system"
	ModeOSC52  = "osc52"
)

// Clipboard accepts text for the user's clipboard. WriteText returns only
// after the write has completed or failed.
type Clipboard interface {
	WriteText(text string) error
}

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

// System uses the platform clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows API).
type System struct{}

// WriteText implements Clipboard.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return errors.NewClipboardError(ModeSystem, errors.ErrClipboardUnavailable)
	}
	if err := clipboardWriteAll(text); err != nil {
		return errors.NewClipboardError(ModeSystem, err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set the clipboard by writing an OSC 52
// escape sequence to Out. The terminal may ignore the request; success only
// means the sequence was written.
type OSC52 struct {
	Out io.Writer
	// Tmux and Screen wrap the sequence in the multiplexer's passthrough.
	Tmux   bool
	Screen bool
}

// NewOSC52 writes to stderr, which stays attached to the terminal while the
// dashboard renders on stdout. Multiplexers are detected from the environment.
func NewOSC52() *OSC52 {
	return &OSC52{
		Out:    os.Stderr,
		Tmux:   os.Getenv("TMUX") != "",
		Screen: strings.HasPrefix(os.Getenv("TERM"), "screen") && os.Getenv("TMUX") == "",
	}
}

// WriteText implements Clipboard.
func (o *OSC52) WriteText(text string) error {
	if o.Out == nil {
		return errors.NewClipboardError(ModeOSC52, errors.ErrClipboardUnavailable)
	}
	seq := osc52.New(text)
	switch {
	case o.Tmux:
		seq = seq.Tmux()
	case o.Screen:
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.Out); err != nil {
		return errors.NewClipboardError(ModeOSC52, err)
	}
	return nil
}

// New returns the clipboard for mode. Unknown and empty modes use System.
func New(mode string) Clipboard {
	if mode == ModeOSC52 {
		return NewOSC52()
	}
	return System{}
}
