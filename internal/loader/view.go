package loader

import "github.com/Iron-Ham/feeflow/internal/content"

// ViewKind discriminates what the shell should render for a category.
type ViewKind int

const (
	// ViewClosed means no detail view is open.
	ViewClosed ViewKind = iota
	// ViewEmpty means the category has not been requested in this session.
	ViewEmpty
	// ViewLoading means a fetch is in flight.
	ViewLoading
	// ViewText means Text is ready to display verbatim.
	ViewText
)

// String returns a short name for the kind.
func (k ViewKind) String() string {
	switch k {
	case ViewClosed:
		return "closed"
	case ViewEmpty:
		return "empty"
	case ViewLoading:
		return "loading"
	case ViewText:
		return "text"
	default:
		return "unknown"
	}
}

// View is the shell-facing result for one category.
type View struct {
	Kind     ViewKind
	Category content.Category
	// Text is the raw content; only set for ViewText.
	Text string
	// Fallback reports that Text is generated placeholder content.
	Fallback bool
}

func viewOf(c content.Category, e content.Entry, ok bool) View {
	if !ok {
		return View{Kind: ViewEmpty, Category: c}
	}
	switch e.State {
	case content.Loading:
		return View{Kind: ViewLoading, Category: c}
	case content.Loaded:
		return View{Kind: ViewText, Category: c, Text: e.Text}
	case content.FallbackLoaded:
		return View{Kind: ViewText, Category: c, Text: e.Text, Fallback: true}
	default:
		return View{Kind: ViewEmpty, Category: c}
	}
}
