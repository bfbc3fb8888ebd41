// Package content defines the three kinds of per-stage material, the
// object-naming contract with the remote store, the placeholder generator
// used when a fetch fails, and the per-session content cache.
package content

import "fmt"

// Category is one of the three kinds of material a stage can be inspected for.
type Category int

const (
	Overview Category = iota
	TechnicalDoc
	SourceCode

	categoryCount = 3
)

// Categories lists every category in tab order.
var Categories = []Category{Overview, TechnicalDoc, SourceCode}

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	return c >= Overview && c <= SourceCode
}

// Key returns the stable identifier used in logs and key bindings.
func (c Category) Key() string {
	switch c {
	case Overview:
		return "overview"
	case TechnicalDoc:
		return "details"
	case SourceCode:
		return "code"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return c.Key()
}

// Label returns the tab label shown in the detail view.
func (c Category) Label() string {
	switch c {
	case Overview:
		return "流程概述"
	case TechnicalDoc:
		return "技術文檔"
	case SourceCode:
		return "原始碼"
	default:
		return ""
	}
}

// Next returns the category after c, wrapping around.
func (c Category) Next() Category {
	return Category((int(c) + 1) % categoryCount)
}

// Prev returns the category before c, wrapping around.
func (c Category) Prev() Category {
	return Category((int(c) + categoryCount - 1) % categoryCount)
}

// ObjectName returns the remote object name holding category c for a stage.
// The stage id is an unpadded decimal. These names are shared with the
// existing document bucket and must not change.
func ObjectName(stage int, c Category) string {
	switch c {
	case Overview:
		return fmt.Sprintf("coding_%d_simple.md", stage)
	case TechnicalDoc:
		return fmt.Sprintf("coding_%d_prompt.md", stage)
	case SourceCode:
		return fmt.Sprintf("coding_%d.py", stage)
	default:
		return ""
	}
}
