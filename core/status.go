package core

import (
	"footline/reactive"
	"footline/widgets"
)

// StatusLabelID is the registry key for the frame's status label.
const StatusLabelID = "footer-status"

// StatusBinder mirrors a reactive string into one display element. It
// holds the element's registry key rather than the element itself, so the
// UI tree keeps sole ownership of the label and a binder outliving the
// label cannot dangle.
//
// Two states: unmounted (no label under the key) and mounted. Applying
// while unmounted is a deliberate no-op; the value itself still advances,
// and the mount path paints the latest value onto the fresh label.
type StatusBinder struct {
	elements *widgets.Registry
	labelID  string
	unwatch  func()
}

func NewStatusBinder(elements *widgets.Registry, labelID string) *StatusBinder {
	return &StatusBinder{elements: elements, labelID: labelID}
}

// Bind subscribes the binder to v. Every Set on v repaints the label,
// including sets to an unchanged value. Rebinding replaces any previous
// subscription.
func (b *StatusBinder) Bind(v *reactive.Value[string]) {
	b.Unbind()
	b.unwatch = v.Watch(b.Apply)
}

// Apply paints text onto the bound label. No-op while unmounted.
func (b *StatusBinder) Apply(text string) {
	label := b.elements.Lookup(b.labelID)
	if label == nil {
		return
	}
	label.SetText(text)
}

// Mounted reports whether the display element currently exists.
func (b *StatusBinder) Mounted() bool {
	return b.elements.Lookup(b.labelID) != nil
}

// DisplayText returns the label's rendered text, or "" while unmounted.
func (b *StatusBinder) DisplayText() string {
	if label := b.elements.Lookup(b.labelID); label != nil {
		return label.Text
	}
	return ""
}

// Unbind drops the subscription. Safe to call repeatedly.
func (b *StatusBinder) Unbind() {
	if b.unwatch != nil {
		b.unwatch()
		b.unwatch = nil
	}
}
