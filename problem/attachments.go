package problem

// AttachmentSource is anything holding an ordered attachment list: a single
// Cause, a CauseView, or a whole Problem (head-to-root flattening).
type AttachmentSource interface {
	Attachments() []any
}

// AttachmentOf returns the first attachment of type A from src. For a
// Problem the scan is head-to-root. Matching is exact on the attachment's
// dynamic type; a value stored as type A is not found under a lookup for a
// different concrete type.
func AttachmentOf[A any](src AttachmentSource) (A, bool) {
	var zero A
	if src == nil {
		return zero, false
	}
	for _, item := range src.Attachments() {
		if v, ok := item.(A); ok {
			return v, true
		}
	}
	return zero, false
}

// AttachmentsOf returns every attachment of type A from src in insertion
// order (head-to-root for a whole Problem).
func AttachmentsOf[A any](src AttachmentSource) []A {
	if src == nil {
		return nil
	}
	var out []A
	for _, item := range src.Attachments() {
		if v, ok := item.(A); ok {
			out = append(out, v)
		}
	}
	return out
}
