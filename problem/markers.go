package problem

// Tag is a zero-payload marker error: it carries only identity and a display
// label. Tags are comparable, so they work as constants and match under
// errors.Is and Problem.Has.
//
//	const ErrDecode = problem.Tag("decode")
type Tag string

// Error implements the error interface; the label is the message.
func (t Tag) Error() string {
	return string(t)
}

// Message is a marker error carrying exactly one textual payload, for when
// only a human-readable distinction is needed. Messages are comparable;
// two Messages are equal when their texts are equal.
type Message string

// Error implements the error interface.
func (m Message) Error() string {
	return string(m)
}
