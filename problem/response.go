package problem

// Response is the JSON structure returned to clients, loosely following
// RFC 7807: the head message plus the remaining causation chain. The wire
// layout is a consumer convenience, not a core guarantee.
type Response struct {
	Error Body `json:"error"`
}

// Body contains the chain details sent to clients.
type Body struct {
	Message string   `json:"message"`
	Causes  []string `json:"causes,omitempty"`
}

// ToResponse converts the Problem to a Response for JSON serialization.
// The head cause becomes the message; the rest of the chain, head-to-root,
// becomes the cause list.
func (p *Problem) ToResponse() Response {
	if p == nil {
		return Response{}
	}
	body := Body{Message: p.causes[0].err.Error()}
	for _, c := range p.causes[1:] {
		body.Causes = append(body.Causes, c.err.Error())
	}
	return Response{Error: body}
}
