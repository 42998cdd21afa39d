package logger

import (
	"github.com/rs/zerolog"

	"github.com/kbukum/problemkit/problem"
)

// Chain wraps a problem so a log event carries its whole causation chain
// as structured fields instead of one flattened string.
//
//	log.Error().Object("problem", logger.Chain(p)).Msg("request failed")
func Chain(p *problem.Problem) zerolog.LogObjectMarshaler {
	return chainMarshaler{p: p}
}

type chainMarshaler struct {
	p *problem.Problem
}

func (m chainMarshaler) MarshalZerologObject(e *zerolog.Event) {
	if m.p == nil || m.p.Len() == 0 {
		return
	}
	e.Str("message", m.p.Top().Err().Error())
	arr := zerolog.Arr()
	for _, c := range m.p.Causes() {
		arr.Str(c.Err().Error())
	}
	e.Array(FieldCauses, arr)
	if atts := m.p.Attachments(); len(atts) > 0 {
		e.Int("attachments", len(atts))
	}
}

// Problem logs a problem chain at error level.
func (l *Logger) Problem(msg string, p *problem.Problem, fields ...map[string]interface{}) {
	event := l.logger.Error().Object(FieldProblem, Chain(p))
	addFields(event, fields...)
	event.Msg(msg)
}

// WithProblem returns a logger that includes the problem chain on every event.
func (l *Logger) WithProblem(p *problem.Problem) *Logger {
	return &Logger{
		logger:  l.logger.With().Object(FieldProblem, Chain(p)).Logger(),
		service: l.service,
	}
}

// Problem logs a problem chain at error level using the global logger.
func Problem(msg string, p *problem.Problem, fields ...map[string]interface{}) {
	GetGlobalLogger().Problem(msg, p, fields...)
}
