// Package attachment provides common attachment types for problem chains:
// backtraces, correlation IDs, exit codes, validation fields, retry
// attempts, trace references, and build information.
//
// Attachments are looked up by exact concrete type, so domain-specific
// side-data is best expressed as a small named type:
//
//	type Path string
//	p := problem.Wrap(err).With(Path(name))
package attachment
