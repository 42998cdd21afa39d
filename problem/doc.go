// Package problem provides structured error propagation for Go services.
// It implements an ordered causation chain (a Problem) in which every link
// carries one error value plus arbitrary typed attachments, with fluent
// construction and type- or equality-based inspection of the chain.
package problem
