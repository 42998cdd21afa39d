// Package version provides build version information embedding for
// problemkit consumers.
//
// Version, git commit, and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/problemkit/version.Version=1.0.0"
//
// An *Info is attachable to a problem chain (see attachment.BuildInfo) so
// bug reports carry the binary that produced them.
package version
