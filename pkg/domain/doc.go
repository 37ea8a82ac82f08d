// Package domain holds the core value types of the navigation-rule
// resolver: rules, resolution requests and verdicts, and the sentinel
// errors shared by rule sources and the resolver.
//
// The package is intentionally dependency-free so that adapters and hosts
// can exchange these values without pulling in any infrastructure.
package domain
