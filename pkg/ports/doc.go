// Package ports defines the interfaces between the resolver core and its
// rule-source adapters, plus a reusable contract test every adapter runs.
package ports
