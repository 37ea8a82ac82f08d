/*
Package navrules is a chained navigation-rule resolver: given a current
location and an outcome token, it decides the next location by consulting a
prioritized sequence of rule sources and returning the first match.

Rules can live in a database (a Redis-backed source, administered at
runtime) or in static configuration (a YAML document loaded once at
startup). The priority order of the chain is configuration, not code, so
either "database first, static fallback" or the inverse is a one-line
change in the config file.

# Verdicts

A resolution has three distinct outcomes that are never conflated:

  - resolved: a rule matched; the verdict names the destination and the
    source that produced it.
  - unresolved: no rule matched. This is a normal outcome, not an error;
    the caller applies its own default navigation behavior.
  - source unavailable: a source failed to answer (store error, timeout).
    Reported as an error so the caller can fail the navigation instead of
    silently falling back.

# Usage

	package main

	import (
		"context"
		"log"

		navrules "github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db"
		"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
	)

	func main() {
		svc, err := navrules.New("navrules.yaml")
		if err != nil {
			log.Fatal(err)
		}
		defer svc.Close()

		res, err := svc.Resolve(context.Background(), domain.ResolutionRequest{
			FromLocation: "login",
			Outcome:      "success",
		})
		if err != nil {
			log.Fatal(err)
		}

		if res.Resolved {
			log.Printf("navigate to %s (rule from %s)", res.ToLocation, res.Source)
		} else {
			log.Println("no rule matched; applying default navigation")
		}
	}

Hosts that assemble their rule chain programmatically can skip the config
file with WithSources, passing any implementations of ports.RuleSource in
priority order.
*/
package navrules
