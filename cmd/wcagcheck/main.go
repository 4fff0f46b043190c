// wcagcheck - WCAG 2.2 contrast checker and corrector
//
// wcagcheck measures the contrast of colour pairs, finds the nearest
// compliant colour, and audits button colour schemes.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/wcagcheck/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
