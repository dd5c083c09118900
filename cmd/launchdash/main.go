// launchdash serves and renders the launch-records dashboard.
//
// Usage:
//
//	launchdash serve   [--listen=:8050]
//	launchdash render  [--site=ALL] [--payload-min=N] [--payload-max=N] [--format=json|pretty|table|csv]
//	launchdash inspect
//
// Every command accepts --config, --data, --log-level and --log-format.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
