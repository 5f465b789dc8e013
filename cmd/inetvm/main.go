// Command inetvm runs Church-encoded lambda calculus programs on an
// interaction-combinator net and reports the reduction it performed.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
