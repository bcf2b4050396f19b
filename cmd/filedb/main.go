// Command filedb is an interactive shell for filedb databases.
//
// Running filedb without arguments opens the shell, where commands start
// with a slash. Type /help to list them.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
