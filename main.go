// ABOUTME: Entry point for the cwgen command
// ABOUTME: Hands control to the cobra command tree and exits with its status
package main

import (
	"os"

	"github.com/cwgen/cwgen-go/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
