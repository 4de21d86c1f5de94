// piestyle edits the visual style of the pie control
package main

import (
	"os"

	"github.com/iiroan/piestyle/cmd/piestyle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
