// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"gitlab.com/fisherprime/rdparse/cmd/rdparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
