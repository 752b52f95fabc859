// Command idtheory converts identifiers between encodings and generates new ones.
//
// Usage:
//
//	idtheory convert --from uuid --to hex,string 550e8400-e29b-41d4-a716-446655440000
//	idtheory generate objectid --count 3
//	idtheory generate uuid --version 1 --to string
//	idtheory alphabets
package main

import (
	"fmt"
	"os"

	"github.com/theory-cloud/idtheory/cmd/idtheory/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "idtheory: FAIL:", err)
		os.Exit(1)
	}
}
