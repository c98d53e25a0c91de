// The linodectl command provides a command-line interface for managing
// Linode instances through the legacy Linode API.
package main

import "github.com/coderanger/linodectl/internal/linodectl/cmd"

func main() {
	cmd.Execute()
}
