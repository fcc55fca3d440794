// Command cattery manages a persistent shelter cat catalog.
package main

import "github.com/shelterpaws/cattery/internal/cli"

func main() {
	cli.Execute()
}
