// Package main provides the cowbox CLI.
package main

import "github.com/mesh-intelligence/cowbox/internal/cli"

func main() {
	cli.Execute()
}
