// Package main is the entry point for the mixvenn CLI.
package main

import "mixvenn.dev/pkg/mixvenn/cmd"

func main() {
	cmd.Execute()
}
