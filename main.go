// Package main is the entry point for the testreport CLI.
package main

import "testreport.dev/pkg/testreport/cmd"

func main() {
	cmd.Execute()
}
