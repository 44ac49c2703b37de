//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "testreport"
	binDir     = "bin"
)

// Default target - build the binary
var Default = Build

// Build builds the testreport binary into bin/
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", binDir, err)
	}

	return sh.RunV("go", "build", "-o", binDir+"/"+binaryName, ".")
}

// Test runs the unit tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet and, when installed, golangci-lint
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}

	if err := sh.RunV("golangci-lint", "run", "./..."); err != nil {
		if sh.CmdRan(err) {
			return fmt.Errorf("golangci-lint failed: %w", err)
		}

		fmt.Println("golangci-lint not found, skipping")
	}

	return nil
}

// Check runs lint and tests
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binDir)
}
