//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

const binDir = "bin"

// Build builds the marslog binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join(binDir, "marslog"), "./cmd/marslog")
}

// Test runs all tests with race detection.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet and, when available, staticcheck.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	if ran, err := sh.Exec(nil, os.Stdout, os.Stderr, "staticcheck", "./..."); err != nil {
		if !ran {
			fmt.Fprintln(os.Stderr, "staticcheck not found, skipping (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
			return nil
		}
		return fmt.Errorf("staticcheck failed: %w", err)
	}
	return nil
}

// QA runs lint then tests.
func QA() error {
	mg.Deps(Lint)
	return Test()
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binDir)
}
