//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "songdeck"

// Default target runs the build
var Default = Build

// Build compiles the songdeck binary into ./bin
func Build() error {
	fmt.Println("Building", binaryName, "...")
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join("bin", binaryName), "./cmd/songdeck")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs the binary to GOBIN
func Install() error {
	mg.Deps(Build)
	return sh.RunV("go", "install", "./cmd/songdeck")
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("Cleaning...")
	return os.RemoveAll("bin")
}
