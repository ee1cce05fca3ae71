//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles the grevocab binary into ./bin.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/grevocab", "./cmd/grevocab")
}

// Install installs the grevocab binary into GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", "./cmd/grevocab")
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// All runs vet, the tests, and the build in order.
func All() {
	mg.SerialDeps(Vet, Test, Build)
}
