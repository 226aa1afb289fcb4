//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every package test.
func (Test) All() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the tests that need no window.
func (Test) Headless() error {
	pkgs := []string{"./engine/", "./engine/assets/...", "./engine/components/...", "./engine/config/...",
		"./engine/core/...", "./engine/math/...", "./engine/ui/...", "./testbed/..."}
	if _, err := executeCmd("go", withArgs(append([]string{"test", "-count=1"}, pkgs...)...), withStream()); err != nil {
		return err
	}
	return nil
}
