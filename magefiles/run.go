//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the game, creating the placeholder sprite first when it is missing.
func (Run) Game() error {
	if _, err := os.Stat(spritePath); os.IsNotExist(err) {
		mg.Deps(Assets.Placeholder)
	}
	fmt.Println("Run game...")
	if _, err := executeCmd("go", withArgs("run", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the color cycling variant.
func (Run) Cycle() error {
	fmt.Println("Run cycle...")
	if _, err := executeCmd("go", withArgs("run", ".", "--variant", "cycle"), withStream()); err != nil {
		return err
	}
	return nil
}
