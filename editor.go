package main

import (
	"fmt"
	"os"
	"os/exec"
)

// DefaultEditor is used when neither the flag, config, nor EDITOR name one.
const DefaultEditor = "nvim"

// ResolveEditor picks the editor program: explicit flag, then the config
// file, then the EDITOR environment variable, then DefaultEditor.
func ResolveEditor(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return DefaultEditor
}

// LaunchEditor opens each selected path in the editor, one process at a
// time, waiting for each to exit before starting the next. Paths are already
// relative to the invoking working directory. The first failed launch aborts
// the remaining files; nothing is skipped silently.
func LaunchEditor(editor string, paths []string) error {
	for _, path := range paths {
		cmd := exec.Command(editor, path)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("launch %s %s: %w", editor, path, err)
		}
	}
	return nil
}
