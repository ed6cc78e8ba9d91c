//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main contains Mage build targets for template-mimic developer tooling.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "template-mimic"
	cmdPkg  = "./cmd/template-mimic"

	sourceDir = "source"
)

// sampleCase is the scaffold written by Init. Existing files are kept.
var sampleCase = map[string]string{
	"context.txt":     "a short talk for first-year university students",
	"topic.txt":       "the value of public libraries",
	"high_weight.txt": "0",
	"template1.json":  "Renewable energy is a key to the future of cities. For example, solar panels on public buildings cut costs. Therefore, councils should invest in them now.",
	"template2.json":  "The problem is rising traffic. Analysis shows the main cause is urban sprawl. The solution is better public transit.",
	"template3.json":  "Many experts argue that reading shapes character. However, screens now compete for attention. In conclusion, habits must be built early.",
	"template4.json":  "Online learning has clear benefits, but it also brings challenges. Students gain flexibility and access. Yet success depends on discipline.",
}

// Init scaffolds source/case01 with a sample case.
func Init() error {
	dir := filepath.Join(sourceDir, "case01")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	for name, content := range sampleCase {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	fmt.Println("Sample case initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the package tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// DryRun builds the CLI and prints the prompts for every case under source/.
func DryRun() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "run", "--dry-run", "--source-dir", sourceDir)
}

// Stats prints Go production and test line counts.
func Stats() error {
	prodLines, testLines, err := countGoLines(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines counts non-blank lines in Go files under root, split into
// production and _test.go files. Directories starting with "." or "_" are
// skipped.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := 0
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				n++
			}
		}
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}
