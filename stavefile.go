//go:build stave

package main

import (
	"cmp"
	"fmt"
	"os"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b": Build,
	"t": Test.Default,
	"l": Lint.Default,
	"c": Check,
	"i": Install,
}

// Namespace types group related targets.
type (
	Test st.Namespace
	Lint st.Namespace
)

// Build compiles the htmldom binary with version info.
// Skips recompilation when source files have not changed.
func Build() error {
	rebuild, err := target.Dir("bin/htmldom", "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println("bin/htmldom is up to date")
		return nil
	}
	fmt.Println("Building htmldom...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", "bin/htmldom", "./cmd/htmldom")
}

// Check runs format, lint, and test sequentially.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Cleaning build artifacts...")
	if err := sh.Rm("bin"); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

// Install installs htmldom to $GOBIN or $GOPATH/bin.
func Install() error {
	fmt.Println("Installing htmldom...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/htmldom")
}

// Default runs all tests using gotestsum with race detection and coverage.
func (Test) Default() error {
	fmt.Println("Running tests...")
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go",
		"tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--",
		"-v", "-race",
		"-p", nCores,
		"-parallel", nCores,
		"./...",
		"-coverprofile=coverage.out",
		"-covermode=atomic",
	)
}

// Default runs golangci-lint over the module.
func (Lint) Default() error {
	fmt.Println("Linting...")
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats all Go source files.
func (Lint) Fmt() error {
	fmt.Println("Formatting...")
	return sh.RunV("gofmt", "-w", ".")
}

func ldflags() string {
	version := cmp.Or(os.Getenv("VERSION"), "dev")
	commit := cmp.Or(os.Getenv("COMMIT"), "none")
	date := cmp.Or(os.Getenv("DATE"), "unknown")
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		version, commit, date)
}
