//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput          = "gen"
	sqliteFileLocation = "skill.sqlite"
	serverBin          = "./bin/skillserver"
)

const (
	jetTool  = "github.com/go-jet/jet/v2/cmd/jet@v2.9.0"
	lintTool = "github.com/golangci/golangci-lint/cmd/golangci-lint@v1.52.2"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", serverBin, "cmd/main.go")
}

// Run starts server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin)
}

// GenJet regenerates the gen/ packages from the sqlite schema. The database
// file must exist with migrations applied.
func GenJet() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "run", jetTool, "-source", "sqlite", "-dsn", sqliteFileLocation, "-path", jetOutput)
}

func Lint() error {
	return sh.Run("go", "run", lintTool, "run", "./...")
}

func Test() error {
	return sh.Run("go", "test", "./...")
}
