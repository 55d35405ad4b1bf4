//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput          = "gen"
	sqliteFileLocation = "pairing.sqlite"
	serverBin          = "./bin/pairingserver"
	serverConfig       = "configs/server.toml"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-o", serverBin, "./cmd")
}

// Run migrates the database and starts server
func Run() error {
	mg.Deps(Migrate)
	return sh.Run(serverBin, "serve", "--config", serverConfig)
}

// Migrate applies the embedded migrations to the local database
func Migrate() error {
	mg.Deps(Build)
	return sh.RunWith(map[string]string{
		"PAIRING_SQLITE_FILE": sqliteFileLocation,
	}, serverBin, "migrate", "--config", serverConfig)
}

// GenJet regenerates table and model code from the migrated schema
func GenJet() error {
	mg.Deps(Migrate, buildJetTool)
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteFileLocation, "-path", jetOutput)
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}

// Test runs unit tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}
