// Package cmd implements the CLI application converting broker exports for
// Parqet.
package cmd

import (
	"os"
	"strconv"

	"github.com/google/subcommands"
)

// Environment variables providing flag defaults.
const (
	EnvVerbose = "BINANCE2PARQET_VERBOSE"
	EnvSummary = "BINANCE2PARQET_SUMMARY"
	EnvLogJSON = "BINANCE2PARQET_LOG_JSON"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(NewConvertCmd(), "import")
}

// envBool returns the boolean value of the environment variable name, false
// when unset or not a boolean.
func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
