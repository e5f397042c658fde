package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	jsonOut  bool
	noColor  bool
	stateDir string
)

var rootCmd = &cobra.Command{
	Use:     "deferfmtctl",
	Short:   "Inspect a deferfmt registry and decode recorded frames",
	Long:    `deferfmtctl is a peripheral tool for exercising the deferfmt decoder against a registry produced by an instrumented process.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON instead of text")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color in text output")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "registry state directory (default: $REDEFMT_STATE_DIR or the XDG state home)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
