package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/nutthead/samoyed-sub000/pkg/errors"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		if suggestion := errors.GetSuggestion(err); suggestion != "" {
			pterm.Info.Println(suggestion)
		}
		os.Exit(errors.ExitCode(err))
	}
}
