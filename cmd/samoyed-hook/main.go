// Command samoyed-hook is the dispatcher the installed Git wrapper
// files exec. It is a fresh process per hook firing: it resolves what
// to run, runs it, and exits with the child's exact code so Git sees
// the hook's verdict unchanged.
package main

import (
	"fmt"
	"os"

	"github.com/nutthead/samoyed-sub000/pkg/dispatcher"
	"github.com/nutthead/samoyed-sub000/pkg/environment"
	"github.com/nutthead/samoyed-sub000/pkg/errors"
	"github.com/nutthead/samoyed-sub000/pkg/executor"
	"github.com/nutthead/samoyed-sub000/pkg/filesystem"
	"github.com/nutthead/samoyed-sub000/pkg/logging"
)

func main() {
	logging.SetupLogger(0)

	code, err := dispatcher.Dispatch(dispatcher.Options{
		FS:     filesystem.NewOS(),
		Env:    environment.NewOS(),
		Runner: executor.New(),
	}, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "samoyed-hook: %v\n", err)
		if suggestion := errors.GetSuggestion(err); suggestion != "" {
			fmt.Fprintf(os.Stderr, "samoyed-hook: %s\n", suggestion)
		}
		os.Exit(errors.ExitCode(err))
	}
	os.Exit(code)
}
