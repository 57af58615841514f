package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nutthead/samoyed-sub000/pkg/commands"
	"github.com/nutthead/samoyed-sub000/pkg/executor"
	"github.com/nutthead/samoyed-sub000/pkg/filesystem"
	"github.com/nutthead/samoyed-sub000/pkg/paths"
)

func newInitCmd() *cobra.Command {
	var projectType string

	cmd := &cobra.Command{
		Use:     "init [dirname]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hooksDir := ""
			if len(args) == 1 {
				hooksDir = args[0]
			}

			result, err := commands.Init(commands.InitOptions{
				FS:          filesystem.NewOS(),
				Runner:      executor.New(),
				HooksDir:    hooksDir,
				ProjectType: projectType,
			})
			if err != nil {
				return err
			}

			pterm.Success.Printfln(MsgInitDone, result.HooksDir, result.HooksPath)
			if result.ConfigCreated {
				pterm.Info.Printfln(MsgInitConfigCreated, paths.ConfigFileName)
			} else {
				pterm.Info.Printfln(MsgInitConfigKept, paths.ConfigFileName)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectType, "project-type", "t", "", MsgFlagProjectType)

	return cmd
}
