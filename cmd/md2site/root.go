package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrInvalidFlag wraps flag parsing errors.
var ErrInvalidFlag = errors.New("invalid flag")

// newRootCmd creates the md2site command tree.
func newRootCmd(env *Environment) *cobra.Command {
	common := &commonFlags{}
	cmd := &cobra.Command{
		Use:           "md2site",
		Short:         "Generate a static website from Markdown",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return common.apply(env.Logger)
		},
	}

	addCommonFlags(cmd.PersistentFlags(), common)
	cmd.SetVersionTemplate(versionTemplate)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	})
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(newBuildCmd(env, common))
	cmd.AddCommand(newInitCmd(env))
	cmd.AddCommand(newVersionCmd(env))
	cmd.AddCommand(newCompletionCmd())

	return cmd
}
