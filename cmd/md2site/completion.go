package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/highlight"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

var supportedShells = []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for md2site.

  source <(md2site completion bash)
  md2site completion zsh > "${fpath[1]}/_md2site"
  md2site completion fish > ~/.config/fish/completions/md2site.fish
  md2site completion powershell | Out-String | Invoke-Expression`,
		ValidArgs:             supportedShells,
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateCompletion(cmd.Root(), Shell(args[0]), cmd.OutOrStdout())
		},
	}
}

// generateCompletion writes the completion script for shell to w.
func generateCompletion(root *cobra.Command, shell Shell, w io.Writer) error {
	switch shell {
	case ShellBash:
		return root.GenBashCompletionV2(w, true)
	case ShellZsh:
		return root.GenZshCompletion(w)
	case ShellFish:
		return root.GenFishCompletion(w, true)
	case ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("%w: %q (use bash, zsh, fish or powershell)", ErrUnsupportedShell, shell)
	}
}

// registerBuildCompletions adds value completion for enumerated build flags.
func registerBuildCompletions(cmd *cobra.Command) {
	fixed := func(values ...string) cobra.CompletionFunc {
		return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}

	_ = cmd.RegisterFlagCompletionFunc("engine", fixed(string(md2site.EngineNative), string(md2site.EngineGoldmark)))
	_ = cmd.RegisterFlagCompletionFunc("highlight", fixed(highlight.Styles()...))
	_ = cmd.RegisterFlagCompletionFunc("template", func(c *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		themeDir, _ := c.Flags().GetString("assets")
		names, err := md2site.TemplateNames(themeDir)
		if err != nil {
			names = md2site.BuiltinTemplates()
		}
		return names, cobra.ShellCompDirectiveDefault
	})
	_ = cmd.MarkFlagDirname("output")
	_ = cmd.MarkFlagDirname("static")
	_ = cmd.MarkFlagDirname("assets")
	_ = cmd.MarkFlagFilename("metrics-file", "prom", "txt")
}
