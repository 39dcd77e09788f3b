package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/carimus/metrolink/internal/commands"
	"github.com/carimus/metrolink/internal/version"
	"github.com/carimus/metrolink/pkg/config"
	"github.com/carimus/metrolink/pkg/linked"
	"github.com/carimus/metrolink/pkg/ui"
)

func newInitCmd(g *globalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   commands.MsgInitShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := g.root
			if dir == "" {
				dir = linked.InferProjectRoot()
			}
			path, err := config.WriteDefault(dir, force)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), commands.MsgConfigWritten, path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, commands.MsgFlagForce)
	return cmd
}

func newExplainCmd(g *globalFlags) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:     "explain",
		Short:   commands.MsgExplainShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := ui.NewMarkdownRenderer(g.format(), cmd.OutOrStdout(), width)
			_, err := fmt.Fprint(cmd.OutOrStdout(), renderer.Render(commands.MsgExplain))
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, commands.MsgFlagWidth)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   commands.MsgVersionShort,
		Long:    commands.MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), commands.MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 commands.MsgCompletionShort,
		Long:                  commands.MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [dir]",
		Short:   commands.MsgManShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			dir, err := filepath.Abs(dir)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}

			header := &doc.GenManHeader{
				Title:   "METROLINK",
				Section: "1",
				Source:  "metrolink " + version.Version,
				Manual:  "metrolink manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}
			log.Info().Str("dir", dir).Msg("Man pages generated")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), commands.MsgManWritten, dir)
			return nil
		},
	}
}
