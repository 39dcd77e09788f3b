package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/carimus/metrolink/internal/commands"
	"github.com/carimus/metrolink/pkg/metroconfig"
)

func newApplyCmd(g *globalFlags) *cobra.Command {
	var (
		links       linkFlags
		metroConfig string
		out         string
		format      string
	)

	cmd := &cobra.Command{
		Use:     "apply",
		Short:   commands.MsgApplyShort,
		Long:    commands.MsgApplyLong,
		Example: commands.MsgApplyExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, g)
			if err != nil {
				return err
			}

			existing, err := s.loadMetro(metroConfig)
			if err != nil {
				return fmt.Errorf(commands.MsgErrLoadMetro, err)
			}

			result, err := s.linker.Apply(existing, s.options(&links))
			if err != nil {
				return fmt.Errorf(commands.MsgErrApply, err)
			}

			if !cmd.Flags().Changed("format") {
				format = s.cfg.Metro.Format
			}
			outFormat, err := metroconfig.ParseFormat(format)
			if err != nil {
				return err
			}

			if out == "" {
				out = s.cfg.Metro.Out
			}
			if out == "" {
				return metroconfig.Render(cmd.OutOrStdout(), result, outFormat)
			}

			if !filepath.IsAbs(out) {
				out = filepath.Join(s.dir, out)
			}
			var buf bytes.Buffer
			if err := metroconfig.Render(&buf, result, outFormat); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf(commands.MsgErrWriteOutput, out, err)
			}

			log.Info().Str("out", out).Str("format", string(outFormat)).Msg("Configuration written")
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), commands.MsgOutputWritten, out, outFormat)
			return nil
		},
	}

	links.register(cmd)
	cmd.Flags().StringVar(&metroConfig, "config", "", commands.MsgFlagMetroConfig)
	cmd.Flags().StringVarP(&out, "out", "o", "", commands.MsgFlagOut)
	cmd.Flags().StringVarP(&format, "format", "f", string(metroconfig.FormatJSON), commands.MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{string(metroconfig.FormatJSON), string(metroconfig.FormatYAML), string(metroconfig.FormatCommonJS)},
		cobra.ShellCompDirectiveNoFileComp,
	))

	return cmd
}
