package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/carimus/metrolink/internal/commands"
	"github.com/carimus/metrolink/pkg/exclusion"
	"github.com/carimus/metrolink/pkg/filesystem"
	"github.com/carimus/metrolink/pkg/linked"
	"github.com/carimus/metrolink/pkg/metroconfig"
	"github.com/carimus/metrolink/pkg/ui"
)

func newPathsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "paths",
		Short:   commands.MsgPathsShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, g)
			if err != nil {
				return err
			}

			root, _ := s.linker.ProjectRoot(s.options(nil))
			links, err := s.discoverer.Discover(root)
			if err != nil {
				return fmt.Errorf(commands.MsgErrDiscover, err)
			}
			if len(links) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), commands.MsgNoLinks)
				return nil
			}

			rows := make([][]string, 0, len(links))
			for _, link := range links {
				name := link
				if rel, err := filepath.Rel(root, link); err == nil {
					name = rel
				}
				target, err := filesystem.RealPath(s.fs, link)
				if err != nil {
					target = fmt.Sprintf("unresolved: %v", err)
				}
				rows = append(rows, []string{name, target})
			}
			return ui.WriteTable(cmd.OutOrStdout(), s.format,
				[]string{commands.MsgHeaderLink, commands.MsgHeaderTarget}, rows)
		},
	}
}

func newPatternCmd(g *globalFlags) *cobra.Command {
	var links linkFlags

	cmd := &cobra.Command{
		Use:     "pattern",
		Short:   commands.MsgPatternShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, g)
			if err != nil {
				return err
			}
			p, err := s.plan(&links)
			if err != nil {
				return err
			}

			resolver := linked.ResolverConfig(p.devPaths, p.opts.BlacklistLinkedModules, p.dirs)
			pattern, ok := resolver[metroconfig.KeyBlacklistRE]
			if !ok {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), commands.MsgNoPattern)
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), pattern)
			return nil
		},
	}
	links.register(cmd)
	return cmd
}

func newWatchFoldersCmd(g *globalFlags) *cobra.Command {
	var (
		links       linkFlags
		metroConfig string
	)

	cmd := &cobra.Command{
		Use:     "watch-folders",
		Short:   commands.MsgWatchFoldersShort,
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
			p, err := s.plan(&links)
			if err != nil {
				return err
			}

			// Without links the configuration is left alone.
			folders := existing.WatchFolders()
			if len(p.devPaths) > 0 {
				folders = linked.WatchFolders(p.devPaths, p.additional, existing)
			}
			for _, f := range folders {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
	links.register(cmd)
	cmd.Flags().StringVar(&metroConfig, "config", "", commands.MsgFlagMetroConfig)
	return cmd
}

func newCheckCmd(g *globalFlags) *cobra.Command {
	var links linkFlags

	cmd := &cobra.Command{
		Use:     "check <path>...",
		Short:   commands.MsgCheckShort,
		Long:    commands.MsgCheckLong,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, g)
			if err != nil {
				return err
			}
			p, err := s.plan(&links)
			if err != nil {
				return err
			}

			matcher := exclusion.BuildGroup(p.devPaths, p.opts.BlacklistLinkedModules, p.dirs).Matcher()
			if g.verbosity > 0 {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), commands.MsgCheckDirs)
				for _, dir := range matcher.Dirs() {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", dir)
				}
			}
			for _, arg := range args {
				path := arg
				if !filepath.IsAbs(path) {
					path = filepath.Join(p.root, path)
				}
				verdict := commands.MsgCheckIncluded
				if matcher.Excluded(path) {
					verdict = commands.MsgCheckExcluded
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", verdict, path)
			}
			return nil
		},
	}
	links.register(cmd)
	return cmd
}
