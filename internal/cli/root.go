package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/carimus/metrolink/internal/commands"
	"github.com/carimus/metrolink/internal/version"
	"github.com/carimus/metrolink/pkg/config"
	"github.com/carimus/metrolink/pkg/discovery"
	"github.com/carimus/metrolink/pkg/filesystem"
	"github.com/carimus/metrolink/pkg/linked"
	"github.com/carimus/metrolink/pkg/logging"
	"github.com/carimus/metrolink/pkg/types"
	"github.com/carimus/metrolink/pkg/ui"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	verbosity int
	root      string
	silent    bool
	noColor   bool
	strategy  string
}

func (g *globalFlags) format() ui.Format {
	if g.noColor {
		return ui.FormatText
	}
	return ui.FormatAuto
}

// session is the per-invocation state of commands that inspect a project
type session struct {
	// dir is where settings were looked up: --root or the working directory
	dir        string
	cfg        *config.Config
	fs         types.FS
	format     ui.Format
	discoverer discovery.Discoverer
	linker     *linked.Linker
}

func newSession(cmd *cobra.Command, g *globalFlags) (*session, error) {
	dir := g.root
	if dir == "" {
		dir = linked.InferProjectRoot()
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf(commands.MsgErrLoadConfig, err)
	}
	if g.root != "" {
		cfg.ProjectRoot = dir
	}
	if g.silent {
		cfg.Silent = true
	}
	if g.strategy != "" {
		cfg.Discovery.Strategy = g.strategy
	}

	fsys := filesystem.NewReadOnlyOS()
	discoverer, err := discovery.New(fsys, cfg.DiscoveryOptions())
	if err != nil {
		return nil, err
	}

	format := g.format()
	sink := ui.NewConsoleSink(cmd.ErrOrStderr(), format)

	log.Debug().Str("dir", dir).Strs("sources", cfg.Sources).Msg("Session ready")
	return &session{
		dir:        dir,
		cfg:        cfg,
		fs:         fsys,
		format:     format,
		discoverer: discoverer,
		linker:     linked.NewLinker(fsys, discoverer, sink),
	}, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "metrolink",
		Short:   commands.MsgRootShort,
		Long:    commands.MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(commands.MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", commands.MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.root, "root", "", commands.MsgFlagRoot)
	rootCmd.PersistentFlags().BoolVar(&g.silent, "silent", false, commands.MsgFlagSilent)
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", os.Getenv("NO_COLOR") != "", commands.MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&g.strategy, "strategy", "", commands.MsgFlagStrategy)
	_ = rootCmd.RegisterFlagCompletionFunc("strategy", cobra.FixedCompletions(
		[]string{discovery.StrategyManifest, discovery.StrategyScan},
		cobra.ShellCompDirectiveNoFileComp,
	))

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "Misc:"})

	rootCmd.AddCommand(newApplyCmd(g))
	rootCmd.AddCommand(newPathsCmd(g))
	rootCmd.AddCommand(newPatternCmd(g))
	rootCmd.AddCommand(newWatchFoldersCmd(g))
	rootCmd.AddCommand(newCheckCmd(g))
	rootCmd.AddCommand(newInitCmd(g))
	rootCmd.AddCommand(newExplainCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}
