package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort         = "Make Metro work with yarn/npm linked dependencies"
	MsgVersionShort      = "Print version information"
	MsgVersionLong       = "Print detailed version information including commit hash and build date"
	MsgApplyShort        = "Patch a Metro configuration for linked dependencies"
	MsgPathsShort        = "List linked dependencies and their real paths"
	MsgPatternShort      = "Print the resolver.blacklistRE metrolink would set"
	MsgWatchFoldersShort = "Print the watchFolders metrolink would set"
	MsgCheckShort        = "Report whether paths are hidden from Metro"
	MsgInitShort         = "Write a metrolink.toml with the default settings"
	MsgExplainShort      = "Explain why linked dependencies need special handling"
	MsgCompletionShort   = "Generate shell completion script"
	MsgManShort          = "Generate man pages"

	// Status messages
	MsgNoLinks       = "No linked dependencies found."
	MsgNoPattern     = "Nothing to exclude."
	MsgConfigWritten = "Wrote %s\n"
	MsgOutputWritten = "Wrote %s (%s)\n"
	MsgManWritten    = "Man pages written to %s\n"
	MsgCheckExcluded = "excluded"
	MsgCheckIncluded = "included"
	MsgCheckDirs     = "Excluded directories:"
	MsgVersionFormat = "metrolink version %s\n  commit: %s\n  built:  %s\n"

	// Table headers
	MsgHeaderLink   = "LINK"
	MsgHeaderTarget = "TARGET"

	// Error messages
	MsgErrLoadConfig  = "failed to load settings: %w"
	MsgErrLoadMetro   = "failed to load Metro configuration: %w"
	MsgErrApply       = "failed to apply linked dependency configuration: %w"
	MsgErrDiscover    = "failed to discover linked dependencies: %w"
	MsgErrWriteOutput = "failed to write %s: %w"
	MsgErrNoCommand   = "no command specified"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot        = "Project root (default: current directory)"
	MsgFlagSilent      = "Suppress developer warnings"
	MsgFlagNoColor     = "Disable colored output"
	MsgFlagMetroConfig = "Existing Metro configuration document (json, yaml or toml)"
	MsgFlagOut         = "Write the result to this file instead of stdout"
	MsgFlagFormat      = "Output format: json, yaml or js"
	MsgFlagBlacklist   = "Module hidden inside linked packages (repeatable)"
	MsgFlagExcludeDir  = "Directory excluded with everything beneath it (repeatable)"
	MsgFlagWatch       = "Additional folder to watch (repeatable)"
	MsgFlagStrategy    = "Discovery strategy: manifest or scan"
	MsgFlagForce       = "Overwrite an existing metrolink.toml"
	MsgFlagWidth       = "Wrap width for explain (0 = terminal default)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimSpace(msgApplyExampleRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/explain.md
	MsgExplain string
)
