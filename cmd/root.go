package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/meysamhadeli/cmtscan/comment_scanner"
	"github.com/meysamhadeli/cmtscan/comment_scanner/contracts"
	"github.com/meysamhadeli/cmtscan/comment_tally"
	contracts_tally "github.com/meysamhadeli/cmtscan/comment_tally/contracts"
	"github.com/meysamhadeli/cmtscan/config"
	"github.com/meysamhadeli/cmtscan/constants/lipgloss"
	"github.com/meysamhadeli/cmtscan/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type RootDependencies struct {
	Config  *config.Config
	Scanner contracts.ICommentScanner
	Tally   contracts_tally.ICommentTally
	Out     io.Writer
}

var rootCmd = &cobra.Command{
	Use:   "cmtscan <directory-path> [<style-token>]",
	Short: "Print every single-line comment found in the files of a directory.",
	Long: `cmtscan lists the immediate entries of a directory and prints, per file, each line
that starts with a single-line comment marker once surrounding whitespace is trimmed.

The last positional argument selects the comment style (case-insensitive):
  c, js              //
  python, py         #
  clj, lsp, lisp     ;
  anything else      //

With a single argument, the path is also used as the style token.

Use -- before a path that starts with '-' or is named like a subcommand:
  cmtscan -- -src js
  cmtscan -- reset-cache py`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "cmtscan version %s\n", config.DefaultConfig.Version)
			return nil
		}

		request, err := ResolveArguments(args)
		if err != nil {
			return handleResolveError(cmd.OutOrStdout(), err)
		}

		rootDependencies, err := handleRootCommand(cmd, false)
		if err != nil {
			return err
		}
		defer logger.Sync()

		return handleScanCommand(rootDependencies, request)
	},
}

func init() {
	config.InitFlags(rootCmd)

	// positional arguments are paths, so "help" and "completion" must not resolve to commands
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

// Execute runs the root command and exits non-zero on fatal errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}

// handleResolveError prints the message for recoverable argument errors.
// Anything else is returned as fatal.
func handleResolveError(out io.Writer, err error) error {
	switch {
	case errors.Is(err, ErrNotEnoughArguments):
		fmt.Fprintln(out, "Not enough arguments passed.")
		return nil
	case errors.Is(err, ErrPathNotExist):
		fmt.Fprintln(out, "Path does not exist.")
		return nil
	default:
		return err
	}
}

// handleRootCommand loads the configuration and builds the dependencies of a run.
// forceCache opens the cache even when it is disabled in the configuration.
func handleRootCommand(cmd *cobra.Command, forceCache bool) (*RootDependencies, error) {
	cfg, err := config.LoadConfigs(cmd.Root())
	if err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.Verbose); err != nil {
		return nil, err
	}

	var cacheManager *comment_scanner.CacheManager
	if cfg.EnableCache || forceCache {
		cacheManager, err = comment_scanner.NewCacheManager(cfg.CacheDir)
		if err != nil {
			if forceCache {
				return nil, err
			}
			// scanning still works without the cache
			logger.L().Warn("failed to initialize cache manager", zap.Error(err))
			cacheManager = nil
		}
	}

	out := cmd.OutOrStdout()

	return &RootDependencies{
		Config:  cfg,
		Scanner: comment_scanner.NewCommentScanner(out, cacheManager),
		Tally:   comment_tally.NewCommentTally(out),
		Out:     out,
	}, nil
}

// handleScanCommand scans the requested path and prints the report.
// Nothing is printed when the scan fails.
func handleScanCommand(rootDependencies *RootDependencies, request *ScanRequest) error {
	files, err := rootDependencies.Scanner.ScanPath(request.Path, request.Style)
	if err != nil {
		return err
	}

	reporter := comment_scanner.NewReporter(
		rootDependencies.Out,
		rootDependencies.Config.NoColor,
		rootDependencies.Config.Theme,
		request.Style,
	)
	reporter.Report(files)

	for _, file := range files {
		rootDependencies.Tally.AddFile(file)
	}
	if performance, enabled := rootDependencies.Scanner.CachePerformance(); enabled {
		rootDependencies.Tally.RecordCache(performance)
	}

	if rootDependencies.Config.Summary {
		rootDependencies.Tally.DisplaySummary(request.Style)
	}

	return nil
}
