package cmd

import (
	"bufio"
	"fmt"

	"github.com/meysamhadeli/cmtscan/constants/lipgloss"
	"github.com/meysamhadeli/cmtscan/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// resetCacheCmd represents the reset-cache command
var resetCacheCmd = &cobra.Command{
	Use:   "reset-cache",
	Short: "Reset the scan cache of cmtscan",
	Long: `The 'reset-cache' command removes every cached scan result from the cache directory.
Use it when cached results look stale or the cache grew too large.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		stats, _ := cmd.Flags().GetBool("stats")

		return handleResetCacheCommand(cmd, force, stats)
	},
}

func init() {
	resetCacheCmd.Flags().BoolP("force", "f", false, "Force cache reset without confirmation")
	resetCacheCmd.Flags().BoolP("stats", "s", false, "Show cache statistics instead of resetting")

	rootCmd.AddCommand(resetCacheCmd)
}

func handleResetCacheCommand(cmd *cobra.Command, force bool, showStats bool) error {
	rootDependencies, err := handleRootCommand(cmd, true)
	if err != nil {
		return err
	}
	out := rootDependencies.Out

	if showStats {
		fmt.Fprintln(out, lipgloss.Info.Render("Cache Statistics:"))
		cacheStats, err := rootDependencies.Scanner.GetCacheStats()
		if err != nil {
			fmt.Fprintln(out, lipgloss.Yellow.Render(fmt.Sprintf("Warning: Could not show statistics: %v", err)))
			return nil
		}

		if enabled, ok := cacheStats["cache_enabled"].(bool); !ok || !enabled {
			fmt.Fprintln(out, "  Cache is disabled")
			return nil
		}
		if dir, ok := cacheStats["cache_dir"].(string); ok {
			fmt.Fprintf(out, "  Cache Directory: %s\n", dir)
		}
		if files, ok := cacheStats["cache_files"].(int); ok {
			fmt.Fprintf(out, "  Cached Files: %d\n", files)
		}
		if size, ok := cacheStats["total_size"].(int64); ok {
			fmt.Fprintf(out, "  Total Size: %.2f KB\n", float64(size)/1024)
		}
		return nil
	}

	if !force {
		accepted, err := utils.ConfirmPrompt(out, "Are you sure you want to reset the scan cache?", bufio.NewReader(cmd.InOrStdin()))
		if err != nil {
			return err
		}
		if !accepted {
			fmt.Fprintln(out, lipgloss.Yellow.Render("Cache reset cancelled."))
			return nil
		}
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgCyan)).
		WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").
		WithDelay(100).WithRemoveWhenDone(true).WithWriter(out)

	spinnerInstance, _ := spinner.Start("Resetting scan cache...")

	err = rootDependencies.Scanner.ClearCache()
	spinnerInstance.Stop()

	if err != nil {
		fmt.Fprintln(out, lipgloss.Red.Render(fmt.Sprintf("Error resetting cache: %v", err)))
		return nil
	}

	fmt.Fprintln(out, lipgloss.Green.Render("✓ Scan cache has been successfully reset!"))
	return nil
}
