package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fakefetch/ascii"
	"fakefetch/display"
	"fakefetch/logging"
	"fakefetch/sysinfo"
	"fakefetch/version"
)

var headingStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7D56F4")).
	Bold(true)

func newRootCmd(p sysinfo.Provider, id sysinfo.Identity) *cobra.Command {
	var distro string

	cmd := &cobra.Command{
		Use:   "fakefetch",
		Short: "Show system information next to ASCII art",
		Long: `Gathers OS, kernel, uptime, package, shell, terminal, CPU and memory
facts and prints them beside a colored ASCII art logo.

Facts that cannot be read are shown as "cannot be retrieved" and never
stop the output.`,
		Version:       version.Full(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), distro, p, id)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().StringVarP(&distro, "distro", "d", ascii.CLIDefault, "change ascii art (see 'fakefetch themes')")

	cmd.AddCommand(newThemesCmd())
	return cmd
}

// run renders one fetch for the named theme to w.
func run(ctx context.Context, w io.Writer, distro string, p sysinfo.Provider, id sysinfo.Identity) error {
	if !ascii.Has(distro) {
		logging.Warn("unknown theme, using default",
			zap.String("theme", distro),
			zap.String("fallback", ascii.DefaultName),
		)
	}
	theme := ascii.Lookup(distro)

	facts := sysinfo.Collect(ctx, p)
	info := display.Compose(theme, id, facts)

	out, err := display.Render(theme, info, display.DefaultGutter)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available art themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headingStyle.Render("Themes"))
			for _, name := range ascii.Names() {
				marker := " "
				if name == ascii.CLIDefault {
					marker = "*"
				}
				fmt.Fprintf(w, "%s %s\n", marker, ascii.Colorize(name, ascii.Lookup(name).Color))
			}
			return nil
		},
	}
}
