package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/dropdown/internal/log"
	"github.com/charmbracelet/dropdown/internal/tui"
	"github.com/charmbracelet/dropdown/internal/version"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.Flags().BoolP("help", "h", false, "Help")
}

var rootCmd = &cobra.Command{
	Use:   "dropdown",
	Short: "Popup completion menu for the terminal",
	Long: `Dropdown is a terminal demo of a popup completion menu.
Type into the prompt and a filterable menu of candidate words opens at the
cursor. Arrow keys move the selection, enter or tab accepts it, and esc
dismisses the menu.`,
	Example: `
# Run the demo
dropdown

# Run with debug logging
dropdown -d

# Print version
dropdown -v
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(os.Stdout.Fd()) {
			return errors.New("interactive mode requires a terminal")
		}

		debug, _ := cmd.Flags().GetBool("debug")
		log.Setup("dropdown.log", debug)

		program := tea.NewProgram(
			tui.New(),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
		)

		if _, err := program.Run(); err != nil {
			slog.Error("TUI run error", "error", err)
			return fmt.Errorf("TUI error: %v", err)
		}
		return nil
	},
}

func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
