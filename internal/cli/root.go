// Package cli команды офлайн-утилиты tutorrank.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version задаётся из main при сборке
var version = "dev"

// SetVersion устанавливает версию из флагов сборки
func SetVersion(v string) {
	version = v
}

type rootOptions struct {
	fixturePath string
	outputFmt   string
}

// NewRootCommand собирает дерево команд
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "tutorrank",
		Short: "Offline tutor ranking over a TOML fixture",
		Long: `tutorrank runs the Daresni matching engine against a TOML fixture of tutors,
without Telegram, PostgreSQL or Redis.

Examples:
  tutorrank rank -f testdata/tutors.toml
  tutorrank rank --subject physics --days mon,wed --explain
  tutorrank week 1 --png week.png`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.fixturePath, "fixture", "f", "testdata/tutors.toml",
		"path to TOML fixture with tutors")
	root.PersistentFlags().StringVarP(&opts.outputFmt, "output", "o", "table",
		"output format (table, json)")

	root.AddCommand(newRankCommand(opts))
	root.AddCommand(newWeekCommand(opts))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tutorrank %s\n", version)
		},
	})

	return root
}

// Execute запускает корневую команду
func Execute() error {
	return NewRootCommand().Execute()
}
