package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/v7s7/DaresniCheckUpdated/internal/fixture"
	"github.com/v7s7/DaresniCheckUpdated/internal/render"
)

func newWeekCommand(root *rootOptions) *cobra.Command {
	var pngPath string

	cmd := &cobra.Command{
		Use:   "week <tutor-id>",
		Short: "Show a tutor's weekly availability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid tutor id %q: %w", args[0], err)
			}

			f, err := fixture.Load(root.fixturePath)
			if err != nil {
				return err
			}

			tutor, ok := f.Tutor(id)
			if !ok {
				return fmt.Errorf("tutor %d not found in %s", id, root.fixturePath)
			}

			if pngPath != "" {
				img, err := render.GenerateWeekImage(tutor.Name, tutor.Availability, nil)
				if err != nil {
					return fmt.Errorf("failed to render week image: %w", err)
				}
				if err := os.WriteFile(pngPath, img, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", pngPath, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "✅ Image saved to %s (%d bytes)\n", pngPath, len(img))
			}

			if root.outputFmt == "json" {
				return writeJSON(cmd.OutOrStdout(), tutor.Availability)
			}
			return writeWeekTable(cmd.OutOrStdout(), tutor)
		},
	}

	cmd.Flags().StringVar(&pngPath, "png", "", "also render the week grid to this PNG file")

	return cmd
}
