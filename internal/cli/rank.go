package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/v7s7/DaresniCheckUpdated/internal/fixture"
	"github.com/v7s7/DaresniCheckUpdated/internal/matching"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
	"github.com/v7s7/DaresniCheckUpdated/internal/service"
)

type rankOptions struct {
	subject   string
	budget    string
	language  string
	days      string
	level     string
	minRating float64
	verified  bool
	top       int
	workers   int
	prefilter bool
	explain   bool
}

func newRankCommand(root *rootOptions) *cobra.Command {
	opts := &rankOptions{}

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank fixture tutors for search criteria",
		Long: `Rank tutors from the fixture. Criteria come from the fixture's [criteria] table;
flags given on the command line override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fixture.Load(root.fixturePath)
			if err != nil {
				return err
			}

			criteria, err := opts.criteria(cmd, f.Criteria)
			if err != nil {
				return err
			}

			tutors := f.Tutors
			if opts.prefilter {
				tutors = service.Prefilter(tutors, criteria)
			}

			engine := matching.DefaultEngine()
			ranked := matching.NewRanker(engine, opts.workers).Rank(tutors, criteria)
			ranked = matching.Top(ranked, opts.top)

			switch root.outputFmt {
			case "json":
				return writeJSON(cmd.OutOrStdout(), ranked)
			case "table", "":
				return writeRankTable(cmd.OutOrStdout(), ranked, opts.explain)
			default:
				return fmt.Errorf("unknown output format: %s", root.outputFmt)
			}
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.subject, "subject", "", "subject to match")
	flags.StringVar(&opts.budget, "budget", "", `budget range "min-max"`)
	flags.StringVar(&opts.language, "language", "", "language code (en, ar, ...)")
	flags.StringVar(&opts.days, "days", "", "wanted days: mon,wed or 1,3")
	flags.StringVar(&opts.level, "level", "", "hard filter: subject level (with --prefilter)")
	flags.Float64Var(&opts.minRating, "min-rating", 0, "hard filter: minimum rating (with --prefilter)")
	flags.BoolVar(&opts.verified, "verified", false, "hard filter: verified tutors only (with --prefilter)")
	flags.IntVarP(&opts.top, "top", "n", 10, "number of results, negative for all")
	flags.IntVar(&opts.workers, "workers", 4, "parallel scoring workers")
	flags.BoolVar(&opts.prefilter, "prefilter", false, "apply hard search filters before ranking")
	flags.BoolVar(&opts.explain, "explain", false, "show per-factor breakdown")

	return cmd
}

// criteria критерии фикстуры с переопределением из явно заданных флагов
func (o *rankOptions) criteria(cmd *cobra.Command, base model.SearchCriteria) (model.SearchCriteria, error) {
	c := base
	flags := cmd.Flags()

	if flags.Changed("subject") {
		c.Subject = o.subject
	}
	if flags.Changed("budget") {
		c.Budget = o.budget
	}
	if flags.Changed("language") {
		c.Language = o.language
	}
	if flags.Changed("days") {
		days, err := model.ParseWeekdays(o.days)
		if err != nil {
			return model.SearchCriteria{}, fmt.Errorf("invalid --days: %w", err)
		}
		c.Availability = days
	}
	if flags.Changed("level") {
		c.Level = o.level
	}
	if flags.Changed("min-rating") {
		c.MinRating = o.minRating
	}
	if flags.Changed("verified") {
		c.VerifiedOnly = o.verified
	}

	return c, nil
}
