package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/v7s7/DaresniCheckUpdated/internal/matching"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func writeRankTable(w io.Writer, ranked []matching.Ranked, explain bool) error {
	if len(ranked) == 0 {
		fmt.Fprintln(w, "No tutors matched.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"#", "ID", "NAME", "SCORE"}
	if explain {
		for _, f := range matching.AllFactors() {
			header = append(header, strings.ToUpper(f.String()))
		}
	}
	header = append(header, "REASONS")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i, r := range ranked {
		cols := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Tutor.ID),
			truncate(r.Tutor.Name, 24),
			fmt.Sprintf("%.3f", r.Match.Score),
		}
		if explain {
			for _, f := range matching.AllFactors() {
				cols = append(cols, fmt.Sprintf("%.2f", r.Match.Breakdown.Get(f)))
			}
		}
		cols = append(cols, strings.Join(r.Match.Reasons, "; "))
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}

	return tw.Flush()
}

func writeWeekTable(w io.Writer, tutor *model.Tutor) error {
	fmt.Fprintf(w, "%s (id %d)\n\n", tutor.Name, tutor.ID)
	if len(tutor.Availability) == 0 {
		fmt.Fprintln(w, "No availability.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tFROM\tTO")
	for _, slot := range tutor.Availability {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			slot.Weekday,
			clock(slot.StartMinutes),
			clock(slot.EndMinutes))
	}
	return tw.Flush()
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/model.MinutesPerHour, minutes%model.MinutesPerHour)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
