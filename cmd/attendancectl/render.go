package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/compliance"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
)

// parseNow returns a clock fixed at the given date, or fallback when value
// is empty. The date is read in local time.
func parseNow(value string, fallback func() time.Time) (func() time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	now, err := compliance.ParseDateKey(value, time.Local)
	if err != nil {
		return nil, err
	}
	return func() time.Time { return now }, nil
}

func writeReport(w io.Writer, userID string, report *entity.Report) error {
	fmt.Fprintf(w, "Report for %s as of %s\n\n", userID, compliance.EncodeDateKey(report.GeneratedAt))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WEEK\tSPAN\tCAMPUS\tREMOTE\tOOO\tPERCENT\tBADGE")
	for _, week := range report.Weeks {
		percent := "n/a"
		if week.Percent != nil {
			percent = fmt.Sprintf("%d%%", *week.Percent)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			week.Summary.WeekKey,
			week.Span.Label,
			week.Summary.OnCampus,
			week.Summary.Remote,
			week.Summary.OutOfOffice,
			percent,
			week.Badge,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nBelt: %d%% (%s)\n", report.Belt, report.Band)
	return err
}

func writeReportJSON(w io.Writer, report *entity.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
