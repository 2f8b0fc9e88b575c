package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/core/services"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
	colorBold   = "\033[1m"
)

// PreviewCmd creates the preview command
func PreviewCmd(app *AppContext) *cobra.Command {
	var (
		flags   sourceFlags
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "preview <date> [files...]",
		Short: "Print the schedule of one day (YYYY-MM-DD) in the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(schedule.DateLayout, args[0])
			if err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD: %w", schedule.ErrInvalidDateFormat)
			}

			app.Logger.Debug("preview command", zap.String("date", args[0]))

			sources, err := app.shiftSources(flags, args[1:])
			if err != nil {
				return err
			}

			load, err := services.LoadShifts(app.Ctx, sources, app.Policy(), app.Logger)
			if err != nil {
				return err
			}

			day, err := services.PreviewDay(load, date)
			if err != nil {
				return err
			}

			renderDay(os.Stdout, day, !noColor)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Print without ANSI colors")

	return cmd
}

// renderDay prints the visible part of a day schedule as a fixed-width table
func renderDay(w io.Writer, day schedule.DaySchedule, color bool) {
	headers := append(append([]string{}, day.Headers...), "Total")

	rows := make([][]string, len(day.Rows))
	for i, row := range day.Rows {
		cells := []string{row.ShiftTime, row.EmployeeName, row.Phone}
		cells = append(cells, row.Labels()...)
		rows[i] = append(cells, formatHours(row.Total))
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, cells := range rows {
		for i, c := range cells {
			widths[i] = max(widths[i], utf8.RuneCountInString(c))
		}
	}

	paint := func(code, s string) string {
		if !color || code == "" {
			return s
		}
		return code + s + colorReset
	}

	fmt.Fprintf(w, "\n%s\n\n", paint(colorBold, day.Title))

	for i, h := range headers {
		fmt.Fprint(w, pad(h, widths[i]+2))
	}
	fmt.Fprintln(w)

	total := 0
	for _, width := range widths {
		total += width + 2
	}
	fmt.Fprintln(w, strings.Repeat("-", total))

	for r, cells := range rows {
		statuses := day.Rows[r].Statuses
		for i, c := range cells {
			code := ""
			if slot := i - schedule.FixedColumns; slot >= 0 && slot < len(statuses) {
				code = activityColor(statuses[slot].Activity)
			}
			fmt.Fprint(w, paint(code, pad(c, widths[i]+2)))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("-", total))
	fmt.Fprintf(w, "%s%s\n\n", pad("Total", total-widths[len(widths)-1]-2), formatHours(day.Total))
}

func activityColor(a schedule.Activity) string {
	switch a {
	case schedule.ActivityWork:
		return colorGreen
	case schedule.ActivityLunch:
		return colorYellow
	default:
		return colorDim
	}
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// formatHours prints a duration as h:mm, the way the workbook formats totals
func formatHours(d time.Duration) string {
	minutes := int(d.Round(time.Minute) / time.Minute)
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
