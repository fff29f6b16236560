package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cyp0633/libholiday/calendar"
	"github.com/cyp0633/libholiday/client"
	"github.com/cyp0633/libholiday/export"
	"github.com/cyp0633/libholiday/holiday"
	"github.com/spf13/cobra"
)

const formatText = "text"

func newListCmd(a *app) *cobra.Command {
	var (
		year   int
		county string
		types  []string
		format string
		remote string
	)

	c := &cobra.Command{
		Use:     "list <country>",
		Short:   "List the holidays of a country",
		Example: "holidays list DE --year 2022 --county DE-BY --format ics",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := holiday.ParseCountryCode(args[0])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			var list []holiday.Holiday
			if remote != "" {
				feed, err := client.New(remote, client.WithLogger(a.logger))
				if err != nil {
					return err
				}
				if list, err = feed.Holidays(cmd.Context(), code, year, county); err != nil {
					return err
				}
			} else {
				assembler := calendar.New(calendar.WithLogger(a.logger))
				if r, ok := assembler.Years(code).Get(); ok && !r.Contains(year) {
					return fmt.Errorf("year %d outside %d-%d for %s", year, r.First, r.Last, code)
				}
				list = assembler.Holidays(year, code)
				if county != "" {
					list = calendar.FilterCounty(list, county)
				}
			}
			if len(types) > 0 {
				var parsed []holiday.Type
				for _, name := range types {
					t, err := holiday.ParseType(name)
					if err != nil {
						return err
					}
					parsed = append(parsed, t)
				}
				list = calendar.FilterTypes(list, parsed...)
			}

			out := cmd.OutOrStdout()
			if format == formatText {
				for _, h := range list {
					fmt.Fprintln(out, h.String())
				}
				return nil
			}

			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			return export.Write(out, f, list, export.ICSOptions{
				Name: fmt.Sprintf("Holidays %s %d", code, year),
			})
		},
	}

	c.Flags().IntVarP(&year, "year", "y", time.Now().Year(), "calendar year")
	c.Flags().StringVar(&county, "county", "", "keep nationwide holidays and those of this subdivision")
	c.Flags().StringSliceVar(&types, "type", nil, "holiday types to keep, e.g. Public,Bank")
	c.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, ics or csv")
	c.Flags().StringVar(&remote, "remote", "", "read from the feed at this URL instead of computing locally")
	return c
}

func newCountiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "counties [country]",
		Short: "List subdivisions, or the supported countries without an argument",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assembler := calendar.New(calendar.WithLogger(a.logger))
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, code := range assembler.Supported() {
					fmt.Fprintln(out, code)
				}
				return nil
			}

			code, err := holiday.ParseCountryCode(args[0])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			counties, ok := assembler.Counties(code).Get()
			if !ok {
				return fmt.Errorf("country %s has no counties", code)
			}
			ids := make([]string, 0, len(counties))
			for id := range counties {
				ids = append(ids, id)
			}
			slices.Sort(ids)
			for _, id := range ids {
				fmt.Fprintf(out, "%s\t%s\n", id, counties[id])
			}
			return nil
		},
	}
}

func newWorkdayCmd(a *app) *cobra.Command {
	var county string

	c := &cobra.Command{
		Use:     "workday <country> <YYYY-MM-DD>",
		Short:   "Tell whether a date is a workday",
		Example: "holidays workday DE 2022-10-03",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := holiday.ParseCountryCode(args[0])
			if err != nil {
				return err
			}
			date, err := time.Parse(time.DateOnly, args[1])
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}
			cmd.SilenceUsage = true

			bd := calendar.New(calendar.WithLogger(a.logger)).NewBusinessDays(code, county)
			var status []string
			if bd.IsWorkday(date) {
				status = append(status, "workday")
			} else {
				status = append(status, "day off")
			}
			if h, ok := bd.IsHoliday(date).Get(); ok {
				status = append(status, h.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", date.Format(time.DateOnly), strings.Join(status, ": "))
			return nil
		},
	}

	c.Flags().StringVar(&county, "county", "", "subdivision whose regional holidays apply")
	return c
}
