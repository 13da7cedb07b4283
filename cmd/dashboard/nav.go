package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"chitragupta-dashboard/internal/app"
	"chitragupta-dashboard/pkg/navigation"
)

func newNavCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nav [location...]",
		Short: "Show which navigation entry is active for each location",
		Long: `Feeds each location through the navigation tracker and prints the sidebar
state after every change. Without arguments, locations are read from stdin,
one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)
			model, err := app.ResolveNavigation(cfg)
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			return runNav(model, args, cmd.InOrStdin(), cmd.OutOrStdout(), asJSON)
		},
	}

	cmd.Flags().Bool("json", false, "Print one JSON object per location")
	return cmd
}

func runNav(model *navigation.Model, locations []string, in io.Reader, out io.Writer, asJSON bool) error {
	tracker := navigation.NewTracker(model)

	var writeErr error
	tracker.Subscribe(func(update navigation.Update) {
		if writeErr != nil {
			return
		}
		if asJSON {
			writeErr = json.NewEncoder(out).Encode(update)
			return
		}
		writeErr = printUpdate(out, update)
	})

	if len(locations) > 0 {
		for _, location := range locations {
			tracker.Navigate(location)
		}
		return writeErr
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tracker.Navigate(scanner.Text())
		if writeErr != nil {
			return writeErr
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read locations: %w", err)
	}
	return writeErr
}

func printUpdate(out io.Writer, update navigation.Update) error {
	if _, err := fmt.Fprintf(out, "location %q\n", update.Location); err != nil {
		return err
	}
	for _, state := range update.States {
		marker := " "
		if state.Active {
			marker = "*"
		}
		if _, err := fmt.Fprintf(out, "  %s %-16s %-20s %s\n", marker, state.Label, state.Path, state.Icon); err != nil {
			return err
		}
	}
	return nil
}
