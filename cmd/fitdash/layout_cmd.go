package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"fitdash/internal/layout"
	"fitdash/internal/widget"
)

func newLayoutCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect or reset the saved dashboard layout",
	}
	cmd.AddCommand(
		newLayoutShowCmd(flags),
		newLayoutResetCmd(flags),
		newLayoutExportCmd(flags),
	)
	return cmd
}

func newLayoutShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer e.Close()

			ws := e.manager(cmd.Context()).Widgets()
			rows := make([][]string, 0, len(ws))
			for _, area := range []widget.Area{widget.AreaMain, widget.AreaSidebar} {
				for _, w := range layout.InArea(ws, area) {
					visible := "yes"
					if !w.IsVisible {
						visible = "no"
					}
					rows = append(rows, []string{area.String(), strconv.Itoa(w.CurrentOrder), visible, w.ID, w.Title})
				}
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("AREA", "ORDER", "VISIBLE", "ID", "TITLE").
				Rows(rows...)
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			fmt.Fprintf(cmd.OutOrStdout(), "key: %s (%s)\n", e.adapter.Key(), e.cfg.Storage)
			return nil
		},
	}
}

func newLayoutResetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore and save the default layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.manager(cmd.Context()).RestoreDefaults(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default layout saved to %s\n", e.adapter.Key())
			return nil
		},
	}
}

func newLayoutExportCmd(flags *rootFlags) *cobra.Command {
	var effective bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the stored layout record as JSON",
		Long: "Print the stored layout record verbatim. With --effective, or when nothing\n" +
			"is stored, print the layout the dashboard would use instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer e.Close()

			if !effective {
				raw, ok, err := e.adapter.ReadRaw(cmd.Context())
				if err != nil {
					return err
				}
				if ok {
					fmt.Fprintln(cmd.OutOrStdout(), raw)
					return nil
				}
			}
			out, err := layout.Encode(layout.Persisted(e.manager(cmd.Context()).Widgets()))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&effective, "effective", false, "print the merged layout instead of the raw record")
	return cmd
}
