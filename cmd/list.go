package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"visit-booking/cmd/bootstrap"
	"visit-booking/internal/handler/middleware"
	"visit-booking/internal/usecase/queries"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every stored reservation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}
			logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			store, err := bootstrap.OpenStore(ctx, cfg, logger, false)
			if err != nil {
				return err
			}
			defer store.Close()

			views, err := queries.NewReservationQueries(store).ListAll(ctx)
			if err != nil {
				return err
			}
			if len(views) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No visits found in the database.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPATIENT\tVISIT DATE\tDESCRIPTION\tATTENDEE\tDTSTART\tDTSTAMP\tMETHOD\tSTATUS\tUID")
			for _, v := range views {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					v.ID, v.PatientName, v.VisitDate, v.Description, v.Attendee,
					v.DTStart, v.DTStamp.Format(time.RFC3339), v.Method, v.Status, v.UID)
			}
			return w.Flush()
		},
	}
}
