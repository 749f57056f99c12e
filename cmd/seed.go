package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"visit-booking/cmd/bootstrap"
	"visit-booking/internal/domain/reservation"
	"visit-booking/internal/handler/middleware"
	"visit-booking/internal/pkg/clock"
	"visit-booking/internal/seed"
	"visit-booking/internal/usecase/commands"
	"visit-booking/internal/usecase/shared"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var (
		count   int
		from    string
		to      string
		rngSeed uint64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert random sample reservations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			window, err := parseWindow(from, to)
			if err != nil {
				return err
			}

			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}
			logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			store, err := bootstrap.OpenStore(ctx, cfg, logger, true)
			if err != nil {
				return err
			}
			defer store.Close()

			clk := clock.NewRealClock()
			cmds := commands.NewReservationUseCase(store, reservation.NewTimestampCodeGenerator(clk), shared.NopPublisher{}, clk, logger)

			if rngSeed == 0 {
				rngSeed = uint64(time.Now().UnixNano())
			}
			rng := rand.New(rand.NewPCG(rngSeed, rngSeed>>1))

			results, err := seed.Populate(ctx, cmds, seed.SampleRequests(rng, window, count))
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "A row has been inserted with id %d (%s)\n", r.ID, r.ConfirmationCode)
			}
			return err
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "number of reservations to insert")
	cmd.Flags().StringVar(&from, "from", seed.DefaultWindow.From.Format(time.DateOnly), "earliest visit date YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", seed.DefaultWindow.To.Format(time.DateOnly), "latest visit date YYYY-MM-DD")
	cmd.Flags().Uint64Var(&rngSeed, "rand-seed", 0, "random seed (0 picks one from the clock)")
	return cmd
}

func parseWindow(from, to string) (seed.Window, error) {
	start, err := time.Parse(time.DateOnly, from)
	if err != nil {
		return seed.Window{}, fmt.Errorf("invalid --from (want YYYY-MM-DD)")
	}
	end, err := time.Parse(time.DateOnly, to)
	if err != nil {
		return seed.Window{}, fmt.Errorf("invalid --to (want YYYY-MM-DD)")
	}
	if end.Before(start) {
		return seed.Window{}, fmt.Errorf("--to must not be before --from")
	}
	return seed.Window{From: start, To: end}, nil
}
