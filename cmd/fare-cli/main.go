// README: Command-line fare prediction: quote one trip or score the sample file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"farecast/internal/config"
	"farecast/internal/infra"
	"farecast/internal/modules/pricing"
	"farecast/internal/modules/samples"
	"farecast/internal/modules/trip"
	"farecast/internal/types"
)

const usage = `usage: fare-cli <command> [flags]

commands:
  predict   quote a single trip
  samples   score a sample of the held-out CSV
`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "fare-cli:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errors.New("missing command")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := infra.NewLogger(cfg.AppEnv, "fare-cli")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	switch args[0] {
	case "predict":
		return runPredict(ctx, cfg, log, args[1:], out)
	case "samples":
		return runSamples(ctx, cfg, log, args[1:], out)
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func newPricing(ctx context.Context, cfg config.Config, log *zap.Logger) (*pricing.Service, error) {
	m, err := infra.LoadModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pricing.NewService(m, nil, log), nil
}

func runPredict(ctx context.Context, cfg config.Config, log *zap.Logger, args []string, out io.Writer) error {
	d := trip.Defaults()
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	fs.SetOutput(out)
	pickupLon := fs.Float64("pickup-lon", d.Pickup.Lng, "pickup longitude")
	pickupLat := fs.Float64("pickup-lat", d.Pickup.Lat, "pickup latitude")
	dropoffLon := fs.Float64("dropoff-lon", d.Dropoff.Lng, "dropoff longitude")
	dropoffLat := fs.Float64("dropoff-lat", d.Dropoff.Lat, "dropoff latitude")
	passengers := fs.Int("passengers", d.Passengers, "passenger count (1-6)")
	date := fs.String("date", d.Date.String(), "pickup date YYYY-MM-DD")
	clock := fs.String("time", d.Clock.String(), "pickup time HH:MM")
	fs.StringVar(&cfg.Model.Path, "model", cfg.Model.Path, "model artifact path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pd, err := trip.ParseDate(*date)
	if err != nil {
		return err
	}
	pc, err := trip.ParseClock(*clock)
	if err != nil {
		return err
	}
	req, err := trip.NewRequest(
		types.Coordinate{Lng: *pickupLon, Lat: *pickupLat},
		types.Coordinate{Lng: *dropoffLon, Lat: *dropoffLat},
		*passengers, pd, pc,
	)
	if err != nil {
		return err
	}

	svc, err := newPricing(ctx, cfg, log)
	if err != nil {
		return err
	}
	q, err := svc.Quote(ctx, req)
	if err != nil {
		return err
	}

	f := q.Features
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "pickup\t%.4f, %.4f\n", f.PickupLongitude, f.PickupLatitude)
	fmt.Fprintf(w, "dropoff\t%.4f, %.4f\n", f.DropoffLongitude, f.DropoffLatitude)
	fmt.Fprintf(w, "difference\t%.4f, %.4f\n", f.LonDiff, f.LatDiff)
	fmt.Fprintf(w, "passengers\t%d\n", f.Passengers)
	fmt.Fprintf(w, "pickup at\t%s %s\n", f.PickupDate, f.PickupTime)
	fmt.Fprintf(w, "distance\t%.4f km\n", f.DistanceKm)
	fmt.Fprintf(w, "fare\t%s\n", q.Display)
	return w.Flush()
}

func runSamples(ctx context.Context, cfg config.Config, log *zap.Logger, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("samples", flag.ContinueOnError)
	fs.SetOutput(out)
	file := fs.String("file", cfg.Samples.Path, "sample CSV path")
	n := fs.Int("n", cfg.Samples.Size, "number of rows to sample")
	seed := fs.Int64("seed", cfg.Samples.Seed, "sampling seed")
	fs.StringVar(&cfg.Model.Path, "model", cfg.Model.Path, "model artifact path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	table, err := samples.Open(*file)
	if err != nil {
		return err
	}
	table.LogSkipped(log)
	svc, err := newPricing(ctx, cfg, log)
	if err != nil {
		return err
	}
	res, err := svc.ScoreBatch(ctx, samples.Sample(table.Rows, *n, *seed))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LINE\tPICKUP_DATETIME\tPICKUP\tDROPOFF\tPASSENGERS\tFARE")
	for _, r := range res.Rows {
		fmt.Fprintf(w, "%d\t%s\t%.6f,%.6f\t%.6f,%.6f\t%d\t%.2f\n",
			r.Line, r.PickupDatetime,
			r.PickupLongitude, r.PickupLatitude,
			r.DropoffLongitude, r.DropoffLatitude,
			r.Passengers, r.FareAmount,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nscored %d of %d rows, skipped %d\n", len(res.Rows), len(table.Rows), len(table.Skipped))
	for _, s := range table.Skipped {
		fmt.Fprintf(out, "  line %d: %s\n", s.Line, s.Reason)
	}
	return nil
}
