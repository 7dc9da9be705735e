package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gtfs-tools/stopfill"
	"github.com/gtfs-tools/stopfill/model"
	"github.com/gtfs-tools/stopfill/parse"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Interpolates missing stop times",
	Long: "Reads a stop_times file and writes a copy with blank arrival/departure " +
		"times filled in by linear interpolation over shape_dist_traveled",
	RunE: fill,
}

var (
	inputPath    string
	outputPath   string
	tripsPath    string
	crlf         bool
	zeroDistance string
)

func init() {
	fillCmd.Flags().StringVarP(&inputPath, "input", "i", "", "stop_times file to read")
	fillCmd.Flags().StringVarP(&outputPath, "output", "o", "", "file to write")
	fillCmd.Flags().StringVarP(&tripsPath, "trips", "", "", "optional trips.txt to validate trip_ids against")
	fillCmd.Flags().BoolVarP(&crlf, "crlf", "", false, "terminate output rows with CRLF")
	fillCmd.Flags().StringVarP(&zeroDistance, "zero-distance", "", "fail", "policy for spans with zero distance (fail|spread)")
	fillCmd.MarkFlagRequired("input")
	fillCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(fillCmd)
}

func fill(cmd *cobra.Command, args []string) error {
	var policy stopfill.ZeroDistPolicy
	switch zeroDistance {
	case "fail":
		policy = stopfill.ZeroDistFail
	case "spread":
		policy = stopfill.ZeroDistSpread
	default:
		return fmt.Errorf("invalid zero-distance policy '%s'", zeroDistance)
	}

	var trips map[string]bool
	if tripsPath != "" {
		f, err := os.Open(tripsPath)
		if err != nil {
			return err
		}
		trips, err = parse.ParseTrips(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", tripsPath, err)
		}
		log.Debug().Int("trips", len(trips)).Msg("Loaded trips")
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	reader, err := parse.NewReader(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	writer := parse.NewWriter(out, reader.Header(), parse.WriterOptions{CRLF: crlf})
	if err := writer.WriteHeader(); err != nil {
		return err
	}

	engine := stopfill.NewEngine(stopfill.Options{ZeroDist: policy})
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if trips != nil && !trips[rec.Get(model.FieldTripID)] {
			return fmt.Errorf("unknown trip_id '%s'", rec.Get(model.FieldTripID))
		}

		emitted, err := engine.Process(rec)
		if err != nil {
			return err
		}
		for _, e := range emitted {
			if err := writer.Write(e); err != nil {
				return err
			}
		}
	}

	if err := engine.Finalize(); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	stats := engine.Stats()
	log.Info().
		Int("records", stats.Records).
		Int("spans", stats.Spans).
		Int("interpolated", stats.Interpolated).
		Msg("Done")

	return nil
}
