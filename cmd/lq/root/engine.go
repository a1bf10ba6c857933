package root

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zxsa0716/ecoproject/internal/config"
	"github.com/zxsa0716/ecoproject/internal/engine"
	"github.com/zxsa0716/ecoproject/internal/location"
	"github.com/zxsa0716/ecoproject/internal/store"
)

func openEngine() (*engine.Engine, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	st, err := store.Open(cfg.StoreBackend, cfg.StorePath)
	if err != nil {
		return nil, nil, nil, err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	eng := engine.New(st, engine.WithLogger(log))

	cleanup := func() {
		_ = st.Close()
	}
	return eng, cfg, cleanup, nil
}

// locationFlags wires --lat/--lng onto commands that need a position.
func locationFlags(cmd *cobra.Command, lat, lng *float64) {
	cmd.Flags().Float64Var(lat, "lat", 0, "Current latitude")
	cmd.Flags().Float64Var(lng, "lng", 0, "Current longitude")
}

// resolveLocation builds the position from flags, falling back to the
// configured default when neither flag was set.
func resolveLocation(cmd *cobra.Command, cfg *config.Config, lat, lng float64) (engine.Coordinates, error) {
	var provider location.Provider = location.Unavailable{}
	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
		provider = location.Static{Coords: engine.Coordinates{Lat: lat, Lng: lng}}
	}
	fallback := location.Fallback{
		Inner:   provider,
		Default: engine.Coordinates{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng},
	}
	return fallback.Current(context.Background())
}
