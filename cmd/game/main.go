package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Garsondee/Star-Shoot/internal/config"
	"github.com/Garsondee/Star-Shoot/internal/logging"
	"github.com/Garsondee/Star-Shoot/internal/screen"
	"github.com/Garsondee/Star-Shoot/internal/sound"
	"github.com/Garsondee/Star-Shoot/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON, TOML or YAML settings file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		// The configured logger may not exist yet.
		fallback := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
		fallback.Fatal().Err(err).Msg("star-shoot failed")
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, closer, err := logging.New(logging.Options{
		Level:          cfg.LogLevel,
		GraylogEnabled: cfg.Graylog.Enabled,
		GraylogAddress: cfg.Graylog.Address,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	tp := telemetry.NewProvider(cfg.Telemetry.Enabled)
	rec, err := telemetry.NewRecorder(tp.Meter())
	if err != nil {
		return err
	}
	if tp.Enabled() {
		defer reportTotals(tp, log)
	}

	opts := screen.Options{Logger: log, Recorder: rec}
	if cfg.Audio.Enabled {
		opts.Mixer = openAudio(cfg.Audio, log)
		if opts.Mixer != nil {
			defer opts.Mixer.Close()
		}
	}

	g, err := screen.New(cfg, opts)
	if err != nil {
		return err
	}
	log.Info().
		Bool("cpu_player", cfg.Match.CPU.Player).
		Bool("cpu_alien", cfg.Match.CPU.Alien).
		Dur("item_interval", g.Match().ItemInterval()).
		Msg("starting match")
	return screen.Run(g)
}

// openAudio renders the sound bank and opens the device. Failure leaves the
// game silent.
func openAudio(ac config.AudioConfig, log zerolog.Logger) *screen.Mixer {
	bank, err := sound.NewBank(sound.Config{
		SampleRate:   ac.SampleRate,
		MasterVolume: ac.Volume,
		MusicVolume:  ac.MusicVolume,
	})
	if err != nil {
		log.Warn().Err(err).Msg("sound disabled")
		return nil
	}
	mixer, err := screen.NewMixer(bank, log)
	if err != nil {
		log.Warn().Err(err).Msg("sound disabled")
		return nil
	}
	return mixer
}

func reportTotals(tp *telemetry.Provider, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	totals, err := tp.Totals(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("telemetry collect failed")
	}
	for _, t := range totals {
		log.Info().Str("metric", t.Key).Int64("value", t.Value).Msg("telemetry")
	}
	if err := tp.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("telemetry shutdown failed")
	}
}
