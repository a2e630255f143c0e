package main

import (
	"flag"
	"os"
	"reversi/agent"
	"reversi/config"
	"reversi/engine"
	"reversi/game"
	"reversi/metrics"
	"reversi/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a config file (yaml, json or toml)")
	mode := flag.String("mode", "selfplay", "selfplay or serve")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	switch *mode {
	case "selfplay":
		if err := runSelfPlay(cfg); err != nil {
			log.Fatal().Err(err).Msg("self-play failed")
		}
	case "serve":
		server := agent.NewServer(log.Logger, cfg.SearchOptions(0)...)
		if err := server.ListenAndServe(":" + cfg.ServerPort); err != nil {
			log.Fatal().Err(err).Msg("agent server stopped")
		}
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

// runSelfPlay pits the searcher against the configured opponent, swapping
// colors every game.
func runSelfPlay(cfg *config.Config) error {
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	wins := 0

	log.Info().Int("games", cfg.Games).Str("opponent", cfg.Opponent).Int("iterations", cfg.Iterations).Msg("running self-play")
	for i := 0; i < cfg.Games; i++ {
		color := game.First
		if i%2 == 1 {
			color = game.Second
		}
		seed := uint64(2 * i)
		player := searcher.NewMCTS(color, append(cfg.SearchOptions(seed), searcher.WithMetrics())...)
		opponent := newOpponent(cfg, color.Opponent(), seed+1)

		gameMetric, moveMetrics, err := engine.LocalEngine(game.NewOthello(), player, opponent).Run()
		if err != nil {
			return err
		}
		if gameMetric.Winner == color.String() {
			wins++
		}

		gameRecords = append(gameRecords, metrics.GameRecord{ID: i + 1, GameMetric: gameMetric})
		for _, m := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: m})
		}
		log.Info().Int("game", i+1).Stringer("searcher", color).Str("winner", gameMetric.Winner).Int("margin", gameMetric.Margin).Msg("game finished")
	}
	log.Info().Int("wins", wins).Int("games", cfg.Games).Msg("self-play finished")

	if cfg.OutDir == "" {
		return nil
	}
	writer, err := metrics.NewWriter(cfg.OutDir)
	if err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("records written")
	return nil
}

func newOpponent(cfg *config.Config, color game.Color, seedOffset uint64) agent.Agent {
	if cfg.Opponent == "mcts" {
		return searcher.NewMCTS(color, append(cfg.SearchOptions(seedOffset), searcher.WithMetrics())...)
	}
	seed := uint64(0)
	if cfg.Seed != 0 {
		seed = cfg.Seed + seedOffset
	}
	return agent.NewRandomAgent(color, seed)
}
