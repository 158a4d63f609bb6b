package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/autopilot"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/config"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/levels"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/sim"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/storage"
)

var (
	flagMaxFrames int
	flagRuns      int
	flagSave      bool
	flagSimConfig string
)

var simCmd = &cobra.Command{
	Use:   "sim <level>",
	Short: "Run headless autopilot simulations",
	Long: `Run the autopilot through a level without rendering anything.

Each run materializes the level with its own seed, steps the world at
full speed with the autopilot deciding every frame, and reports the
final score, frame count, and what ended the run.

Examples:
  flappy sim simple
  flappy sim marathon --runs 10
  flappy sim hard --seed 42 --max-frames 50000
  flappy sim medium --save`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 10000, "Frame limit per run")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs to simulate")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record results in the runs database")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom physics config YAML")
}

func runSim(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy-sim",
	})

	levelID := args[0]
	level, err := levels.Find(levelID, flagLevelsDir)
	if err != nil {
		logger.Error("unknown level", "level", levelID)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available levels.")
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagSimConfig)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}
	simCfg := gameCfg.SimConfig()

	runs := flagRuns
	if runs < 1 {
		runs = 1
	}

	var store *storage.Store
	if flagSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open runs database", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	var totalScore, bestScore int
	for i := 0; i < runs; i++ {
		seed := baseSeed + int64(i)
		score, frames, cause, simErr := simulate(level, simCfg, seed, flagMaxFrames)
		if simErr != nil {
			logger.Error("cannot materialize level", "level", level.ID, "error", simErr)
			os.Exit(1)
		}

		logger.Info("run finished",
			"run", i+1,
			"seed", seed,
			"score", score,
			"frames", frames,
			"cause", cause,
		)

		totalScore += score
		if score > bestScore {
			bestScore = score
		}

		if store != nil {
			//nolint:errcheck // Best-effort save
			store.SaveRun(storage.RunEntry{
				LevelID: level.ID,
				Score:   score,
				Frames:  frames,
				Mode:    storage.ModeAutopilot,
				Cause:   cause,
			})
		}
	}

	if runs > 1 {
		logger.Info("batch finished",
			"runs", runs,
			"best", bestScore,
			"avg", float64(totalScore)/float64(runs),
		)
	}
}

// simulate drives one autopilot run to completion or the frame limit.
// Returns the final score, frame count, and what ended the run
// ("survived" when the frame limit was hit).
func simulate(level levels.Level, cfg sim.Config, seed int64, maxFrames int) (score, frames int, cause string, err error) {
	world, err := levels.Materialize(level, cfg, seed)
	if err != nil {
		return 0, 0, "", err
	}

	for frame := 0; frame < maxFrames; frame++ {
		dec := autopilot.Decide(world.Snapshot())
		result := world.Step(dec.Jump)
		if result.GameOver {
			return world.Score, world.Frame, world.Cause.String(), nil
		}
	}

	return world.Score, world.Frame, "survived", nil
}
