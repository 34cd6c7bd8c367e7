package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/cwbudde/primsketch/internal/checkpoint"
	"github.com/cwbudde/primsketch/internal/engine"
	"github.com/cwbudde/primsketch/internal/render"
	"github.com/cwbudde/primsketch/internal/resample"
	"github.com/cwbudde/primsketch/internal/shapes"
)

var (
	resumeAdd           int
	resumeCheckpointDir string
)

var resumeCmd = &cobra.Command{
	Use:   "resume ID OUTFILE",
	Short: "Continue a render from a saved checkpoint",
	Long: `Resume replays a checkpoint's committed shapes onto a fresh canvas,
re-reads the checkpoint's original input image, and continues the search
for --add more shapes before writing OUTFILE.`,
	Args: cobra.ExactArgs(2),
	RunE: runResume,
}

func init() {
	resumeCmd.Flags().IntVar(&resumeAdd, "add", 50, "Additional shapes to search for before writing output")
	resumeCmd.Flags().StringVar(&resumeCheckpointDir, "checkpoint-dir", "./checkpoints", "Directory checkpoints are read from")
	rootCmd.AddCommand(resumeCmd)
}

func runResume(cmd *cobra.Command, args []string) error {
	id, outPath := args[0], args[1]
	if resumeAdd < 1 {
		return fmt.Errorf("--add must be positive, got %d", resumeAdd)
	}

	store, err := checkpoint.NewFSStore(resumeCheckpointDir)
	if err != nil {
		return fmt.Errorf("open checkpoint store: %w", err)
	}
	cp, err := store.Load(id)
	if err != nil {
		return fmt.Errorf("load checkpoint: %w", err)
	}
	if err := cp.Validate(); err != nil {
		return fmt.Errorf("invalid checkpoint: %w", err)
	}

	history, err := cp.History()
	if err != nil {
		return fmt.Errorf("decode checkpoint history: %w", err)
	}

	kind, err := shapes.ParseKind(cp.Config.Shape)
	if err != nil {
		return err
	}

	img, err := imaging.Open(cp.Config.InFile)
	if err != nil {
		return fmt.Errorf("open checkpoint input %q: %w", cp.Config.InFile, err)
	}
	target := resample.ToWorkingCanvas(img, resample.DefaultWorkingArea)

	m, err := qualityToM(cp.Config.Quality)
	if err != nil {
		return err
	}

	model := engine.Resume(target, runtime.NumCPU(), cp.Config.Seed, history)
	slog.Info("resumed checkpoint", "id", id, "committed_shapes", len(history), "score", model.Score())

	start := time.Now()
	for i := 0; i < resumeAdd; i++ {
		_, _, ok := model.Step(kind, cp.Config.Alpha, randomRestartCandidates, m)
		if !ok {
			return fmt.Errorf("internal invariant violation: step %d produced no usable shape", i)
		}
	}
	elapsed := time.Since(start)

	if strings.EqualFold(filepath.Ext(outPath), ".svg") {
		doc := render.SVG(model, cp.Config.OutputSize)
		if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
	} else {
		out := render.Raster(model, cp.Config.OutputSize)
		if err := imaging.Save(render.ToImage(out), outPath); err != nil {
			return fmt.Errorf("write raster: %w", err)
		}
	}

	updated, err := checkpoint.New(id, cp.Config, model.Score(), model.History())
	if err == nil {
		if err := store.Save(updated); err != nil {
			slog.Warn("failed to update checkpoint", "error", err)
		}
	}

	fmt.Printf("wrote %s (%d total shapes, score %.6f, %s)\n", outPath, len(model.History()), model.Score(), elapsed)
	return nil
}
