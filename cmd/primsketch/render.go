package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cwbudde/primsketch/internal/checkpoint"
	"github.com/cwbudde/primsketch/internal/engine"
	"github.com/cwbudde/primsketch/internal/render"
	"github.com/cwbudde/primsketch/internal/resample"
	"github.com/cwbudde/primsketch/internal/shapes"
)

// randomRestartCandidates is how many independent random shapes each
// restart draws before hill-climbing the best of them. Not CLI-exposed;
// --quality only scales m, the number of restarts.
const randomRestartCandidates = 16

var (
	renderShape          string
	renderNumShapes       int
	renderOutputSize      int
	renderAlpha           int
	renderQuality         int
	renderSeed            int64
	renderCheckpointDir   string
	renderCheckpointEvery int
	renderCPUProfile      string
	renderMemProfile      string
)

var renderCmd = &cobra.Command{
	Use:   "render INFILE OUTFILE",
	Short: "Approximate an image with geometric primitives",
	Long: `Render approximates INFILE as an ordered sequence of geometric
primitives drawn with alpha over a solid background, writing the result
to OUTFILE. OUTFILE's extension selects raster or vector (.svg) output.`,
	Args: cobra.ExactArgs(2),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderShape, "shape", "t", "triangle", "Shape type: triangle, ellipse, rectangle, rotatedrectangle")
	renderCmd.Flags().IntVarP(&renderNumShapes, "num-shapes", "n", 100, "Number of shapes to fit")
	renderCmd.Flags().IntVarP(&renderOutputSize, "output-size", "s", 1024, "Output size (longest side, in pixels)")
	renderCmd.Flags().IntVarP(&renderAlpha, "alpha", "a", 128, "Shape alpha, 1-255")
	renderCmd.Flags().IntVarP(&renderQuality, "quality", "q", 2, "Search quality, 1-4 (higher is slower and more thorough)")
	renderCmd.Flags().Int64Var(&renderSeed, "seed", 1, "Base RNG seed")
	renderCmd.Flags().StringVar(&renderCheckpointDir, "checkpoint-dir", "./checkpoints", "Directory to write checkpoints to")
	renderCmd.Flags().IntVar(&renderCheckpointEvery, "checkpoint-every", 0, "Write a checkpoint every N shapes (0 disables checkpointing)")
	renderCmd.Flags().StringVar(&renderCPUProfile, "cpuprofile", "", "Write CPU profile to file")
	renderCmd.Flags().StringVar(&renderMemProfile, "memprofile", "", "Write memory profile to file")
	rootCmd.AddCommand(renderCmd)
}

// qualityToM maps --quality to m, the per-step restart-pipeline count:
// 1->1, 2->8, 3->16, 4->32.
func qualityToM(quality int) (int, error) {
	switch quality {
	case 1:
		return 1, nil
	case 2:
		return 8, nil
	case 3:
		return 16, nil
	case 4:
		return 32, nil
	default:
		return 0, fmt.Errorf("quality must be between 1 and 4, got %d", quality)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	inPath, outPath := args[0], args[1]

	if renderAlpha < 1 || renderAlpha > 255 {
		return fmt.Errorf("alpha must be between 1 and 255, got %d", renderAlpha)
	}
	if renderNumShapes < 1 {
		return fmt.Errorf("num-shapes must be positive, got %d", renderNumShapes)
	}
	m, err := qualityToM(renderQuality)
	if err != nil {
		return err
	}
	kind, err := shapes.ParseKind(strings.ToLower(renderShape))
	if err != nil {
		return err
	}

	if renderCPUProfile != "" {
		f, err := os.Create(renderCPUProfile)
		if err != nil {
			return fmt.Errorf("create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	img, err := imaging.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}

	target := resample.ToWorkingCanvas(img, resample.DefaultWorkingArea)
	workW, workH := target.W, target.H
	slog.Info("loaded input", "path", inPath, "working_width", workW, "working_height", workH)

	nWorkers := runtime.NumCPU()
	model := engine.New(target, nWorkers, renderSeed)

	var store *checkpoint.FSStore
	id := uuid.NewString()
	cfg := checkpoint.Config{
		InFile: inPath, Shape: kind.String(), NumShapes: renderNumShapes,
		OutputSize: renderOutputSize, Alpha: uint8(renderAlpha), Quality: renderQuality,
		Seed: renderSeed,
	}
	if renderCheckpointEvery > 0 {
		store, err = checkpoint.NewFSStore(renderCheckpointDir)
		if err != nil {
			return fmt.Errorf("open checkpoint store: %w", err)
		}
	}

	start := time.Now()
	for i := 0; i < renderNumShapes; i++ {
		_, _, ok := model.Step(kind, uint8(renderAlpha), randomRestartCandidates, m)
		if !ok {
			return fmt.Errorf("internal invariant violation: step %d produced no usable shape", i)
		}
		if store != nil && (i+1)%renderCheckpointEvery == 0 {
			cp, err := checkpoint.New(id, cfg, model.Score(), model.History())
			if err != nil {
				return fmt.Errorf("build checkpoint: %w", err)
			}
			if err := store.Save(cp); err != nil {
				slog.Warn("failed to save checkpoint", "error", err)
			}
		}
	}
	elapsed := time.Since(start)
	slog.Info("render complete", "shapes", renderNumShapes, "score", model.Score(), "elapsed", elapsed)

	if err := writeOutput(model, outPath); err != nil {
		return err
	}

	if renderMemProfile != "" {
		f, err := os.Create(renderMemProfile)
		if err != nil {
			return fmt.Errorf("create memory profile: %w", err)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("write memory profile: %w", err)
		}
	}

	fmt.Printf("wrote %s (%d %s shapes, score %.6f, %s)\n", outPath, renderNumShapes, kind, model.Score(), elapsed)
	return nil
}

func writeOutput(m *engine.Model, outPath string) error {
	if strings.EqualFold(filepath.Ext(outPath), ".svg") {
		doc := render.SVG(m, renderOutputSize)
		if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		return nil
	}

	out := render.Raster(m, renderOutputSize)
	if err := imaging.Save(render.ToImage(out), outPath); err != nil {
		return fmt.Errorf("write raster: %w", err)
	}
	return nil
}
