package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/primsketch/internal/checkpoint"
)

var checkpointsDir string

var checkpointsCmd = &cobra.Command{
	Use:   "checkpoints",
	Short: "Manage saved render checkpoints",
}

var listCheckpointsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available checkpoints",
	RunE:  runListCheckpoints,
}

var removeCheckpointCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Delete a checkpoint",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveCheckpoint,
}

func init() {
	rootCmd.AddCommand(checkpointsCmd)
	checkpointsCmd.AddCommand(listCheckpointsCmd)
	checkpointsCmd.AddCommand(removeCheckpointCmd)
	checkpointsCmd.PersistentFlags().StringVar(&checkpointsDir, "checkpoint-dir", "./checkpoints", "Directory checkpoints are stored in")
}

func runListCheckpoints(cmd *cobra.Command, args []string) error {
	store, err := checkpoint.NewFSStore(checkpointsDir)
	if err != nil {
		return fmt.Errorf("open checkpoint store: %w", err)
	}
	infos, err := store.List()
	if err != nil {
		return fmt.Errorf("list checkpoints: %w", err)
	}
	if len(infos) == 0 {
		fmt.Println("No checkpoints found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tINPUT\tSHAPE\tPROGRESS\tSCORE\tTIMESTAMP")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%.6f\t%s\n",
			info.ID, info.InFile, info.Shape, info.Progress, info.NumShapes,
			info.Score, info.Timestamp.Format("2006-01-02 15:04:05"))
	}
	w.Flush()
	return nil
}

func runRemoveCheckpoint(cmd *cobra.Command, args []string) error {
	store, err := checkpoint.NewFSStore(checkpointsDir)
	if err != nil {
		return fmt.Errorf("open checkpoint store: %w", err)
	}
	if err := store.Delete(args[0]); err != nil {
		return fmt.Errorf("delete checkpoint: %w", err)
	}
	slog.Info("checkpoint removed", "id", args[0])
	return nil
}
