package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/ayusman/repwise/internal/angles"
	"github.com/ayusman/repwise/internal/classifier"
	"github.com/ayusman/repwise/internal/exercise"
	"github.com/ayusman/repwise/internal/video"
)

var statsCmd = &cobra.Command{
	Use:   "stats <video>",
	Short: "Compute reference angle statistics from a correct-form video",
	Long: `stats extracts per-frame joint angles from a video of correctly
performed repetitions and writes their mean as a reference-statistics
artifact for mistake detection.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringP("exercise", "e", "", "exercise type: pushup, pullup, plank, squat, tricep_dips")
	_ = statsCmd.MarkFlagRequired("exercise")
	statsCmd.Flags().StringP("out", "o", "", "output path for the statistics artifact")
	_ = statsCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	kindFlag, _ := cmd.Flags().GetString("exercise")
	outPath, _ := cmd.Flags().GetString("out")

	kind := exercise.Kind(kindFlag)
	profile, err := exercise.Lookup(kind)
	if err != nil {
		return fmt.Errorf("%q: %w", kindFlag, err)
	}

	det := newDetector()
	defer det.Close()

	source := video.NewFileSource(videoPath)
	if err := source.Open(); err != nil {
		return err
	}
	defer source.Close()

	width := float64(source.Width())
	height := float64(source.Height())

	var frames [][]float64
	for {
		frame, err := source.ReadFrame()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		lm, err := det.Detect(frame)
		frame.Close()
		if err != nil {
			log.Printf("Detection failed: %v", err)
			lm = nil
		}

		vec := make([]float64, profile.InputSize)
		if lm != nil {
			vec, err = angles.Extract(kind, lm, width, height)
			if err != nil {
				return err
			}
		}
		frames = append(frames, vec)
	}

	stats, err := classifier.ComputeStats(frames)
	if err != nil {
		return err
	}

	if err := classifier.SaveStats(outPath, stats); err != nil {
		return err
	}

	fmt.Printf("Wrote statistics for %d frames to %s\n", len(frames), outPath)
	return nil
}
