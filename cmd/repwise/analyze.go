package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ayusman/repwise/internal/analysis"
	"github.com/ayusman/repwise/internal/detector"
	"github.com/ayusman/repwise/internal/exercise"
	"github.com/ayusman/repwise/internal/store"
	"github.com/ayusman/repwise/internal/video"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <video>",
	Short: "Analyze an exercise video and report form accuracy and mistakes",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringP("exercise", "e", "", "exercise type: pushup, pullup, plank, squat, tricep_dips")
	_ = analyzeCmd.MarkFlagRequired("exercise")
	analyzeCmd.Flags().Bool("no-save", false, "skip recording the run in the history database")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	kindFlag, _ := cmd.Flags().GetString("exercise")
	noSave, _ := cmd.Flags().GetBool("no-save")

	kind := exercise.Kind(kindFlag)
	if _, err := exercise.Lookup(kind); err != nil {
		return fmt.Errorf("%q: %w", kindFlag, err)
	}

	if !video.AllowedFormat(videoPath) {
		return fmt.Errorf("unsupported video format: %s", filepath.Ext(videoPath))
	}

	outputDir := viper.GetString("output-dir")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	det := newDetector()
	defer det.Close()

	analyzer := analysis.New(analysis.Config{
		Detector:  det,
		ModelDir:  viper.GetString("model-dir"),
		OutputDir: outputDir,
	})

	result, err := analyzer.Analyze(videoPath, kind)
	if err != nil {
		return err
	}

	printResult(result)

	if !noSave {
		if err := saveResult(result); err != nil {
			log.Printf("Failed to record analysis run: %v", err)
		}
	}

	return nil
}

// newDetector tries MediaPipe first and falls back to the mock detector,
// which yields a degraded run instead of a crash on hosts without Python.
func newDetector() detector.Detector {
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		log.Println("Using MediaPipe pose detection")
		return mp
	}
	log.Println("MediaPipe not available, using mock detector")
	return detector.NewMockDetector()
}

func printResult(result *analysis.Result) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	bold.Printf("\n%s analysis\n", result.ExerciseName)
	if result.MockResult {
		yellow.Println("Degraded analysis - model artifacts unavailable")
	}

	accColor := green
	if result.Accuracy < 70 {
		accColor = red
	} else if result.Accuracy < 85 {
		accColor = yellow
	}
	accColor.Printf("Accuracy: %d%%\n", result.Accuracy)

	if len(result.Mistakes) == 0 {
		green.Println("No mistakes detected")
	} else {
		fmt.Println("Mistakes:")
		for _, m := range result.Mistakes {
			red.Printf("  - %s\n", m)
		}
	}

	fmt.Printf("Frames with detected pose: %d\n", result.TotalFrames)
	if result.OutputVideo != "" {
		fmt.Printf("Annotated video: %s\n", filepath.Join(viper.GetString("output-dir"), result.OutputVideo))
	}
}

func saveResult(result *analysis.Result) error {
	dbPath := viper.GetString("db")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return err
	}

	st, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	return st.Analyses().Create(&store.Analysis{
		ID:           result.ID,
		ExerciseType: result.ExerciseType,
		ExerciseName: result.ExerciseName,
		Accuracy:     result.Accuracy,
		Mistakes:     result.Mistakes,
		OutputVideo:  result.OutputVideo,
		TotalFrames:  result.TotalFrames,
		MockResult:   result.MockResult,
	})
}
