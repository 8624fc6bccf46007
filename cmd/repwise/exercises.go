package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ayusman/repwise/internal/exercise"
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List supported exercises",
	RunE:  runExercises,
}

func init() {
	rootCmd.AddCommand(exercisesCmd)
}

func runExercises(cmd *cobra.Command, args []string) error {
	bold := color.New(color.Bold)

	for _, kind := range exercise.Kinds() {
		profile, err := exercise.Lookup(kind)
		if err != nil {
			return err
		}

		bold.Printf("%s (%s)\n", profile.Name, profile.Kind)
		fmt.Printf("  %s\n", profile.Description)
		fmt.Printf("  Muscles: %s\n\n", strings.Join(profile.Muscles, ", "))
	}

	return nil
}
