package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ayusman/repwise/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded analysis runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringP("exercise", "e", "", "only show runs for this exercise type")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("exercise")

	st, err := store.New(viper.GetString("db"))
	if err != nil {
		return err
	}
	defer st.Close()

	var analyses []*store.Analysis
	if kind != "" {
		analyses, err = st.Analyses().ListByExercise(kind)
	} else {
		analyses, err = st.Analyses().List()
	}
	if err != nil {
		return err
	}

	if len(analyses) == 0 {
		fmt.Println("No recorded runs")
		return nil
	}

	bold := color.New(color.Bold)
	for _, a := range analyses {
		bold.Printf("%s  %s  %d%%", a.CreatedAt.Format("2006-01-02 15:04"), a.ExerciseName, a.Accuracy)
		if a.MockResult {
			fmt.Print("  (degraded)")
		}
		fmt.Println()
		for _, m := range a.Mistakes {
			fmt.Printf("    - %s\n", m)
		}
	}

	return nil
}
