// Command repwise analyzes exercise videos for form mistakes.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "repwise",
	Short: "repwise - exercise form analysis from video",
	Long: `repwise analyzes exercise videos with a pose-estimation model and a
trained sequence classifier, scoring form accuracy and pointing out mistakes.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("model-dir", "models", "directory holding classifier weights and angle statistics")
	rootCmd.PersistentFlags().String("output-dir", "output", "directory receiving annotated output videos")
	rootCmd.PersistentFlags().String("db", defaultDBPath(), "path to the analysis history database")

	_ = viper.BindPFlag("model-dir", rootCmd.PersistentFlags().Lookup("model-dir"))
	_ = viper.BindPFlag("output-dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	_ = viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	viper.SetEnvPrefix("REPWISE")
	viper.AutomaticEnv()
}

func defaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "repwise.db"
	}
	return filepath.Join(homeDir, ".repwise", "repwise.db")
}
