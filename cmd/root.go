/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string
var databasePath string
var minMs int64
var excludePodcasts bool
var topCount int
var fromStr string
var toStr string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spotify-rediscover",
	Short: "Surfaces forgotten and anomalous listening in a Spotify export",
	Long: `Analyzes a Spotify extended streaming history export
(StreamingHistory*.json) for short-lived intensity spikes, sharp
peak-then-abandonment patterns, dormant former favorites, and one-album
obsessions.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.spotify-rediscover.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&databasePath, "database", "d", "./rediscover.db", "Path to the SQLite play database")
	viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))

	rootCmd.PersistentFlags().Int64Var(
		&minMs, "min_ms", 0, "Minimum ms_played for a row to count as a play")
	viper.BindPFlag("min_ms", rootCmd.PersistentFlags().Lookup("min_ms"))

	rootCmd.PersistentFlags().BoolVar(
		&excludePodcasts, "exclude_podcasts", false, "Exclude podcast rows from the analysis")
	viper.BindPFlag("exclude_podcasts", rootCmd.PersistentFlags().Lookup("exclude_podcasts"))

	rootCmd.PersistentFlags().IntVar(
		&topCount, "top", 10, "Top N for the console all-time artist list")
	viper.BindPFlag("top", rootCmd.PersistentFlags().Lookup("top"))

	rootCmd.PersistentFlags().StringVar(
		&fromStr, "from", "", "Only analyze plays from this date on (YYYY, YYYY-MM, or YYYY-MM-DD)")
	viper.BindPFlag("from", rootCmd.PersistentFlags().Lookup("from"))

	rootCmd.PersistentFlags().StringVar(
		&toStr, "to", "", "Only analyze plays up to this date (YYYY, YYYY-MM, or YYYY-MM-DD, inclusive)")
	viper.BindPFlag("to", rootCmd.PersistentFlags().Lookup("to"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".spotify-rediscover" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".spotify-rediscover")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}
