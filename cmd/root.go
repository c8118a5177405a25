/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
	"errors"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tfimesh",
	Short: "Structured grid generation by transfinite interpolation",
	Long: `
Generates structured surface and volume grids by transfinite interpolation of
boundary curves. Block geometry comes from a boundary curve file or from the
corner points listed in a YAML job file.

tfimesh 3D -F geom.dat --nxi 100 --neta 50 --nzeta 50 -o mesh
tfimesh 2D -I face.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if err = setupLogging(viper.GetString("logLevel")); err != nil {
			return
		}
		if viper.GetBool("profile") {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
			log.Info().Msg("CPU profiling enabled")
		}
		return
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// execute runs the command line and stops the profiler whether or not the run failed
func execute() error {
	defer stopProfiler()
	return rootCmd.Execute()
}

func stopProfiler() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tfimesh.yaml)")
	rootCmd.PersistentFlags().String("logLevel", "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().IntP("parallel", "p", 0, "goroutines filling the volume interior, 0 uses every CPU")
	rootCmd.PersistentFlags().Bool("profile", false, "write a CPU profile to the current directory")
	for _, name := range []string{"logLevel", "parallel", "profile"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
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
		// Search config in home directory with name ".tfimesh" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".tfimesh")
	}
	viper.SetEnvPrefix("TFIMESH")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	} else {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Printf("unable to read config file: %s\n", err)
		}
	}
}

func setupLogging(level string) (err error) {
	var (
		lvl zerolog.Level
	)
	if lvl, err = zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(lvl)
	return
}
