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
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Cfg holds the merged flag, environment and config file settings
var Cfg = viper.New()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gravflux",
	Short: "Face fluxes for a fluid held up by gravity on a finite volume mesh",
	Long: `gravflux computes the Godunov face fluxes of a two dimensional fluid under uniform
gravity, where the floor of the domain supports the fluid and every other boundary is a wall.

Settings come from command line flags, from environment variables named GRAVFLUX_<flag>,
or from a config file given with --config (default $HOME/.gravflux.yaml).`,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
	})
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.gravflux.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log construction details at debug level")
	Cfg.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	Cfg.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	Cfg.SetEnvPrefix("GRAVFLUX")
	Cfg.AutomaticEnv()
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() (err error) {
	var (
		cfgPath = Cfg.GetString("config")
		home    string
	)
	if cfgPath != "" {
		if cfgPath, err = homedir.Expand(cfgPath); err != nil {
			return
		}
		Cfg.SetConfigFile(cfgPath)
		if err = Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("gravflux: problem reading configuration file: %v", err)
		}
	} else if home, err = homedir.Dir(); err == nil {
		Cfg.AddConfigPath(home)
		Cfg.SetConfigName(".gravflux")
		if err = Cfg.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("gravflux: problem reading configuration file: %v", err)
			}
			err = nil
		}
	} else {
		// No home directory means no default config file
		err = nil
	}
	if Cfg.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return
}
