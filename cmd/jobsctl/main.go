package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

var (
	cfgFile  string
	settings = viper.New()
)

// rootCmd is the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jobsctl",
	Short: "Operate the Flexzo job discovery server.",
	Long: `jobsctl queries a running server over its MCP stream and seeds the
graph upstream with regional job datasets.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "warn", "log level: debug, info, warn, error")
	_ = settings.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("loglevel"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	settings.AutomaticEnv()
	if cfgFile == "" {
		return
	}
	settings.SetConfigFile(cfgFile)
	if err := settings.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "read config %s: %v\n", cfgFile, err)
		os.Exit(1)
	}
}

func newLogger() *logging.Logger {
	return logging.New(settings.GetString("log_level"), false)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
