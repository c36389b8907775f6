// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/paleta/internal/config"
	"github.com/thatcatcamp/paleta/internal/export"
	"github.com/thatcatcamp/paleta/internal/handlers"
	"github.com/thatcatcamp/paleta/internal/swatch"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Paleta configuration",
	Long:  "View and modify Paleta configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(config.GetString(args[0]))
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := config.Set(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Set %s = %s\n", args[0], args[1])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		all := config.GetAll()
		keys := make([]string, 0, len(all))
		for key := range all {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%s: %v\n", key, all[key])
		}
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig initializes the configuration system
func initConfig() error {
	configPath := os.Getenv("PALETA_CONFIG")
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".paleta", "config.yaml")
	}

	if err := config.InitConfig(configPath); err != nil {
		return err
	}

	// The rasterizer is silent unless asked
	if config.GetBool("log.debug") {
		gg.SetLogger(slog.Default())
	}
	return nil
}

// swatchOptions applies the swatch.* settings over the default layout
func swatchOptions() swatch.Options {
	o := swatch.DefaultOptions()
	if w := config.GetInt("swatch.width"); w > 0 {
		o.Width = w
	}
	if h := config.GetInt("swatch.height"); h > 0 {
		o.Height = h
	}
	if r := config.GetFloat64("swatch.radius"); r > 0 {
		o.Radius = r
	}
	if s := config.GetFloat64("swatch.spacing"); s > 0 {
		o.Spacing = s
	}
	// An empty watermark is a valid way to turn it off
	if config.IsSet("swatch.watermark") {
		o.Watermark = config.GetString("swatch.watermark")
	}
	return o
}

// shareConfig reads the share.* settings
func shareConfig() export.ShareConfig {
	cfg := export.DefaultShareConfig()
	if endpoint := config.GetString("share.endpoint"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if message := config.GetString("share.message"); message != "" {
		cfg.Message = message
	}
	return cfg
}

// exportFilename is the name downloads and saved swatches get
func exportFilename() string {
	if name := config.GetString("export.filename"); name != "" {
		return name
	}
	return export.Filename
}

func handlerConfig() handlers.Config {
	return handlers.Config{
		BaseURL:  config.GetString("server.base_url"),
		Filename: exportFilename(),
		Share:    shareConfig(),
	}
}
