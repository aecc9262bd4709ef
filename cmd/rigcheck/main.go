package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rigcheck",
		Short: "Estimate game frame rates from benchmark-scored hardware catalogs",
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")

	root.AddCommand(importCmd())
	root.AddCommand(matchCmd())
	root.AddCommand(predictCmd())
	root.AddCommand(gamesCmd())
	root.AddCommand(serveCmd())

	return root
}

func importCmd() *cobra.Command {
	var gamesPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the games.json catalog into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(gamesPath)
		},
	}

	cmd.Flags().StringVar(&gamesPath, "games", "", "games.json path (default: from config)")
	return cmd
}

func matchCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "match [text]",
		Short: "Resolve vendor requirement text to a catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(kind, args[0])
		},
	}

	cmd.Flags().StringVar(&kind, "type", "gpu", "hardware type: cpu or gpu")
	return cmd
}

func predictCmd() *cobra.Command {
	var (
		cpuID      string
		gpuID      string
		ramGB      int
		gameSlug   string
		resolution string
		quality    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict FPS for a hardware setup against a game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(cpuID, gpuID, ramGB, gameSlug, resolution, quality, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&cpuID, "cpu", "", "CPU catalog id (e.g. i5-12400f)")
	cmd.Flags().StringVar(&gpuID, "gpu", "", "GPU catalog id (e.g. rtx-3060)")
	cmd.Flags().IntVar(&ramGB, "ram", 0, "installed RAM in GB (default: from config)")
	cmd.Flags().StringVar(&gameSlug, "game", "", "game slug")
	cmd.Flags().StringVar(&resolution, "resolution", "", "720p, 1080p, 1440p or 4k (default: from config)")
	cmd.Flags().StringVar(&quality, "quality", "", "low, medium, high or ultra (default: from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.MarkFlagRequired("cpu")
	cmd.MarkFlagRequired("gpu")
	cmd.MarkFlagRequired("game")
	return cmd
}

func gamesCmd() *cobra.Command {
	var (
		genre      string
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "games",
		Short: "List the imported game catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGames(genre, limit, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "filter by genre")
	cmd.Flags().IntVar(&limit, "limit", 20, "max games to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "server port (default: from config)")
	return cmd
}
