package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gamebencher/rigcheck/internal/config"
	"github.com/gamebencher/rigcheck/internal/store"
	"github.com/gamebencher/rigcheck/pkg/advise"
	"github.com/gamebencher/rigcheck/pkg/hardware"
	"github.com/gamebencher/rigcheck/pkg/predict"
	"github.com/gamebencher/rigcheck/pkg/server"
)

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func loadHardware(cfg *config.Config) (*hardware.Store, error) {
	hw, err := hardware.Load(cfg.Catalog.CPUPath, cfg.Catalog.GPUPath)
	if err != nil {
		return nil, fmt.Errorf("load hardware catalogs: %w", err)
	}
	return hw, nil
}

func runImport(gamesPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if gamesPath == "" {
		gamesPath = cfg.Catalog.GamesPath
	}

	games, err := store.LoadGamesFile(gamesPath)
	if err != nil {
		return err
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.UpsertGames(ctx, games); err != nil {
		return fmt.Errorf("import games: %w", err)
	}

	total, err := db.CountGames(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "imported %d games (%d total in catalog)\n", len(games), total)
	return nil
}

func runMatch(kind, text string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	hw, err := loadHardware(cfg)
	if err != nil {
		return err
	}

	switch kind {
	case "cpu":
		cpu := hw.MatchCPU(text)
		if cpu == nil {
			fmt.Println("no match")
			return nil
		}
		fmt.Printf("%s  id=%s  score=%.0f/100  tier=%s  year=%d\n",
			cpu.Name, cpu.ID, cpu.Score, cpu.Tier, cpu.Year)
	case "gpu":
		gpu := hw.MatchGPU(text)
		if gpu == nil {
			fmt.Println("no match")
			return nil
		}
		fmt.Printf("%s  id=%s  score=%.0f/100  tier=%s  vram=%dGB\n",
			gpu.Name, gpu.ID, gpu.Score, gpu.Tier, gpu.VRAM)
	default:
		return fmt.Errorf("unknown hardware type %q (want cpu or gpu)", kind)
	}
	return nil
}

func runPredict(cpuID, gpuID string, ramGB int, gameSlug, resolution, quality string, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	hw, err := loadHardware(cfg)
	if err != nil {
		return err
	}

	cpu := hw.CPUByID(cpuID)
	if cpu == nil {
		return fmt.Errorf("unknown cpu id %q (see rigcheck match)", cpuID)
	}
	gpu := hw.GPUByID(gpuID)
	if gpu == nil {
		return fmt.Errorf("unknown gpu id %q (see rigcheck match)", gpuID)
	}
	if ramGB <= 0 {
		ramGB = cfg.Predict.DefaultRAMGB
	}
	if resolution == "" {
		resolution = cfg.Predict.DefaultResolution
	}
	if quality == "" {
		quality = cfg.Predict.DefaultQuality
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	game, err := db.GetGameBySlug(context.Background(), gameSlug)
	if err != nil {
		return err
	}

	engine := predict.NewEngine(hw)
	prediction := engine.PredictFPS(cpu, gpu, ramGB, game.Requirements, resolution, quality)
	upgrades := advise.Recommend(cpu, gpu, ramGB, prediction.Bottleneck)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"game":       game.Name,
			"prediction": prediction,
			"upgrades":   upgrades,
		})
	}

	fmt.Printf("%s @ %s/%s on %s + %s (%dGB RAM)\n\n",
		game.Name, resolution, quality, cpu.Name, gpu.Name, ramGB)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "FPS\t%d (%d-%d)\n", prediction.FPS, prediction.FPSLow, prediction.FPSHigh)
	fmt.Fprintf(w, "BOTTLENECK\t%s\n", prediction.Bottleneck)
	fmt.Fprintf(w, "MEETS MINIMUM\t%v\n", prediction.CanRunMin)
	fmt.Fprintf(w, "MEETS RECOMMENDED\t%v\n", prediction.CanRunRec)
	fmt.Fprintf(w, "CONFIDENCE\t%s (from %s requirements)\n", prediction.Confidence, prediction.Source)
	if err := w.Flush(); err != nil {
		return err
	}

	for _, rec := range upgrades {
		fmt.Printf("\nupgrade %s (%s priority): %s\n", rec.Type, rec.Priority, rec.Reason)
		for _, p := range rec.Products {
			fmt.Printf("  %-22s %-10s %s — %s\n", p.Name, p.PriceUSD, p.Tier, p.Reason)
		}
	}
	return nil
}

func runGames(genre string, limit int, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	games, err := db.ListGames(context.Background(), store.ListOpts{
		Genre: genre,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(games)
	}

	if len(games) == 0 {
		fmt.Println("no games found (try importing the catalog first: rigcheck import)")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tNAME\tRECOMMENDATIONS\tMIN GPU")
	for _, g := range games {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			g.Slug, g.Name, g.Recommendations, g.Requirements.Minimum.GPU)
	}
	return w.Flush()
}

func runServe(port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if port == 0 {
		port = cfg.Server.Port
	}

	hw, err := loadHardware(cfg)
	if err != nil {
		return err
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	engine := predict.NewEngine(hw)
	srv := server.New(db, engine, port, cfg.Predict.DefaultResolution, cfg.Predict.DefaultQuality)
	return srv.ListenAndServe()
}
