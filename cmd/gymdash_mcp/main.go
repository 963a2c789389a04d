// Package main runs the gymdash MCP server over stdio (for local MCP clients).
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
// Workouts come from a JSON export (-workouts) or, when postgres is enabled
// in the config, from the workouts table.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/2beens/gymdash/internal/catalog"
	"github.com/2beens/gymdash/internal/config"
	"github.com/2beens/gymdash/internal/db"
	gymdashmcp "github.com/2beens/gymdash/internal/mcp"
	"github.com/2beens/gymdash/internal/recommendations"
	"github.com/2beens/gymdash/internal/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	workoutsPath := flag.String("workouts", "", "path to a workouts JSON export, overrides postgres")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	exerciseCatalog := catalog.Default()
	if cfg.CatalogPath != "" {
		exerciseCatalog, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("load catalog: %v", err)
		}
	}

	ctx := context.Background()
	store, err := loadStore(ctx, cfg, *workoutsPath)
	if err != nil {
		log.Fatalf("load workouts: %v", err)
	}

	service := gymdashmcp.NewContextService(
		store,
		exerciseCatalog,
		recommendations.NewEngine(cfg.Analytics, exerciseCatalog),
		nil,
	)
	server := gymdashmcp.NewServer(service)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}

func loadStore(ctx context.Context, cfg *config.Config, workoutsPath string) (*workouts.Store, error) {
	if workoutsPath != "" || !cfg.PostgresEnabled {
		if workoutsPath == "" {
			log.Printf("no workouts export given and postgres disabled, starting empty")
			return workouts.NewStore(), nil
		}
		return workouts.NewStoreFromExport(workoutsPath)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("GYMDASH_PG_PASS"),
		MaxConns:       2,
		TracingEnabled: false,
	})
	if err != nil {
		return nil, err
	}
	defer dbPool.Close()

	ws, err := workouts.NewRepo(dbPool).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	store := workouts.NewStore()
	if err := store.Load(ws); err != nil {
		return nil, err
	}
	return store, nil
}
