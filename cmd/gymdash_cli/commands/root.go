package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/2beens/gymdash/internal/catalog"
	"github.com/2beens/gymdash/internal/recommendations"
	"github.com/2beens/gymdash/internal/workouts"
	"github.com/2beens/gymdash/pkg"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	workoutsPath string
	catalogPath  string
	jsonOutput   bool
	now          func() time.Time
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{now: time.Now}

	rootCmd := &cobra.Command{
		Use:           "gymdash-cli",
		Short:         "Workout stats, progress and recommendations from a workouts export",
		Long:          `gymdash-cli reads a workouts JSON export (a JSON array, or the body of GET /workouts) and prints analytics for it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.workoutsPath, "workouts", "w", "workouts.json", "path to the workouts JSON export")
	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "path to an exercise catalog TOML file (built-in catalog if empty)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print JSON instead of text")

	rootCmd.AddCommand(NewStatsCommand(opts))
	rootCmd.AddCommand(NewProgressCommand(opts))
	rootCmd.AddCommand(NewRecommendCommand(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (o *rootOptions) loadWorkouts() ([]workouts.Workout, error) {
	exists, err := pkg.PathExists(o.workoutsPath, false)
	if err != nil {
		return nil, fmt.Errorf("failed to check workouts file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("workouts file [%s] not found, pass one with --workouts", o.workoutsPath)
	}

	store, err := workouts.NewStoreFromExport(o.workoutsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load workouts: %w", err)
	}
	ws, _ := store.Snapshot()
	return ws, nil
}

func (o *rootOptions) loadCatalog() (*catalog.Catalog, error) {
	if o.catalogPath == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.Load(o.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}

func (o *rootOptions) engine() (*recommendations.Engine, *catalog.Catalog, error) {
	c, err := o.loadCatalog()
	if err != nil {
		return nil, nil, err
	}
	return recommendations.NewEngine(recommendations.DefaultConfig(), c), c, nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
