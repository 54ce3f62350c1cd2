// Command export-dataset samples a synthetic traffic dataset and persists it
// to a local SQLite file, one uuid-tagged batch per run. The HTTP service
// stays stateless; this is the offline path for anyone who wants the data in
// a queryable form instead of a JSON response.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"

	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/config"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/dataset"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/db"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/graph"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/simulate"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	cfg := config.Load()

	samples := flag.Int("samples", cfg.ExportSamples, "Number of records to sample")
	output := flag.String("output", cfg.DatabasePath, "SQLite file to write the dataset to")
	seed := flag.Int64("seed", cfg.GraphSeed, "Graph generation seed (0 = seed from the clock)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g := graph.Build(rand.New(rand.NewSource(*seed)))
	sim := simulate.New(g.Nodes, rand.New(rand.NewSource(*seed+1)))
	sampler := dataset.New(g.Nodes, sim, rand.New(rand.NewSource(*seed+2)))

	log.Printf("Road network ready: %d nodes, %d edges (seed %d)", len(g.Nodes), len(g.Edges), *seed)

	records := sampler.Sample(*samples)

	database, err := db.Connect(*output)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *output, err)
	}
	defer database.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	batchID, err := database.InsertBatch(ctx, time.Now(), records)
	if err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}

	log.Printf("Exported %d records to %s (batch %s)", len(records), *output, batchID)
}
