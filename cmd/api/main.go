package main

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/config"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/dataset"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/graph"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/handlers"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/simulate"
)

func main() {
	// Load base .env first, then .env.local (which overrides for local
	// development).
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	cfg := config.Load()

	seed := cfg.GraphSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Building road network (seed %d)", seed)

	// The graph, simulator and sampler each get their own derived source so
	// prediction traffic never perturbs dataset sampling.
	g := graph.Build(rand.New(rand.NewSource(seed)))
	sim := simulate.New(g.Nodes, rand.New(rand.NewSource(seed+1)))
	sampler := dataset.New(g.Nodes, sim, rand.New(rand.NewSource(seed+2)))

	log.Printf("Road network ready: %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	graphHandler := handlers.NewGraphHandler(g)
	predictHandler := handlers.NewPredictHandler(sim)
	exportHandler := handlers.NewExportHandler(sampler, cfg.ExportSamples)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Bangalore Traffic GNN API",
			"status":  "running",
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/graph", graphHandler.GetGraph)
	r.Post("/predict", predictHandler.Predict)
	r.Get("/export", exportHandler.Export)

	log.Printf("Traffic API starting on :%s", cfg.Port)
	log.Println("Endpoints:")
	log.Println("  GET  /")
	log.Println("  GET  /graph")
	log.Println("  POST /predict")
	log.Println("  GET  /export")
	log.Println("  GET  /healthz")

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
