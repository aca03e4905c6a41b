package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"sync"

	"github.com/dmchurch/earthgen"
	"github.com/gorilla/mux"
)

var (
	planetMu sync.RWMutex
	planet   *earthgen.Planet
)

var (
	addr     = ":3333"
	settings = ""
	gridSize = 5
	seed     = "earthgen"
)

func init() {
	flag.StringVar(&addr, "addr", addr, "listen address")
	flag.StringVar(&settings, "settings", settings, "JSON settings file")
	flag.IntVar(&gridSize, "grid_size", gridSize, "grid subdivision level (0..10)")
	flag.StringVar(&seed, "seed", seed, "elevation seed")
}

func main() {
	flag.Parse()

	// Initialize the config.
	cfg := earthgen.NewConfig()
	if settings != "" {
		var err error
		if cfg, err = earthgen.LoadConfig(settings); err != nil {
			log.Fatal(err)
		}
	} else {
		cfg.GridSize = gridSize
		cfg.Seed = seed
	}

	// Initialize the planet.
	p := earthgen.NewPlanet()
	if err := p.Generate(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
	setPlanet(p)

	// Start the server.
	log.Fatal(http.ListenAndServe(addr, newRouter()))
}

func newRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/planet", planetHandler).Methods(http.MethodGet)
	router.HandleFunc("/tiles/{id:[0-9]+}", tileHandler).Methods(http.MethodGet)
	router.HandleFunc("/pick/{lat}/{lon}", pickHandler).Methods(http.MethodGet)
	router.HandleFunc("/layers/{name}", layerHandler).Methods(http.MethodGet)
	router.HandleFunc("/geojson/{name}", geoJSONHandler).Methods(http.MethodGet)
	router.HandleFunc("/generate", generateHandler).Methods(http.MethodPost)
	router.HandleFunc("/ws", wsHandler)
	return router
}

func currentPlanet() *earthgen.Planet {
	planetMu.RLock()
	defer planetMu.RUnlock()
	return planet
}

func setPlanet(p *earthgen.Planet) {
	planetMu.Lock()
	planet = p
	planetMu.Unlock()
}
