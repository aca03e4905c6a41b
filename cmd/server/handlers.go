package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/davvo/mercator"
	"github.com/dmchurch/earthgen"
	"github.com/dmchurch/earthgen/geo"
	"github.com/dmchurch/earthgen/various"
	"github.com/gorilla/mux"
)

func writeJSON(res http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.WriteHeader(status)
	res.Write(data)
}

func writeError(res http.ResponseWriter, status int, err error) {
	writeJSON(res, status, map[string]string{"error": err.Error()})
}

func planetHandler(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, currentPlanet().Summary())
}

type tileClimate struct {
	Season        int     `json:"season"`
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	Precipitation float64 `json:"precipitation"`
	WindDirection float64 `json:"wind_direction"`
	WindSpeed     float64 `json:"wind_speed"`
	Aridity       float64 `json:"aridity"`
	Biome         string  `json:"biome"`
}

type tileInfo struct {
	ID          int           `json:"id"`
	Lat         float64       `json:"lat"`
	Lon         float64       `json:"lon"`
	PixelX      float64       `json:"pixel_x"`
	PixelY      float64       `json:"pixel_y"`
	Neighbors   []int         `json:"neighbors"`
	Elevation   float64       `json:"elevation"`
	Type        string        `json:"type"`
	WaterDepth  float64       `json:"water_depth"`
	Description string        `json:"description"`
	Climate     []tileClimate `json:"climate"`
}

func tileHandler(res http.ResponseWriter, req *http.Request) {
	id, err := strconv.Atoi(mux.Vars(req)["id"])
	if err != nil {
		writeError(res, http.StatusBadRequest, err)
		return
	}
	zoom := 0
	if z := req.URL.Query().Get("z"); z != "" {
		if zoom, err = strconv.Atoi(z); err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}
	}
	p := currentPlanet()
	if id < 0 || id >= len(p.Grid.Tiles) || p.TerrainIsStale() {
		writeError(res, http.StatusNotFound, errors.New("no such tile"))
		return
	}
	writeJSON(res, http.StatusOK, describeTile(p, id, zoom))
}

func describeTile(p *earthgen.Planet, id, zoom int) tileInfo {
	t := &p.Terrain.Tiles[id]
	lat, lon := various.LatLonAround(p.Terrain.Axis, p.Grid.Tiles[id].V)
	x, y := mercator.LatLonToPixels(-1*lat, lon, zoom)
	info := tileInfo{
		ID:         id,
		Lat:        lat,
		Lon:        lon,
		PixelX:     x,
		PixelY:     y,
		Neighbors:  p.Grid.Tiles[id].Tiles,
		Elevation:  t.Elevation,
		Type:       t.Type.String(),
		WaterDepth: t.Water.Depth,
	}
	var first *geo.Season
	var firstBiomes []int
	for i, s := range p.Seasons {
		biomes := s.Biomes(p.Terrain)
		if i == 0 {
			first, firstBiomes = s, biomes
		}
		ct := &s.Tiles[id]
		info.Climate = append(info.Climate, tileClimate{
			Season:        i,
			Temperature:   ct.Temperature,
			Humidity:      ct.Humidity,
			Precipitation: ct.Precipitation,
			WindDirection: ct.Wind.Direction,
			WindSpeed:     ct.Wind.Speed,
			Aridity:       s.Aridity(id),
			Biome:         geo.BiomeName(biomes[id]),
		})
	}
	info.Description = geo.DescribeTile(p.Grid, p.Terrain, first, firstBiomes, id)
	return info
}

func pickHandler(res http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	lat, err := strconv.ParseFloat(vars["lat"], 64)
	if err != nil {
		writeError(res, http.StatusBadRequest, err)
		return
	}
	lon, err := strconv.ParseFloat(vars["lon"], 64)
	if err != nil {
		writeError(res, http.StatusBadRequest, err)
		return
	}
	p := currentPlanet()
	id, ok := p.TileAt(lat, lon)
	if !ok || p.TerrainIsStale() {
		writeError(res, http.StatusNotFound, errors.New("no tile at this position"))
		return
	}
	writeJSON(res, http.StatusOK, describeTile(p, id, 0))
}

func layerHandler(res http.ResponseWriter, req *http.Request) {
	season := 0
	if s := req.URL.Query().Get("season"); s != "" {
		var err error
		if season, err = strconv.Atoi(s); err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}
	}
	vals, err := currentPlanet().Layer(mux.Vars(req)["name"], season)
	switch {
	case errors.Is(err, earthgen.ErrUnknownLayer):
		writeError(res, http.StatusNotFound, err)
	case err != nil:
		writeError(res, http.StatusConflict, err)
	default:
		writeJSON(res, http.StatusOK, vals)
	}
}

func geoJSONHandler(res http.ResponseWriter, req *http.Request) {
	data, err := currentPlanet().GeoJSON(mux.Vars(req)["name"])
	switch {
	case errors.Is(err, earthgen.ErrUnknownFeatures):
		writeError(res, http.StatusNotFound, err)
	case err != nil:
		writeError(res, http.StatusConflict, err)
	default:
		res.Header().Set("Content-Type", "application/geo+json")
		res.Header().Set("Content-Length", strconv.Itoa(len(data)))
		res.Write(data)
	}
}

var (
	generatingMu sync.Mutex
	generating   bool
)

// generateHandler regenerates the planet in the background with the posted
// settings. Progress is broadcast to all websocket clients.
func generateHandler(res http.ResponseWriter, req *http.Request) {
	cfg := earthgen.NewConfig()
	if err := json.NewDecoder(req.Body).Decode(cfg); err != nil {
		writeError(res, http.StatusBadRequest, err)
		return
	}
	cfg.Correct()

	generatingMu.Lock()
	if generating {
		generatingMu.Unlock()
		writeError(res, http.StatusConflict, errors.New("generation already running"))
		return
	}
	generating = true
	generatingMu.Unlock()

	go func() {
		defer func() {
			generatingMu.Lock()
			generating = false
			generatingMu.Unlock()
		}()
		p := earthgen.NewPlanet()
		p.OnProgress = func(step string, took time.Duration) {
			broadcast(progressEvent{Step: step, Millis: took.Milliseconds()})
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		if err := p.Generate(ctx, cfg); err != nil {
			log.Println("generation failed:", err)
			broadcast(progressEvent{Step: "failed", Error: err.Error()})
			return
		}
		setPlanet(p)
		broadcast(progressEvent{Step: "done"})
	}()
	writeJSON(res, http.StatusAccepted, cfg)
}
