package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/dmchurch/earthgen"
	"github.com/dmchurch/earthgen/geo"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")
var settings = flag.String("settings", "", "JSON settings file, flags given explicitly override it")
var checkGrid = flag.Bool("check", false, "verify the grid invariants after generation")

func main() {
	defaults := earthgen.NewConfig()
	gridSize := flag.Int("grid_size", defaults.GridSize, "grid subdivision level (0..10)")
	seed := flag.String("seed", defaults.Seed, "elevation seed")
	iterations := flag.Int("iterations", defaults.Iterations, "number of elevation bumps")
	waterRatio := flag.Float64("water_ratio", defaults.WaterRatio, "fraction of tiles covered by water")
	seasons := flag.Int("seasons", defaults.Seasons, "number of seasons")
	axialTilt := flag.Float64("axial_tilt", defaults.AxialTilt, "axial tilt in radians")
	tolerance := flag.Float64("error_tolerance", defaults.ErrorTolerance, "humidity solver tolerance")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := defaults
	if *settings != "" {
		var err error
		if cfg, err = earthgen.LoadConfig(*settings); err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "grid_size":
			cfg.GridSize = *gridSize
		case "seed":
			cfg.Seed = *seed
		case "iterations":
			cfg.Iterations = *iterations
		case "water_ratio":
			cfg.WaterRatio = *waterRatio
		case "seasons":
			cfg.Seasons = *seasons
		case "axial_tilt":
			cfg.AxialTilt = *axialTilt
		case "error_tolerance":
			cfg.ErrorTolerance = *tolerance
		}
	})

	p := earthgen.NewPlanet()
	if err := p.Generate(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
	if *checkGrid {
		if err := p.Grid.Check(); err != nil {
			log.Fatal(err)
		}
	}

	sum := p.Summary()
	log.Printf("grid %d: %d tiles, %d corners, %d edges", sum.GridSize, sum.Tiles, sum.Corners, sum.Edges)
	log.Printf("sea level %.1f, water %.1f%%, %d coast tiles, %d river corners",
		sum.SeaLevel, 100*sum.WaterFraction, sum.CoastTiles, sum.RiverCorners)
	for i, s := range sum.Seasons {
		log.Printf("season %d (%.2f): mean temperature %.1f °C, total precipitation %g",
			i, s.TimeOfYear, s.MeanTemperature-geo.FreezingPoint, s.TotalPrecipitation)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
