package geo

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/dmchurch/earthgen/geodesic"
)

func testClimate(t *testing.T, g *geodesic.Grid, tr *Terrain, seasons int, tilt float64) []*Season {
	t.Helper()
	cfg := NewClimateConfig()
	cfg.Seasons = seasons
	cfg.AxialTilt = tilt
	return GenerateClimate(g, tr, cfg)
}

func TestSeasonVars(t *testing.T) {
	g, tr := testTerrain(t, 2, 100, 0.6)
	seasons := testClimate(t, g, tr, 4, 0.4)
	if len(seasons) != 4 {
		t.Fatalf("got %d seasons", len(seasons))
	}
	for i, s := range seasons {
		if s.TimeOfYear != float64(i)/4 {
			t.Errorf("season %d: time of year %v", i, s.TimeOfYear)
		}
		want := 0.4 * math.Sin(2*math.Pi*float64(i)/4)
		if math.Abs(s.SolarEquator-want) > 1e-12 || math.Abs(s.TropicalEquator-0.67*want) > 1e-12 {
			t.Errorf("season %d: equators %v / %v", i, s.SolarEquator, s.TropicalEquator)
		}
		if len(s.Tiles) != len(g.Tiles) || len(s.Corners) != len(g.Corners) || len(s.Edges) != len(g.Edges) {
			t.Fatalf("season %d has wrong sizes", i)
		}
	}
	for i, s := range seasons {
		if s.AxialTilt != 0.4 {
			t.Errorf("season %d: axial tilt %v", i, s.AxialTilt)
		}
	}
}

func TestTemperatureSymmetricWithoutTilt(t *testing.T) {
	// Flat dry world: temperature only depends on the latitude.
	g, tr := testTerrain(t, 3, 0, 0)
	s := testClimate(t, g, tr, 1, 0)[0]
	for i := range g.Tiles {
		lat := tr.Latitude(g.Tiles[i].V)
		want := TemperatureAtLatitude(math.Abs(lat))
		if math.Abs(s.Tiles[i].Temperature-want) > 1e-9 {
			t.Fatalf("tile %d at %v: temperature %v, want %v", i, lat, s.Tiles[i].Temperature, want)
		}
	}
}

func TestTemperatureWithReliefWithoutTilt(t *testing.T) {
	g, tr := testTerrain(t, 3, 300, 0.6)
	s := testClimate(t, g, tr, 1, 0)[0]
	var cooled int
	for i := range g.Tiles {
		lat := tr.Latitude(g.Tiles[i].V)
		want := TemperatureAtLatitude(math.Abs(lat))
		if tr.Tiles[i].IsLand() {
			if d := ElevationTemperatureFalloff(tr.Tiles[i].Elevation - tr.SeaLevel); d > 0 {
				want -= d
				cooled++
			}
		}
		if math.Abs(s.Tiles[i].Temperature-want) > 1e-9 {
			t.Fatalf("tile %d at %v: temperature %v, want %v", i, lat, s.Tiles[i].Temperature, want)
		}
	}
	if cooled == 0 {
		t.Fatal("no land tile above sea level")
	}
}

func TestTemperatureDropsWithElevation(t *testing.T) {
	if ElevationTemperatureFalloff(-100) != 0 {
		t.Error("below sea level should not warm up")
	}
	if ElevationTemperatureFalloff(1000) <= ElevationTemperatureFalloff(100) {
		t.Error("higher ground should be colder")
	}
}

func TestPressureGradient(t *testing.T) {
	if DefaultPressureGradient(0, 0) != 0 {
		t.Error("no gradient expected on the thermal equator")
	}
	for _, lat := range []float64{0.1, 0.4, 0.7, 1.2} {
		if a, b := DefaultPressureGradient(0, lat), DefaultPressureGradient(0, -lat); math.Abs(a+b) > 1e-15 {
			t.Errorf("lat %v: gradient not antisymmetric (%v, %v)", lat, a, b)
		}
	}
	// Trade winds blow towards the equator, westerlies away from it.
	if DefaultPressureGradient(0, 0.2) >= 0 {
		t.Error("trade wind force should point south in the north")
	}
	if DefaultPressureGradient(0, 0.8) <= 0 {
		t.Error("westerly force should point north in the north")
	}
}

func TestPrevailingWind(t *testing.T) {
	f := [2]float64{0, -1e-4}
	w := PrevailingWind(f, 0, SurfaceFriction)
	if math.Abs(w.Direction+math.Pi/2) > 1e-12 || math.Abs(w.Speed-1e-4/SurfaceFriction) > 1e-9 {
		t.Fatalf("no Coriolis: got %+v", w)
	}
	// Northern trade winds are deflected to the west.
	w = PrevailingWind(f, CoriolisCoefficient(0.26), SurfaceFriction)
	if v := w.Vector(); v[0] >= 0 || v[1] >= 0 {
		t.Fatalf("trade wind blows towards %v", v)
	}
	// And to the east in the south.
	w = PrevailingWind(f, CoriolisCoefficient(-0.26), SurfaceFriction)
	if v := w.Vector(); v[0] <= 0 {
		t.Fatalf("southern wind blows towards %v", v)
	}
}

func TestEdgeWind(t *testing.T) {
	g, tr := testTerrain(t, 3, 0, 0)
	s := testClimate(t, g, tr, 1, 0.4)[0]
	var moving int
	for i := range s.Edges {
		v := s.Edges[i].WindVelocity
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("edge %d: velocity %v", i, v)
		}
		if v != 0 {
			moving++
		}
	}
	if moving == 0 {
		t.Fatal("no air moves across any edge")
	}
}

func TestHumidity(t *testing.T) {
	g, tr := testTerrain(t, 3, 300, 0.6)
	s := testClimate(t, g, tr, 1, 0.4)[0]
	var wetLand int
	for i := range s.Tiles {
		ct := &s.Tiles[i]
		sat := SaturationHumidity(ct.Temperature)
		if tr.Tiles[i].IsWater() {
			if ct.Humidity != sat {
				t.Fatalf("sea tile %d: humidity %v, saturation %v", i, ct.Humidity, sat)
			}
			if ct.Precipitation != 0 {
				t.Fatalf("sea tile %d: precipitation %v", i, ct.Precipitation)
			}
			if s.Aridity(i) != 0 {
				t.Fatalf("sea tile %d: aridity %v", i, s.Aridity(i))
			}
			continue
		}
		if ct.Humidity < 0 || ct.Humidity > sat*(1+1e-12) {
			t.Fatalf("land tile %d: humidity %v, saturation %v", i, ct.Humidity, sat)
		}
		if ct.Precipitation < 0 || math.IsNaN(ct.Precipitation) {
			t.Fatalf("land tile %d: precipitation %v", i, ct.Precipitation)
		}
		if s.Aridity(i) < 0 {
			t.Fatalf("land tile %d: aridity %v", i, s.Aridity(i))
		}
		if ct.Humidity > 0 {
			wetLand++
		}
	}
	if wetLand == 0 {
		t.Fatal("no moisture reached any land tile")
	}
}

func TestHumidityConverges(t *testing.T) {
	const tolerance = 0.001
	g, tr := testTerrain(t, 4, 300, 0.6)
	cfg := NewClimateConfig()
	s := newSeasonBuilder(g, tr, cfg, 0.25)
	s.setTemperature()
	s.setWind()
	passes := s.setHumidity(tolerance)
	if passes >= MaxHumidityPasses {
		t.Fatalf("humidity needed %d passes", passes)
	}
	for i := range s.tiles {
		if !tr.Tiles[i].IsLand() {
			continue
		}
		h, _ := s.landHumidity(i)
		if c := humidityChange(s.tiles[i].Humidity, h); c > tolerance {
			t.Fatalf("tile %d still changes by %v after %d passes", i, c, passes)
		}
	}
}

func TestClimateLeavesTerrainAlone(t *testing.T) {
	g, tr := testTerrain(t, 2, 200, 0.6)
	vars := tr.Vars
	tiles := slices.Clone(tr.Tiles)
	testClimate(t, g, tr, 2, 0.7)
	if tr.Vars != vars || !slices.Equal(tr.Tiles, tiles) {
		t.Fatal("climate generation modified the terrain")
	}
}

func TestClimateDeterministic(t *testing.T) {
	g, tr := testTerrain(t, 2, 200, 0.6)
	a := testClimate(t, g, tr, 2, 0.4)
	b := testClimate(t, g, tr, 2, 0.4)
	for i := range a {
		if !slices.Equal(a[i].Tiles, b[i].Tiles) || !slices.Equal(a[i].Edges, b[i].Edges) {
			t.Fatalf("season %d differs between runs", i)
		}
	}
}

func TestHumidityChange(t *testing.T) {
	if humidityChange(0, 0) != 0 || humidityChange(0, 1e-3) != 1 || humidityChange(1e-3, 0) != 1 {
		t.Error("near zero handling is wrong")
	}
	if got := humidityChange(1, 2); got != 0.5 {
		t.Errorf("relative change is %v", got)
	}
}

func TestBiomes(t *testing.T) {
	g, tr := testTerrain(t, 2, 200, 0.6)
	s := testClimate(t, g, tr, 1, 0.4)[0]
	biomes := s.Biomes(tr)
	if len(biomes) != len(g.Tiles) {
		t.Fatalf("got %d biomes", len(biomes))
	}
	for i, b := range biomes {
		if tr.Tiles[i].IsWater() != (b == NoBiome) {
			t.Fatalf("tile %d: biome %d", i, b)
		}
		if BiomeName(b) == "" {
			t.Fatalf("tile %d: biome %d has no name", i, b)
		}
	}
	land := slices.IndexFunc(biomes, func(b int) bool { return b != NoBiome })
	if land >= 0 {
		if d := DescribeTile(g, tr, s, biomes, land); !strings.Contains(d, "above sea level") {
			t.Errorf("unexpected description %q", d)
		}
	}
}

func TestInsolation(t *testing.T) {
	s := &Season{SeasonVars: SeasonVars{SolarEquator: 0.4}}
	if h := s.DaylightHours(0); math.Abs(h-12) > 1e-9 {
		t.Errorf("equator has %v hours of daylight", h)
	}
	if math.Abs(s.DaylightHours(1.4)-24) > 1e-9 || s.DaylightHours(-1.4) != 0 {
		t.Error("polar day / night not detected")
	}
	if s.Insolation(0.4) <= s.Insolation(-0.4) {
		t.Error("summer hemisphere should receive more sunlight")
	}
}

func TestCompassName(t *testing.T) {
	for dir, want := range map[float64]string{0: "east", math.Pi / 2: "north", -math.Pi / 2: "south", math.Pi: "west", -3 * math.Pi / 4: "southwest"} {
		if got := compassName(dir); got != want {
			t.Errorf("compassName(%v) = %q, want %q", dir, got, want)
		}
	}
}
