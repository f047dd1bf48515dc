package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmissionTableLookup(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cars.csv")
	content := "model;co2_g_per_km\nSwift;110.5\nInnova Crysta;180\n"
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("write table: %v", err)
	}

	table := LoadEmissionTable(file, DEFAULT_CO2_GKM)
	if got := table.Rate("Swift"); got != 110.5 {
		t.Errorf("Rate(Swift) = %v; want 110.5", got)
	}
	if got := table.Rate("  innova crysta "); got != 180 {
		t.Errorf("case-insensitive lookup = %v; want 180", got)
	}
	if got := table.Rate("Unknown"); got != DEFAULT_CO2_GKM {
		t.Errorf("Rate(Unknown) = %v; want default %v", got, DEFAULT_CO2_GKM)
	}
}

func TestEmissionTableMissingFile(t *testing.T) {
	table := LoadEmissionTable(filepath.Join(t.TempDir(), "missing.csv"), 95)
	if got := table.Rate("anything"); got != 95 {
		t.Errorf("Rate = %v; want default 95", got)
	}
}

func TestTravelTimes(t *testing.T) {
	times := TravelTimes{}
	times.AddSegment(50, 1.0)
	if math.Abs(times.CarMin-60) > 1e-9 {
		t.Errorf("CarMin = %v; want 60", times.CarMin)
	}
	if math.Abs(times.BikeMin-200) > 1e-9 {
		t.Errorf("BikeMin = %v; want 200", times.BikeMin)
	}
	if math.Abs(times.WalkMin-600) > 1e-9 {
		t.Errorf("WalkMin = %v; want 600", times.WalkMin)
	}

	// heavy congestion halves car speed, bike and walk are unaffected
	congested := TravelTimes{}
	congested.AddSegment(50, 2.0)
	if math.Abs(congested.CarMin-120) > 1e-9 {
		t.Errorf("congested CarMin = %v; want 120", congested.CarMin)
	}
	if congested.BikeMin != times.BikeMin {
		t.Errorf("congestion changed bike time")
	}
}

func TestConfigDefaults(t *testing.T) {
	config := Config{}
	config.applyDefaults()
	if config.Graph.K != 8 {
		t.Errorf("K = %v; want 8", config.Graph.K)
	}
	if config.Traffic.TTLMinutes != 15 {
		t.Errorf("TTLMinutes = %v; want 15", config.Traffic.TTLMinutes)
	}
	if config.Traffic.SampleEveryN != 3 {
		t.Errorf("SampleEveryN = %v; want 3", config.Traffic.SampleEveryN)
	}
	if config.Vehicles.DefaultCO2 != DEFAULT_CO2_GKM {
		t.Errorf("DefaultCO2 = %v; want %v", config.Vehicles.DefaultCO2, DEFAULT_CO2_GKM)
	}
}

func TestMetricTypeFromString(t *testing.T) {
	if m, err := MetricTypeFromString("emission"); err != nil || m != EMISSION {
		t.Errorf("MetricTypeFromString(emission) = %v, %v", m, err)
	}
	if m, err := MetricTypeFromString("distance"); err != nil || m != DISTANCE {
		t.Errorf("MetricTypeFromString(distance) = %v, %v", m, err)
	}
	if _, err := MetricTypeFromString("nonsense"); err == nil {
		t.Errorf("expected error for unknown metric")
	}
}
