package main

import (
	"fmt"
	"os"
	"strings"

	"ecoroute/util"
	"golang.org/x/exp/slog"
)

//**********************************************************
// vehicle emission profiles
//**********************************************************

// DEFAULT_CO2_GKM is the fallback emission rate when a vehicle model is
// not listed in the table.
const DEFAULT_CO2_GKM = 120.0

type VehicleRecord struct {
	Model    string  `csv:"model"`
	CO2PerKm float64 `csv:"co2_g_per_km"`
}

// EmissionTable maps vehicle models to their CO2 rate in g/km. Lookup
// is case-insensitive, unknown models get the default rate.
type EmissionTable struct {
	rates        map[string]float64
	default_rate float64
}

func NewEmissionTable(default_rate float64) *EmissionTable {
	return &EmissionTable{
		rates:        make(map[string]float64, 16),
		default_rate: default_rate,
	}
}

// LoadEmissionTable reads the vehicle table from a semicolon CSV with a
// "model;co2_g_per_km" header. A missing or unreadable table is not
// fatal, every lookup then falls back to the default rate.
func LoadEmissionTable(file string, default_rate float64) *EmissionTable {
	table := NewEmissionTable(default_rate)
	if file == "" {
		return table
	}
	if _, err := os.Stat(file); err != nil {
		slog.Warn(fmt.Sprintf("vehicle table %v not readable, using default %v g/km", file, default_rate))
		return table
	}
	for record := range util.ReadCSVFromFile[VehicleRecord](file, ';') {
		if record.Model == "" || record.CO2PerKm <= 0 {
			continue
		}
		table.rates[strings.ToLower(record.Model)] = record.CO2PerKm
	}
	slog.Info(fmt.Sprintf("loaded %v vehicle profiles from %v", len(table.rates), file))
	return table
}

func (self *EmissionTable) Rate(model string) float64 {
	if rate, ok := self.rates[strings.ToLower(strings.TrimSpace(model))]; ok {
		return rate
	}
	return self.default_rate
}

//**********************************************************
// travel-time estimates
//**********************************************************

// Average speeds in km/h used for rough per-mode travel times.
const (
	CAR_FREEFLOW_KMH = 50.0
	BIKE_KMH         = 15.0
	WALK_KMH         = 5.0
	MIN_CAR_KMH      = 5.0
)

type TravelTimes struct {
	CarMin  float64 `json:"car_min"`
	BikeMin float64 `json:"bike_min"`
	WalkMin float64 `json:"walk_min"`
}

// AddSegment accumulates per-mode minutes for one edge. Car speed
// degrades with the traffic factor but never below MIN_CAR_KMH.
func (self *TravelTimes) AddSegment(distance_km float64, factor float64) {
	car_speed := CAR_FREEFLOW_KMH / factor
	if car_speed < MIN_CAR_KMH {
		car_speed = MIN_CAR_KMH
	}
	self.CarMin += distance_km / car_speed * 60
	self.BikeMin += distance_km / BIKE_KMH * 60
	self.WalkMin += distance_km / WALK_KMH * 60
}
