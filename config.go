package main

import (
	"encoding/json"
	"errors"
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	config.applyDefaults()
	return config
}

type Config struct {
	Places struct {
		File string `yaml:"file"`
		OSM  string `yaml:"osm"`
	} `yaml:"places"`
	Graph struct {
		K        int `yaml:"k"`
		MaxNodes int `yaml:"max-nodes"`
	} `yaml:"graph"`
	Traffic struct {
		CacheFile    string `yaml:"cache-file"`
		TTLMinutes   int    `yaml:"ttl-minutes"`
		SampleEveryN int    `yaml:"sample-every-n"`
		TomTomKey    string `yaml:"tomtom-key"`
	} `yaml:"traffic"`
	Vehicles struct {
		Table      string  `yaml:"table"`
		DefaultCO2 float64 `yaml:"default-co2-gkm"`
	} `yaml:"vehicles"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
}

func (self *Config) applyDefaults() {
	if self.Graph.K <= 0 {
		self.Graph.K = 8
	}
	if self.Traffic.CacheFile == "" {
		self.Traffic.CacheFile = "./traffic_cache.txt"
	}
	if self.Traffic.TTLMinutes <= 0 {
		self.Traffic.TTLMinutes = 15
	}
	if self.Traffic.SampleEveryN <= 0 {
		self.Traffic.SampleEveryN = 3
	}
	if self.Vehicles.DefaultCO2 <= 0 {
		self.Vehicles.DefaultCO2 = DEFAULT_CO2_GKM
	}
	if self.Server.Addr == "" {
		self.Server.Addr = ":5002"
	}
}

//**********************************************************
// enums
//**********************************************************

type MetricType byte

const (
	DISTANCE MetricType = 0
	EMISSION MetricType = 1
)

func (self MetricType) String() string {
	switch self {
	case DISTANCE:
		return "distance"
	case EMISSION:
		return "emission"
	default:
		panic("unknown metric type")
	}
}
func (self MetricType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *MetricType) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	metric, err := MetricTypeFromString(typ)
	*self = metric
	return err
}
func (self MetricType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *MetricType) UnmarshalYAML(value *yaml.Node) error {
	typ, err := MetricTypeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func MetricTypeFromString(s string) (MetricType, error) {
	switch s {
	case "distance":
		return DISTANCE, nil
	case "emission":
		return EMISSION, nil
	default:
		return DISTANCE, errors.New("unknown metric type")
	}
}
