package traffic

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ecoroute/geo"
)

// ErrSamplerUnavailable marks a sample that could not be taken. The
// affected edge degrades to free flow, the run continues.
var ErrSamplerUnavailable = errors.New("traffic sampler unavailable")

// ISampler returns the congestion multiplier at a coordinate.
type ISampler interface {
	Sample(loc geo.Coord) (float64, error)
}

//*******************************************
// free-flow sampler
//*******************************************

// FreeFlowSampler reports no congestion anywhere. Used when no traffic
// provider is configured.
type FreeFlowSampler struct{}

func (self FreeFlowSampler) Sample(loc geo.Coord) (float64, error) {
	return 1.0, nil
}

//*******************************************
// tomtom flow-segment sampler
//*******************************************

const tomtom_url = "https://api.tomtom.com/traffic/services/4/flowSegmentData/absolute/10/json?point=%f,%f&key=%s"

// TomTomSampler queries the TomTom flow-segment service and derives the
// factor as free-flow speed over current speed.
type TomTomSampler struct {
	key    string
	client *http.Client
}

func NewTomTomSampler(key string) *TomTomSampler {
	return &TomTomSampler{
		key: key,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (self *TomTomSampler) Sample(loc geo.Coord) (float64, error) {
	url := fmt.Sprintf(tomtom_url, loc.Lat(), loc.Lon(), self.key)
	resp, err := self.client.Get(url)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSamplerUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %v", ErrSamplerUnavailable, resp.StatusCode)
	}
	var body struct {
		FlowSegmentData struct {
			CurrentSpeed  float64 `json:"currentSpeed"`
			FreeFlowSpeed float64 `json:"freeFlowSpeed"`
		} `json:"flowSegmentData"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSamplerUnavailable, err)
	}
	current := body.FlowSegmentData.CurrentSpeed
	freeflow := body.FlowSegmentData.FreeFlowSpeed
	if current <= 0 || freeflow <= 0 {
		return 0, fmt.Errorf("%w: no speed data", ErrSamplerUnavailable)
	}
	return freeflow / current, nil
}
