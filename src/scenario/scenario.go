// Scenario files describe a building, a request list and, optionally, the
// arrival tick expected for each request.
//
//	floors: 7
//	ticks: 10
//	requests:
//	  - {time: 2, from: 3, to: 1}
//	expect: [7]
//
// An expect entry may also list several acceptable ticks, e.g. [39, 38].
// Floors and ticks left out of the file are taken from the caller's defaults.
// Maintenance sentinels are written with from and to both -1 (start) or both 0 (end).
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"elevsim/src/types"
)

var ErrExpectLength = errors.New("expect list does not match request list")

type Scenario struct {
	Floors      int       `yaml:"floors"`
	Ticks       int       `yaml:"ticks"`
	Maintenance bool      `yaml:"maintenance"`
	Requests    []Trip    `yaml:"requests"`
	Expect      []Arrival `yaml:"expect"`
}

// Defaults fill in the building size and run length when a file leaves them out.
type Defaults struct {
	Floors int
	Ticks  int
}

type Trip struct {
	Time int `yaml:"time"`
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Arrival is the set of ticks accepted as a request's arrival time.
type Arrival []int

func (a *Arrival) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var tick int
		if err := value.Decode(&tick); err != nil {
			return err
		}
		*a = Arrival{tick}
		return nil
	case yaml.SequenceNode:
		var ticks []int
		if err := value.Decode(&ticks); err != nil {
			return err
		}
		*a = ticks
		return nil
	}
	return fmt.Errorf("line %d: arrival must be a tick or a list of ticks", value.Line)
}

func (a Arrival) Accepts(tick int) bool {
	for _, t := range a {
		if t == tick {
			return true
		}
	}
	return false
}

func Load(path string, def Defaults) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}
	sc, err := Parse(data, def)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario and checks it against the request rules.
// Unknown keys are rejected.
func Parse(data []byte, def Defaults) (Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return Scenario{}, fmt.Errorf("decoding scenario: %w", err)
	}
	if sc.Floors == 0 {
		sc.Floors = def.Floors
	}
	if sc.Ticks == 0 {
		sc.Ticks = def.Ticks
	}
	if sc.Floors < 1 {
		return Scenario{}, fmt.Errorf("%w: %d", types.ErrInvalidFloors, sc.Floors)
	}
	if _, err := sc.BuildRequests(); err != nil {
		return Scenario{}, err
	}
	if len(sc.Expect) > 0 && len(sc.Expect) != len(sc.Requests) {
		return Scenario{}, fmt.Errorf("%w: %d expected arrivals for %d requests", ErrExpectLength, len(sc.Expect), len(sc.Requests))
	}
	return sc, nil
}

// BuildRequests turns the trips into a request list for the simulation.
func (sc Scenario) BuildRequests() ([]types.Request, error) {
	requests := make([]types.Request, 0, len(sc.Requests))
	for i, trip := range sc.Requests {
		req, err := types.NewRequest(trip.Time, trip.From, trip.To)
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
		if req.Src > sc.Floors || req.Dest > sc.Floors {
			return nil, fmt.Errorf("request %d: %w: floor above %d in %s", i, types.ErrInvalidRequest, sc.Floors, req)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

type Result struct {
	Request int
	Got     int
	Want    Arrival
	Pass    bool
}

// Check compares finished arrival ticks against the expected ones, one result per request.
// It returns nil when the scenario has no expectations.
func (sc Scenario) Check(arrive []int) []Result {
	if len(sc.Expect) == 0 {
		return nil
	}
	results := make([]Result, len(sc.Expect))
	for i, want := range sc.Expect {
		got := -1
		if i < len(arrive) {
			got = arrive[i]
		}
		results[i] = Result{Request: i, Got: got, Want: want, Pass: want.Accepts(got)}
	}
	return results
}

func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Pass {
			return false
		}
	}
	return true
}
