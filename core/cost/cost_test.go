package cost

import (
	"errors"
	"testing"

	"github.com/kilianp07/routeplan/core/model"
)

func weatherWith(t *testing.T, rainfall, wind, visibility, shock []float64) *model.Weather {
	t.Helper()
	w, err := model.NewWeather(len(rainfall), rainfall, wind, visibility, shock)
	if err != nil {
		t.Fatalf("weather: %v", err)
	}
	return w
}

func TestAirspaceAlwaysFreeAndOpen(t *testing.T) {
	// Extreme weather on every axis must not touch airspace.
	m := New(weatherWith(t,
		[]float64{1000, 1000},
		[]float64{1000, 1000},
		[]float64{0, 0},
		[]float64{1000, 1000},
	))
	e := model.Edge{From: 0, To: 1, RoadType: model.RoadAirspace}
	for _, class := range []model.VehicleClass{model.ClassTruck, model.ClassDrone} {
		for step := 0; step < 2; step++ {
			c, err := m.Cost(e, class, step)
			if err != nil || c != 0 {
				t.Fatalf("%s step %d: cost %v err %v", class, step, c, err)
			}
			b, err := m.Blocked(e, class, step)
			if err != nil || b {
				t.Fatalf("%s step %d: blocked %v err %v", class, step, b, err)
			}
		}
	}
}

func TestGroundCostUnblocked(t *testing.T) {
	m := New(weatherWith(t, []float64{0}, []float64{0}, []float64{100}, []float64{0}))
	for rt := 1; rt <= model.RoadTypeMax; rt++ {
		e := model.Edge{From: 0, To: 1, RoadType: rt, Weights: []float64{3}}
		c, err := m.Cost(e, model.ClassTruck, 0)
		if err != nil {
			t.Fatalf("type %d: %v", rt, err)
		}
		if want := 3 * float64(rt); c != want {
			t.Fatalf("type %d: cost %v, want %v", rt, c, want)
		}
	}
}

func TestTruckBlockingNeedsBothConditions(t *testing.T) {
	e := model.Edge{From: 0, To: 1, RoadType: 2, Weights: []float64{4}}
	cases := []struct {
		name    string
		rain    float64
		shock   float64
		blocked bool
	}{
		{"calm", 0, 0, false},
		{"shock only", 0, 5, false},
		{"rain only", 10, 0, false},
		{"both over", 10, 5, true},
		{"at thresholds", 7.5, 2.5, false}, // 4*2.5 == 10 and 4*7.5 == 30, strict comparisons
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(weatherWith(t, []float64{tc.rain}, []float64{0}, []float64{100}, []float64{tc.shock}))
			b, err := m.Blocked(e, model.ClassTruck, 0)
			if err != nil {
				t.Fatalf("blocked: %v", err)
			}
			if b != tc.blocked {
				t.Fatalf("blocked %v, want %v", b, tc.blocked)
			}
			c, err := m.Cost(e, model.ClassTruck, 0)
			if err != nil {
				t.Fatalf("cost: %v", err)
			}
			want := 4.0 * 2
			if tc.blocked {
				want *= 5
			}
			if c != want {
				t.Fatalf("cost %v, want %v", c, want)
			}
		})
	}
}

func TestDroneBlockingNeedsBothConditions(t *testing.T) {
	e := model.Edge{From: 0, To: 1, RoadType: 3, Weights: []float64{2}}
	cases := []struct {
		name       string
		wind       float64
		visibility float64
		blocked    bool
	}{
		{"calm clear", 0, 100, false},
		{"windy clear", 50, 100, false},
		{"calm foggy", 0, 1, false},
		{"windy foggy", 50, 1, true},
		{"at thresholds", 30, 3, false}, // 2*30 == 60 and 2*3 == 6, strict comparisons
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(weatherWith(t, []float64{0}, []float64{tc.wind}, []float64{tc.visibility}, []float64{0}))
			b, err := m.Blocked(e, model.ClassDrone, 0)
			if err != nil {
				t.Fatalf("blocked: %v", err)
			}
			if b != tc.blocked {
				t.Fatalf("blocked %v, want %v", b, tc.blocked)
			}
			c, err := m.Cost(e, model.ClassDrone, 0)
			if err != nil {
				t.Fatalf("cost: %v", err)
			}
			want := 2.0 * 3
			if tc.blocked {
				want *= 5
			}
			if c != want {
				t.Fatalf("cost %v, want %v", c, want)
			}
		})
	}
}

func TestBlockingIsClassSpecific(t *testing.T) {
	// Storm that blocks trucks leaves drones untouched and vice versa.
	e := model.Edge{From: 0, To: 1, RoadType: 1, Weights: []float64{4}}
	truckStorm := New(weatherWith(t, []float64{10}, []float64{0}, []float64{100}, []float64{5}))
	if b, _ := truckStorm.Blocked(e, model.ClassDrone, 0); b {
		t.Fatal("truck storm must not block drones")
	}
	droneStorm := New(weatherWith(t, []float64{0}, []float64{50}, []float64{1}, []float64{0}))
	if b, _ := droneStorm.Blocked(e, model.ClassTruck, 0); b {
		t.Fatal("drone storm must not block trucks")
	}
}

func TestOutOfHorizonLookup(t *testing.T) {
	m := New(weatherWith(t, []float64{0}, []float64{0}, []float64{0}, []float64{0}))
	e := model.Edge{From: 0, To: 1, RoadType: 1, Weights: []float64{1}}
	if _, err := m.Cost(e, model.ClassTruck, 1); !errors.Is(err, ErrOutOfHorizon) {
		t.Fatalf("expected ErrOutOfHorizon, got %v", err)
	}
	if _, err := m.Blocked(e, model.ClassDrone, -1); !errors.Is(err, ErrOutOfHorizon) {
		t.Fatalf("expected ErrOutOfHorizon, got %v", err)
	}
}
