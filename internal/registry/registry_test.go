package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/raycast-arena/internal/config"
	"github.com/vovakirdan/raycast-arena/internal/core"
)

type stubSim struct {
	id    string
	speed float64
}

func (s *stubSim) ID() string { return s.id }
func (s *stubSim) Title() string { return strings.ToUpper(s.id) }
func (s *stubSim) Reset(core.RuntimeConfig) {}
func (s *stubSim) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubSim) Render(*core.Screen) {}
func (s *stubSim) State() core.SimState { return core.SimState{Speed: s.speed} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func(cfg config.Config) Simulation {
		return &stubSim{id: "zz_stub", speed: cfg.Emitter.Velocity[0]}
	})

	if !Exists("zz_stub") {
		t.Fatal("Exists() = false after Register")
	}

	cfg := config.Default()
	cfg.Emitter.Velocity[0] = 42
	sim, err := Create("zz_stub", cfg)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if sim.State().Speed != 42 {
		t.Errorf("factory did not receive config, Speed = %g", sim.State().Speed)
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "ZZ_STUB" {
				t.Errorf("Title = %q, expected %q", info.Title, "ZZ_STUB")
			}
		}
	}
	if !found {
		t.Error("List() does not include registered layout")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-layout", config.Default()); err == nil {
		t.Error("Create() should fail for an unknown layout")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(config.Config) Simulation { return &stubSim{id: "zz_dup"} }
	Register("zz_dup", f)

	defer func() {
		if recover() == nil {
			t.Error("second Register() should panic")
		}
	}()
	Register("zz_dup", f)
}
