package particles

import "testing"

func TestEmitterMirrorsIntent(t *testing.T) {
	e := NewEmitter()
	if e.Emitting() {
		t.Fatal("emitter should start off")
	}

	e.SetEmitting(true)
	e.Update(0.5, 0, 0, 0)
	if e.Live() == 0 {
		t.Fatal("expected particles while emitting")
	}

	e.SetEmitting(false)
	// Particles age out after their lifetime even with no new spawns.
	for i := 0; i < 60; i++ {
		e.Update(1.0/60.0, 0, 0, 0)
	}
	if e.Live() != 0 {
		t.Fatalf("expected pool to drain after lifetime, %d remain", e.Live())
	}
}

func TestEmitterZeroDtIsNoop(t *testing.T) {
	e := NewEmitter()
	e.SetEmitting(true)
	e.Update(0, 0, 0, 0)
	if e.Live() != 0 {
		t.Fatalf("zero dt spawned %d particles", e.Live())
	}
}
