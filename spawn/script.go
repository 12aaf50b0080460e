package spawn

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// pacingScript wraps a compiled tengo script that computes the next
// spawn interval. The script sees the globals `elapsed`, `spawned`,
// `base`, and `min`, and must assign a number to `interval`.
type pacingScript struct {
	compiled *tengo.Compiled
}

func compilePacingScript(src string) (*pacingScript, error) {
	script := tengo.NewScript([]byte(src))
	script.SetImports(stdlib.GetModuleMap("math"))

	for _, name := range []string{"elapsed", "base", "min"} {
		if err := script.Add(name, 0.0); err != nil {
			return nil, err
		}
	}
	if err := script.Add("spawned", 0); err != nil {
		return nil, err
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &pacingScript{compiled: compiled}, nil
}

func (p *pacingScript) interval(elapsed float64, spawned int, base, min float64) (float64, error) {
	if err := p.compiled.Set("elapsed", elapsed); err != nil {
		return 0, err
	}
	if err := p.compiled.Set("spawned", spawned); err != nil {
		return 0, err
	}
	if err := p.compiled.Set("base", base); err != nil {
		return 0, err
	}
	if err := p.compiled.Set("min", min); err != nil {
		return 0, err
	}
	if err := p.compiled.Run(); err != nil {
		return 0, err
	}

	v := p.compiled.Get("interval")
	if v == nil || v.IsUndefined() {
		return 0, fmt.Errorf("pacing script did not set `interval`")
	}
	return v.Float(), nil
}

// SetPacingScript compiles src and swaps it in as the pacing source.
// Used at startup and by the hot-reload watcher.
func (s *Spawner) SetPacingScript(src string) error {
	p, err := compilePacingScript(src)
	if err != nil {
		return err
	}
	// Probe once so a script that runs but never sets `interval` is
	// rejected up front.
	if _, err := p.interval(0, 0, s.cfg.BaseInterval, s.cfg.MinInterval); err != nil {
		return err
	}
	s.pacing = p
	return nil
}
