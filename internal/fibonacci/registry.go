package fibonacci

import (
	"fmt"
	"sort"
	"sync"
)

// Creator builds a fresh, unprepared Strategy.
type Creator func() Strategy

// Factory is a thread-safe registry of strategy creators keyed by name.
//
// Strategies are single-owner, so unlike a cache of shared instances the
// factory hands out a new instance on every Create. The benchmark asks for
// one instance per worker.
type Factory struct {
	mu       sync.RWMutex
	creators map[string]Creator
}

// NewFactory returns a Factory with the built-in strategies registered:
//   - "linear": Linear (n additions, baseline)
//   - "matexp": MatrixExponentiation (symmetric Q-matrix powers)
//   - "mathbig": MathBig (fast doubling on math/big, reference)
func NewFactory() *Factory {
	f := &Factory{creators: make(map[string]Creator)}

	_ = f.Register("linear", func() Strategy { return NewLinear() })
	_ = f.Register("matexp", func() Strategy { return NewMatrixExponentiation() })
	_ = f.Register("mathbig", func() Strategy { return NewMathBig() })

	return f
}

// Register adds or replaces the creator for name.
func (f *Factory) Register(name string, creator Creator) error {
	if name == "" {
		return fmt.Errorf("strategy name must not be empty")
	}
	if creator == nil {
		return fmt.Errorf("nil creator for strategy %q", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creators[name] = creator
	return nil
}

// Create returns a new instance of the strategy registered under name.
func (f *Factory) Create(name string) (Strategy, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s (available: %v)", name, f.List())
	}
	return creator(), nil
}

// MustCreate is like Create but panics if name is not registered.
func (f *Factory) MustCreate(name string) Strategy {
	s, err := f.Create(name)
	if err != nil {
		panic(fmt.Sprintf("fibonacci: required strategy not found: %s", name))
	}
	return s
}

// List returns the registered names in alphabetical order.
func (f *Factory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (f *Factory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.creators[name]
	return ok
}

var globalFactory = NewFactory()

// GlobalFactory returns the process-wide factory.
func GlobalFactory() *Factory {
	return globalFactory
}

// RegisterStrategy registers a creator in the global factory.
func RegisterStrategy(name string, creator Creator) error {
	return globalFactory.Register(name, creator)
}
