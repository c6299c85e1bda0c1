package target

import (
	"fmt"
	"sync"

	"github.com/droe-lang/droe-sub001/internal/frontend/ast"
)

// Generator turns a resolved program into one artifact. Implementations
// register themselves against a target/framework pair; the front end
// never calls them directly, only through Lookup.
type Generator interface {
	Name() string
	Generate(prog *ast.Program) ([]byte, error)
}

// NoGeneratorError: the target/framework pair parsed fine but nothing
// has registered a generator for it in this binary.
type NoGeneratorError struct {
	Target    Target
	Framework string
}

func (e *NoGeneratorError) Error() string {
	if e.Framework == "" {
		return fmt.Sprintf("no generator registered for target %q", e.Target)
	}
	return fmt.Sprintf("no generator registered for target %q with framework %q", e.Target, e.Framework)
}

type registryKey struct {
	target    Target
	framework string
}

var (
	registryMu sync.RWMutex
	registry   = make(map[registryKey]Generator)
)

// Register installs a generator for a target/framework pair. An empty
// framework registers the target's default slot. Registering the same
// pair twice replaces the earlier generator.
func Register(t Target, framework string, gen Generator) {
	if framework == "" {
		framework = t.DefaultFramework()
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[registryKey{t, framework}] = gen
}

// Lookup finds the generator for a target/framework pair, validating
// the framework against the target first.
func Lookup(t Target, framework string) (Generator, error) {
	if !t.ValidFramework(framework) {
		return nil, &UnknownFrameworkError{Target: t, Framework: framework}
	}
	if framework == "" {
		framework = t.DefaultFramework()
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	if gen, ok := registry[registryKey{t, framework}]; ok {
		return gen, nil
	}
	return nil, &NoGeneratorError{Target: t, Framework: framework}
}
