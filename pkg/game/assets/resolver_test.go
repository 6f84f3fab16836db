package assets

import (
	"strings"
	"testing"
)

func TestRegisterAssignsStableHandles(t *testing.T) {
	r := NewRegistry(nil)

	vines := r.Register("vines")
	puddle := r.Register("puddle")

	if vines == DefaultHandle || puddle == DefaultHandle {
		t.Error("registered handles must not collide with the default")
	}
	if vines == puddle {
		t.Error("distinct ids share a handle")
	}
	if again := r.Register("vines"); again != vines {
		t.Errorf("re-registering returned %d, want the original %d", again, vines)
	}
}

func TestResolve(t *testing.T) {
	r := NewRegistry(nil)
	vines := r.Register("vines")

	if handle, found := r.Resolve("vines"); !found || handle != vines {
		t.Errorf("Resolve(vines) = %d,%v", handle, found)
	}
	if _, found := r.Resolve("ghost"); found {
		t.Error("unregistered id resolved")
	}
}

func TestResolveOrDefaultSubstitutesAndWarns(t *testing.T) {
	var warnings []string
	r := NewRegistry(func(format string, args ...any) {
		warnings = append(warnings, format)
	})
	r.Register("vines")

	if handle := r.ResolveOrDefault("vines"); handle == DefaultHandle {
		t.Error("a registered id should keep its own handle")
	}
	if len(warnings) != 0 {
		t.Error("resolving a registered id should not warn")
	}

	if handle := r.ResolveOrDefault("ghost"); handle != DefaultHandle {
		t.Errorf("unresolved id got handle %d, want the default", handle)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "not loaded") {
		t.Errorf("warnings = %v, want one not-loaded warning", warnings)
	}
}
