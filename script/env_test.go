package script

import "testing"

func TestEnvDefineShadowsParent(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Int(1))
	child := NewEnv(root)
	child.Define("x", Int(2))

	if v, _ := child.Lookup("x"); v.Int != 2 {
		t.Fatalf("child sees %s, want 2", Display(v))
	}
	if v, _ := root.Lookup("x"); v.Int != 1 {
		t.Fatalf("define leaked to parent: %s", Display(v))
	}
}

func TestEnvAssignUpdatesNearestBinding(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Int(1))
	child := NewEnv(root)

	if !child.Assign("x", Int(5)) {
		t.Fatal("Assign failed for a bound name")
	}
	if v, _ := root.Lookup("x"); v.Int != 5 {
		t.Fatalf("root not updated: %s", Display(v))
	}
	if child.Assign("nope", Int(1)) {
		t.Fatal("Assign succeeded for an unbound name")
	}
}

func TestEnvLookupChain(t *testing.T) {
	root := NewEnv(nil)
	root.Define("a", Int(1))
	mid := NewEnv(root)
	mid.Define("b", Int(2))
	leaf := NewEnv(mid)

	for name, want := range map[string]int64{"a": 1, "b": 2} {
		v, ok := leaf.Lookup(name)
		if !ok || v.Int != want {
			t.Fatalf("Lookup(%s): got %s, %v", name, Display(v), ok)
		}
	}
	if _, ok := leaf.Lookup("c"); ok {
		t.Fatal("Lookup found an unbound name")
	}
}
