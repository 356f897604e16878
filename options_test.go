package geometry

import "testing"

func TestBuildOptions_Defaults(t *testing.T) {
	o := buildOptions(nil)
	if o.label != "" || o.vertexCapacity != 0 || o.indexCapacity != 0 {
		t.Errorf("defaults = %+v, want zero", o)
	}
}

func TestBuildOptions_LaterWins(t *testing.T) {
	o := buildOptions([]CreateOption{
		WithCapacity(10, 20),
		nil,
		WithLabel("a"),
		WithCapacity(30, -1),
		WithLabel("b"),
	})
	if o.label != "b" {
		t.Errorf("label = %q, want %q", o.label, "b")
	}
	if o.vertexCapacity != 30 || o.indexCapacity != 0 {
		t.Errorf("capacity = %d/%d, want 30/0", o.vertexCapacity, o.indexCapacity)
	}
}
