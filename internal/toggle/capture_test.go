package toggle

import "testing"

func TestCapture(t *testing.T) {
	c := &Capture{}
	if c.Held() || c.HeldBy("") {
		t.Fatal("Expected empty capture")
	}

	first := c.Acquire()
	if !c.HeldBy(first) {
		t.Error("Expected first holder")
	}

	second := c.Acquire()
	if first == second {
		t.Error("Expected distinct holder ids")
	}
	if c.HeldBy(first) {
		t.Error("Expected first holder to lose the capture")
	}

	c.Release(first)
	if !c.HeldBy(second) {
		t.Error("Expected release by a non owner to be ignored")
	}

	c.Steal()
	if c.Held() {
		t.Error("Expected capture to be free after steal")
	}
}
