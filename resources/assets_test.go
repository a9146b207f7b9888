package resources

import (
	"bytes"
	"testing"
)

func TestImageIsCached(t *testing.T) {
	first, err := Image("tomato.svg")
	if err != nil {
		t.Fatalf("load tomato: %v", err)
	}
	second := Tomato()
	if first != second {
		t.Fatalf("expected cached resource to be reused")
	}
	if !bytes.Contains(first.Content(), []byte("<svg")) {
		t.Fatalf("tomato resource is not an svg")
	}
	if first.Name() != "tomato.svg" {
		t.Fatalf("unexpected resource name %q", first.Name())
	}
}

func TestImageMissing(t *testing.T) {
	if _, err := Image("missing.png"); err == nil {
		t.Fatalf("expected error for missing image")
	}
}
