package server

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":      "",
		"5000":  ":5000",
		":5000": ":5000",
	}
	for in, want := range cases {
		if got := normalizeAddr(in); got != want {
			t.Fatalf("normalizeAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNew_AppliesDefaults(t *testing.T) {
	s := New(Options{WriteTimeout: 3 * time.Second})
	hs := s.newHTTPServer(":0", http.NotFoundHandler())

	if hs.WriteTimeout != 3*time.Second {
		t.Fatalf("write timeout: got %v", hs.WriteTimeout)
	}
	if hs.ReadHeaderTimeout != defaultReadHeaderTimeout || hs.IdleTimeout != defaultIdleTimeout {
		t.Fatalf("defaults not applied: %+v", s.opts)
	}
	if hs.MaxHeaderBytes != maxHeaderBytes {
		t.Fatalf("max header bytes: got %d", hs.MaxHeaderBytes)
	}
}

func TestShutdown_BeforeRun(t *testing.T) {
	if err := New(Options{}).Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown before run: %v", err)
	}
}
