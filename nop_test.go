package chromez

import (
	"os"
	"path/filepath"
	"testing"
)

func BenchmarkRecorderAppend(b *testing.B) {
	rec := New()
	rec.BeginSession(filepath.Join(b.TempDir(), "trace.json"))
	defer rec.Close()

	b.Run("instant", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			rec.AddInstantEvent("bench", "hot")
		}
	})

	b.Run("scope", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			rec.StartScope("bench").End()
		}
	})

	b.Run("inactive-drop", func(b *testing.B) {
		dropped := New()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			dropped.AddInstantEvent("bench", "cold")
		}
	})
}

func BenchmarkNopTracer(b *testing.B) {
	var tr Tracer = NopTracer{}
	tr.BeginSession("unused.json")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr.StartScope("bench").End()
		tr.AddInstantEvent("bench", "hot")
	}
}

func TestNopTracerNeverWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")

	var tr Tracer = NopTracer{}
	tr.BeginSession(path)
	tr.AddInstantEvent("ghost", "test")
	tr.AddBeginEvent("ghost", "test")
	tr.AddEndEvent("ghost", "test")
	tr.AddDurationEvent("ghost", "test", tr.Now(), tr.Now())
	tr.StartScope("ghost").End()

	if err := tr.EndSession(); err != nil {
		t.Errorf("Expected nil error from nop EndSession, got %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Errorf("Expected nil error from nop Close, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Nop tracer produced a file: %v", err)
	}
}

func TestNopTracerNowIsUsable(t *testing.T) {
	tr := NopTracer{}

	start := tr.Now()
	end := tr.Now()
	if end.Before(start) {
		t.Error("Nop clock went backwards")
	}
}
