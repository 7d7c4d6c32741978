package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

func writeTone(t *testing.T, samples int) string {
	t.Helper()
	format := beep.Format{SampleRate: 8000, NumChannels: 1, Precision: 2}
	sine, err := generators.SineTone(format.SampleRate, 440)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := wav.Encode(f, beep.Take(samples, sine), format); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLoopRepeatsTrack(t *testing.T) {
	const trackLen = 400
	path := writeTone(t, trackLen)

	streamer, loop, format, err := loadLoop(path)
	if err != nil {
		t.Fatal(err)
	}
	defer streamer.Close()

	if format.SampleRate != 8000 {
		t.Fatalf("SampleRate = %v, want 8000", format.SampleRate)
	}
	if streamer.Len() != trackLen {
		t.Fatalf("Len = %d, want %d", streamer.Len(), trackLen)
	}

	// Pull several track lengths; an endless loop never runs dry.
	buf := make([][2]float64, 256)
	total := 0
	for total < 5*trackLen {
		n, ok := loop.Stream(buf)
		if !ok || n == 0 {
			t.Fatalf("loop ended after %d samples", total)
		}
		total += n
	}
}

func TestLoadLoopMissingFile(t *testing.T) {
	if _, _, _, err := loadLoop(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatal("expected an error for a missing track")
	}
}

func TestCloseWithoutStart(t *testing.T) {
	NewMusic("unused.wav").Close()
}
