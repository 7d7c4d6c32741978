// Package audio plays the background music. It runs on beep's speaker
// goroutine and never touches game state.
package audio

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// DefaultTrack is looked up relative to the working directory
const DefaultTrack = "lux_aeterna.wav"

// Music loops a single WAV file for as long as the process runs
type Music struct {
	mu          sync.Mutex
	path        string
	streamer    beep.StreamSeekCloser
	ctrl        *beep.Ctrl
	initialized bool
}

// NewMusic creates a player for the WAV file at path
func NewMusic(path string) *Music {
	return &Music{path: path}
}

// loadLoop decodes the track and wraps it in an endless loop
func loadLoop(path string) (beep.StreamSeekCloser, beep.Streamer, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, fmt.Errorf("open %s: %w", path, err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return streamer, beep.Loop(-1, streamer), format, nil
}

// Start initializes the speaker and begins playback. The speaker mixes on its
// own goroutine; Start returns as soon as playback is queued.
func (m *Music) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	streamer, loop, format, err := loadLoop(m.path)
	if err != nil {
		return err
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		return fmt.Errorf("speaker init: %w", err)
	}

	log.Printf("starting audio playback: %s", m.path)
	m.streamer = streamer
	m.ctrl = &beep.Ctrl{Streamer: loop, Paused: false}
	speaker.Play(m.ctrl)
	m.initialized = true
	return nil
}

// Close stops playback and releases the speaker
func (m *Music) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()

	speaker.Clear()
	speaker.Close()
	m.streamer.Close()
	m.initialized = false
}
