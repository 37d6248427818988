package speech

import (
	"log"
	"sync"
)

// ConsoleSynthesizer "speaks" by writing to the logger. Useful when no audio
// device is attached.
type ConsoleSynthesizer struct {
	Logger *log.Logger
}

func (s ConsoleSynthesizer) Available() bool { return true }

func (s ConsoleSynthesizer) Speak(text string) error {
	s.Logger.Printf("[tts] %s", text)
	return nil
}

// ScriptedRecognizer replays a fixed transcript while started. It stands in
// for a real recognizer in tests and demos.
type ScriptedRecognizer struct {
	Script string

	mu     sync.Mutex
	active bool
}

func (r *ScriptedRecognizer) Available() bool { return true }

func (r *ScriptedRecognizer) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = true
	return nil
}

func (r *ScriptedRecognizer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = false
}

func (r *ScriptedRecognizer) Transcript() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return ""
	}
	return r.Script
}
