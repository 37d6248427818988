package speech

// NoSynthesizer and NoRecognizer are the default wiring on devices without
// speech support. Every operation no-ops with ErrUnsupported.

type NoSynthesizer struct{}

func (NoSynthesizer) Available() bool    { return false }
func (NoSynthesizer) Speak(string) error { return ErrUnsupported }

type NoRecognizer struct{}

func (NoRecognizer) Available() bool    { return false }
func (NoRecognizer) Start() error       { return ErrUnsupported }
func (NoRecognizer) Stop()              {}
func (NoRecognizer) Transcript() string { return "" }
