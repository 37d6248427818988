// Package speech models the optional device capabilities the classroom view
// can use: text-to-speech of the course description and live captioning.
// Implementations are injected; when a capability is absent the controller
// answers with a user-visible unsupported message instead of failing the
// page.
package speech

import "errors"

var ErrUnsupported = errors.New("speech capability not supported on this device")

type Synthesizer interface {
	Available() bool
	Speak(text string) error
}

type Recognizer interface {
	Available() bool
	Start() error
	Stop()
	Transcript() string
}
