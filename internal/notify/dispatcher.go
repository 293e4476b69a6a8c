// Package notify delivers boundary events to the outside world: a visual
// message plus a playback command, published over MQTT for whatever client
// renders the HUD and owns the speaker.
package notify

import (
	"fmt"

	"github.com/tvardar/vakitd/internal/model"
)

// playback sounds understood by the client
const (
	SoundShort    = "short"     // bounded beep used for warnings
	SoundCall     = "call"      // full call, looped until stopped
	SoundCallDawn = "call-dawn" // dawn-specific variant of the full call
)

// Dispatcher consumes detector events. Implementations must follow the
// stop-before-start discipline: starting any playback interrupts whatever is
// currently playing, last write wins, nothing queues.
type Dispatcher interface {
	Notify(event model.NotificationEvent, settings model.Settings)
	Stop()
}

// Message is the visual half of a notification.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PlaybackCommand is the audio half. DurationSeconds 0 with Loop set means
// play until explicitly stopped.
type PlaybackCommand struct {
	Action          string `json:"action"` // "play" or "stop"
	Sound           string `json:"sound,omitempty"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
	Loop            bool   `json:"loop,omitempty"`
}

// buildMessage renders the visual text for an event.
func buildMessage(event model.NotificationEvent) Message {
	if event.Kind == model.EventWarning {
		return Message{
			Title: "Prayer time reminder",
			Body:  fmt.Sprintf("%s in %d minutes.", event.Period, event.MinutesRemaining),
		}
	}
	return Message{
		Title: "Prayer time",
		Body:  fmt.Sprintf("It is %s time.", event.Period),
	}
}

// buildPlayback maps an event to its playback command, or nil when the event
// produces no audio under the given settings.
func buildPlayback(event model.NotificationEvent, settings model.Settings) *PlaybackCommand {
	if !settings.AudioEnabled {
		return nil
	}

	if event.Kind == model.EventOnset && settings.OnsetSound == model.OnsetSoundFullCall {
		// the full call is never played for Sunrise
		if event.Period == model.Sunrise {
			return nil
		}
		sound := SoundCall
		if event.Period == model.Dawn {
			sound = SoundCallDawn
		}
		return &PlaybackCommand{Action: "play", Sound: sound, Loop: true}
	}

	return &PlaybackCommand{
		Action:          "play",
		Sound:           SoundShort,
		DurationSeconds: settings.SignalSeconds,
	}
}
