package notify

import (
	"strings"
	"testing"

	"github.com/tvardar/vakitd/internal/model"
)

func settings() model.Settings {
	s := model.DefaultSettings()
	s.SignalSeconds = 20
	return s
}

func TestWarningPlaysBoundedShortSignal(t *testing.T) {
	event := model.NotificationEvent{Kind: model.EventWarning, Period: model.Midday, MinutesRemaining: 15}

	cmd := buildPlayback(event, settings())
	if cmd == nil {
		t.Fatal("no playback for warning")
	}
	if cmd.Sound != SoundShort || cmd.DurationSeconds != 20 || cmd.Loop {
		t.Errorf("cmd = %+v, want bounded short signal", cmd)
	}

	msg := buildMessage(event)
	if !strings.Contains(msg.Body, "Midday") || !strings.Contains(msg.Body, "15") {
		t.Errorf("message = %+v", msg)
	}
}

func TestOnsetFullCallLoops(t *testing.T) {
	event := model.NotificationEvent{Kind: model.EventOnset, Period: model.Sunset}

	cmd := buildPlayback(event, settings())
	if cmd == nil {
		t.Fatal("no playback for onset")
	}
	if cmd.Sound != SoundCall || !cmd.Loop || cmd.DurationSeconds != 0 {
		t.Errorf("cmd = %+v, want looping full call", cmd)
	}
}

func TestOnsetDawnUsesDawnVariant(t *testing.T) {
	event := model.NotificationEvent{Kind: model.EventOnset, Period: model.Dawn}

	cmd := buildPlayback(event, settings())
	if cmd == nil || cmd.Sound != SoundCallDawn {
		t.Errorf("cmd = %+v, want dawn call variant", cmd)
	}
}

func TestOnsetSunriseIsSilent(t *testing.T) {
	event := model.NotificationEvent{Kind: model.EventOnset, Period: model.Sunrise}

	if cmd := buildPlayback(event, settings()); cmd != nil {
		t.Errorf("cmd = %+v, want no audio for Sunrise", cmd)
	}
}

func TestOnsetShortSignalMode(t *testing.T) {
	s := settings()
	s.OnsetSound = model.OnsetSoundShortSignal
	event := model.NotificationEvent{Kind: model.EventOnset, Period: model.Sunset}

	cmd := buildPlayback(event, s)
	if cmd == nil || cmd.Sound != SoundShort || cmd.DurationSeconds != 20 {
		t.Errorf("cmd = %+v, want short signal in short-signal mode", cmd)
	}
}

func TestAudioDisabledSkipsPlayback(t *testing.T) {
	s := settings()
	s.AudioEnabled = false

	for _, event := range []model.NotificationEvent{
		{Kind: model.EventWarning, Period: model.Midday, MinutesRemaining: 15},
		{Kind: model.EventOnset, Period: model.Night},
	} {
		if cmd := buildPlayback(event, s); cmd != nil {
			t.Errorf("cmd = %+v for %s, want nil with audio disabled", cmd, event)
		}
	}
}
