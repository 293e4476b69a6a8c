package notify

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/tvardar/vakitd/internal/model"
)

const (
	messagesTopic = "vakit/messages"
	playbackTopic = "vakit/playback"

	// publishes are confirmed off the hot path; a broker that stops acking
	// must not stall the caller's tick loop
	publishTimeout = 5 * time.Second
)

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// MQTTDispatcher publishes messages and playback commands to the broker.
type MQTTDispatcher struct {
	client mqtt.Client
}

// NewMQTTDispatcher connects to the broker at brokerURL (tcp://host:port).
func NewMQTTDispatcher(brokerURL, clientID string) (*MQTTDispatcher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}
	return &MQTTDispatcher{client: client}, nil
}

// Notify publishes the visual message and, when the settings call for audio,
// a stop followed by the play command so at most one signal is ever active.
func (d *MQTTDispatcher) Notify(event model.NotificationEvent, settings model.Settings) {
	d.publish(messagesTopic, buildMessage(event))

	cmd := buildPlayback(event, settings)
	if cmd == nil {
		return
	}
	d.publish(playbackTopic, PlaybackCommand{Action: "stop"})
	d.publish(playbackTopic, *cmd)

	log.Info().
		Str("event", event.String()).
		Str("sound", cmd.Sound).
		Int("duration", cmd.DurationSeconds).
		Msg("playback dispatched")
}

// Stop interrupts any playing signal.
func (d *MQTTDispatcher) Stop() {
	d.publish(playbackTopic, PlaybackCommand{Action: "stop"})
}

// Close disconnects from the broker.
func (d *MQTTDispatcher) Close() {
	d.client.Disconnect(250)
}

func (d *MQTTDispatcher) publish(topic string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("marshal publish payload")
		return
	}
	token := d.client.Publish(topic, 1, false, raw)
	if !token.WaitTimeout(publishTimeout) {
		log.Warn().Str("topic", topic).Msg("publish confirmation timed out")
		return
	}
	if token.Error() != nil {
		log.Error().Err(token.Error()).Str("topic", topic).Msg("publish failed")
	}
}
