// Package telemetry receives in-trip odometer and fuel readings over MQTT
// and folds them into the fleet store.
package telemetry

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
)

// DefaultTopic matches readings for every vehicle.
const DefaultTopic = "fleet/telemetry/#"

// Ingestor subscribes to vehicle telemetry and applies readings to the
// store. Readings for vehicles that are not on a trip are dropped by the
// store, and the odometer never moves backwards.
type Ingestor struct {
	store  *store.Store
	client mqtt.Client
}

// NewIngestor builds an ingestor for the given broker.
func NewIngestor(s *store.Store, brokerURL, clientID string) *Ingestor {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetAutoReconnect(true)

	return &Ingestor{
		store:  s,
		client: mqtt.NewClient(opts),
	}
}

// Start connects and subscribes. Blocks only for connection setup.
func (i *Ingestor) Start(topic string) error {
	if topic == "" {
		topic = DefaultTopic
	}
	if token := i.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt connect failed: %w", token.Error())
	}
	if token := i.client.Subscribe(topic, 1, i.handle); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt subscribe failed: %w", token.Error())
	}
	log.WithField("topic", topic).Info("Telemetry ingest started")
	return nil
}

// Stop disconnects from the broker.
func (i *Ingestor) Stop() {
	i.client.Disconnect(250)
}

func (i *Ingestor) handle(_ mqtt.Client, msg mqtt.Message) {
	var reading models.TelemetryReading
	if err := json.Unmarshal(msg.Payload(), &reading); err != nil {
		log.WithError(err).WithField("topic", msg.Topic()).Warn("Dropping malformed telemetry")
		return
	}
	if reading.VehicleID == "" {
		log.WithField("topic", msg.Topic()).Warn("Dropping telemetry without vehicle id")
		return
	}
	if err := i.store.ApplyTelemetry(reading); err != nil {
		log.WithError(err).WithField("vehicle_id", reading.VehicleID).Error("Failed to apply telemetry")
	}
}
