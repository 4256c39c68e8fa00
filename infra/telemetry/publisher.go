// Package telemetry streams simulation snapshots to an MQTT broker, the way
// a real vehicle would publish its state of charge.
package telemetry

import (
	"encoding/json"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"

	coremetrics "github.com/kilianp07/evsim/core/metrics"
	"github.com/kilianp07/evsim/infra/logger"
)

// Config defines the connection parameters for the telemetry publisher.
type Config struct {
	Broker      string `json:"broker"`
	ClientID    string `json:"client_id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	TopicPrefix string `json:"topic_prefix"`
	QoS         byte   `json:"qos"`
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Publisher publishes tick snapshots and run summaries as JSON. It satisfies
// the metrics sink interfaces so it composes with the other recorders.
type Publisher struct {
	cli    pahoClient
	prefix string
	qos    byte
	log    logger.Logger
}

// NewPublisher connects to the broker and returns a ready publisher.
func NewPublisher(cfg Config) (*Publisher, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("telemetry broker is required")
	}
	prefix := cfg.TopicPrefix
	if prefix == "" {
		prefix = "evsim"
	}
	opts := paho.NewClientOptions().AddBroker(cfg.Broker)
	if cfg.ClientID != "" {
		opts.SetClientID(cfg.ClientID)
	}
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	cli := newMQTTClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("telemetry connect: %w", token.Error())
	}

	return &Publisher{
		cli:    cli,
		prefix: prefix,
		qos:    cfg.QoS,
		log:    logger.New("telemetry"),
	}, nil
}

// RecordTick publishes one snapshot on <prefix>/<run_id>/tick.
func (p *Publisher) RecordTick(ev coremetrics.TickSnapshot) error {
	return p.publish(fmt.Sprintf("%s/%s/tick", p.prefix, ev.RunID), ev)
}

// RecordRun publishes the run result on <prefix>/<run_id>/summary.
func (p *Publisher) RecordRun(ev coremetrics.RunResult) error {
	return p.publish(fmt.Sprintf("%s/%s/summary", p.prefix, ev.RunID), ev)
}

func (p *Publisher) publish(topic string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if token := p.cli.Publish(topic, p.qos, false, payload); token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish %s: %w", topic, token.Error())
	}
	return nil
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	p.cli.Disconnect(250)
}
