package telemetry

import (
	"github.com/kilianp07/evsim/core/factory"
	coremetrics "github.com/kilianp07/evsim/core/metrics"
)

// init registers the MQTT publisher as a metrics sink.
func init() {
	_ = coremetrics.RegisterSink("mqtt", func(conf map[string]any) (coremetrics.RunRecorder, error) {
		var c Config
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewPublisher(c)
	})
}
