package metrics

import (
	"github.com/kilianp07/evsim/core/factory"
	coremetrics "github.com/kilianp07/evsim/core/metrics"
	"github.com/kilianp07/evsim/infra/logger"
)

// init registers the built-in metrics sinks.
func init() {
	_ = coremetrics.RegisterSink("nop", func(map[string]any) (coremetrics.RunRecorder, error) {
		return coremetrics.NopSink{}, nil
	})

	_ = coremetrics.RegisterSink("prometheus", func(conf map[string]any) (coremetrics.RunRecorder, error) {
		var c struct {
			Port int `json:"port"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		sink, err := NewPromSink()
		if err != nil {
			return nil, err
		}
		if c.Port > 0 {
			go func() {
				if err := StartPromServer(c.Port); err != nil {
					logger.New("prom-server").Errorf("prom server: %v", err)
				}
			}()
		}
		return sink, nil
	})

	_ = coremetrics.RegisterSink("influx", func(conf map[string]any) (coremetrics.RunRecorder, error) {
		var c struct {
			URL    string `json:"url"`
			Token  string `json:"token"`
			Org    string `json:"org"`
			Bucket string `json:"bucket"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket), nil
	})
}
