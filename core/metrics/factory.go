package metrics

import "github.com/kilianp07/evsim/core/factory"

var sinkRegistry = factory.NewRegistry[RunRecorder]()

// RegisterSink adds a sink factory identified by name.
func RegisterSink(name string, f factory.Factory[RunRecorder]) error {
	return sinkRegistry.Register(name, f)
}

// NewSink creates a RunRecorder from the provided configuration list.
func NewSink(cfgs []factory.ModuleConfig) (RunRecorder, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	if len(cfgs) == 1 {
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]RunRecorder, len(cfgs))
	for i, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		sinks[i] = s
	}
	return NewMultiSink(sinks...), nil
}
