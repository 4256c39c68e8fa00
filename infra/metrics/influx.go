package metrics

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/evsim/core/metrics"
	"github.com/kilianp07/evsim/infra/logger"
)

// InfluxSink writes run results and tick snapshots to an InfluxDB instance
// using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.RunRecorder {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordRun writes one point per completed run.
func (s *InfluxSink) RecordRun(ev coremetrics.RunResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("simulation_run").
		AddTag("run_id", ev.RunID).
		AddTag("target_speed_kmh", fmt.Sprintf("%g", ev.TargetSpeedKmh)).
		AddField("distance_km", ev.DistanceKm).
		AddField("charging_stops", ev.ChargingStops).
		AddField("energy_per_km_wh", ev.EnergyPerKmWh).
		AddField("final_charge_wh", ev.FinalChargeWh).
		AddField("duration_hours", ev.DurationHours).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordTick writes a per-tick snapshot of the vehicle.
func (s *InfluxSink) RecordTick(ev coremetrics.TickSnapshot) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("vehicle_state").
		AddTag("run_id", ev.RunID).
		AddField("tick", ev.Tick).
		AddField("charge_wh", ev.ChargeWh).
		AddField("distance_km", ev.DistanceKm).
		AddField("charging", ev.Charging).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}
