package tilt

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/mobile/exp/sensor"

	"github.com/vovakirdan/tiltmaze/internal/physics"
)

// SensorSource reads the device accelerometer.
// Events arrive on the sensor goroutine; Sample returns a snapshot.
type SensorSource struct {
	mu        sync.Mutex
	latest    physics.Vec2
	available bool
	started   bool
}

var (
	notifyOnce sync.Once
	activeMu   sync.Mutex
	active     *SensorSource
)

// dispatcher forwards sensor events to the active source.
// sensor.Notify may only be called once per process.
type dispatcher struct{}

func (dispatcher) Send(event interface{}) {
	activeMu.Lock()
	s := active
	activeMu.Unlock()
	if s != nil {
		s.Send(event)
	}
}

// NewSensorSource creates an accelerometer source. Call Start to enable it.
func NewSensorSource() *SensorSource {
	return &SensorSource{}
}

// Start enables the accelerometer at the given sampling delay. On
// platforms without sensors it returns an error and the source stays
// unavailable.
func (s *SensorSource) Start(delay time.Duration) error {
	notifyOnce.Do(func() { sensor.Notify(dispatcher{}) })

	activeMu.Lock()
	active = s
	activeMu.Unlock()

	if err := sensor.Enable(sensor.Accelerometer, delay); err != nil {
		return fmt.Errorf("tilt: enable accelerometer: %w", err)
	}

	s.mu.Lock()
	s.available = true
	s.started = true
	s.mu.Unlock()
	return nil
}

// Stop disables the accelerometer.
func (s *SensorSource) Stop() error {
	s.mu.Lock()
	started := s.started
	s.started = false
	s.available = false
	s.mu.Unlock()

	activeMu.Lock()
	if active == s {
		active = nil
	}
	activeMu.Unlock()

	if !started {
		return nil
	}
	if err := sensor.Disable(sensor.Accelerometer); err != nil {
		return fmt.Errorf("tilt: disable accelerometer: %w", err)
	}
	return nil
}

// Send receives sensor events. Non-accelerometer events are ignored.
func (s *SensorSource) Send(event interface{}) {
	e, ok := event.(sensor.Event)
	if !ok || e.Sensor != sensor.Accelerometer || len(e.Data) < 2 {
		return
	}
	s.mu.Lock()
	s.latest = physics.Vec2{e.Data[0], e.Data[1]}
	s.mu.Unlock()
}

// Sample implements Source.
func (s *SensorSource) Sample() physics.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Available implements Source.
func (s *SensorSource) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}
