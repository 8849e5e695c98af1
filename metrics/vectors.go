package metrics

import (
	"errors"

	prom "github.com/prometheus/client_golang/prometheus"
)

type promCounter struct {
	counter *prom.CounterVec
}

var _ Counter = (*promCounter)(nil)

func NewCounter(conf *VectorOption) Counter {
	if conf == nil {
		return nil
	}
	vec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: conf.Namespace,
		Subsystem: conf.Subsystem,
		Name:      conf.Name,
		Help:      conf.Help,
	}, conf.Labels)
	prom.MustRegister(vec)
	return &promCounter{counter: vec}
}

// Inc implements Counter.
func (p *promCounter) Inc(labels ...string) {
	update(func() {
		p.counter.WithLabelValues(labels...).Inc()
	})
}

// Add implements Counter.
func (p *promCounter) Add(delta float64, labels ...string) {
	update(func() {
		p.counter.WithLabelValues(labels...).Add(delta)
	})
}

// Close implements Counter.
func (p *promCounter) Close() error {
	if prom.Unregister(p.counter) {
		return nil
	}
	return errors.New("failed to unregister counter metric")
}

type promGauge struct {
	gauge *prom.GaugeVec
}

var _ Gauge = (*promGauge)(nil)

func NewGauge(conf *VectorOption) Gauge {
	if conf == nil {
		return nil
	}
	vec := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: conf.Namespace,
		Subsystem: conf.Subsystem,
		Name:      conf.Name,
		Help:      conf.Help,
	}, conf.Labels)
	prom.MustRegister(vec)
	return &promGauge{gauge: vec}
}

// Set implements Gauge.
func (p *promGauge) Set(value float64, labels ...string) {
	update(func() {
		p.gauge.WithLabelValues(labels...).Set(value)
	})
}

// Inc implements Gauge.
func (p *promGauge) Inc(labels ...string) {
	update(func() {
		p.gauge.WithLabelValues(labels...).Inc()
	})
}

// Dec implements Gauge.
func (p *promGauge) Dec(labels ...string) {
	update(func() {
		p.gauge.WithLabelValues(labels...).Dec()
	})
}

// Add implements Gauge.
func (p *promGauge) Add(delta float64, labels ...string) {
	update(func() {
		p.gauge.WithLabelValues(labels...).Add(delta)
	})
}

// Sub implements Gauge.
func (p *promGauge) Sub(delta float64, labels ...string) {
	update(func() {
		p.gauge.WithLabelValues(labels...).Sub(delta)
	})
}

// Close implements Gauge.
func (p *promGauge) Close() error {
	if prom.Unregister(p.gauge) {
		return nil
	}
	return errors.New("failed to unregister gauge metric")
}
