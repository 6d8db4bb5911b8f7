/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package client

import (
	libres "github.com/nabbar/golift/response"
	"github.com/prometheus/client_golang/prometheus"
)

// metrics exposes the client activity to a prometheus registry.
type metrics struct {
	act prometheus.Gauge
	cnt *prometheus.CounterVec
	dur prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		act: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "golift",
			Subsystem: "client",
			Name:      "active_requests",
			Help:      "Number of requests pending or executing.",
		}),
		cnt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golift",
			Subsystem: "client",
			Name:      "completions_total",
			Help:      "Number of completed requests by terminal status.",
		}, []string{"status"}),
		dur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "golift",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Total request time distribution.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.act = registerGauge(reg, m.act)
	m.cnt = registerCounterVec(reg, m.cnt)
	m.dur = registerHistogram(reg, m.dur)

	return m
}

// The register helpers reuse the existing collector when another client
// already registered with the same registry.

func registerGauge(reg prometheus.Registerer, c prometheus.Gauge) prometheus.Gauge {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Gauge)
		}
	}

	return c
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
	}

	return c
}

func registerHistogram(reg prometheus.Registerer, c prometheus.Histogram) prometheus.Histogram {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
	}

	return c
}

func (m *metrics) submitted(n int) {
	m.act.Add(float64(n))
}

func (m *metrics) released() {
	m.act.Dec()
}

func (m *metrics) completed(rsp libres.Response) {
	m.cnt.WithLabelValues(rsp.Result().String()).Inc()
	m.dur.Observe(rsp.TotalTime().Seconds())
}
