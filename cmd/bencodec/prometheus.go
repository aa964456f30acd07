// Copyright 2016 The Chihaya Authors. All rights reserved.
// Use of this source code is governed by the BSD 2-Clause license,
// which can be found in the LICENSE file.

package main

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/chihaya/bencode"
)

func init() {
	prometheus.MustRegister(promDecodeDurationMilliseconds)
}

var promDecodeDurationMilliseconds = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "bencodec_decode_duration_milliseconds",
		Help:    "The duration of time it takes to decode one bencoded value",
		Buckets: prometheus.ExponentialBuckets(9.375, 2, 10),
	},
	[]string{"error"},
)

// recordDecodeDuration records the duration of time to decode one value in
// milliseconds.
func recordDecodeDuration(err error, duration time.Duration) {
	var errString string
	if err != nil {
		var be *bencode.Error
		if errors.As(err, &be) {
			errString = be.Kind().String()
		} else {
			errString = "internal error"
		}
	}

	promDecodeDurationMilliseconds.
		WithLabelValues(errString).
		Observe(float64(duration.Nanoseconds()) / float64(time.Millisecond))
}
