// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	minLatency = time.Microsecond
	maxLatency = 10 * time.Second
)

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 1)
}

type namedHistogram struct {
	name string
	mu   struct {
		sync.Mutex
		current *hdrhistogram.Histogram
	}
}

func newNamedHistogram(name string) *namedHistogram {
	w := &namedHistogram{name: name}
	w.mu.current = newHistogram()
	return w
}

func (w *namedHistogram) Record(elapsed time.Duration) {
	if elapsed < minLatency {
		elapsed = minLatency
	} else if elapsed > maxLatency {
		elapsed = maxLatency
	}
	w.mu.Lock()
	err := w.mu.current.RecordValue(elapsed.Nanoseconds())
	w.mu.Unlock()
	if err != nil {
		// Values are clamped to the histogram range above, so a recording
		// error cannot happen.
		panic(fmt.Sprintf("%s: recording value: %s", w.name, err))
	}
}

func (w *namedHistogram) tick() *hdrhistogram.Histogram {
	w.mu.Lock()
	defer w.mu.Unlock()
	h := w.mu.current
	w.mu.current = newHistogram()
	return h
}

type histogramRegistry struct {
	mu struct {
		sync.Mutex
		registered []*namedHistogram
	}
	start      time.Time
	cumulative map[string]*hdrhistogram.Histogram
	prevTick   time.Time
}

func newHistogramRegistry() *histogramRegistry {
	now := time.Now()
	return &histogramRegistry{
		start:      now,
		prevTick:   now,
		cumulative: make(map[string]*hdrhistogram.Histogram),
	}
}

func (r *histogramRegistry) Register(name string) *namedHistogram {
	w := newNamedHistogram(name)
	r.mu.Lock()
	r.mu.registered = append(r.mu.registered, w)
	r.mu.Unlock()
	return w
}

type histogramTick struct {
	Name       string
	Hist       *hdrhistogram.Histogram
	Cumulative *hdrhistogram.Histogram
	Elapsed    time.Duration
}

func (r *histogramRegistry) Tick(fn func(histogramTick)) {
	r.mu.Lock()
	registered := append([]*namedHistogram(nil), r.mu.registered...)
	r.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(r.prevTick)
	r.prevTick = now

	merged := make(map[string]*hdrhistogram.Histogram)
	var names []string
	for _, w := range registered {
		h := w.tick()
		if m, ok := merged[w.name]; ok {
			m.Merge(h)
		} else {
			merged[w.name] = h
			names = append(names, w.name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		h := merged[name]
		if c, ok := r.cumulative[name]; ok {
			c.Merge(h)
		} else {
			c := newHistogram()
			c.Merge(h)
			r.cumulative[name] = c
		}
		fn(histogramTick{
			Name:       name,
			Hist:       h,
			Cumulative: r.cumulative[name],
			Elapsed:    elapsed,
		})
	}
}

// runTest drives a workload: it launches the configured number of workers,
// ticks once per second with a latency report, and prints the cumulative
// summary when the duration elapses or the process is interrupted.
type test struct {
	init func(reg *histogramRegistry)
	// worker runs until done is closed.
	worker func(i int, done <-chan struct{})
	done   func(elapsed time.Duration, reg *histogramRegistry)
}

func runTest(t test) {
	reg := newHistogramRegistry()
	t.init(reg)

	var wg sync.WaitGroup
	done := make(chan struct{})
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			t.worker(i, done)
		}(i)
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	timeout := time.After(duration)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	start := time.Now()
	lines := 0
	for {
		select {
		case <-ticker.C:
			if lines%20 == 0 {
				fmt.Println("_elapsed____ops/sec___p50(ms)___p95(ms)___p99(ms)___pMax(ms)")
			}
			lines++
			reg.Tick(func(tick histogramTick) {
				h := tick.Hist
				fmt.Printf("%8s %10.1f %9.2f %9.2f %9.2f %9.2f %s\n",
					time.Duration(time.Since(start).Seconds()+0.5)*time.Second,
					float64(h.TotalCount())/tick.Elapsed.Seconds(),
					time.Duration(h.ValueAtQuantile(50)).Seconds()*1000,
					time.Duration(h.ValueAtQuantile(95)).Seconds()*1000,
					time.Duration(h.ValueAtQuantile(99)).Seconds()*1000,
					time.Duration(h.ValueAtQuantile(100)).Seconds()*1000,
					tick.Name)
			})

		case <-timeout:
			close(done)
			wg.Wait()
			finish(start, reg, t)
			return

		case <-sigCh:
			log.Println("interrupt received, shutting down")
			close(done)
			wg.Wait()
			finish(start, reg, t)
			return
		}
	}
}

func finish(start time.Time, reg *histogramRegistry, t test) {
	elapsed := time.Since(start)
	fmt.Println("\n_elapsed___ops(total)___ops/sec___p50(ms)___p95(ms)___p99(ms)___pMax(ms)")
	reg.Tick(func(tick histogramTick) {
		h := tick.Cumulative
		fmt.Printf("%7.1fs %12d %9.1f %9.2f %9.2f %9.2f %9.2f %s\n",
			elapsed.Seconds(), h.TotalCount(),
			float64(h.TotalCount())/elapsed.Seconds(),
			time.Duration(h.ValueAtQuantile(50)).Seconds()*1000,
			time.Duration(h.ValueAtQuantile(95)).Seconds()*1000,
			time.Duration(h.ValueAtQuantile(99)).Seconds()*1000,
			time.Duration(h.ValueAtQuantile(100)).Seconds()*1000,
			tick.Name)
	})
	if t.done != nil {
		t.done(elapsed, reg)
	}
}
