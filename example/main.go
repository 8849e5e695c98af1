package main

import (
	"bufio"
	"strings"

	"github.com/reusing-lab/reusing/container/reusing"
	"github.com/reusing-lab/reusing/metrics"
	"github.com/reusing-lab/reusing/prometheus"
	"github.com/reusing-lab/reusing/xlog"
	"go.uber.org/zap"
)

// Tokenizing the same stream of lines over and over is the workload
// the reuse containers are made for: every line shrinks the word list
// to zero and regrows it, and after the first pass the per-word byte
// buffers are reused instead of reallocated.

const corpus = `the quick brown fox jumps over the lazy dog
pack my box with five dozen liquor jugs
how vexingly quick daft zebras jump
sphinx of black quartz judge my vow`

func main() {
	logger := xlog.New(xlog.Conf{
		ServiceName: "reusing-example",
		Level:       "info",
	})

	prometheus.Start(prometheus.Config{Port: 9101})

	ops := metrics.NewCounter(&metrics.VectorOption{
		Namespace: "reusing",
		Name:      "container_events_total",
		Help:      "Reuse container allocation and recycling events.",
		Labels:    []string{"container", "event"},
	})
	size := metrics.NewGauge(&metrics.VectorOption{
		Namespace: "reusing",
		Name:      "container_size",
		Help:      "Logical and physical container sizes.",
		Labels:    []string{"container", "kind"},
	})

	words := reusing.New[[]byte]()
	publisher := reusing.NewPublisher("words", words, ops, size)

	for n := 0; n < 1000; n++ {
		sc := bufio.NewScanner(strings.NewReader(corpus))
		for sc.Scan() {
			tokenize(words, sc.Bytes())
		}
	}

	publisher.Publish()
	st := words.Stats()
	logger.Info("tokenizer finished",
		zap.Uint64("allocs", st.Allocs),
		zap.Uint64("reuses", st.Reuses),
		zap.Int("words_last_line", words.Len()),
		zap.Int("capacity", words.Cap()),
	)
}

// tokenize splits line into space-separated words, reusing the word
// buffers held by ws across calls.
func tokenize(ws *reusing.Slice[[]byte], line []byte) {
	ws.Clear()
	i := 0
	for i < len(line) {
		for i < len(line) && line[i] == ' ' {
			i++
		}
		if i == len(line) {
			return
		}
		j := i
		for j < len(line) && line[j] != ' ' {
			j++
		}
		w := ws.PushMut()
		*w = append((*w)[:0], line[i:j]...)
		i = j
	}
}
