package ruddertyper

import (
	"context"
	"sync"
	"testing"
)

type logRecord struct {
	message string
	err     error
}

type logRecorder struct {
	records []logRecord
	mu      sync.Mutex
}

func (l *logRecorder) callback(message string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, logRecord{message: message, err: err})
}

func (l *logRecorder) errors() []error {
	l.mu.Lock()
	defer l.mu.Unlock()
	errs := make([]error, 0)
	for _, r := range l.records {
		if r.err != nil {
			errs = append(errs, r.err)
		}
	}
	return errs
}

func (l *logRecorder) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	msgs := make([]string, 0, len(l.records))
	for _, r := range l.records {
		msgs = append(msgs, r.message)
	}
	return msgs
}

// captureOutputLogs routes the global output logger into a recorder for the
// duration of the test.
func captureOutputLogs(t *testing.T) *logRecorder {
	t.Helper()
	recorder := &logRecorder{}
	previous := Logger()
	InitializeGlobalOutputLogger(OutputLoggerOptions{LogCallback: recorder.callback}, nil)
	t.Cleanup(func() {
		global.mu.Lock()
		global.logger = previous
		global.mu.Unlock()
	})
	return recorder
}

type recordingAnalytics struct {
	messages []Message
	err      error
	mu       sync.Mutex
}

func (r *recordingAnalytics) Enqueue(msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, msg)
	return nil
}

func (r *recordingAnalytics) received() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := make([]Message, len(r.messages))
	copy(msgs, r.messages)
	return msgs
}

type Metric struct {
	Name  string
	Type  string
	Value float64
	Tags  map[string]interface{}
}

type recordingObservabilityClient struct {
	metrics  []Metric
	initd    bool
	shutdown bool
	mu       sync.Mutex
}

func (o *recordingObservabilityClient) Init(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.initd = true
	return nil
}

func (o *recordingObservabilityClient) Increment(metricName string, value int, tags map[string]interface{}) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.metrics = append(o.metrics, Metric{Name: metricName, Type: "increment", Value: float64(value), Tags: tags})
	return nil
}

func (o *recordingObservabilityClient) Distribution(metricName string, value float64, tags map[string]interface{}) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.metrics = append(o.metrics, Metric{Name: metricName, Type: "distribution", Value: value, Tags: tags})
	return nil
}

func (o *recordingObservabilityClient) Shutdown(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.shutdown = true
	return nil
}

func (o *recordingObservabilityClient) named(name string) []Metric {
	o.mu.Lock()
	defer o.mu.Unlock()
	found := make([]Metric, 0)
	for _, m := range o.metrics {
		if m.Name == name {
			found = append(found, m)
		}
	}
	return found
}

var testGeneratorContext = GeneratorContext{
	SDK:                 "analytics-go",
	Language:            "go",
	RudderTyperVersion:  "1.2.0",
	TrackingPlanID:      "tp_2kKI0i514th5OEuYi5AdsRwNlXC",
	TrackingPlanVersion: "3",
}

// newTestClient builds a client with lookups disabled, forwarding to a
// recording analytics instance and logging into a recorder.
func newTestClient(t *testing.T, configure func(o *Options)) (*Client, *recordingAnalytics, *logRecorder) {
	t.Helper()
	analytics := &recordingAnalytics{}
	logs := &logRecorder{}
	options := &Options{
		Analytics:           analytics,
		OutputLoggerOptions: OutputLoggerOptions{LogCallback: logs.callback},
		IPCountryOptions:    IPCountryOptions{Disabled: true},
		UAParserOptions:     UAParserOptions{Disabled: true},
	}
	if configure != nil {
		configure(options)
	}
	previous := Logger()
	client := NewClientWithOptions(testGeneratorContext, options)
	t.Cleanup(func() {
		client.Shutdown()
		global.mu.Lock()
		global.logger = previous
		global.mu.Unlock()
	})
	return client, analytics, logs
}

// address is a minimal generated-style type used across tests.
type address struct {
	properties *Properties
}

func newAddress(city string, zip *string) *address {
	p := NewProperties().PutValue("city", city)
	if zip != nil {
		p.PutValue("zip", *zip)
	} else {
		p.PutValue("zip", nil)
	}
	return &address{properties: p.Freeze()}
}

func (a *address) ToProperties() *Properties {
	return a.properties
}
