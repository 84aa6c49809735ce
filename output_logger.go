package ruddertyper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"runtime"

	"github.com/sirupsen/logrus"
)

const METRIC_PREFIX = "ruddertyper.sdk"

var writeKeyPattern = regexp.MustCompile(`(?i)(write_?key["'=: ]+)[a-z0-9]+`)

type OutputLogger struct {
	options             OutputLoggerOptions
	observabilityClient IObservabilityClient
	sink                *logrus.Logger
}

func newOutputLogger(options OutputLoggerOptions, observabilityClient IObservabilityClient) *OutputLogger {
	sink := options.Logger
	if sink == nil {
		sink = logrus.New()
		sink.SetOutput(os.Stderr)
	}
	return &OutputLogger{
		options:             options,
		observabilityClient: observabilityClient,
		sink:                sink,
	}
}

func (o *OutputLogger) Log(msg string, err error) {
	if o.isInitialized() && o.options.LogCallback != nil {
		o.options.LogCallback(sanitize(msg), err)
		return
	}
	sink := logrus.StandardLogger()
	if o.isInitialized() {
		sink = o.sink
	}
	entry := sink.WithField("component", "ruddertyper")
	if err != nil {
		entry.WithError(errors.New(sanitize(err.Error()))).Error(sanitize(msg))
	} else if msg != "" {
		entry.Info(sanitize(msg))
	}
}

func (o *OutputLogger) Debug(any interface{}) {
	if !o.isInitialized() || !o.options.EnableDebug {
		return
	}
	bytes, _ := json.MarshalIndent(any, "", "	")
	o.Log(fmt.Sprintf("%+v", string(bytes)), nil)
}

func (o *OutputLogger) LogError(err interface{}) {
	errMsg := toError(err)

	o.Increment("sdk_exceptions_count", 1, map[string]interface{}{})
	stack := make([]byte, 1024)
	n := runtime.Stack(stack, false)
	o.Log(fmt.Sprintf("Error: %s\nStack Trace:\n%s", errMsg.Error(), string(stack[:n])), errMsg)
}

func (o *OutputLogger) Initialize() {
	if o.isInitialized() && o.observabilityClient != nil {
		defer func() {
			if r := recover(); r != nil {
				o.Log("Observability client Init panicked", nil)
			}
		}()
		err := o.observabilityClient.Init(context.Background())
		if err != nil {
			o.Log("Observability client Init failed", err)
		}
	}
}

func (o *OutputLogger) Increment(metricName string, value int, tags map[string]interface{}) {
	if o.isInitialized() && o.observabilityClient != nil {
		defer func() {
			if r := recover(); r != nil {
				o.Log("Observability client Increment panicked", nil)
			}
		}()
		err := o.observabilityClient.Increment(fmt.Sprintf("%s.%s", METRIC_PREFIX, metricName), value, tags)
		if err != nil {
			o.Log("Observability client Increment failed", err)
		}
	}
}

func (o *OutputLogger) Distribution(metricName string, value float64, tags map[string]interface{}) {
	if o.isInitialized() && o.observabilityClient != nil {
		defer func() {
			if r := recover(); r != nil {
				o.Log("Observability client Distribution panicked", nil)
			}
		}()
		err := o.observabilityClient.Distribution(fmt.Sprintf("%s.%s", METRIC_PREFIX, metricName), value, tags)
		if err != nil {
			o.Log("Observability client Distribution failed", err)
		}
	}
}

func (o *OutputLogger) Shutdown() {
	if o.isInitialized() && o.observabilityClient != nil {
		defer func() {
			if r := recover(); r != nil {
				o.Log("Observability client Shutdown panicked", nil)
			}
		}()
		err := o.observabilityClient.Shutdown(context.Background())
		if err != nil {
			o.Log("Observability client Shutdown failed", err)
		}
	}
}

func (o *OutputLogger) LogViolation(msg Message, violations []Violation) {
	event := msg.Event
	if event == "" {
		event = string(msg.Type)
	}
	err := &ViolationError{Event: event, Violations: violations}
	o.Log(fmt.Sprintf("%s call does not match the tracking plan", msg.Type), err)
}

func (o *OutputLogger) isInitialized() bool {
	return o != nil
}

func sanitize(string string) string {
	return writeKeyPattern.ReplaceAllString(string, "${1}****")
}
