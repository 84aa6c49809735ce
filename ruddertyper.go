// Package ruddertyper is the runtime used by RudderTyper-generated Go
// analytics clients: an ordered property bag, serialization of nested
// generated types, and a client that stamps every call with the generator
// context before handing it to the host analytics SDK.
package ruddertyper

import (
	"fmt"
	"sync"
)

var (
	instance   *Client
	instanceMu sync.RWMutex
)

// Initializes the global RudderTyper client with the given generator context
func Initialize(generatorContext GeneratorContext) {
	InitializeWithOptions(generatorContext, &Options{})
}

// Initializes the global RudderTyper client with the given generator context and options
func InitializeWithOptions(generatorContext GeneratorContext, options *Options) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance != nil {
		Logger().Log("RudderTyper is already initialized.", nil)
		return
	}
	instance = NewClientWithOptions(generatorContext, options)
}

// IsInitialized returns whether the global client has already been initialized or not
func IsInitialized() bool {
	instanceMu.RLock()
	defer instanceMu.RUnlock()
	return instance != nil
}

func getInstance(caller string) *Client {
	instanceMu.RLock()
	defer instanceMu.RUnlock()
	if instance == nil {
		panic(fmt.Errorf("must Initialize() ruddertyper before calling %s", caller))
	}
	return instance
}

// Sets the analytics instance the global client forwards calls to
func SetAnalytics(analytics Analytics) {
	getInstance("SetAnalytics").SetAnalytics(analytics)
}

func RegisterSchema(event string, schemaJSON string) error {
	return getInstance("RegisterSchema").RegisterSchema(event, schemaJSON)
}

func Track(event string, properties Serializable, msg Message) error {
	return getInstance("Track").Track(event, properties, msg)
}

func Page(name string, properties Serializable, msg Message) error {
	return getInstance("Page").Page(name, properties, msg)
}

func Screen(name string, properties Serializable, msg Message) error {
	return getInstance("Screen").Screen(name, properties, msg)
}

func Identify(traits Serializable, msg Message) error {
	return getInstance("Identify").Identify(traits, msg)
}

func Group(groupID string, traits Serializable, msg Message) error {
	return getInstance("Group").Group(groupID, traits, msg)
}

func UnknownCall(method string) error {
	return getInstance("UnknownCall").UnknownCall(method)
}

// Stops the global client and clears it so Initialize can be called again
func Shutdown() {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		return
	}
	instance.Shutdown()
	instance = nil
}
