package ruddertyper

import (
	"testing"
	"time"
)

func TestTTLSet_AddAndContains(t *testing.T) {
	set := NewTTLSet(time.Minute)
	defer set.Shutdown()
	set.Add("key1")
	if !set.Contains("key1") {
		t.Errorf("key1 should exist in the set")
	}
	if set.Contains("key2") {
		t.Errorf("key2 should not exist in the set")
	}
}

func TestTTLSet_AddIfAbsent(t *testing.T) {
	set := NewTTLSet(time.Minute)
	defer set.Shutdown()
	if !set.AddIfAbsent("key1") {
		t.Errorf("first add of key1 should report it as new")
	}
	if set.AddIfAbsent("key1") {
		t.Errorf("second add of key1 should report it as present")
	}
}

func TestTTLSet_Reset(t *testing.T) {
	set := NewTTLSet(time.Minute)
	defer set.Shutdown()
	set.Add("key1")
	set.Add("key2")
	set.Reset()
	if set.Contains("key1") {
		t.Errorf("key1 should not exist after reset")
	}
	if set.Contains("key2") {
		t.Errorf("key2 should not exist after reset")
	}
}

func TestTTLSet_StartResetThread(t *testing.T) {
	set := NewTTLSet(10 * time.Millisecond)
	defer set.Shutdown()

	set.Add("key1")
	time.Sleep(50 * time.Millisecond)
	if set.Contains("key1") {
		t.Errorf("key1 should not exist after automatic reset")
	}
}

func TestTTLSet_Shutdown(t *testing.T) {
	set := NewTTLSet(10 * time.Millisecond)
	set.Shutdown()
	time.Sleep(30 * time.Millisecond)

	set.Add("key2")
	time.Sleep(30 * time.Millisecond)
	if !set.Contains("key2") {
		t.Errorf("shutdown should prevent automatic reset")
	}
}
