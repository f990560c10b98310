package service

import (
	"context"
	"testing"
)

func TestGetNeglectThresholdDefault(t *testing.T) {
	svc := NewPreferenceService(newMockPreferenceRepository())

	days, err := svc.GetNeglectThreshold(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 180 {
		t.Errorf("expected default 180, got %d", days)
	}
}

func TestSetNeglectThresholdRoundTrip(t *testing.T) {
	prefRepo := newMockPreferenceRepository()
	svc := NewPreferenceService(prefRepo)

	if err := svc.SetNeglectThreshold(context.Background(), "user-1", 90); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefRepo.setCalls != 1 {
		t.Errorf("expected 1 set call, got %d", prefRepo.setCalls)
	}

	days, err := svc.GetNeglectThreshold(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 90 {
		t.Errorf("expected 90, got %d", days)
	}
}

func TestSetNeglectThresholdRejectsOutOfRange(t *testing.T) {
	prefRepo := newMockPreferenceRepository()
	svc := NewPreferenceService(prefRepo)

	for _, days := range []int{0, 29, 366, -1} {
		if err := svc.SetNeglectThreshold(context.Background(), "user-1", days); err == nil {
			t.Errorf("expected error for %d days", days)
		}
	}
	if prefRepo.setCalls != 0 {
		t.Errorf("rejected values must not be persisted, got %d set calls", prefRepo.setCalls)
	}
}
