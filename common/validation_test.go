package common

import "testing"

func TestRequireNotEmpty_PassesWhenNonEmpty(t *testing.T) {
	if err := RequireNotEmpty("value", "error"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestRequireNotEmpty_FailsWhenEmpty(t *testing.T) {
	err := RequireNotEmpty("", "name is required")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != StatusInvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err.Code)
	}
	if err.Message != "name is required" {
		t.Errorf("expected 'name is required', got %q", err.Message)
	}
}

func TestRequirePositive_Passes(t *testing.T) {
	if err := RequirePositive(1, "error"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := RequirePositive(int64(100), "error"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestRequirePositive_FailsOnZero(t *testing.T) {
	err := RequirePositive(0, "must be positive")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Message != "must be positive" {
		t.Errorf("expected 'must be positive', got %q", err.Message)
	}
}

func TestRequirePositive_FailsOnNegative(t *testing.T) {
	if err := RequirePositive(-1, "error"); err == nil {
		t.Fatal("expected error for negative value")
	}
}

func TestRequireNonNegative(t *testing.T) {
	if err := RequireNonNegative(0, "error"); err != nil {
		t.Errorf("expected nil for zero, got %v", err)
	}
	if err := RequireNonNegative(Money(-1), "negative"); err == nil {
		t.Fatal("expected error for negative money")
	}
}

func TestRequireInRange(t *testing.T) {
	if err := RequireInRange(4.5, 0, 5, "error"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := RequireInRange(5.1, 0, 5, "rating out of range"); err == nil {
		t.Fatal("expected error above range")
	}
	if err := RequireInRange(-0.1, 0, 5, "rating out of range"); err == nil {
		t.Fatal("expected error below range")
	}
}
