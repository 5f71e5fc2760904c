package redis

import (
	"testing"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/config"
)

func TestNewClient_Disabled(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{
			Enabled: false,
		},
	}

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.Enabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestCache_Disabled(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{
			Enabled: false,
		},
	}

	client, _ := New(cfg)
	cache := NewCache(client, "test")

	// When Redis is disabled, cache operations should be no-ops
	if err := cache.Set(nil, "key", "value", TTLShort); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var result string
	found, err := cache.Get(nil, "key", &result)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Expected cache miss when Redis disabled")
	}

	if err := cache.Delete(nil, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestGetOrSet_DisabledStillComputes(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{
			Enabled: false,
		},
	}

	client, _ := New(cfg)
	cache := NewCache(client, "test")

	// Without Redis the loader must still run and fill dest
	calls := 0
	var result string
	err := cache.GetOrSet(nil, "key", &result, TTLShort, func() (interface{}, error) {
		calls++
		return "computed", nil
	})
	if err != nil {
		t.Fatalf("GetOrSet() error = %v", err)
	}
	if result != "computed" {
		t.Errorf("result = %q, want %q", result, "computed")
	}
	if calls != 1 {
		t.Errorf("loader calls = %d, want 1", calls)
	}
}

func TestCacheKeys(t *testing.T) {
	tests := []struct {
		name     string
		fn       func() string
		expected string
	}{
		{
			name:     "ScenarioKey",
			fn:       func() string { return ScenarioKey("8f14e45f-ceea-467f-a0d6-84b1b70f3f41") },
			expected: "scenario:info:8f14e45f-ceea-467f-a0d6-84b1b70f3f41",
		},
		{
			name:     "ScenarioListKey",
			fn:       func() string { return ScenarioListKey(50, 0) },
			expected: "scenario:list:50:0",
		},
		{
			name:     "ScenarioListKeySecondPage",
			fn:       func() string { return ScenarioListKey(50, 50) },
			expected: "scenario:list:50:50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
