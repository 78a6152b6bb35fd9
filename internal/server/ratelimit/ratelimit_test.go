package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(configs ...EndpointConfig) *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: configs,
	}
}

func TestBucket_BurstThenExhaustion(t *testing.T) {
	b := newBucket(3, 0.001) // refill slow enough to not matter here

	for i := 0; i < 3; i++ {
		allowed, _, _ := b.take()
		assert.True(t, allowed, "request %d within burst", i)
	}
	allowed, remaining, _ := b.take()
	assert.False(t, allowed)
	assert.Zero(t, remaining)
}

func TestBucket_Refills(t *testing.T) {
	b := newBucket(1, 100) // 100 tokens/sec

	allowed, _, _ := b.take()
	require.True(t, allowed)
	allowed, _, _ = b.take()
	require.False(t, allowed)

	time.Sleep(25 * time.Millisecond)
	allowed, _, _ = b.take()
	assert.True(t, allowed, "bucket refills over time")
}

func TestLimiter_EnforcesBurst(t *testing.T) {
	l := NewLimiter(testConfig(
		EndpointConfig{Path: "/api/resumes/optimize", Method: "POST", Limit: 20, Window: time.Hour, Burst: 2},
	))
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, info := l.Allow("1.2.3.4", "/api/resumes/optimize", "POST")
		assert.True(t, allowed)
		assert.Equal(t, 20, info.Limit)
	}
	allowed, info := l.Allow("1.2.3.4", "/api/resumes/optimize", "POST")
	assert.False(t, allowed)
	assert.Positive(t, info.RetryAfter)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig(
		EndpointConfig{Path: "/api/resumes/optimize", Method: "POST", Limit: 20, Window: time.Hour, Burst: 1},
	))
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/api/resumes/optimize", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/api/resumes/optimize", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("5.6.7.8", "/api/resumes/optimize", "POST")
	assert.True(t, allowed, "a second client has its own bucket")
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	cfg := testConfig(
		EndpointConfig{Path: "/api/resumes/optimize", Method: "POST", Limit: 20, Window: time.Hour, Burst: 1},
	)
	cfg.Whitelist["10.0.0.1"] = true
	cfg.Blacklist["10.0.0.2"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/api/resumes/optimize", "POST")
		assert.True(t, allowed, "whitelisted client is never limited")
	}

	allowed, _ := l.Allow("10.0.0.2", "/api/health", "GET")
	assert.False(t, allowed, "blacklisted client is always rejected")
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/resumes/optimize", "POST")
		assert.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		name      string
		path      string
		method    string
		wantPath  string
		wantLimit int
	}{
		{name: "exact generation endpoint", path: "/api/resumes/optimize", method: "POST", wantPath: "/api/resumes/optimize", wantLimit: 20},
		{name: "chat prefix", path: "/api/portfolios/chat/answer", method: "POST", wantPath: "/api/portfolios/chat/", wantLimit: 300},
		{name: "auth prefix", path: "/api/auth/login", method: "POST", wantPath: "/api/auth/", wantLimit: 30},
		{name: "interview answers get their own budget", path: "/api/interviews/answer", method: "POST", wantPath: "/api/interviews/answer", wantLimit: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantPath, got.Path)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	got := MatchEndpoint("/api/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, got)
	assert.Zero(t, got.Limit)
}

func TestMatchEndpoint_MethodMustMatch(t *testing.T) {
	got := MatchEndpoint("/api/resumes/optimize", "GET", DefaultEndpointConfigs())
	assert.Nil(t, got, "reads fall through to the default budget")
}

func TestParseIPList(t *testing.T) {
	got := parseIPList(" 1.2.3.4, 5.6.7.8 ,")
	assert.Equal(t, map[string]bool{"1.2.3.4": true, "5.6.7.8": true}, got)
	assert.Empty(t, parseIPList(""))
}
