// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"testing"
	"time"

	"github.com/NVIDIA/cookpot/pkg/defaults"
	"golang.org/x/time/rate"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "")
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("RATE_LIMIT_BURST", "")

	cfg := NewConfig()
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.RateLimit != 100 || cfg.RateLimitBurst != 200 {
		t.Errorf("rate = %v/%d, want 100/200", cfg.RateLimit, cfg.RateLimitBurst)
	}
	if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v, want %v", cfg.ShutdownTimeout, defaults.ServerShutdownTimeout)
	}
	if cfg.MaxRequestBodyBytes != defaults.MaxRequestBodyBytes {
		t.Errorf("MaxRequestBodyBytes = %d", cfg.MaxRequestBodyBytes)
	}
	if got := cfg.addr(); got != ":8080" {
		t.Errorf("addr() = %q, want :8080", got)
	}
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "45")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_LIMIT_BURST", "10")

	cfg := NewConfig()
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.ShutdownTimeout != 45*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 45s", cfg.ShutdownTimeout)
	}
	if cfg.RateLimit != rate.Limit(5) || cfg.RateLimitBurst != 10 {
		t.Errorf("rate = %v/%d, want 5/10", cfg.RateLimit, cfg.RateLimitBurst)
	}
}

func TestNewConfigIgnoresInvalidEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.value)
			t.Setenv("RATE_LIMIT_BURST", tt.value)

			cfg := NewConfig()
			if cfg.Port != 8080 {
				t.Errorf("Port = %d, want default 8080", cfg.Port)
			}
			if cfg.RateLimitBurst != 200 {
				t.Errorf("RateLimitBurst = %d, want default 200", cfg.RateLimitBurst)
			}
		})
	}
}
