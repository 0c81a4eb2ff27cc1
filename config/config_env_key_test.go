package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"gating": map[string]any{
			"gpsTimeout":              "10s",
			"accuracyThresholdMeters": 100,
		},
		"places": map[string]any{
			"requestsPerHour": 100,
		},
		"zoneService": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GATING_GPSTIMEOUT", want: "gating.gpsTimeout"},
		{envKey: "GATING_ACCURACYTHRESHOLDMETERS", want: "gating.accuracyThresholdMeters"},
		{envKey: "PLACES_REQUESTSPERHOUR", want: "places.requestsPerHour"},
		{envKey: "ZONESERVICE_BASEURL", want: "zoneService.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
