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
		"bus": map[string]any{
			"groupId": "",
			"google": map[string]any{
				"projectId": "",
			},
		},
		"distributor": map[string]any{
			"reviewMinPlayTimeMinutes": 300,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "BUS_GROUPID", want: "bus.groupId"},
		{envKey: "BUS_GOOGLE_PROJECTID", want: "bus.google.projectId"},
		{envKey: "DISTRIBUTOR_REVIEWMINPLAYTIMEMINUTES", want: "distributor.reviewMinPlayTimeMinutes"},
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
