package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"foodCollection":       "foods",
			"ingredientCollection": "ingredients",
			"connectTimeout":       "10s",
		},
		"env": map[string]any{
			"serviceName": "pantry",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_FOODCOLLECTION", want: "mongo.foodCollection"},
		{envKey: "MONGO_INGREDIENTCOLLECTION", want: "mongo.ingredientCollection"},
		{envKey: "MONGO_CONNECTTIMEOUT", want: "mongo.connectTimeout"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
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
