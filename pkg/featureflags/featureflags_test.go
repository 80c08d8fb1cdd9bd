package featureflags

import "testing"

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		flag    string
		enabled bool
	}{
		{
			name:    "enabled flag",
			env:     map[string]string{"FEATUREFLAGS_REFORMATRIBUTARIA": "true"},
			flag:    "ReformaTributaria",
			enabled: true,
		},
		{
			name:    "disabled flag",
			env:     map[string]string{"FEATUREFLAGS_REFORMATRIBUTARIA": "false"},
			flag:    "ReformaTributaria",
			enabled: false,
		},
		{
			name:    "unset flag fails closed",
			env:     map[string]string{},
			flag:    "ReformaTributaria",
			enabled: false,
		},
		{
			name:    "malformed value fails closed",
			env:     map[string]string{"FEATUREFLAGS_REFORMATRIBUTARIA": "banana"},
			flag:    "ReformaTributaria",
			enabled: false,
		},
		{
			name:    "empty value fails closed",
			env:     map[string]string{"FEATUREFLAGS_REFORMATRIBUTARIA": ""},
			flag:    "ReformaTributaria",
			enabled: false,
		},
		{
			name:    "numeric value accepted",
			env:     map[string]string{"FEATUREFLAGS_REFORMATRIBUTARIA": "1"},
			flag:    "ReformaTributaria",
			enabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProviderWithLookup(func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			})

			if got := p.IsEnabled(tt.flag); got != tt.enabled {
				t.Errorf("IsEnabled(%q) = %v, want %v", tt.flag, got, tt.enabled)
			}
		})
	}
}
