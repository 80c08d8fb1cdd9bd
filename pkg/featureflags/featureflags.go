// Package featureflags resolves boolean feature flags from the environment.
//
// A flag named "ReformaTributaria" is read from FEATUREFLAGS_REFORMATRIBUTARIA.
// Resolution fails closed: unset, empty or unparseable values are disabled.
package featureflags

import (
	"os"
	"strconv"
	"strings"
)

const envPrefix = "FEATUREFLAGS_"

// Provider resolves feature flags by name.
type Provider struct {
	// lookup is swappable for tests; defaults to os.LookupEnv.
	lookup func(key string) (string, bool)
}

// NewProvider creates a provider backed by the process environment.
func NewProvider() *Provider {
	return &Provider{lookup: os.LookupEnv}
}

// NewProviderWithLookup creates a provider with a custom lookup function.
func NewProviderWithLookup(lookup func(key string) (string, bool)) *Provider {
	return &Provider{lookup: lookup}
}

// IsEnabled resolves the flag. It never errors: any read or parse failure
// resolves to false.
func (p *Provider) IsEnabled(name string) bool {
	value, ok := p.lookup(envPrefix + strings.ToUpper(name))
	if !ok {
		return false
	}
	enabled, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return enabled
}
