package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the rate-limit configuration for a request.
// Exact path matches win over prefix rules; prefix rules are the
// configs whose path ends in "/" (e.g. "/jobs/" covers
// "/jobs/{id}/apply"). A nil return means the default limit applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never throttled; probes may be frequent.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") &&
			strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
