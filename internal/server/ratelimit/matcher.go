package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited are requests that never count against a bucket: the health check
// and the event stream, which holds one connection open for its lifetime.
var unlimited = map[string]string{
	"/health": http.MethodGet,
	"/events": http.MethodGet,
}

// MatchEndpoint returns the configuration for a request, or nil when none applies.
// An exact path wins over a prefix; a config path ending in "/" matches every
// path below it, so "/profile/" covers "/profile/skills/toggle".
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if m, ok := unlimited[path]; ok && m == method {
		return &EndpointConfig{Path: path, Method: method}
	}

	var prefix *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != method {
			continue
		}
		if config.Path == path {
			return config
		}
		if prefix == nil && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			prefix = config
		}
	}
	return prefix
}
