package ratelimit

// MatchEndpoint matches a request path and method to an endpoint tier.
// Returns nil when no tier matches, in which case the default limit applies.
// The health check endpoint is always unlimited.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Path: path, Method: method, Limit: 0}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}
	return nil
}
