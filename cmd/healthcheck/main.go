// Command healthcheck probes the local broker client for container
// HEALTHCHECK directives. It exits 0 when the control channel is open.
//
// Only the environment is consulted: PORT, then BROKER_SERVER_PORT, and
// BROKER_HEALTHCHECK_PATH, then BROKER_SERVER_HEALTHCHECK_PATH. A port or
// path set only in broker.yaml is not seen, so deployments that move them
// there must also export the variable to the container.
package main

import (
	"net/http"
	"os"
	"time"
)

func main() {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(target(os.Getenv))
	if err != nil {
		os.Exit(1)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
	os.Exit(0)
}

// target builds the local healthcheck URL with the same precedence the
// broker client applies to these variables.
func target(getenv func(string) string) string {
	port := firstSet(getenv, "PORT", "BROKER_SERVER_PORT")
	if port == "" {
		port = "8000"
	}
	path := firstSet(getenv, "BROKER_HEALTHCHECK_PATH", "BROKER_SERVER_HEALTHCHECK_PATH")
	if path == "" {
		path = "/healthcheck"
	}
	return "http://localhost:" + port + path
}

func firstSet(getenv func(string) string, names ...string) string {
	for _, name := range names {
		if v := getenv(name); v != "" {
			return v
		}
	}
	return ""
}
