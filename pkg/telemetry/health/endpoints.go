package health

import (
	"encoding/json"
	"net/http"
	"runtime"
)

// VersionInfo describes the running build.
type VersionInfo struct {
	// Version is the semantic version.
	Version string `json:"version"`

	// Commit is the git commit hash.
	Commit string `json:"commit"`

	// BuildTime is when the binary was built.
	BuildTime string `json:"build_time"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"go_version"`
}

// LivenessHandler serves the liveness probe. It always returns 200 while
// the process is running.
func (c *Checker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		status := c.CheckLiveness(r.Context())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if r.Method != http.MethodHead {
			_ = json.NewEncoder(w).Encode(status)
		}
	}
}

// ReadinessHandler serves the readiness probe. It runs all registered
// component checks and returns 503 when any component is unhealthy.
func (c *Checker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		status := c.CheckReadiness(r.Context())

		w.Header().Set("Content-Type", "application/json")

		if status.Status == "degraded" {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}

		if r.Method != http.MethodHead {
			_ = json.NewEncoder(w).Encode(status)
		}
	}
}

// VersionHandler serves build information.
func VersionHandler(version, commit, buildTime string) http.HandlerFunc {
	info := VersionInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if r.Method != http.MethodHead {
			_ = json.NewEncoder(w).Encode(info)
		}
	}
}
