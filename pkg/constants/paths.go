package constants

// Probe and feed paths shared between router and deploy manifests.
const (
	PathHealth      = "/health"
	PathReady       = "/ready"
	PathCountdownWS = "/ws/countdown/:session_id/:user_id"
)
