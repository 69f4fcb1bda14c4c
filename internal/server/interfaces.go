package server

// Server is the lifecycle of the bin server listener.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives,
	// then drains in-flight requests and returns.
	RunServer()

	// Shutdown stops accepting connections and waits for active requests,
	// bounded by a drain timeout.
	Shutdown()
}
