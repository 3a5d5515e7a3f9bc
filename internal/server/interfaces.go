package server

// Server is the lifecycle contract of the simulator server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
