package server

// Server is the lifecycle contract the entrypoint drives: [RunServer]
// blocks serving the REST API until a stop signal arrives, [Shutdown]
// drains in-flight requests and releases the listener.
type Server interface {
	RunServer()
	Shutdown()
}
