package httpserver

import (
	"context"
	"fmt"
)

// Run wires the routes and serves until the listener fails or the process
// is signalled.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(context.Background(), "Listening on %s", addr)
	return srv.gin.Run(addr)
}
