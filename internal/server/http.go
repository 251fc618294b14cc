// Package server exposes the digest converter over HTTP on kratos.
package server

import (
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/sirupsen/logrus"

	"github.com/alnah/go-mpdigest/internal/config"
)

// rejectedMethods get 405 on the conversion route.
var rejectedMethods = []string{
	nethttp.MethodGet,
	nethttp.MethodHead,
	nethttp.MethodPut,
	nethttp.MethodPatch,
	nethttp.MethodDelete,
	nethttp.MethodOptions,
}

// NewHTTPServer creates the kratos HTTP server with the conversion route.
// The server timeout bounds every request context.
func NewHTTPServer(c config.ServerConfig, conv Converter, log *logrus.Logger) (*http.Server, error) {
	timeout, err := c.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(recovery.WithHandler(recoverPanic)),
		),
		http.Timeout(timeout),
	}
	if c.Addr != "" {
		opts = append(opts, http.Address(c.Addr))
	}

	srv := http.NewServer(opts...)

	h := NewConvertHandler(conv, log)
	r := srv.Route("/")
	r.POST(ConvertPath, h.handle(h.Convert))
	for _, m := range rejectedMethods {
		r.Handle(m, ConvertPath, h.handle(h.MethodNotAllowed))
	}

	return srv, nil
}
