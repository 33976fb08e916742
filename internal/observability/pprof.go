package observability

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/champions-tracker/internal/config"
	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
)

// StartPprofServer binds PPROF_ADDR before returning so a busy port fails
// startup. The returned stop func is a no-op when pprof is disabled.
func StartPprofServer(cfg config.Config, logger *logging.Logger) (func(time.Duration) error, error) {
	noop := func(time.Duration) error { return nil }
	if !cfg.PprofEnabled {
		logger.Info("pprof disabled")
		return noop, nil
	}

	ln, err := net.Listen("tcp", cfg.PprofAddr)
	if err != nil {
		return noop, crerr.Wrapf(err, "listen pprof addr=%s", cfg.PprofAddr)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "error", err)
		}
	}()
	logger.Info("pprof listening", "addr", ln.Addr().String())

	return func(timeout time.Duration) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}
