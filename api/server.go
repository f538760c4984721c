package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fortio.org/log"
)

const shutdownTimeout = 10 * time.Second

// Serve listens on Config.HTTPPort until SIGINT or SIGTERM. In-flight requests
// get shutdownTimeout to finish, then every background stop func runs in order.
func (app *Application) Serve(mux *http.ServeMux, background ...func()) error {
	srv := &http.Server{
		Addr:         app.Config.HTTPPort,
		Handler:      app.BuildRoutes(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
	}
	shutdownErr := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit
		log.S(log.Info, "shutting down server", log.Str("signal", s.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(ctx)

		log.Infof("stopping %d background task(s)", len(background))
		for _, stop := range background {
			stop()
		}
		shutdownErr <- err
	}()

	log.S(log.Info, "starting server", log.Str("addr", app.Config.HTTPPort), log.Attr("devMode", app.Config.DevMode))

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}

	log.Infof("stopped server %v", app.Config.HTTPPort)
	return nil
}
