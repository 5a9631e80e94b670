// Package status serves the bot's health and last-cycle status over HTTP.
package status

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shubhamxsingh07/jobFinderBot/internal/poll"
)

// Source provides the current status.
type Source interface {
	Snapshot() poll.ScanStatus
}

func NewRouter(src Source) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Job bot is running!",
			"status":  "healthy",
		})
	})

	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, src.Snapshot())
	})
	return r
}

// Serve listens on addr until ctx is done.
func Serve(ctx context.Context, addr string, src Source) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(src),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Status server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
