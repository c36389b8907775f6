// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/paleta/internal/config"
	"github.com/thatcatcamp/paleta/internal/handlers"
	"github.com/thatcatcamp/paleta/internal/middleware"
	"github.com/thatcatcamp/paleta/internal/swatch"
	"github.com/thatcatcamp/paleta/internal/tls"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the Paleta HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		tlsEnabled := config.GetBool("server.tls_enabled")
		baseDomain := config.GetString("server.base_domain")
		if baseDomain == "" {
			baseDomain = "localhost"
		}

		// Rendering is the only costly route family
		perMinute := config.GetInt("ratelimit.render_per_minute")
		if perMinute <= 0 {
			perMinute = 60
		}
		renderLimiter := middleware.NewRateLimiter(perMinute, time.Minute)
		defer renderLimiter.Stop()

		if !config.GetBool("log.debug") {
			gin.SetMode(gin.ReleaseMode)
		}
		r := gin.Default()

		// Global middleware must be registered before the routes
		r.Use(middleware.SecurityHeadersMiddleware())
		r.Use(middleware.IPFilterMiddleware(
			config.GetStringSlice("security.blocked_ips"),
			config.GetStringSlice("security.allowed_ips"),
		))
		if tlsEnabled {
			r.Use(middleware.HTTPSRedirectMiddleware(config.GetString("server.https_port")))
		}

		h := handlers.New(swatch.NewPNGRenderer(swatchOptions()), handlerConfig())
		registerRoutes(r, h, renderLimiter, tlsEnabled)

		if tlsEnabled {
			if err := serveTLS(ctx, r, baseDomain); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
		fmt.Printf("Starting HTTP server on %s (TLS disabled)\n", httpAddr)
		fmt.Printf("Base domain: %s\n", baseDomain)

		server := &http.Server{Addr: httpAddr, Handler: r}
		if err := serveUntilDone(ctx, server, func() error { return server.ListenAndServe() }); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

// registerRoutes wires the palette handlers onto r
func registerRoutes(r *gin.Engine, h *handlers.Handler, limiter *middleware.RateLimiter, secureCookies bool) {
	r.GET("/health", handlers.HealthHandler)

	editor := r.Group("/")
	editor.Use(middleware.CSRFMiddleware(secureCookies))
	{
		editor.GET("/", middleware.RateLimitMiddleware(limiter), h.IndexHandler)
		editor.POST("/palette", h.PaletteActionHandler)
	}

	render := r.Group("/")
	render.Use(middleware.RateLimitMiddleware(limiter))
	{
		render.GET("/swatch.png", h.SwatchHandler)
		render.GET("/download", h.DownloadHandler)
		render.GET("/preview.jpg", h.PreviewHandler)
	}

	r.GET("/share", h.ShareHandler)
	r.GET("/presets", h.PresetsHandler)
}

// serveTLS runs the ACME/redirect listener on the HTTP port and the main
// site on the HTTPS port with certificates from certmagic
func serveTLS(ctx context.Context, r *gin.Engine, baseDomain string) error {
	tlsCfg, err := tls.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load TLS config: %w", err)
	}

	tlsManager, err := tls.NewManager(ctx, tlsCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize TLS manager: %w", err)
	}

	// Bind first so a privileged port fails loudly before HTTPS starts
	httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
	listener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to bind HTTP server to %s: %w (port 80 typically requires root)", httpAddr, err)
	}
	// HTTP-01 challenges are answered before the redirect middleware sees them
	httpServer := &http.Server{Handler: tlsManager.HTTPChallengeHandler(r)}
	go func() {
		fmt.Printf("HTTP server listening on %s (ACME challenges + redirects)\n", httpAddr)
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HTTP server failed: %v", err)
		}
	}()
	defer httpServer.Close()

	httpsAddr := fmt.Sprintf(":%s", config.GetString("server.https_port"))
	fmt.Printf("Starting HTTPS server on %s\n", httpsAddr)
	fmt.Printf("Base domain: %s\n", baseDomain)
	fmt.Printf("Certificates: %s\n", strings.Join(tlsManager.Domains(), ", "))

	server := &http.Server{
		Addr:      httpsAddr,
		Handler:   r,
		TLSConfig: tlsManager.GetTLSConfig(),
	}
	return serveUntilDone(ctx, server, func() error { return server.ListenAndServeTLS("", "") })
}

// serveUntilDone runs serve and shuts server down gracefully once ctx ends
func serveUntilDone(ctx context.Context, server *http.Server, serve func() error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- serve()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Println("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
