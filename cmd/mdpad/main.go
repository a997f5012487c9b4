package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/mdpad/mdpad/internal/app/server"
	"github.com/mdpad/mdpad/internal/config"
	"github.com/mdpad/mdpad/internal/logger"
	"github.com/mdpad/mdpad/internal/storage"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options := config.Parse()
	hostname := options.Port
	filePath := options.FilePath
	useTLS := options.EnableHTTPS

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	err := log.Init(options.LogLevel)
	zapLogger := log.Log
	if err != nil {
		panic(err)
	}

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	// Document state lives on the client; the durable store is opened here
	// only to fail fast on a bad storage path and to flush it on exit.
	if filePath != "" {
		zapLogger.Info("using file storage", zap.String("filePath", filePath))

		fileStore, err := storage.NewFileStorage(filePath, zapLogger)
		if err != nil {
			panic(err)
		}
		defer func() {
			_ = fileStore.Close()
		}()
	} else {
		zapLogger.Info("using in memory storage")
	}

	r := server.Init(zapLogger)

	if useTLS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist("mdpad.dev", "www.mdpad.dev"),
		}
		srv := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}

		zapLogger.Info("Starting https server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServeTLS("", ""); err != nil {
			panic(err)
		}
		return
	}

	zapLogger.Info("Starting server", zap.String("addr", hostname))
	if err := http.ListenAndServe(hostname, r); err != nil {
		panic(err)
	}
}
