package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-memsim/config"
	"go-memsim/server"
	"go-memsim/services/auth"
	"go-memsim/services/executor"
	"go-memsim/services/parser"
	"go-memsim/util/logger"
)

func main() {
	configs := config.New()

	as := auth.New()
	ps := parser.New()
	es, err := executor.New(configs.MemoryConfig)
	if err != nil {
		logger.L.Fatal(err)
	}

	s, err := server.New(configs.ServerConfig, as, ps, es)
	if err != nil {
		logger.L.Fatal(err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err = <-s.Start():
		logger.L.Errorf("app crashed: %v", err)
	case q := <-quit:
		logger.L.Infof("%s signal received, stopping gracefully...", q.String())
		if err := s.Stop(); err != nil {
			logger.L.Errorf("error on gracefully stopping: %v", err)
		}
	}
}
