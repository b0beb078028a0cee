package main

import (
	"stayhub/config"
	"stayhub/di"
	"stayhub/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
