package main

import (
	"github.com/trek-vn/sltrek/internal/app/server"
	"github.com/trek-vn/sltrek/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	logging.Fatal("Api server exited: ", zap.Error(
		server.NewServer().Start(),
	))
}
