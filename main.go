package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slog"
)

var MANAGER *RoutingManager

func main() {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, nil)))

	config := ReadConfig("./config.yaml")
	manager, err := NewRoutingManager(config)
	if err != nil {
		slog.Error("startup failed: " + err.Error())
		os.Exit(1)
	}
	MANAGER = manager

	app := mux.NewRouter()
	MapPost(app, "/v1/routes", HandleRoutingRequest)
	MapGet(app, "/v1/places", HandlePlacesRequest)

	slog.Info("listening on " + config.Server.Addr)
	if err := http.ListenAndServe(config.Server.Addr, app); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
