package handlers

import (
	"github.com/alorle/acestream-panel/config"
	"github.com/alorle/acestream-panel/internal/app"
	"github.com/alorle/acestream-panel/logging"
)

// Dependencies holds everything the HTTP handlers need.
type Dependencies struct {
	App *app.App
	Cfg *config.Config
	Log *logging.Logger
}
