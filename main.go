package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"

	"github.com/vietanh2810/training-calendar-api/cmd/app"
)

// @title        Training Calendar API
// @version      1.0
// @description  Training events, categories and participant registrations.
// @BasePath     /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token returned by /auth/login or /auth/register
func main() {
	if err := app.Start(); err != nil {
		// zap.L() is a no-op until logger.Init has run.
		fmt.Fprintln(os.Stderr, err)
		zap.L().Error("app stopped", zap.Error(err))
		_ = zap.L().Sync()
		os.Exit(1)
	}
}
