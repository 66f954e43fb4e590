package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/idalopban/NutriKallpa-sub005/config"
	"github.com/idalopban/NutriKallpa-sub005/routes"
	"github.com/idalopban/NutriKallpa-sub005/services"
	"github.com/idalopban/NutriKallpa-sub005/utils"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, hub)

	// Appointment reminder sweep, hourly.
	go func() {
		t := time.NewTicker(time.Hour)
		defer t.Stop()
		for range t.C {
			services.SendDueReminders()
		}
	}()

	r := routes.SetupRouter(hub)
	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	log.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
