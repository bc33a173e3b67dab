package main

import (
	"os"

	"github.com/jhoicas/crm-pro/internal/application/crm"
	"github.com/jhoicas/crm-pro/internal/infrastructure/memory"
	"github.com/jhoicas/crm-pro/internal/interfaces/console"
	"github.com/jhoicas/crm-pro/pkg/config"
	"github.com/jhoicas/crm-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Stores explícitos construidos una vez e inyectados por referencia;
	// no hay accesores globales. Todo el estado muere con el proceso.
	clientRepo := memory.NewClientRepository()
	userRepo := memory.NewUserRepository()
	tagRepo := memory.NewTagRepository()
	saleRepo := memory.NewSaleRepository()

	svc := crm.NewService(clientRepo, userRepo, tagRepo, saleRepo, log)

	// Usuario semilla para poder operar los comandos de administración.
	if admin, err := svc.CreateUser("admin", "administrador", "vendedor"); err == nil {
		log.Info().Str("login", admin.Login).Msg("usuario inicial creado")
	}

	ui := console.New(svc, log, console.Options{
		Prompt: cfg.Console.Prompt,
		Color:  cfg.Console.Color,
	})
	if err := ui.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("consola")
	}
	log.Info().Msg("sesión terminada")
}
