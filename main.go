package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/Edu-space-IDC/restaurante-sub000/cmd/app"
)

// @contact.name   Soporte Restaurante Escolar
// @contact.email  soporte@eduspace-idc.example
//
// @license.name  MIT
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
