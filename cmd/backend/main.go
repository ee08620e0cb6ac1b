package main

import (
	"log"

	"holdco-backend/internal/api"
)

// @title HoldCo Website Backend API
// @version 1.0
// @description Backend маркетингового сайта: статьи, калькулятор квот, оформление компаний, клиентский портал

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
