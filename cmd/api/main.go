package main

import (
	"log"

	"torchline_portal/internal/adapter/http/routes"
	"torchline_portal/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Torchline Portal API
// @version         1.0
// @description     Torchline Freight Group portal: quotes, approvals, analytics, reports and customer/vendor portals.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name torchline_session
// @description Session cookie set by POST /auth/login.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := routes.Run(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
