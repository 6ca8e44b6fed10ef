package main

import (
	"fmt"
	"net/http"

	"github.com/akwaba-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/akwaba-hr/payroll-backend-go/internal/handler/http"
	"github.com/akwaba-hr/payroll-backend-go/internal/pkg/database"
	"github.com/akwaba-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/akwaba-hr/payroll-backend-go/internal/repository/postgresql"
	payrollService "github.com/akwaba-hr/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	configRepo := postgresql.NewPayrollConfigRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	payrollSvc := payrollService.NewPayrollService(configRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(JWTService, payrollHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
