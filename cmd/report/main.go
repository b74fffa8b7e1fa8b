package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/in/http/kitchenauth"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
)

// The report service is a read-only companion to the order service. It
// connects straight through database/sql, never writes, and summarizes
// everything the restaurant has recorded, soft-deleted orders included.
// Reports are kitchen-internal, so the endpoint sits behind the same token
// chain the order service uses, minus the endpoint scope link: every report
// request needs the token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustConnectDB()
	defer db.Close()

	handler := queries.NewGetSalesReportQueryHandler(db)

	e := echo.New()
	e.HTTPErrorHandler = httpadapter.NewHTTPErrorHandler(logger)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	chain := kitchenauth.NewChain(
		kitchenauth.TokenPresenceLink{},
		kitchenauth.TokenValueLink{Token: goDotEnvVariable("KITCHEN_TOKEN")},
	)
	reports := e.Group("/reports",
		kitchenauth.Middleware(chain, goDotEnvVariable("KITCHEN_TOKEN_HEADER")))

	reports.GET("/sales", func(c echo.Context) error {
		from, err := parseTimeParam(c.QueryParam("from"), "from")
		if err != nil {
			return err
		}
		to, err := parseTimeParam(c.QueryParam("to"), "to")
		if err != nil {
			return err
		}

		query, err := queries.NewGetSalesReportQuery(from, to)
		if err != nil {
			return err
		}

		report, err := handler.Handle(c.Request().Context(), query)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, toResponse(report))
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", goDotEnvVariable("REPORT_HTTP_PORT"))))
}

// parseTimeParam reads an optional RFC 3339 query parameter.
func parseTimeParam(raw, name string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, errors.New("expected RFC 3339 timestamp"))
	}
	return &parsed, nil
}

type salesReportResponse struct {
	TotalOrders     int                `json:"totalOrders"`
	DeletedOrders   int                `json:"deletedOrders"`
	StatusCounts    []statusCountEntry `json:"statusCounts"`
	CompletedOrders int                `json:"completedOrders"`
	TotalItems      int                `json:"totalItems"`
	Revenue         int64              `json:"revenue"`
}

type statusCountEntry struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

func toResponse(report queries.GetSalesReportQueryResponse) salesReportResponse {
	counts := make([]statusCountEntry, len(report.StatusCounts))
	for i, sc := range report.StatusCounts {
		counts[i] = statusCountEntry{Status: sc.Status, Count: sc.Count}
	}

	return salesReportResponse{
		TotalOrders:     report.TotalOrders,
		DeletedOrders:   report.DeletedOrders,
		StatusCounts:    counts,
		CompletedOrders: report.CompletedOrders,
		TotalItems:      report.TotalItems,
		Revenue:         report.Revenue,
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB() *sql.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		goDotEnvVariable("DB_HOST"), goDotEnvVariable("DB_PORT"),
		goDotEnvVariable("DB_USER"), goDotEnvVariable("DB_PASSWORD"),
		goDotEnvVariable("DB_NAME"), goDotEnvVariable("DB_SSLMODE"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}

	return db
}
