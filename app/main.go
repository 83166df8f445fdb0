package main

import (
	"context"
	"flag"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"roster-system/internal/dto"
	"roster-system/internal/repositories"
	"roster-system/internal/routes"
	"roster-system/internal/services"
	"roster-system/pkg/config"
	"roster-system/pkg/database/postgresql"
	"roster-system/pkg/filestorage"
	applogger "roster-system/pkg/logger"
	"roster-system/pkg/migrate"
	"roster-system/pkg/service"
	"roster-system/pkg/validation"
)

func main() {
	filePath := flag.String("file", "", "path to a roster workbook; runs a one-shot import instead of the server")
	dryRun := flag.Bool("dry-run", false, "with -file: classify rows and report counts without writing")
	flag.Parse()

	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()
	ctx := context.Background()

	if err := migrate.Up(ctx, cfg.Postgres.DSN); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	dbConn, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("failed to connect to PostgreSQL", zap.Error(err))
	}
	defer dbConn.Close()

	validate := validation.New()

	if *filePath != "" {
		runImport(ctx, *filePath, *dryRun, cfg, dbConn, validate, logger)
		return
	}

	runServer(cfg, dbConn, validate, logger)
}

func runImport(ctx context.Context, filePath string, dryRun bool, cfg *config.Config, dbConn *pgxpool.Pool, validate *validator.Validate, logger *zap.Logger) {
	reader := services.NewRosterReader(logger)

	rosterRows, err := reader.Read(filePath, cfg.Roster.RosterSheet)
	if err != nil {
		logger.Fatal("could not read roster sheet", zap.Error(err))
	}

	attritionRows, err := reader.Read(filePath, cfg.Roster.AttritionSheet)
	if err != nil {
		logger.Warn("attrition sheet not readable, continuing without it", zap.Error(err))
		attritionRows = nil
	}

	rosterRepo := repositories.NewRosterRepository(dbConn, logger)
	attritionRepo := repositories.NewAttritionRepository(dbConn, logger)
	ingestion := services.NewIngestionService(rosterRepo, attritionRepo, validate, logger)

	if dryRun {
		counts := ingestion.Preview(rosterRows)
		fmt.Println("Dry run; rows that would be processed per table:")
		printCounts(counts)
		return
	}

	summary, err := ingestion.Run(ctx, rosterRows, attritionRows)
	if err != nil {
		logger.Fatal("ingestion aborted", zap.Error(err))
	}
	printSummary(summary)
}

func printCounts(counts map[string]int) {
	tables := make([]string, 0, len(counts))
	for t := range counts {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	for _, t := range tables {
		fmt.Printf("  %-20s %d\n", t, counts[t])
	}
}

func printSummary(summary *dto.IngestionSummary) {
	fmt.Printf("Processed %d rows (%d skipped)\n", summary.TotalRows, summary.Skipped)
	tables := make([]string, 0, len(summary.Tables))
	for t := range summary.Tables {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	for _, t := range tables {
		c := summary.Tables[t]
		fmt.Printf("  %-20s %d inserted, %d updated\n", t, c.Inserted, c.Updated)
	}
	for _, e := range summary.Errors {
		fmt.Printf("  skipped %s row %d: %s\n", e.Sheet, e.Position, e.Reason)
	}
}

func runServer(cfg *config.Config, dbConn *pgxpool.Pool, validate *validator.Validate, logger *zap.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
	}))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Roster.UploadDir)
	if err != nil {
		logger.Fatal("failed to initialize file storage", zap.Error(err))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)

	routes.InitRouter(e, dbConn, redisClient, jwtSvc, validate, fileStorage, logger, cfg)

	logger.Info("server listening", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
