package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/example/power-calculator/domain/power"
	"github.com/example/power-calculator/middleware/audit"
	"github.com/example/power-calculator/modules/api"
	"github.com/example/power-calculator/modules/calc"
	"github.com/example/power-calculator/modules/stats"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration from environment
	httpPort := getEnvInt("HTTP_PORT", 3000)
	natsPort := getEnvInt("NATS_PORT", 4222)
	batchWorkers := getEnvInt("BATCH_WORKERS", 4)
	rateLimitMax := getEnvInt("RATE_LIMIT_MAX", 120)
	logLevel := mono.LogLevelInfo
	if strings.EqualFold(getEnv("LOG_LEVEL", "info"), "error") {
		logLevel = mono.LogLevelError
	}

	method, err := power.ParseMethod(getEnv("CALC_METHOD", string(power.MethodNative)))
	if err != nil {
		log.Fatalf("Invalid CALC_METHOD: %v", err)
	}

	log.Println("=== Power Calculator ===")
	log.Printf("HTTP Port: %d", httpPort)
	log.Printf("NATS Port: %d", natsPort)
	log.Printf("Default method: %s", method)

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(logLevel),
		mono.WithLogFormat(mono.LogFormatText),
		mono.WithNATSPort(natsPort),
	)
	if err != nil {
		log.Fatalf("Failed to create mono application: %v", err)
	}

	// Register middleware BEFORE regular modules
	auditMiddleware := audit.New(app.Logger())
	if err := app.Register(auditMiddleware); err != nil {
		log.Fatalf("Failed to register audit middleware: %v", err)
	}

	modules := []mono.Module{
		calc.NewModule(app.Logger(),
			calc.WithDefaultMethod(method),
			calc.WithBatchWorkers(batchWorkers),
		),
		stats.NewModule(app.Logger()),
		api.NewModule(
			api.WithPort(httpPort),
			api.WithRateLimit(rateLimitMax, time.Minute),
		),
	}
	for _, m := range modules {
		if err := app.Register(m); err != nil {
			log.Fatalf("Failed to register module %s: %v", m.Name(), err)
		}
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	printStartupInfo(httpPort, natsPort)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Audited %d service calls (%d failed)", auditMiddleware.Calls(), auditMiddleware.Failures())
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(httpPort, natsPort int) {
	log.Println("=== Application Started ===")
	log.Printf("NATS available at nats://localhost:%d", natsPort)
	log.Println("Services:")
	log.Println("  services.calc.compute       - RequestReplyService: a × b^x")
	log.Println("  services.calc.compute-batch - RequestReplyService: up to 1000 computations")
	log.Println("  services.stats.summary      - RequestReplyService: computation counters")
	log.Println("")
	log.Printf("HTTP API at http://localhost:%d", httpPort)
	log.Println("  POST /api/v1/compute        {\"multiplier\":\"2\",\"base\":\"3\",\"exponent\":\"4\"}")
	log.Println("  GET  /api/v1/compute?multiplier=2&base=3&exponent=4&method=series")
	log.Println("  POST /api/v1/compute/batch  {\"items\":[...]}")
	log.Println("  GET  /api/v1/stats")
	log.Println("  GET  /health")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown")
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}
