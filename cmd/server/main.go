package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"rayhank.xyz/traffic-iot-service/pkg/blob"
	"rayhank.xyz/traffic-iot-service/pkg/common"
	"rayhank.xyz/traffic-iot-service/pkg/db"
	trafficHttp "rayhank.xyz/traffic-iot-service/pkg/http"
	"rayhank.xyz/traffic-iot-service/pkg/traffic"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	trafficDbType := os.Getenv(common.EnvKeyTrafficDBType)
	switch trafficDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown TRAFFIC_DB_TYPE: " + trafficDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyTrafficHttpHostPort))

	mediaRoot := strings.TrimSpace(os.Getenv(common.EnvKeyTrafficMediaRoot))
	if mediaRoot == "" {
		mediaRoot = "media"
	}
	blobStore, err := blob.NewFSStore(mediaRoot)
	if err != nil {
		log.Fatalf("Failed to create media store: %v", err)
	}

	tokenSecret := os.Getenv(common.EnvKeyTrafficTokenSecret)
	if tokenSecret == "" {
		log.Fatal("TRAFFIC_TOKEN_SECRET must be set in .env")
	}

	tokenTTLHours := int64(24)
	if raw := os.Getenv(common.EnvKeyTrafficTokenTTLHour); raw != "" {
		if tokenTTLHours, err = strconv.ParseInt(raw, 10, 64); err != nil {
			log.Fatal("Invalid TRAFFIC_TOKEN_TTL_HOURS, should be an int value")
		}
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyTrafficDefaultRate), 64); err != nil {
		log.Fatal("Invalid TRAFFIC_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyTrafficDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid TRAFFIC_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	trafficCore := traffic.Traffic{
		Db:          *dbInstance,
		Blob:        blobStore,
		TokenSecret: tokenSecret,
		TokenTTL:    time.Duration(tokenTTLHours) * time.Hour,
	}
	trafficCore.WithServices(traffic.ServiceOpts{
		Account: trafficCore.GetIAccount(),
		Device:  trafficCore.GetIDevice(),
		Value:   trafficCore.GetIValue(),
		Latest:  trafficCore.GetILatest(),
		Todo:    trafficCore.GetITodo(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	rs := &trafficHttp.RestfulServer{
		Server:           server,
		Traffic:          &trafficCore,
		RateLimiterStore: traffic.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
