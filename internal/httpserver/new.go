package httpserver

import (
	"database/sql"
	"errors"

	"diagnosis-srv/config"
	"diagnosis-srv/internal/export"
	"diagnosis-srv/internal/report"
	"diagnosis-srv/pkg/discord"
	pkgKafka "diagnosis-srv/pkg/kafka"
	"diagnosis-srv/pkg/log"
	"diagnosis-srv/pkg/minio"
	pkgRedis "diagnosis-srv/pkg/redis"
	"diagnosis-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Storage & Messaging Configuration
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager scope.Manager

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Domain usecases
	reportUC report.UseCase
	exportUC export.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Storage & Messaging Configuration
	MinIO minio.MinIO
	// KafkaProducer is optional; export events are not published without it.
	KafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager scope.Manager

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Storage & Messaging Configuration
		minioClient:   cfg.MinIO,
		kafkaProducer: cfg.KafkaProducer,

		// Authentication & Security Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Storage Configuration
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	return nil
}
