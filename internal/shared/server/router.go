package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"trajectplan-backend/internal/documents"
	"trajectplan-backend/internal/employers"
	"trajectplan-backend/internal/llm"
	"trajectplan-backend/internal/llm/openai"
	"trajectplan-backend/internal/services/health"
	"trajectplan-backend/internal/shared/config"
	"trajectplan-backend/internal/shared/metrics"
	"trajectplan-backend/internal/shared/server/middleware"
	"trajectplan-backend/internal/shared/server/respond"
	"trajectplan-backend/internal/shared/storage/db"
	"trajectplan-backend/internal/shared/storage/object"
	localstore "trajectplan-backend/internal/shared/storage/object/local"
	s3store "trajectplan-backend/internal/shared/storage/object/s3"
	"trajectplan-backend/internal/subjects"
	"trajectplan-backend/internal/trajectplan"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := newObjectStore(cfg)
	sqlDB := connectDatabase(cfg)

	var docRepo documents.DocumentsRepo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}
	docSvc := &documents.Service{Store: store, Repo: docRepo}
	docHandler := documents.NewHandler(docSvc)

	var subjectRepo subjects.SubjectsRepo
	if sqlDB != nil {
		subjectRepo = &subjects.PGRepo{DB: sqlDB}
	} else {
		subjectRepo = subjects.NewMemoryRepo()
	}
	subjectHandler := subjects.NewHandler(&subjects.Service{Repo: subjectRepo})

	var employerRepo employers.EmployersRepo
	if sqlDB != nil {
		employerRepo = &employers.PGRepo{DB: sqlDB}
	} else {
		employerRepo = employers.NewMemoryRepo()
	}
	employerHandler := employers.NewHandler(&employers.Service{Repo: employerRepo})

	var fieldsRepo trajectplan.FieldsRepo
	if sqlDB != nil {
		fieldsRepo = &trajectplan.PGRepo{DB: sqlDB}
	} else {
		fieldsRepo = trajectplan.NewMemoryRepo()
	}
	pipelineSvc := &trajectplan.Service{
		Docs:      docRepo,
		Store:     store,
		Fields:    fieldsRepo,
		LLM:       newLLMClient(cfg),
		Bucket:    cfg.StorageBucket,
		MinUsable: cfg.MinUsableText,
		MaxChunk:  cfg.MaxChunkChars,
	}
	pipelineHandler := trajectplan.NewHandler(pipelineSvc)

	healthSvc := health.NewService(sqlDB)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status(c.Request.Context()))
	})
	employerHandler.RegisterRoutes(api)
	subjectHandler.RegisterRoutes(api)
	docHandler.RegisterRoutes(api)
	pipelineHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

func newObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			log.Printf("failed to init s3 store, falling back to local: %v", err)
		} else {
			return store
		}
	}
	return localstore.New(cfg.LocalStoreDir)
}

func connectDatabase(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(context.Background(), dbConn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		return nil
	}
	return dbConn
}

func newLLMClient(cfg config.Config) llm.Client {
	if cfg.LLMProvider == "openai" {
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
		if err != nil {
			log.Printf("openai client unavailable, using placeholder: %v", err)
		} else {
			return client
		}
	}
	return llm.PlaceholderClient{}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
