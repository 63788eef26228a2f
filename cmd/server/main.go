package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workboard/internal/config"
	"workboard/internal/constants"
	"workboard/internal/database"
	"workboard/internal/handlers"
	"workboard/internal/middleware"
	"workboard/internal/models"
	"workboard/internal/repository"
	"workboard/internal/store"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Rehydrate the state document and wire persistence back to it: every
	// successful mutation writes the whole state under the same key.
	stateRepo := repository.NewStateRepository(database.GetDB())
	state, found, err := stateRepo.Load(cfg.StateKey)
	if err != nil {
		logger.Fatal("Failed to load state", zap.Error(err))
	}
	if found {
		logger.Info("Loaded persisted state",
			zap.Int("users", len(state.Users)),
			zap.Int("boards", len(state.Boards)),
			zap.Int("tasks", len(state.Tasks)))
	}

	appStore := store.New(
		store.WithState(state),
		store.WithPersist(func(snapshot models.AppState) error {
			return stateRepo.Save(cfg.StateKey, snapshot)
		}),
		store.WithLogger(logger),
	)

	r := gin.Default()

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GinMode == "release",
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	stateHandler := handlers.NewStateHandler(appStore)
	userHandler := handlers.NewUserHandler(appStore)
	sessionHandler := handlers.NewSessionHandler(appStore)
	viewHandler := handlers.NewViewHandler(appStore)
	boardHandler := handlers.NewBoardHandler(appStore)
	taskHandler := handlers.NewTaskHandler(appStore)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Workboard API is running",
		})
	})

	api := r.Group("/api")
	{
		// State snapshot the UI rehydrates from
		api.GET("/state", stateHandler.GetState)

		// User directory (public: joining the directory is how a
		// session identity comes to exist)
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users", userHandler.ListUsers)

		// Session
		api.POST("/session", sessionHandler.Start)
		api.GET("/session", sessionHandler.Current)
		api.DELETE("/session", sessionHandler.End)

		// View state
		view := api.Group("/view")
		view.Use(middleware.RequireActor(appStore))
		{
			view.PUT("/mode", viewHandler.SetViewMode)
			view.PUT("/selection/board", viewHandler.SelectBoard)
			view.PUT("/selection/task", viewHandler.SelectTask)
		}

		// Boards
		boards := api.Group("/boards")
		boards.Use(middleware.RequireActor(appStore))
		{
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("", boardHandler.ListBoards)
			boards.GET("/:id", boardHandler.GetBoard)
			boards.DELETE("/:id", boardHandler.DeleteBoard)
			boards.POST("/:id/members", boardHandler.AddMember)
			boards.PUT("/:id/stages", boardHandler.ReplaceStages)
			boards.POST("/:id/stages", boardHandler.AddStage)
			boards.DELETE("/:id/stages/:stage_id", boardHandler.RemoveStage)
			boards.PUT("/:id/filter", boardHandler.SetFilter)
		}

		// Tasks
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireActor(appStore))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/move", taskHandler.MoveTask)
			tasks.POST("/:id/form-complete", taskHandler.ToggleFormComplete)
			tasks.PUT("/:id/draft", taskHandler.SaveDraft)
			tasks.POST("/:id/draft/commit", taskHandler.CommitDraft)
			tasks.DELETE("/:id/draft", taskHandler.DiscardDraft)
			tasks.POST("/:id/help-requests", taskHandler.CreateHelpRequest)
			tasks.POST("/:id/help-requests/:request_id/acknowledge", taskHandler.AcknowledgeHelpRequest)
			tasks.POST("/:id/help-requests/:request_id/resolve", taskHandler.ResolveHelpRequest)
		}
	}

	logger.Info("Server starting", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
