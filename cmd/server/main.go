package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"figchat/config"
	"figchat/database"
	"figchat/router"

	"figchat/pkg/ai"
	"figchat/pkg/rag/embedder"
	"figchat/pkg/rag/index"

	chatCtrlImp "figchat/pkg/chat/controllerImp"
	chatSvcImp "figchat/pkg/chat/serviceImp"
	docCtrlImp "figchat/pkg/document/controllerImp"
	figCtrlImp "figchat/pkg/figure/controllerImp"
	figRepoImp "figchat/pkg/figure/repositoryImp"
	healthCtrlImp "figchat/pkg/health/controllerImp"
	ragRepoImp "figchat/pkg/rag/repositoryImp"
	ragSvcImp "figchat/pkg/rag/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Providers; deterministic fallbacks when not configured
	var emb embedder.Embedder
	if cfg.EmbEndpoint != "" && cfg.EmbAPIKey != "" {
		emb = embedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	} else {
		log.Printf("WARN: EMB_ENDPOINT/EMB_API_KEY not set, using local hash embedder")
		emb = embedder.NewLocal(64)
	}
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Printf("WARN: LLM_ENDPOINT/LLM_API_KEY not set, using mock answers")
		llm = ai.NewMock()
	}

	// 4) RAG pipeline wiring
	store := index.NewStore(cfg.IndexDir)
	docRepo := ragRepoImp.New(db)
	ragSvc := ragSvcImp.New(docRepo, emb, store, cfg.UploadDir, cfg.ChunkSize, cfg.ChunkOverlap)

	// 5) Repos/Controllers
	figRepo := figRepoImp.New(db)
	figCtrl := figCtrlImp.New(figRepo, ragSvc)
	docCtrl := docCtrlImp.New(figRepo, docRepo, ragSvc, cfg.URLAllowedDomains)
	chatSvc := chatSvcImp.New(figRepo, ragSvc, llm, cfg.TopK)
	chatCtrl := chatCtrlImp.New(chatSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Echo + routes
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	r := router.New(e, figCtrl, docCtrl, chatCtrl, hCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
