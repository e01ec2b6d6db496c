package server

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/lorekeep/lattice/internal/config"
	"github.com/lorekeep/lattice/internal/core"
	"github.com/lorekeep/lattice/internal/core/draft"
	"github.com/lorekeep/lattice/internal/gateway"
	"github.com/lorekeep/lattice/internal/llm"
)

type Server struct {
	Gateway   gateway.GraphGateway
	Bootstrap *core.SchemaBootstrapper
	Entries   *core.KnowledgeEntryService
	Traversal *core.GraphTraversalService
	Drafter   *draft.Drafter // nil when no LLM is configured
}

// New wires the knowledge services onto a gateway. Drafter may be nil.
func New(gw gateway.GraphGateway, drafter *draft.Drafter) *Server {
	return &Server{
		Gateway:   gw,
		Bootstrap: core.NewSchemaBootstrapper(gw),
		Entries:   core.NewKnowledgeEntryService(gw),
		Traversal: core.NewGraphTraversalService(gw),
		Drafter:   drafter,
	}
}

// NewServer builds a production server from config file + environment.
func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Falling back to environment config", cfgPath, err)
		cfg = config.FromEnv()
	}

	gw, err := gateway.NewMemgraphGateway(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
	if err != nil {
		log.Fatalf("Failed to connect to Memgraph: %v", err)
	}

	if err := gw.BuildIndices(context.Background()); err != nil {
		log.Printf("Warning: failed to build indices: %v", err)
	}

	var drafter *draft.Drafter
	if cfg.LLM.Provider != "" {
		llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			log.Fatalf("Failed to initialize LLM client: %v", err)
		}
		drafter = draft.NewDrafter(llmClient, cfg.Draft)
	} else {
		log.Println("No LLM provider configured, entry drafting disabled")
	}

	return New(gw, drafter)
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	ws := r.Group("/workspaces/:workspace_id")
	ws.POST("/schema/bootstrap", s.BootstrapSchema)
	ws.POST("/entries", s.CreateEntry)
	ws.GET("/entries/:entry_id", s.GetEntry)
	ws.POST("/entries/:entry_id/links", s.LinkEntry)
	ws.POST("/drafts", s.DraftEntry)
	ws.POST("/graph/traverse", s.TraverseGraph)

	return r
}
