// Package server exposes the analysis engine over HTTP for external UIs.
// It renders nothing itself: requests and responses are the same
// structures the CLI consumes and produces.
package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lakay-labs/tiraj/internal/analysis"
	"github.com/lakay-labs/tiraj/internal/draw"
)

// Server wires the engine into HTTP handlers.
type Server struct {
	engine *analysis.Engine
}

// New creates a Server around an engine.
func New(engine *analysis.Engine) *Server {
	return &Server{engine: engine}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.POST("/analyze", s.handleAnalyze)
	r.POST("/verify", s.handleVerify)
	r.GET("/catalog/:number", s.handleCatalogLookup)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// Run starts the HTTP server on the given port.
func (s *Server) Run(port int) error {
	r := s.Router()
	addr := fmt.Sprintf(":%d", port)
	log.Printf("[SERVER] listening on %s", addr)
	return r.Run(addr)
}

// respondError sends an error in one format and aborts the handler chain.
func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

type analyzeRequest struct {
	ReferenceDate string   `json:"reference_date" binding:"required"`
	Numbers       []string `json:"numbers" binding:"required"`
	Table         string   `json:"table" binding:"required"`
	WeeksBack     int      `json:"weeks_back"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ref, err := time.Parse(draw.DateLayout, req.ReferenceDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "reference_date must be YYYY-MM-DD")
		return
	}

	report, err := s.engine.Analyze(analysis.Request{
		ReferenceDate: ref,
		Numbers:       req.Numbers,
		Table:         req.Table,
		WeeksBack:     req.WeeksBack,
	})
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"raw_results":  report.Raw,
		"detailed_log": report.Log,
		"formatted":    analysis.FormatFinalResults(report.Raw),
	})
}

type verifyRequest struct {
	ReferenceDate string   `json:"reference_date" binding:"required"`
	Numbers       []string `json:"numbers" binding:"required"`
	Table         string   `json:"table" binding:"required"`
	Day           string   `json:"day" binding:"required"`
}

func (s *Server) handleVerify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ref, err := time.Parse(draw.DateLayout, req.ReferenceDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "reference_date must be YYYY-MM-DD")
		return
	}
	day, err := draw.ParseWeekday(req.Day)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	hits, err := s.engine.VerifyDay(analysis.VerifyRequest{
		ReferenceDate: ref,
		Numbers:       req.Numbers,
		Table:         req.Table,
		Day:           day,
	})
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"hits": hits})
}

func (s *Server) handleCatalogLookup(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil || n < 0 || n > 99 {
		respondError(c, http.StatusBadRequest, "number must be an integer in [0,99]")
		return
	}

	type daysJSON struct {
		Day     string `json:"day"`
		English string `json:"english"`
		Numbers []int  `json:"numbers"`
	}
	type setJSON struct {
		Category    string     `json:"category"`
		SubCategory string     `json:"sub_category"`
		Days        []daysJSON `json:"days"`
	}

	var sets []setJSON
	for _, ps := range s.engine.Catalog().Lookup(n) {
		sj := setJSON{Category: ps.Category, SubCategory: ps.SubCategory}
		for _, dn := range ps.Days {
			sj.Days = append(sj.Days, daysJSON{
				Day:     dn.Day.String(),
				English: dn.Day.English(),
				Numbers: dn.Numbers,
			})
		}
		sets = append(sets, sj)
	}

	c.JSON(http.StatusOK, gin.H{"number": n, "sets": sets})
}
