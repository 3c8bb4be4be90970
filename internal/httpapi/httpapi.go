// Package httpapi serves a game session as JSON over HTTP.
package httpapi

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/tatianab/dragon-repeller/internal/session"
)

// Server guards a single session; requests are applied one at a time.
type Server struct {
	mu   sync.Mutex
	sess *session.Session
}

func New(sess *session.Session) *Server {
	return &Server{sess: sess}
}

type actionRequest struct {
	Action string `json:"action" binding:"required"`
}

// Router builds the gin engine with every route mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/state", s.getState)
		api.GET("/session", s.getSession)
		api.POST("/session/continue", s.continueGame)
		api.POST("/session/new", s.newGame)
		api.POST("/actions", s.dispatch)
	}
	return r
}

func (s *Server) getState(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.sess.View())
}

func (s *Server) getSession(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"hasSavedGame": s.sess.HasSavedGame(c.Request.Context())})
}

func (s *Server) continueGame(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.ContinueGame(c.Request.Context())
	c.JSON(http.StatusOK, s.sess.View())
}

func (s *Server) newGame(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.StartNewGame(c.Request.Context())
	c.JSON(http.StatusOK, s.sess.View())
}

// dispatch applies one action. Unknown ids leave the game unchanged and
// still answer with the current view.
func (s *Server) dispatch(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.Dispatch(c.Request.Context(), req.Action)
	c.JSON(http.StatusOK, s.sess.View())
}
