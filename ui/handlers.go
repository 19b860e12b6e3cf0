package ui

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"programas/domain/catalog"
	"programas/internal/errors"
)

// filterStateFromQuery builds a FilterState from request query params.
// Absent params stay empty, which means unconstrained; a request with no
// params is the clear-all state.
func filterStateFromQuery(c *gin.Context) catalog.FilterState {
	return catalog.FilterState{
		SearchTerm:  c.Query("q"),
		Institution: c.Query("institution"),
		Department:  c.Query("department"),
		ProgramName: c.Query("program"),
	}
}

// statusForError maps AppError codes onto HTTP statuses.
func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeNotLoaded, errors.CodeFetchFailed, errors.CodeDecodeFailed:
		return http.StatusServiceUnavailable
	case errors.CodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) abortWithError(c *gin.Context, err error) {
	log.Printf("[API] %s failed: %v", c.Request.URL.Path, err)
	c.JSON(statusForError(err), gin.H{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

// programRow is a render-ready record for the HTML table.
type programRow struct {
	catalog.Program
	TuitionDisplay string
}

func (s *Server) handleIndex() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := filterStateFromQuery(c)

		view, err := s.service.Programs(state)
		if err != nil {
			c.HTML(statusForError(err), "error.html", gin.H{
				"Message": "El catálogo no está disponible",
				"Detail":  err.Error(),
			})
			return
		}

		facets, err := s.service.Facets()
		if err != nil {
			s.abortWithError(c, err)
			return
		}

		stats := catalog.Summarize(view)

		rows := make([]programRow, len(view))
		for i, p := range view {
			rows[i] = programRow{Program: p, TuitionDisplay: s.formatter.FormatCurrency(p.Tuition)}
		}

		c.HTML(http.StatusOK, "index.html", gin.H{
			"State":       state,
			"Rows":        rows,
			"Stats":       stats,
			"MeanDisplay": s.formatter.FormatCurrency(&stats.MeanTuition),
			"Facets":      facets,
		})
	}
}

func (s *Server) handlePrograms() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := filterStateFromQuery(c)

		view, err := s.service.Programs(state)
		if err != nil {
			s.abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"programs": view,
			"count":    len(view),
		})
	}
}

func (s *Server) handleStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := filterStateFromQuery(c)

		stats, err := s.service.Stats(state)
		if err != nil {
			s.abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"stats":              stats,
			"meanTuitionDisplay": s.formatter.FormatCurrency(&stats.MeanTuition),
		})
	}
}

func (s *Server) handleFacets() gin.HandlerFunc {
	return func(c *gin.Context) {
		facets, err := s.service.Facets()
		if err != nil {
			s.abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, facets)
	}
}

func (s *Server) handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.service.Loaded() {
			status := gin.H{"status": "loading"}
			if err := s.service.LoadError(); err != nil {
				status = gin.H{"status": "failed", "error": err.Error()}
			}
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
