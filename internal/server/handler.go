package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diagramkit/ormgen/compiler/gen"
	"github.com/diagramkit/ormgen/compiler/load"
)

// GenerateRequest is the body of POST /api/v1/generate: the diagram snapshot
// in its editor wire form plus the recognized generator options.
type GenerateRequest struct {
	Diagram              json.RawMessage `json:"diagram" binding:"required"`
	IndentSize           int             `json:"indentSize,omitempty"`
	CollectionImportPath string          `json:"collectionImportPath,omitempty"`
	Categorized          bool            `json:"categorized,omitempty"`
}

// GenerateResponse is the flat form of the generation result.
type GenerateResponse struct {
	Files map[string]string `json:"files"`
}

// CategorizedResponse is the per-kind form of the generation result, for
// callers that lay files out by directory.
type CategorizedResponse struct {
	Entities    map[string]string `json:"entities"`
	Embeddables map[string]string `json:"embeddables"`
	Enums       map[string]string `json:"enums"`
	Interfaces  map[string]string `json:"interfaces"`
}

// handleGenerate handles POST /api/v1/generate.
func handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := load.Parse(req.Diagram)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var opts []gen.Option
	if req.IndentSize > 0 {
		opts = append(opts, gen.WithIndentSize(req.IndentSize))
	}
	if req.CollectionImportPath != "" {
		opts = append(opts, gen.WithCollectionImportPath(req.CollectionImportPath))
	}
	g, err := gen.NewGraph(snap, opts...)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Categorized {
		f := g.Files()
		c.JSON(http.StatusOK, CategorizedResponse{
			Entities:    f.Entities,
			Embeddables: f.Embeddables,
			Enums:       f.Enums,
			Interfaces:  f.Interfaces,
		})
		return
	}
	files, err := g.GenerateContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, GenerateResponse{Files: files})
}
