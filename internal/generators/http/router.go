package http

import "github.com/gin-gonic/gin"

// Register attaches generation, draft and contact list routes to rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/generate/:kind", h.generate)

	drafts := rg.Group("/drafts")
	drafts.POST("", h.openDraft)
	drafts.GET("/:id", h.getDraft)
	drafts.PATCH("/:id", h.updateDraft)
	drafts.POST("/:id/generate", h.generateDraft)
	drafts.POST("/:id/save", h.saveDraft)
	drafts.GET("/:id/export/csv", h.exportCSV)
	drafts.GET("/:id/export/print", h.exportPrint)
	drafts.GET("/:id/links", h.links)

	rg.GET("/contact-lists", h.listContactLists)
}
