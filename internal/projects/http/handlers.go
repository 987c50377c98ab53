package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/logging"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/navigation"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, "projects.list", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "projects.get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	saved, err := h.svc.Update(c.Request.Context(), c.Param("id"), func(p *domain.Project) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if len(req.Fields) > 0 {
			if p.Input == nil {
				p.Input = domain.SiteInput{}
			}
			p.Input = domain.MergeFields(p.Input, req.Fields)
		}
		if req.Content != nil {
			if req.Content.Text != nil {
				p.Content.Text = *req.Content.Text
			}
			if req.Content.Clients != nil {
				p.Content.Clients = req.Content.Clients
			}
		}
	})
	if err != nil {
		h.fail(c, "projects.update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": saved})
}

func (h *Handler) delete(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusPreconditionRequired, gin.H{"ok": false, "error": "confirm=true required to delete"})
		return
	}

	ok, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "projects.delete", err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) edit(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "projects.edit", err)
		return
	}

	d, err := h.drafts.OpenProject(*p)
	if err != nil {
		h.fail(c, "projects.edit", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"route": navigation.EditRoute(p.Kind()),
		"draft": d.View(),
	})
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
	case errors.Is(err, domain.ErrNameRequired), errors.Is(err, domain.ErrNotPersistable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": err.Error()})
	default:
		logging.FromContext(c.Request.Context(), h.log).LogError(op, err, zap.String("project_id", c.Param("id")))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
