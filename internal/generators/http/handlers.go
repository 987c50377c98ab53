package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/generators"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/logging"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

func (h *Handler) generate(c *gin.Context) {
	kind, err := domain.ParseKind(c.Param("kind"))
	if err != nil {
		h.fail(c, "generators.generate", err)
		return
	}

	var req generateReq
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	res, err := h.set.Generate(c.Request.Context(), kind, req.Fields)
	if err != nil {
		h.fail(c, "generators.generate", err)
		return
	}

	out := gin.H{"ok": true, "kind": kind, "content": res.Content, "fallback": res.Fallback}
	if res.Warning != "" {
		out["warning"] = res.Warning
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) openDraft(c *gin.Context) {
	var req openDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		h.fail(c, "generators.open_draft", err)
		return
	}

	d, err := h.drafts.Open(kind, req.Fields)
	if err != nil {
		h.fail(c, "generators.open_draft", err)
		return
	}
	if req.Name != "" {
		d.Update(&req.Name, nil)
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "draft": d.View()})
}

func (h *Handler) getDraft(c *gin.Context) {
	d, ok := h.draft(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "draft": d.View()})
}

func (h *Handler) updateDraft(c *gin.Context) {
	d, ok := h.draft(c)
	if !ok {
		return
	}

	var req updateDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	d.Update(req.Name, req.Fields)

	c.JSON(http.StatusOK, gin.H{"ok": true, "draft": d.View()})
}

func (h *Handler) generateDraft(c *gin.Context) {
	d, ok := h.draft(c)
	if !ok {
		return
	}

	v, err := d.Generate(c.Request.Context())
	if err != nil {
		h.fail(c, "generators.generate_draft", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "draft": v})
}

func (h *Handler) saveDraft(c *gin.Context) {
	d, ok := h.draft(c)
	if !ok {
		return
	}

	var req saveDraftReq
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if req.Name != nil {
		d.Update(req.Name, nil)
	}

	res, err := h.saver.Save(c.Request.Context(), d)
	if err != nil {
		h.fail(c, "generators.save_draft", err)
		return
	}

	out := gin.H{"ok": true, "draft": d.View()}
	if res.Project != nil {
		out["project"] = res.Project
	}
	if res.ContactList != nil {
		out["contactList"] = res.ContactList
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) listContactLists(c *gin.Context) {
	items, err := h.contacts.List(c.Request.Context())
	if err != nil {
		h.fail(c, "generators.list_contact_lists", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "contactLists": items})
}

func (h *Handler) draft(c *gin.Context) (generators.Draft, bool) {
	d, err := h.drafts.Get(c.Param("id"))
	if err != nil {
		h.fail(c, "generators.get_draft", err)
		return nil, false
	}
	return d, true
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, generators.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrInvalidKind):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, generators.ErrGenerationInProgress):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, generators.ErrMissingInput),
		errors.Is(err, generators.ErrNothingToSave),
		errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrNotPersistable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": err.Error()})
	default:
		logging.FromContext(c.Request.Context(), h.log).LogError(op, err, zap.String("draft_id", c.Param("id")))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}

// bindOptionalJSON decodes the body into obj when one is sent. An empty body,
// chunked or not, leaves obj untouched.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
