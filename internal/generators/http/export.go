package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/export"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/generators"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

func (h *Handler) exportCSV(c *gin.Context) {
	d, content, ok := h.draftContent(c)
	if !ok {
		return
	}

	var (
		b        []byte
		filename string
		err      error
	)
	switch d.Kind() {
	case domain.KindContacts:
		b, err = export.ContactsCSV(content.Contacts)
		filename = export.ContactsFilename
	case domain.KindClientList:
		b, err = export.ClientsCSV(content.Clients)
		filename = export.ClientsFilename
	default:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": fmt.Sprintf("csv export not available for %s", d.Kind())})
		return
	}
	if err != nil {
		h.fail(c, "generators.export_csv", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", b)
}

func (h *Handler) exportPrint(c *gin.Context) {
	d, content, ok := h.draftContent(c)
	if !ok {
		return
	}
	if d.Kind().Structured() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": fmt.Sprintf("print export not available for %s", d.Kind())})
		return
	}

	b, err := export.PrintDocument(content.Text)
	if err != nil {
		h.fail(c, "generators.export_print", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", b)
}

// links returns share targets for text kinds and profile URLs for lead lists.
func (h *Handler) links(c *gin.Context) {
	d, content, ok := h.draftContent(c)
	if !ok {
		return
	}

	switch d.Kind() {
	case domain.KindContacts:
		profiles := make([]profileLink, 0, len(content.Contacts))
		for _, ct := range content.Contacts {
			if strings.TrimSpace(ct.Instagram) != "" {
				profiles = append(profiles, profileLink{Name: ct.Name, URL: export.InstagramURL(ct.Instagram)})
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "profiles": profiles})
	case domain.KindClientList:
		profiles := make([]profileLink, 0, len(content.Clients))
		for _, cl := range content.Clients {
			if strings.TrimSpace(cl.Instagram) != "" {
				profiles = append(profiles, profileLink{Name: cl.BusinessName, URL: export.InstagramURL(cl.Instagram)})
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "profiles": profiles})
	default:
		c.JSON(http.StatusOK, gin.H{"ok": true, "links": export.ShareLinks(content.Text)})
	}
}

func (h *Handler) draftContent(c *gin.Context) (generators.Draft, generators.Content, bool) {
	d, ok := h.draft(c)
	if !ok {
		return nil, generators.Content{}, false
	}
	content, ok := d.Content()
	if !ok || content.Empty() {
		h.fail(c, "generators.export", generators.ErrNothingToSave)
		return nil, generators.Content{}, false
	}
	return d, content, true
}
