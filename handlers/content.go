package handlers

import (
	"net/http"

	"github.com/foliocms/foliocms/internal/aggregate"
	"github.com/foliocms/foliocms/internal/cdn"
	"github.com/foliocms/foliocms/internal/content"
	"github.com/foliocms/foliocms/internal/content/service"
	"github.com/foliocms/foliocms/internal/gallery"
	"github.com/foliocms/foliocms/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// ContentHandler serves the public presentation endpoints and the admin
// editing surface. Public reads go straight to the content access layer;
// admin writes go through the aggregate store so every consumer sees the
// optimistic merge without re-fetching.
type ContentHandler struct {
	svc   *service.Service
	store *aggregate.Store
	gal   *gallery.Service
	cdn   *cdn.Service // nil when the CDN integration is not configured
}

func NewContentHandler(svc *service.Service, store *aggregate.Store, gal *gallery.Service, cdnSvc *cdn.Service) *ContentHandler {
	return &ContentHandler{svc: svc, store: store, gal: gal, cdn: cdnSvc}
}

// Register wires the routes. When verifier is nil the admin routes are
// registered unguarded; main only does that in development.
func (h *ContentHandler) Register(r *gin.Engine, verifier middleware.Verifier) {
	api := r.Group("/api")

	api.GET("/site", h.Site)
	api.GET("/content/home", h.GetHome)
	api.GET("/content/about", h.GetAbout)
	api.GET("/content/work", h.GetWork)
	api.GET("/content/social", h.GetSocial)
	api.GET("/content/config", h.GetConfig)
	api.GET("/projects", h.ListProjects)
	api.GET("/projects/featured", h.FeaturedProjects)
	api.GET("/gallery", h.ListGallery)
	api.GET("/fetchImages", h.FetchCDNImages)

	admin := api.Group("/admin")
	if verifier != nil {
		admin.Use(middleware.AuthMiddleware(verifier))
	}
	admin.PUT("/content/home", h.UpdateHome)
	admin.PUT("/content/about", h.UpdateAbout)
	admin.PUT("/content/work", h.UpdateWork)
	admin.PUT("/content/social", h.UpdateSocial)
	admin.PUT("/content/config", h.UpdateConfig)
	admin.POST("/projects", h.AddProject)
	admin.PATCH("/projects/:id", h.UpdateProject)
	admin.DELETE("/projects/:id", h.DeleteProject)
	admin.POST("/gallery", h.AddGalleryImage)
	admin.DELETE("/gallery/:name", h.DeleteGalleryImage)
	admin.POST("/upload", h.UploadImage)
}

// Site returns the aggregate snapshot with fallback content applied where
// a document is absent, so the public pages always have something to
// render.
func (h *ContentHandler) Site(c *gin.Context) {
	snap := h.store.Snapshot()
	if snap.Error != "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": snap.Error})
		return
	}
	if snap.Home == nil {
		snap.Home = content.DefaultHome()
	}
	if snap.Config == nil {
		snap.Config = content.DefaultSiteConfig()
	}
	c.JSON(http.StatusOK, snap)
}

func (h *ContentHandler) GetHome(c *gin.Context) {
	if d := h.svc.GetHome(c.Request.Context()); d != nil {
		c.JSON(http.StatusOK, d)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func (h *ContentHandler) GetAbout(c *gin.Context) {
	if d := h.svc.GetAbout(c.Request.Context()); d != nil {
		c.JSON(http.StatusOK, d)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func (h *ContentHandler) GetWork(c *gin.Context) {
	if d := h.svc.GetWork(c.Request.Context()); d != nil {
		c.JSON(http.StatusOK, d)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func (h *ContentHandler) GetSocial(c *gin.Context) {
	if d := h.svc.GetSocialLinks(c.Request.Context()); d != nil {
		c.JSON(http.StatusOK, d)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func (h *ContentHandler) GetConfig(c *gin.Context) {
	if d := h.svc.GetSiteConfig(c.Request.Context()); d != nil {
		c.JSON(http.StatusOK, d)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

// ListProjects returns the ordered collection, optionally filtered by
// ?category= (client-side filter over the full list).
func (h *ContentHandler) ListProjects(c *gin.Context) {
	if cat := c.Query("category"); cat != "" {
		if !content.ValidCategory(cat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		c.JSON(http.StatusOK, h.svc.GetProjectsByCategory(c.Request.Context(), cat))
		return
	}
	c.JSON(http.StatusOK, h.svc.GetProjects(c.Request.Context()))
}

func (h *ContentHandler) FeaturedProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.GetFeaturedProjects(c.Request.Context()))
}

func (h *ContentHandler) UpdateHome(c *gin.Context) {
	var p content.HomePatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writeResult(c, h.store.UpdateHome(c.Request.Context(), &p))
}

func (h *ContentHandler) UpdateAbout(c *gin.Context) {
	var p content.AboutPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writeResult(c, h.store.UpdateAbout(c.Request.Context(), &p))
}

func (h *ContentHandler) UpdateWork(c *gin.Context) {
	var p content.WorkPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writeResult(c, h.store.UpdateWork(c.Request.Context(), &p))
}

func (h *ContentHandler) UpdateSocial(c *gin.Context) {
	var p content.SocialPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writeResult(c, h.store.UpdateSocial(c.Request.Context(), &p))
}

func (h *ContentHandler) UpdateConfig(c *gin.Context) {
	var p content.ConfigPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writeResult(c, h.store.UpdateConfig(c.Request.Context(), &p))
}

// AddProject creates a project. When the payload carries no order, the new
// record goes to the end of the collection.
func (h *ContentHandler) AddProject(c *gin.Context) {
	var req struct {
		content.Project
		Order *int `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !content.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	p := req.Project
	p.ID = ""
	if req.Order != nil {
		p.Order = *req.Order
	} else {
		p.Order = len(h.store.Snapshot().Projects)
	}
	if !h.store.AddNewProject(c.Request.Context(), &p) {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "error saving project"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": p.ID})
}

func (h *ContentHandler) UpdateProject(c *gin.Context) {
	var p content.ProjectPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p.Category != nil && !content.ValidCategory(*p.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	h.writeResult(c, h.store.UpdateProjectData(c.Request.Context(), c.Param("id"), &p))
}

func (h *ContentHandler) DeleteProject(c *gin.Context) {
	if !h.store.RemoveProject(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) ListGallery(c *gin.Context) {
	c.JSON(http.StatusOK, h.gal.Fetch(c.Request.Context()))
}

// AddGalleryImage accepts a multipart upload and stores it under a
// collision-avoiding generated name.
func (h *ContentHandler) AddGalleryImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()
	url := h.gal.Add(c.Request.Context(), fh.Filename, f, fh.Size, fh.Header.Get("Content-Type"))
	if url == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "error uploading image"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "url": url})
}

func (h *ContentHandler) DeleteGalleryImage(c *gin.Context) {
	if !h.gal.Delete(c.Request.Context(), c.Param("name")) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage uploads to an explicit blob path (profile photos, project
// thumbnails) supplied as the "path" form field.
func (h *ContentHandler) UploadImage(c *gin.Context) {
	path := c.PostForm("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path required"})
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()
	url := h.gal.UploadImage(c.Request.Context(), path, f, fh.Size, fh.Header.Get("Content-Type"))
	if url == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "error uploading image"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "url": url})
}

// FetchCDNImages lists uploaded resources from the legacy media CDN.
func (h *ContentHandler) FetchCDNImages(c *gin.Context) {
	if h.cdn == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch images"})
		return
	}
	c.JSON(http.StatusOK, h.cdn.ListImages(c.Request.Context()))
}

func (h *ContentHandler) writeResult(c *gin.Context, ok bool) {
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "error saving"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
