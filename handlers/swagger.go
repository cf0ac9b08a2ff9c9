package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>foliocms — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document covering the public and admin surfaces.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "foliocms", "version": "v0.1.0" },
  "paths": {
    "/auth/login": {
      "post": {
        "summary": "Exchange authorization code / login",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"mode":{"type":"string"},"username":{"type":"string"},"password":{"type":"string"},"code":{"type":"string"},"redirect_uri":{"type":"string"}}}}}},
        "responses": { "200": { "description": "tokens returned" } }
      }
    },
    "/auth/refresh": {
      "post": { "summary": "Refresh access token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refresh_token":{"type":"string"}}}}}}, "responses": { "200": { "description": "new access token" }, "401": { "description": "invalid refresh" } } }
    },
    "/auth/logout": {
      "post": { "summary": "Logout and invalidate refresh token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refresh_token":{"type":"string"}}}}}}, "responses": { "200": { "description": "logged out" } } }
    },
    "/api/site": {
      "get": { "summary": "Aggregate portfolio snapshot with fallbacks", "responses": { "200": { "description": "snapshot" }, "503": { "description": "fetch failed" } } }
    },
    "/api/content/{type}": {
      "get": { "summary": "Read a content document (home, about, work, social, config)", "parameters": [ { "name": "type", "in": "path", "required": true, "schema": {"type":"string"} } ], "responses": { "200": { "description": "document" }, "404": { "description": "absent" } } }
    },
    "/api/projects": {
      "get": { "summary": "List projects ordered by position, optionally by category", "parameters": [ { "name": "category", "in": "query", "schema": {"type":"string"} } ], "responses": { "200": { "description": "projects" } } }
    },
    "/api/projects/featured": {
      "get": { "summary": "List featured projects", "responses": { "200": { "description": "projects" } } }
    },
    "/api/gallery": {
      "get": { "summary": "List gallery images", "responses": { "200": { "description": "images" } } }
    },
    "/api/fetchImages": {
      "get": { "summary": "List images from the legacy media CDN", "responses": { "200": { "description": "images" }, "500": { "description": "CDN unavailable" } } }
    },
    "/api/admin/content/{type}": {
      "put": { "summary": "Merge-write a content document", "parameters": [ { "name": "type", "in": "path", "required": true, "schema": {"type":"string"} } ], "responses": { "200": { "description": "saved" }, "401": { "description": "unauthorized" } } }
    },
    "/api/admin/projects": {
      "post": { "summary": "Create a project", "responses": { "201": { "description": "created" }, "400": { "description": "invalid payload" } } }
    },
    "/api/admin/projects/{id}": {
      "patch": { "summary": "Partially update a project", "responses": { "200": { "description": "saved" } } },
      "delete": { "summary": "Delete a project", "responses": { "204": { "description": "deleted" }, "404": { "description": "unknown id" } } }
    },
    "/api/admin/gallery": {
      "post": { "summary": "Upload a gallery image", "responses": { "201": { "description": "uploaded" } } }
    },
    "/api/admin/gallery/{name}": {
      "delete": { "summary": "Delete a gallery image", "responses": { "204": { "description": "deleted" } } }
    },
    "/api/admin/upload": {
      "post": { "summary": "Upload an image to an explicit blob path", "responses": { "201": { "description": "uploaded" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
