package handlers

import (
	"fmt"

	"github.com/JojerDojer/web-420/internal/docs"

	"github.com/gofiber/fiber/v2"
)

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>WEB 420 RESTful APIs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => { SwaggerUIBundle({ url: "%s", dom_id: "#swagger-ui" }); };
  </script>
</body>
</html>`

// DocsHandler serves the OpenAPI description and an interactive explorer.
type DocsHandler struct {
	specJSON []byte
}

// NewDocsHandler parses the embedded OpenAPI document once.
func NewDocsHandler() (*DocsHandler, error) {
	specJSON, err := docs.JSON()
	if err != nil {
		return nil, err
	}
	return &DocsHandler{specJSON: specJSON}, nil
}

// RegisterRoutes mounts the docs under prefix, e.g. "/api-docs".
func (h *DocsHandler) RegisterRoutes(app fiber.Router, prefix string) {
	docsRoutes := app.Group(prefix)
	docsRoutes.Get("/", func(c *fiber.Ctx) error {
		c.Type("html")
		return c.SendString(fmt.Sprintf(swaggerUIPage, prefix+"/openapi.json"))
	})
	docsRoutes.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.Send(h.specJSON)
	})
	docsRoutes.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "application/yaml")
		return c.Send(docs.YAML())
	})
}
