package http

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

const (
	schemaHabitCreate = "habit_create"
	schemaHabitUpdate = "habit_update"
	schemaToggle      = "toggle"
)

func loadSchemas() (map[string]*gojsonschema.Schema, error) {
	out := make(map[string]*gojsonschema.Schema)
	for _, name := range []string{schemaHabitCreate, schemaHabitUpdate, schemaToggle} {
		raw, err := schemaFS.ReadFile("schemas/" + name + ".schema.json")
		if err != nil {
			return nil, err
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		out[name] = schema
	}
	return out, nil
}

// bindValidated checks the request body against the named schema and then
// decodes it into dst. On failure it writes a 400 and returns false.
func (s *Server) bindValidated(c *gin.Context, schema string, dst any) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": "failed to read body"})
		return false
	}
	if strings.TrimSpace(string(body)) == "" {
		c.AbortWithStatusJSON(400, gin.H{"error": "empty body"})
		return false
	}

	res, err := s.schemas[schema].Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": "invalid_json"})
		return false
	}
	if !res.Valid() {
		d := []string{}
		for _, e := range res.Errors() {
			d = append(d, e.String())
		}
		c.AbortWithStatusJSON(400, gin.H{"error": "schema_invalid", "details": d})
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": err.Error()})
		return false
	}
	return true
}
