package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"

	"letter-engine/internal/common/errors"
	"letter-engine/internal/models"
	"letter-engine/pkg/catalog"
	"letter-engine/pkg/lettertypes"
)

type errorResponse struct {
	Error *errors.StandardError `json:"error"`
}

type letterTypeView struct {
	lettertypes.TypeMetadata
	RequiredFields []string   `json:"requiredFields"`
	OptionalFields []string   `json:"optionalFields"`
	ReasonCatalog  catalog.ID `json:"reasonCatalog"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		s.respondError(c, errors.NewSchemaValidationFailedError(fmt.Sprintf("read body: %v", err)))
		return
	}

	// Peek the letter type so the right wire schema can be applied. An
	// unknown type skips straight to the engine validator, which owns
	// INVALID_LETTER_TYPE.
	var peek struct {
		LetterType string `json:"letterType"`
	}
	if err := json.Unmarshal(body, &peek); err != nil {
		s.respondError(c, errors.NewSchemaValidationFailedError(fmt.Sprintf("parse request: %v", err)))
		return
	}

	if schema := lettertypes.InputSchemaWithLimit(lettertypes.LetterType(peek.LetterType), s.cfg.Letter.AdditionalDetailsMaxLength); schema != nil {
		if stdErr := validateShape(schema, body); stdErr != nil {
			s.respondError(c, stdErr)
			return
		}
	}

	var req models.LetterRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.respondError(c, errors.NewSchemaValidationFailedError(fmt.Sprintf("parse request: %v", err)))
		return
	}

	letter, genErr := s.engine.Generate(&req)
	if genErr != nil {
		if stdErr, ok := errors.AsStandard(genErr); ok {
			s.respondError(c, stdErr)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": genErr.Error()})
		return
	}

	c.JSON(http.StatusOK, letter)
}

func (s *Server) handleListTypes(c *gin.Context) {
	all := lettertypes.All()
	views := make([]letterTypeView, 0, len(all))
	for _, meta := range all {
		views = append(views, letterTypeView{
			TypeMetadata:   meta,
			RequiredFields: lettertypes.RequiredFields(meta.Key),
			OptionalFields: lettertypes.OptionalFields(meta.Key),
			ReasonCatalog:  lettertypes.ReasonCatalog(meta.Key),
		})
	}
	c.JSON(http.StatusOK, gin.H{"letterTypes": views})
}

func (s *Server) handleListReasons(c *gin.Context) {
	letterType := lettertypes.LetterType(c.Param("type"))
	if !lettertypes.IsValid(letterType) {
		s.respondError(c, errors.NewInvalidLetterTypeError(c.Param("type")))
		return
	}

	id := lettertypes.ReasonCatalog(letterType)
	c.JSON(http.StatusOK, gin.H{
		"catalog": id,
		"reasons": catalog.List(id),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": s.cfg.App.Name,
		"version": s.cfg.App.Version,
	})
}

func (s *Server) respondError(c *gin.Context, stdErr *errors.StandardError) {
	c.JSON(errors.HTTPStatus(stdErr.Code), errorResponse{Error: stdErr})
}

// validateShape checks the raw request body against the letter type's wire
// schema. This is where the additional-details length cap is enforced; the
// engine validator only checks presence.
func validateShape(schema map[string]interface{}, body []byte) *errors.StandardError {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return errors.NewSchemaValidationFailedError(err.Error())
	}
	if !result.Valid() {
		descs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			descs[i] = desc.String()
		}
		return errors.NewSchemaValidationFailedError(strings.Join(descs, "; "))
	}
	return nil
}
