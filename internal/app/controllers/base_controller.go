package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"propertyops-http-service/internal/domain/services"
	"propertyops-http-service/internal/error/response"
	Logger "propertyops-http-service/pkg/logger"
)

// parseID reads the :id path parameter. Anything that is not a positive
// integer cannot name a record, so it is answered with 404.
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.NotFound(ctx)
		return 0, false
	}
	return uint(id), true
}

// bindRoot returns the raw attributes nested under key in the request body,
// e.g. {"tenant": {...}}. The response has already been written when ok is
// false.
func bindRoot(ctx *gin.Context, key string) (json.RawMessage, bool) {
	body, err := ctx.GetRawData()
	if err != nil {
		response.BadRequest(ctx, err.Error())
		return nil, false
	}

	var root map[string]json.RawMessage
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &root); err != nil {
			response.BadRequest(ctx, err.Error())
			return nil, false
		}
	}

	attrs, present := root[key]
	if !present || isBlankJSON(attrs) {
		response.ParamMissing(ctx, key)
		return nil, false
	}
	return attrs, true
}

// decodeParams unmarshals attrs into params, answering 400 on a type mismatch.
func decodeParams(ctx *gin.Context, attrs json.RawMessage, params interface{}) bool {
	if err := json.Unmarshal(attrs, params); err != nil {
		response.BadRequest(ctx, err.Error())
		return false
	}
	return true
}

func isBlankJSON(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", `""`, "{}", "[]":
		return true
	default:
		return false
	}
}

// handleServiceError maps a service error onto the response.
func handleServiceError(ctx *gin.Context, err error) {
	var validationErr *services.ValidationError
	var decodeErr *services.DecodeError

	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(ctx)
	case errors.As(err, &validationErr):
		response.ValidationFailed(ctx, validationErr.Errors)
	case errors.As(err, &decodeErr):
		response.BadRequest(ctx, decodeErr.Err.Error())
	default:
		Logger.Error("%s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		response.ServerError(ctx)
	}
}

// invalidMethod answers a dispatch name no controller method handles.
func invalidMethod(ctx *gin.Context, method string) {
	Logger.Error("no controller method %q for %s", method, ctx.FullPath())
	response.ServerError(ctx)
}
