// Package http implements the HTTP transport layer of the user service.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"github.com/shorturl-platform/userservice/internal/logger"
	"github.com/shorturl-platform/userservice/internal/secrets"
	"github.com/shorturl-platform/userservice/internal/service"
	"github.com/shorturl-platform/userservice/internal/token"
)

// Handler carries the collaborators every route handler needs: the service
// layer, the token manager for validating bearer credentials, and the
// secrets provider for the administrative basic-auth gate.
type Handler struct {
	services *service.Services
	tokens   *token.Manager
	secrets  secrets.Provider

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set.
func NewHandler(services *service.Services, tokens *token.Manager, secretsProvider secrets.Provider, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		tokens:   tokens,
		secrets:  secretsProvider,
		logger:   logger,
	}
}
