/**
 * @description
 * This file contains the core business logic for the initialize webhook. The
 * Service resolves the customer identity, fetches the user record from the
 * admin API and turns the result into a canvas document. Every failure mode is
 * absorbed here: the caller always gets a renderable canvas, never an error.
 */
package app

import (
	"context"
	"errors"
	"log"

	"github.com/kosarlukascz/intercomproxy/internal/domain"
	"github.com/kosarlukascz/intercomproxy/pkg/adminclient"
)

// Gateway defines the admin API operations the service needs.
type Gateway interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
}

// Service builds canvas documents for the webhook handlers.
type Service struct {
	gateway   Gateway
	assembler *Assembler
}

// NewService creates the webhook service.
func NewService(gateway Gateway, assembler *Assembler) *Service {
	return &Service{gateway: gateway, assembler: assembler}
}

// BuildAccountCanvas produces the canvas for one initialize request.
func (s *Service) BuildAccountCanvas(ctx context.Context, inbound domain.InboundContext) *domain.Canvas {
	email := ResolveIdentity(inbound)

	user, err := s.gateway.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminclient.ErrUserNotFound) {
			return s.assembler.NotFound(email)
		}
		log.Printf("Admin API lookup failed for %s: %v", email, err)
		return s.assembler.UpstreamError(err.Error())
	}
	if user == nil {
		return s.assembler.NotFound(email)
	}
	if len(user.Accounts) == 0 {
		return s.assembler.NoAccounts(user.Email)
	}

	live, endedRecent := Classify(user.Accounts)
	return s.assembler.AccountOverview(user, live, endedRecent)
}

// AcknowledgeSubmit produces the fixed canvas for the submit webhook.
func (s *Service) AcknowledgeSubmit() *domain.Canvas {
	return s.assembler.Acknowledgement()
}

// InternalErrorCanvas is the fallback document used when request handling
// panics; exposed so the handler can respond from its recover path.
func (s *Service) InternalErrorCanvas() *domain.Canvas {
	return s.assembler.InternalError()
}
