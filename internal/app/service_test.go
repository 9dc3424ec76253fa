package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kosarlukascz/intercomproxy/internal/domain"
	"github.com/kosarlukascz/intercomproxy/pkg/adminclient"
)

type stubGateway struct {
	user      *domain.UserRecord
	err       error
	lastEmail string
}

func (g *stubGateway) GetUserByEmail(_ context.Context, email string) (*domain.UserRecord, error) {
	g.lastEmail = email
	return g.user, g.err
}

func newTestService(gateway Gateway) *Service {
	return NewService(gateway, testAssembler())
}

func inboundFor(email string) domain.InboundContext {
	return domain.InboundContext{Context: &domain.TriggerContext{User: party(email)}}
}

func TestBuildAccountCanvas_QueriesResolvedIdentity(t *testing.T) {
	gateway := &stubGateway{err: adminclient.ErrUserNotFound}
	service := newTestService(gateway)

	service.BuildAccountCanvas(context.Background(), inboundFor("trader@example.com"))

	if gateway.lastEmail != "trader@example.com" {
		t.Fatalf("expected gateway queried with resolved identity, got %q", gateway.lastEmail)
	}
}

func TestBuildAccountCanvas_SentinelWhenContextEmpty(t *testing.T) {
	gateway := &stubGateway{err: adminclient.ErrUserNotFound}
	service := newTestService(gateway)

	canvas := service.BuildAccountCanvas(context.Background(), domain.InboundContext{})

	if gateway.lastEmail != UnknownIdentity {
		t.Fatalf("expected sentinel identity queried, got %q", gateway.lastEmail)
	}
	if findText(canvas, UnknownIdentity) == nil {
		t.Fatal("expected sentinel identity named in the not-found block")
	}
}

func TestBuildAccountCanvas_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		gateway *stubGateway
	}{
		{name: "not found error", gateway: &stubGateway{err: adminclient.ErrUserNotFound}},
		{name: "nil record without error", gateway: &stubGateway{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := newTestService(tt.gateway).BuildAccountCanvas(context.Background(), inboundFor("ghost@example.com"))

			components := canvas.Canvas.Content.Components
			if len(components) != 1 {
				t.Fatalf("expected a single block, got %d", len(components))
			}
			if !strings.Contains(components[0].Text, "ghost@example.com") {
				t.Fatalf("expected queried identity in the message, got %q", components[0].Text)
			}
			if components[0].Style == domain.StyleError {
				t.Fatal("not-found must not render as an error")
			}
		})
	}
}

func TestBuildAccountCanvas_UpstreamFailure(t *testing.T) {
	gateway := &stubGateway{err: errors.New("admin api returned error status 502")}
	canvas := newTestService(gateway).BuildAccountCanvas(context.Background(), inboundFor("trader@example.com"))

	components := canvas.Canvas.Content.Components
	if len(components) != 1 {
		t.Fatalf("expected a single error block, got %d", len(components))
	}
	if components[0].Style != domain.StyleError {
		t.Fatalf("expected error style, got %q", components[0].Style)
	}
	if !strings.Contains(components[0].Text, "502") {
		t.Fatalf("expected error summary in the block, got %q", components[0].Text)
	}
}

func TestBuildAccountCanvas_NoAccounts(t *testing.T) {
	gateway := &stubGateway{user: testUser(nil)}
	canvas := newTestService(gateway).BuildAccountCanvas(context.Background(), inboundFor("trader@example.com"))

	components := canvas.Canvas.Content.Components
	if len(components) != 1 {
		t.Fatalf("expected a single block, got %d", len(components))
	}
	if countType(canvas, domain.ComponentList) != 0 {
		t.Fatal("expected no account sections")
	}
}

func TestBuildAccountCanvas_FullOverview(t *testing.T) {
	accounts := []domain.AccountRecord{
		account("l1", domain.StateLive, day(5)),
		account("e1", domain.StateEndFail, day(3)),
	}
	gateway := &stubGateway{user: testUser(accounts)}

	canvas := newTestService(gateway).BuildAccountCanvas(context.Background(), inboundFor("trader@example.com"))

	if findText(canvas, "Live Accounts (1)") == nil {
		t.Fatal("expected live section")
	}
	if findText(canvas, "Recent Ended Accounts (1)") == nil {
		t.Fatal("expected ended section")
	}
}
