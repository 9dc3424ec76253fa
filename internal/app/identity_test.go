package app

import (
	"testing"

	"github.com/kosarlukascz/intercomproxy/internal/domain"
)

func party(email string) *domain.Party {
	return &domain.Party{Email: email}
}

func TestResolveIdentity_PriorityOrder(t *testing.T) {
	tests := []struct {
		name    string
		inbound domain.InboundContext
		want    string
	}{
		{
			name: "context customer wins over everything",
			inbound: domain.InboundContext{
				Context: &domain.TriggerContext{
					Customer: party("customer@ctx.com"),
					User:     party("user@ctx.com"),
				},
				User: party("user@top.com"),
			},
			want: "customer@ctx.com",
		},
		{
			name: "context user beats context contact",
			inbound: domain.InboundContext{
				Context: &domain.TriggerContext{
					User:    party("user@ctx.com"),
					Contact: party("contact@ctx.com"),
				},
			},
			want: "user@ctx.com",
		},
		{
			name: "context contact beats top-level customer",
			inbound: domain.InboundContext{
				Context:  &domain.TriggerContext{Contact: party("contact@ctx.com")},
				Customer: party("customer@top.com"),
			},
			want: "contact@ctx.com",
		},
		{
			name: "top-level customer beats top-level user",
			inbound: domain.InboundContext{
				Customer: party("customer@top.com"),
				User:     party("user@top.com"),
			},
			want: "customer@top.com",
		},
		{
			name:    "top-level user beats input values",
			inbound: domain.InboundContext{User: party("user@top.com"), InputValues: &domain.InputValues{Email: "form@input.com"}},
			want:    "user@top.com",
		},
		{
			name:    "input values used last",
			inbound: domain.InboundContext{InputValues: &domain.InputValues{Email: "form@input.com"}},
			want:    "form@input.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveIdentity(tt.inbound)
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolveIdentity_SkipsEmptyValues(t *testing.T) {
	inbound := domain.InboundContext{
		Context:  &domain.TriggerContext{Customer: party("")},
		Customer: party(""),
		User:     party("fallback@upcomers.com"),
	}

	got := ResolveIdentity(inbound)
	if got != "fallback@upcomers.com" {
		t.Fatalf("expected empty candidates to be skipped, got %q", got)
	}
}

func TestResolveIdentity_Sentinel(t *testing.T) {
	tests := []struct {
		name    string
		inbound domain.InboundContext
	}{
		{name: "empty payload", inbound: domain.InboundContext{}},
		{name: "present but empty context", inbound: domain.InboundContext{Context: &domain.TriggerContext{}}},
		{name: "all candidates empty", inbound: domain.InboundContext{
			Context:     &domain.TriggerContext{Customer: party(""), User: party(""), Contact: party("")},
			Customer:    party(""),
			User:        party(""),
			InputValues: &domain.InputValues{},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveIdentity(tt.inbound)
			if got != UnknownIdentity {
				t.Fatalf("expected sentinel %q, got %q", UnknownIdentity, got)
			}
			if got == "" {
				t.Fatal("resolver must never return an empty identity")
			}
		})
	}
}
