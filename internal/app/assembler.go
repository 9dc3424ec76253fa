/**
 * @description
 * This file assembles the final canvas document from a user record and the
 * classified account sets. It is a state machine over four terminal outcomes:
 * user not found, user with no accounts, the normal multi-section overview,
 * and an upstream failure. Every outcome is a complete, well-formed canvas;
 * the console never sees a transport-level failure.
 */
package app

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kosarlukascz/intercomproxy/internal/domain"
)

// Assembler builds canvas documents for the initialize webhook.
type Assembler struct {
	formatter    *Formatter
	dashboardURL string
}

// NewAssembler creates an assembler producing links against the given admin
// dashboard base URL.
func NewAssembler(formatter *Formatter, dashboardURL string) *Assembler {
	return &Assembler{
		formatter:    formatter,
		dashboardURL: strings.TrimRight(dashboardURL, "/"),
	}
}

// NotFound is the canvas for an email with no matching user record.
func (a *Assembler) NotFound(email string) *domain.Canvas {
	return domain.NewCanvas(
		domain.TextBlock(fmt.Sprintf("No user found for %s.", email), domain.StyleMuted),
	)
}

// NoAccounts is the canvas for a user that exists but has no trading accounts.
func (a *Assembler) NoAccounts(email string) *domain.Canvas {
	return domain.NewCanvas(
		domain.TextBlock(fmt.Sprintf("No accounts found for %s.", email), domain.StyleMuted),
	)
}

// UpstreamError is the canvas for a failed admin API call. It is styled as an
// error so agents can tell it apart from an empty result.
func (a *Assembler) UpstreamError(summary string) *domain.Canvas {
	return domain.NewCanvas(
		domain.TextBlock(fmt.Sprintf("Could not load account data: %s", summary), domain.StyleError),
	)
}

// InternalError is the generic canvas for faults caught at the outer handler
// boundary.
func (a *Assembler) InternalError() *domain.Canvas {
	return domain.NewCanvas(
		domain.TextBlock("Something went wrong while building this view. Please retry.", domain.StyleError),
	)
}

// Acknowledgement is the fixed canvas returned by the submit webhook.
func (a *Assembler) Acknowledgement() *domain.Canvas {
	return domain.NewCanvas(
		domain.TextBlock("Request received.", domain.StyleMuted),
	)
}

// AccountOverview is the normal canvas: user header, dashboard action, then
// the live and recently-ended account sections. A section with no accounts is
// omitted entirely; the dividers between regions are always present.
func (a *Assembler) AccountOverview(user *domain.UserRecord, live, endedRecent []domain.AccountRecord) *domain.Canvas {
	components := []domain.Component{
		domain.TextBlock(user.Email, domain.StyleHeader),
		domain.TextBlock(fmt.Sprintf("User ID: %s", user.UserID), domain.StyleMuted),
		domain.TextBlock(fmt.Sprintf("Joined %s | Total spend %s",
			a.formatter.Date(user.CreatedAt), a.formatter.Money(user.SpentUSD)), domain.StyleMuted),
		domain.ButtonBlock("open-dashboard", "Open admin dashboard",
			fmt.Sprintf("%s/search?email=%s", a.dashboardURL, url.QueryEscape(user.Email))),
		domain.Divider(),
	}

	if len(live) > 0 {
		components = append(components,
			domain.TextBlock(fmt.Sprintf("Live Accounts (%d)", len(live)), domain.StyleHeader),
			domain.ListBlock(a.items(live)),
		)
	}
	components = append(components, domain.Divider())

	if len(endedRecent) > 0 {
		components = append(components,
			domain.TextBlock(fmt.Sprintf("Recent Ended Accounts (%d)", len(endedRecent)), domain.StyleHeader),
			domain.ListBlock(a.items(endedRecent)),
		)
	}
	components = append(components,
		domain.Divider(),
		domain.ButtonBlock("open-profile", "View full profile",
			fmt.Sprintf("%s/users/%s", a.dashboardURL, user.UserID)),
	)

	return domain.NewCanvas(components...)
}

func (a *Assembler) items(accounts []domain.AccountRecord) []domain.Component {
	items := make([]domain.Component, 0, len(accounts))
	for _, acc := range accounts {
		unit := a.formatter.Format(acc)
		subtitle := unit.Detail
		if unit.BreachLine != "" {
			subtitle = subtitle + "\n" + unit.BreachLine
		}
		items = append(items, domain.ListItem(acc.AccountID, unit.Title, subtitle, unit.Link))
	}
	return items
}
