/**
 * @description
 * This file resolves the customer identity (an email address) from the
 * loosely-structured trigger payload. The console populates different nested
 * objects depending on where the canvas was opened, so the lookup walks a
 * declared candidate list in priority order and takes the first non-empty
 * value.
 */
package app

import "github.com/kosarlukascz/intercomproxy/internal/domain"

// UnknownIdentity is returned when no candidate path yields an email.
const UnknownIdentity = "unknown@example.com"

// identityPaths is the ordered list of places an email may appear in the
// trigger payload. Order matters: the conversation context wins over the
// top-level objects, which win over form input.
var identityPaths = []func(domain.InboundContext) string{
	func(c domain.InboundContext) string {
		if c.Context != nil && c.Context.Customer != nil {
			return c.Context.Customer.Email
		}
		return ""
	},
	func(c domain.InboundContext) string {
		if c.Context != nil && c.Context.User != nil {
			return c.Context.User.Email
		}
		return ""
	},
	func(c domain.InboundContext) string {
		if c.Context != nil && c.Context.Contact != nil {
			return c.Context.Contact.Email
		}
		return ""
	},
	func(c domain.InboundContext) string {
		if c.Customer != nil {
			return c.Customer.Email
		}
		return ""
	},
	func(c domain.InboundContext) string {
		if c.User != nil {
			return c.User.Email
		}
		return ""
	},
	func(c domain.InboundContext) string {
		if c.InputValues != nil {
			return c.InputValues.Email
		}
		return ""
	},
}

// ResolveIdentity extracts the customer email from the trigger payload. It is
// total: any non-empty string at a matched path is accepted without syntax
// validation, and the sentinel is returned when nothing matches.
func ResolveIdentity(c domain.InboundContext) string {
	for _, path := range identityPaths {
		if email := path(c); email != "" {
			return email
		}
	}
	return UnknownIdentity
}
