/**
 * @description
 * This file renders one account record into the presentation unit shown on
 * the canvas: status glyph, title, detail line, optional breach annotation and
 * a deep link into the admin dashboard.
 *
 * Key features:
 * - The glyph mapping is a policy table passed in at construction, so the
 *   state-to-marker policy can change without touching classification.
 * - Formatting is pure and total: missing closure metadata means no breach
 *   line, a zero creation time renders as a placeholder.
 *
 * @dependencies
 * - golang.org/x/text: locale-aware thousands grouping for monetary values.
 * - github.com/shopspring/decimal: exact monetary amounts from the admin API.
 */
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kosarlukascz/intercomproxy/internal/domain"
)

// Status markers rendered on the canvas.
const (
	glyphLive  = "🟢"
	glyphEnded = "🔴"
)

// missingDate is rendered for accounts whose creation time is absent.
const missingDate = "-"

// GlyphPolicy maps account states to status markers. States without an entry
// fall back to Default.
type GlyphPolicy struct {
	Glyphs  map[domain.AccountState]string
	Default string
}

// DefaultGlyphPolicy is the canonical two-state policy: live accounts are
// green, everything else is red.
func DefaultGlyphPolicy() GlyphPolicy {
	return GlyphPolicy{
		Glyphs:  map[domain.AccountState]string{domain.StateLive: glyphLive},
		Default: glyphEnded,
	}
}

// PresentationUnit is the rendered form of one account.
type PresentationUnit struct {
	Glyph      string
	Title      string
	Detail     string
	BreachLine string // empty when the account was not closed for a violation
	Link       string
}

// Formatter renders account records into presentation units.
type Formatter struct {
	policy       GlyphPolicy
	dashboardURL string
	printer      *message.Printer
}

// NewFormatter creates a formatter with the given glyph policy, producing deep
// links against the given admin dashboard base URL.
func NewFormatter(policy GlyphPolicy, dashboardURL string) *Formatter {
	return &Formatter{
		policy:       policy,
		dashboardURL: strings.TrimRight(dashboardURL, "/"),
		printer:      message.NewPrinter(language.English),
	}
}

// Format renders one account record. It never fails: optional fields degrade
// to omitted output.
func (f *Formatter) Format(a domain.AccountRecord) PresentationUnit {
	unit := PresentationUnit{
		Glyph: f.glyph(a.State),
		Link:  fmt.Sprintf("%s/accounts/%s", f.dashboardURL, a.AccountID),
	}
	unit.Title = fmt.Sprintf("%s %s %s", unit.Glyph, a.Platform, f.Money(a.Product.PlanSizeUSD))
	unit.Detail = fmt.Sprintf("%s | opened %s | %s", a.State, f.Date(a.CreatedAt), a.Product.ProductKey)

	if breach := a.Breach(); breach != nil {
		violation := strings.ToLower(strings.ReplaceAll(breach.ViolationType, "_", " "))
		unit.BreachLine = fmt.Sprintf("breach: %s (equity %s, limit %s)",
			violation, f.Money(breach.EquityAtFailure), f.Money(breach.LimitValue))
	}
	return unit
}

func (f *Formatter) glyph(state domain.AccountState) string {
	if g, ok := f.policy.Glyphs[state]; ok {
		return g
	}
	return f.policy.Default
}

// Money renders a USD amount with thousands grouping and two decimals.
func (f *Formatter) Money(amount decimal.Decimal) string {
	return f.printer.Sprintf("$%.2f", amount.InexactFloat64())
}

// Date renders a timestamp as zero-padded day/month/year, or the placeholder
// when the timestamp is absent.
func (f *Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return missingDate
	}
	return t.Format("02/01/2006")
}
