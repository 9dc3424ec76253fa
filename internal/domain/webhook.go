/**
 * @description
 * This file models the inbound trigger payload sent by the support console to
 * the integration's webhooks. The console gives no schema guarantee, so every
 * level that the identity lookup consults is an optional pointer; unknown
 * fields are simply ignored by the JSON decoder.
 */
package domain

// Party is any console object that may carry an email address (customer,
// user, or contact).
type Party struct {
	Email string `json:"email"`
}

// TriggerContext is the nested `context` object of the trigger payload.
type TriggerContext struct {
	Customer *Party `json:"customer,omitempty"`
	User     *Party `json:"user,omitempty"`
	Contact  *Party `json:"contact,omitempty"`
}

// InputValues carries values submitted through canvas form inputs.
type InputValues struct {
	Email string `json:"email"`
}

// InboundContext is the trigger payload of the initialize webhook. Any subset
// of its fields may be present.
type InboundContext struct {
	Context     *TriggerContext `json:"context,omitempty"`
	Customer    *Party          `json:"customer,omitempty"`
	User        *Party          `json:"user,omitempty"`
	InputValues *InputValues    `json:"input_values,omitempty"`
}
