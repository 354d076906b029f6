package dialogue

import (
	"context"
	"fmt"
)

// handleGreeting captures the customer's name.  Names shorter than
// two letters are treated as extraction failures and re-prompted.
func (e *Engine) handleGreeting(_ context.Context, sc *Context, input string) (string, State) {
	name := e.interp.ExtractName(input)
	if len(name) < 2 {
		return "Please tell me your name:", StateGreeting
	}
	sc.CustomerName = name
	return fmt.Sprintf("Nice to meet you, %s! Could you please provide your email address?", name), StateGetEmail
}

// handleGetEmail captures and validates the customer's email, then
// opens the preference interview with the genre question so the next
// customer turn is already an answer.
func (e *Engine) handleGetEmail(_ context.Context, sc *Context, input string) (string, State) {
	email := e.interp.ExtractEmail(input)
	if email == "" || !e.interp.ValidateEmail(email) {
		return "Please provide a valid email address (e.g., username@domain.com):", StateGetEmail
	}
	sc.CustomerEmail = email
	sc.PrefPhase = PrefGenres
	return fmt.Sprintf(
		"Thank you, %s! Now, let's learn about your movie preferences.\n\n"+
			"What kinds of movies do you enjoy? (You can list multiple genres, "+
			"separated by commas, e.g., 'action, comedy, drama')",
		sc.CustomerName,
	), StatePreferences
}
