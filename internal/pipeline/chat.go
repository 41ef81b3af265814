package pipeline

import (
	"context"
)

// handleChat runs one conversational exchange. The turn counter only
// moves on a successful exchange, so a Gemini outage or a quota-capped
// attempt never burns quota.
func (p *Pipeline) handleChat(ctx context.Context, userID, text string) error {
	state, err := p.chatState.Get(ctx, userID)
	if err != nil {
		return err
	}
	paid, err := p.entitlement.IsPaid(ctx, userID)
	if err != nil {
		return err
	}
	if !state.Enabled && !paid {
		p.metrics.Incr(ctx, "chat_locked")
		p.sender.SendText(ctx, userID, msgChatLocked)
		return nil
	}

	if state.TurnsUsed >= p.opts.ChatMaxTurns {
		p.metrics.Incr(ctx, "chat_limit")
		p.sender.SendText(ctx, userID, msgChatLimit)
		return nil
	}

	last, _, err := p.lastResult.Get(ctx, userID)
	if err != nil {
		return err
	}

	reply, err := p.chat.Respond(ctx, text, last)
	if err != nil {
		// Fixed localized fallback; the failure never reaches the user
		// as an error and the turn is not consumed.
		p.log.Warn("chat responder failed", "error", err)
		p.metrics.Incr(ctx, "chat_error")
		p.sender.SendText(ctx, userID, msgChatFallback)
		return nil
	}

	p.sender.SendText(ctx, userID, reply)
	if err := p.chatState.IncrementTurn(ctx, userID); err != nil {
		return err
	}
	p.metrics.Incr(ctx, "chat_turns")
	return nil
}
