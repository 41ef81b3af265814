package pipeline

import (
	"context"

	"github.com/NarantsogtB/messenger-bot/internal/assets"
	"github.com/NarantsogtB/messenger-bot/internal/season"
	"github.com/NarantsogtB/messenger-bot/internal/types"
)

// handlePaidEntry walks the entitlement state machine. The stored
// LastResult is the universal precondition: without it the user is
// asked for a photo before any session or payment state is considered.
func (p *Pipeline) handlePaidEntry(ctx context.Context, userID string) error {
	last, ok, err := p.lastResult.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		p.metrics.Incr(ctx, "paid_no_result")
		p.sender.SendText(ctx, userID, msgSendPhotoFirst)
		return nil
	}

	sess, err := p.sessions.Get(ctx, userID)
	if err != nil {
		return err
	}
	if sess.Gender == "" {
		p.metrics.Incr(ctx, "gender_prompted")
		p.sender.SendQuickReplies(ctx, userID, msgPickGender, []string{genderOptionFemale, genderOptionMale})
		return nil
	}

	paid, err := p.entitlement.IsPaid(ctx, userID)
	if err != nil {
		return err
	}
	if !paid {
		p.metrics.Incr(ctx, "upsell_shown")
		p.sender.SendText(ctx, userID, msgUpsell)
		p.sender.SendQuickReplies(ctx, userID, msgPaymentCTA, []string{paymentOption})
		return nil
	}

	return p.sendPaidContent(ctx, userID, last, sess.Gender)
}

// sendPaidContent delivers the paid tier: intro, both palette rings,
// three advisory cards picked uniformly at random from the per-season,
// per-gender variants, then unlocks chat. Variant choice is not seeded
// and not reproducible, deliberately.
func (p *Pipeline) sendPaidContent(ctx context.Context, userID string, s season.Season, gender types.Gender) error {
	p.sender.SendText(ctx, userID, paidIntro(string(s)))

	p.sender.SendImage(ctx, userID, p.resolver.RingURL(s, assets.PolarityBest))
	p.sender.SendImage(ctx, userID, p.resolver.RingURL(s, assets.PolarityAvoid))

	for _, role := range []assets.CardRole{assets.RoleAccessory, assets.RoleHair, assets.RoleMakeup} {
		variant := p.pickVariant(assets.CardVariants)
		p.sender.SendImage(ctx, userID, p.resolver.CardURL(s, gender, role, variant))
	}

	if err := p.chatState.Enable(ctx, userID); err != nil {
		return err
	}
	p.sender.SendText(ctx, userID, msgChatUnlocked)
	p.metrics.Incr(ctx, "paid_delivered")
	return nil
}
