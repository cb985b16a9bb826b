package session

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/cadavrebot/cadavre/internal/assembler"
	"github.com/cadavrebot/cadavre/internal/models"
	"github.com/cadavrebot/cadavre/internal/pieces"
	"github.com/cadavrebot/cadavre/internal/style"
)

// startRound deals the pieces, draws the agreements and prompts every
// player privately. Caller holds the mutex.
func (s *service) startRound() error {
	if err := s.ensurePhase("start round", models.PhaseQueue); err != nil {
		return err
	}

	codes, ok := pieces.ForSize(len(s.pendingPlayers))
	if !ok {
		return fmt.Errorf("%d players: %w", len(s.pendingPlayers), ErrUnsupportedRoundSize)
	}

	// Flip order matters for reproducibility under a seeded source:
	// genders first, then numbers.
	subject := pieces.Agreement{Masculine: s.rand.Bool()}
	object := pieces.Agreement{Masculine: s.rand.Bool()}
	subject.Singular = s.rand.Bool()
	object.Singular = s.rand.Bool()

	players := s.sortedPending()
	s.rand.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})

	s.players = players
	s.piecesByPlayer = make(map[string]pieces.Code, len(players))
	s.fragments = make(map[pieces.Code]string)
	s.blamed = make(map[string]bool)

	examples := make([]string, len(codes))
	for i, code := range codes {
		s.piecesByPlayer[players[i]] = code
		examples[i] = s.exampleFor(code, subject, object)
	}

	for i, player := range players {
		s.messenger.Say(player, prompt(codes[i], subject, object, examples, i))
	}

	s.roundID = s.uuidGen.NewUUID()
	s.roundStartedAt = s.clock.Now()

	s.messenger.Say(s.config.Channel, fmt.Sprintf(
		"%s : c'est parti, lisez vos PV pour savoir quoi m'envoyer",
		strings.Join(players, ", ")))

	return s.transition(models.PhaseGame)
}

// exampleFor picks the demonstration fragment for a piece. Agreeing
// pieces follow the drawn agreement; circumstantials draw freely.
func (s *service) exampleFor(code pieces.Code, subject, object pieces.Agreement) string {
	if code.IsCircumstantial() {
		return code.ExampleAt(s.rand.Intn(code.ExampleCount()))
	}
	if code.IsSubjectSide() {
		return code.Example(subject)
	}
	return code.Example(object)
}

// prompt composes the private instruction for one player, with the
// player's own part of the example sentence in bold
func prompt(code pieces.Code, subject, object pieces.Agreement, examples []string, idx int) string {
	styles := make([]style.Style, len(examples))
	styles[idx] = style.Bold()
	sentence := assembler.AssembleStyled(examples, styles)

	agreement := object
	if code.IsSubjectSide() {
		agreement = subject
	}

	switch {
	case code.IsCircumstantial():
		return fmt.Sprintf("donne-moi un %s, par exemple “%s”", code.Label(), sentence)
	case code == pieces.Verb:
		return fmt.Sprintf("donne-moi un %s conjugué au %s, à la troisième personne, par exemple “%s”",
			code.Label(), agreement, sentence)
	default:
		return fmt.Sprintf("donne-moi un %s au %s, par exemple “%s”",
			code.Label(), agreement, sentence)
	}
}

// enterGracePeriod freezes the round and schedules the reveal. Late
// overwrites still land during the grace period. Caller holds the
// mutex.
func (s *service) enterGracePeriod() error {
	if err := s.ensurePhase("enter grace period", models.PhaseGame); err != nil {
		return err
	}
	if err := s.transition(models.PhaseGracePeriod); err != nil {
		return err
	}

	gen := s.generation
	s.scheduler.Once(s.config.GracePeriod, func() {
		if err := s.revealRound(gen); err != nil {
			log.Printf("grace period timer: %v", err)
		}
	})
	return nil
}

// revealRound assembles and announces the sentence, consumes quotas,
// reconciles voice and moves to the cooldown
func (s *service) revealRound(gen uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		// The round this timer belonged to was torn down.
		return nil
	}
	if err := s.ensurePhase("reveal round", models.PhaseGracePeriod); err != nil {
		return err
	}

	codes, ok := pieces.ForSize(len(s.players))
	if !ok {
		return fmt.Errorf("%d players: %w", len(s.players), ErrUnsupportedRoundSize)
	}
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = s.fragments[code]
	}
	sentence := assembler.Assemble(parts)

	s.messenger.Say(s.config.Channel, fmt.Sprintf("merci à %s :", strings.Join(s.players, ", ")))
	s.messenger.Say(s.config.Channel, revealPrefix+sentence)

	s.lastRound = &models.Round{
		ID:          s.roundID,
		Players:     append([]string(nil), s.players...),
		Fragments:   parts,
		Sentence:    sentence,
		StartedAt:   s.roundStartedAt,
		CompletedAt: s.clock.Now(),
	}

	// A storage failure must not wedge the session between phases.
	if err := s.quotas.ConsumeRound(context.Background(), s.lastRound.Players); err != nil {
		log.Printf("consume quotas: %v", err)
	}

	s.reconcileVoice()
	return s.finishRound()
}

// finishRound tears the round down and schedules the queue reopening.
// Both the normal reveal and the abort paths land here. Caller holds
// the mutex.
func (s *service) finishRound() error {
	if err := s.ensurePhase("finish round", models.PhaseGame, models.PhaseGracePeriod); err != nil {
		return err
	}

	s.resetRound()
	if err := s.transition(models.PhasePostGameCooldown); err != nil {
		return err
	}

	// Invalidate the grace period timer of an aborted round.
	s.generation++
	gen := s.generation
	s.scheduler.Once(s.config.Cooldown, func() {
		if err := s.reopenQueue(gen); err != nil {
			log.Printf("cooldown timer: %v", err)
		}
	})
	return nil
}

// reopenQueue ends the cooldown and invites the channel to replay
func (s *service) reopenQueue(gen uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return nil
	}
	if err := s.ensurePhase("reopen queue", models.PhasePostGameCooldown); err != nil {
		return err
	}
	if err := s.transition(models.PhaseQueue); err != nil {
		return err
	}
	s.messenger.Say(s.config.Channel, "on rejoue ?")
	return nil
}

// reconcileVoice aligns channel voice with queue membership after a
// round: joiners during the round gain voice, leavers lose it
func (s *service) reconcileVoice() {
	var grant, revoke []string
	for nick := range s.pendingPlayers {
		if !s.voiced[nick] {
			grant = append(grant, nick)
		}
	}
	for nick := range s.voiced {
		if !s.pendingPlayers[nick] {
			revoke = append(revoke, nick)
		}
	}
	sort.Strings(grant)
	sort.Strings(revoke)

	for _, nick := range grant {
		s.voiced[nick] = true
	}
	for _, nick := range revoke {
		delete(s.voiced, nick)
	}
	if len(grant) > 0 {
		s.messenger.Voice(true, grant)
	}
	if len(revoke) > 0 {
		s.messenger.Voice(false, revoke)
	}
}
