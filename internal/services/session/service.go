package session

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cadavrebot/cadavre/internal/assembler"
	"github.com/cadavrebot/cadavre/internal/common/clock"
	"github.com/cadavrebot/cadavre/internal/common/timer"
	"github.com/cadavrebot/cadavre/internal/common/uuid"
	"github.com/cadavrebot/cadavre/internal/models"
	"github.com/cadavrebot/cadavre/internal/pieces"
	quotaTracker "github.com/cadavrebot/cadavre/internal/quota"
	"github.com/cadavrebot/cadavre/internal/random"
	subscriptionRepo "github.com/cadavrebot/cadavre/internal/repositories/subscription"
	"github.com/cadavrebot/cadavre/internal/style"
)

// Reference delays from the original game.
const (
	defaultGracePeriod   = 4 * time.Second
	defaultCooldown      = 6 * time.Second
	defaultSweepInterval = time.Minute
)

const revealPrefix = "▶ "

// service implements the Service interface. All entry points take the
// mutex: transport events arrive serially, but timer callbacks fire on
// their own goroutines and re-enter the same state.
type service struct {
	config    *Config
	messenger Messenger
	scheduler timer.Scheduler
	clock     clock.Clock
	uuidGen   uuid.UUID
	rand      random.Rand
	quotas    quotaTracker.Tracker
	subs      subscriptionRepo.Repository

	mu    sync.Mutex
	phase models.Phase

	// generation invalidates one-shot timers: every destructive reset
	// bumps it, and a firing timer whose captured generation no
	// longer matches silently does nothing.
	generation uint64

	pendingPlayers map[string]bool
	voiced         map[string]bool

	// Per-round state, cleared by resetRound.
	players        []string
	piecesByPlayer map[string]pieces.Code
	fragments      map[pieces.Code]string
	blamed         map[string]bool
	roundID        string
	roundStartedAt time.Time

	lastRound *models.Round
	stopSweep func()
}

// New creates a new session service and schedules the periodic quota
// sweep
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Channel == "" {
		return nil, ErrEmptyChannel
	}
	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Rand == nil {
		return nil, ErrNilRand
	}
	if cfg.QuotaTracker == nil {
		return nil, ErrNilQuotaTracker
	}
	if cfg.SubscriptionRepo == nil {
		return nil, ErrNilSubscriptionRepo
	}

	if cfg.MaxPlayers == 0 {
		cfg.MaxPlayers = pieces.MaxRoundSize
	}
	if cfg.MaxPlayers < pieces.MinRoundSize || cfg.MaxPlayers > pieces.MaxRoundSize {
		return nil, ErrInvalidMaxPlayers
	}
	if cfg.GracePeriod == 0 {
		cfg.GracePeriod = defaultGracePeriod
	}
	if cfg.Cooldown == 0 {
		cfg.Cooldown = defaultCooldown
	}
	if cfg.SweepInterval == 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	s := &service{
		config:         cfg,
		messenger:      cfg.Messenger,
		scheduler:      cfg.Scheduler,
		clock:          cfg.Clock,
		uuidGen:        cfg.UUIDGenerator,
		rand:           cfg.Rand,
		quotas:         cfg.QuotaTracker,
		subs:           cfg.SubscriptionRepo,
		phase:          models.PhaseWaitingForRoster,
		pendingPlayers: make(map[string]bool),
		voiced:         make(map[string]bool),
	}
	s.resetRound()

	s.stopSweep = s.scheduler.Every(cfg.SweepInterval, s.sweepQuotas)

	return s, nil
}

// Close stops the periodic quota sweep
func (s *service) Close() {
	s.stopSweep()
}

// ChannelJoined restarts the session lifecycle after the bot
// (re)joined its channel
func (s *service) ChannelJoined(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetRound()
	s.pendingPlayers = make(map[string]bool)
	s.voiced = make(map[string]bool)
	s.generation++

	// Not in the transition table: a rejoin restarts the lifecycle
	// from scratch, whatever was going on.
	s.phase = models.PhaseWaitingForRoster
	return nil
}

// RosterReady seeds the pending players from the voiced members and
// opens the queue
func (s *service) RosterReady(ctx context.Context, input *RosterReadyInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input == nil {
		return ErrNilInput
	}
	if s.phase != models.PhaseWaitingForRoster {
		// Stray end-of-list, e.g. after an operator ran NAMES by hand.
		return nil
	}

	for _, nick := range input.Voiced {
		s.voiced[nick] = true
		if len(s.pendingPlayers) < s.config.MaxPlayers {
			s.pendingPlayers[nick] = true
		}
	}

	if len(s.pendingPlayers) > 0 {
		s.messenger.Say(s.config.Channel, fmt.Sprintf(
			"hey %s, vous êtes dans la prochaine partie",
			strings.Join(s.sortedPending(), ", ")))
	}

	return s.transition(models.PhaseQueue)
}

// PlayerDeparted handles a part, quit or kick seen on the channel. A
// departing player holding an unanswered piece forces the abort path.
func (s *service) PlayerDeparted(ctx context.Context, input *PlayerDepartedInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input == nil || input.Nick == "" {
		return ErrNilInput
	}

	delete(s.pendingPlayers, input.Nick)
	delete(s.voiced, input.Nick)

	if s.phase == models.PhaseGame && s.holdsUnansweredPiece(input.Nick) {
		s.messenger.Say(s.config.Channel, fmt.Sprintf("gros con de %s, on abandonne", input.Nick))
		return s.finishRound()
	}

	return nil
}

// Submit stores a fragment for the sender's piece. The first
// submission for a piece is announced; overwrites are silent.
func (s *service) Submit(ctx context.Context, input *SubmitInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input == nil || input.Nick == "" {
		return ErrNilInput
	}
	if !s.phase.InRound() {
		return nil
	}
	code, ok := s.piecesByPlayer[input.Nick]
	if !ok {
		return nil
	}

	_, already := s.fragments[code]
	s.fragments[code] = input.Text

	if !already {
		elapsed := s.clock.Since(s.roundStartedAt)
		s.messenger.Say(s.config.Channel, fmt.Sprintf(
			"[%d/%d] %s m'a donné son fragment en %.1f sec",
			len(s.fragments), len(s.piecesByPlayer), input.Nick, elapsed.Seconds()))
	}

	if s.phase == models.PhaseGame && len(s.fragments) == len(s.piecesByPlayer) {
		return s.enterGracePeriod()
	}
	return nil
}

// Join enters or refreshes queue membership. Outside a round the
// player is voiced immediately and the join may start the game;
// mid-round the membership counts for the next round only.
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input == nil || input.Nick == "" {
		return nil, ErrNilInput
	}

	var allowance *models.Quota
	if input.Allowance != "" {
		q, err := quotaTracker.Parse(input.Nick, input.Allowance, s.clock.Now())
		if err != nil {
			return &JoinOutput{Reply: fmt.Sprintf(
				"je comprends pas « %s » : donne un nombre de manches ou une durée (30s, 45m, 2h)",
				input.Allowance)}, nil
		}
		allowance = q
	}

	if !s.pendingPlayers[input.Nick] && len(s.pendingPlayers) >= s.config.MaxPlayers {
		return &JoinOutput{Reply: "nan, y'a déjà trop de joueurs"}, nil
	}
	s.pendingPlayers[input.Nick] = true

	var quotaNote string
	if allowance != nil {
		if allowance.ByRounds && allowance.Rounds == 0 {
			if err := s.quotas.Clear(ctx, input.Nick); err != nil {
				return nil, err
			}
			quotaNote = "quota supprimé"
		} else {
			if err := s.quotas.Set(ctx, allowance); err != nil {
				return nil, err
			}
			quotaNote = "quota : " + allowance.String()
		}
	}

	if s.phase.InRound() {
		reply := "ok, tu joueras la prochaine manche"
		if quotaNote != "" {
			reply += " (" + quotaNote + ")"
		}
		return &JoinOutput{Reply: reply}, nil
	}

	if !s.voiced[input.Nick] {
		s.messenger.Voice(true, []string{input.Nick})
		s.voiced[input.Nick] = true
	}

	if s.phase == models.PhaseQueue && len(s.pendingPlayers) == s.config.MaxPlayers {
		if err := s.startRound(); err != nil {
			return nil, err
		}
	}

	var reply string
	if quotaNote != "" {
		reply = "ok, " + quotaNote
	}
	return &JoinOutput{Reply: reply}, nil
}

// Part removes the caller from the queue. Mid-round only the roster
// intent is removed; the active round is untouched.
func (s *service) Part(ctx context.Context, input *PartInput) (*PartOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input == nil || input.Nick == "" {
		return nil, ErrNilInput
	}

	delete(s.pendingPlayers, input.Nick)

	if s.phase.InRound() {
		return &PartOutput{Reply: "ok, tu quitteras la file après cette manche"}, nil
	}

	if s.voiced[input.Nick] {
		s.messenger.Voice(false, []string{input.Nick})
		delete(s.voiced, input.Nick)
	}
	return &PartOutput{}, nil
}

// Start forces a round start once the minimum roster is met
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input == nil || input.Nick == "" {
		return nil, ErrNilInput
	}
	if s.phase != models.PhaseQueue {
		return &StartOutput{}, nil
	}
	if !s.pendingPlayers[input.Nick] {
		return &StartOutput{}, nil
	}
	if len(s.pendingPlayers) < pieces.MinRoundSize {
		return &StartOutput{Reply: "nan, il manque des joueurs"}, nil
	}

	if err := s.startRound(); err != nil {
		return nil, err
	}
	return &StartOutput{}, nil
}

// Blame broadcasts which players have not submitted yet, once per
// caller per round
func (s *service) Blame(ctx context.Context, input *BlameInput) (*BlameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input == nil || input.Nick == "" {
		return nil, ErrNilInput
	}
	if s.phase != models.PhaseGame {
		return &BlameOutput{}, nil
	}
	if s.blamed[input.Nick] {
		return &BlameOutput{}, nil
	}
	s.blamed[input.Nick] = true

	var missing []string
	for player, code := range s.piecesByPlayer {
		if _, ok := s.fragments[code]; !ok {
			missing = append(missing, player)
		}
	}
	if len(missing) == 0 {
		return &BlameOutput{Reply: "tout le monde a déjà répondu"}, nil
	}
	sort.Strings(missing)

	msg := fmt.Sprintf("on attend toujours %s", strings.Join(missing, ", "))
	for _, nick := range missing {
		// Blame invoked by a player that did not answer (such troll lol).
		if nick == input.Nick {
			msg += fmt.Sprintf(" (oui, surtout toi, con de %s)", input.Nick)
			break
		}
	}
	s.messenger.Say(s.config.Channel, msg)
	return &BlameOutput{}, nil
}

// Subscribe opts the caller into summon notifications
func (s *service) Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input == nil || input.Nick == "" {
		return nil, ErrNilInput
	}
	if err := s.subs.Add(ctx, &subscriptionRepo.AddInput{Nick: input.Nick}); err != nil {
		return nil, err
	}
	return &SubscribeOutput{Reply: "ok, je te préviendrai au prochain summon"}, nil
}

// Unsubscribe opts the caller out of summon notifications
func (s *service) Unsubscribe(ctx context.Context, input *UnsubscribeInput) (*UnsubscribeOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input == nil || input.Nick == "" {
		return nil, ErrNilInput
	}
	if err := s.subs.Remove(ctx, &subscriptionRepo.RemoveInput{Nick: input.Nick}); err != nil {
		return nil, err
	}
	return &UnsubscribeOutput{Reply: "ok, je ne te préviendrai plus"}, nil
}

// Summon broadcasts an invite to every subscriber except the caller
func (s *service) Summon(ctx context.Context, input *SummonInput) (*SummonOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input == nil || input.Nick == "" {
		return nil, ErrNilInput
	}

	members, err := s.subs.Members(ctx)
	if err != nil {
		return nil, err
	}

	var nicks []string
	for _, nick := range members.Nicks {
		if nick != input.Nick {
			nicks = append(nicks, nick)
		}
	}
	if len(nicks) == 0 {
		return &SummonOutput{Reply: "personne n'est abonné"}, nil
	}
	sort.Strings(nicks)

	s.messenger.Say(s.config.Channel, fmt.Sprintf(
		"%s sonne le rappel : %s", input.Nick, strings.Join(nicks, ", ")))
	return &SummonOutput{}, nil
}

// Reveal replays the most recently completed sentence with highlight
// markers
func (s *service) Reveal(ctx context.Context) (*RevealOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastRound == nil {
		return &RevealOutput{Reply: "aucune phrase à rejouer"}, nil
	}

	styles := make([]style.Style, len(s.lastRound.Fragments))
	for i := range styles {
		styles[i] = style.Bold()
	}
	s.messenger.Say(s.config.Channel,
		revealPrefix+assembler.AssembleStyled(s.lastRound.Fragments, styles))
	return &RevealOutput{}, nil
}

// Kick removes players from the queue and revokes their voice. A
// kicked player holding an unanswered piece forces the abort path.
func (s *service) Kick(ctx context.Context, input *KickInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input == nil || len(input.Nicks) == 0 {
		return ErrNilInput
	}

	var revoke []string
	deserter := ""
	for _, nick := range input.Nicks {
		delete(s.pendingPlayers, nick)
		if s.voiced[nick] {
			revoke = append(revoke, nick)
			delete(s.voiced, nick)
		}
		if deserter == "" && s.phase == models.PhaseGame && s.holdsUnansweredPiece(nick) {
			deserter = nick
		}
	}

	if len(revoke) > 0 {
		s.messenger.Voice(false, revoke)
	}
	if deserter != "" {
		s.messenger.Say(s.config.Channel, fmt.Sprintf("gros con de %s, on abandonne", deserter))
		return s.finishRound()
	}
	return nil
}

// Abort force-ends an active round with an abandonment announcement
func (s *service) Abort(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseGame {
		return nil
	}
	s.messenger.Say(s.config.Channel, "partie avortée")
	return s.finishRound()
}

// Reset force-returns the session to the queue, discarding in-round
// data but preserving pending players
func (s *service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetRound()
	s.generation++
	if err := s.transition(models.PhaseQueue); err != nil {
		return err
	}
	s.messenger.Say(s.config.Channel, "remise à zéro, la file est ouverte")
	return nil
}

// Dump sends an introspection dump of the session state to the
// caller, privately
func (s *service) Dump(ctx context.Context, input *DumpInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input == nil || input.Nick == "" {
		return ErrNilInput
	}

	lines := []string{
		fmt.Sprintf("phase : %s (génération %d)", s.phase, s.generation),
		fmt.Sprintf("en attente (%d) : %s", len(s.pendingPlayers), joinOrDash(s.sortedPending())),
		fmt.Sprintf("voix : %s", joinOrDash(sortedKeys(s.voiced))),
	}

	if s.phase.InRound() {
		assigned := make([]string, 0, len(s.players))
		for _, player := range s.players {
			code := s.piecesByPlayer[player]
			mark := "?"
			if _, ok := s.fragments[code]; ok {
				mark = "ok"
			}
			assigned = append(assigned, fmt.Sprintf("%s=%s[%s]", player, code, mark))
		}
		lines = append(lines, fmt.Sprintf("manche %s (démarrée %s) : %s",
			s.roundID, s.roundStartedAt.Format("15:04:05"), strings.Join(assigned, " ")))
	}

	if s.lastRound != nil {
		lines = append(lines, fmt.Sprintf("dernière phrase : %s", s.lastRound.Sentence))
	}

	if members, err := s.subs.Members(ctx); err == nil {
		sort.Strings(members.Nicks)
		lines = append(lines, fmt.Sprintf("abonnés : %s", joinOrDash(members.Nicks)))
	}

	for _, line := range lines {
		s.messenger.Say(input.Nick, line)
	}
	return nil
}

// sweepQuotas evicts every pending player whose quota has expired. It
// never runs mid-round; an expired participant finishes the round
// they are in.
func (s *service) sweepQuotas() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase.InRound() {
		return
	}

	ctx := context.Background()
	expired, err := s.quotas.Expired(ctx, s.clock.Now())
	if err != nil {
		log.Printf("quota sweep: %v", err)
		return
	}
	sort.Strings(expired)

	for _, nick := range expired {
		if err := s.quotas.Clear(ctx, nick); err != nil {
			log.Printf("quota sweep: clear %s: %v", nick, err)
			continue
		}
		if !s.pendingPlayers[nick] {
			continue
		}
		delete(s.pendingPlayers, nick)
		if s.voiced[nick] {
			s.messenger.Voice(false, []string{nick})
			delete(s.voiced, nick)
		}
		s.messenger.Say(s.config.Channel, fmt.Sprintf(
			"temps de jeu écoulé pour %s, à la prochaine", nick))
	}
}

// ensurePhase asserts the session is in one of the required phases
func (s *service) ensurePhase(op string, allowed ...models.Phase) error {
	for _, phase := range allowed {
		if s.phase == phase {
			return nil
		}
	}
	return fmt.Errorf("%s: %w (phase %s, expected one of %v)", op, ErrInvalidPhase, s.phase, allowed)
}

// transition moves the session along the phase table
func (s *service) transition(to models.Phase) error {
	if !s.phase.CanTransitionTo(to) {
		return fmt.Errorf("transition %s -> %s: %w", s.phase, to, ErrInvalidPhase)
	}
	s.phase = to
	return nil
}

// resetRound clears per-round state. Pending players, voice tracking,
// quotas and the last completed round all survive.
func (s *service) resetRound() {
	s.players = nil
	s.piecesByPlayer = make(map[string]pieces.Code)
	s.fragments = make(map[pieces.Code]string)
	s.blamed = make(map[string]bool)
	s.roundID = ""
	s.roundStartedAt = time.Time{}
}

func (s *service) holdsUnansweredPiece(nick string) bool {
	code, ok := s.piecesByPlayer[nick]
	if !ok {
		return false
	}
	_, answered := s.fragments[code]
	return !answered
}

func (s *service) sortedPending() []string {
	return sortedKeys(s.pendingPlayers)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func joinOrDash(nicks []string) string {
	if len(nicks) == 0 {
		return "-"
	}
	return strings.Join(nicks, ", ")
}
