package tournament

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/showdown/internal/common/clock"
	"github.com/KirkDiggler/showdown/internal/common/timer"
	"github.com/KirkDiggler/showdown/internal/common/uuid"
	"github.com/KirkDiggler/showdown/internal/dice"
	"github.com/KirkDiggler/showdown/internal/models"
	"github.com/KirkDiggler/showdown/internal/repositories/scores"
)

const (
	defaultBestOf       = 3
	defaultDiceSides    = 6
	defaultReadyTimeout = 60 * time.Second
	defaultRollTimeout  = 60 * time.Second
)

var defaultAwards = Awards{
	First:  100,
	Second: 50,
	Third:  25,
}

// service implements the Service interface. It owns the arena registry:
// every arena maps to at most one session, and all mutations of a
// session happen under that session's lock, whether they arrive from an
// external event or a timer fire.
type service struct {
	scoreRepo scores.Repository
	roller    dice.Roller
	scheduler timer.Scheduler
	clock     clock.Clock
	uuid      uuid.UUID
	notifier  Notifier
	logger    zerolog.Logger

	bestOf             int
	winTarget          int
	diceSides          int
	readyTimeout       time.Duration
	rollTimeout        time.Duration
	requireFullBracket bool
	awards             Awards

	mu       sync.RWMutex
	sessions map[string]*session
}

// New creates a new tournament service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ScoreRepo == nil {
		return nil, ErrNilScoreRepo
	}

	if cfg.Roller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	bestOf := cfg.BestOf
	if bestOf <= 0 {
		bestOf = defaultBestOf
	}

	diceSides := cfg.DiceSides
	if diceSides <= 0 {
		diceSides = defaultDiceSides
	}

	readyTimeout := cfg.ReadyTimeout
	if readyTimeout <= 0 {
		readyTimeout = defaultReadyTimeout
	}

	rollTimeout := cfg.RollTimeout
	if rollTimeout <= 0 {
		rollTimeout = defaultRollTimeout
	}

	awards := defaultAwards
	if cfg.Awards != nil {
		awards = *cfg.Awards
	}

	return &service{
		scoreRepo:          cfg.ScoreRepo,
		roller:             cfg.Roller,
		scheduler:          cfg.Scheduler,
		clock:              cfg.Clock,
		uuid:               cfg.UUID,
		notifier:           cfg.Notifier,
		logger:             cfg.Logger,
		bestOf:             bestOf,
		winTarget:          bestOf/2 + 1,
		diceSides:          diceSides,
		readyTimeout:       readyTimeout,
		rollTimeout:        rollTimeout,
		requireFullBracket: cfg.RequireFullBracket,
		awards:             awards,
		sessions:           make(map[string]*session),
	}, nil
}

// BeginSignup opens a signup roster for an arena
func (s *service) BeginSignup(ctx context.Context, input *BeginSignupInput) (*BeginSignupOutput, error) {
	s.mu.Lock()
	if existing, ok := s.sessions[input.ArenaID]; ok && existing.stage.IsActive() {
		s.mu.Unlock()
		return nil, ErrAlreadyRunning
	}
	s.sessions[input.ArenaID] = newSession(input.ArenaID)
	s.mu.Unlock()

	s.logger.Info().
		Str("arena", input.ArenaID).
		Str("requester", input.RequesterID).
		Msg("signup opened")

	return &BeginSignupOutput{}, nil
}

// JoinSignup adds a participant to an open roster
func (s *service) JoinSignup(ctx context.Context, input *JoinSignupInput) (*JoinSignupOutput, error) {
	sess, ok := s.lookup(input.ArenaID)
	if !ok {
		return nil, ErrNoActiveTournament
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	joined := sess.addPlayer(input.PlayerID)
	roster := sess.rosterCopy()

	if joined {
		s.notifier.Publish(ctx, sess.arenaID, RosterUpdated{Players: roster})
	}

	return &JoinSignupOutput{
		Joined: joined,
		Roster: roster,
	}, nil
}

// StartTournament draws the opening bracket and prompts the first match
func (s *service) StartTournament(ctx context.Context, input *StartTournamentInput) (*StartTournamentOutput, error) {
	sess, ok := s.lookup(input.ArenaID)
	if !ok {
		return nil, ErrNoActiveTournament
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.stage == models.StageRound {
		return nil, ErrAlreadyRunning
	}

	if sess.stage != models.StageSignup {
		return nil, ErrNoActiveTournament
	}

	if len(sess.roster) < 2 {
		return nil, ErrInsufficientPlayers
	}

	if s.requireFullBracket && !isPowerOfTwo(len(sess.roster)) {
		return nil, ErrInvalidRosterSize
	}

	sess.stage = models.StageRound
	if err := s.startRound(ctx, sess, 1, sess.roster); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("arena", sess.arenaID).
		Int("players", len(sess.roster)).
		Msg("tournament started")

	return &StartTournamentOutput{
		Round:      sess.round,
		FirstMatch: sess.round.Pairs[0],
	}, nil
}

// ConfirmReady records a readiness confirmation for the current match
func (s *service) ConfirmReady(ctx context.Context, input *ConfirmReadyInput) (*ConfirmReadyOutput, error) {
	sess, ok := s.lookup(input.ArenaID)
	if !ok {
		return nil, ErrNoActiveTournament
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	m := sess.current
	if sess.stage != models.StageRound || m == nil || m.pairIndex != input.MatchIndex {
		return nil, ErrNoActiveMatch
	}

	if !m.isPlayer(input.PlayerID) {
		return nil, ErrNotInMatch
	}

	// duplicate confirmations and late presses are UI noise, not errors
	if m.status != matchAwaitingReady || m.ready[input.PlayerID] {
		return &ConfirmReadyOutput{Accepted: false}, nil
	}

	m.ready[input.PlayerID] = true

	if m.readyCount() == 1 {
		m.firstReadyAt = s.clock.Now()

		// re-arm the readiness window; cancel-before-replace keeps one
		// live timer per purpose
		if m.readyTimer != nil {
			m.readyTimer.Cancel()
		}
		m.readyTimer = s.scheduler.Schedule(s.readyTimeout, func() {
			s.handleReadyTimeout(sess, m)
		})

		s.notifier.Publish(ctx, sess.arenaID, ReadyAcknowledged{
			PairIndex:        m.pairIndex,
			Player:           input.PlayerID,
			AwaitingOpponent: true,
		})

		return &ConfirmReadyOutput{Accepted: true}, nil
	}

	// both confirmed: the readiness deadline no longer applies
	if m.readyTimer != nil {
		m.readyTimer.Cancel()
		m.readyTimer = nil
	}

	m.status = matchInProgress
	if s.roller.Roll(2) == 1 {
		m.firstRoller = m.pair.PlayerA
	} else {
		m.firstRoller = m.pair.PlayerB
	}
	m.secondRoller = m.pair.Opponent(m.firstRoller)
	m.currentRoller = m.firstRoller

	s.notifier.Publish(ctx, sess.arenaID, ReadyAcknowledged{
		PairIndex: m.pairIndex,
		Player:    input.PlayerID,
	})
	s.notifier.Publish(ctx, sess.arenaID, DuelStarted{
		PairIndex:   m.pairIndex,
		FirstRoller: m.firstRoller,
	})

	s.armRollTimer(sess, m)

	s.logger.Debug().
		Str("arena", sess.arenaID).
		Int("pair", m.pairIndex).
		Str("first_roller", m.firstRoller).
		Msg("duel started")

	return &ConfirmReadyOutput{
		Accepted:    true,
		DuelStarted: true,
		FirstRoller: m.firstRoller,
	}, nil
}

// RollDice performs a duel roll in the arena's current match
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	sess, ok := s.lookup(input.ArenaID)
	if !ok {
		return nil, ErrNoActiveTournament
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	m := sess.current
	if sess.stage != models.StageRound || m == nil || m.status != matchInProgress {
		return nil, ErrNoActiveMatch
	}

	if !m.isPlayer(input.PlayerID) {
		return nil, ErrNotInMatch
	}

	if input.PlayerID != m.currentRoller {
		return nil, ErrNotYourTurn
	}

	// cancel the pending deadline before emitting any new state
	if m.rollTimer != nil {
		m.rollTimer.Cancel()
		m.rollTimer = nil
	}

	value := s.roller.Roll(s.diceSides)
	s.notifier.Publish(ctx, sess.arenaID, RollResult{
		Player: input.PlayerID,
		Value:  value,
	})

	// first roll of the sub-round: store it and hand the turn over
	if m.firstRoll == 0 {
		m.firstRoll = value
		m.currentRoller = m.secondRoller
		s.armRollTimer(sess, m)

		s.notifier.Publish(ctx, sess.arenaID, TurnPrompt{NextRoller: m.currentRoller})

		return &RollDiceOutput{
			Value:      value,
			NextRoller: m.currentRoller,
		}, nil
	}

	firstValue := m.firstRoll
	m.firstRoll = 0

	// tie: clear both rolls, same first roller goes again
	if value == firstValue {
		m.currentRoller = m.firstRoller
		s.armRollTimer(sess, m)

		s.notifier.Publish(ctx, sess.arenaID, TurnPrompt{
			NextRoller: m.currentRoller,
			Reroll:     true,
		})

		return &RollDiceOutput{
			Value:      value,
			Tie:        true,
			NextRoller: m.currentRoller,
		}, nil
	}

	subWinner := m.firstRoller
	if value > firstValue {
		subWinner = m.secondRoller
	}
	m.wins[subWinner]++

	if m.wins[subWinner] >= s.winTarget {
		m.status = matchComplete
		m.winner = subWinner

		s.notifier.Publish(ctx, sess.arenaID, MatchDecided{
			PairIndex: m.pairIndex,
			Winner:    subWinner,
		})

		s.concludeMatch(ctx, sess)

		return &RollDiceOutput{
			Value:          value,
			SubRoundWinner: subWinner,
			MatchWinner:    subWinner,
		}, nil
	}

	// next sub-round; first/second roller roles persist
	m.currentRoller = m.firstRoller
	s.armRollTimer(sess, m)

	s.notifier.Publish(ctx, sess.arenaID, TurnPrompt{NextRoller: m.currentRoller})

	return &RollDiceOutput{
		Value:          value,
		SubRoundWinner: subWinner,
		NextRoller:     m.currentRoller,
	}, nil
}

// AbortTournament ends a tournament early without a champion
func (s *service) AbortTournament(ctx context.Context, input *AbortTournamentInput) (*AbortTournamentOutput, error) {
	sess, ok := s.lookup(input.ArenaID)
	if !ok {
		return nil, ErrNoActiveTournament
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.stage.IsActive() {
		return nil, ErrNoActiveTournament
	}

	reason := input.Reason
	if reason == "" {
		reason = "aborted by " + input.RequesterID
	}
	s.abortLocked(ctx, sess, reason)

	return &AbortTournamentOutput{}, nil
}

// GetRoster reads an arena's stage and signup roster
func (s *service) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	sess, ok := s.lookup(input.ArenaID)
	if !ok {
		return nil, ErrNoActiveTournament
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &GetRosterOutput{
		Stage:  sess.stage,
		Roster: sess.rosterCopy(),
	}, nil
}

// RedeemPoints cashes out some or all of a player's balance
func (s *service) RedeemPoints(ctx context.Context, input *RedeemPointsInput) (*RedeemPointsOutput, error) {
	if input.All {
		out, err := s.scoreRepo.RedeemAll(ctx, &scores.RedeemAllInput{
			PlayerID: input.PlayerID,
		})
		if err != nil {
			return nil, err
		}

		s.notifier.Publish(ctx, "", RedemptionResult{
			Player:   input.PlayerID,
			Redeemed: out.Redeemed,
		})

		return &RedeemPointsOutput{Redeemed: out.Redeemed}, nil
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	out, err := s.scoreRepo.RedeemAmount(ctx, &scores.RedeemAmountInput{
		PlayerID: input.PlayerID,
		Amount:   input.Amount,
	})
	if err != nil {
		return nil, err
	}

	if out.Redeemed == 0 {
		return nil, ErrInsufficientFunds
	}

	s.notifier.Publish(ctx, "", RedemptionResult{
		Player:   input.PlayerID,
		Redeemed: out.Redeemed,
	})

	return &RedeemPointsOutput{Redeemed: out.Redeemed}, nil
}

// GetBalance reads a player's balance
func (s *service) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	out, err := s.scoreRepo.GetPoints(ctx, &scores.GetPointsInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &GetBalanceOutput{Points: out.Points}, nil
}

// GetLeaderboard reads the ranked standings
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	out, err := s.scoreRepo.GetLeaderboard(ctx, &scores.GetLeaderboardInput{
		Limit: input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{Entries: out.Entries}, nil
}

// lookup finds the session for an arena without holding the registry
// lock any longer than the map read
func (s *service) lookup(arenaID string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[arenaID]
	return sess, ok
}

// remove drops the arena's session from the registry if it still maps
// to this session
func (s *service) remove(sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[sess.arenaID] == sess {
		delete(s.sessions, sess.arenaID)
	}
}

// startRound draws the bracket for a round and prompts its first match.
// Caller holds the session lock; roster has at least 2 entries.
func (s *service) startRound(ctx context.Context, sess *session, number int, roster []string) error {
	round, err := buildRound(number, roster, s.roller)
	if err != nil {
		return err
	}

	sess.round = round
	sess.matchIndex = 0
	sess.winners = append([]string{}, round.Byes...)

	// the round that will feed the final: remember its losers
	if len(round.Pairs) == 2 {
		sess.semifinalLosers = nil
		sess.semifinalRound = number
	}

	s.notifier.Publish(ctx, sess.arenaID, BracketAnnounced{
		Round: round.Number,
		Byes:  round.Byes,
		Pairs: round.Pairs,
	})

	s.startMatch(ctx, sess)

	return nil
}

// startMatch creates the state machine for the pair at the current match
// index, arms its readiness deadline, and prompts the pair. Caller holds
// the session lock.
func (s *service) startMatch(ctx context.Context, sess *session) {
	m := newMatch(s.uuid.NewUUID(), sess.matchIndex, sess.round.Pairs[sess.matchIndex])
	sess.current = m

	m.readyTimer = s.scheduler.Schedule(s.readyTimeout, func() {
		s.handleReadyTimeout(sess, m)
	})

	s.notifier.Publish(ctx, sess.arenaID, MatchPrompt{
		PairIndex: m.pairIndex,
		Pair:      m.pair,
	})

	s.logger.Debug().
		Str("arena", sess.arenaID).
		Str("match", m.id).
		Int("pair", m.pairIndex).
		Msg("match prompted")
}

// armRollTimer replaces the roll deadline for the current expected
// roller. Caller holds the session lock.
func (s *service) armRollTimer(sess *session, m *match) {
	if m.rollTimer != nil {
		m.rollTimer.Cancel()
	}

	m.turnSeq++
	seq := m.turnSeq
	m.rollTimer = s.scheduler.Schedule(s.rollTimeout, func() {
		s.handleRollTimeout(sess, m, seq)
	})
}

// handleReadyTimeout fires when the readiness window elapses. It may
// race the second confirmation's cancellation, so it revalidates state
// and no-ops when the match already moved on.
func (s *service) handleReadyTimeout(sess *session, m *match) {
	ctx := context.Background()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.current != m || m.status != matchAwaitingReady {
		return
	}
	m.readyTimer = nil

	m.status = matchForfeited
	m.forfeit = true
	m.winner = m.confirmedPlayer()

	s.logger.Debug().
		Str("arena", sess.arenaID).
		Str("match", m.id).
		Int("confirmed", m.readyCount()).
		Msg("readiness window elapsed")

	s.notifier.Publish(ctx, sess.arenaID, MatchDecided{
		PairIndex: m.pairIndex,
		Winner:    m.winner,
		Forfeit:   true,
	})

	s.concludeMatch(ctx, sess)
}

// handleRollTimeout fires when the expected roller missed their turn
// deadline. A stale sequence number means the roll (or a newer deadline)
// won the race and this fire is a no-op.
func (s *service) handleRollTimeout(sess *session, m *match, seq int) {
	ctx := context.Background()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.current != m || m.status != matchInProgress || seq != m.turnSeq {
		return
	}
	m.rollTimer = nil

	m.status = matchForfeited
	m.forfeit = true
	m.winner = m.pair.Opponent(m.currentRoller)

	s.logger.Debug().
		Str("arena", sess.arenaID).
		Str("match", m.id).
		Str("missed_by", m.currentRoller).
		Msg("roll deadline elapsed")

	s.notifier.Publish(ctx, sess.arenaID, MatchDecided{
		PairIndex: m.pairIndex,
		Winner:    m.winner,
		Forfeit:   true,
	})

	s.concludeMatch(ctx, sess)
}

// concludeMatch collects the terminal match's outcome and advances:
// next match in the round, next round, or the finish/abort transition.
// Caller holds the session lock.
func (s *service) concludeMatch(ctx context.Context, sess *session) {
	m := sess.current
	m.cancelTimers()
	sess.current = nil

	if m.winner != "" {
		sess.winners = append(sess.winners, m.winner)

		if len(sess.round.Pairs) == 2 {
			sess.semifinalLosers = append(sess.semifinalLosers, m.pair.Opponent(m.winner))
		}
	}

	sess.matchIndex++
	if sess.matchIndex < len(sess.round.Pairs) {
		s.startMatch(ctx, sess)
		return
	}

	// round exhausted
	winners := sess.winners

	if len(winners) == 0 {
		// everyone forfeited; ending here guards against replaying an
		// empty bracket forever
		s.abortLocked(ctx, sess, "no players advanced from the round")
		return
	}

	if len(winners) == 1 {
		s.finishLocked(ctx, sess, winners[0], m)
		return
	}

	next := sess.round.Number + 1
	s.notifier.Publish(ctx, sess.arenaID, RoundAdvanced{Round: next})

	// winners (byes included) become the next roster; buildRound cannot
	// fail here since len(winners) >= 2
	if err := s.startRound(ctx, sess, next, winners); err != nil {
		s.logger.Error().
			Err(err).
			Str("arena", sess.arenaID).
			Msg("failed to start next round")
		s.abortLocked(ctx, sess, "internal error advancing the round")
	}
}

// finishLocked ends the tournament with a champion, attributes awards
// through the ledger, and discards the session. Caller holds the session
// lock; lastMatch is the final concluded match of the last round.
func (s *service) finishLocked(ctx context.Context, sess *session, champion string, lastMatch *match) {
	sess.stage = models.StageFinished

	// runner-up is the player the champion beat in the last round; empty
	// when the champion advanced by bye or the other match double-forfeited
	runnerUp := ""
	if lastMatch != nil && lastMatch.winner == champion {
		runnerUp = lastMatch.pair.Opponent(champion)
	}

	// semifinal losers only place third when their round fed the final
	var thirds []string
	if len(sess.semifinalLosers) > 0 && sess.round.Number-sess.semifinalRound <= 1 && sess.semifinalRound != sess.round.Number {
		thirds = sess.semifinalLosers
	}

	s.award(ctx, sess.arenaID, champion, s.awards.First, 1)
	if runnerUp != "" {
		s.award(ctx, sess.arenaID, runnerUp, s.awards.Second, 2)
	}
	for _, third := range thirds {
		s.award(ctx, sess.arenaID, third, s.awards.Third, 3)
	}

	s.notifier.Publish(ctx, sess.arenaID, TournamentFinished{
		Champion: champion,
		RunnerUp: runnerUp,
		Thirds:   thirds,
	})

	s.logger.Info().
		Str("arena", sess.arenaID).
		Str("champion", champion).
		Str("runner_up", runnerUp).
		Msg("tournament finished")

	s.remove(sess)
}

// award writes a placement award to the ledger; a failed write is
// logged and skipped so one arena's fault cannot corrupt the finish
func (s *service) award(ctx context.Context, arenaID, playerID string, amount, place int) {
	if amount <= 0 {
		return
	}

	err := s.scoreRepo.AddPoints(ctx, &scores.AddPointsInput{
		PlayerID: playerID,
		Amount:   amount,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("arena", arenaID).
			Str("player", playerID).
			Int("amount", amount).
			Msg("failed to award points")
		return
	}

	s.notifier.Publish(ctx, arenaID, PointsAwarded{
		Player: playerID,
		Amount: amount,
		Place:  place,
	})
}

// abortLocked ends the tournament without a champion, cancels every live
// timer so no orphaned callback touches the discarded session, and drops
// the session from the registry. Caller holds the session lock.
func (s *service) abortLocked(ctx context.Context, sess *session, reason string) {
	sess.cancelTimers()
	sess.current = nil
	sess.stage = models.StageAborted

	s.notifier.Publish(ctx, sess.arenaID, TournamentAborted{Reason: reason})

	s.logger.Info().
		Str("arena", sess.arenaID).
		Str("reason", reason).
		Msg("tournament aborted")

	s.remove(sess)
}
