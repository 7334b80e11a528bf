package tournament

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/showdown/internal/common/clock/mocks"
	"github.com/KirkDiggler/showdown/internal/common/timer"
	commonuuid "github.com/KirkDiggler/showdown/internal/common/uuid"
	diceMocks "github.com/KirkDiggler/showdown/internal/dice/mocks"
	"github.com/KirkDiggler/showdown/internal/models"
	"github.com/KirkDiggler/showdown/internal/repositories/scores"
	scoresMocks "github.com/KirkDiggler/showdown/internal/repositories/scores/mocks"
)

// fakeTimer lets tests fire or cancel a scheduled callback deterministically
type fakeTimer struct {
	fn        func()
	cancelled bool
	fired     bool
}

func (t *fakeTimer) Cancel() bool {
	if t.cancelled || t.fired {
		return false
	}
	t.cancelled = true
	return true
}

func (t *fakeTimer) fire() {
	if t.cancelled || t.fired {
		return
	}
	t.fired = true
	t.fn()
}

// fakeScheduler records every scheduled deadline in order
type fakeScheduler struct {
	scheduled []*fakeTimer
}

func (f *fakeScheduler) Schedule(_ time.Duration, fn func()) timer.Handle {
	t := &fakeTimer{fn: fn}
	f.scheduled = append(f.scheduled, t)
	return t
}

func (f *fakeScheduler) last() *fakeTimer {
	if len(f.scheduled) == 0 {
		return nil
	}
	return f.scheduled[len(f.scheduled)-1]
}

func (f *fakeScheduler) liveCount() int {
	count := 0
	for _, t := range f.scheduled {
		if !t.cancelled && !t.fired {
			count++
		}
	}
	return count
}

// recordingNotifier captures published events for assertions
type recordingNotifier struct {
	events []Event
}

func (n *recordingNotifier) Publish(_ context.Context, _ string, event Event) {
	n.events = append(n.events, event)
}

func (n *recordingNotifier) ofKind(kind EventKind) []Event {
	var out []Event
	for _, e := range n.events {
		if e.Kind() == kind {
			out = append(out, e)
		}
	}
	return out
}

type TournamentServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockScores *scoresMocks.MockRepository
	mockRoller *diceMocks.MockRoller
	mockClock  *clockMocks.MockClock
	scheduler  *fakeScheduler
	notifier   *recordingNotifier

	svc  *service
	ctx  context.Context
	time time.Time

	arena string
}

func (s *TournamentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockScores = scoresMocks.NewMockRepository(s.mockCtrl)
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.scheduler = &fakeScheduler{}
	s.notifier = &recordingNotifier{}

	s.ctx = context.Background()
	s.time = time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
	s.arena = "arena-1"

	s.mockClock.EXPECT().Now().Return(s.time).AnyTimes()

	s.svc = s.newService(&Config{})
}

func (s *TournamentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *TournamentServiceTestSuite) newService(cfg *Config) *service {
	cfg.ScoreRepo = s.mockScores
	cfg.Roller = s.mockRoller
	cfg.Scheduler = s.scheduler
	cfg.Clock = s.mockClock
	cfg.UUID = commonuuid.New()
	cfg.Notifier = s.notifier
	cfg.Logger = zerolog.Nop()

	svc, err := New(cfg)
	s.Require().NoError(err)
	return svc
}

func TestTournamentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TournamentServiceTestSuite))
}

// expectRoll queues one roller expectation; identical sides are consumed
// in declaration order
func (s *TournamentServiceTestSuite) expectRoll(sides, value int) {
	s.mockRoller.EXPECT().Roll(sides).Return(value)
}

func (s *TournamentServiceTestSuite) expectDice(values ...int) {
	for _, v := range values {
		s.expectRoll(6, v)
	}
}

func (s *TournamentServiceTestSuite) expectAward(playerID string, amount int) {
	s.mockScores.EXPECT().
		AddPoints(gomock.Any(), &scores.AddPointsInput{PlayerID: playerID, Amount: amount}).
		Return(nil)
}

func (s *TournamentServiceTestSuite) beginAndJoin(players ...string) {
	_, err := s.svc.BeginSignup(s.ctx, &BeginSignupInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)

	for _, p := range players {
		out, err := s.svc.JoinSignup(s.ctx, &JoinSignupInput{ArenaID: s.arena, PlayerID: p})
		s.Require().NoError(err)
		s.Require().True(out.Joined)
	}
}

func (s *TournamentServiceTestSuite) confirm(pairIndex int, playerID string) *ConfirmReadyOutput {
	out, err := s.svc.ConfirmReady(s.ctx, &ConfirmReadyInput{
		ArenaID:    s.arena,
		MatchIndex: pairIndex,
		PlayerID:   playerID,
	})
	s.Require().NoError(err)
	return out
}

func (s *TournamentServiceTestSuite) roll(playerID string) *RollDiceOutput {
	out, err := s.svc.RollDice(s.ctx, &RollDiceInput{ArenaID: s.arena, PlayerID: playerID})
	s.Require().NoError(err)
	return out
}

func (s *TournamentServiceTestSuite) TestNewValidatesDependencies() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilScoreRepo)

	_, err = New(&Config{ScoreRepo: s.mockScores})
	s.ErrorIs(err, ErrNilDiceRoller)

	_, err = New(&Config{ScoreRepo: s.mockScores, Roller: s.mockRoller})
	s.ErrorIs(err, ErrNilScheduler)

	_, err = New(&Config{ScoreRepo: s.mockScores, Roller: s.mockRoller, Scheduler: s.scheduler})
	s.ErrorIs(err, ErrNilClock)
}

func (s *TournamentServiceTestSuite) TestBeginSignupWhileRunningFails() {
	s.beginAndJoin("alice")

	_, err := s.svc.BeginSignup(s.ctx, &BeginSignupInput{ArenaID: s.arena, RequesterID: "admin"})
	s.ErrorIs(err, ErrAlreadyRunning)

	// a different arena is unaffected
	_, err = s.svc.BeginSignup(s.ctx, &BeginSignupInput{ArenaID: "arena-2", RequesterID: "admin"})
	s.NoError(err)
}

func (s *TournamentServiceTestSuite) TestJoinSignup() {
	_, err := s.svc.JoinSignup(s.ctx, &JoinSignupInput{ArenaID: s.arena, PlayerID: "alice"})
	s.ErrorIs(err, ErrNoActiveTournament)

	s.beginAndJoin("alice", "bob")

	// duplicate joins are ignored, not errors
	out, err := s.svc.JoinSignup(s.ctx, &JoinSignupInput{ArenaID: s.arena, PlayerID: "alice"})
	s.Require().NoError(err)
	s.False(out.Joined)
	s.Equal([]string{"alice", "bob"}, out.Roster)

	s.Len(s.notifier.ofKind(EventRosterUpdated), 2)
}

func (s *TournamentServiceTestSuite) TestStartTournamentInsufficientPlayers() {
	s.beginAndJoin("alice")

	_, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.ErrorIs(err, ErrInsufficientPlayers)
}

func (s *TournamentServiceTestSuite) TestStartTournamentRequiresPowerOfTwoWhenStrict() {
	s.svc = s.newService(&Config{RequireFullBracket: true})
	s.beginAndJoin("alice", "bob", "carol")

	_, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.ErrorIs(err, ErrInvalidRosterSize)
}

func (s *TournamentServiceTestSuite) TestTwoPlayerDuelCompletes() {
	s.beginAndJoin("alice", "bob")

	// shuffle keeps join order
	s.expectRoll(2, 2)
	out, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)
	s.Equal(models.Pair{PlayerA: "alice", PlayerB: "bob"}, out.FirstMatch)
	s.Empty(out.Round.Byes)

	first := s.confirm(0, "alice")
	s.True(first.Accepted)
	s.False(first.DuelStarted)

	// second confirmation starts the duel; alice drew first roller
	s.expectRoll(2, 1)
	second := s.confirm(0, "bob")
	s.True(second.DuelStarted)
	s.Equal("alice", second.FirstRoller)

	// sub-round 1: alice takes it
	s.expectDice(5, 3)
	s.Equal("bob", s.roll("alice").NextRoller)
	s.Equal("alice", s.roll("bob").SubRoundWinner)

	// sub-round 2: bob evens the score
	s.expectDice(2, 6)
	s.roll("alice")
	s.Equal("bob", s.roll("bob").SubRoundWinner)

	// sub-round 3: tie forces a re-roll by the same first roller
	s.expectDice(4, 4)
	s.roll("alice")
	tie := s.roll("bob")
	s.True(tie.Tie)
	s.Equal("alice", tie.NextRoller)

	// re-roll decides the match
	s.expectDice(6, 1)
	s.expectAward("alice", 100)
	s.expectAward("bob", 50)
	s.roll("alice")
	final := s.roll("bob")
	s.Equal("alice", final.MatchWinner)

	decided := s.notifier.ofKind(EventMatchDecided)
	s.Require().Len(decided, 1)
	s.Equal(MatchDecided{PairIndex: 0, Winner: "alice"}, decided[0])

	finished := s.notifier.ofKind(EventTournamentFinished)
	s.Require().Len(finished, 1)
	s.Equal(TournamentFinished{Champion: "alice", RunnerUp: "bob"}, finished[0])

	s.Len(s.notifier.ofKind(EventPointsAwarded), 2)

	// session is discarded on finish; no timers left alive
	s.Equal(0, s.scheduler.liveCount())
	_, err = s.svc.GetRoster(s.ctx, &GetRosterInput{ArenaID: s.arena})
	s.ErrorIs(err, ErrNoActiveTournament)
}

func (s *TournamentServiceTestSuite) TestThreePlayerBracketHasOneByeAndNoThird() {
	s.beginAndJoin("alice", "bob", "carol")

	// shuffle to [bob alice carol], carol drawn as the bye
	s.expectRoll(3, 3)
	s.expectRoll(2, 1)
	s.expectRoll(3, 3)
	out, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)
	s.Equal([]string{"carol"}, out.Round.Byes)
	s.Require().Len(out.Round.Pairs, 1)
	s.Equal(models.Pair{PlayerA: "bob", PlayerB: "alice"}, out.Round.Pairs[0])

	// semifinal: bob sweeps alice
	s.confirm(0, "bob")
	s.expectRoll(2, 1)
	s.confirm(0, "alice")
	s.expectDice(6, 1, 5, 2)
	s.roll("bob")
	s.roll("alice")
	s.roll("bob")

	// final round pairs the bye against the winner
	s.expectRoll(2, 2)
	s.Equal("bob", s.roll("alice").MatchWinner)

	rounds := s.notifier.ofKind(EventBracketAnnounced)
	s.Require().Len(rounds, 2)
	s.Equal(BracketAnnounced{Round: 2, Pairs: []models.Pair{{PlayerA: "carol", PlayerB: "bob"}}}, rounds[1])

	// final: carol takes it in two
	s.confirm(0, "carol")
	s.expectRoll(2, 2)
	s.confirm(0, "bob")
	s.expectDice(3, 5, 2, 4)
	s.expectAward("carol", 100)
	s.expectAward("bob", 50)
	s.roll("bob")
	s.roll("carol")
	s.roll("bob")
	final := s.roll("carol")
	s.Equal("carol", final.MatchWinner)

	finished := s.notifier.ofKind(EventTournamentFinished)
	s.Require().Len(finished, 1)

	// one semifinal match means nobody places third
	s.Equal(TournamentFinished{Champion: "carol", RunnerUp: "bob"}, finished[0])
	s.Len(s.notifier.ofKind(EventPointsAwarded), 2)
}

func (s *TournamentServiceTestSuite) TestFourPlayerBracketAwardsBothThirds() {
	s.beginAndJoin("alice", "bob", "carol", "dave")

	// identity shuffle: pairs (alice,bob) and (carol,dave)
	s.expectRoll(4, 4)
	s.expectRoll(3, 3)
	s.expectRoll(2, 2)
	out, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)
	s.Require().Len(out.Round.Pairs, 2)

	// semifinal 1: alice sweeps bob
	s.confirm(0, "alice")
	s.expectRoll(2, 1)
	s.confirm(0, "bob")
	s.expectDice(6, 1, 6, 1)
	s.roll("alice")
	s.roll("bob")
	s.roll("alice")
	s.roll("bob")

	// semifinal 2: dave sweeps carol
	s.confirm(1, "carol")
	s.expectRoll(2, 1)
	s.confirm(1, "dave")
	s.expectDice(1, 6, 1, 6)
	s.roll("carol")
	s.roll("dave")
	s.roll("carol")
	// the last semifinal roll also draws the final's bracket
	s.expectRoll(2, 2)
	s.roll("dave")

	// final: alice sweeps dave
	s.confirm(0, "alice")
	s.expectRoll(2, 1)
	s.confirm(0, "dave")
	s.expectDice(6, 1, 6, 1)
	s.expectAward("alice", 100)
	s.expectAward("dave", 50)
	s.expectAward("bob", 25)
	s.expectAward("carol", 25)
	s.roll("alice")
	s.roll("dave")
	s.roll("alice")
	final := s.roll("dave")
	s.Equal("alice", final.MatchWinner)

	finished := s.notifier.ofKind(EventTournamentFinished)
	s.Require().Len(finished, 1)
	s.Equal(TournamentFinished{
		Champion: "alice",
		RunnerUp: "dave",
		Thirds:   []string{"bob", "carol"},
	}, finished[0])
}

func (s *TournamentServiceTestSuite) TestReadyTimeoutWithOneConfirmation() {
	s.beginAndJoin("alice", "bob")

	s.expectRoll(2, 2)
	_, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)

	s.confirm(0, "alice")

	// alice wins the final by forfeit, bob still places second
	s.expectAward("alice", 100)
	s.expectAward("bob", 50)
	s.scheduler.last().fire()

	decided := s.notifier.ofKind(EventMatchDecided)
	s.Require().Len(decided, 1)
	s.Equal(MatchDecided{PairIndex: 0, Winner: "alice", Forfeit: true}, decided[0])

	// the duel never started
	s.Empty(s.notifier.ofKind(EventDuelStarted))
	s.Empty(s.notifier.ofKind(EventRollResult))
}

func (s *TournamentServiceTestSuite) TestReadyTimeoutWithNoConfirmationsAbortsEmptyRound() {
	s.beginAndJoin("alice", "bob")

	s.expectRoll(2, 2)
	_, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)

	s.scheduler.last().fire()

	decided := s.notifier.ofKind(EventMatchDecided)
	s.Require().Len(decided, 1)
	s.Equal(MatchDecided{PairIndex: 0, Forfeit: true}, decided[0])
	s.Len(s.notifier.ofKind(EventTournamentAborted), 1)

	// the arena is free again
	_, err = s.svc.BeginSignup(s.ctx, &BeginSignupInput{ArenaID: s.arena, RequesterID: "admin"})
	s.NoError(err)
}

func (s *TournamentServiceTestSuite) TestRollTimeoutForfeitsExpectedRoller() {
	s.beginAndJoin("alice", "bob")

	s.expectRoll(2, 2)
	_, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)

	s.confirm(0, "alice")
	s.expectRoll(2, 1)
	s.confirm(0, "bob")

	// alice is on the clock and never rolls
	s.expectAward("bob", 100)
	s.expectAward("alice", 50)
	s.scheduler.last().fire()

	decided := s.notifier.ofKind(EventMatchDecided)
	s.Require().Len(decided, 1)
	s.Equal(MatchDecided{PairIndex: 0, Winner: "bob", Forfeit: true}, decided[0])
}

func (s *TournamentServiceTestSuite) TestStaleReadyTimeoutIsNoOp() {
	s.beginAndJoin("alice", "bob")

	s.expectRoll(2, 2)
	_, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)

	s.confirm(0, "alice")
	readyTimer := s.scheduler.last()

	s.expectRoll(2, 1)
	s.confirm(0, "bob")
	s.True(readyTimer.cancelled)

	// simulate the timeout losing the cancellation race: invoke the
	// callback directly even though it was cancelled
	readyTimer.fn()

	s.Empty(s.notifier.ofKind(EventMatchDecided))
	sess, ok := s.svc.lookup(s.arena)
	s.Require().True(ok)
	s.Equal(matchInProgress, sess.current.status)
}

func (s *TournamentServiceTestSuite) TestStaleRollTimeoutIsNoOp() {
	s.beginAndJoin("alice", "bob")

	s.expectRoll(2, 2)
	_, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)

	s.confirm(0, "alice")
	s.expectRoll(2, 1)
	s.confirm(0, "bob")

	firstDeadline := s.scheduler.last()

	s.expectDice(5)
	s.roll("alice")

	// the deadline for alice's turn fires late; bob is on the clock now
	firstDeadline.fn()

	s.Empty(s.notifier.ofKind(EventMatchDecided))
	sess, ok := s.svc.lookup(s.arena)
	s.Require().True(ok)
	s.Equal(matchInProgress, sess.current.status)
	s.Equal("bob", sess.current.currentRoller)
}

func (s *TournamentServiceTestSuite) TestConfirmReadyRejections() {
	s.beginAndJoin("alice", "bob")

	s.expectRoll(2, 2)
	_, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)

	_, err = s.svc.ConfirmReady(s.ctx, &ConfirmReadyInput{ArenaID: s.arena, MatchIndex: 0, PlayerID: "mallory"})
	s.ErrorIs(err, ErrNotInMatch)

	_, err = s.svc.ConfirmReady(s.ctx, &ConfirmReadyInput{ArenaID: s.arena, MatchIndex: 3, PlayerID: "alice"})
	s.ErrorIs(err, ErrNoActiveMatch)

	s.confirm(0, "alice")

	// pressing ready twice is a no-op the second time
	dup := s.confirm(0, "alice")
	s.False(dup.Accepted)
	s.Len(s.notifier.ofKind(EventReadyAcknowledged), 1)
}

func (s *TournamentServiceTestSuite) TestRollDiceRejections() {
	s.beginAndJoin("alice", "bob")

	s.expectRoll(2, 2)
	_, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)

	// rolling before the duel started targets no match
	_, err = s.svc.RollDice(s.ctx, &RollDiceInput{ArenaID: s.arena, PlayerID: "alice"})
	s.ErrorIs(err, ErrNoActiveMatch)

	s.confirm(0, "alice")
	s.expectRoll(2, 1)
	s.confirm(0, "bob")

	_, err = s.svc.RollDice(s.ctx, &RollDiceInput{ArenaID: s.arena, PlayerID: "mallory"})
	s.ErrorIs(err, ErrNotInMatch)

	_, err = s.svc.RollDice(s.ctx, &RollDiceInput{ArenaID: s.arena, PlayerID: "bob"})
	s.ErrorIs(err, ErrNotYourTurn)
}

func (s *TournamentServiceTestSuite) TestTieLeavesWinCountersUntouched() {
	s.beginAndJoin("alice", "bob")

	s.expectRoll(2, 2)
	_, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)

	s.confirm(0, "alice")
	s.expectRoll(2, 1)
	s.confirm(0, "bob")

	s.expectDice(4, 4)
	s.roll("alice")
	tie := s.roll("bob")
	s.True(tie.Tie)

	sess, ok := s.svc.lookup(s.arena)
	s.Require().True(ok)
	s.Empty(sess.current.wins)
	s.Equal(sess.current.firstRoller, sess.current.currentRoller)

	prompts := s.notifier.ofKind(EventTurnPrompt)
	s.Require().NotEmpty(prompts)
	s.Equal(TurnPrompt{NextRoller: "alice", Reroll: true}, prompts[len(prompts)-1])
}

func (s *TournamentServiceTestSuite) TestJoinAfterStartIsIgnored() {
	s.beginAndJoin("alice", "bob")

	s.expectRoll(2, 2)
	_, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)

	out, err := s.svc.JoinSignup(s.ctx, &JoinSignupInput{ArenaID: s.arena, PlayerID: "carol"})
	s.Require().NoError(err)
	s.False(out.Joined)
}

func (s *TournamentServiceTestSuite) TestAbortTournamentCancelsTimers() {
	s.beginAndJoin("alice", "bob")

	s.expectRoll(2, 2)
	_, err := s.svc.StartTournament(s.ctx, &StartTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)
	s.Equal(1, s.scheduler.liveCount())

	_, err = s.svc.AbortTournament(s.ctx, &AbortTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.Require().NoError(err)

	s.Equal(0, s.scheduler.liveCount())
	s.Len(s.notifier.ofKind(EventTournamentAborted), 1)

	_, err = s.svc.AbortTournament(s.ctx, &AbortTournamentInput{ArenaID: s.arena, RequesterID: "admin"})
	s.ErrorIs(err, ErrNoActiveTournament)
}

func (s *TournamentServiceTestSuite) TestRedeemAll() {
	s.mockScores.EXPECT().
		RedeemAll(gomock.Any(), &scores.RedeemAllInput{PlayerID: "alice"}).
		Return(&scores.RedeemAllOutput{Redeemed: 75}, nil)

	out, err := s.svc.RedeemPoints(s.ctx, &RedeemPointsInput{PlayerID: "alice", All: true})
	s.Require().NoError(err)
	s.Equal(75, out.Redeemed)

	results := s.notifier.ofKind(EventRedemptionResult)
	s.Require().Len(results, 1)
	s.Equal(RedemptionResult{Player: "alice", Redeemed: 75}, results[0])
}

func (s *TournamentServiceTestSuite) TestRedeemAmountInsufficientFunds() {
	s.mockScores.EXPECT().
		RedeemAmount(gomock.Any(), &scores.RedeemAmountInput{PlayerID: "alice", Amount: 50}).
		Return(&scores.RedeemAmountOutput{Redeemed: 0}, nil)

	_, err := s.svc.RedeemPoints(s.ctx, &RedeemPointsInput{PlayerID: "alice", Amount: 50})
	s.ErrorIs(err, ErrInsufficientFunds)
	s.Empty(s.notifier.ofKind(EventRedemptionResult))
}

func (s *TournamentServiceTestSuite) TestRedeemRejectsNonPositiveAmount() {
	_, err := s.svc.RedeemPoints(s.ctx, &RedeemPointsInput{PlayerID: "alice", Amount: 0})
	s.ErrorIs(err, ErrInvalidAmount)

	_, err = s.svc.RedeemPoints(s.ctx, &RedeemPointsInput{PlayerID: "alice", Amount: -5})
	s.ErrorIs(err, ErrInvalidAmount)
}

func (s *TournamentServiceTestSuite) TestGetBalance() {
	s.mockScores.EXPECT().
		GetPoints(gomock.Any(), &scores.GetPointsInput{PlayerID: "alice"}).
		Return(&scores.GetPointsOutput{Points: 120}, nil)

	out, err := s.svc.GetBalance(s.ctx, &GetBalanceInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.Equal(120, out.Points)
}

func (s *TournamentServiceTestSuite) TestGetLeaderboard() {
	entries := []models.ScoreEntry{
		{PlayerID: "alice", Points: 200},
		{PlayerID: "bob", Points: 150},
	}

	s.mockScores.EXPECT().
		GetLeaderboard(gomock.Any(), &scores.GetLeaderboardInput{Limit: 10}).
		Return(&scores.GetLeaderboardOutput{Entries: entries}, nil)

	out, err := s.svc.GetLeaderboard(s.ctx, &GetLeaderboardInput{Limit: 10})
	s.Require().NoError(err)
	s.Equal(entries, out.Entries)
}
