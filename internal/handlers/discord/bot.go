package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/showdown/internal/services/tournament"
)

// Button IDs
const (
	ButtonJoinTournament = "tourney_join"
	ButtonRollDice       = "tourney_roll"

	// readiness buttons carry the pair index so a stale prompt cannot
	// confirm the wrong match, e.g. "tourney_ready:2"
	buttonReadyPrefix = "tourney_ready:"
)

// Bot represents the Discord bot instance
type Bot struct {
	session           *discordgo.Session
	commands          map[string]CommandHandler
	commandIDs        map[string]string // Maps command name to command ID
	tournamentService tournament.Service
	config            *Config
	logger            zerolog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an existing Discord session to reuse. When nil, one is
	// created from Token.
	Session *discordgo.Session

	// Discord bot token; ignored when Session is provided
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Tournament service
	TournamentService tournament.Service

	Logger zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.TournamentService == nil {
		return nil, errors.New("tournament service cannot be nil")
	}

	session := cfg.Session
	if session == nil {
		if cfg.Token == "" {
			return nil, errors.New("token cannot be empty")
		}

		var err error
		session, err = discordgo.New("Bot " + cfg.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
	}

	bot := &Bot{
		session:           session,
		commands:          make(map[string]CommandHandler),
		commandIDs:        make(map[string]string),
		tournamentService: cfg.TournamentService,
		config:            cfg,
		logger:            cfg.Logger,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register the tourney command
	tourneyCmd := NewTourneyCommand(b.tournamentService, b.logger)
	if err := b.RegisterCommand(tourneyCmd); err != nil {
		return fmt.Errorf("failed to register tourney command: %w", err)
	}

	b.logger.Info().Msg("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).Str("command", cmdName).Msg("failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register the command for that specific
	// guild, otherwise register it globally
	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info().Str("command", cmd.GetName()).Str("id", createdCmd.ID).Msg("registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error().Err(err).Str("command", i.ApplicationCommandData().Name).Msg("command failed")
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons and other components
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error().Err(err).Msg("component interaction failed")
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	// The channel is the arena; members only interact from guild channels
	channelID := i.ChannelID
	userID := i.Member.User.ID

	switch {
	case customID == ButtonJoinTournament:
		return b.handleJoinButton(s, i, channelID, userID)
	case customID == ButtonRollDice:
		return b.handleRollButton(s, i, channelID, userID)
	case strings.HasPrefix(customID, buttonReadyPrefix):
		matchIndex, err := strconv.Atoi(strings.TrimPrefix(customID, buttonReadyPrefix))
		if err != nil {
			return RespondWithError(s, i, fmt.Sprintf("Malformed button: %s", customID))
		}
		return b.handleReadyButton(s, i, channelID, userID, matchIndex)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleJoinButton handles the join tournament button click
func (b *Bot) handleJoinButton(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	ctx := context.Background()

	out, err := b.tournamentService.JoinSignup(ctx, &tournament.JoinSignupInput{
		ArenaID:  channelID,
		PlayerID: userID,
	})
	if err != nil {
		if errors.Is(err, tournament.ErrNoActiveTournament) {
			return RespondWithEphemeralMessage(s, i, "No signup is open in this channel. Ask an admin to run `/tourney signup`.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Failed to join: %v", err))
	}

	if !out.Joined {
		return RespondWithEphemeralMessage(s, i, "You're already signed up, or signup has closed.")
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You're in! %d player(s) signed up so far.", len(out.Roster)))
}

// handleReadyButton handles a readiness confirmation button click
func (b *Bot) handleReadyButton(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string, matchIndex int) error {
	ctx := context.Background()

	out, err := b.tournamentService.ConfirmReady(ctx, &tournament.ConfirmReadyInput{
		ArenaID:    channelID,
		MatchIndex: matchIndex,
		PlayerID:   userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, tournament.ErrNoActiveTournament), errors.Is(err, tournament.ErrNoActiveMatch):
			return RespondWithEphemeralMessage(s, i, "This match prompt is no longer active.")
		case errors.Is(err, tournament.ErrNotInMatch):
			return RespondWithEphemeralMessage(s, i, "You're not in this match.")
		default:
			return RespondWithError(s, i, fmt.Sprintf("Failed to confirm: %v", err))
		}
	}

	if !out.Accepted {
		return RespondWithEphemeralMessage(s, i, "Already noted, hang tight.")
	}

	if out.DuelStarted {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Both players ready! <@%s> rolls first.", out.FirstRoller))
	}

	return RespondWithEphemeralMessage(s, i, "Ready confirmed. Waiting on your opponent.")
}

// handleRollButton handles the roll dice button click
func (b *Bot) handleRollButton(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	return respondToRoll(s, i, b.tournamentService, channelID, userID)
}

// respondToRoll performs a duel roll and answers the interaction; shared
// by the roll button and the /tourney roll subcommand
func respondToRoll(s *discordgo.Session, i *discordgo.InteractionCreate, svc tournament.Service, channelID, userID string) error {
	ctx := context.Background()

	out, err := svc.RollDice(ctx, &tournament.RollDiceInput{
		ArenaID:  channelID,
		PlayerID: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, tournament.ErrNoActiveTournament), errors.Is(err, tournament.ErrNoActiveMatch):
			return RespondWithEphemeralMessage(s, i, "There's no duel waiting on a roll right now.")
		case errors.Is(err, tournament.ErrNotInMatch):
			return RespondWithEphemeralMessage(s, i, "You're not in the current match.")
		case errors.Is(err, tournament.ErrNotYourTurn):
			return RespondWithEphemeralMessage(s, i, "Not your turn, wait for your opponent.")
		default:
			return RespondWithError(s, i, fmt.Sprintf("Failed to roll: %v", err))
		}
	}

	msg := fmt.Sprintf("You rolled a **%d**.", out.Value)
	switch {
	case out.MatchWinner != "":
		msg += " That settles the match!"
	case out.Tie:
		msg += " It's a tie, the sub-round restarts."
	case out.SubRoundWinner != "":
		msg += fmt.Sprintf(" <@%s> takes the sub-round.", out.SubRoundWinner)
	}

	return RespondWithEphemeralMessage(s, i, msg)
}
