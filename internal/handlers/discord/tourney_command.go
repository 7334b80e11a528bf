package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/showdown/internal/services/tournament"
)

const defaultLeaderboardLimit = 10

// TourneyCommand handles the /tourney command
type TourneyCommand struct {
	BaseCommand
	tournamentService tournament.Service
	logger            zerolog.Logger
}

// NewTourneyCommand creates a new tourney command handler
func NewTourneyCommand(tournamentService tournament.Service, logger zerolog.Logger) *TourneyCommand {
	return &TourneyCommand{
		BaseCommand: BaseCommand{
			Name:        "tourney",
			Description: "Single-elimination dice tournament commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "signup",
					Description: "Open a signup roster in this channel (admin)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Draw the bracket and start the tournament (admin)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "abort",
					Description: "Abort the running tournament (admin)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roster",
					Description: "Show who is signed up in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roll",
					Description: "Roll your die in the current duel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "points",
					Description: "Show your point balance",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "redeem",
					Description: "Cash out points",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "amount",
							Description: "How many points to redeem; omit to redeem everything",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the all-time standings",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: "How many places to show",
							Required:    false,
						},
					},
				},
			},
		},
		tournamentService: tournamentService,
		logger:            logger,
	}
}

// Handle processes a Discord interaction for the tourney command
func (c *TourneyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	channelID := i.ChannelID
	userID := i.Member.User.ID

	var err error
	switch data.Options[0].Name {
	case "signup":
		err = c.handleSignup(s, i, channelID, userID)
	case "start":
		err = c.handleStart(s, i, channelID, userID)
	case "abort":
		err = c.handleAbort(s, i, channelID, userID)
	case "roster":
		err = c.handleRoster(s, i, channelID)
	case "roll":
		err = respondToRoll(s, i, c.tournamentService, channelID, userID)
	case "points":
		err = c.handlePoints(s, i, userID)
	case "redeem":
		err = c.handleRedeem(s, i, userID, data.Options[0].Options)
	case "leaderboard":
		err = c.handleLeaderboard(s, i, data.Options[0].Options)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// isAdmin reports whether the invoking member may manage tournaments
func isAdmin(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionManageServer != 0
}

// handleSignup handles the signup subcommand
func (c *TourneyCommand) handleSignup(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	if !isAdmin(i) {
		return RespondWithEphemeralMessage(s, i, "Only server managers can open a signup.")
	}

	ctx := context.Background()

	_, err := c.tournamentService.BeginSignup(ctx, &tournament.BeginSignupInput{
		ArenaID:     channelID,
		RequesterID: userID,
	})
	if err != nil {
		if errors.Is(err, tournament.ErrAlreadyRunning) {
			return RespondWithError(s, i, "A tournament is already running in this channel. Use `/tourney abort` to clear it if needed.")
		}
		c.logger.Error().Err(err).Str("channel", channelID).Msg("failed to open signup")
		return RespondWithError(s, i, fmt.Sprintf("Failed to open signup: %v", err))
	}

	joinButton := discordgo.Button{
		Label:    "Join Tournament",
		Style:    discordgo.SuccessButton,
		CustomID: ButtonJoinTournament,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎲",
		},
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Tournament Signup Open!",
					Description: "Click Join to enter. When everyone is in, an admin runs `/tourney start` to draw the bracket.",
					Color:       0x00ff00, // Green color
				},
			},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{joinButton},
				},
			},
		},
	})
}

// handleStart handles the start subcommand
func (c *TourneyCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	if !isAdmin(i) {
		return RespondWithEphemeralMessage(s, i, "Only server managers can start the tournament.")
	}

	ctx := context.Background()

	out, err := c.tournamentService.StartTournament(ctx, &tournament.StartTournamentInput{
		ArenaID:     channelID,
		RequesterID: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, tournament.ErrNoActiveTournament):
			return RespondWithError(s, i, "No signup is open in this channel. Run `/tourney signup` first.")
		case errors.Is(err, tournament.ErrInsufficientPlayers):
			return RespondWithError(s, i, "At least 2 players are needed to start.")
		case errors.Is(err, tournament.ErrInvalidRosterSize):
			return RespondWithError(s, i, "The roster size must be a power of two to start.")
		case errors.Is(err, tournament.ErrAlreadyRunning):
			return RespondWithError(s, i, "The bracket has already been drawn.")
		default:
			c.logger.Error().Err(err).Str("channel", channelID).Msg("failed to start tournament")
			return RespondWithError(s, i, fmt.Sprintf("Failed to start: %v", err))
		}
	}

	// the bracket itself is posted by the event renderer
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Bracket drawn with %d match(es). Good luck!", len(out.Round.Pairs)))
}

// handleAbort handles the abort subcommand
func (c *TourneyCommand) handleAbort(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	if !isAdmin(i) {
		return RespondWithEphemeralMessage(s, i, "Only server managers can abort the tournament.")
	}

	ctx := context.Background()

	_, err := c.tournamentService.AbortTournament(ctx, &tournament.AbortTournamentInput{
		ArenaID:     channelID,
		RequesterID: userID,
	})
	if err != nil {
		if errors.Is(err, tournament.ErrNoActiveTournament) {
			return RespondWithEphemeralMessage(s, i, "There's no tournament to abort in this channel.")
		}
		c.logger.Error().Err(err).Str("channel", channelID).Msg("failed to abort tournament")
		return RespondWithError(s, i, fmt.Sprintf("Failed to abort: %v", err))
	}

	return RespondWithEphemeralMessage(s, i, "Tournament aborted.")
}

// handleRoster handles the roster subcommand
func (c *TourneyCommand) handleRoster(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()

	out, err := c.tournamentService.GetRoster(ctx, &tournament.GetRosterInput{
		ArenaID: channelID,
	})
	if err != nil {
		if errors.Is(err, tournament.ErrNoActiveTournament) {
			return RespondWithEphemeralMessage(s, i, "There's no tournament in this channel right now.")
		}
		c.logger.Error().Err(err).Str("channel", channelID).Msg("failed to read roster")
		return RespondWithError(s, i, fmt.Sprintf("Failed to read roster: %v", err))
	}

	if len(out.Roster) == 0 {
		return RespondWithEphemeralMessage(s, i, "Nobody has signed up yet.")
	}

	var sb strings.Builder
	for _, playerID := range out.Roster {
		fmt.Fprintf(&sb, "- <@%s>\n", playerID)
	}

	return RespondWithEmbed(s, i,
		fmt.Sprintf("Roster (%s)", out.Stage),
		sb.String(), nil)
}

// handlePoints handles the points subcommand
func (c *TourneyCommand) handlePoints(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	out, err := c.tournamentService.GetBalance(ctx, &tournament.GetBalanceInput{
		PlayerID: userID,
	})
	if err != nil {
		c.logger.Error().Err(err).Str("player", userID).Msg("failed to read balance")
		return RespondWithError(s, i, fmt.Sprintf("Failed to read balance: %v", err))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You have **%d** point(s).", out.Points))
}

// handleRedeem handles the redeem subcommand
func (c *TourneyCommand) handleRedeem(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	input := &tournament.RedeemPointsInput{
		PlayerID: userID,
		All:      true,
	}
	for _, opt := range opts {
		if opt.Name == "amount" {
			input.All = false
			input.Amount = int(opt.IntValue())
		}
	}

	out, err := c.tournamentService.RedeemPoints(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, tournament.ErrInvalidAmount):
			return RespondWithEphemeralMessage(s, i, "The amount must be a positive number.")
		case errors.Is(err, tournament.ErrInsufficientFunds):
			return RespondWithEphemeralMessage(s, i, "You don't have that many points.")
		default:
			c.logger.Error().Err(err).Str("player", userID).Msg("failed to redeem points")
			return RespondWithError(s, i, fmt.Sprintf("Failed to redeem: %v", err))
		}
	}

	if out.Redeemed == 0 {
		return RespondWithEphemeralMessage(s, i, "Nothing to redeem, your balance is empty.")
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Redeemed **%d** point(s). Spend them wisely.", out.Redeemed))
}

// handleLeaderboard handles the leaderboard subcommand
func (c *TourneyCommand) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	limit := defaultLeaderboardLimit
	for _, opt := range opts {
		if opt.Name == "limit" && opt.IntValue() > 0 {
			limit = int(opt.IntValue())
		}
	}

	out, err := c.tournamentService.GetLeaderboard(ctx, &tournament.GetLeaderboardInput{
		Limit: limit,
	})
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to read leaderboard")
		return RespondWithError(s, i, fmt.Sprintf("Failed to read leaderboard: %v", err))
	}

	if len(out.Entries) == 0 {
		return RespondWithMessage(s, i, "The leaderboard is empty. Win a tournament to get on it!")
	}

	var sb strings.Builder
	for rank, entry := range out.Entries {
		fmt.Fprintf(&sb, "%d. <@%s>: %d point(s)\n", rank+1, entry.PlayerID, entry.Points)
	}

	return RespondWithEmbed(s, i, "Tournament Leaderboard", sb.String(), nil)
}
