package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/showdown/internal/services/tournament"
)

// messageSender is the slice of the Discord session the renderer needs
type messageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// delivery pairs a rendered message with its destination channel
type delivery struct {
	channelID string
	message   *discordgo.MessageSend
}

// Notifier renders engine events into channel messages. Publish is
// called with the engine's session lock held, so delivery happens on a
// worker goroutine and Publish only enqueues; a full queue drops the
// event rather than block the engine.
type Notifier struct {
	sender messageSender
	logger zerolog.Logger

	queue chan delivery
	done  chan struct{}
}

// NewNotifier creates a notifier delivering through the given sender
// and starts its delivery worker
func NewNotifier(sender messageSender, logger zerolog.Logger) *Notifier {
	n := &Notifier{
		sender: sender,
		logger: logger,
		queue:  make(chan delivery, 256),
		done:   make(chan struct{}),
	}

	go n.deliver()

	return n
}

// Close stops accepting events and waits for queued deliveries to drain
func (n *Notifier) Close() {
	close(n.queue)
	<-n.done
}

// Publish renders the event and enqueues it for delivery. Events with no
// arena, such as redemption results answered ephemerally, are skipped.
func (n *Notifier) Publish(_ context.Context, arenaID string, event tournament.Event) {
	if arenaID == "" {
		return
	}

	message := renderEvent(event)
	if message == nil {
		return
	}

	select {
	case n.queue <- delivery{channelID: arenaID, message: message}:
	default:
		n.logger.Warn().
			Str("arena", arenaID).
			Str("event", string(event.Kind())).
			Msg("delivery queue full, dropping event")
	}
}

func (n *Notifier) deliver() {
	defer close(n.done)

	for d := range n.queue {
		if _, err := n.sender.ChannelMessageSendComplex(d.channelID, d.message); err != nil {
			n.logger.Error().
				Err(err).
				Str("channel", d.channelID).
				Msg("failed to deliver event message")
		}
	}
}

// renderEvent builds the channel message for an engine event; nil means
// the event has no channel representation
func renderEvent(event tournament.Event) *discordgo.MessageSend {
	switch e := event.(type) {
	case tournament.RosterUpdated:
		return &discordgo.MessageSend{
			Content: fmt.Sprintf("📋 %d player(s) signed up: %s", len(e.Players), mentionList(e.Players)),
		}

	case tournament.BracketAnnounced:
		return renderBracket(e)

	case tournament.MatchPrompt:
		return &discordgo.MessageSend{
			Content: fmt.Sprintf("⚔️ Match %d: <@%s> vs <@%s>. Confirm when you're ready to roll!",
				e.PairIndex+1, e.Pair.PlayerA, e.Pair.PlayerB),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{readyButton(e.PairIndex)},
				},
			},
		}

	case tournament.ReadyAcknowledged:
		if e.AwaitingOpponent {
			return &discordgo.MessageSend{
				Content: fmt.Sprintf("<@%s> is ready. Waiting on the opponent...", e.Player),
			}
		}
		return nil // the duel start message follows immediately

	case tournament.DuelStarted:
		return &discordgo.MessageSend{
			Content: fmt.Sprintf("🎲 Both players ready! <@%s> rolls first.", e.FirstRoller),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{rollButton()},
				},
			},
		}

	case tournament.RollResult:
		return &discordgo.MessageSend{
			Content: fmt.Sprintf("<@%s> rolls a **%d**.", e.Player, e.Value),
		}

	case tournament.TurnPrompt:
		content := fmt.Sprintf("<@%s>, you're up!", e.NextRoller)
		if e.Reroll {
			content = fmt.Sprintf("It's a tie! <@%s>, roll again.", e.NextRoller)
		}
		return &discordgo.MessageSend{
			Content: content,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{rollButton()},
				},
			},
		}

	case tournament.MatchDecided:
		switch {
		case e.Winner == "":
			return &discordgo.MessageSend{
				Content: fmt.Sprintf("💤 Match %d: nobody showed up. Both players forfeit.", e.PairIndex+1),
			}
		case e.Forfeit:
			return &discordgo.MessageSend{
				Content: fmt.Sprintf("⏰ Match %d goes to <@%s> by forfeit.", e.PairIndex+1, e.Winner),
			}
		default:
			return &discordgo.MessageSend{
				Content: fmt.Sprintf("🏁 Match %d goes to <@%s>!", e.PairIndex+1, e.Winner),
			}
		}

	case tournament.RoundAdvanced:
		return &discordgo.MessageSend{
			Content: fmt.Sprintf("➡️ On to round %d!", e.Round),
		}

	case tournament.TournamentFinished:
		return renderFinish(e)

	case tournament.TournamentAborted:
		return &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Tournament Aborted",
					Description: e.Reason,
					Color:       0xff0000, // Red color
				},
			},
		}

	case tournament.PointsAwarded:
		return &discordgo.MessageSend{
			Content: fmt.Sprintf("💰 <@%s> earns **%d** point(s) for placing %s.", e.Player, e.Amount, placeName(e.Place)),
		}

	default:
		return nil
	}
}

// renderBracket builds the round announcement embed
func renderBracket(e tournament.BracketAnnounced) *discordgo.MessageSend {
	var fields []*discordgo.MessageEmbedField

	matches := ""
	for idx, pair := range e.Pairs {
		matches += fmt.Sprintf("**Match %d**: <@%s> vs <@%s>\n", idx+1, pair.PlayerA, pair.PlayerB)
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:   "Matches",
		Value:  matches,
		Inline: false,
	})

	if len(e.Byes) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Byes",
			Value:  mentionList(e.Byes) + " advance(s) without playing",
			Inline: false,
		})
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       fmt.Sprintf("Round %d Bracket", e.Round),
				Description: "Matches run one at a time. When your match is prompted, press Ready.",
				Color:       0x00ff00, // Green color
				Fields:      fields,
			},
		},
	}
}

// renderFinish builds the final standings embed
func renderFinish(e tournament.TournamentFinished) *discordgo.MessageSend {
	standings := fmt.Sprintf("🏆 **Champion**: <@%s>\n", e.Champion)
	if e.RunnerUp != "" {
		standings += fmt.Sprintf("🥈 **Runner-up**: <@%s>\n", e.RunnerUp)
	}
	for _, third := range e.Thirds {
		standings += fmt.Sprintf("🥉 **Third**: <@%s>\n", third)
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Tournament Finished!",
				Description: standings,
				Color:       0xffd700, // Gold color
			},
		},
	}
}

func readyButton(pairIndex int) discordgo.Button {
	return discordgo.Button{
		Label:    "Ready",
		Style:    discordgo.SuccessButton,
		CustomID: fmt.Sprintf("%s%d", buttonReadyPrefix, pairIndex),
		Emoji: &discordgo.ComponentEmoji{
			Name: "✅",
		},
	}
}

func rollButton() discordgo.Button {
	return discordgo.Button{
		Label:    "Roll",
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonRollDice,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎲",
		},
	}
}

func mentionList(playerIDs []string) string {
	mentions := make([]string, 0, len(playerIDs))
	for _, id := range playerIDs {
		mentions = append(mentions, fmt.Sprintf("<@%s>", id))
	}
	return strings.Join(mentions, ", ")
}

// placeName names a final placement for the award message
func placeName(place int) string {
	switch place {
	case 1:
		return "first"
	case 2:
		return "second"
	case 3:
		return "third"
	default:
		return fmt.Sprintf("%dth", place)
	}
}

var _ tournament.Notifier = (*Notifier)(nil)
