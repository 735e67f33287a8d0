package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/scout-plus/scout-ai/src/qa"
)

const askPrefix = "!ask "

// discordMessageLimit is Discord's hard cap per message.
const discordMessageLimit = 2000

// Bot answers Scouting questions in Discord channels via "!ask <question>".
type Bot struct {
	session *discordgo.Session
	svc     *qa.Service
}

func New(token string, svc *qa.Service) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent

	b := &Bot{session: session, svc: svc}
	b.initHandlers()
	return b, nil
}

func (b *Bot) initHandlers() {
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Scout AI bot logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})

	b.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author.ID == s.State.User.ID {
			return
		}
		if strings.HasPrefix(strings.TrimSpace(m.Content), askPrefix) {
			b.handleAsk(s, m)
		}
	})
}

func (b *Bot) handleAsk(s *discordgo.Session, m *discordgo.MessageCreate) {
	question := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(m.Content), askPrefix))
	if question == "" {
		sendReply(s, m.ChannelID, "Please provide a question, e.g. `!ask Do I need a merit badge counselor?`")
		return
	}

	s.ChannelTyping(m.ChannelID)

	res := b.svc.Answer(context.Background(), question)
	sendReply(s, m.ChannelID, truncateReply(res.Answer))
}

// sender is the slice of discordgo.Session used to post replies.
type sender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// sendReply posts to a channel; send failures are logged, never fatal.
func sendReply(s sender, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("bot: send reply: %v", err)
	}
}

// truncateReply keeps answers within Discord's per-message cap.
func truncateReply(reply string) string {
	if len(reply) > discordMessageLimit {
		return reply[:discordMessageLimit-3] + "..."
	}
	return reply
}

func (b *Bot) Start() error {
	return b.session.Open()
}

func (b *Bot) Stop() {
	if err := b.session.Close(); err != nil {
		log.Printf("bot: close session: %v", err)
	}
}
