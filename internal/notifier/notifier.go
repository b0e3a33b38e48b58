package notifier

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kovalyov-valentin/job-feed-parser/internal/markup"
	"github.com/kovalyov-valentin/job-feed-parser/internal/model"
)

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Достаточно метода Send из *tgbotapi.BotAPI
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Отправляет новые вакансии в телеграм канал
type Notifier struct {
	summarizer Summarizer
	bot        Sender
	// id канала куда мы будем постить вакансии
	channelID int64
}

func New(summarizer Summarizer, bot Sender, channelID int64) *Notifier {
	return &Notifier{
		summarizer: summarizer,
		bot:        bot,
		channelID:  channelID,
	}
}

// Отправляет все записи. Ошибка одной записи не мешает отправить остальные
func (n *Notifier) Notify(ctx context.Context, records []model.Record) error {
	var errs []error

	for _, record := range records {
		if err := n.sendRecord(ctx, record); err != nil {
			errs = append(errs, fmt.Errorf("send %s: %w", record.Link, err))
		}
	}

	return errors.Join(errs...)
}

func (n *Notifier) sendRecord(ctx context.Context, record model.Record) error {
	var summary string
	if n.summarizer != nil {
		var err error
		// Без summary вакансию все равно отправляем
		if summary, err = n.summarizer.Summarize(ctx, record.Content); err != nil {
			log.Printf("[WARN] summarize %s: %v", record.Link, err)
		}
	}

	msg := tgbotapi.NewMessage(n.channelID, formatRecord(record, summary))
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	_, err := n.bot.Send(msg)
	return err
}

// Сначала жирным заголовок, потом summary, метаданные вакансии и ссылка
func formatRecord(record model.Record, summary string) string {
	parts := []string{"*" + markup.EscapeForMarkdown(record.Title) + "*"}

	if summary != "" {
		parts = append(parts, markup.EscapeForMarkdown(summary))
	}

	var details []string
	if record.Budget != nil {
		details = append(details, "💰 "+markup.EscapeForMarkdown(record.Budget.String()))
	}
	if record.Skills != nil {
		details = append(details, "🛠 "+markup.EscapeForMarkdown(record.SkillsString()))
	}
	if record.Country != nil {
		details = append(details, "🌍 "+markup.EscapeForMarkdown(*record.Country))
	}
	if record.Date != nil {
		details = append(details, "🕒 "+markup.EscapeForMarkdown(*record.Date))
	}
	if len(details) > 0 {
		parts = append(parts, strings.Join(details, "\n"))
	}

	parts = append(parts, markup.EscapeForMarkdown(record.Link))

	return strings.Join(parts, "\n\n")
}
