package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"brainscan-bot/internal/container"
)

const (
	msgWelcome = "👋 Hello, %s!\n\nI am the Brain Tumor Detection Bot. Please send me a brain scan image, and I will analyze it for potential tumor types."

	msgHelp = `**How to use me:**
1. **Analysis:** Send me a brain scan image (like an MRI).
2. **Follow-up:** After I provide the analysis, you can ask me questions about the detected tumor types for informational purposes.`

	msgAnalyzing       = "Scan received. Analyzing... 🩺"
	msgThinking        = "Consulting knowledge base... 🧠"
	msgProcessingError = "Sorry, I encountered an error during the analysis. Please try sending the scan again."
	msgUnknownCommand  = "Unknown command. Use /help for instructions."
)

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	services *container.Container
	log      *zap.SugaredLogger
}

// NewBot создаёт нового бота
func NewBot(token string, services *container.Container, log *zap.SugaredLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Infow("authorized on account", "username", api.Self.UserName)

	return &Bot{
		api:      api,
		services: services,
		log:      log,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	// Обработка снимка
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	// Текстовое сообщение — вопрос к ассистенту
	if msg.Text != "" {
		b.handleText(ctx, msg)
	}
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendMessage(msg.Chat.ID, fmt.Sprintf(msgWelcome, msg.From.FirstName))

	case "help":
		b.sendMarkdown(msg.Chat.ID, msgHelp)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handlePhoto обрабатывает входящий снимок
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	b.sendMessage(msg.Chat.ID, msgAnalyzing)

	// Берём файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		b.log.Errorw("failed to download photo", "chat_id", msg.Chat.ID, "error", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	report, err := b.services.Analysis.Analyze(ctx, msg.Chat.ID, imageData)
	if err != nil {
		b.log.Errorw("failed to analyze scan", "chat_id", msg.Chat.ID, "error", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	if len(report.Annotated) > 0 {
		reply := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{
			Name:  "annotated_scan.jpeg",
			Bytes: report.Annotated,
		})
		reply.Caption = report.Caption
		reply.ParseMode = tgbotapi.ModeMarkdown

		_, sendErr := b.api.Send(reply)
		if sendErr == nil {
			return
		}
		// Картинку отправить не удалось — отдаём хотя бы текстовый итог.
		b.log.Errorw("failed to send annotated scan", "chat_id", msg.Chat.ID, "error", sendErr)
	}

	b.sendMarkdown(msg.Chat.ID, report.Caption)
}

// handleText отвечает на вопрос: сначала заглушка, потом редактируем её готовым ответом
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	placeholder, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, msgThinking))
	if err != nil {
		b.log.Errorw("failed to send placeholder", "chat_id", msg.Chat.ID, "error", err)
		return
	}

	answer := b.services.Advisor.Answer(ctx, msg.Chat.ID, msg.Text)

	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, placeholder.MessageID, answer)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(edit); err != nil {
		b.log.Errorw("failed to edit answer", "chat_id", msg.Chat.ID, "error", err)
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Errorw("failed to send message", "chat_id", chatID, "error", err)
	}
}

// sendMarkdown отправляет сообщение с markdown-разметкой
func (b *Bot) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		b.log.Errorw("failed to send message", "chat_id", chatID, "error", err)
	}
}
