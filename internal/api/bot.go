package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"sensor-inspector/internal/container"
	"sensor-inspector/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот для поиска битых пикселей и линий на RAW-кадрах сенсора.

📎 Отправьте RAW-файл без заголовка документом, и я отмечу аномалии.

📋 Команды:
/check — начать проверку кадра
/settings — текущие настройки
/set <ключ> <значение> — изменить настройку
/algorithms — доступные алгоритмы
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Задайте геометрию: /set width 1920, /set height 1080, /set depth 10
2️⃣ Задайте шаблон: /set pattern RGGB (или Mono)
3️⃣ Выберите алгоритм: /set algorithm bad-pixel или bad-line
4️⃣ Параметры алгоритма: /set threshold 200, /set axis Rows
5️⃣ Отправьте /check и затем RAW-файл документом

💡 Рекомендации:
• Отправляйте файл как документ, а не как фото
• 9–16 бит хранятся по два байта, little-endian`

	msgAwaitingRaw     = "📎 Отправьте RAW-файл документом для проверки."
	msgCancelled       = "❌ Операция отменена. Отправьте /check для новой проверки."
	msgSendRaw         = "📎 Пожалуйста, отправьте /check и затем RAW-файл документом."
	msgPhotoNotRaw     = "🖼 Это сжатое фото, а не RAW. Отправьте файл как документ."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgSetUsage        = "✏️ Формат: /set <ключ> <значение>, например /set threshold 200"
	msgProcessing      = "⏳ Обрабатываю кадр..."
	msgNoDefects       = "✅ Аномалии не обнаружены."
	msgProcessingError = "⚠️ Не удалось обработать кадр: %v"
)

// Bot представляет Telegram-бота
type Bot struct {
	api    *tgbotapi.BotAPI
	app    *container.Container
	logger *zap.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, app *container.Container, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	logger.Info("Authorized on account", zap.String("account", api.Self.UserName))

	return &Bot{
		api:    api,
		app:    app,
		logger: logger,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.app.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.logger.Error("Error getting user", zap.Error(err))
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// RAW приходит только документом
	if msg.Document != nil && user.State == entity.StateAwaitingRaw {
		b.handleDocument(ctx, msg)
		return
	}

	if len(msg.Photo) > 0 {
		b.sendMessage(msg.Chat.ID, msgPhotoNotRaw)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendRaw)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	users := b.app.UserService

	switch msg.Command() {
	case "start":
		if _, err := users.Cancel(ctx, user.ID, msg.Chat.ID); err != nil {
			b.logger.Warn("Failed to reset state", zap.Error(err))
		}
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "check":
		if _, err := users.BeginCheck(ctx, user.ID, msg.Chat.ID); err != nil {
			b.logger.Warn("Failed to set state", zap.Error(err))
		}
		b.sendMessage(msg.Chat.ID, msgAwaitingRaw)

	case "cancel":
		if _, err := users.Cancel(ctx, user.ID, msg.Chat.ID); err != nil {
			b.logger.Warn("Failed to reset state", zap.Error(err))
		}
		b.sendMessage(msg.Chat.ID, msgCancelled)

	case "settings":
		b.sendMessage(msg.Chat.ID, formatSession(user.Session))

	case "set":
		fields := strings.Fields(msg.CommandArguments())
		if len(fields) != 2 {
			b.sendMessage(msg.Chat.ID, msgSetUsage)
			return
		}
		updated, err := b.app.InspectionService.Configure(ctx, user.ID, msg.Chat.ID, fields[0], fields[1])
		if err != nil {
			b.sendMessage(msg.Chat.ID, fmt.Sprintf("⚠️ %v", err))
			return
		}
		b.sendMessage(msg.Chat.ID, formatSession(updated.Session))

	case "algorithms":
		b.sendMessage(msg.Chat.ID, b.formatAlgorithms())

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handleDocument скачивает RAW и запускает проверку
func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message) {
	b.sendMessage(msg.Chat.ID, msgProcessing)

	raw, err := b.downloadFile(msg.Document.FileID)
	if err != nil {
		b.logger.Error("Error downloading document", zap.Error(err))
		b.sendMessage(msg.Chat.ID, fmt.Sprintf(msgProcessingError, err))
		if _, err := b.app.UserService.Cancel(ctx, msg.From.ID, msg.Chat.ID); err != nil {
			b.logger.Warn("Failed to reset state", zap.Error(err))
		}
		return
	}

	b.logger.Info("Received raw document",
		zap.Int64("user_id", msg.From.ID),
		zap.String("file", msg.Document.FileName),
		zap.Int("bytes", len(raw)))

	out, err := b.app.InspectionService.InspectUpload(ctx, msg.From.ID, msg.Chat.ID, raw)
	if err != nil {
		b.sendMessage(msg.Chat.ID, fmt.Sprintf(msgProcessingError, err))
		return
	}

	if !out.Result.HasDefects() {
		b.sendMessage(msg.Chat.ID, msgNoDefects)
		return
	}
	if len(out.Highlighted) == 0 {
		b.sendMessage(msg.Chat.ID, out.Result.Message)
		return
	}

	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{Name: b.app.InspectionService.OverlayFileName(), Bytes: out.Highlighted})
	doc.Caption = out.Result.Message
	if _, err := b.api.Send(doc); err != nil {
		b.logger.Error("Error sending overlay", zap.Error(err))
		b.sendMessage(msg.Chat.ID, out.Result.Message)
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

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %s", resp.Status)
	}

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
		b.logger.Error("Error sending message", zap.Error(err))
	}
}

func (b *Bot) formatAlgorithms() string {
	var sb strings.Builder
	for _, d := range b.app.InspectionService.Algorithms() {
		fmt.Fprintf(&sb, "🔍 %s (%s)\n%s\n", d.Name(), d.Key(), d.Description())
		for _, p := range d.Parameters() {
			sb.WriteString("  • " + formatParam(p) + "\n")
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

func formatSession(s entity.Session) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "⚙️ Настройки:\nwidth=%d height=%d depth=%d\npattern=%s\nalgorithm=%s",
		s.Width, s.Height, s.BitDepth, s.Pattern, s.Algorithm)

	keys := make([]string, 0, len(s.Params))
	for k := range s.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "\n%s=%v", k, s.Params[k])
	}
	return sb.String()
}

// formatParam строка схемы параметра для справки
func formatParam(p entity.ParamSpec) string {
	line := fmt.Sprintf("%s (%s): %s, default %v", p.Name, p.Type, p.Label, p.Default)
	if p.Bounded {
		line += fmt.Sprintf(", range [%v, %v]", p.Min, p.Max)
	}
	if len(p.Options) > 0 {
		line += ", options " + strings.Join(p.Options, "/")
	}
	return line
}
