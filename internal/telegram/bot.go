package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"meal-planner/internal/app"
	"meal-planner/internal/config"
	"meal-planner/internal/metrics"
)

// selectPrefix marks variation-selection callback data: "select|<id>".
const selectPrefix = "select|"

const helpText = `🍽️ *Planificador de Comidas*

/generar - Generar el plan semanal (o una variación)
/semana - Ver el plan de esta semana
/historial - Ver semanas anteriores
/opciones - Ver opciones de comida
/limpiar - Borrar el historial`

// Sender is the subset of the Telegram API the bot uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// ActivityReader reports recent generation activity.
type ActivityReader interface {
	GetDailyActivity(ctx context.Context, days int) ([]metrics.DailyActivity, error)
}

// Bot wraps the Telegram API around the meal planner App.
type Bot struct {
	api          Sender
	app          *app.App
	metricsStore ActivityReader
	cfg          *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, a *app.App, metricsStore ActivityReader) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	if webhookURL := cfg.TelegramWebhookURL; webhookURL != "" {
		wh, err := tgbotapi.NewWebhook(webhookURL)
		if err != nil {
			return nil, fmt.Errorf("invalid webhook url %s: %w", webhookURL, err)
		}
		resp, err := bot.Request(wh)
		if err != nil {
			return nil, fmt.Errorf("failed to set webhook to %s: %w", webhookURL, err)
		}
		log.Printf("Webhook set response: %s", resp.Description)
	}

	return newBot(bot, cfg, a, metricsStore), nil
}

func newBot(api Sender, cfg *config.Config, a *app.App, metricsStore ActivityReader) *Bot {
	return &Bot{
		api:          api,
		app:          a,
		metricsStore: metricsStore,
		cfg:          cfg,
	}
}

// WebhookHandler returns the handler Telegram posts updates to.
func (b *Bot) WebhookHandler() http.Handler {
	return http.HandlerFunc(b.handleWebhook)
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Printf("Error parsing update: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Telegram only needs the ack; replies go out through the API.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		b.HandleUpdate(ctx, update)
	}()
}

// HandleUpdate dispatches a single update to the command or callback handler.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		if !b.allowed(update.CallbackQuery.From) {
			return
		}
		b.handleCallbackQuery(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || !b.allowed(update.Message.From) {
		return
	}
	b.processMessage(ctx, update.Message)
}

func (b *Bot) allowed(from *tgbotapi.User) bool {
	if from == nil {
		return false
	}
	if !b.cfg.IsAllowed(from.ID) {
		log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", from.ID, from.UserName)
		return false
	}
	return true
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "generar", "plan":
		b.handleGenerate(ctx, msg.Chat.ID)
	case "semana":
		b.sendCurrentWeek(ctx, msg.Chat.ID)
	case "historial":
		b.handleHistory(ctx, msg.Chat.ID)
	case "opciones":
		b.sendMarkdown(msg.Chat.ID, formatOptionsMarkdown(b.app.Catalog().Data))
	case "limpiar":
		b.handleClear(ctx, msg.Chat.ID)
	case "metrics":
		b.handleMetricsRequest(ctx, msg)
	default:
		b.sendMarkdown(msg.Chat.ID, helpText)
	}
}

func (b *Bot) handleGenerate(ctx context.Context, chatID int64) {
	res := b.app.GenerateNewPlan(ctx)
	if !res.Success {
		b.sendMarkdown(chatID, "❌ "+res.Error)
		return
	}
	b.sendCurrentWeek(ctx, chatID)
}

func (b *Bot) sendCurrentWeek(ctx context.Context, chatID int64) {
	current := b.app.GetHistory(ctx).Data.CurrentWeek
	if current == nil {
		b.sendMarkdown(chatID, "No hay un plan de comidas generado. Usa /generar para crear uno.")
		return
	}

	reply := tgbotapi.NewMessage(chatID, formatPlanMarkdown(current.Displayed(), "Esta Semana"))
	reply.ParseMode = tgbotapi.ModeMarkdown
	if keyboard := variationKeyboard(current); keyboard != nil {
		reply.ReplyMarkup = *keyboard
	}
	if _, err := b.api.Send(reply); err != nil {
		log.Printf("Failed to send plan: %v", err)
	}
}

func (b *Bot) handleHistory(ctx context.Context, chatID int64) {
	b.sendMarkdown(chatID, formatHistoryMarkdown(b.app.GetHistory(ctx).Data.PreviousWeeks))
}

func (b *Bot) handleClear(ctx context.Context, chatID int64) {
	res := b.app.ClearHistory(ctx)
	if !res.Success {
		b.sendMarkdown(chatID, "❌ "+res.Error)
		return
	}
	b.sendMarkdown(chatID, "🗑️ Historial borrado.")
}

func (b *Bot) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	variationID, ok := strings.CutPrefix(query.Data, selectPrefix)
	if !ok || query.Message == nil {
		b.api.Request(tgbotapi.NewCallback(query.ID, ""))
		return
	}

	res := b.app.SelectVariation(ctx, variationID)
	if !res.Success {
		b.api.Request(tgbotapi.NewCallback(query.ID, res.Error))
		return
	}

	// Answer callback to remove spinner
	b.api.Request(tgbotapi.NewCallback(query.ID, ""))

	current := b.app.GetHistory(ctx).Data.CurrentWeek
	if current == nil {
		return
	}
	edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, formatPlanMarkdown(current.Displayed(), "Esta Semana"))
	edit.ParseMode = tgbotapi.ModeMarkdown
	edit.ReplyMarkup = variationKeyboard(current)
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("Failed to edit plan message: %v", err)
	}
}

func (b *Bot) handleMetricsRequest(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || !b.cfg.IsAdmin(msg.From.ID) {
		b.sendMarkdown(msg.Chat.ID, "⛔ *Acceso denegado*: solo administradores.")
		return
	}

	activity, err := b.metricsStore.GetDailyActivity(ctx, 7)
	if err != nil {
		log.Printf("Error fetching metrics: %v", err)
		b.sendMarkdown(msg.Chat.ID, "❌ Error al obtener métricas.")
		return
	}
	b.sendMarkdown(msg.Chat.ID, formatMetricsMarkdown(activity, metrics.GetSysHealth(b.cfg.DataDir)))
}

func (b *Bot) sendMarkdown(chatID int64, text string) {
	reply := tgbotapi.NewMessage(chatID, text)
	reply.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(reply); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}
