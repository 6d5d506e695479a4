package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"meal-planner/internal/app"
	"meal-planner/internal/catalog"
	"meal-planner/internal/config"
	"meal-planner/internal/metrics"
	"meal-planner/internal/planner"
	"meal-planner/internal/storage"
)

type fakeSender struct {
	sent      []tgbotapi.Chattable
	callbacks []tgbotapi.CallbackConfig
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if cb, ok := c.(tgbotapi.CallbackConfig); ok {
		f.callbacks = append(f.callbacks, cb)
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) lastMessage(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	if len(f.sent) == 0 {
		t.Fatal("Expected a message to be sent")
	}
	msg, ok := f.sent[len(f.sent)-1].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("Expected MessageConfig, got %T", f.sent[len(f.sent)-1])
	}
	return msg
}

type fakeActivity struct {
	activity []metrics.DailyActivity
	err      error
}

func (f fakeActivity) GetDailyActivity(ctx context.Context, days int) ([]metrics.DailyActivity, error) {
	return f.activity, f.err
}

const (
	userID  int64 = 100
	adminID int64 = 200
	chatID  int64 = 42
)

func newTestBot(t *testing.T, activity ActivityReader) (*Bot, *fakeSender) {
	t.Helper()
	n := 0
	gen := planner.NewGenerator(
		catalog.Default(),
		planner.WithClock(func() time.Time { return time.Date(2025, time.January, 8, 12, 0, 0, 0, time.UTC) }),
		planner.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("plan-%d", n)
		}),
	)
	a := app.NewApp(planner.NewManager(storage.NewMemoryHistoryStore(), gen), catalog.Default(), nil)
	cfg := &config.Config{
		DataDir:                t.TempDir(),
		TelegramAllowedUserIDs: []int64{userID},
		AdminTelegramID:        adminID,
	}
	sender := &fakeSender{}
	return newBot(sender, cfg, a, activity), sender
}

func command(from int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From:     &tgbotapi.User{ID: from},
		Chat:     &tgbotapi.Chat{ID: chatID},
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}},
	}}
}

func callback(from int64, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb-1",
		From: &tgbotapi.User{ID: from},
		Data: data,
		Message: &tgbotapi.Message{
			MessageID: 7,
			Chat:      &tgbotapi.Chat{ID: chatID},
		},
	}}
}

func TestBot_GenerateAndSelect(t *testing.T) {
	ctx := context.Background()
	bot, sender := newTestBot(t, fakeActivity{})

	bot.HandleUpdate(ctx, command(userID, "/generar"))
	first := sender.lastMessage(t)
	if !strings.Contains(first.Text, "*Esta Semana*") || !strings.Contains(first.Text, "_Ene 6 - 12, 2025_") {
		t.Errorf("Unexpected plan message: %s", first.Text)
	}
	if first.ReplyMarkup != nil {
		t.Error("Expected no keyboard without variations")
	}

	bot.HandleUpdate(ctx, command(userID, "/plan"))
	second := sender.lastMessage(t)
	keyboard, ok := second.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("Expected inline keyboard, got %T", second.ReplyMarkup)
	}
	row := keyboard.InlineKeyboard[0]
	if len(row) != 2 || row[0].Text != "Original" || row[1].Text != "✓ Var. 1" {
		t.Errorf("Unexpected keyboard %+v", row)
	}
	if *row[0].CallbackData != "select|plan-1" {
		t.Errorf("Expected callback 'select|plan-1', got %s", *row[0].CallbackData)
	}

	bot.HandleUpdate(ctx, callback(userID, "select|plan-1"))
	edit, ok := sender.sent[len(sender.sent)-1].(tgbotapi.EditMessageTextConfig)
	if !ok {
		t.Fatalf("Expected message edit, got %T", sender.sent[len(sender.sent)-1])
	}
	if edit.MessageID != 7 || edit.ReplyMarkup == nil {
		t.Fatalf("Unexpected edit %+v", edit)
	}
	if edit.ReplyMarkup.InlineKeyboard[0][0].Text != "✓ Original" {
		t.Errorf("Expected original to be marked, got %+v", edit.ReplyMarkup.InlineKeyboard[0])
	}
	if len(sender.callbacks) != 1 || sender.callbacks[0].Text != "" {
		t.Errorf("Expected one silent callback answer, got %+v", sender.callbacks)
	}

	bot.HandleUpdate(ctx, callback(userID, "select|nonexistent-id"))
	if got := sender.callbacks[len(sender.callbacks)-1].Text; got != app.MsgSelectNotFound {
		t.Errorf("Expected callback text %q, got %q", app.MsgSelectNotFound, got)
	}
}

func TestBot_Commands(t *testing.T) {
	ctx := context.Background()
	bot, sender := newTestBot(t, fakeActivity{})

	bot.HandleUpdate(ctx, command(userID, "/semana"))
	if got := sender.lastMessage(t).Text; !strings.Contains(got, "No hay un plan de comidas generado") {
		t.Errorf("Expected empty week message, got %s", got)
	}

	bot.HandleUpdate(ctx, command(userID, "/historial"))
	if got := sender.lastMessage(t).Text; !strings.Contains(got, "Sin semanas anteriores") {
		t.Errorf("Expected empty history message, got %s", got)
	}

	bot.HandleUpdate(ctx, command(userID, "/opciones"))
	if got := sender.lastMessage(t).Text; !strings.Contains(got, "40 opciones") || !strings.Contains(got, "*Almuerzos* (14)") {
		t.Errorf("Unexpected options message: %s", got)
	}

	bot.HandleUpdate(ctx, command(userID, "/generar"))
	bot.HandleUpdate(ctx, command(userID, "/limpiar"))
	if got := sender.lastMessage(t).Text; got != "🗑️ Historial borrado." {
		t.Errorf("Unexpected clear message: %s", got)
	}

	bot.HandleUpdate(ctx, command(userID, "/start"))
	if got := sender.lastMessage(t).Text; got != helpText {
		t.Errorf("Expected help text, got %s", got)
	}
}

func TestBot_Authorization(t *testing.T) {
	ctx := context.Background()
	bot, sender := newTestBot(t, fakeActivity{activity: []metrics.DailyActivity{
		{Date: "2025-01-08", Plans: 1, Variations: 2, Total: 3},
	}})

	bot.HandleUpdate(ctx, command(999, "/generar"))
	bot.HandleUpdate(ctx, callback(999, "select|plan-1"))
	if len(sender.sent) != 0 || len(sender.callbacks) != 0 {
		t.Fatalf("Expected strangers to be ignored, got %d messages", len(sender.sent))
	}

	bot.HandleUpdate(ctx, command(userID, "/metrics"))
	if got := sender.lastMessage(t).Text; !strings.Contains(got, "Acceso denegado") {
		t.Errorf("Expected access denied, got %s", got)
	}

	bot.HandleUpdate(ctx, command(adminID, "/metrics"))
	got := sender.lastMessage(t).Text
	if !strings.Contains(got, "*2025-01-08*: 1 planes, 2 variaciones") || !strings.Contains(got, "goroutines") {
		t.Errorf("Unexpected metrics report: %s", got)
	}
}

func TestBot_MetricsError(t *testing.T) {
	bot, sender := newTestBot(t, fakeActivity{err: errors.New("db closed")})

	bot.HandleUpdate(context.Background(), command(adminID, "/metrics"))
	if got := sender.lastMessage(t).Text; !strings.Contains(got, "Error al obtener métricas") {
		t.Errorf("Expected metrics error, got %s", got)
	}
}

func TestFormatPlanMarkdown(t *testing.T) {
	c := catalog.Default()
	plan := &planner.WeeklyMealPlan{
		StartDate: "2025-01-27",
		EndDate:   "2025-02-02",
		Meals: []planner.DayMeal{{
			Day: catalog.Monday,
			Breakfast: planner.Breakfast{
				Drink: c.Drinks[0],
				Bread: c.Breads[0],
				Fruit: catalog.FoodItem{ID: "x", Name: "Kiwi"},
			},
			Lunch: c.Lunches[0],
		}},
	}

	out := formatPlanMarkdown(plan, "Esta Semana")

	if !strings.HasPrefix(out, "📅 *Esta Semana*\n_Ene 27 - Feb 2, 2025_") {
		t.Errorf("Missing plan header: %s", out)
	}
	if !strings.Contains(out, "*Lunes*") {
		t.Error("Missing day heading")
	}
	if !strings.Contains(out, "☕ Café, 🥑 Pan con Palta, Kiwi") {
		t.Errorf("Missing breakfast line: %s", out)
	}
	if !strings.Contains(out, "🍽️ 🍲 Lentejas") {
		t.Errorf("Missing lunch line: %s", out)
	}
}

func TestVariationKeyboard_Rows(t *testing.T) {
	current := &planner.WeeklyMealPlan{ID: "p"}
	for i := 1; i <= 5; i++ {
		current.Variations = append(current.Variations, planner.WeeklyMealPlan{ID: fmt.Sprintf("v%d", i)})
	}
	current.SelectedVariationID = "stale-id"

	keyboard := variationKeyboard(current)
	if keyboard == nil {
		t.Fatal("Expected a keyboard")
	}
	if len(keyboard.InlineKeyboard) != 2 || len(keyboard.InlineKeyboard[0]) != 4 || len(keyboard.InlineKeyboard[1]) != 2 {
		t.Errorf("Expected rows of 4 and 2 buttons, got %+v", keyboard.InlineKeyboard)
	}
	// A stale selection falls back to the original.
	if keyboard.InlineKeyboard[0][0].Text != "✓ Original" {
		t.Errorf("Expected original marked, got %s", keyboard.InlineKeyboard[0][0].Text)
	}

	if variationKeyboard(&planner.WeeklyMealPlan{ID: "p"}) != nil {
		t.Error("Expected no keyboard without variations")
	}
}
