package scheduler

import (
	"time"

	"github.com/platewise/platewise/pkg/availability"
	"github.com/platewise/platewise/pkg/catalog"
	"github.com/platewise/platewise/pkg/config"
	"github.com/platewise/platewise/pkg/foodlog"
	"github.com/platewise/platewise/pkg/logger"
	"github.com/platewise/platewise/pkg/match"
	"github.com/platewise/platewise/pkg/messages"
	"github.com/platewise/platewise/pkg/models"
	"github.com/platewise/platewise/pkg/pantry"
	"github.com/platewise/platewise/pkg/storage"
	"github.com/platewise/platewise/pkg/telegram"
)

const (
	// digestHour is when the evening recipe digest goes out
	digestHour = 17
	// reminderHour is when streak reminders go out
	reminderHour = 20
)

// Service runs the daily background jobs
type Service struct {
	store          *storage.Store
	bot            *telegram.Bot
	pantryService  *pantry.Service
	catalogService *catalog.Service
	foodlogService *foodlog.Service
	messageService *messages.Service
	engineConfig   *config.EngineConfig
	matcher        match.Matcher
	logger         *logger.Logger
	stopChan       chan struct{}
}

// New creates a new scheduler service
func New(
	store *storage.Store,
	bot *telegram.Bot,
	pantryService *pantry.Service,
	catalogService *catalog.Service,
	foodlogService *foodlog.Service,
	messageService *messages.Service,
	engineConfig *config.EngineConfig,
	matcher match.Matcher,
) *Service {
	return &Service{
		store:          store,
		bot:            bot,
		pantryService:  pantryService,
		catalogService: catalogService,
		foodlogService: foodlogService,
		messageService: messageService,
		engineConfig:   engineConfig,
		matcher:        matcher,
		logger:         logger.New("scheduler"),
		stopChan:       make(chan struct{}),
	}
}

// Start starts the scheduler
func (s *Service) Start() {
	s.logger.Info("Starting daily schedulers")

	go s.runDailyJob(digestHour, "evening digest", s.sendEveningDigest)
	go s.runDailyJob(reminderHour, "streak reminder", s.sendStreakReminder)
}

// Stop stops the scheduler
func (s *Service) Stop() {
	s.logger.Info("Stopping daily schedulers")
	close(s.stopChan)
}

// runDailyJob invokes job for every known chat once a day at the given hour
func (s *Service) runDailyJob(hour int, name string, job func(chatID int64)) {
	s.logger.Info("Starting daily %s job (at %02d:00)", name, hour)

	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	var lastRun time.Time

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			if now.Hour() != hour || sameDay(now, lastRun) {
				continue
			}
			lastRun = now

			s.logger.Info("Running daily %s job", name)
			for _, chatID := range s.knownChats() {
				job(chatID)
			}
		case <-s.stopChan:
			return
		}
	}
}

// knownChats returns the IDs of every chat with persisted state
func (s *Service) knownChats() []int64 {
	chatKeys, err := s.store.List("chat:")
	if err != nil {
		s.logger.Error("Failed to list chats: %v", err)
		return nil
	}

	chats := make([]int64, 0, len(chatKeys))
	for _, key := range chatKeys {
		var chatState models.ChatState
		if err := s.store.Get(key, &chatState); err != nil {
			s.logger.Error("Failed to get chat state %s: %v", key, err)
			continue
		}
		chats = append(chats, chatState.ChatID)
	}

	return chats
}

// sendEveningDigest sends a chat its best recipe matches for tonight
func (s *Service) sendEveningDigest(chatID int64) {
	observed, err := s.pantryService.ListIngredientNames(chatID)
	if err != nil {
		s.logger.Error("Failed to list pantry for chat %d: %v", chatID, err)
		return
	}
	if len(observed) == 0 {
		return
	}

	recipes, err := s.catalogService.List()
	if err != nil {
		s.logger.Error("Failed to list catalog: %v", err)
		return
	}

	matches := availability.Score(s.matcher, recipes, observed, s.engineConfig.MinMatchPct, nil)
	if len(matches) == 0 {
		return
	}

	if _, err := s.bot.SendMessage(chatID, s.messageService.RecipeSuggestions(matches)); err != nil {
		s.logger.Error("Failed to send digest to chat %d: %v", chatID, err)
	}
}

// sendStreakReminder nudges chats that have an active streak but no log
// entry yet today
func (s *Service) sendStreakReminder(chatID int64) {
	now := time.Now()

	current, err := s.foodlogService.Streak(chatID, now)
	if err != nil {
		s.logger.Error("Failed to compute streak for chat %d: %v", chatID, err)
		return
	}
	if current == 0 {
		return
	}

	// No reminder needed when today is already logged
	entries, err := s.foodlogService.List(chatID)
	if err != nil {
		s.logger.Error("Failed to list log for chat %d: %v", chatID, err)
		return
	}
	loggedToday := false
	for _, entry := range entries {
		if sameDay(entry.Date, now) {
			loggedToday = true
			break
		}
	}
	if loggedToday {
		return
	}

	text := s.messageService.StreakUpdate(current) + "\nLog today's meal with /log to keep the streak alive."
	if _, err := s.bot.SendMessage(chatID, text); err != nil {
		s.logger.Error("Failed to send reminder to chat %d: %v", chatID, err)
	}
}

// sameDay reports whether two times fall on the same calendar day
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
