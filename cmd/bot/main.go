package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/platewise/platewise/pkg/availability"
	"github.com/platewise/platewise/pkg/catalog"
	"github.com/platewise/platewise/pkg/config"
	"github.com/platewise/platewise/pkg/foodlog"
	"github.com/platewise/platewise/pkg/logger"
	"github.com/platewise/platewise/pkg/match"
	"github.com/platewise/platewise/pkg/messages"
	"github.com/platewise/platewise/pkg/models"
	"github.com/platewise/platewise/pkg/openai"
	"github.com/platewise/platewise/pkg/pantry"
	"github.com/platewise/platewise/pkg/poll"
	"github.com/platewise/platewise/pkg/pricing"
	"github.com/platewise/platewise/pkg/profile"
	"github.com/platewise/platewise/pkg/scheduler"
	"github.com/platewise/platewise/pkg/similar"
	"github.com/platewise/platewise/pkg/state"
	"github.com/platewise/platewise/pkg/storage"
	"github.com/platewise/platewise/pkg/telegram"
)

func main() {
	log := logger.Global
	log.Info("Starting PlateWise bot...")

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	engineCfg, err := config.LoadEngineConfig(cfg.EngineConfigPath)
	if err != nil {
		log.Error("Failed to load engine configuration: %v", err)
		os.Exit(1)
	}

	// Initialize storage
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Error("Failed to initialize storage: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	// Start BadgerDB garbage collection
	store.StartGCRoutine(10 * time.Minute)

	// Initialize the engine pieces
	matcher := match.NewLexical()
	estimator, err := pricing.NewEstimator(engineCfg.PriceCategories)
	if err != nil {
		log.Error("Invalid price table: %v", err)
		os.Exit(1)
	}

	// Initialize OpenAI client and services
	openaiClient := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIAPIBase, cfg.OpenAIModel)

	pantryService := pantry.New(store)
	catalogService := catalog.New(store, openaiClient)
	foodlogService := foodlog.New(store)
	profileService := profile.New(store)
	pollService := poll.New(store)
	messageService := messages.New(openaiClient)
	stateManager := state.New()

	if err := catalogService.EnsureSeeded(); err != nil {
		log.Error("Failed to seed catalog: %v", err)
		os.Exit(1)
	}

	// Initialize Telegram bot
	bot, err := telegram.New(cfg.BotToken)
	if err != nil {
		log.Error("Failed to initialize Telegram bot: %v", err)
		os.Exit(1)
	}

	// suggestRecipes scores the catalog against the chat's pantry,
	// narrowed by the requesting user's dietary tags when set
	suggestRecipes := func(chatID int64, userID string) ([]models.MatchResult, error) {
		observed, err := pantryService.ListIngredientNames(chatID)
		if err != nil {
			return nil, err
		}
		if len(observed) == 0 {
			return nil, nil
		}

		recipes, err := catalogService.List()
		if err != nil {
			return nil, err
		}

		var dietaryFilter []string
		if userID != "" {
			if prof, err := profileService.Get(userID); err == nil {
				dietaryFilter = prof.DietaryTags
			}
		}

		return availability.Score(matcher, recipes, observed, engineCfg.MinMatchPct, dietaryFilter), nil
	}

	commandHandlers := map[string]telegram.CommandHandler{
		"start": func(message *tgbotapi.Message) {
			bot.SendMessage(message.Chat.ID, messageService.Welcome())
		},
		"pantry": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			ingredients, err := pantryService.ListIngredientNames(chatID)
			if err != nil {
				log.Error("Failed to list pantry: %v", err)
				bot.SendMessage(chatID, messageService.Error("retrieve pantry contents"))
				return
			}

			if len(ingredients) == 0 {
				bot.SendMessage(chatID, messageService.EmptyPantry())
				return
			}

			bot.SendMessage(chatID, messageService.PantryContents(ingredients))
		},
		"sync_pantry": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			if err := pantryService.Reset(chatID); err != nil {
				log.Error("Failed to reset pantry: %v", err)
				bot.SendMessage(chatID, messageService.Error("reset pantry"))
				return
			}

			stateManager.Set(chatID, state.StateAddingPantry)
			bot.SendMessage(chatID, "🧹 Pantry reset! Now send me what you have, as text or as a photo of your fridge. You can send several messages.")
		},
		"recipes": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			matches, err := suggestRecipes(chatID, userKey(message.From))
			if err != nil {
				log.Error("Failed to suggest recipes: %v", err)
				bot.SendMessage(chatID, messageService.Error("suggest recipes"))
				return
			}

			if len(matches) == 0 {
				bot.SendMessage(chatID, "😢 Nothing in the catalog matches your pantry yet. Add more ingredients with /sync_pantry.")
				return
			}

			bot.SendMessage(chatID, formatMatches(matches))
		},
		"similar": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			query := strings.TrimSpace(message.CommandArguments())
			if query == "" {
				bot.SendMessage(chatID, "Tell me which recipe, e.g. /similar greek salad")
				return
			}

			reference, err := catalogService.FindByName(query)
			if err != nil {
				bot.SendMessage(chatID, fmt.Sprintf("I don't know %q yet. Add it with /addrecipe %s", query, query))
				return
			}

			recipes, err := catalogService.List()
			if err != nil {
				log.Error("Failed to list catalog: %v", err)
				bot.SendMessage(chatID, messageService.Error("find similar recipes"))
				return
			}

			similarRecipes := similar.Rank(matcher, engineCfg.Similarity, *reference, recipes, engineCfg.SimilarCount)
			if len(similarRecipes) == 0 {
				bot.SendMessage(chatID, fmt.Sprintf("Nothing in the catalog resembles %s yet.", reference.Name))
				return
			}

			bot.SendMessage(chatID, formatSimilar(*reference, similarRecipes))
		},
		"addrecipe": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			dishName := strings.TrimSpace(message.CommandArguments())
			if dishName == "" {
				bot.SendMessage(chatID, "Tell me the dish name, e.g. /addrecipe shakshuka")
				return
			}

			recipe, err := catalogService.AddByName(dishName)
			if err != nil {
				log.Error("Failed to add recipe %q: %v", dishName, err)
				bot.SendMessage(chatID, messageService.Error("add recipe"))
				return
			}

			bot.SendMessage(chatID, fmt.Sprintf("✅ Added %s (%s, %d kcal) to the catalog.", recipe.Name, recipe.CuisineType, recipe.Calories))
		},
		"basket": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			args := strings.TrimSpace(message.CommandArguments())

			if args == "" {
				stateManager.Set(chatID, state.StateBuildingBasket)
				bot.SendMessage(chatID, "🛒 Send me your shopping list, one item per line (e.g. \"2 chicken breast\").")
				return
			}

			handleBasket(bot, estimator, messageService, chatID, args)
		},
		"log": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			args := strings.TrimSpace(message.CommandArguments())

			if args == "" {
				stateManager.Set(chatID, state.StateLoggingMeal)
				bot.SendMessage(chatID, "🍴 What did you eat? Send me the meal, e.g. \"grilled salmon with rice\".")
				return
			}

			logMeal(bot, foodlogService, openaiClient, messageService, message, args)
		},
		"streak": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			days, err := foodlogService.Streak(chatID, time.Now())
			if err != nil {
				log.Error("Failed to compute streak: %v", err)
				bot.SendMessage(chatID, messageService.Error("compute streak"))
				return
			}

			bot.SendMessage(chatID, messageService.StreakUpdate(days))
		},
		"profile": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			prof, err := profileService.Get(userKey(message.From))
			if err != nil {
				log.Error("Failed to get profile: %v", err)
				bot.SendMessage(chatID, messageService.Error("retrieve your profile"))
				return
			}

			var b strings.Builder
			b.WriteString("👤 Your profile:\n")
			if len(prof.DietaryTags) > 0 {
				fmt.Fprintf(&b, "• Dietary preferences: %s\n", strings.Join(prof.DietaryTags, ", "))
			} else {
				b.WriteString("• No dietary preferences set (/diet)\n")
			}
			if prof.CalorieGoal > 0 {
				fmt.Fprintf(&b, "• Daily goal: %d kcal\n", prof.CalorieGoal)
			} else {
				b.WriteString("• No calorie goal set (/goal)\n")
			}

			bot.SendMessage(chatID, b.String())
		},
		"diet": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			args := strings.TrimSpace(message.CommandArguments())

			if args == "" {
				prof, err := profileService.Get(userKey(message.From))
				if err != nil || len(prof.DietaryTags) == 0 {
					bot.SendMessage(chatID, "No dietary preferences set. Use e.g. /diet vegetarian, gluten-free")
					return
				}
				bot.SendMessage(chatID, "Your dietary preferences: "+strings.Join(prof.DietaryTags, ", "))
				return
			}

			tags := strings.Split(args, ",")
			if err := profileService.SetDietaryTags(userKey(message.From), message.From.UserName, tags); err != nil {
				log.Error("Failed to set dietary tags: %v", err)
				bot.SendMessage(chatID, messageService.Error("update dietary preferences"))
				return
			}

			bot.SendMessage(chatID, "✅ Dietary preferences saved. /recipes will prefer matching dishes when possible.")
		},
		"goal": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			args := strings.TrimSpace(message.CommandArguments())

			goal, err := strconv.Atoi(args)
			if err != nil || goal < 0 {
				bot.SendMessage(chatID, "Give me a daily calorie goal, e.g. /goal 2000")
				return
			}

			if err := profileService.SetCalorieGoal(userKey(message.From), message.From.UserName, goal); err != nil {
				log.Error("Failed to set calorie goal: %v", err)
				bot.SendMessage(chatID, messageService.Error("update calorie goal"))
				return
			}

			bot.SendMessage(chatID, fmt.Sprintf("🎯 Daily goal set to %d kcal.", goal))
		},
		"today": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			total, err := foodlogService.CaloriesOn(chatID, time.Now())
			if err != nil {
				log.Error("Failed to sum today's calories: %v", err)
				bot.SendMessage(chatID, messageService.Error("sum today's calories"))
				return
			}

			text := fmt.Sprintf("Today so far: %d kcal.", total)
			if prof, err := profileService.Get(userKey(message.From)); err == nil && prof.CalorieGoal > 0 {
				text = fmt.Sprintf("Today so far: %d of %d kcal.", total, prof.CalorieGoal)
			}
			bot.SendMessage(chatID, text)
		},
		"mealpoll": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			matches, err := suggestRecipes(chatID, userKey(message.From))
			if err != nil {
				log.Error("Failed to suggest recipes: %v", err)
				bot.SendMessage(chatID, messageService.Error("suggest recipes"))
				return
			}

			if len(matches) < 2 {
				bot.SendMessage(chatID, "I need at least two matching recipes to run a poll. Add more pantry items first.")
				return
			}

			// Telegram polls allow at most 10 options, which is also the
			// cap on suggestions
			options := make([]string, len(matches))
			for i, m := range matches {
				options[i] = m.Recipe.Name
			}

			pollMsg, err := bot.CreatePoll(chatID, "What should we cook tonight?", options)
			if err != nil {
				log.Error("Failed to create poll: %v", err)
				bot.SendMessage(chatID, messageService.Error("create poll"))
				return
			}

			pollID := strconv.Itoa(pollMsg.MessageID)
			if pollMsg.Poll != nil {
				pollID = pollMsg.Poll.ID
			}

			if _, err := pollService.Create(chatID, pollID, pollMsg.MessageID, options); err != nil {
				log.Error("Failed to store poll state: %v", err)
			}
		},
		"endpoll": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			activePoll, err := pollService.Active(chatID)
			if err != nil || activePoll == nil {
				bot.SendMessage(chatID, "There's no active meal poll. Start one with /mealpoll.")
				return
			}

			pollID := activePoll.PollID
			results, winner, err := pollService.Results(chatID, pollID)
			if err != nil {
				log.Error("Failed to tally poll: %v", err)
				bot.SendMessage(chatID, messageService.Error("tally poll"))
				return
			}

			if err := pollService.End(chatID, pollID, winner); err != nil {
				log.Error("Failed to end poll: %v", err)
			}

			if winner == "" {
				bot.SendMessage(chatID, "Nobody voted, so no winner tonight. 🤷")
				return
			}

			bot.SendMessage(chatID, fmt.Sprintf("🏆 %s wins with %d vote(s)! Enjoy cooking.", winner, results[winner]))
		},
	}

	callbackHandlers := map[string]telegram.CallbackHandler{
		"done_adding": func(callback *tgbotapi.CallbackQuery) {
			chatID := callback.Message.Chat.ID

			stateManager.Clear(chatID)
			bot.AnswerCallbackQuery(callback.ID, "Thanks! Your pantry is now updated.")
			bot.EditMessage(chatID, callback.Message.MessageID, "✅ Pantry update complete! Use /pantry to review it or /recipes to see what you can cook.")
		},
		"add_more": func(callback *tgbotapi.CallbackQuery) {
			chatID := callback.Message.Chat.ID

			bot.AnswerCallbackQuery(callback.ID, "Please send more items!")
			bot.EditMessage(chatID, callback.Message.MessageID, "Please send more items. I'll add them to your pantry.")
		},
	}

	pollAnswerHandler := func(answer *tgbotapi.PollAnswer) {
		chatID, err := pollService.ChatForPoll(answer.PollID)
		if err != nil {
			log.Error("Poll answer for unknown poll %s: %v", answer.PollID, err)
			return
		}

		activePoll, err := pollService.Active(chatID)
		if err != nil || activePoll == nil {
			return
		}

		for _, optionIdx := range answer.OptionIDs {
			if optionIdx < 0 || optionIdx >= len(activePoll.Options) {
				continue
			}
			option := activePoll.Options[optionIdx]
			if err := pollService.RecordVote(chatID, answer.PollID, userKey(&answer.User), option); err != nil {
				log.Error("Failed to record vote: %v", err)
			}
		}
	}

	defaultHandler := func(update tgbotapi.Update) {
		if update.Message == nil || update.Message.IsCommand() {
			return
		}

		chatID := update.Message.Chat.ID

		// Photos feed the pantry regardless of conversation state
		if len(update.Message.Photo) > 0 {
			photo := update.Message.Photo[len(update.Message.Photo)-1]
			photoURL, err := bot.FileURL(photo.FileID)
			if err != nil {
				log.Error("Failed to resolve photo URL: %v", err)
				bot.SendMessage(chatID, messageService.Error("read the photo"))
				return
			}

			ingredients, err := openaiClient.ExtractIngredientsFromPhoto(photoURL)
			if err != nil {
				log.Error("Failed to extract ingredients: %v", err)
				bot.SendMessage(chatID, "😢 I couldn't make out any ingredients in that photo. Try a clearer shot or send a text list.")
				return
			}

			if err := pantryService.AddIngredients(chatID, ingredients); err != nil {
				log.Error("Failed to add ingredients: %v", err)
				bot.SendMessage(chatID, messageService.Error("update the pantry"))
				return
			}

			bot.SendMessage(chatID, fmt.Sprintf("✅ Spotted %d ingredients and added them to your pantry: %s",
				len(ingredients), strings.Join(ingredients, ", ")))
			return
		}

		text := update.Message.Text
		if text == "" {
			return
		}

		switch stateManager.Get(chatID) {
		case state.StateAddingPantry:
			ingredients, err := openaiClient.ParseIngredientsFromText(text)
			if err != nil {
				log.Error("Failed to parse ingredients: %v", err)
				bot.SendMessage(chatID, "😢 Sorry, I couldn't understand the ingredients. Please try again with a clearer list.")
				return
			}

			if len(ingredients) == 0 {
				bot.SendMessage(chatID, "I couldn't find any ingredients in your message. Please try again.")
				return
			}

			if err := pantryService.AddIngredients(chatID, ingredients); err != nil {
				log.Error("Failed to add ingredients: %v", err)
				bot.SendMessage(chatID, messageService.Error("update the pantry"))
				return
			}

			bot.SendMessage(chatID, fmt.Sprintf("✅ Added %d ingredients to your pantry: %s", len(ingredients), strings.Join(ingredients, ", ")))

			keyboard := tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData("Done adding items", "done_adding"),
					tgbotapi.NewInlineKeyboardButtonData("Add more", "add_more"),
				),
			)
			bot.SendMessageWithKeyboard(chatID, "Would you like to add more items or are you done?", keyboard)

		case state.StateLoggingMeal:
			stateManager.Clear(chatID)
			logMeal(bot, foodlogService, openaiClient, messageService, update.Message, text)

		case state.StateBuildingBasket:
			stateManager.Clear(chatID)
			handleBasket(bot, estimator, messageService, chatID, text)
		}
	}

	// Start the daily schedulers
	schedulerService := scheduler.New(store, bot, pantryService, catalogService, foodlogService, messageService, engineCfg, matcher)
	schedulerService.Start()
	defer schedulerService.Stop()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutting down...")
		schedulerService.Stop()
		store.Close()
		os.Exit(0)
	}()

	// Start the bot
	log.Info("Bot is now running. Press CTRL-C to exit.")
	if err := bot.Start(telegram.Handlers{
		Commands:   commandHandlers,
		Callbacks:  callbackHandlers,
		PollAnswer: pollAnswerHandler,
		Default:    defaultHandler,
	}); err != nil {
		log.Error("Error running bot: %v", err)
		os.Exit(1)
	}
}
