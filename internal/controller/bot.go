package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/handlers"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/state"
	"github.com/v7s7/DaresniCheckUpdated/internal/service"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	searchService *service.SearchService,
	availabilityService *service.AvailabilityService,
	profileService *service.ProfileService,
	logger *zap.Logger,
) *BotController {
	// Менеджер состояний хранит и сессии редактора доступности
	stateManager := state.NewManager()

	cmdHandlers := handlers.NewHandlers(
		userService,
		searchService,
		availabilityService,
		profileService,
		stateManager,
		logger,
	)

	// Создаём адаптер для callback handlers
	stateAdapter := state.NewAdapter(stateManager)

	callbackHandler := callbacks.NewHandler(
		userService,
		searchService,
		availabilityService,
		profileService,
		stateAdapter,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Поиск и просмотр недели принимают аргументы
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/search", bot.MatchTypePrefix, c.handlers.HandleSearch)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/week", bot.MatchTypePrefix, c.handlers.HandleWeek)

	// Команды для репетиторов
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/becometutor", bot.MatchTypeExact, c.handlers.HandleBecomeTutor)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/availability", bot.MatchTypeExact, c.handlers.HandleAvailability)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/profile", bot.MatchTypePrefix, c.handlers.HandleProfile)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/addsubject", bot.MatchTypePrefix, c.handlers.HandleAddSubject)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mysubjects", bot.MatchTypeExact, c.handlers.HandleMySubjects)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "help", Description: "❓ Справка по командам"},
		{Command: "search", Description: "🔎 Подобрать репетитора"},
		{Command: "week", Description: "🗓 Свободное время репетитора"},
		{Command: "becometutor", Description: "🎓 Стать репетитором"},
		{Command: "availability", Description: "✏️ Моё свободное время (репетитор)"},
		{Command: "profile", Description: "👤 Мой профиль (репетитор)"},
		{Command: "addsubject", Description: "➕ Добавить предмет (репетитор)"},
		{Command: "mysubjects", Description: "📚 Мои предметы (репетитор)"},
		{Command: "cancel", Description: "✖️ Отменить операцию"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
