package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	httpin "github.com/suchimauz/interview-availability-service/internal/adapters/in/http"
	"github.com/suchimauz/interview-availability-service/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/interview-availability-service/internal/adapters/out/cache"
	"github.com/suchimauz/interview-availability-service/internal/adapters/out/calendar"
	"github.com/suchimauz/interview-availability-service/internal/adapters/out/logger"
	"github.com/suchimauz/interview-availability-service/internal/config"
	"github.com/suchimauz/interview-availability-service/internal/core/ports/out"
	"github.com/suchimauz/interview-availability-service/internal/core/services/availability_service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := mainLogger.WithModule("Main")

	logger.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMq.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
		"calendarMock":    cfg.Calendar.Mock,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация адаптеров: локально можно работать от календаря-заглушки
	var calendarAdapter out.CalendarPort
	if cfg.Calendar.Mock {
		calendarAdapter = calendar.NewMockCalendarAdapter(cfg, logger.WithModule("MockCalendarAdapter"))
	} else {
		calendarAdapter = calendar.NewCalendarAdapter(cfg, logger.WithModule("CalendarAdapter"))
	}

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		var err error
		cacheAdapter, err = cache.NewCacheAdapter(cfg, logger.WithModule("CacheAdapter"))
		if err != nil {
			logger.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	// Инициализация сервиса
	availabilityService := availability_service.NewAvailabilityService(
		calendarAdapter,
		cacheAdapter,
		cfg,
		logger.WithModule("AvailabilityService"),
	)

	// Настройка HTTP сервера
	router := gin.Default()
	controller := httpin.NewAvailabilityController(availabilityService, cfg)
	controller.RegisterRoutes(router)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMq.Enabled {
		listener, err := rabbitmq.NewCacheHitListener(
			availabilityService,
			cfg,
			logger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			logger.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			logger.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				logger.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			logger.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	logger.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})

	// Дополнительное логирование для разработки
	if cfg.IsLocal() {
		logger.Debug("app.config.debug", out.LogFields{
			"config": map[string]interface{}{
				"http": map[string]string{
					"host": cfg.HTTP.Host,
					"port": cfg.HTTP.Port,
				},
				"calendar": map[string]interface{}{
					"url":  cfg.Calendar.URL,
					"mock": cfg.Calendar.Mock,
				},
				"rabbitmq": map[string]interface{}{
					"enabled": cfg.RabbitMq.Enabled,
				},
				"cache": map[string]interface{}{
					"enabled":        cfg.Cache.Enabled,
					"templates_size": cfg.Cache.TemplatesSize,
					"freebusy_size":  cfg.Cache.FreeBusySize,
				},
				"availability": map[string]int{
					"search_days":     cfg.Availability.SearchDays,
					"work_start_hour": cfg.Availability.WorkStartHour,
					"work_end_hour":   cfg.Availability.WorkEndHour,
					"lead_hours":      cfg.Availability.LeadHours,
				},
			},
		})
	}
}
