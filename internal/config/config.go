package config

import (
	"strings"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"UTC"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	// Внешний календарный сервис, отдающий шаблоны интервью и занятость интервьюеров
	Calendar struct {
		URL      string `env:"CALENDAR_URL"`
		Username string `env:"CALENDAR_USERNAME"`
		Password string `env:"CALENDAR_PASSWORD"`
		Mock     bool   `env:"CALENDAR_MOCK"`
		MockSeed int64  `env:"CALENDAR_MOCK_SEED" envDefault:"0"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"availability_service:availability_service"`
		BasicClients       []ConfigBasicClient
	}

	RabbitMq struct {
		Enabled     bool   `env:"RABBITMQ_ENABLED"`
		AmqpUri     string `env:"RABBITMQ_URL"`
		QueueConfig struct {
			TemplateQueueName     string `env:"RABBITMQ_TEMPLATE_QUEUE" envDefault:"availability-svc.interviewtemplate"`
			TemplateQueueBind     string `env:"RABBITMQ_TEMPLATE_QUEUE_BIND" envDefault:"calendar.availability-svc.interviewtemplate.*.*"`
			TemplateQueueExchange string `env:"RABBITMQ_TEMPLATE_QUEUE_EXCHANGE" envDefault:"calendar"`
			FreeBusyQueueName     string `env:"RABBITMQ_FREEBUSY_QUEUE" envDefault:"availability-svc.freebusy"`
			FreeBusyQueueBind     string `env:"RABBITMQ_FREEBUSY_QUEUE_BIND" envDefault:"calendar.availability-svc.freebusy.*.*"`
			FreeBusyQueueExchange string `env:"RABBITMQ_FREEBUSY_QUEUE_EXCHANGE" envDefault:"calendar"`
			AllQueueName          string `env:"RABBITMQ_ALL_QUEUE" envDefault:"availability-svc._all_"`
			AllQueueBind          string `env:"RABBITMQ_ALL_QUEUE_BIND" envDefault:"calendar.availability-svc._all_.*.*"`
			AllQueueExchange      string `env:"RABBITMQ_ALL_QUEUE_EXCHANGE" envDefault:"calendar"`
		}
	}

	Cache struct {
		Enabled       bool `env:"CACHE_ENABLED"`
		TemplatesSize int  `env:"CACHE_TEMPLATES_SIZE" envDefault:"1000"`
		FreeBusySize  int  `env:"CACHE_FREEBUSY_SIZE" envDefault:"1000"`
	}

	// Дефолты поиска доступности, применяются контроллером если параметры не заданы
	Availability struct {
		SearchDays    int `env:"AVAILABILITY_SEARCH_DAYS" envDefault:"7"`
		WorkStartHour int `env:"AVAILABILITY_WORK_START_HOUR" envDefault:"9"`
		WorkEndHour   int `env:"AVAILABILITY_WORK_END_HOUR" envDefault:"17"`
		LeadHours     int `env:"AVAILABILITY_LEAD_HOURS" envDefault:"24"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Разбор клиентов basic-авторизации из строки вида "user:pass,user2:pass2"
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Если RabbitMQ не включен, то кэш тоже не включаем:
	// без инвалидации по событиям кэш быстро протухает
	if !cfg.RabbitMq.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
