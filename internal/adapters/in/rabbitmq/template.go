package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/interview-availability-service/internal/core/domain"
	"github.com/suchimauz/interview-availability-service/internal/core/ports/out"
)

type CacheTemplateMessage struct {
	TemplateID string                    `json:"template_id"`
	Template   *domain.InterviewTemplate `json:"template,omitempty"`
}

func (l *CacheHitListener) startTemplateQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.QueueConfig.TemplateQueueName,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}
	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMq.QueueConfig.TemplateQueueBind,
		l.cfg.RabbitMq.QueueConfig.TemplateQueueExchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if err := l.processTemplateMessage(ctx, msg); err != nil {
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *CacheHitListener) processTemplateMessage(ctx context.Context, msg amqp.Delivery) error {
	cacheMessageRoutingKey, err := l.parseCacheMessageRoutingKey(ctx, msg)
	if err != nil {
		return err
	}

	if cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeInterviewTemplate {
		return nil
	}

	var msgJson CacheTemplateMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	templateID, err := uuid.Parse(msgJson.TemplateID)
	if err != nil {
		return err
	}

	l.logger.Info("interview_template.message.received", out.LogFields{
		"templateId": msgJson.TemplateID,
		"action":     cacheMessageRoutingKey.CacheHitType,
	})

	if cacheMessageRoutingKey.CacheHitType == CacheHitTypeInvalidate {
		go l.useCase.InvalidateTemplateCache(ctx, templateID)

		l.logger.Info("interview_template.message.invalidated", out.LogFields{
			"templateId": msgJson.TemplateID,
		})
	}

	if cacheMessageRoutingKey.CacheHitType == CacheHitTypeStore && msgJson.Template != nil {
		go l.useCase.StoreTemplateCache(ctx, *msgJson.Template)

		l.logger.Info("interview_template.message.stored", out.LogFields{
			"templateId": msgJson.TemplateID,
		})
	}

	return nil
}
