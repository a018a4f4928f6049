package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/interview-availability-service/internal/core/domain"
	"github.com/suchimauz/interview-availability-service/internal/core/ports/out"
)

type CacheFreeBusyMessage struct {
	InterviewerID string                   `json:"interviewer_id"`
	Calendar      *domain.FreeBusyCalendar `json:"calendar,omitempty"`
}

func (l *CacheHitListener) startFreeBusyQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.QueueConfig.FreeBusyQueueName,
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
		l.cfg.RabbitMq.QueueConfig.FreeBusyQueueBind,
		l.cfg.RabbitMq.QueueConfig.FreeBusyQueueExchange,
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
				if err := l.processFreeBusyMessage(ctx, msg); err != nil {
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *CacheHitListener) processFreeBusyMessage(ctx context.Context, msg amqp.Delivery) error {
	cacheMessageRoutingKey, err := l.parseCacheMessageRoutingKey(ctx, msg)
	if err != nil {
		return err
	}

	if cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeFreeBusy {
		return nil
	}

	var msgJson CacheFreeBusyMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	interviewerID, err := uuid.Parse(msgJson.InterviewerID)
	if err != nil {
		return err
	}

	l.logger.Info("freebusy.message.received", out.LogFields{
		"interviewerId": msgJson.InterviewerID,
		"action":        cacheMessageRoutingKey.CacheHitType,
	})

	if cacheMessageRoutingKey.CacheHitType == CacheHitTypeInvalidate {
		go l.useCase.InvalidateFreeBusyCache(ctx, interviewerID)

		l.logger.Info("freebusy.message.invalidated", out.LogFields{
			"interviewerId": msgJson.InterviewerID,
		})
	}

	if cacheMessageRoutingKey.CacheHitType == CacheHitTypeStore && msgJson.Calendar != nil {
		go l.useCase.StoreFreeBusyCache(ctx, *msgJson.Calendar)

		l.logger.Info("freebusy.message.stored", out.LogFields{
			"interviewerId": msgJson.InterviewerID,
		})
	}

	return nil
}
