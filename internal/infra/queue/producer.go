package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type DeliveryKind string

const (
	// DeliveryWelcome envia o email de boas-vindas com o asset anexado.
	DeliveryWelcome DeliveryKind = "welcome"
	// DeliveryTemplate envia um template para todos os leads do magnet.
	DeliveryTemplate DeliveryKind = "template"
	// DeliverySequence envia a sequência completa para um lead.
	DeliverySequence DeliveryKind = "sequence"
)

type DeliveryPayload struct {
	MessageID    string       `json:"message_id"`
	Kind         DeliveryKind `json:"kind"`
	LeadID       int64        `json:"lead_id,omitempty"`
	LeadMagnetID int64        `json:"lead_magnet_id,omitempty"`
	TemplateID   int64        `json:"template_id,omitempty"`
}

type QueueProducerInterface interface {
	PublishDelivery(ctx context.Context, payload DeliveryPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishDelivery(ctx context.Context, payload DeliveryPayload) error {
	if payload.MessageID == "" {
		payload.MessageID = uuid.New().String()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.delivery
		RoutingKey,   // k.delivery
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    payload.MessageID,
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
