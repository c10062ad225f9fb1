package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DeliveryHandler define o contrato do processamento de entregas. A
// camada de usecase implementa; o worker só cuida do ciclo de ack/nack.
type DeliveryHandler interface {
	HandleDelivery(ctx context.Context, payload DeliveryPayload) error
}

type Worker struct {
	Channel *amqp.Channel
	Handler DeliveryHandler
}

func NewWorker(ch *amqp.Channel, handler DeliveryHandler) *Worker {
	return &Worker{
		Channel: ch,
		Handler: handler,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			log.Printf("📥 [WORKER] Mensagem Recebida do RabbitMQ")

			var payload DeliveryPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Processando entrega %s (%s)", payload.MessageID, payload.Kind)

			if err := w.Handler.HandleDelivery(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Erro na entrega: %s", err)
				// Entregas com dado inexistente ou SMTP fora não ganham
				// requeue: vão para a DLQ para inspeção manual.
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Entrega %s concluída.", payload.MessageID)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
