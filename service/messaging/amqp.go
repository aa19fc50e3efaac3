package messaging

import (
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/xerrors"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/log"
	"github.com/bidhub/goapi/base/metrics"
)

// Publisher pushes domain events onto the broker. Publishes are
// fire-and-forget, at-least-once delivery to the exchange.
type Publisher interface {
	Publish(c ctx.Ctx, routingKey string, body []byte) error
	Close() error
}

type amqpPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	met      metrics.Service
}

// NewAmqpPublisher connects to the broker and declares a durable topic
// exchange to publish through.
func NewAmqpPublisher(uri, exchange string) (Publisher, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, xerrors.Errorf("failed to dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, xerrors.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, xerrors.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &amqpPublisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		met:      metrics.New("amqp"),
	}, nil
}

// MustNewAmqpPublisher panics when the broker is unreachable.
func MustNewAmqpPublisher(uri, exchange string) Publisher {
	p, err := NewAmqpPublisher(uri, exchange)
	if err != nil {
		log.Log().WithFields(log.Fields{"uri": uri, "err": err}).Panic("fail to dial amqp")
	}
	return p
}

func (p *amqpPublisher) Publish(c ctx.Ctx, routingKey string, body []byte) error {
	defer p.met.BumpTime("publish.time", "routingKey", routingKey).End()

	err := p.channel.Publish(
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        body,
		},
	)
	if err != nil {
		p.met.BumpSum("publish.err", 1, "routingKey", routingKey)
		c.WithFields(log.Fields{
			"err":        err,
			"routingKey": routingKey,
		}).Error("failed to channel.Publish")
		return err
	}
	return nil
}

func (p *amqpPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
