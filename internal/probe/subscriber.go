package probe

import (
	"Go2FreqSpectra/internal/config"
	"log"

	v1 "Go2FreqSpectra/api/gen/v1"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"
)

// EventHandler is a function that processes a received Event.
type EventHandler func(ev *v1.Event)

// Subscriber is responsible for subscribing to a NATS subject and processing messages.
type Subscriber struct {
	nc      *nats.Conn
	sub     *nats.Subscription
	subject string
}

// NewSubscriber creates a new NATS subscriber.
func NewSubscriber(cfg config.ProbeConfig) (*Subscriber, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &Subscriber{nc: nc, subject: cfg.Subject}, nil
}

// Start subscribes to the given subject and starts processing messages with the provided handler.
func (s *Subscriber) Start(handler EventHandler) error {
	sub, err := s.nc.Subscribe(s.subject, func(msg *nats.Msg) {
		// Decode the protobuf message
		var pbEvent v1.Event
		if err := proto.Unmarshal(msg.Data, &pbEvent); err != nil {
			log.Printf("Error unmarshalling protobuf: %v", err)
			return
		}
		handler(&pbEvent)
	})
	if err != nil {
		return err
	}
	s.sub = sub
	log.Printf("Subscribed to '%s'. Waiting for messages...", s.subject)
	return nil
}

// Close unsubscribes and closes the NATS connection.
func (s *Subscriber) Close() {
	if s.sub != nil {
		s.sub.Unsubscribe()
	}
	if s.nc != nil {
		s.nc.Close()
		log.Println("NATS connection closed.")
	}
}
