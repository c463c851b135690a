package streamtracker

import (
	v1 "Go2FreqSpectra/api/gen/v1"
	"Go2FreqSpectra/internal/config"
	"Go2FreqSpectra/internal/engine/manager"
	"log"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"
)

// StreamTracker consumes events from NATS and uses a manager.Manager to track them.
type StreamTracker struct {
	nc           *nats.Conn
	sub          *nats.Subscription
	manager      *manager.Manager
	inputChannel chan<- *v1.Event
	natsURL      string
	natsSubject  string
}

// New creates a new real-time stream tracker.
func New(cfg *config.Config) (*StreamTracker, error) {
	// The manager handles the actual frequency tracking.
	mgr, err := manager.NewManager(cfg)
	if err != nil {
		return nil, err
	}

	return &StreamTracker{
		manager:      mgr,
		inputChannel: mgr.InputChannel(), // Get the channel from the manager
		natsURL:      cfg.Probe.NATSURL,
		natsSubject:  cfg.Probe.Subject,
	}, nil
}

// Start connects to NATS, starts the underlying manager, and begins processing messages.
func (st *StreamTracker) Start() {
	log.Println("StreamTracker starting for nats: ", st.natsURL)
	nc, err := nats.Connect(st.natsURL)
	if err != nil {
		log.Fatalf("StreamTracker failed to connect to NATS: %v", err)
	}
	st.nc = nc

	// The manager starts its own worker pool and snapshotter.
	st.manager.Start()

	st.sub, err = st.nc.Subscribe(st.natsSubject, st.handleEvent)
	if err != nil {
		log.Fatalf("StreamTracker failed to subscribe: %v", err)
	}
	log.Printf("StreamTracker subscribed to '%s'", st.natsSubject)
}

// Stop gracefully shuts down the tracker.
func (st *StreamTracker) Stop() {
	log.Println("StreamTracker stopping...")
	if st.sub != nil {
		st.sub.Unsubscribe()
	}
	if st.nc != nil {
		st.nc.Close()
	}
	// Stop the underlying manager, which will close the input channel
	// and wait for workers to finish before taking a final snapshot.
	st.manager.Stop()
	log.Println("StreamTracker stopped.")
}

// handleEvent decodes the message and passes it to the manager's channel.
func (st *StreamTracker) handleEvent(msg *nats.Msg) {
	var pbEvent v1.Event
	if err := proto.Unmarshal(msg.Data, &pbEvent); err != nil {
		log.Printf("Error unmarshalling protobuf: %v", err)
		return
	}

	// Pass the protobuf event to the manager's channel for concurrent processing.
	st.inputChannel <- &pbEvent
}
