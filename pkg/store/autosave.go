package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/vgnl/procesflow/pkg/events"
	"github.com/vgnl/procesflow/pkg/persistence"
)

// DefaultAutosaveDebounce is the delay between a mutation event and its
// persist.
const DefaultAutosaveDebounce = 100 * time.Millisecond

// Autosaver is the write-behind persister for the decision store. It consumes
// FlowchartMutated events, debounces them per flowchart id and rewrites the
// active flowchart document. A pending write is dropped when its flowchart id
// is no longer active at flush time, so a load or create-new between
// scheduling and flush can never persist a graph under a stale document id.
type Autosaver struct {
	store       *DecisionStore
	persistence persistence.Persistence
	subscriber  message.Subscriber
	logger      *slog.Logger
	debounce    time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewAutosaver creates an autosaver over the given decision store and
// subscriber. Debounce <= 0 falls back to DefaultAutosaveDebounce.
func NewAutosaver(store *DecisionStore, p persistence.Persistence, subscriber message.Subscriber, logger *slog.Logger, debounce time.Duration) *Autosaver {
	if debounce <= 0 {
		debounce = DefaultAutosaveDebounce
	}

	return &Autosaver{
		store:       store,
		persistence: p,
		subscriber:  subscriber,
		logger:      logger,
		debounce:    debounce,
		pending:     make(map[string]*time.Timer),
	}
}

// Start subscribes to the flowchart mutation topic and begins consuming.
func (a *Autosaver) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	messages, err := a.subscriber.Subscribe(ctx, events.FlowchartTopic)
	if err != nil {
		cancel()

		return err
	}

	a.wg.Add(1)

	go func() {
		defer a.wg.Done()

		for msg := range messages {
			a.handle(ctx, msg)
			msg.Ack()
		}
	}()

	return nil
}

func (a *Autosaver) handle(ctx context.Context, msg *message.Message) {
	var event events.FlowchartMutated
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		a.logger.Warn("dropping malformed mutation event", "error", err)

		return
	}

	// No active flowchart: the change stays live-only until an explicit
	// save names the document.
	if event.FlowchartID == "" {
		return
	}

	a.schedule(ctx, event.FlowchartID)
}

// schedule (re)arms the debounce timer for a flowchart id, superseding any
// pending write for the same document.
func (a *Autosaver) schedule(ctx context.Context, flowchartID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if timer, ok := a.pending[flowchartID]; ok {
		timer.Stop()
	}

	a.pending[flowchartID] = time.AfterFunc(a.debounce, func() {
		a.flush(ctx, flowchartID)
	})
}

// flush persists the live graph for the given flowchart id, unless that id is
// no longer the active flowchart.
func (a *Autosaver) flush(ctx context.Context, flowchartID string) {
	a.mu.Lock()
	delete(a.pending, flowchartID)
	a.mu.Unlock()

	if a.store.ActiveFlowchartID() != flowchartID {
		a.logger.Debug("dropping stale autosave", "flowchart_id", flowchartID)

		return
	}

	snapshot := a.store.Snapshot()
	if snapshot == nil {
		return
	}

	// Merge into the stored document so the description and creation date
	// survive an autosave.
	repo := a.persistence.Flowcharts()

	stored, err := repo.GetByID(ctx, flowchartID)
	if err == nil {
		snapshot.Beschrijving = stored.Beschrijving
		snapshot.AanmaakDatum = stored.AanmaakDatum
		snapshot.LinkedProcessID = stored.LinkedProcessID
	}

	if err := repo.Save(ctx, snapshot); err != nil {
		a.logger.Error("autosave failed", "flowchart_id", flowchartID, "error", err)
	}
}

// Close stops consuming and cancels all pending writes.
func (a *Autosaver) Close() {
	if a.cancel != nil {
		a.cancel()
	}

	a.mu.Lock()
	for id, timer := range a.pending {
		timer.Stop()
		delete(a.pending, id)
	}
	a.mu.Unlock()

	a.wg.Wait()
}
