// Package realtime mirrors catalog changes into memory using MongoDB
// change streams. The admin panel subscribes to the merged event feed so
// edits, new reviews and new questions show up without polling.
package realtime

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event is one change observed on a watched collection.
type Event struct {
	Collection string `json:"collection"`
	Operation  string `json:"operation"`
	DocumentID string `json:"documentId"`
	Document   bson.M `json:"document,omitempty"`
}

// Watcher tails the change streams of a fixed set of collections and
// fans events out to subscribers. It also keeps a merged snapshot of the
// latest document versions, so a new subscriber can catch up without a
// database round trip.
type Watcher struct {
	client      *mongo.Client
	database    string
	collections []string

	mu       sync.RWMutex
	snapshot map[string]map[string]bson.M
	subs     map[chan Event]struct{}
}

// NewWatcher creates a watcher over the given collections.
func NewWatcher(client *mongo.Client, database string, collections ...string) *Watcher {
	snapshot := make(map[string]map[string]bson.M, len(collections))
	for _, name := range collections {
		snapshot[name] = make(map[string]bson.M)
	}
	return &Watcher{
		client:      client,
		database:    database,
		collections: collections,
		snapshot:    snapshot,
		subs:        make(map[chan Event]struct{}),
	}
}

// Start launches one change stream per collection. Streams that drop are
// reopened after a short pause; Start returns immediately and the
// watcher stops when the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	for _, name := range w.collections {
		go w.watchCollection(ctx, name)
	}
}

// Subscribe registers a new event channel. The returned cancel function
// must be called when the subscriber goes away.
func (w *Watcher) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 64)
	w.mu.Lock()
	w.subs[ch] = struct{}{}
	w.mu.Unlock()

	cancel := func() {
		w.mu.Lock()
		if _, ok := w.subs[ch]; ok {
			delete(w.subs, ch)
			close(ch)
		}
		w.mu.Unlock()
	}
	return ch, cancel
}

// Snapshot returns the current merged view of one collection.
func (w *Watcher) Snapshot(collection string) []bson.M {
	w.mu.RLock()
	defer w.mu.RUnlock()

	docs := make([]bson.M, 0, len(w.snapshot[collection]))
	for _, doc := range w.snapshot[collection] {
		docs = append(docs, doc)
	}
	return docs
}

func (w *Watcher) watchCollection(ctx context.Context, name string) {
	for {
		if err := w.tailStream(ctx, name); err != nil {
			log.Printf("Change stream on %s ended: %v", name, err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (w *Watcher) tailStream(ctx context.Context, name string) error {
	collection := w.client.Database(w.database).Collection(name)

	// Updates deliver the whole document so the snapshot stays complete.
	streamOptions := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := collection.Watch(ctx, mongo.Pipeline{}, streamOptions)
	if err != nil {
		return err
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		var change struct {
			OperationType string `bson:"operationType"`
			DocumentKey   struct {
				ID interface{} `bson:"_id"`
			} `bson:"documentKey"`
			FullDocument bson.M `bson:"fullDocument"`
		}
		if err := stream.Decode(&change); err != nil {
			log.Printf("Failed to decode change on %s: %v", name, err)
			continue
		}

		event := Event{
			Collection: name,
			Operation:  change.OperationType,
			DocumentID: documentID(change.DocumentKey.ID),
			Document:   change.FullDocument,
		}
		w.apply(event)
		w.broadcast(event)
	}
	return stream.Err()
}

// apply merges one event into the snapshot. Inserts and updates replace
// the stored document, deletes remove it.
func (w *Watcher) apply(event Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	docs, ok := w.snapshot[event.Collection]
	if !ok {
		return
	}
	switch event.Operation {
	case "insert", "update", "replace":
		if event.Document != nil {
			docs[event.DocumentID] = event.Document
		}
	case "delete":
		delete(docs, event.DocumentID)
	}
}

func (w *Watcher) broadcast(event Event) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for ch := range w.subs {
		select {
		case ch <- event:
		default:
			// Slow subscriber, drop the event rather than block the stream.
		}
	}
}

func documentID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case interface{ Hex() string }:
		return v.Hex()
	default:
		return ""
	}
}
