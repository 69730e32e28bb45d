// api/services/dispatcher.go
package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"borapassageiro/api/models"
)

// PlatformSender is implemented by each ad-platform service. Senders decode
// their own stored credentials and silently skip when they are incomplete.
type PlatformSender interface {
	Send(ctx context.Context, ev ConversionEvent, creds json.RawMessage) error
}

// ConfigSource yields the stored per-platform credential blobs.
type ConfigSource interface {
	ListConfigs(ctx context.Context) (map[models.Platform]json.RawMessage, error)
}

const (
	dispatchQueueSize   = 64
	dispatchWorkers     = 2
	dispatchJobDeadline = 15 * time.Second
)

// Dispatcher fans conversion events out to the ad platforms on a bounded
// background queue. Delivery is fire-and-forget: failures are logged and
// never reach the request path, and a full queue drops the event rather than
// blocking.
type Dispatcher struct {
	configs ConfigSource
	senders []platformEntry

	jobs     chan ConversionEvent
	wg       sync.WaitGroup
	stopOnce sync.Once
}

type platformEntry struct {
	key    models.Platform
	sender PlatformSender
}

func NewDispatcher(configs ConfigSource, facebook, google, tiktok PlatformSender) *Dispatcher {
	d := &Dispatcher{
		configs: configs,
		senders: []platformEntry{
			{models.PlatformFacebook, facebook},
			{models.PlatformGoogle, google},
			{models.PlatformTikTok, tiktok},
		},
		jobs: make(chan ConversionEvent, dispatchQueueSize),
	}

	for i := 0; i < dispatchWorkers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// Enqueue hands a conversion event to the background workers. Plain visits
// are never forwarded. Returns immediately; when the queue is full the event
// is dropped with a log line.
func (d *Dispatcher) Enqueue(ev ConversionEvent) {
	if !ev.Type.IsClick() {
		return
	}

	select {
	case d.jobs <- ev:
	default:
		log.Printf("Dispatch queue full, dropping %s event", ev.Type)
	}
}

// Stop drains the queue and waits for in-flight dispatches to finish.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.jobs {
		d.dispatch(ev)
	}
}

// dispatch reads the stored credentials fresh each time, so admin updates
// take effect without a restart, then tries every platform independently.
func (d *Dispatcher) dispatch(ev ConversionEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchJobDeadline)
	defer cancel()

	configs, err := d.configs.ListConfigs(ctx)
	if err != nil {
		log.Printf("Dispatch skipped, failed to load integration configs: %v", err)
		return
	}

	for _, entry := range d.senders {
		raw, ok := configs[entry.key]
		if !ok {
			continue
		}
		if err := entry.sender.Send(ctx, ev, raw); err != nil {
			log.Printf("%s dispatch error for %s event: %v", entry.key, ev.Type, err)
		}
	}
}
