package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-tracker/internal/api/metrics"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// ErrStopped is returned by Do once the workers have shut down.
var ErrStopped = errors.New("dispatcher stopped")

// job is one unit of work bound to a shipment. done is nil for
// fire-and-forget events.
type job struct {
	ctx  context.Context
	key  string
	run  func(ctx context.Context) error
	done chan error
}

// Dispatcher routes work to a fixed set of workers using consistent hashing on
// the shipment ID. Every job for a given shipment runs on the same worker, so
// status events and tracking ticks for one shipment never interleave.
type Dispatcher struct {
	workers []chan job
	service ports.EventService
	log     zerolog.Logger

	quit <-chan struct{}
	wg   sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.EventService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan job, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan job, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	d.quit = ctx.Done()
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands an event to the worker responsible for its shipment.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.TrackingEventInput) {
	d.push(job{
		key: event.ShipmentID,
		run: func(ctx context.Context) error {
			if err := d.service.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("shipment_id", event.ShipmentID).
					Str("status", event.Status).
					Msg("event processing failed")
			}
			return nil
		},
	})
}

// EnqueueBatch enqueues multiple events preserving per-shipment ordering.
func (d *Dispatcher) EnqueueBatch(events []ports.TrackingEventInput) {
	for _, e := range events {
		d.Enqueue(e)
	}
}

// Do runs fn on the worker that owns key and waits for its result.
func (d *Dispatcher) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	select {
	case <-d.quit:
		return ErrStopped
	default:
	}

	j := job{ctx: ctx, key: key, run: fn, done: make(chan error, 1)}
	idx := d.shardIndex(key)

	select {
	case d.workers[idx] <- j:
		metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	case <-ctx.Done():
		return ctx.Err()
	case <-d.quit:
		return ErrStopped
	}

	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-d.quit:
		return ErrStopped
	}
}

func (d *Dispatcher) push(j job) {
	idx := d.shardIndex(j.key)
	d.workers[idx] <- j
	metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a shipment ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan job) {
	defer d.wg.Done()
	depth := metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))

			jobCtx := j.ctx
			if jobCtx == nil {
				jobCtx = ctx
			}
			if jobCtx.Err() != nil {
				d.finish(j, jobCtx.Err())
				continue
			}
			d.finish(j, j.run(jobCtx))
		}
	}
}

func (d *Dispatcher) finish(j job, err error) {
	if j.done != nil {
		j.done <- err
		return
	}
	if err != nil {
		d.log.Error().Err(err).Str("shipment_id", j.key).Msg("job failed")
	}
}
