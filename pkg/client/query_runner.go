package client

import (
	"context"

	"github.com/Malcolmdebono/Bucket-list-application/internal/models"
)

// QueryResult carries the outcome of one catalogue query.
type QueryResult struct {
	Query       ExperienceQuery
	Experiences []models.Experience
	Err         error
}

// QueryRunner turns a stream of filter-state changes into requests. When
// the state changes while a request is still in flight, that request is
// cancelled and its response dropped, so a slow older response can never
// overwrite a newer one.
type QueryRunner struct {
	client  *Client
	params  chan ExperienceQuery
	results chan QueryResult
}

// NewQueryRunner creates a runner for the given client. Call Run before
// Set.
func NewQueryRunner(c *Client) *QueryRunner {
	return &QueryRunner{
		client:  c,
		params:  make(chan ExperienceQuery, 1),
		results: make(chan QueryResult, 1),
	}
}

// Set submits a new filter state. Only the newest unprocessed state is
// kept; Set never blocks.
func (r *QueryRunner) Set(q ExperienceQuery) {
	for {
		select {
		case r.params <- q:
			return
		default:
			// Drop the superseded pending state.
			select {
			case <-r.params:
			default:
			}
		}
	}
}

// Results delivers the latest result only; an unread stale result is
// replaced when a newer one lands.
func (r *QueryRunner) Results() <-chan QueryResult {
	return r.results
}

// Run processes filter-state changes until ctx is cancelled.
func (r *QueryRunner) Run(ctx context.Context) {
	type sequenced struct {
		seq int
		res QueryResult
	}

	inner := make(chan sequenced, 1)
	seq := 0
	var cancelInFlight context.CancelFunc

	defer func() {
		if cancelInFlight != nil {
			cancelInFlight()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case q := <-r.params:
			if cancelInFlight != nil {
				cancelInFlight()
			}
			seq++
			reqCtx, cancel := context.WithCancel(ctx)
			cancelInFlight = cancel

			go func(reqCtx context.Context, q ExperienceQuery, s int) {
				experiences, err := r.client.ListExperiences(reqCtx, q)
				select {
				case inner <- sequenced{seq: s, res: QueryResult{Query: q, Experiences: experiences, Err: err}}:
				case <-ctx.Done():
				}
			}(reqCtx, q, seq)

		case out := <-inner:
			if out.seq != seq {
				// Response from a superseded request.
				continue
			}
			if out.res.Err != nil && ctx.Err() != nil {
				continue
			}
			select {
			case r.results <- out.res:
			default:
				// Replace the unread stale result.
				select {
				case <-r.results:
				default:
				}
				r.results <- out.res
			}
		}
	}
}
