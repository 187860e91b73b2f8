// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of FNQUERY.
//
//  FNQUERY is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  FNQUERY is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with FNQUERY.  If not, see <https://www.gnu.org/licenses/>.

package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"fnquery/corpus"
	"fnquery/ferror"
	"fnquery/rdb"
	"fnquery/results"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTickerInterval = 2 * time.Second
)

type jobLogger interface {
	Log(rec results.JobLog)
}

type recoveredError struct {
	error
}

// Worker picks queries from the Redis queue, runs the matching
// aggregation over its in-memory corpus and publishes the answer.
// The corpus is loaded lazily on the first query and kept for
// the worker's lifetime (the data is read-only).
type Worker struct {
	ID         string
	messages   <-chan *redis.Message
	radapter   *rdb.Adapter
	conf       *corpus.CorporaSetup
	cache      *corpusCache
	ticker     *time.Ticker
	jobLogger  jobLogger
	currJobLog *results.JobLog
}

func isUserError(err error) bool {
	var inpErr ferror.InputError
	var nfErr ferror.NotFoundError
	return errors.As(err, &inpErr) || errors.As(err, &nfErr)
}

func (w *Worker) publishResult(res results.SerializableResult, channel string) error {
	ans, err := rdb.CreateWorkerResult(res)
	if err != nil {
		return err
	}
	ans.HasUserError = res.Err() != nil && isUserError(res.Err())
	ans.ProcBegin = w.currJobLog.Begin
	ans.ProcEnd = time.Now()

	w.currJobLog.End = ans.ProcEnd
	w.currJobLog.Err = res.Err()
	w.jobLogger.Log(*w.currJobLog)
	w.currJobLog = nil
	return w.radapter.PublishResult(channel, ans)
}

func (w *Worker) sendPublishingErr(query rdb.Query, err error) {
	if err := w.publishResult(&results.ErrorResult{Func: query.Func, Error: err.Error()}, query.Channel); err != nil {
		log.Error().Err(err).Msg("failed to publish general publishing error")
	}
}

func runTyped[T any](w *Worker, query rdb.Query, fn func(args T) results.SerializableResult) error {
	var args T
	if err := json.Unmarshal(query.Args, &args); err != nil {
		return err
	}
	ans := fn(args)
	if err := w.publishResult(ans, query.Channel); err != nil {
		w.sendPublishingErr(query, err)
		return err
	}
	return nil
}

func (w *Worker) runQueryProtected(query rdb.Query) (ansErr error) {
	defer func() {
		if r := recover(); r != nil {
			ansErr = recoveredError{ferror.PanicValueToErr(r)}
			return
		}
	}()
	switch query.Func {
	case "corplist":
		return runTyped(w, query, func(args rdb.CorplistArgs) results.SerializableResult {
			return w.corplist(args)
		})
	case "docInfo":
		return runTyped(w, query, func(args rdb.DocInfoArgs) results.SerializableResult {
			return w.docInfo(args)
		})
	case "lexicalUnits":
		return runTyped(w, query, func(args rdb.RankingArgs) results.SerializableResult {
			return w.lexicalUnits(args)
		})
	case "lexicalUnitsVariety":
		return runTyped(w, query, func(args rdb.RankingArgs) results.SerializableResult {
			return w.lexicalUnitsVariety(args)
		})
	case "frameElements":
		return runTyped(w, query, func(args rdb.RankingArgs) results.SerializableResult {
			return w.frameElements(args)
		})
	case "polysemy":
		return runTyped(w, query, func(args rdb.RankingArgs) results.SerializableResult {
			return w.polysemy(args)
		})
	case "implicatedFEs":
		return runTyped(w, query, func(args rdb.DocInfoArgs) results.SerializableResult {
			return w.implicatedFEs(args)
		})
	default:
		ans := &results.ErrorResult{Error: fmt.Sprintf("unknown query function: %s", query.Func)}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) tryNextQuery() error {

	// a small random sleep spreads the load among workers
	time.Sleep(time.Duration(rand.Intn(40)) * time.Millisecond)
	query, err := w.radapter.DequeueQuery()
	if err == rdb.ErrorEmptyQueue {
		return nil

	} else if err != nil {
		return err
	}
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		RawJSON("args", query.Args).
		Msg("received query")

	isActive, err := w.radapter.SomeoneListens(query)
	if err != nil {
		return err
	}
	if !isActive {
		log.Warn().
			Str("func", query.Func).
			Str("channel", query.Channel).
			Msg("worker found an inactive query")
		return nil
	}

	w.currJobLog = &results.JobLog{
		WorkerID: w.ID,
		Func:     query.Func,
		Begin:    time.Now(),
	}

	err = w.runQueryProtected(query)
	var rcvErr recoveredError
	if errors.As(err, &rcvErr) {
		ans := &results.ErrorResult{
			Error: fmt.Sprintf("worker panicked: %s", rcvErr.Error()),
			Func:  query.Func,
		}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) listen(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("workerId", w.ID).Msg("worker exiting")
			return
		case <-w.ticker.C:
			if err := w.tryNextQuery(); err != nil {
				log.Error().Err(err).Msg("failed to process query")
			}
		case msg := <-w.messages:
			if msg.Payload == rdb.MsgNewQuery {
				if err := w.tryNextQuery(); err != nil {
					log.Error().Err(err).Msg("failed to process query")
				}
			}
		}
	}
}

func (w *Worker) Start(ctx context.Context) {
	go w.listen(ctx)
}

func (w *Worker) Stop(ctx context.Context) error {
	w.ticker.Stop()
	return nil
}

func NewWorker(
	workerID string,
	radapter *rdb.Adapter,
	messages <-chan *redis.Message,
	conf *corpus.CorporaSetup,
	jobLogger jobLogger,
) *Worker {
	return &Worker{
		ID:        workerID,
		radapter:  radapter,
		messages:  messages,
		conf:      conf,
		cache:     newCorpusCache(conf),
		ticker:    time.NewTicker(DefaultTickerInterval),
		jobLogger: jobLogger,
	}
}
