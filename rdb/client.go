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

package rdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fnquery/results"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	MsgNewQuery                = "newQuery"
	MsgNewResult               = "newResult"
	DefaultQueueKey            = "fnqueryQueue"
	DefaultResultChannelPrefix = "fnqueryResults"
	DefaultQueryChannel        = "fnqueryQueries"
	DefaultResultExpiration    = 10 * time.Minute
	DefaultQueryAnswerTimeout  = 60 * time.Second
)

var (
	ErrorEmptyQueue = errors.New("no queries in the queue")
)

type Conf struct {
	Host                string `json:"host"`
	Port                int    `json:"port"`
	DB                  int    `json:"db"`
	Password            string `json:"password"`
	ChannelQuery        string `json:"channelQuery"`
	ChannelResultPrefix string `json:"channelResultPrefix"`

	// CachePath enables a filesystem cache of worker answers
	// (mostly useful for expensive whole-corpus rankings).
	CachePath string `json:"cachePath"`
}

type Query struct {
	Channel string          `json:"channel"`
	Func    string          `json:"func"`
	Args    json.RawMessage `json:"args"`
}

func (q Query) ToJSON() (string, error) {
	ans, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	return string(ans), nil
}

func DecodeQuery(q string) (Query, error) {
	var ans Query
	err := json.Unmarshal([]byte(q), &ans)
	return ans, err
}

// NewQuery creates a query with JSON-encoded args. It panics
// in case the args cannot be serialized which can happen only
// due to a programming error.
func NewQuery(fn string, args any) Query {
	rawArgs, err := json.Marshal(args)
	if err != nil {
		panic(fmt.Errorf("failed to encode args for %s: %w", fn, err))
	}
	return Query{Func: fn, Args: rawArgs}
}

// Adapter provides functions for query producers and consumers
// using Redis lists and pub/sub.
type Adapter struct {
	ctx                 context.Context
	c                   *redis.Client
	channelQuery        string
	channelResultPrefix string
	cachePath           string
}

func (a *Adapter) TestConnection(timeout time.Duration) error {
	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	ctx, cancel := context.WithTimeout(a.ctx, timeout)
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to connect to Redis within %s", timeout)
		case <-tick.C:
			if err := a.c.Ping(ctx).Err(); err == nil {
				return nil
			} else {
				log.Warn().Err(err).Msg("waiting for Redis connection")
			}
		}
	}
}

func (a *Adapter) SomeoneListens(query Query) (bool, error) {
	cmd := a.c.PubSubNumSub(a.ctx, query.Channel)
	if cmd.Err() != nil {
		return false, fmt.Errorf("failed to check channel listeners: %w", cmd.Err())
	}
	return cmd.Val()[query.Channel] > 0, nil
}

// PublishQuery enqueues a query and returns a channel the caller
// receives the (single) answer on.
func (a *Adapter) PublishQuery(query Query) (<-chan *WorkerResult, error) {
	query.Channel = fmt.Sprintf("%s:%s", a.channelResultPrefix, uuid.New().String())
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		RawJSON("args", query.Args).
		Msg("publishing query")

	msg, err := query.ToJSON()
	if err != nil {
		return nil, err
	}
	if err := a.c.LPush(a.ctx, DefaultQueueKey, msg).Err(); err != nil {
		return nil, err
	}
	sub := a.c.Subscribe(a.ctx, query.Channel)
	ans := make(chan *WorkerResult)

	// now we wait for response and send result via `ans`
	go func() {
		defer func() {
			sub.Close()
			close(ans)
		}()
		result := new(WorkerResult)
		select {
		case item := <-sub.Channel():
			cmd := a.c.Get(a.ctx, item.Payload)
			if cmd.Err() != nil {
				result.AttachValue(&results.ErrorResult{Func: query.Func, Error: cmd.Err().Error()})

			} else if err := json.Unmarshal([]byte(cmd.Val()), result); err != nil {
				result.AttachValue(&results.ErrorResult{Func: query.Func, Error: err.Error()})
			}
		case <-time.After(DefaultQueryAnswerTimeout):
			result.AttachValue(&results.ErrorResult{
				Func:  query.Func,
				Error: fmt.Sprintf("no worker answered within %s", DefaultQueryAnswerTimeout),
			})
		}
		ans <- result
	}()
	return ans, a.c.Publish(a.ctx, a.channelQuery, MsgNewQuery).Err()
}

func (a *Adapter) DequeueQuery() (Query, error) {
	cmd := a.c.RPop(a.ctx, DefaultQueueKey)
	if errors.Is(cmd.Err(), redis.Nil) {
		return Query{}, ErrorEmptyQueue
	}
	if cmd.Err() != nil {
		return Query{}, fmt.Errorf("failed to dequeue query: %w", cmd.Err())
	}
	q, err := DecodeQuery(cmd.Val())
	if err != nil {
		return Query{}, fmt.Errorf("failed to deserialize query: %w", err)
	}
	return q, nil
}

func (a *Adapter) PublishResult(channelName string, value *WorkerResult) error {
	log.Debug().
		Str("channel", channelName).
		Str("resultType", value.ResultType.String()).
		Msg("publishing result")
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	a.c.Set(a.ctx, channelName, string(data), DefaultResultExpiration)
	return a.c.Publish(a.ctx, channelName, channelName).Err()
}

func (a *Adapter) Subscribe() <-chan *redis.Message {
	sub := a.c.Subscribe(a.ctx, a.channelQuery)
	return sub.Channel()
}

func NewAdapter(conf *Conf, ctx context.Context) *Adapter {
	chRes := conf.ChannelResultPrefix
	chQuery := conf.ChannelQuery
	if chRes == "" {
		chRes = DefaultResultChannelPrefix
		log.Warn().
			Str("channel", chRes).
			Msg("Redis channel for results not specified, using default")
	}
	if chQuery == "" {
		chQuery = DefaultQueryChannel
		log.Warn().
			Str("channel", chQuery).
			Msg("Redis channel for queries not specified, using default")
	}
	return &Adapter{
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ctx:                 ctx,
		channelQuery:        chQuery,
		channelResultPrefix: chRes,
		cachePath:           conf.CachePath,
	}
}
