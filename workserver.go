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

package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"fnquery/cnf"
	"fnquery/monitoring"
	"fnquery/rdb"
	"fnquery/results"
	"fnquery/worker"
)

func getWorkerID() (workerID string) {
	workerID = getEnv("WORKER_ID")
	if workerID == "" {
		workerID = strconv.Itoa(os.Getpid())
	}
	return
}

type statusWriter interface {
	service
	Log(rec results.JobLog)
}

// NullLogger is used in case monitoring is not configured
type NullLogger struct{}

func (n *NullLogger) Start(ctx context.Context) {}

func (n *NullLogger) Stop(ctx context.Context) error { return nil }

func (n *NullLogger) Log(rec results.JobLog) {}

// -------

func runWorker(conf *cnf.Conf) {
	workerID := getWorkerID()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	radapter := rdb.NewAdapter(conf.Redis, ctx)
	if err := radapter.TestConnection(redisConnectionTestTimeout); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	var jobLogger statusWriter
	if conf.Monitoring != nil {
		var err error
		jobLogger, err = monitoring.NewTimescaleDBWriter(ctx, conf.Monitoring.DB, conf.TimezoneLocation())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize monitoring")
		}

	} else {
		jobLogger = &NullLogger{}
		log.Warn().Msg("monitoring not configured, job stats will not be stored")
	}

	ch := radapter.Subscribe()
	wrk := worker.NewWorker(workerID, radapter, ch, conf.CorporaSetup, jobLogger)

	services := []service{jobLogger, wrk}
	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, s := range services {
		if err := s.Stop(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to stop service")
		}
	}
}
