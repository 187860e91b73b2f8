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
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"fnquery/cnf"
	"fnquery/corpus/handlers"
	"fnquery/general"
	"fnquery/rdb"
)

type apiServer struct {
	server      *http.Server
	conf        *cnf.Conf
	radapter    *rdb.Adapter
	versionInfo general.VersionInfo
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.Use(AuthRequired(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	engine.GET("/", func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
			"name":    "FNQuery - a FrameNet event corpus analysis server",
			"version": api.versionInfo,
			"host":    api.conf.PublicURL,
		})
	})

	corpusActions := handlers.NewActions(api.conf.CorporaSetup, api.radapter)

	engine.GET("/corplist", corpusActions.Corplist)
	engine.GET("/document/:docId", corpusActions.DocumentInfo)
	engine.GET("/lexical-units/:docId", corpusActions.LexicalUnits)
	engine.GET("/lexical-units-variety/:docId", corpusActions.LexicalUnitsVariety)
	engine.GET("/frame-elements/:docId", corpusActions.FrameElements)
	engine.GET("/polysemy/:docId", corpusActions.Polysemy)
	engine.GET("/implicated-fes/:docId", corpusActions.ImplicatedFEs)

	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("")
		}
	}()
}

func (api *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down http api server")
	return api.server.Shutdown(ctx)
}

func runApiServer(conf *cnf.Conf, versionInfo general.VersionInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	radapter := rdb.NewAdapter(conf.Redis, ctx)
	if err := radapter.TestConnection(redisConnectionTestTimeout); err != nil {
		log.Fatal().Err(err).Msg("unable to connect to Redis")
	}

	api := &apiServer{
		conf:        conf,
		radapter:    radapter,
		versionInfo: versionInfo,
	}
	api.Start(ctx)

	<-ctx.Done()
	log.Warn().Msg("received signal, stopping the server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := api.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down the api server gracefully")
	}
}
