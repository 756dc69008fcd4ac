/*
Copyright 2022 The Knative Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/emicklei/go-restful"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"knative.dev/pkg/signals"
	paramkubemgr "knative.dev/richparam/pkg/param-kubemgr"
	paramutils "knative.dev/richparam/pkg/param-utils"
	"knative.dev/richparam/pkg/presets"
)

var log *zap.SugaredLogger

const (
	serviceIntervalDefault = 30 * time.Second
	cacheSizeDefault       = 256
	namespaceDefault       = "default"
	serviceConfigMap       = "param-service"
)

type config struct {
	ParamServiceLogLevel  string `split_words:"true" required:"false"`
	ParamServicePort      string `split_words:"true" required:"false"`
	ParamServiceInterval  string `split_words:"true" required:"false"`
	ParamServiceNamespace string `split_words:"true" required:"false"`
	ParamServiceCacheSize int    `split_words:"true" required:"false"`
}

type flusher struct {
	store       *presets.Store
	flushTicker *paramutils.Ticker
}

// mainEventLoop stores dirty presets on every tick and once more when ctx is done
func (f *flusher) mainEventLoop(ctx context.Context) {
	log.Infof("flush interval %v", f.flushTicker.Interval())

	for {
		select {
		case <-f.flushTicker.Ch():
			if _, err := f.store.Flush(ctx); err != nil {
				log.Infof("Flush failed: %v", err)
			}
			log.Debugf("preset stats %s", f.store.Stats.Log())
		case <-ctx.Done():
			log.Infof("mainEventLoop was asked to quit!")
			f.flushTicker.Stop()
			finalCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if n, err := f.store.Flush(finalCtx); err != nil {
				log.Infof("final Flush stored %d presets: %v", n, err)
			}
			return
		}
	}
}

// preMain builds the service from env; the ConfigMap of the service overrides env
func preMain(ctx context.Context, env *config, kmgr paramkubemgr.KubeMgrInterface) (*flusher, http.Handler, string, error) {
	ns := env.ParamServiceNamespace
	if ns == "" {
		ns = namespaceDefault
	}

	cmConfig := map[string]string{}
	if err := kmgr.GetConfig(ctx, ns, serviceConfigMap, cmConfig); err != nil {
		log.Debugf("no service configmap: %v", err)
	}
	if level, ok := cmConfig["log-level"]; ok {
		paramutils.SetLogLevel(level)
	}
	interval := env.ParamServiceInterval
	if v, ok := cmConfig["interval"]; ok {
		interval = v
	}

	cacheSize := env.ParamServiceCacheSize
	if cacheSize <= 0 {
		cacheSize = cacheSizeDefault
	}
	store, err := presets.NewStore(ctx, kmgr, cacheSize)
	if err != nil {
		return nil, nil, "", err
	}

	f := &flusher{store: store, flushTicker: paramutils.NewTicker(paramutils.MinimumInterval)}
	if err := f.flushTicker.Parse(interval, serviceIntervalDefault); err != nil {
		log.Infof("interval %q: %v", interval, err)
	}

	p := &paramService{store: store, ns: ns}
	container := restful.NewContainer()
	container.Add(p.webService())

	target := ":8888"
	if env.ParamServicePort != "" {
		target = fmt.Sprintf(":%s", env.ParamServicePort)
	}
	return f, container, target, nil
}

// Set network policies to ensure that only pods in your trust domain can use the service!
func main() {
	var env config
	if err := envconfig.Process("", &env); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to process environment: %s\n", err.Error())
		os.Exit(1)
	}
	log = paramutils.CreateLogger(env.ParamServiceLogLevel)
	defer paramutils.SyncLogger()

	kmgr := paramkubemgr.NewKubeMgr()
	kmgr.InitConfigs()

	signalCtx := signals.NewContext()
	f, handler, target, err := preMain(signalCtx, &env, kmgr)
	if err != nil {
		log.Infof("Failed to start: %v", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    target,
		Handler: handler,
	}
	go func(srv *http.Server) {
		log.Infof("Starting param-service on %s", target)
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			log.Infof("Http service failed to start %v", err)
		} else {
			log.Infof("Http services stoped!")
		}
	}(srv)

	f.flushTicker.Start()
	done := make(chan struct{})
	go func() {
		f.mainEventLoop(signalCtx)
		close(done)
	}()

	// wait to die
	<-signalCtx.Done()
	log.Infof("Terminating param-service")

	shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()
	srv.Shutdown(shutdownCtx)
	<-done
}
