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

package presets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	spec "knative.dev/richparam/pkg/apis/param/v1alpha1"
	"knative.dev/richparam/pkg/filters"
	paramkubemgr "knative.dev/richparam/pkg/param-kubemgr"
	paramutils "knative.dev/richparam/pkg/param-utils"
	pi "knative.dev/richparam/pkg/pluginterfaces"
)

// A cached record kept for each filter preset
type presetRecord struct {
	ns          string                  // namespace of the preset
	filter      string                  // name of the filter
	params      *spec.RichParameterList // the preset, nil when the filter has none
	fingerprint uint64                  // fingerprint of params when last stored or read
	dirty       bool                    // params changed since last stored
}

// Store caches presets in front of KubeApi
// Puts are kept in memory until the next Flush
type Store struct {
	kmgr       paramkubemgr.KubeMgrInterface // KubeMgr to access KubeApi during cache misses and flushes
	mutex      sync.Mutex                    // protect access to cache, evicted and namespaces
	cache      *lru.Cache                    // presetKey -> *presetRecord
	evicted    map[string]*presetRecord      // dirty records pushed out of the cache, stored on the next Flush
	namespaces map[string]bool               // namespaces watched for changes in presets
	watchCtx   context.Context               // watches end when done
	Stats      paramutils.Stat
}

// determine the cacheKey from its components
func presetKey(ns string, filter string) string {
	return filter + "." + ns
}

// filter names are case insensitive, the store and KubeApi only see the lowercase form
func filterKey(filter string) string {
	return strings.ToLower(filter)
}

// NewStore creates a store holding up to size presets
// Namespaces are watched until ctx is done
func NewStore(ctx context.Context, kmgr paramkubemgr.KubeMgrInterface, size int) (*Store, error) {
	s := new(Store)
	s.kmgr = kmgr
	s.watchCtx = ctx
	s.evicted = make(map[string]*presetRecord, 4)
	s.namespaces = make(map[string]bool, 4)
	cache, err := lru.NewWithEvict(size, s.onEvict)
	if err != nil {
		return nil, fmt.Errorf("preset cache: %w", err)
	}
	s.cache = cache
	return s, nil
}

// onEvict runs inside cache calls, all made while holding s.mutex
func (s *Store) onEvict(key interface{}, value interface{}) {
	record := value.(*presetRecord)
	if record.dirty {
		s.evicted[key.(string)] = record
		s.Stats.Add("evictedDirty")
	}
}

// lookup returns the cached record; caller holds s.mutex
func (s *Store) lookup(key string) *presetRecord {
	if v, ok := s.cache.Get(key); ok {
		return v.(*presetRecord)
	}
	if record, ok := s.evicted[key]; ok {
		delete(s.evicted, key)
		s.cache.Add(key, record)
		return record
	}
	return nil
}

// Get returns a copy of the preset of filter, or nil when the filter has none
// if new namespace, start watching this namespace for changes in presets
func (s *Store) Get(ctx context.Context, ns string, filter string) *spec.RichParameterList {
	filter = filterKey(filter)
	key := presetKey(ns, filter)

	s.mutex.Lock()
	knownNamespace := s.namespaces[ns]
	if !knownNamespace {
		s.namespaces[ns] = true
	}
	record := s.lookup(key)
	s.mutex.Unlock()
	// Must unlock s.mutex before s.kmgr.Watch, s.kmgr.Read

	if !knownNamespace {
		go s.kmgr.Watch(s.watchCtx, ns, s.update)
	}

	if record == nil {
		s.Stats.Add("miss")
		params, err := s.kmgr.Read(ctx, ns, filter)
		if err != nil {
			pi.Log.Debugf("no preset for %s.%s: %v", ns, filter, err)
			params = nil
		}
		record = s.set(ns, filter, params)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if record.params == nil {
		return nil
	}
	return record.params.Clone()
}

// set to cache a preset read from KubeApi
// a dirty record is kept, local changes win until flushed
func (s *Store) set(ns string, filter string, params *spec.RichParameterList) *presetRecord {
	filter = filterKey(filter)
	key := presetKey(ns, filter)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	record := s.lookup(key)
	if record == nil {
		record = &presetRecord{ns: ns, filter: filter}
		s.cache.Add(key, record)
	}
	if record.dirty {
		pi.Log.Debugf("preset %s.%s changed in KubeApi while dirty, keeping local change", ns, filter)
		return record
	}
	record.params = params
	record.fingerprint = 0
	if params != nil {
		record.fingerprint = params.Fingerprint()
	}
	return record
}

// update cache from the KubeApi watch
func (s *Store) update(ns string, filter string, params *spec.RichParameterList) {
	s.Stats.Add("watch")
	s.set(ns, filter, params)
}

// Put sets the preset of filter, returns true when it differs from the known preset
// The preset is stored in KubeApi by the next Flush
func (s *Store) Put(ns string, filter string, params *spec.RichParameterList) bool {
	filter = filterKey(filter)
	key := presetKey(ns, filter)
	fingerprint := params.Fingerprint()

	s.mutex.Lock()
	defer s.mutex.Unlock()
	record := s.lookup(key)
	if record == nil {
		record = &presetRecord{ns: ns, filter: filter}
		s.cache.Add(key, record)
	}
	if record.params != nil && record.fingerprint == fingerprint {
		s.Stats.Add("unchanged")
		return false
	}
	record.params = params.Clone()
	record.fingerprint = fingerprint
	record.dirty = true
	s.Stats.Add("put")
	return true
}

// Delete forgets the preset of filter, both cached and in KubeApi
func (s *Store) Delete(ctx context.Context, ns string, filter string) error {
	filter = filterKey(filter)
	key := presetKey(ns, filter)

	s.mutex.Lock()
	s.cache.Remove(key)
	delete(s.evicted, key)
	s.mutex.Unlock()

	return s.kmgr.Delete(ctx, ns, filter)
}

// Flush stores all dirty presets, returns the number stored and the first failure
// A preset that failed to store stays dirty for the next Flush
func (s *Store) Flush(ctx context.Context) (int, error) {
	type work struct {
		record *presetRecord
		params *spec.RichParameterList
	}
	var todo []work

	s.mutex.Lock()
	for _, k := range s.cache.Keys() {
		if v, ok := s.cache.Peek(k); ok {
			if record := v.(*presetRecord); record.dirty {
				todo = append(todo, work{record, record.params.Clone()})
			}
		}
	}
	for key, record := range s.evicted {
		todo = append(todo, work{record, record.params.Clone()})
		delete(s.evicted, key)
	}
	s.mutex.Unlock()
	// Must unlock s.mutex before s.kmgr.Set

	var firstErr error
	stored := 0
	for _, w := range todo {
		err := s.kmgr.Set(ctx, w.record.ns, w.record.filter, w.params)
		s.mutex.Lock()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			pi.Log.Infof("Failed to update KubeApi with preset %s.%s: %v", w.record.ns, w.record.filter, err)
			if _, cached := s.cache.Peek(presetKey(w.record.ns, w.record.filter)); !cached {
				s.evicted[presetKey(w.record.ns, w.record.filter)] = w.record
			}
		} else if w.record.fingerprint == w.params.Fingerprint() {
			// not changed by a Put while storing
			w.record.dirty = false
			stored++
		}
		s.mutex.Unlock()
	}
	s.Stats.AddN("stored", stored)
	if stored > 0 {
		pi.Log.Debugf("Flush stored %d presets", stored)
	}
	return stored, firstErr
}

// Configure returns the defaults of filter merged with its preset
func (s *Store) Configure(ctx context.Context, ns string, filter string, md spec.MeshDocument) (*spec.RichParameterList, spec.MergeReport, error) {
	plug := filters.GetPlugByName(filter)
	if plug == nil {
		return nil, spec.MergeReport{}, fmt.Errorf("filter %s: %w", filter, spec.ErrNotFound)
	}
	params, report := filters.Configure(plug, md, s.Get(ctx, ns, plug.PlugName()))
	return params, report, nil
}
