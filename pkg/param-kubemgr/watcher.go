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

package paramkubemgr

import (
	"context"
	"fmt"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/watch"
	spec "knative.dev/richparam/pkg/apis/param/v1alpha1"
	pi "knative.dev/richparam/pkg/pluginterfaces"
)

var (
	watchRestartDelay = 100 * time.Second
	watchIdleTimeout  = 10 * time.Minute
)

// Watch returns when ctx is done - use with a goroutine
// set is called with the new preset of a filter, or nil when the preset was deleted or is unusable
func (k *KubeMgr) Watch(ctx context.Context, ns string, set func(ns string, filter string, params *spec.RichParameterList)) {
	for {
		if err := k.WatchOnce(ctx, ns, set); err != nil {
			pi.Log.Infof("%v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(watchRestartDelay):
		}
	}
}

// WatchOnce watches preset ConfigMaps until the watch breaks or ctx is done
func (k *KubeMgr) WatchOnce(ctx context.Context, ns string, set func(ns string, filter string, params *spec.RichParameterList)) (e error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			e = fmt.Errorf("recovered from panic while watching presets for ns %s! recover: %v", ns, recovered)
		}
	}()
	watcherCm, err := k.cmClient.CoreV1().ConfigMaps(ns).Watch(ctx, metav1.ListOptions{})
	if err != nil {
		return fmt.Errorf("watch cm ns %s err %w", ns, err)
	}
	defer watcherCm.Stop()
	chCm := watcherCm.ResultChan()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-chCm:
			if !ok {
				// the channel got closed, so we need to restart
				return fmt.Errorf("watch cm ns %s kubernetes hung up on us, restarting event watcher", ns)
			}

			switch event.Type {
			case watch.Deleted, watch.Modified, watch.Added:
				cm, ok := event.Object.(*corev1.ConfigMap)
				if !ok {
					return fmt.Errorf("watch cm ns %s kubernetes cant convert to type configmap", ns)
				}
				if !strings.HasPrefix(cm.Name, presetPrefix) {
					continue
				}
				filter := strings.TrimPrefix(cm.Name, presetPrefix)
				if event.Type == watch.Deleted {
					set(cm.Namespace, filter, nil)
					continue
				}
				params, err := decodePreset(cm, filter)
				if err != nil {
					pi.Log.Infof("watch preset ns %s filter %s: %v", cm.Namespace, filter, err)
					set(cm.Namespace, filter, nil)
					continue
				}
				set(cm.Namespace, filter, params)
			case watch.Error:
				if s, ok := event.Object.(*metav1.Status); ok {
					pi.Log.Infof("Error during watch CM: %s", s.Message)
				}
			}
		case <-time.After(watchIdleTimeout):
			// deal with the issue where we get no events
			return fmt.Errorf("watch cm ns %s timeout, restarting event watcher", ns)
		}
	}
}
