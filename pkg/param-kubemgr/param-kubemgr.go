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
	"flag"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	spec "knative.dev/richparam/pkg/apis/param/v1alpha1"
	"knative.dev/richparam/pkg/filterscript"
	pi "knative.dev/richparam/pkg/pluginterfaces"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// This package stores filter presets via KubeApi
// A preset is the parameter list a filter was last configured with
// Each preset is kept in its own ConfigMap as a single entry filter script

const (
	presetPrefix = "preset."
	presetKey    = "Parameters"
)

type KubeMgrInterface interface {
	InitConfigs()
	Read(ctx context.Context, ns string, filter string) (*spec.RichParameterList, error)
	Set(ctx context.Context, ns string, filter string, params *spec.RichParameterList) error
	Delete(ctx context.Context, ns string, filter string) error
	List(ctx context.Context, ns string) ([]string, error)
	GetConfig(ctx context.Context, ns string, cmName string, config map[string]string) error
	Watch(ctx context.Context, ns string, set func(ns string, filter string, params *spec.RichParameterList))
}

// KubeMgr manages preset ConfigMaps
type KubeMgr struct {
	// Function for returning k8s config
	getConfigFunc func() (*rest.Config, error)

	// Kubernetes client for Config Maps
	cmClient kubernetes.Interface
}

func NewKubeMgr() *KubeMgr {
	k := new(KubeMgr)
	k.getConfigFunc = rest.InClusterConfig
	return k
}

// NewKubeMgrWithClient uses an existing client; InitConfigs must not be called
func NewKubeMgrWithClient(client kubernetes.Interface) *KubeMgr {
	k := NewKubeMgr()
	k.cmClient = client
	return k
}

// presetName is the ConfigMap name of a preset; filter names are case insensitive
func presetName(filter string) string {
	return presetPrefix + strings.ToLower(filter)
}

func (k *KubeMgr) getConfigs() *rest.Config {
	var err error
	var kubeCfg *rest.Config
	var devKubeConfigStr *string

	// Try to detect in-cluster config
	if kubeCfg, err = k.getConfigFunc(); err == nil {
		return kubeCfg
	}

	// Not running in cluster
	if home := homedir.HomeDir(); home != "" {
		devKubeConfigStr = flag.String("kubeconfig", filepath.Join(home, ".kube", "config"), "(optional) absolute path to the kubeconfig file")
	} else {
		devKubeConfigStr = flag.String("kubeconfig", "", "absolute path to the kubeconfig file")
	}
	flag.Parse()

	// Use the current context in kubeconfig
	if kubeCfg, err = clientcmd.BuildConfigFromFlags("", *devKubeConfigStr); err != nil {
		panic(fmt.Sprintf("No Config found! err %s", err.Error()))
	}
	return kubeCfg
}

// Initialize the Kubernetes client to communicate with the KubeApi
func (k *KubeMgr) InitConfigs() {
	var err error

	kubeCfg := k.getConfigs()

	k.cmClient, err = kubernetes.NewForConfig(kubeCfg)
	if err != nil {
		panic(err.Error())
	}
}

func decodePreset(cm *corev1.ConfigMap, filter string) (*spec.RichParameterList, error) {
	data, ok := cm.Data[presetKey]
	if !ok || len(data) == 0 {
		// malformed ConfigMap
		return nil, fmt.Errorf("preset configmap %s malformed", cm.Name)
	}

	script, err := filterscript.Parse([]byte(data))
	if err != nil {
		// corrupted ConfigMap
		return nil, fmt.Errorf("preset configmap %s parse error %w", cm.Name, err)
	}
	for _, p := range script.Problems {
		pi.LogOnce.Infof("preset configmap %s: %v", cm.Name, p)
	}
	params, ok := script.Lookup(filter)
	if !ok {
		return nil, fmt.Errorf("preset configmap %s has no filter %s", cm.Name, filter)
	}
	return params, nil
}

func encodePreset(filter string, params *spec.RichParameterList) (string, error) {
	var script filterscript.Script
	script.Add(filter, params)
	data, err := script.Marshal(false)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Read - Reads a preset ConfigMap from KubeApi
// Returns error if can't read a well structured preset
func (k *KubeMgr) Read(ctx context.Context, ns string, filter string) (*spec.RichParameterList, error) {
	cmName := presetName(filter)

	cm, err := k.cmClient.CoreV1().ConfigMaps(ns).Get(ctx, cmName, metav1.GetOptions{})
	if err != nil {
		// can't read ConfigMap
		return nil, fmt.Errorf("preset configmap %s read error %w", cmName, err)
	}
	return decodePreset(cm, filter)
}

// createCm - Create a new preset ConfigMap
// Uses delete and create sequence
// A manual update performed between the delete and the create is lost
func (k *KubeMgr) createCm(ctx context.Context, ns string, filter string, data string) error {
	cmName := presetName(filter)

	// first, try to delete
	k.cmClient.CoreV1().ConfigMaps(ns).Delete(ctx, cmName, metav1.DeleteOptions{})

	// Now create
	cm := new(corev1.ConfigMap)
	cm.Name = cmName
	cm.Data = map[string]string{presetKey: data}

	if _, err := k.cmClient.CoreV1().ConfigMaps(ns).Create(ctx, cm, metav1.CreateOptions{}); err != nil {
		return fmt.Errorf("create configmap %s: error creating resource: %w", cmName, err)
	}
	return nil
}

// Set - Set a preset ConfigMap (Update if exists, create if not)
// A corrupted preset is overwritten
// Using a client side Read then Write sequence.
// A manual update performed after the read and before the write is lost
func (k *KubeMgr) Set(ctx context.Context, ns string, filter string, params *spec.RichParameterList) error {
	cmName := presetName(filter)

	data, err := encodePreset(filter, params)
	if err != nil {
		return fmt.Errorf("set configmap %s: %w", cmName, err)
	}

	cm, err := k.cmClient.CoreV1().ConfigMaps(ns).Get(ctx, cmName, metav1.GetOptions{})
	if err != nil {
		// Failed to read configmap
		if !errors.IsNotFound(err) {
			return fmt.Errorf("set configmap %s: error reading preset %w", cmName, err)
		}
		if err = k.createCm(ctx, ns, filter, data); err != nil {
			return fmt.Errorf("set configmap %s: %w", cmName, err)
		}
		return nil
	}

	// ConfigMap exists - lets update it
	if cm.Data == nil {
		cm.Data = make(map[string]string, 1)
	}
	cm.Data[presetKey] = data

	if _, err = k.cmClient.CoreV1().ConfigMaps(ns).Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("set configmap %s: error updating resource %w", cmName, err)
	}
	return nil
}

// Delete - Deletes a preset, deleting a missing preset is not an error
func (k *KubeMgr) Delete(ctx context.Context, ns string, filter string) error {
	cmName := presetName(filter)
	err := k.cmClient.CoreV1().ConfigMaps(ns).Delete(ctx, cmName, metav1.DeleteOptions{})
	if err != nil && !errors.IsNotFound(err) {
		return fmt.Errorf("delete configmap %s: %w", cmName, err)
	}
	pi.Log.Debugf("Delete preset ns %s filter %s", ns, filter)
	return nil
}

// List - Returns the sorted names of the filters having a preset in ns
func (k *KubeMgr) List(ctx context.Context, ns string) ([]string, error) {
	cms, err := k.cmClient.CoreV1().ConfigMaps(ns).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list configmaps ns %s: %w", ns, err)
	}
	var filters []string
	for _, cm := range cms.Items {
		if strings.HasPrefix(cm.Name, presetPrefix) {
			filters = append(filters, strings.TrimPrefix(cm.Name, presetPrefix))
		}
	}
	sort.Strings(filters)
	return filters, nil
}
