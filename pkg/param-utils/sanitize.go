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

package paramutils

// Longest name that still fits a kube resource name once prefixed
const maxNameLen = 56

// Sanitize returns name when it can be used as part of a kube resource name, "" otherwise
// A legal name starts and ends with a lowercase letter and holds only lowercase letters, digits and '-'
func Sanitize(name string) string {
	if len(name) == 0 || len(name) > maxNameLen {
		return ""
	}
	if !isLower(name[0]) || !isLower(name[len(name)-1]) {
		return ""
	}
	for i := 1; i < len(name)-1; i++ {
		c := name[i]
		if !isLower(c) && !(c >= '0' && c <= '9') && c != '-' {
			return ""
		}
	}
	return name
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}
