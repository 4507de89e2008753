/*
Copyright (c) YugabyteDB, Inc.

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
package relation

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ComponentName names one part of a relation path.
type ComponentName string

const (
	ComponentDatabase   ComponentName = "database"
	ComponentSchema     ComponentName = "schema"
	ComponentIdentifier ComponentName = "identifier"
)

// ComponentNames lists the parts in rendering order.
var ComponentNames = []ComponentName{ComponentDatabase, ComponentSchema, ComponentIdentifier}

func (c ComponentName) String() string {
	return string(c)
}

func ParseComponentName(s string) (ComponentName, error) {
	name := ComponentName(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(ComponentNames, name) {
		return "", fmt.Errorf("got a key of %q, expected one of %v", s, ComponentNames)
	}
	return name, nil
}
