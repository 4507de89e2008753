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
	"strings"

	goerrors "github.com/go-errors/errors"

	"github.com/yugabyte/relcanon/src/errs"
)

// Render joins the included, non-nil path parts with "." in database,
// schema, identifier order, quoting the parts selected by the quote policy.
func (r Relation) Render() (string, error) {
	parts := make([]string, 0, len(ComponentNames))
	for _, key := range ComponentNames {
		if !r.includePolicy.Get(key) {
			continue
		}
		part := r.path.Get(key)
		if part == nil {
			continue
		}
		if r.quotePolicy.Get(key) {
			parts = append(parts, r.Quoted(*part))
		} else {
			parts = append(parts, *part)
		}
	}
	if len(parts) == 0 {
		return "", goerrors.Errorf("render relation %s: %w", r.path, errs.ErrEmptyRender)
	}
	return strings.Join(parts, "."), nil
}

// Quoted wraps value in the quote character. The value is not escaped.
func (r Relation) Quoted(value string) string {
	return r.quoteCharacter + value + r.quoteCharacter
}
