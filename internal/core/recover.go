// Copyright 2026 The Eventum Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"fmt"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// RecoverStage recovers a panic inside a stage goroutine, logging the
// stack trace through logger (the stage's own tagged entry, so the
// operator's configured level/output applies) and invoking onPanic
// with a synthesized error so the caller can run its normal
// fatal-error shutdown sequence for just that stage instead of taking
// the whole process down.
func RecoverStage(stage string, logger *logrus.Entry, onPanic func(err error)) {
	if r := recover(); r != nil {
		logger.WithField("stack", string(debug.Stack())).
			Errorf("recovered from panic: %v", r)
		onPanic(fmt.Errorf("panic in %s stage: %v", stage, r))
	}
}
