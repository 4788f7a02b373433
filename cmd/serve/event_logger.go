// Copyright 2022-2025 Arvid Ryndal <arvid@ryndal.dev>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package serve

import (
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/fx/fxevent"
)

type eventLogger struct {
	l zerolog.Logger
}

// LogEvent logs the given event in using the configured zerolog logger.
//
//nolint:cyclop, funlen
func (l *eventLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		l.l.Trace().
			Str("_functionName", e.FunctionName).
			Str("_caller", e.CallerName).
			Msg("OnStart hook executing")
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			l.l.Error().
				Str("_functionName", e.FunctionName).
				Str("_caller", e.CallerName).
				Err(e.Err).
				Msg("OnStart hook failed")
		} else {
			l.l.Trace().
				Str("_functionName", e.FunctionName).
				Str("_caller", e.CallerName).
				Str("_runtime", e.Runtime.String()).
				Msg("OnStart hook executed")
		}
	case *fxevent.OnStopExecuting:
		l.l.Trace().
			Str("_functionName", e.FunctionName).
			Str("_caller", e.CallerName).
			Msg("OnStop hook executing")
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			l.l.Error().
				Str("_functionName", e.FunctionName).
				Str("_caller", e.CallerName).
				Err(e.Err).
				Msg("OnStop hook failed")
		} else {
			l.l.Trace().
				Str("_functionName", e.FunctionName).
				Str("_caller", e.CallerName).
				Str("_runtime", e.Runtime.String()).
				Msg("OnStop hook executed")
		}
	case *fxevent.Supplied:
		if e.Err != nil {
			l.l.Error().
				Str("_type", e.TypeName).
				Strs("_stacktrace", e.StackTrace).
				Strs("_moduleTrace", e.ModuleTrace).
				Str("_module", e.ModuleName).
				Err(e.Err).
				Msg("Error encountered while supplying module")
		} else {
			l.l.Trace().
				Str("_type", e.TypeName).
				Strs("_moduleTrace", e.ModuleTrace).
				Str("_module", e.ModuleName).
				Msg("Module supplied")
		}
	case *fxevent.Provided:
		if e.Err != nil {
			l.l.Error().
				Strs("_stacktrace", e.StackTrace).
				Strs("_moduleTrace", e.ModuleTrace).
				Str("_module", e.ModuleName).
				Err(e.Err).
				Msg("Error encountered while providing module")
		} else {
			l.l.Trace().
				Str("_type", strings.Join(e.OutputTypeNames, ", ")).
				Str("_constructor", e.ConstructorName).
				Strs("_stacktrace", e.StackTrace).
				Strs("_moduleTrace", e.ModuleTrace).
				Str("_module", e.ModuleName).
				Bool("_private", e.Private).
				Msg("Module provided")
		}
	case *fxevent.Replaced:
		if e.Err != nil {
			l.l.Error().
				Strs("_stacktrace", e.StackTrace).
				Strs("_moduleTrace", e.ModuleTrace).
				Str("_module", e.ModuleName).
				Err(e.Err).
				Msg("Error encountered while replacing module")
		} else {
			l.l.Trace().
				Str("_type", strings.Join(e.OutputTypeNames, ", ")).
				Strs("_stacktrace", e.StackTrace).
				Strs("_moduleTrace", e.ModuleTrace).
				Str("_module", e.ModuleName).
				Msg("Module replaced")
		}
	case *fxevent.Decorated:
		if e.Err != nil {
			l.l.Error().
				Strs("_stacktrace", e.StackTrace).
				Strs("_moduleTrace", e.ModuleTrace).
				Str("_module", e.ModuleName).
				Err(e.Err).
				Msg("Error encountered while decorating module")
		} else {
			l.l.Trace().
				Str("_decorator", e.DecoratorName).
				Str("_type", strings.Join(e.OutputTypeNames, ", ")).
				Strs("_stacktrace", e.StackTrace).
				Strs("_moduleTrace", e.ModuleTrace).
				Str("_module", e.ModuleName).
				Msg("Module decorated")
		}
	case *fxevent.Run:
		if e.Err != nil {
			l.l.Error().
				Str("_name", e.Name).
				Str("_kind", e.Kind).
				Str("_module", e.ModuleName).
				Err(e.Err).
				Msg("Error returned")
		} else {
			l.l.Trace().
				Str("_name", e.Name).
				Str("_kind", e.Kind).
				Str("_module", e.ModuleName).
				Str("_runtime", e.Runtime.String()).
				Msg("Starting")
		}
	case *fxevent.Invoking:
		l.l.Trace().
			Str("_function", e.FunctionName).
			Str("_module", e.ModuleName).
			Msg("Invoking module")
	case *fxevent.Invoked:
		if e.Err != nil {
			l.l.Error().
				Str("_function", e.FunctionName).
				Str("_module", e.ModuleName).
				Str("_stack", e.Trace).
				Err(e.Err).
				Msg("Invoke failed")
		} else {
			l.l.Trace().
				Str("_function", e.FunctionName).
				Str("_module", e.ModuleName).
				Str("_stack", e.Trace).
				Msg("Invoked module")
		}
	case *fxevent.Stopping:
		l.l.Trace().
			Str("_signal", strings.ToUpper(e.Signal.String())).
			Msg("Received signal")
	case *fxevent.Stopped:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Msg("Stop failed")
		} else {
			l.l.Trace().Msg("Stopped")
		}
	case *fxevent.RollingBack:
		l.l.Error().Err(e.StartErr).Msg("Start failed, rolling back")
	case *fxevent.RolledBack:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Msg("Rollback failed")
		} else {
			l.l.Trace().Msg("Rollback succeeded")
		}
	case *fxevent.Started:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Msg("Start failed")
		} else {
			l.l.Trace().Msg("Started")
		}
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Msg("Custom logger initialization failed")
		} else {
			l.l.Trace().Str("_constructor", e.ConstructorName).Msg("Custom logger initialized")
		}
	}
}
