// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

/*
Package logging provides the process-wide zerolog logger.

The logger works before Init is called (info level, JSON to stderr); main
reconfigures it from the logging section of the configuration:

	logging.Init(logging.Config{
	    Level:     cfg.Logging.Level,
	    Format:    cfg.Logging.Format,
	    Caller:    cfg.Logging.Caller,
	    Timestamp: true,
	})

	logging.Info().Str("path", path).Int("records", n).Msg("Dataset loaded")

Request-scoped logging:

The HTTP middleware stores a request ID in the context. Ctx and the CtxDebug,
CtxInfo, CtxWarn and CtxErr shorthands attach it to every entry:

	logging.CtxDebug(ctx).Str("kind", string(kind)).Msg("View served")

slog bridge:

SlogHandler lets slog-only libraries write through zerolog. The supervisor
tree uses it for sutureslog:

	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger("supervisor")}

Always end an event chain with Msg or Send; an unterminated event is never
written.
*/
package logging
