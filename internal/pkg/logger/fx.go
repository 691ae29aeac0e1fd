package logger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

type fxLogger struct {
	l zerolog.Logger
}

var _ fxevent.Logger = (*fxLogger)(nil)

// Fx routes fx lifecycle events into the global zerolog logger.
func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.
			With().
			Str("component", "fx").
			Logger(),
	}
}

func (f *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			f.l.Error().Err(e.Err).
				Str("evt.name", "fx.start.hook.failed").
				Str("callee", e.FunctionName).
				Str("caller", e.CallerName).
				Msg("OnStart hook failed")
			return
		}
		f.l.Trace().
			Str("evt.name", "fx.start.hook").
			Str("callee", e.FunctionName).
			Dur("runtime", e.Runtime).
			Msg("OnStart hook executed")
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			f.l.Error().Err(e.Err).
				Str("evt.name", "fx.stop.hook.failed").
				Str("callee", e.FunctionName).
				Msg("OnStop hook failed")
			return
		}
		f.l.Trace().
			Str("evt.name", "fx.stop.hook").
			Str("callee", e.FunctionName).
			Dur("runtime", e.Runtime).
			Msg("OnStop hook executed")
	case *fxevent.Provided:
		if e.Err != nil {
			f.l.Error().Err(e.Err).
				Str("evt.name", "fx.provide.failed").
				Str("constructor", e.ConstructorName).
				Msg("error encountered while applying options")
			return
		}
		for _, t := range e.OutputTypeNames {
			f.l.Trace().
				Str("evt.name", "fx.provide").
				Str("constructor", e.ConstructorName).
				Str("type", t).
				Msg("provided")
		}
	case *fxevent.Invoked:
		if e.Err != nil {
			f.l.Error().Err(e.Err).
				Str("evt.name", "fx.invoke.failed").
				Str("function", e.FunctionName).
				Str("stack", e.Trace).
				Msg("invoke failed")
		}
	case *fxevent.Started:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("evt.name", "fx.start.failed").Msg("start failed")
			return
		}
		f.l.Debug().Str("evt.name", "fx.started").Msg("started")
	case *fxevent.Stopped:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("evt.name", "fx.stop.failed").Msg("stop failed")
		}
	case *fxevent.RollingBack:
		f.l.Error().Err(e.StartErr).Str("evt.name", "fx.rollback").Msg("start failed, rolling back")
	case *fxevent.Stopping:
		f.l.Info().Str("evt.name", "fx.stopping").Str("signal", e.Signal.String()).Msg("received signal")
	}
}
