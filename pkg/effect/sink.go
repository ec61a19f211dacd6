package effect

// Sink consumes effects. Implementations must not block for long; they run
// inline with the mutation that produced the effect.
type Sink interface {
	Notify(Effect)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Effect)

// Notify implements Sink.
func (f SinkFunc) Notify(e Effect) { f(e) }

// Discard drops every effect.
var Discard Sink = SinkFunc(func(Effect) {})

// Multi fans an effect out to several sinks. None effects are not forwarded.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(e Effect) {
		if e.Kind == None {
			return
		}
		for _, s := range sinks {
			if s != nil {
				s.Notify(e)
			}
		}
	})
}

// Recorder keeps every effect it receives. Used by tests and the TUI status
// line.
type Recorder struct {
	Effects []Effect
}

// Notify implements Sink.
func (r *Recorder) Notify(e Effect) {
	r.Effects = append(r.Effects, e)
}

// Last returns the most recent effect, or a None effect.
func (r *Recorder) Last() Effect {
	if len(r.Effects) == 0 {
		return Effect{}
	}
	return r.Effects[len(r.Effects)-1]
}

// Kinds lists the kinds recorded so far.
func (r *Recorder) Kinds() []Kind {
	out := make([]Kind, len(r.Effects))
	for i, e := range r.Effects {
		out[i] = e.Kind
	}
	return out
}
