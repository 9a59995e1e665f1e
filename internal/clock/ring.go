package clock

// RingSet tracks which alarms and timers are currently ringing, and owns
// the single shared audible-alert loop: however many entries ring at once,
// there is one loop, started when the set becomes non-empty and stopped
// when it empties. Start and stop are idempotent.
type RingSet struct {
	alarms  map[string]bool
	timers  map[string]bool
	looping bool
	start   func()
	stop    func()
}

// NewRingSet creates a RingSet whose loop is controlled by start/stop.
// Either callback may be nil.
func NewRingSet(start, stop func()) *RingSet {
	return &RingSet{
		alarms: map[string]bool{},
		timers: map[string]bool{},
		start:  start,
		stop:   stop,
	}
}

// Has reports whether the alarm id is already ringing.
func (r *RingSet) Has(id string) bool { return r.alarms[id] }

// HasTimer reports whether the timer id is already ringing.
func (r *RingSet) HasTimer(id string) bool { return r.timers[id] }

// AddAlarm marks an alarm as ringing.
func (r *RingSet) AddAlarm(id string) {
	r.alarms[id] = true
	r.sync()
}

// AddTimer marks a timer as ringing.
func (r *RingSet) AddTimer(id string) {
	r.timers[id] = true
	r.sync()
}

// DismissAlarm silences one alarm.
func (r *RingSet) DismissAlarm(id string) {
	delete(r.alarms, id)
	r.sync()
}

// DismissTimer silences one timer.
func (r *RingSet) DismissTimer(id string) {
	delete(r.timers, id)
	r.sync()
}

// Any reports whether anything is ringing.
func (r *RingSet) Any() bool {
	return len(r.alarms) > 0 || len(r.timers) > 0
}

// sync reconciles the shared loop with the set contents. Starting an
// already running loop or stopping a stopped one is a no-op.
func (r *RingSet) sync() {
	ringing := r.Any()
	if ringing && !r.looping {
		r.looping = true
		if r.start != nil {
			r.start()
		}
	} else if !ringing && r.looping {
		r.looping = false
		if r.stop != nil {
			r.stop()
		}
	}
}
