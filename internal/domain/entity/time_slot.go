package entity

import (
	"fmt"
	"strings"
	"time"
)

// SlotPolicy decides how an appointment's display time maps to a time slot key
type SlotPolicy string

const (
	// SlotPolicyToken keys by the first token of the display time ("9:00 AM" -> "9:00").
	// AM and PM appointments at the same clock time share a slot.
	SlotPolicyToken SlotPolicy = "token"
	// SlotPolicyHour24 keys by the parsed 24-hour time ("9:00 PM" -> "21:00")
	SlotPolicyHour24 SlotPolicy = "hour24"
)

const displayTimeLayout = "3:04 PM"

// ParseSlotPolicy converts a config value into a SlotPolicy
func ParseSlotPolicy(s string) (SlotPolicy, error) {
	switch p := SlotPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", SlotPolicyToken:
		return SlotPolicyToken, nil
	case SlotPolicyHour24:
		return p, nil
	}
	return "", fmt.Errorf("unknown slot policy %q", s)
}

// Key returns the slot key for a display time such as "10:30 AM"
func (p SlotPolicy) Key(displayTime string) string {
	token := displayTime
	if fields := strings.Fields(displayTime); len(fields) > 0 {
		token = fields[0]
	}

	if p == SlotPolicyHour24 {
		t, err := time.Parse(displayTimeLayout, strings.ToUpper(strings.Join(strings.Fields(displayTime), " ")))
		if err == nil {
			return t.Format("15:04")
		}
	}
	return token
}

// TimeSlot is a group of appointments sharing a slot key
type TimeSlot struct {
	Key          string
	Appointments []Appointment
}

// GroupByTimeSlot buckets appointments by slot key. Slots appear in order of
// first occurrence and appointments keep their input order inside a slot.
func GroupByTimeSlot(appointments []Appointment, policy SlotPolicy) []TimeSlot {
	slots := make([]TimeSlot, 0)
	index := make(map[string]int)
	for _, a := range appointments {
		key := policy.Key(a.Time)
		i, ok := index[key]
		if !ok {
			i = len(slots)
			index[key] = i
			slots = append(slots, TimeSlot{Key: key})
		}
		slots[i].Appointments = append(slots[i].Appointments, a)
	}
	return slots
}

// Flatten concatenates the slots back into a single list
func Flatten(slots []TimeSlot) []Appointment {
	var out []Appointment
	for _, s := range slots {
		out = append(out, s.Appointments...)
	}
	return out
}
