package instance

import (
	"fmt"
	"strings"
)

// Status is the activity state of an instance.
type Status int

const (
	// Running means the session is working.
	Running Status = iota
	// Waiting means the session is idle and waiting for input.
	Waiting
)

var statusNames = map[Status]string{
	Running: "running",
	Waiting: "waiting",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus parses "running" or "waiting", ignoring case.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "running":
		return Running, nil
	case "waiting":
		return Waiting, nil
	}
	return 0, fmt.Errorf("invalid status: %s. Use 'running' or 'waiting'", s)
}

// MarshalText encodes the status as its lowercase name.
func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("invalid status: %d", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a lowercase status name.
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "running":
		*s = Running
	case "waiting":
		*s = Waiting
	default:
		return fmt.Errorf("invalid status: %q", text)
	}
	return nil
}
