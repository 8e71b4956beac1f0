package types

import "fmt"

// ------------------------------
// Request validation
// ------------------------------
//
// The server is the authority on payload semantics; locally we only reject
// requests that cannot form a well-defined URL or body.

// ValidateIDPresent rejects empty identifiers before they reach a path segment.
func ValidateIDPresent(id, field string) error {
	if id == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	return nil
}

// ValidateDirection rejects directions outside the service's enum.
func ValidateDirection(d AllowlistDirection) error {
	switch d {
	case DirectionInbound, DirectionOutbound, DirectionBoth:
		return nil
	}
	return fmt.Errorf("invalid allowlist direction %q", d)
}
