// Package permission implements the flat capability model used across the
// portal: a role carries an unordered set of opaque permission strings and a
// route or page is gated on membership. There is no hierarchy and no
// wildcarding; "user:update" does not imply "user:read".
package permission

// Has reports whether the held set contains the required permission.
func Has(held []string, required string) bool {
	for _, p := range held {
		if p == required {
			return true
		}
	}
	return false
}

// HasAny reports whether the held set contains at least one of the required
// permissions. An empty required set imposes no restriction and is
// vacuously true.
func HasAny(held []string, required ...string) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if Has(held, r) {
			return true
		}
	}
	return false
}

// HasAll reports whether the held set contains every required permission.
// An empty required set is vacuously true.
func HasAll(held []string, required ...string) bool {
	for _, r := range required {
		if !Has(held, r) {
			return false
		}
	}
	return true
}
