package qdrant

import "github.com/google/uuid"

// NormalizePointID maps an arbitrary caller-supplied identifier into
// Qdrant's native identifier space. UUID-formatted identifiers pass
// through unchanged; anything else is hashed into a name-based (version 5)
// UUID under a fixed namespace, so the same caller id always yields the
// same backend id. The mapping is one-way: the caller id is recovered from
// the stored payload, not re-derived.
func NormalizePointID(callerID string) string {
	if _, err := uuid.Parse(callerID); err == nil {
		return callerID
	}
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(callerID)).String()
}

// normalizePointIDs maps a batch of caller identifiers.
func normalizePointIDs(callerIDs []string) []string {
	ids := make([]string, len(callerIDs))
	for i, id := range callerIDs {
		ids[i] = NormalizePointID(id)
	}
	return ids
}
