package auth

// CanMutate reports whether callerID may change or delete a resource owned by ownerID.
// Ownership is never inherited: a post owner has no rights over comments written by others.
func CanMutate(ownerID, callerID string) bool {
	return ownerID != "" && ownerID == callerID
}
