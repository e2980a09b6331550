package model

import "errors"

// Domain error kinds. Every core operation recovers storage and crypto
// failures into one of these before returning; the HTTP layer translates
// them exactly once.
var (
	// ErrInvalidCredentials covers both unknown username and password
	// mismatch so the two cases are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrConflict signals a uniqueness violation: duplicate username,
	// store name, or (store, name) pair for items and tags.
	ErrConflict = errors.New("resource already exists")

	ErrInvalidToken   = errors.New("token is invalid")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenRevoked   = errors.New("token has been revoked")
	ErrTokenStale     = errors.New("fresh token required")
	ErrWrongTokenKind = errors.New("wrong token kind")

	// ErrAdminRequired is returned when a policy demands the is_admin
	// claim and the presented token does not carry it.
	ErrAdminRequired = errors.New("admin privilege required")

	ErrNotFound = errors.New("not found")

	ErrAlreadyLinked = errors.New("tag is already linked to item")
	ErrNotLinked     = errors.New("tag is not linked to item")

	// ErrStoreMismatch rejects linking an item and a tag that belong to
	// different stores.
	ErrStoreMismatch = errors.New("item and tag belong to different stores")

	// ErrTagInUse rejects deletion of a tag that still has linked items.
	ErrTagInUse = errors.New("tag is linked to one or more items")

	ErrInvalidPrice = errors.New("item price must not be negative")

	// ErrStorageUnavailable marks transient storage failures. It is the
	// only kind callers may retry, and only for idempotent lookups.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)
