// Package ui is the Bubble Tea terminal client for anirex.
package ui

import (
	"anirex/internal/catalog"
	"anirex/internal/collection"
	"anirex/internal/identity"
	"anirex/internal/loader"
	"anirex/internal/profile"
	"anirex/internal/review"
)

// PageLoaded is sent when a LoadNext call for a list pane returns.
type PageLoaded struct {
	Pane    int
	Outcome loader.Outcome
	Err     error
}

// DetailLoaded carries an item and its reviews. Seq correlates the reply
// with the detail request that is currently shown.
type DetailLoaded struct {
	Seq     int
	Item    catalog.Item
	Listing review.Listing
	Err     error
}

type ReviewSubmitted struct {
	ItemID string
	Entry  review.Entry
	Err    error
}

type CollectionLoaded struct {
	Kind    collection.Kind
	Entries []collection.Entry
	Err     error
}

type CollectionToggled struct {
	Kind   collection.Kind
	ItemID string
	Added  bool
	Err    error
}

type ProfileLoaded struct {
	Profile profile.Profile
	Err     error
}

type ProfileSaved struct {
	Profile profile.Profile
	Err     error
}

// IdentityChanged relays a value observed on the identity cell.
type IdentityChanged struct {
	Snapshot identity.Snapshot
	closed   bool
}

type SignedIn struct {
	User identity.User
	Err  error
}

type SignedOut struct {
	Err error
}
