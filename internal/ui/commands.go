package ui

import (
	"context"

	"anirex/internal/collection"
	"anirex/internal/identity"
	"anirex/internal/profile"

	tea "github.com/charmbracelet/bubbletea"
)

func loadDetail(ctx context.Context, b Backend, seq int, itemID string) tea.Cmd {
	return func() tea.Msg {
		item, err := b.Anime(ctx, itemID)
		if err != nil {
			return DetailLoaded{Seq: seq, Err: err}
		}
		listing, err := b.Reviews(ctx, itemID)
		return DetailLoaded{Seq: seq, Item: item, Listing: listing, Err: err}
	}
}

func submitReview(ctx context.Context, b Backend, itemID, text string, rating float64) tea.Cmd {
	return func() tea.Msg {
		e, err := b.SubmitReview(ctx, itemID, text, rating)
		return ReviewSubmitted{ItemID: itemID, Entry: e, Err: err}
	}
}

func loadCollection(ctx context.Context, b Backend, kind collection.Kind) tea.Cmd {
	return func() tea.Msg {
		entries, err := b.Collection(ctx, kind)
		return CollectionLoaded{Kind: kind, Entries: entries, Err: err}
	}
}

func toggleCollection(ctx context.Context, b Backend, kind collection.Kind, itemID string, add bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if add {
			err = b.AddToCollection(ctx, kind, itemID)
		} else {
			err = b.RemoveFromCollection(ctx, kind, itemID)
		}
		return CollectionToggled{Kind: kind, ItemID: itemID, Added: add, Err: err}
	}
}

func loadProfile(ctx context.Context, b Backend) tea.Cmd {
	return func() tea.Msg {
		p, err := b.Profile(ctx)
		return ProfileLoaded{Profile: p, Err: err}
	}
}

func saveProfile(ctx context.Context, b Backend, cmd profile.UpdateCommand) tea.Cmd {
	return func() tea.Msg {
		p, err := b.UpdateProfile(ctx, cmd)
		return ProfileSaved{Profile: p, Err: err}
	}
}

func signIn(ctx context.Context, b Backend, email, password string) tea.Cmd {
	return func() tea.Msg {
		u, err := b.Login(ctx, email, password, true)
		return SignedIn{User: u, Err: err}
	}
}

func signOut(ctx context.Context, b Backend) tea.Cmd {
	return func() tea.Msg {
		return SignedOut{Err: b.Logout(ctx)}
	}
}

// watchIdentity waits for the next value on ch.
func watchIdentity(ch <-chan identity.Snapshot) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		return IdentityChanged{Snapshot: s, closed: !ok}
	}
}
