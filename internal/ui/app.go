package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"anirex/internal/apperr"
	"anirex/internal/catalog"
	"anirex/internal/collection"
	"anirex/internal/identity"
	"anirex/internal/loader"
	"anirex/internal/profile"
	"anirex/internal/review"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeHome mode = iota
	modeSearch
	modeDetail
	modeReview
	modeLogin
	modeCollection
	modeProfile
)

type Config struct {
	// Rows from the end of a list at which the next page is requested.
	Threshold    int
	FetchTimeout time.Duration
}

type detailState struct {
	seq     int
	itemID  string
	item    catalog.Item
	listing review.Listing
	loading bool
	full    bool
	back    mode
	// unavailable is terminal: the catalog has no such item.
	unavailable bool
}

type profileState struct {
	current profile.Profile
	loading bool
}

type collectionState struct {
	kind    collection.Kind
	entries []collection.Entry
	cursor  int
	loading bool
}

// App is the root Bubble Tea model. It talks to the API only through
// commands built from Backend.
type App struct {
	ctx     context.Context
	backend Backend
	cfg     Config

	identityCh  <-chan identity.Snapshot
	unsubscribe func()
	user        identity.User
	signedIn   bool

	mode   mode
	panes  []*pane
	active int

	search        *pane
	searchInput   textinput.Model
	searchEditing bool

	detail     detailState
	collection collectionState
	member     map[collection.Kind]map[string]bool

	profile profileState

	reviewForm  form
	loginForm   form
	profileForm form

	spinner spinner.Model
	err     error
	status  string
	width   int
	height  int
	ready   bool
}

// NewApp builds the app. cell may be nil when there is no signed-in state
// to follow.
func NewApp(ctx context.Context, b Backend, cell *identity.Cell, cfg Config) App {
	if cfg.Threshold <= 0 {
		cfg.Threshold = loader.DefaultThreshold
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = loader.DefaultFetchTimeout
	}

	panes := make([]*pane, 0, len(catalog.Categories))
	for i, c := range catalog.Categories {
		panes = append(panes, newPane(i, c.Label(), b, listQuery{Category: c}, cfg.FetchTimeout))
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	si := textinput.New()
	si.Placeholder = "title genre:action score:7 year:2019"
	si.Prompt = "/ "

	a := App{
		ctx:         ctx,
		backend:     b,
		cfg:         cfg,
		panes:       panes,
		search:      newPane(searchPane, "Search", b, listQuery{}, cfg.FetchTimeout),
		searchInput: si,
		member: map[collection.Kind]map[string]bool{
			collection.Favorites: {},
			collection.Watchlist: {},
		},
		reviewForm:  newReviewForm(),
		loginForm:   newLoginForm(),
		profileForm: newProfileForm(),
		spinner:     sp,
	}
	if cell != nil {
		a.identityCh, a.unsubscribe = cell.Subscribe()
	}
	return a
}

// Close releases the identity subscription. It is safe to call more than once.
func (a App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.Close()
	return a, tea.Quit
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick, watchIdentity(a.identityCh)}
	for _, p := range a.panes {
		cmds = append(cmds, p.loadNext(a.ctx))
	}
	return tea.Batch(cmds...)
}

func (a App) paneByID(id int) *pane {
	if id == searchPane {
		return a.search
	}
	if id >= 0 && id < len(a.panes) {
		return a.panes[id]
	}
	return nil
}

// currentList is the list the cursor keys act on.
func (a App) currentList() *pane {
	if a.mode == modeSearch {
		return a.search
	}
	return a.panes[a.active]
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.ready = true
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case PageLoaded:
		p := a.paneByID(msg.Pane)
		if p == nil || msg.Outcome.Stale {
			return a, nil
		}
		p.pending = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		// Short first pages may not fill the screen; keep going until the
		// cursor is far enough from the end.
		if msg.Outcome.Appended > 0 {
			return a, p.maybeLoad(a.ctx, a.cfg.Threshold)
		}
		return a, nil

	case DetailLoaded:
		if msg.Seq != a.detail.seq {
			return a, nil
		}
		a.detail.loading = false
		if errors.Is(msg.Err, apperr.ErrNotFound) {
			a.detail.unavailable = true
			return a, nil
		}
		a.detail.item = msg.Item
		a.detail.listing = msg.Listing
		if msg.Err != nil {
			a.err = msg.Err
		}
		return a, nil

	case ReviewSubmitted:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		if a.detail.itemID == msg.ItemID {
			entries := append([]review.Entry{msg.Entry}, a.detail.listing.Entries...)
			a.detail.listing = review.Listing{Entries: entries, Summary: review.Summarize(entries)}
		}
		a.status = "Review posted"
		return a, nil

	case CollectionLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.collection.loading = false
			return a, nil
		}
		set := make(map[string]bool, len(msg.Entries))
		for _, e := range msg.Entries {
			set[e.ItemID] = true
		}
		a.member[msg.Kind] = set
		if a.collection.kind == msg.Kind {
			a.collection.entries = msg.Entries
			a.collection.loading = false
			if a.collection.cursor >= len(msg.Entries) {
				a.collection.cursor = 0
			}
		}
		return a, nil

	case CollectionToggled:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.member[msg.Kind][msg.ItemID] = msg.Added
		if !msg.Added && a.collection.kind == msg.Kind {
			a.collection.drop(msg.ItemID)
		}
		verb := "Removed from"
		if msg.Added {
			verb = "Added to"
		}
		a.status = fmt.Sprintf("%s %s", verb, msg.Kind)
		return a, nil

	case IdentityChanged:
		if msg.closed {
			return a, nil
		}
		a.user, a.signedIn = msg.Snapshot.User, msg.Snapshot.SignedIn
		cmds := []tea.Cmd{watchIdentity(a.identityCh)}
		if a.signedIn {
			cmds = append(cmds,
				loadCollection(a.ctx, a.backend, collection.Favorites),
				loadCollection(a.ctx, a.backend, collection.Watchlist))
		} else {
			a.member[collection.Favorites] = map[string]bool{}
			a.member[collection.Watchlist] = map[string]bool{}
		}
		return a, tea.Batch(cmds...)

	case ProfileLoaded:
		a.profile.loading = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.profile.current = msg.Profile
		if a.mode != modeProfile {
			return a, nil
		}
		return a, a.profileForm.fill(msg.Profile.Name, msg.Profile.Bio, msg.Profile.Phone)

	case ProfileSaved:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.profile.current = msg.Profile
		a.status = "Profile saved"
		return a, nil

	case SignedIn:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.mode = modeHome
		a.status = "Signed in as " + msg.User.DisplayName
		return a, nil

	case SignedOut:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.status = "Signed out"
		if a.mode == modeCollection || a.mode == modeProfile {
			a.mode = modeHome
		}
		a.profile = profileState{}
		return a, nil
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}
	// Any key dismisses the error bar.
	if a.err != nil {
		a.err = nil
		if msg.String() == "esc" {
			return a, nil
		}
	}
	a.status = ""

	switch a.mode {
	case modeSearch:
		if a.searchEditing {
			return a.handleSearchInput(msg)
		}
		return a.handleList(msg)
	case modeDetail:
		return a.handleDetail(msg)
	case modeReview:
		return a.handleReviewForm(msg)
	case modeLogin:
		return a.handleLoginForm(msg)
	case modeCollection:
		return a.handleCollection(msg)
	case modeProfile:
		return a.handleProfileForm(msg)
	}
	return a.handleList(msg)
}

func (a App) handleList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := a.currentList()
	switch msg.String() {
	case "q":
		return a.quit()
	case "j", "down":
		p.move(1)
		return a, p.maybeLoad(a.ctx, a.cfg.Threshold)
	case "k", "up":
		p.move(-1)
		return a, nil
	case "g", "home":
		p.cursor = 0
		return a, nil
	case "G", "end":
		p.move(len(p.list.Snapshot().Items))
		return a, p.maybeLoad(a.ctx, a.cfg.Threshold)
	case "r":
		return a, p.loadNext(a.ctx)
	case "tab", "l", "right":
		if a.mode == modeHome {
			a.active = (a.active + 1) % len(a.panes)
			return a, a.panes[a.active].maybeLoad(a.ctx, a.cfg.Threshold)
		}
	case "shift+tab", "h", "left":
		if a.mode == modeHome {
			a.active = (a.active + len(a.panes) - 1) % len(a.panes)
			return a, a.panes[a.active].maybeLoad(a.ctx, a.cfg.Threshold)
		}
	case "/":
		a.mode = modeSearch
		a.searchEditing = true
		return a, a.searchInput.Focus()
	case "esc":
		if a.mode == modeSearch {
			a.mode = modeHome
		}
		return a, nil
	case "enter":
		if it, ok := p.selected(); ok {
			return a.openDetail(it.ID)
		}
	case "F":
		return a.openCollection(collection.Favorites)
	case "W":
		return a.openCollection(collection.Watchlist)
	case "P":
		return a.openProfile()
	case "L":
		a.mode = modeLogin
		return a, a.loginForm.open()
	case "O":
		if a.signedIn {
			return a, signOut(a.ctx, a.backend)
		}
	}
	return a, nil
}

func (a App) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		q, err := parseSearch(a.searchInput.Value())
		if err != nil {
			a.err = err
			return a, nil
		}
		a.searchEditing = false
		a.searchInput.Blur()
		a.search.reset(listQuery{Search: q})
		return a, a.search.loadNext(a.ctx)
	case "esc":
		a.searchEditing = false
		a.searchInput.Blur()
		if len(a.search.list.Snapshot().Items) == 0 {
			a.mode = modeHome
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a App) openDetail(itemID string) (tea.Model, tea.Cmd) {
	back := a.mode
	if back == modeDetail || back == modeReview {
		back = a.detail.back
	}
	a.detail = detailState{
		seq:     a.detail.seq + 1,
		itemID:  itemID,
		loading: true,
		back:    back,
	}
	a.mode = modeDetail
	return a, loadDetail(a.ctx, a.backend, a.detail.seq, itemID)
}

func (a App) requireSignIn(action string) error {
	if a.signedIn {
		return nil
	}
	return fmt.Errorf("sign in to %s: %w", action, apperr.ErrAuthRequired)
}

func (a App) handleDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a.quit()
	case "esc", "backspace":
		a.mode = a.detail.back
		a.detail.seq++
		if a.mode == modeCollection {
			// Membership may have changed while the item was open.
			return a, loadCollection(a.ctx, a.backend, a.collection.kind)
		}
		return a, nil
	}
	if a.detail.unavailable {
		return a, nil
	}
	switch msg.String() {
	case "s":
		a.detail.full = !a.detail.full
		return a, nil
	case "f", "w":
		kind := collection.Favorites
		if msg.String() == "w" {
			kind = collection.Watchlist
		}
		if err := a.requireSignIn("edit your " + string(kind)); err != nil {
			a.err = err
			return a, nil
		}
		add := !a.member[kind][a.detail.itemID]
		return a, toggleCollection(a.ctx, a.backend, kind, a.detail.itemID, add)
	case "r":
		if err := a.requireSignIn("write a review"); err != nil {
			a.err = err
			return a, nil
		}
		a.mode = modeReview
		return a, a.reviewForm.open()
	}
	return a, nil
}

func (a App) handleReviewForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeDetail
		return a, nil
	case "tab", "shift+tab":
		return a, a.reviewForm.next()
	case "enter":
		text, rating, err := parseReview(a.reviewForm.value(0), a.reviewForm.value(1))
		if err != nil {
			a.err = err
			return a, nil
		}
		a.mode = modeDetail
		return a, submitReview(a.ctx, a.backend, a.detail.itemID, text, rating)
	}
	return a, a.reviewForm.update(msg)
}

func (a App) handleLoginForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeHome
		return a, nil
	case "tab", "shift+tab":
		return a, a.loginForm.next()
	case "enter":
		email, password := a.loginForm.value(0), a.loginForm.fields[1].Value()
		if email == "" || password == "" {
			a.err = fmt.Errorf("email and password are required: %w", apperr.ErrValidation)
			return a, nil
		}
		return a, signIn(a.ctx, a.backend, email, password)
	}
	return a, a.loginForm.update(msg)
}

func (a App) openCollection(kind collection.Kind) (tea.Model, tea.Cmd) {
	if err := a.requireSignIn("see your " + string(kind)); err != nil {
		a.err = err
		return a, nil
	}
	a.mode = modeCollection
	a.collection = collectionState{kind: kind, loading: true}
	return a, loadCollection(a.ctx, a.backend, kind)
}

func (a App) handleCollection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &a.collection
	switch msg.String() {
	case "q":
		return a.quit()
	case "esc":
		a.mode = modeHome
	case "j", "down":
		if c.cursor < len(c.entries)-1 {
			c.cursor++
		}
	case "k", "up":
		if c.cursor > 0 {
			c.cursor--
		}
	case "tab":
		next := collection.Watchlist
		if c.kind == collection.Watchlist {
			next = collection.Favorites
		}
		return a.openCollection(next)
	case "enter":
		if c.cursor < len(c.entries) {
			return a.openDetail(c.entries[c.cursor].ItemID)
		}
	case "d", "x":
		if c.cursor < len(c.entries) {
			return a, toggleCollection(a.ctx, a.backend, c.kind, c.entries[c.cursor].ItemID, false)
		}
	}
	return a, nil
}

// drop removes an item locally and keeps the cursor in range.
func (c *collectionState) drop(itemID string) {
	kept := make([]collection.Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.ItemID != itemID {
			kept = append(kept, e)
		}
	}
	c.entries = kept
	if c.cursor >= len(kept) && c.cursor > 0 {
		c.cursor = len(kept) - 1
	}
}

func (a App) openProfile() (tea.Model, tea.Cmd) {
	if err := a.requireSignIn("see your profile"); err != nil {
		a.err = err
		return a, nil
	}
	a.mode = modeProfile
	a.profile.loading = true
	return a, loadProfile(a.ctx, a.backend)
}

func (a App) handleProfileForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeHome
		return a, nil
	case "tab", "shift+tab":
		return a, a.profileForm.next()
	case "enter":
		if a.profile.loading {
			return a, nil
		}
		cmd, err := parseProfile(a.profileForm.value(0), a.profileForm.value(1), a.profileForm.value(2))
		if err != nil {
			a.err = err
			return a, nil
		}
		return a, saveProfile(a.ctx, a.backend, cmd)
	}
	return a, a.profileForm.update(msg)
}

// errorText phrases an error for the error bar.
func errorText(err error) string {
	switch {
	case errors.Is(err, apperr.ErrAuthRequired):
		return err.Error() + " (press L to sign in)"
	case errors.Is(err, apperr.ErrNetwork):
		return "network problem: " + err.Error()
	case errors.Is(err, apperr.ErrNotFound):
		return "not found"
	}
	return err.Error()
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var body string
	switch a.mode {
	case modeHome, modeSearch:
		body = a.viewList()
	case modeDetail:
		body = a.viewDetail()
	case modeReview:
		body = a.viewDetailHeader() + "\n" + Title.Render("Write a review") + "\n" +
			a.reviewForm.view("Review", "Rating (1-10)")
	case modeLogin:
		body = Title.Render("Sign in") + "\n" + a.loginForm.view("Email", "Password")
	case modeCollection:
		body = a.viewCollection()
	case modeProfile:
		body = a.viewProfile()
	}

	var b strings.Builder
	b.WriteString(a.viewHeader())
	b.WriteString("\n")
	b.WriteString(body)
	if a.err != nil {
		b.WriteString(ErrorStyle.Width(a.width).Render("Error: " + errorText(a.err) + " (press any key to dismiss)"))
		b.WriteString("\n")
	}
	b.WriteString(a.viewStatusBar())
	return b.String()
}

func (a App) viewHeader() string {
	who := "not signed in"
	if a.signedIn {
		who = review.DisplayName(a.user.DisplayName)
	}
	left := Title.Render("anirex")
	right := Muted.Render(who)
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (a App) viewList() string {
	var b strings.Builder
	if a.mode == modeSearch {
		b.WriteString(a.searchInput.View())
		b.WriteString("\n")
	} else {
		tabs := make([]string, 0, len(a.panes))
		for i, p := range a.panes {
			if i == a.active {
				tabs = append(tabs, TabActive.Render(p.title))
			} else {
				tabs = append(tabs, TabInactive.Render(p.title))
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
		b.WriteString("\n")
	}
	b.WriteString(a.currentList().render(a.width, a.height-5, a.spinner.View()))
	return b.String()
}

func (a App) viewDetailHeader() string {
	it := a.detail.item
	line := Title.Render(it.Title)
	if it.Score != nil {
		line += " " + ScoreBadge.Render(fmt.Sprintf("%.2f", *it.Score))
	}
	return line
}

func (a App) viewDetail() string {
	if a.detail.loading {
		return Muted.Render(a.spinner.View()+" loading...") + "\n"
	}
	if a.detail.unavailable {
		return Title.Render("This title is unavailable") + "\n" +
			Muted.Render("It is not in the catalog. Press esc to go back.") + "\n"
	}
	it := a.detail.item
	var b strings.Builder
	b.WriteString(a.viewDetailHeader())
	b.WriteString("\n")

	var facts []string
	if it.EpisodeCount != nil {
		facts = append(facts, fmt.Sprintf("%d episodes", *it.EpisodeCount))
	}
	if len(it.Genres) > 0 {
		facts = append(facts, strings.Join(it.Genres, ", "))
	}
	if a.member[collection.Favorites][it.ID] {
		facts = append(facts, "favorite")
	}
	if a.member[collection.Watchlist][it.ID] {
		facts = append(facts, "on watchlist")
	}
	if len(facts) > 0 {
		b.WriteString(Muted.Render(strings.Join(facts, " | ")))
		b.WriteString("\n")
	}

	synopsis := catalog.ShortSynopsis(it.Synopsis)
	if a.detail.full {
		synopsis = it.Synopsis
	}
	b.WriteString(NormalItem.Width(a.width - 2).Render(synopsis))
	b.WriteString("\n\n")

	sum := a.detail.listing.Summary
	if sum.Count == 0 {
		b.WriteString(Muted.Render("No reviews yet"))
	} else {
		b.WriteString(Title.Render(fmt.Sprintf("User rating %.1f/10 from %d reviews", sum.Average, sum.Count)))
	}
	b.WriteString("\n")
	for _, e := range a.detail.listing.Entries {
		b.WriteString(NormalItem.Render(fmt.Sprintf("%s  %s  %s",
			ScoreBadge.Render(fmt.Sprintf("%.1f", e.Rating)),
			review.DisplayName(e.AuthorName),
			e.CreatedAt.Local().Format("2006-01-02"))))
		b.WriteString("\n")
		b.WriteString(Muted.Width(a.width - 2).Render(e.Text))
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) viewCollection() string {
	c := a.collection
	var b strings.Builder
	label := "Favorites"
	if c.kind == collection.Watchlist {
		label = "Watchlist"
	}
	b.WriteString(Title.Render(label))
	b.WriteString("\n")
	switch {
	case c.loading:
		b.WriteString(Muted.Render(a.spinner.View() + " loading..."))
		b.WriteString("\n")
	case len(c.entries) == 0:
		b.WriteString(EndOfList.Render("nothing here yet"))
		b.WriteString("\n")
	}
	for i, e := range c.entries {
		if i == c.cursor {
			b.WriteString(SelectedItem.Render(e.Title))
		} else {
			b.WriteString(NormalItem.Render(e.Title))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) viewProfile() string {
	var b strings.Builder
	b.WriteString(Title.Render("Profile"))
	b.WriteString("\n")
	if a.profile.loading {
		b.WriteString(Muted.Render(a.spinner.View() + " loading..."))
		b.WriteString("\n")
		return b.String()
	}
	if a.profile.current.Email != "" {
		b.WriteString(Muted.Render(a.profile.current.Email))
		b.WriteString("\n")
	}
	b.WriteString(a.profileForm.view("Name", "Bio", "Phone"))
	return b.String()
}

func (a App) viewStatusBar() string {
	var hints []string
	key := func(k, desc string) string { return StatusBarKey.Render(k) + " " + desc }
	switch a.mode {
	case modeHome:
		hints = []string{key("tab", "feed"), key("/", "search"), key("enter", "open"), key("F/W", "lists"), key("P", "profile")}
	case modeSearch:
		hints = []string{key("/", "edit"), key("enter", "open"), key("esc", "home")}
	case modeDetail:
		if a.detail.unavailable {
			hints = []string{key("esc", "back")}
			break
		}
		hints = []string{key("f", "favorite"), key("w", "watchlist"), key("r", "review"), key("s", "synopsis"), key("esc", "back")}
	case modeReview, modeLogin, modeProfile:
		hints = []string{key("tab", "next field"), key("enter", "submit"), key("esc", "cancel")}
	case modeCollection:
		hints = []string{key("tab", "switch list"), key("enter", "open"), key("d", "remove"), key("esc", "home")}
	}
	if a.signedIn {
		hints = append(hints, key("O", "sign out"))
	} else {
		hints = append(hints, key("L", "sign in"))
	}
	text := strings.Join(hints, "  ")
	if a.status != "" {
		text = a.status + "  " + text
	}
	return StatusBar.Width(a.width).Render(text)
}
