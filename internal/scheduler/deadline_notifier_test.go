package scheduler

import (
	"testing"
	"time"

	"github.com/grantboard/grantboard/internal/domain"
	"github.com/grantboard/grantboard/internal/index"
	"github.com/grantboard/grantboard/internal/logger"
	"github.com/grantboard/grantboard/internal/state"
)

var notifierNow = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

func notifierGrant(id string, deadlineOffsetDays int) *domain.Grant {
	return &domain.Grant{
		ID:       id,
		Title:    "Grant " + id,
		Deadline: notifierNow.AddDate(0, 0, deadlineOffsetDays).Format("2006-01-02"),
	}
}

func newTestNotifier(t *testing.T, grants []*domain.Grant, bookmarked []string) (*DeadlineNotifier, *state.State) {
	t.Helper()

	cat := index.NewCatalog()
	cat.Update(grants)

	st := state.New()
	for _, id := range bookmarked {
		st.ToggleBookmark(id)
	}

	dn := NewDeadlineNotifier(cat, st, logger.New("error", false), time.Hour)
	dn.SetTimeNow(func() time.Time { return notifierNow })
	return dn, st
}

func TestDeadlineNotifier_Check(t *testing.T) {
	grants := []*domain.Grant{
		notifierGrant("due-soon", 3),
		notifierGrant("due-window-edge", 7),
		notifierGrant("due-today", 0),
		notifierGrant("due-later", 10),
		notifierGrant("expired", -1),
		{ID: "rolling", Title: "Rolling Grant", Deadline: "rolling"},
	}
	bookmarked := []string{"due-soon", "due-window-edge", "due-today", "due-later", "expired", "rolling"}

	dn, _ := newTestNotifier(t, grants, bookmarked)

	count := dn.Check()
	if count != 2 {
		t.Errorf("expected 2 urgent grants, got %d", count)
	}

	lastCheck, lastCount := dn.LastCheck()
	if !lastCheck.Equal(notifierNow) {
		t.Errorf("expected lastCheck %v, got %v", notifierNow, lastCheck)
	}
	if lastCount != 2 {
		t.Errorf("expected lastCount 2, got %d", lastCount)
	}
}

func TestDeadlineNotifier_IgnoresUnbookmarked(t *testing.T) {
	grants := []*domain.Grant{
		notifierGrant("bookmarked", 3),
		notifierGrant("not-bookmarked", 3),
	}

	dn, _ := newTestNotifier(t, grants, []string{"bookmarked"})

	if count := dn.Check(); count != 1 {
		t.Errorf("expected 1 urgent grant, got %d", count)
	}
}

func TestDeadlineNotifier_DisabledNotifications(t *testing.T) {
	grants := []*domain.Grant{notifierGrant("due-soon", 3)}

	dn, st := newTestNotifier(t, grants, []string{"due-soon"})

	prefs := st.GetPreferences()
	prefs.NotificationsEnabled = false
	st.SetPreferences(prefs)

	if count := dn.Check(); count != 0 {
		t.Errorf("expected 0 with notifications disabled, got %d", count)
	}
}

func TestDeadlineNotifier_BookmarkMissingFromCatalog(t *testing.T) {
	grants := []*domain.Grant{notifierGrant("present", 3)}

	dn, st := newTestNotifier(t, grants, []string{"present"})
	st.ToggleBookmark("gone-from-catalog")

	if count := dn.Check(); count != 1 {
		t.Errorf("expected 1 urgent grant, got %d", count)
	}
}
