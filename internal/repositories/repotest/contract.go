// Package repotest - общий набор проверок, который проходит каждый бэкенд
// хранилища (memory, postgres, mongo).
package repotest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run прогоняет все проверки на store. Между подтестами данные очищаются.
func Run(t *testing.T, store *repositories.Store) {
	t.Run("Users", func(t *testing.T) { runUsers(t, store) })
	t.Run("Messages", func(t *testing.T) { runMessages(t, store) })
	t.Run("SupportTickets", func(t *testing.T) { runTickets(t, store) })
}

func reset(t *testing.T, store *repositories.Store) {
	t.Helper()
	ctx := context.Background()
	_, err := store.Messages.DeleteAll(ctx)
	require.NoError(t, err)
	_, err = store.Users.DeleteAll(ctx)
	require.NoError(t, err)
}

// NewUser создает и сохраняет пользователя с заданными email и ролью
func NewUser(t *testing.T, store *repositories.Store, email string, role models.UserRole) *models.User {
	t.Helper()
	u := &models.User{
		FirstName:    "First",
		LastName:     "Last",
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
		Location:     "Mumbai, India",
	}
	require.NoError(t, store.Users.Create(context.Background(), u))
	require.NotEmpty(t, u.ID)
	return u
}

func runUsers(t *testing.T, store *repositories.Store) {
	ctx := context.Background()

	t.Run("create and find", func(t *testing.T) {
		reset(t, store)
		u := NewUser(t, store, "Priya.Sharma@Creator.com", models.UserRoleCreator)
		assert.Equal(t, "priya.sharma@creator.com", u.Email)

		byEmail, err := store.Users.FindByEmail(ctx, "PRIYA.sharma@creator.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)
		assert.Equal(t, models.UserRoleCreator, byEmail.Role)
		assert.Equal(t, "hash", byEmail.PasswordHash)

		byID, err := store.Users.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.Email, byID.Email)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		reset(t, store)
		NewUser(t, store, "dup@x.com", models.UserRoleCreator)

		err := store.Users.Create(ctx, &models.User{
			FirstName: "B", LastName: "B", Email: "DUP@x.com", PasswordHash: "h", Role: models.UserRoleSponsor,
		})
		assert.ErrorIs(t, err, repositories.ErrUserAlreadyExists)
	})

	t.Run("missing user", func(t *testing.T) {
		reset(t, store)
		u := NewUser(t, store, "gone@x.com", models.UserRoleSponsor)
		deleted, err := store.Users.Delete(ctx, "gone@x.com")
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = store.Users.FindByEmail(ctx, "gone@x.com")
		assert.ErrorIs(t, err, repositories.ErrUserNotFound)
		_, err = store.Users.FindByID(ctx, u.ID)
		assert.ErrorIs(t, err, repositories.ErrUserNotFound)

		deleted, err = store.Users.Delete(ctx, "gone@x.com")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("find by ids skips missing", func(t *testing.T) {
		reset(t, store)
		a := NewUser(t, store, "a@x.com", models.UserRoleCreator)
		b := NewUser(t, store, "b@x.com", models.UserRoleSponsor)
		_, err := store.Users.Delete(ctx, "b@x.com")
		require.NoError(t, err)

		users, err := store.Users.FindByIDs(ctx, []string{a.ID, b.ID})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, a.ID, users[0].ID)
	})

	t.Run("update profile", func(t *testing.T) {
		reset(t, store)
		NewUser(t, store, "c@x.com", models.UserRoleCreator)

		bio := "Tech reviewer"
		followers := int64(42000)
		links := []models.Link{{Label: "YouTube", URL: "https://youtube.com/@c"}}
		updated, err := store.Users.UpdateProfile(ctx, "C@x.com", models.ProfileUpdate{
			Bio: &bio, Followers: &followers, Links: &links,
		})
		require.NoError(t, err)
		assert.Equal(t, "Tech reviewer", updated.Bio)
		assert.Equal(t, int64(42000), updated.Followers)
		require.Len(t, updated.Links, 1)
		assert.Equal(t, "YouTube", updated.Links[0].Label)
		assert.Equal(t, "First", updated.FirstName)
		assert.Equal(t, models.UserRoleCreator, updated.Role)

		_, err = store.Users.UpdateProfile(ctx, "nobody@x.com", models.ProfileUpdate{Bio: &bio})
		assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	})

	t.Run("discover paginates and excludes", func(t *testing.T) {
		reset(t, store)
		NewUser(t, store, "a@x.com", models.UserRoleCreator)
		for i := 1; i <= 5; i++ {
			NewUser(t, store, fmt.Sprintf("creator%d@x.com", i), models.UserRoleCreator)
		}
		NewUser(t, store, "sponsor1@x.com", models.UserRoleSponsor)

		page, total, err := store.Users.Discover(ctx, repositories.UserFilter{
			Role: models.UserRoleCreator, ExcludeEmail: "a@x.com", Offset: 2, Limit: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		require.Len(t, page, 2)
		assert.Equal(t, "creator3@x.com", page[0].Email)
		assert.Equal(t, "creator4@x.com", page[1].Email)

		all, total, err := store.Users.Discover(ctx, repositories.UserFilter{ExcludeEmail: "a@x.com", Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, int64(6), total)
		assert.Len(t, all, 6)
	})

	t.Run("maintenance deletes", func(t *testing.T) {
		reset(t, store)
		NewUser(t, store, "kept@x.com", models.UserRoleCreator)
		noLoc := &models.User{FirstName: "N", LastName: "L", Email: "noloc@x.com", PasswordHash: "h", Role: models.UserRoleSponsor}
		require.NoError(t, store.Users.Create(ctx, noLoc))

		n, err := store.Users.DeleteWithoutLocation(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		users, err := store.Users.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "kept@x.com", users[0].Email)

		n, err = store.Users.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func runMessages(t *testing.T, store *repositories.Store) {
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	send := func(t *testing.T, from, to *models.User, content string, at time.Duration) *models.Message {
		t.Helper()
		m := &models.Message{SenderID: from.ID, ReceiverID: to.ID, Content: content, Timestamp: base.Add(at)}
		require.NoError(t, store.Messages.Create(ctx, m))
		require.NotEmpty(t, m.ID)
		return m
	}

	t.Run("between and by participant", func(t *testing.T) {
		reset(t, store)
		a := NewUser(t, store, "a@x.com", models.UserRoleCreator)
		b := NewUser(t, store, "b@x.com", models.UserRoleSponsor)
		c := NewUser(t, store, "c@x.com", models.UserRoleSponsor)

		m1 := send(t, a, b, "Hello", time.Minute)
		m2 := send(t, b, a, "Hi back", 2*time.Minute)
		m3 := send(t, a, c, "Other", 3*time.Minute)
		m4 := send(t, a, b, "How are you?", 4*time.Minute)

		ab, err := store.Messages.FindBetween(ctx, a.ID, b.ID)
		require.NoError(t, err)
		ba, err := store.Messages.FindBetween(ctx, b.ID, a.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{m1.ID, m2.ID, m4.ID}, messageIDs(ab))
		assert.Equal(t, messageIDs(ab), messageIDs(ba))
		assert.False(t, ab[0].Read)

		all, err := store.Messages.FindByParticipant(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{m4.ID, m3.ID, m2.ID, m1.ID}, messageIDs(all))
	})

	t.Run("mark read is limited to ids and receiver", func(t *testing.T) {
		reset(t, store)
		a := NewUser(t, store, "a@x.com", models.UserRoleCreator)
		b := NewUser(t, store, "b@x.com", models.UserRoleSponsor)

		m1 := send(t, a, b, "one", time.Minute)
		m2 := send(t, a, b, "two", 2*time.Minute)
		m3 := send(t, a, b, "three", 3*time.Minute)
		mine := send(t, b, a, "reply", 4*time.Minute)

		count, err := store.Messages.CountUnread(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		n, err := store.Messages.MarkRead(ctx, b.ID, []string{m1.ID, m2.ID, mine.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		n, err = store.Messages.MarkRead(ctx, b.ID, []string{m1.ID, m2.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		count, err = store.Messages.CountUnread(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		ab, err := store.Messages.FindBetween(ctx, a.ID, b.ID)
		require.NoError(t, err)
		read := map[string]bool{}
		for _, m := range ab {
			read[m.ID] = m.Read
		}
		assert.True(t, read[m1.ID])
		assert.True(t, read[m2.ID])
		assert.False(t, read[m3.ID])
		assert.False(t, read[mine.ID])

		n, err = store.Messages.MarkRead(ctx, b.ID, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func runTickets(t *testing.T, store *repositories.Store) {
	ctx := context.Background()
	email := fmt.Sprintf("support-%d@x.com", time.Now().UnixNano())

	first := &models.SupportTicket{Name: "A", Email: email, Message: "Cannot log in"}
	require.NoError(t, store.Tickets.Create(ctx, first))
	assert.Equal(t, models.TicketStatusOpen, first.Status)
	assert.NotEmpty(t, first.ID)

	time.Sleep(5 * time.Millisecond)
	second := &models.SupportTicket{Name: "A", Email: email, Message: "Still broken"}
	require.NoError(t, store.Tickets.Create(ctx, second))

	tickets, err := store.Tickets.ListByEmail(ctx, email)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, second.ID, tickets[0].ID)
	assert.Equal(t, first.ID, tickets[1].ID)
}

func messageIDs(msgs []models.Message) []string {
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	return ids
}
