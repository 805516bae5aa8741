package services_test

import (
	"context"
	"testing"

	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories"
	"sponsorly_backend/internal/services"
	"sponsorly_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.user(t, "a@x.com", models.UserRoleCreator)
	b := f.user(t, "b@x.com", models.UserRoleSponsor)

	t.Run("creates unread message", func(t *testing.T) {
		msg, err := f.services.MessageService.SendMessage(ctx, "A@x.com", "b@x.com", "  Hello  ")
		require.NoError(t, err)
		assert.NotEmpty(t, msg.ID)
		assert.Equal(t, "Hello", msg.Content)
		assert.False(t, msg.Read)
		assert.Equal(t, a.ID, msg.Sender.ID)
		assert.Equal(t, b.ID, msg.Receiver.ID)
		assert.Equal(t, "b@x.com", msg.Receiver.Email)

		list, err := f.services.MessageService.GetMessages(ctx, "a@x.com", "b@x.com")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, msg.ID, list[0].ID)
	})

	t.Run("errors", func(t *testing.T) {
		cases := []struct {
			name     string
			from, to string
			content  string
			want     error
		}{
			{"missing receiver", "a@x.com", "", "hi", apperrors.ErrMissingFields},
			{"missing content", "a@x.com", "b@x.com", "", apperrors.ErrMissingFields},
			{"blank content", "a@x.com", "b@x.com", "   ", apperrors.ErrEmptyContent},
			{"self message", "a@x.com", "A@X.com", "hi", apperrors.ErrSelfMessage},
			{"unknown sender", "ghost@x.com", "b@x.com", "hi", apperrors.ErrSenderNotFound},
			{"unknown receiver", "a@x.com", "ghost@x.com", "hi", apperrors.ErrReceiverNotFound},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := f.services.MessageService.SendMessage(ctx, tc.from, tc.to, tc.content)
				assert.ErrorIs(t, err, tc.want)
			})
		}

		// ни одна ошибочная отправка не создала записей
		msgs, err := f.store.Messages.FindByParticipant(ctx, a.ID)
		require.NoError(t, err)
		assert.Len(t, msgs, 1)
	})
}

func TestGetMessages_DirectionAgnostic(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "a@x.com", models.UserRoleCreator)
	f.user(t, "b@x.com", models.UserRoleSponsor)
	f.user(t, "c@x.com", models.UserRoleSponsor)

	f.send(t, "a@x.com", "b@x.com", "one")
	f.send(t, "b@x.com", "a@x.com", "two")
	f.send(t, "a@x.com", "c@x.com", "other pair")
	f.send(t, "a@x.com", "b@x.com", "three")

	ab, err := f.services.MessageService.GetMessages(ctx, "a@x.com", "b@x.com")
	require.NoError(t, err)
	ba, err := f.services.MessageService.GetMessages(ctx, "b@x.com", "a@x.com")
	require.NoError(t, err)

	require.Len(t, ab, 3)
	require.Len(t, ba, 3)
	for i := range ab {
		assert.Equal(t, ab[i].ID, ba[i].ID)
	}
	assert.Equal(t, []string{"one", "two", "three"}, []string{ab[0].Content, ab[1].Content, ab[2].Content})
	for i := 1; i < len(ab); i++ {
		assert.True(t, ab[i-1].Timestamp.Before(ab[i].Timestamp))
	}

	_, err = f.services.MessageService.GetMessages(ctx, "a@x.com", "ghost@x.com")
	assert.ErrorIs(t, err, apperrors.ErrOtherUserNotFound)
	_, err = f.services.MessageService.GetMessages(ctx, "ghost@x.com", "a@x.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	_, err = f.services.MessageService.GetMessages(ctx, "", "a@x.com")
	assert.ErrorIs(t, err, apperrors.ErrMissingUserEmail)
}

func TestGetMessages_MarksPartnerMessagesReadOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "a@x.com", models.UserRoleCreator)
	f.user(t, "b@x.com", models.UserRoleSponsor)
	f.user(t, "c@x.com", models.UserRoleSponsor)

	f.send(t, "b@x.com", "a@x.com", "from b 1")
	f.send(t, "b@x.com", "a@x.com", "from b 2")
	f.send(t, "c@x.com", "a@x.com", "from c")
	f.send(t, "a@x.com", "b@x.com", "from a")

	count, err := f.services.MessageService.GetUnreadCount(ctx, "a@x.com")
	require.NoError(t, err)
	require.EqualValues(t, 3, count)

	list, err := f.services.MessageService.GetMessages(ctx, "a@x.com", "b@x.com")
	require.NoError(t, err)
	for _, m := range list {
		if m.Sender.Email == "b@x.com" {
			assert.True(t, m.Read, "incoming message should be returned as read")
		} else {
			// просмотр A не трогает сообщения, которые A отправил сам
			assert.False(t, m.Read)
		}
	}

	count, err = f.services.MessageService.GetUnreadCount(ctx, "a@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "only the message from c stays unread")

	// повторный просмотр ничего не меняет
	_, err = f.services.MessageService.GetMessages(ctx, "a@x.com", "b@x.com")
	require.NoError(t, err)
	count, err = f.services.MessageService.GetUnreadCount(ctx, "a@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// сообщение, пришедшее после просмотра, остается непрочитанным
	f.send(t, "b@x.com", "a@x.com", "late")
	count, err = f.services.MessageService.GetUnreadCount(ctx, "a@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	bUnread, err := f.services.MessageService.GetUnreadCount(ctx, "b@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, bUnread)
}

func TestConversationScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.user(t, "a@x.com", models.UserRoleCreator)
	f.user(t, "b@x.com", models.UserRoleSponsor)

	f.send(t, "a@x.com", "b@x.com", "Hello")
	f.send(t, "b@x.com", "a@x.com", "Hi back")
	f.send(t, "a@x.com", "b@x.com", "How are you?")

	convs, err := f.services.MessageService.GetConversations(ctx, "b@x.com")
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, a.ID, convs[0].OtherUser.ID)
	assert.Equal(t, "a@x.com", convs[0].OtherUser.Email)
	assert.Equal(t, "How are you?", convs[0].LastMessage.Content)
	assert.Equal(t, "a@x.com", convs[0].LastMessage.Sender.Email)
	assert.Equal(t, "b@x.com", convs[0].LastMessage.Receiver.Email)
	assert.Equal(t, 2, convs[0].UnreadCount)

	// getConversations не меняет состояние
	count, err := f.services.MessageService.GetUnreadCount(ctx, "b@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	_, err = f.services.MessageService.GetMessages(ctx, "b@x.com", "a@x.com")
	require.NoError(t, err)

	count, err = f.services.MessageService.GetUnreadCount(ctx, "b@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestGetConversations_OrderingAndUnread(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "u@x.com", models.UserRoleCreator)
	f.user(t, "p1@x.com", models.UserRoleSponsor)
	f.user(t, "p2@x.com", models.UserRoleSponsor)
	f.user(t, "p3@x.com", models.UserRoleSponsor)

	f.send(t, "p1@x.com", "u@x.com", "p1 first")
	f.send(t, "u@x.com", "p2@x.com", "to p2")
	f.send(t, "p3@x.com", "u@x.com", "p3 only")
	f.send(t, "p1@x.com", "u@x.com", "p1 last")
	f.send(t, "p2@x.com", "u@x.com", "p2 reply")

	convs, err := f.services.MessageService.GetConversations(ctx, "u@x.com")
	require.NoError(t, err)
	require.Len(t, convs, 3)

	emails := []string{convs[0].OtherUser.Email, convs[1].OtherUser.Email, convs[2].OtherUser.Email}
	assert.Equal(t, []string{"p2@x.com", "p1@x.com", "p3@x.com"}, emails)
	assert.Equal(t, "p2 reply", convs[0].LastMessage.Content)
	assert.Equal(t, "p1 last", convs[1].LastMessage.Content)
	assert.Equal(t, 1, convs[0].UnreadCount)
	assert.Equal(t, 2, convs[1].UnreadCount)
	assert.Equal(t, 1, convs[2].UnreadCount)

	total := 0
	for _, c := range convs {
		total += c.UnreadCount
	}
	count, err := f.services.MessageService.GetUnreadCount(ctx, "u@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, total, count)

	empty, err := f.services.MessageService.GetConversations(ctx, "p3@x.com")
	require.NoError(t, err)
	require.Len(t, empty, 1)
	assert.Equal(t, 0, empty[0].UnreadCount)

	_, err = f.services.MessageService.GetConversations(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetConversations_DeletedPartner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "u@x.com", models.UserRoleCreator)
	f.user(t, "gone1@x.com", models.UserRoleSponsor)
	f.user(t, "gone2@x.com", models.UserRoleSponsor)
	f.user(t, "alive@x.com", models.UserRoleSponsor)

	f.send(t, "gone1@x.com", "u@x.com", "old")
	f.send(t, "alive@x.com", "u@x.com", "still here")
	f.send(t, "u@x.com", "gone2@x.com", "newest to deleted")

	for _, email := range []string{"gone1@x.com", "gone2@x.com"} {
		deleted, err := f.store.Users.Delete(ctx, email)
		require.NoError(t, err)
		require.True(t, deleted)
	}

	convs, err := f.services.MessageService.GetConversations(ctx, "u@x.com")
	require.NoError(t, err)
	require.Len(t, convs, 2)

	deleted := convs[0]
	assert.Equal(t, "", deleted.OtherUser.Email)
	assert.Equal(t, "Deleted", deleted.OtherUser.FirstName)
	assert.Equal(t, "User", deleted.OtherUser.LastName)
	assert.Equal(t, "newest to deleted", deleted.LastMessage.Content)
	assert.Equal(t, 1, deleted.UnreadCount)

	assert.Equal(t, "alive@x.com", convs[1].OtherUser.Email)
}

// ascendingMessages отдает сообщения участника в обратном (возрастающем) порядке
type ascendingMessages struct {
	repositories.MessageRepository
}

func (r ascendingMessages) FindByParticipant(ctx context.Context, userID string) ([]models.Message, error) {
	msgs, err := r.MessageRepository.FindByParticipant(ctx, userID)
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, err
}

func TestGetConversations_UnorderedStore(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "a@x.com", models.UserRoleCreator)
	f.user(t, "b@x.com", models.UserRoleSponsor)
	f.user(t, "c@x.com", models.UserRoleSponsor)

	f.send(t, "a@x.com", "b@x.com", "Hello")
	f.send(t, "c@x.com", "b@x.com", "Hi from c")
	f.send(t, "b@x.com", "a@x.com", "Hi")
	f.send(t, "a@x.com", "b@x.com", "How are you?")

	svc := services.NewMessageService(f.store.Users, ascendingMessages{f.store.Messages}, services.WithClock(f.clock.Now))

	convs, err := svc.GetConversations(ctx, "b@x.com")
	require.NoError(t, err)
	require.Len(t, convs, 2)

	assert.Equal(t, "a@x.com", convs[0].OtherUser.Email)
	assert.Equal(t, "How are you?", convs[0].LastMessage.Content)
	assert.Equal(t, 2, convs[0].UnreadCount)

	assert.Equal(t, "c@x.com", convs[1].OtherUser.Email)
	assert.Equal(t, "Hi from c", convs[1].LastMessage.Content)
	assert.Equal(t, 1, convs[1].UnreadCount)
}
