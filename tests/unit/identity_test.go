package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/service"
)

func TestIdentityService_SetDisplayName(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		parts := new(MockParticipantRepo)
		svc := service.NewIdentityService(passthroughTx{}, parts)

		parts.On("GetByDisplayName", ctx, "Book Fan 99").Return(nil, domain.ErrNotFound)
		parts.On("EnsureRegistered", ctx, "acct1").Return(&domain.Participant{Account: "acct1"}, nil)
		parts.On("UpdateDisplayName", ctx, "acct1", "Book Fan 99").Return(nil)

		assert.NoError(t, svc.SetDisplayName(ctx, "acct1", "Book Fan 99"))
		parts.AssertExpectations(t)
	})

	t.Run("Invalid Format", func(t *testing.T) {
		parts := new(MockParticipantRepo)
		svc := service.NewIdentityService(passthroughTx{}, parts)

		for _, name := range []string{
			"ab",                        // too short
			"this name is far too long", // too long
			"naïve",                     // non-ASCII
			"semi;colon",                // punctuation
			"",
		} {
			assert.ErrorIs(t, svc.SetDisplayName(ctx, "acct1", name), domain.ErrInvalidName, name)
		}
		parts.AssertNotCalled(t, "UpdateDisplayName", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Name Taken", func(t *testing.T) {
		parts := new(MockParticipantRepo)
		svc := service.NewIdentityService(passthroughTx{}, parts)

		parts.On("GetByDisplayName", ctx, "Reader One").Return(&domain.Participant{Account: "other"}, nil)

		assert.ErrorIs(t, svc.SetDisplayName(ctx, "acct1", "Reader One"), domain.ErrNameTaken)
	})

	t.Run("Rebinding Own Name Succeeds", func(t *testing.T) {
		parts := new(MockParticipantRepo)
		svc := service.NewIdentityService(passthroughTx{}, parts)

		parts.On("GetByDisplayName", ctx, "Reader One").Return(&domain.Participant{Account: "acct1"}, nil)
		parts.On("EnsureRegistered", ctx, "acct1").Return(&domain.Participant{Account: "acct1"}, nil)
		parts.On("UpdateDisplayName", ctx, "acct1", "Reader One").Return(nil)

		assert.NoError(t, svc.SetDisplayName(ctx, "acct1", "Reader One"))
	})
}

func TestIdentityService_SetContactEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		parts := new(MockParticipantRepo)
		svc := service.NewIdentityService(passthroughTx{}, parts)

		parts.On("EnsureRegistered", ctx, "acct1").Return(&domain.Participant{Account: "acct1"}, nil)
		parts.On("UpdateEmail", ctx, "acct1", "reader@example.com").Return(nil)

		assert.NoError(t, svc.SetContactEmail(ctx, "acct1", "reader@example.com"))
	})

	t.Run("Empty Email", func(t *testing.T) {
		parts := new(MockParticipantRepo)
		svc := service.NewIdentityService(passthroughTx{}, parts)

		assert.ErrorIs(t, svc.SetContactEmail(ctx, "acct1", ""), domain.ErrInvalidArgument)
	})
}

func TestIdentityService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Known Account", func(t *testing.T) {
		parts := new(MockParticipantRepo)
		svc := service.NewIdentityService(passthroughTx{}, parts)

		parts.On("GetByAccount", ctx, "acct1").Return(&domain.Participant{Account: "acct1", DisplayName: "Reader One", BooksLent: 3}, nil)

		p, err := svc.GetProfile(ctx, "acct1")
		assert.NoError(t, err)
		assert.Equal(t, "Reader One", p.DisplayName)
		assert.Equal(t, int64(3), p.BooksLent)
	})

	t.Run("Unknown Account Gets Zero Profile", func(t *testing.T) {
		parts := new(MockParticipantRepo)
		svc := service.NewIdentityService(passthroughTx{}, parts)

		parts.On("GetByAccount", ctx, "ghost").Return(nil, domain.ErrNotFound)

		p, err := svc.GetProfile(ctx, "ghost")
		assert.NoError(t, err)
		assert.Equal(t, "ghost", p.Account)
		assert.Empty(t, p.DisplayName)
		assert.Zero(t, p.BooksLent)
	})
}
