package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/errors"
	"seedfund/internal/shared/logger"
)

type fakeOTPRepository struct {
	CreateFunc               func(ctx context.Context, code *account.OTPCode) error
	GetLatestMatchingFunc    func(ctx context.Context, email, code string, purpose account.OTPPurpose) (*account.OTPCode, error)
	GetLatestOutstandingFunc func(ctx context.Context, email string, purpose account.OTPPurpose) (*account.OTPCode, error)
	MarkUsedFunc             func(ctx context.Context, id uint) (bool, error)
	IncrementAttemptsFunc    func(ctx context.Context, id uint) error
	CountCreatedSinceFunc    func(ctx context.Context, email string, purpose account.OTPPurpose, since time.Time) (int64, error)
	DeleteExpiredBeforeFunc  func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (f *fakeOTPRepository) Create(ctx context.Context, code *account.OTPCode) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, code)
	}
	return nil
}

func (f *fakeOTPRepository) GetLatestMatching(ctx context.Context, email, code string, purpose account.OTPPurpose) (*account.OTPCode, error) {
	if f.GetLatestMatchingFunc != nil {
		return f.GetLatestMatchingFunc(ctx, email, code, purpose)
	}
	return nil, nil
}

func (f *fakeOTPRepository) GetLatestOutstanding(ctx context.Context, email string, purpose account.OTPPurpose) (*account.OTPCode, error) {
	if f.GetLatestOutstandingFunc != nil {
		return f.GetLatestOutstandingFunc(ctx, email, purpose)
	}
	return nil, nil
}

func (f *fakeOTPRepository) MarkUsed(ctx context.Context, id uint) (bool, error) {
	if f.MarkUsedFunc != nil {
		return f.MarkUsedFunc(ctx, id)
	}
	return true, nil
}

func (f *fakeOTPRepository) IncrementAttempts(ctx context.Context, id uint) error {
	if f.IncrementAttemptsFunc != nil {
		return f.IncrementAttemptsFunc(ctx, id)
	}
	return nil
}

func (f *fakeOTPRepository) CountCreatedSince(ctx context.Context, email string, purpose account.OTPPurpose, since time.Time) (int64, error) {
	if f.CountCreatedSinceFunc != nil {
		return f.CountCreatedSinceFunc(ctx, email, purpose, since)
	}
	return 0, nil
}

func (f *fakeOTPRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if f.DeleteExpiredBeforeFunc != nil {
		return f.DeleteExpiredBeforeFunc(ctx, cutoff)
	}
	return 0, nil
}

type fakeSender struct {
	SendOTPEmailFunc func(to, displayName, code string, purpose account.OTPPurpose) error
}

func (f *fakeSender) SendOTPEmail(to, displayName, code string, purpose account.OTPPurpose) error {
	if f.SendOTPEmailFunc != nil {
		return f.SendOTPEmailFunc(to, displayName, code, purpose)
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                  {}
func (nopLogger) Info(msg string, args ...any)                   {}
func (nopLogger) Warn(msg string, args ...any)                   {}
func (nopLogger) Error(msg string, args ...any)                  {}
func (nopLogger) With(args ...any) logger.Interface              { return nopLogger{} }
func (nopLogger) Named(name string) logger.Interface             { return nopLogger{} }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newEngine(repo *fakeOTPRepository, sender *fakeSender) *OTPEngine {
	return NewOTPEngine(repo, sender, OTPEngineConfig{}, nopLogger{})
}

func outstandingCode(code string) *account.OTPCode {
	now := time.Now().UTC()
	return &account.OTPCode{
		ID:        1,
		AccountID: 1,
		Email:     "user@example.com",
		Code:      code,
		Purpose:   account.OTPPurposeLogin,
		CreatedAt: now,
		ExpiresAt: now.Add(10 * time.Minute),
	}
}

func TestOTPEngine_IssuePersistsBeforeSending(t *testing.T) {
	var order []string
	repo := &fakeOTPRepository{
		CreateFunc: func(ctx context.Context, code *account.OTPCode) error {
			order = append(order, "create")
			assert.Len(t, code.Code, 6)
			assert.Equal(t, "user@example.com", code.Email)
			return nil
		},
	}
	sender := &fakeSender{
		SendOTPEmailFunc: func(to, displayName, code string, purpose account.OTPPurpose) error {
			order = append(order, "send")
			return nil
		},
	}
	engine := newEngine(repo, sender)

	err := engine.Issue(context.Background(), 1, "User@Example.com", "User", account.OTPPurposeLogin)

	require.NoError(t, err)
	assert.Equal(t, []string{"create", "send"}, order)
}

func TestOTPEngine_IssueRefusedInsideResendWindow(t *testing.T) {
	repo := &fakeOTPRepository{
		CountCreatedSinceFunc: func(ctx context.Context, email string, purpose account.OTPPurpose, since time.Time) (int64, error) {
			return 1, nil
		},
	}
	created := false
	repo.CreateFunc = func(ctx context.Context, code *account.OTPCode) error {
		created = true
		return nil
	}
	engine := newEngine(repo, &fakeSender{})

	err := engine.Issue(context.Background(), 1, "user@example.com", "User", account.OTPPurposeLogin)

	require.Error(t, err)
	assert.True(t, errors.IsRateLimitError(err))
	assert.False(t, created)
}

func TestOTPEngine_IssueDeliveryFailureIsExternalServiceError(t *testing.T) {
	sender := &fakeSender{
		SendOTPEmailFunc: func(to, displayName, code string, purpose account.OTPPurpose) error {
			return assert.AnError
		},
	}
	engine := newEngine(&fakeOTPRepository{}, sender)

	err := engine.Issue(context.Background(), 1, "user@example.com", "User", account.OTPPurposeLogin)

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeExternalService, appErr.Type)
}

func TestOTPEngine_VerifyConsumesMatchingCode(t *testing.T) {
	code := outstandingCode("123456")
	var gotEmail, gotCode string
	repo := &fakeOTPRepository{
		GetLatestMatchingFunc: func(ctx context.Context, email, submitted string, purpose account.OTPPurpose) (*account.OTPCode, error) {
			gotEmail = email
			gotCode = submitted
			return code, nil
		},
	}
	engine := newEngine(repo, &fakeSender{})

	got, err := engine.Verify(context.Background(), "User@Example.com", "123456", account.OTPPurposeLogin)

	require.NoError(t, err)
	assert.Equal(t, code.ID, got.ID)
	assert.Equal(t, "user@example.com", gotEmail)
	assert.Equal(t, "123456", gotCode)
}

// An older code issued before a resend stays valid: the lookup keys on
// (email, code, purpose), not on recency alone.
func TestOTPEngine_VerifyOlderCodeStillAccepted(t *testing.T) {
	older := outstandingCode("111111")
	newer := outstandingCode("222222")
	newer.ID = 2
	newer.CreatedAt = newer.CreatedAt.Add(3 * time.Minute)

	repo := &fakeOTPRepository{
		GetLatestMatchingFunc: func(ctx context.Context, email, submitted string, purpose account.OTPPurpose) (*account.OTPCode, error) {
			if submitted == older.Code {
				return older, nil
			}
			return nil, nil
		},
		GetLatestOutstandingFunc: func(ctx context.Context, email string, purpose account.OTPPurpose) (*account.OTPCode, error) {
			return newer, nil
		},
	}
	var consumed uint
	repo.MarkUsedFunc = func(ctx context.Context, id uint) (bool, error) {
		consumed = id
		return true, nil
	}
	attemptsBurned := false
	repo.IncrementAttemptsFunc = func(ctx context.Context, id uint) error {
		attemptsBurned = true
		return nil
	}
	engine := newEngine(repo, &fakeSender{})

	got, err := engine.Verify(context.Background(), "user@example.com", "111111", account.OTPPurposeLogin)

	require.NoError(t, err)
	assert.Equal(t, older.ID, got.ID)
	assert.Equal(t, older.ID, consumed)
	assert.False(t, attemptsBurned)
}

func TestOTPEngine_VerifyMismatchBurnsAttemptOnNewestCode(t *testing.T) {
	code := outstandingCode("123456")
	repo := &fakeOTPRepository{
		GetLatestOutstandingFunc: func(ctx context.Context, email string, purpose account.OTPPurpose) (*account.OTPCode, error) {
			return code, nil
		},
	}
	var incremented uint
	repo.IncrementAttemptsFunc = func(ctx context.Context, id uint) error {
		incremented = id
		return nil
	}
	marked := false
	repo.MarkUsedFunc = func(ctx context.Context, id uint) (bool, error) {
		marked = true
		return true, nil
	}
	engine := newEngine(repo, &fakeSender{})

	_, err := engine.Verify(context.Background(), "user@example.com", "654321", account.OTPPurposeLogin)

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeCodeInvalid, errors.GetAppError(err).Type)
	assert.Equal(t, code.ID, incremented)
	assert.False(t, marked)
}

func TestOTPEngine_VerifyNoOutstandingCode(t *testing.T) {
	engine := newEngine(&fakeOTPRepository{}, &fakeSender{})

	_, err := engine.Verify(context.Background(), "user@example.com", "123456", account.OTPPurposeLogin)

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeCodeInvalid, errors.GetAppError(err).Type)
}

func TestOTPEngine_VerifyAttemptCapExhaustsCode(t *testing.T) {
	code := outstandingCode("123456")
	code.Attempts = account.MaxOTPAttempts
	repo := &fakeOTPRepository{
		GetLatestMatchingFunc: func(ctx context.Context, email, submitted string, purpose account.OTPPurpose) (*account.OTPCode, error) {
			return code, nil
		},
	}
	engine := newEngine(repo, &fakeSender{})

	// Even the correct value fails once the attempt cap is reached.
	_, err := engine.Verify(context.Background(), "user@example.com", "123456", account.OTPPurposeLogin)

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeCodeInvalid, errors.GetAppError(err).Type)
}

func TestOTPEngine_VerifyExpiredCode(t *testing.T) {
	code := outstandingCode("123456")
	code.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	repo := &fakeOTPRepository{
		GetLatestMatchingFunc: func(ctx context.Context, email, submitted string, purpose account.OTPPurpose) (*account.OTPCode, error) {
			return code, nil
		},
	}
	engine := newEngine(repo, &fakeSender{})

	_, err := engine.Verify(context.Background(), "user@example.com", "123456", account.OTPPurposeLogin)

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeCodeInvalid, errors.GetAppError(err).Type)
}

// At-most-once: when the conditional flip reports no change, a concurrent
// verification already consumed the code and this caller fails.
func TestOTPEngine_VerifyLostRaceFails(t *testing.T) {
	code := outstandingCode("123456")
	repo := &fakeOTPRepository{
		GetLatestMatchingFunc: func(ctx context.Context, email, submitted string, purpose account.OTPPurpose) (*account.OTPCode, error) {
			return code, nil
		},
		MarkUsedFunc: func(ctx context.Context, id uint) (bool, error) {
			return false, nil
		},
	}
	engine := newEngine(repo, &fakeSender{})

	_, err := engine.Verify(context.Background(), "user@example.com", "123456", account.OTPPurposeLogin)

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeCodeInvalid, errors.GetAppError(err).Type)
}

func TestOTPEngine_VerifyUsedCodeCannotBeReplayed(t *testing.T) {
	code := outstandingCode("123456")
	code.Used = true
	repo := &fakeOTPRepository{
		GetLatestMatchingFunc: func(ctx context.Context, email, submitted string, purpose account.OTPPurpose) (*account.OTPCode, error) {
			return code, nil
		},
	}
	engine := newEngine(repo, &fakeSender{})

	_, err := engine.Verify(context.Background(), "user@example.com", "123456", account.OTPPurposeLogin)

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeCodeInvalid, errors.GetAppError(err).Type)
}
