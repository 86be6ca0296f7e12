package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/maschat/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestReconcileJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewMockReconciler(ctrl)
	job := ReconcileJob(r)

	r.EXPECT().Reconcile(gomock.Any()).Return(services.ReconcileResult{Checked: 3, Drifted: 1}, nil)
	assert.NoError(t, job(context.Background()))

	r.EXPECT().Reconcile(gomock.Any()).Return(services.ReconcileResult{}, errors.New("list wallets"))
	assert.EqualError(t, job(context.Background()), "list wallets")
}

func TestDispatchJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := NewMockDispatcher(ctrl)
	job := DispatchJob(d)

	d.EXPECT().Dispatch(gomock.Any()).Return(services.DispatchResult{Submitted: 2}, nil)
	assert.NoError(t, job(context.Background()))

	d.EXPECT().Dispatch(gomock.Any()).Return(services.DispatchResult{}, nil)
	assert.NoError(t, job(context.Background()))

	d.EXPECT().Dispatch(gomock.Any()).Return(services.DispatchResult{}, context.DeadlineExceeded)
	assert.ErrorIs(t, job(context.Background()), context.DeadlineExceeded)
}

func TestWithdrawalJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := NewMockWithdrawalProcessor(ctrl)
	job := WithdrawalJob(p, 25)

	p.EXPECT().ProcessPending(gomock.Any(), 25).Return(4, nil)
	assert.NoError(t, job(context.Background()))

	p.EXPECT().ProcessPending(gomock.Any(), 25).Return(1, errors.New("claim failed"))
	assert.EqualError(t, job(context.Background()), "claim failed")
}

func TestExpiryJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := NewMockRequestExpirer(ctrl)
	job := ExpiryJob(e)

	e.EXPECT().ExpireOverdue(gomock.Any()).Return(int64(2), nil)
	assert.NoError(t, job(context.Background()))

	e.EXPECT().ExpireOverdue(gomock.Any()).Return(int64(0), errors.New("db"))
	assert.Error(t, job(context.Background()))
}

func TestSweepJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chat := NewMockLimiterSweeper(ctrl)
	http := NewMockLimiterSweeper(ctrl)
	chat.EXPECT().Cleanup(10*time.Minute).Return(3)
	http.EXPECT().Cleanup(10*time.Minute).Return(0)

	assert.NoError(t, SweepJob(10*time.Minute, chat, http)(context.Background()))
}
