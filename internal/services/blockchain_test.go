package services

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/maschat/internal/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddr = "0x1111111111111111111111111111111111111111"

func newTestBlockchain(t *testing.T, enabled bool) (*BlockchainService, *MockLedger, *MockLedger, *MockChainObserver) {
	ctrl := gomock.NewController(t)
	real := NewMockLedger(ctrl)
	sim := NewMockLedger(ctrl)
	obs := NewMockChainObserver(ctrl)
	svc := NewBlockchainService(real, sim, enabled, time.Second, obs)
	svc.initialInterval = time.Millisecond
	return svc, real, sim, obs
}

func TestBlockchainService_Switch(t *testing.T) {
	svc, real, sim, obs := newTestBlockchain(t, false)
	ctx := context.Background()
	assert.False(t, svc.IsEnabled())

	sim.EXPECT().BalanceOf(ctx, testAddr).Return(big.NewInt(1), nil)
	obs.EXPECT().ObserveChainCall("balance", "ok")
	got, err := svc.GetUserBalance(ctx, testAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Int64())

	svc.Enable()
	assert.True(t, svc.IsEnabled())
	real.EXPECT().BalanceOf(ctx, testAddr).Return(big.NewInt(2), nil)
	obs.EXPECT().ObserveChainCall("balance", "ok")
	got, err = svc.GetUserBalance(ctx, testAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Int64())

	svc.Disable()
	assert.False(t, svc.IsEnabled())
}

func TestBlockchainService_RetriesTransientErrors(t *testing.T) {
	svc, real, _, obs := newTestBlockchain(t, true)
	ctx := context.Background()
	amount := big.NewInt(10)

	gomock.InOrder(
		real.EXPECT().Transfer(gomock.Any(), testAddr, testAddr, amount).Return("", errors.New("connection reset")),
		real.EXPECT().Transfer(gomock.Any(), testAddr, testAddr, amount).Return("", errors.New("502 bad gateway")),
		real.EXPECT().Transfer(gomock.Any(), testAddr, testAddr, amount).Return("0xabc", nil),
	)
	obs.EXPECT().ObserveChainCall("transfer", "ok")

	hash, err := svc.TransferTokens(ctx, testAddr, testAddr, amount)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", hash)
}

func TestBlockchainService_RetriesShareOneSubmission(t *testing.T) {
	svc, real, _, obs := newTestBlockchain(t, true)
	amount := big.NewInt(10)

	var seen []*chain.Submission
	capture := func(ctx context.Context, _, _ string, _ *big.Int) {
		seen = append(seen, chain.SubmissionFromContext(ctx))
	}
	gomock.InOrder(
		real.EXPECT().Transfer(gomock.Any(), testAddr, testAddr, amount).Do(capture).Return("", context.DeadlineExceeded),
		real.EXPECT().Transfer(gomock.Any(), testAddr, testAddr, amount).Do(capture).Return("0xabc", nil),
	)
	obs.EXPECT().ObserveChainCall("transfer", "ok")

	_, err := svc.TransferTokens(context.Background(), testAddr, testAddr, amount)
	require.NoError(t, err)
	require.Len(t, seen, 2)
	require.NotNil(t, seen[0])
	assert.Same(t, seen[0], seen[1])
}

func TestBlockchainService_KeepsCallerSubmission(t *testing.T) {
	svc, real, _, obs := newTestBlockchain(t, true)
	nonce := uint64(7)
	sub := chain.NewSubmission(&nonce, "", nil)
	ctx := chain.WithSubmission(context.Background(), sub)

	real.EXPECT().Unstake(gomock.Any(), testAddr, big.NewInt(1)).DoAndReturn(func(ctx context.Context, _ string, _ *big.Int) (bool, error) {
		assert.Same(t, sub, chain.SubmissionFromContext(ctx))
		return true, nil
	})
	obs.EXPECT().ObserveChainCall("unstake", "ok")

	ok, err := svc.UnstakeTokens(ctx, testAddr, big.NewInt(1))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBlockchainService_PermanentErrorsAreNotRetried(t *testing.T) {
	svc, real, _, obs := newTestBlockchain(t, true)
	ctx := context.Background()

	real.EXPECT().Stake(gomock.Any(), testAddr, big.NewInt(5), 3).Return(false, chain.ErrReverted).Times(1)
	obs.EXPECT().ObserveChainCall("stake", "rejected")

	ok, err := svc.StakeTokens(ctx, testAddr, big.NewInt(5), 3)
	assert.ErrorIs(t, err, chain.ErrReverted)
	assert.False(t, ok)
}

func TestBlockchainService_GivesUpAfterMaxElapsed(t *testing.T) {
	svc, real, _, obs := newTestBlockchain(t, true)
	svc.maxElapsed = 20 * time.Millisecond
	ctx := context.Background()

	real.EXPECT().Unstake(gomock.Any(), testAddr, big.NewInt(1)).Return(false, errors.New("timeout")).MinTimes(1)
	obs.EXPECT().ObserveChainCall("unstake", "error")

	_, err := svc.UnstakeTokens(ctx, testAddr, big.NewInt(1))
	assert.EqualError(t, err, "timeout")
}

func TestBlockchainService_EnabledWithoutLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := NewMockChainObserver(ctrl)
	svc := NewBlockchainService(nil, NewMockLedger(ctrl), true, time.Second, obs)

	obs.EXPECT().ObserveChainCall("register", "not_deployed")
	ok, err := svc.RegisterUser(context.Background(), testAddr)
	assert.ErrorIs(t, err, chain.ErrNotDeployed)
	assert.False(t, ok)
}

func TestBlockchainService_WithSimulatedLedger(t *testing.T) {
	svc := NewBlockchainService(nil, chain.NewSimulated(), false, time.Second, nil)
	ctx := context.Background()

	ok, err := svc.RegisterUser(ctx, testAddr)
	require.NoError(t, err)
	assert.True(t, ok)

	hash, err := svc.TransferTokens(ctx, testAddr, "0x2222222222222222222222222222222222222222", big.NewInt(1))
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	_, err = svc.TransferTokens(ctx, testAddr, "nope", big.NewInt(1))
	assert.ErrorIs(t, err, chain.ErrInvalidAddress)
}
