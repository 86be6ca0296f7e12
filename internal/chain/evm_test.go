package chain

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend implements the parts of bind.ContractBackend the ledger uses.
type fakeBackend struct {
	bind.ContractBackend

	code        []byte
	callOutput  []byte
	estimateErr error
	nonce       uint64
	sent        []*types.Transaction

	// sendErrs are returned by successive SendTransaction calls. With
	// acceptFailed the transaction still reaches the pool, as after a
	// timeout on the response.
	sendErrs     []error
	acceptFailed bool
	attempted    []*types.Transaction
	receipts     map[common.Hash]*types.Receipt
}

func (f *fakeBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return f.code, nil
}

func (f *fakeBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return f.callOutput, nil
}

func (f *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(1), BaseFee: big.NewInt(1_000_000_000)}, nil
}

func (f *fakeBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return f.nonce, nil
}

func (f *fakeBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	if f.estimateErr != nil {
		return 0, f.estimateErr
	}
	return 60_000, nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.attempted = append(f.attempted, tx)
	if len(f.sendErrs) > 0 {
		err := f.sendErrs[0]
		f.sendErrs = f.sendErrs[1:]
		if err != nil {
			if f.acceptFailed && tx.Nonce() == f.nonce {
				f.nonce++
			}
			return err
		}
	}
	f.sent = append(f.sent, tx)
	f.nonce++
	return nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if r, ok := f.receipts[txHash]; ok {
		return r, nil
	}
	return nil, ethereum.NotFound
}

func newTestKey(t *testing.T) (*ecdsa.PrivateKey, string) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key, hex.EncodeToString(crypto.FromECDSA(key))
}

func newTestEVM(t *testing.T, backend *fakeBackend, token, staking string) (*EVM, common.Address) {
	t.Helper()
	key, hexKey := newTestKey(t)
	e, err := newEVM(backend, EVMConfig{ChainID: 137, PrivateKey: hexKey, TokenAddress: token, StakingAddress: staking})
	require.NoError(t, err)
	return e, crypto.PubkeyToAddress(key.PublicKey)
}

func methodID(t *testing.T, abiJSON, name string) []byte {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	require.NoError(t, err)
	return parsed.Methods[name].ID
}

func TestNewEVM_InvalidKey(t *testing.T) {
	_, err := newEVM(&fakeBackend{}, EVMConfig{ChainID: 137, PrivateKey: "zz"})
	assert.Error(t, err)
}

func TestNewEVM_DialsLazily(t *testing.T) {
	_, hexKey := newTestKey(t)
	e, err := NewEVM(context.Background(), EVMConfig{RPCURL: "http://127.0.0.1:1", ChainID: 137, PrivateKey: "0x" + hexKey})
	require.NoError(t, err)
	defer e.Close()

	_, err = e.BalanceOf(context.Background(), addrA)
	assert.ErrorIs(t, err, ErrNotDeployed)
}

func TestEVM_NotDeployed(t *testing.T) {
	zero := "0x0000000000000000000000000000000000000000"
	e, _ := newTestEVM(t, &fakeBackend{}, zero, zero)
	ctx := context.Background()

	_, err := e.Transfer(ctx, addrA, addrB, big.NewInt(1))
	assert.ErrorIs(t, err, ErrNotDeployed)
	_, err = e.BalanceOf(ctx, addrA)
	assert.ErrorIs(t, err, ErrNotDeployed)
	_, err = e.Stake(ctx, addrA, big.NewInt(1), 3)
	assert.ErrorIs(t, err, ErrNotDeployed)
	_, err = e.Unstake(ctx, addrA, big.NewInt(1))
	assert.ErrorIs(t, err, ErrNotDeployed)
}

func TestEVM_RegisterUser(t *testing.T) {
	ctx := context.Background()

	e, _ := newTestEVM(t, &fakeBackend{}, addrA, addrB)
	ok, err := e.RegisterUser(ctx, addrB)
	require.NoError(t, err)
	assert.True(t, ok)

	withCode, _ := newTestEVM(t, &fakeBackend{code: []byte{0x60, 0x80}}, addrA, addrB)
	ok, err = withCode.RegisterUser(ctx, addrB)
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.False(t, ok)
}

func TestEVM_BalanceOf(t *testing.T) {
	want, _ := new(big.Int).SetString("2500000000000000000000", 10)
	backend := &fakeBackend{callOutput: common.LeftPadBytes(want.Bytes(), 32)}
	e, _ := newTestEVM(t, backend, addrA, addrB)

	got, err := e.BalanceOf(context.Background(), addrB)
	require.NoError(t, err)
	assert.Equal(t, 0, want.Cmp(got))
}

func TestEVM_Transfer_SelectsMethod(t *testing.T) {
	backend := &fakeBackend{}
	e, signer := newTestEVM(t, backend, addrA, addrB)
	ctx := context.Background()

	hash, err := e.Transfer(ctx, signer.Hex(), addrB, big.NewInt(10))
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)
	assert.Equal(t, backend.sent[0].Hash().Hex(), hash)
	assert.True(t, bytes.HasPrefix(backend.sent[0].Data(), methodID(t, tokenABIJSON, "transfer")))

	_, err = e.Transfer(ctx, addrB, addrA, big.NewInt(10))
	require.NoError(t, err)
	require.Len(t, backend.sent, 2)
	assert.True(t, bytes.HasPrefix(backend.sent[1].Data(), methodID(t, tokenABIJSON, "transferFrom")))
	assert.Equal(t, uint64(1), backend.sent[1].Nonce())
}

func TestEVM_Stake_Unstake(t *testing.T) {
	backend := &fakeBackend{}
	e, _ := newTestEVM(t, backend, addrA, addrB)
	ctx := context.Background()

	ok, err := e.Stake(ctx, addrA, big.NewInt(10), 12)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Unstake(ctx, addrA, big.NewInt(10))
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, backend.sent, 2)
	assert.Equal(t, common.HexToAddress(addrB), *backend.sent[0].To())
	assert.True(t, bytes.HasPrefix(backend.sent[0].Data(), methodID(t, stakingABIJSON, "stakeFor")))
	assert.True(t, bytes.HasPrefix(backend.sent[1].Data(), methodID(t, stakingABIJSON, "unstakeFor")))
}

func TestEVM_Transfer_Reverted(t *testing.T) {
	backend := &fakeBackend{estimateErr: errors.New("execution reverted: ERC20: insufficient allowance")}
	e, _ := newTestEVM(t, backend, addrA, addrB)

	_, err := e.Transfer(context.Background(), addrB, addrA, big.NewInt(10))
	assert.ErrorIs(t, err, ErrReverted)
	assert.True(t, IsPermanent(err))
	assert.Empty(t, backend.sent)
}

func TestEVM_Transfer_TransientError(t *testing.T) {
	backend := &fakeBackend{estimateErr: errors.New("502 bad gateway")}
	e, _ := newTestEVM(t, backend, addrA, addrB)

	_, err := e.Transfer(context.Background(), addrB, addrA, big.NewInt(10))
	assert.Error(t, err)
	assert.False(t, IsPermanent(err))
}

func TestEVM_Transfer_RetryReusesPinnedNonce(t *testing.T) {
	backend := &fakeBackend{
		sendErrs:     []error{context.DeadlineExceeded, errors.New("already known")},
		acceptFailed: true,
	}
	e, signer := newTestEVM(t, backend, addrA, addrB)

	var signed []uint64
	sub := NewSubmission(nil, "", func(nonce uint64, hash string) error {
		signed = append(signed, nonce)
		return nil
	})
	ctx := WithSubmission(context.Background(), sub)

	_, err := e.Transfer(ctx, signer.Hex(), addrB, big.NewInt(10))
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, IsPermanent(err))

	hash, err := e.Transfer(ctx, signer.Hex(), addrB, big.NewInt(10))
	require.NoError(t, err)

	require.Len(t, backend.attempted, 2)
	assert.Equal(t, backend.attempted[0].Hash().Hex(), hash)
	assert.Equal(t, backend.attempted[0].Nonce(), backend.attempted[1].Nonce())
	assert.Equal(t, []uint64{0, 0}, signed)
	assert.Equal(t, uint64(1), backend.nonce, "only one transfer reached the pool")
}

func TestEVM_Transfer_PinnedNonceAlreadyMined(t *testing.T) {
	mined := common.HexToHash("0xabababababababababababababababababababababababababababababababab")
	backend := &fakeBackend{
		nonce:    5,
		receipts: map[common.Hash]*types.Receipt{mined: {Status: types.ReceiptStatusSuccessful}},
	}
	e, signer := newTestEVM(t, backend, addrA, addrB)

	nonce := uint64(4)
	ctx := WithSubmission(context.Background(), NewSubmission(&nonce, mined.Hex(), nil))

	hash, err := e.Transfer(ctx, signer.Hex(), addrB, big.NewInt(10))
	require.NoError(t, err)
	assert.Equal(t, mined.Hex(), hash)
	assert.Empty(t, backend.attempted)
}

func TestEVM_Transfer_PinnedNonceMinedAndReverted(t *testing.T) {
	failed := common.HexToHash("0xcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcd")
	backend := &fakeBackend{receipts: map[common.Hash]*types.Receipt{failed: {Status: types.ReceiptStatusFailed}}}
	e, signer := newTestEVM(t, backend, addrA, addrB)

	nonce := uint64(0)
	ctx := WithSubmission(context.Background(), NewSubmission(&nonce, failed.Hex(), nil))

	_, err := e.Transfer(ctx, signer.Hex(), addrB, big.NewInt(10))
	assert.ErrorIs(t, err, ErrReverted)
	assert.Empty(t, backend.attempted)
}

func TestEVM_Transfer_ReplacementUnderpricedKeepsPendingHash(t *testing.T) {
	pending := "0xefefefefefefefefefefefefefefefefefefefefefefefefefefefefefefefef"
	backend := &fakeBackend{sendErrs: []error{errors.New("replacement transaction underpriced")}}
	e, signer := newTestEVM(t, backend, addrA, addrB)

	var stored []string
	nonce := uint64(0)
	sub := NewSubmission(&nonce, pending, func(_ uint64, hash string) error {
		stored = append(stored, hash)
		return nil
	})

	hash, err := e.Transfer(WithSubmission(context.Background(), sub), signer.Hex(), addrB, big.NewInt(10))
	require.NoError(t, err)
	assert.Equal(t, pending, hash)
	require.Len(t, stored, 2)
	assert.Equal(t, pending, stored[1])
	assert.Equal(t, []string{pending}, sub.Hashes())
}

func TestEVM_Transfer_NonceConsumedElsewhere(t *testing.T) {
	backend := &fakeBackend{nonce: 9, sendErrs: []error{errors.New("nonce too low: next nonce 9, tx nonce 3")}}
	e, signer := newTestEVM(t, backend, addrA, addrB)

	nonce := uint64(3)
	sub := NewSubmission(&nonce, "", nil)

	_, err := e.Transfer(WithSubmission(context.Background(), sub), signer.Hex(), addrB, big.NewInt(10))
	assert.ErrorIs(t, err, ErrNonceConsumed)
	assert.False(t, IsPermanent(err))
	_, pinned := sub.Nonce()
	assert.False(t, pinned)
}

func TestEVM_Transfer_RecordFailureBlocksBroadcast(t *testing.T) {
	backend := &fakeBackend{}
	e, signer := newTestEVM(t, backend, addrA, addrB)

	sub := NewSubmission(nil, "", func(uint64, string) error { return errors.New("db down") })
	_, err := e.Transfer(WithSubmission(context.Background(), sub), signer.Hex(), addrB, big.NewInt(10))
	assert.ErrorContains(t, err, "db down")
	assert.Empty(t, backend.attempted)
}
