package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sbilibin2017/maschat/internal/logger"
)

const tokenABIJSON = `[
	{"type":"function","name":"balanceOf","stateMutability":"view",
	 "inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable",
	 "inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"transferFrom","stateMutability":"nonpayable",
	 "inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}
]`

const stakingABIJSON = `[
	{"type":"function","name":"stakeFor","stateMutability":"nonpayable",
	 "inputs":[{"name":"user","type":"address"},{"name":"amount","type":"uint256"},{"name":"periodMonths","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"unstakeFor","stateMutability":"nonpayable",
	 "inputs":[{"name":"user","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}
]`

// EVMConfig configures the on-chain ledger.
type EVMConfig struct {
	RPCURL         string
	ChainID        int64
	PrivateKey     string // hex, with or without 0x
	TokenAddress   string
	StakingAddress string
}

// receiptReader is implemented by ethclient.Client.
type receiptReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// EVM is a Ledger backed by the MassCoin ERC-20 and staking contracts on an
// EVM chain (Polygon). Transactions are signed with the platform key and
// submitted one at a time so that nonces never collide. A Submission in the
// context pins the nonce across retries of one write.
type EVM struct {
	backend bind.ContractBackend
	closer  func()
	auth    *bind.TransactOpts
	signer  common.Address

	tokenAddr   common.Address
	stakingAddr common.Address
	token       *bind.BoundContract
	staking     *bind.BoundContract

	mu sync.Mutex // serializes transaction submission
}

// NewEVM dials the RPC endpoint and prepares the contract bindings.
func NewEVM(ctx context.Context, cfg EVMConfig) (*EVM, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}

	e, err := newEVM(client, cfg)
	if err != nil {
		client.Close()
		return nil, err
	}
	e.closer = client.Close
	return e, nil
}

func newEVM(backend bind.ContractBackend, cfg EVMConfig) (*EVM, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(cfg.ChainID))
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}

	tokenABI, err := abi.JSON(strings.NewReader(tokenABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse token abi: %w", err)
	}
	stakingABI, err := abi.JSON(strings.NewReader(stakingABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse staking abi: %w", err)
	}

	tokenAddr := common.HexToAddress(cfg.TokenAddress)
	stakingAddr := common.HexToAddress(cfg.StakingAddress)

	return &EVM{
		backend:     backend,
		auth:        auth,
		signer:      crypto.PubkeyToAddress(key.PublicKey),
		tokenAddr:   tokenAddr,
		stakingAddr: stakingAddr,
		token:       bind.NewBoundContract(tokenAddr, tokenABI, backend, backend, backend),
		staking:     bind.NewBoundContract(stakingAddr, stakingABI, backend, backend, backend),
	}, nil
}

// Signer returns the platform address that signs transactions.
func (e *EVM) Signer() string {
	return e.signer.Hex()
}

// Close releases the RPC connection.
func (e *EVM) Close() {
	if e.closer != nil {
		e.closer()
	}
}

// RegisterUser accepts externally owned accounts. Contract addresses are
// rejected because they cannot sign for their tokens.
func (e *EVM) RegisterUser(ctx context.Context, address string) (bool, error) {
	addr, err := ValidateAddress(address)
	if err != nil {
		return false, err
	}

	code, err := e.backend.CodeAt(ctx, addr, nil)
	if err != nil {
		return false, fmt.Errorf("code at %s: %w", addr.Hex(), err)
	}
	if len(code) > 0 {
		return false, fmt.Errorf("%w: %s is a contract", ErrInvalidAddress, addr.Hex())
	}
	return true, nil
}

// Transfer moves tokens. When from is the platform signer a plain
// transfer is sent, otherwise transferFrom against a prior allowance.
func (e *EVM) Transfer(ctx context.Context, from, to string, amount *big.Int) (string, error) {
	if e.tokenAddr == (common.Address{}) {
		return "", ErrNotDeployed
	}
	fromAddr, err := ValidateAddress(from)
	if err != nil {
		return "", err
	}
	toAddr, err := ValidateAddress(to)
	if err != nil {
		return "", err
	}
	if err := validateAmount(amount); err != nil {
		return "", err
	}

	if fromAddr == e.signer {
		return e.transact(ctx, e.token, "transfer", toAddr, amount)
	}
	return e.transact(ctx, e.token, "transferFrom", fromAddr, toAddr, amount)
}

// BalanceOf returns the token balance of address.
func (e *EVM) BalanceOf(ctx context.Context, address string) (*big.Int, error) {
	if e.tokenAddr == (common.Address{}) {
		return nil, ErrNotDeployed
	}
	addr, err := ValidateAddress(address)
	if err != nil {
		return nil, err
	}

	var out []interface{}
	if err := e.token.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", addr); err != nil {
		return nil, classify(err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("balanceOf: empty result")
	}
	balance, ok := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	if !ok {
		return nil, fmt.Errorf("balanceOf: unexpected result %T", out[0])
	}
	return balance, nil
}

// Stake locks amount for address for periodMonths.
func (e *EVM) Stake(ctx context.Context, address string, amount *big.Int, periodMonths int) (bool, error) {
	if e.stakingAddr == (common.Address{}) {
		return false, ErrNotDeployed
	}
	addr, err := ValidateAddress(address)
	if err != nil {
		return false, err
	}
	if err := validateAmount(amount); err != nil {
		return false, err
	}

	if _, err := e.transact(ctx, e.staking, "stakeFor", addr, amount, big.NewInt(int64(periodMonths))); err != nil {
		return false, err
	}
	return true, nil
}

// Unstake releases amount staked by address.
func (e *EVM) Unstake(ctx context.Context, address string, amount *big.Int) (bool, error) {
	if e.stakingAddr == (common.Address{}) {
		return false, ErrNotDeployed
	}
	addr, err := ValidateAddress(address)
	if err != nil {
		return false, err
	}
	if err := validateAmount(amount); err != nil {
		return false, err
	}

	if _, err := e.transact(ctx, e.staking, "unstakeFor", addr, amount); err != nil {
		return false, err
	}
	return true, nil
}

func (e *EVM) transact(ctx context.Context, contract *bind.BoundContract, method string, params ...interface{}) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sub := SubmissionFromContext(ctx)
	if sub == nil {
		sub = NewSubmission(nil, "", nil)
	}

	if hash, mined, err := e.landed(ctx, sub); err != nil || mined {
		return hash, err
	}

	opts := *e.auth
	opts.Context = ctx
	opts.NoSend = true
	if nonce, ok := sub.Nonce(); ok {
		opts.Nonce = new(big.Int).SetUint64(nonce)
	}

	tx, err := contract.Transact(&opts, method, params...)
	if err != nil {
		logger.Log.Errorw("chain transaction failed", "method", method, "error", err)
		return "", classify(err)
	}

	hash := tx.Hash().Hex()
	if err := sub.record(tx.Nonce(), hash); err != nil {
		return "", fmt.Errorf("record submission %s: %w", hash, err)
	}

	if err := e.backend.SendTransaction(ctx, tx); err != nil {
		return e.resolveSend(ctx, sub, method, tx, err)
	}

	logger.Log.Infow("chain transaction submitted", "method", method, "tx_hash", hash, "nonce", tx.Nonce())
	return hash, nil
}

// resolveSend interprets a broadcast error for a transaction signed with
// the pinned nonce.
func (e *EVM) resolveSend(ctx context.Context, sub *Submission, method string, tx *types.Transaction, sendErr error) (string, error) {
	hash := tx.Hash().Hex()
	msg := strings.ToLower(sendErr.Error())

	switch {
	case strings.Contains(msg, "already known"), strings.Contains(msg, "known transaction"):
		logger.Log.Infow("chain transaction already in pool", "method", method, "tx_hash", hash, "nonce", tx.Nonce())
		return hash, nil

	case strings.Contains(msg, "replacement transaction underpriced"):
		prev, err := sub.restore(hash)
		if err != nil {
			return "", fmt.Errorf("record submission %s: %w", prev, err)
		}
		if prev != "" {
			logger.Log.Infow("chain transaction still pending", "method", method, "tx_hash", prev, "nonce", tx.Nonce())
			return prev, nil
		}

	case strings.Contains(msg, "nonce too low"):
		if prev, mined, err := e.landed(ctx, sub); err == nil && mined {
			return prev, nil
		}
		logger.Log.Warnw("pinned nonce consumed elsewhere", "method", method, "nonce", tx.Nonce())
		sub.reset()
		return "", fmt.Errorf("%w: %v", ErrNonceConsumed, sendErr)
	}

	logger.Log.Errorw("chain transaction failed", "method", method, "tx_hash", hash, "error", sendErr)
	return "", classify(sendErr)
}

// landed reports whether a transaction signed earlier for the pinned nonce
// is already mined.
func (e *EVM) landed(ctx context.Context, sub *Submission) (string, bool, error) {
	reader, ok := e.backend.(receiptReader)
	if !ok {
		return "", false, nil
	}
	for _, h := range sub.Hashes() {
		receipt, err := reader.TransactionReceipt(ctx, common.HexToHash(h))
		if errors.Is(err, ethereum.NotFound) {
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("receipt %s: %w", h, err)
		}
		if receipt.Status != types.ReceiptStatusSuccessful {
			return h, true, fmt.Errorf("%w: transaction %s failed", ErrReverted, h)
		}
		return h, true, nil
	}
	return "", false, nil
}

// classify maps contract rejections to ErrReverted; everything else is
// treated as transient by callers.
func classify(err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "execution reverted") {
		return fmt.Errorf("%w: %v", ErrReverted, err)
	}
	return err
}
