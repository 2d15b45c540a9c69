package sol

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Client is a rate-limited wrapper around a single Solana RPC endpoint.
// Public RPC providers throttle aggressively, so every request goes through
// the limiter before it leaves the process.
type Client struct {
	endpoint string
	rpc      *rpc.Client
	limiter  *rate.Limiter
	log      *logrus.Entry
}

// NewClient creates a client for the given endpoint, capped at
// reqLimitPerSecond requests per second.
func NewClient(endpoint string, reqLimitPerSecond int) *Client {
	if reqLimitPerSecond <= 0 {
		reqLimitPerSecond = 10
	}
	return &Client{
		endpoint: endpoint,
		rpc:      rpc.New(endpoint),
		limiter:  rate.NewLimiter(rate.Limit(reqLimitPerSecond), reqLimitPerSecond),
		log:      logrus.WithField("component", "sol.client"),
	}
}

// Endpoint returns the RPC URL this client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// GetAccountData fetches the raw data bytes of a single account.
func (c *Client) GetAccountData(ctx context.Context, account solana.PublicKey) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	result, err := c.rpc.GetAccountInfo(ctx, account)
	if err != nil {
		return nil, errors.Wrapf(err, "get account info for %s", account)
	}
	if result.Value == nil {
		return nil, errors.Errorf("account %s not found", account)
	}
	return result.Value.Data.GetBinary(), nil
}

// GetMultipleAccounts fetches several accounts in one request. Entries in
// the result are nil for accounts that do not exist.
func (c *Client) GetMultipleAccounts(ctx context.Context, accounts ...solana.PublicKey) (*rpc.GetMultipleAccountsResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	result, err := c.rpc.GetMultipleAccounts(ctx, accounts...)
	if err != nil {
		return nil, errors.Wrap(err, "get multiple accounts")
	}
	return result, nil
}

// GetProgramAccountsWithOpts lists the accounts owned by a program, with
// optional server-side filters.
func (c *Client) GetProgramAccountsWithOpts(ctx context.Context, program solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	result, err := c.rpc.GetProgramAccountsWithOpts(ctx, program, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "get program accounts for %s", program)
	}
	c.log.WithFields(logrus.Fields{
		"program":  program.String(),
		"accounts": len(result),
	}).Debug("fetched program accounts")
	return result, nil
}
