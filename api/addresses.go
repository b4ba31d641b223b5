package api

import (
	"context"
	"net/url"
	"strconv"
)

// GetAddressEndpoint fetches a single address.
type GetAddressEndpoint struct {
	addr  string
	names *bool
}

// GetAddress creates an endpoint to fetch information about addr
func GetAddress(addr string) GetAddressEndpoint {
	return GetAddressEndpoint{addr: addr}
}

// FetchNames sets the fetchNames query parameter.
func (e GetAddressEndpoint) FetchNames(fetch bool) GetAddressEndpoint {
	e.names = &fetch
	return e
}

// Get fetches the address. A missing address is reported as a *KristError
// with code "address_not_found".
func (e GetAddressEndpoint) Get(ctx context.Context, c *Client) (*Address, error) {
	var query url.Values
	if e.names != nil {
		query = url.Values{"fetchNames": {strconv.FormatBool(*e.names)}}
	}

	return get[*Address, addressResponse](ctx, c, addressesPath+"/"+e.addr, query)
}

// ListAddressesEndpoint fetches a page of all known addresses.
type ListAddressesEndpoint struct {
	page Paginator
}

// ListAddresses creates an endpoint to list all known addresses.
func ListAddresses() ListAddressesEndpoint {
	return ListAddressesEndpoint{page: NewPaginator()}
}

// Limit sets the maximum number of addresses returned. Values of 1000 or more
// are ignored.
func (e ListAddressesEndpoint) Limit(limit uint) ListAddressesEndpoint {
	e.page.SetLimit(limit)
	return e
}

// Offset sets how many addresses to skip.
func (e ListAddressesEndpoint) Offset(offset uint) ListAddressesEndpoint {
	e.page.SetOffset(offset)
	return e
}

// Get fetches one page of addresses.
func (e ListAddressesEndpoint) Get(ctx context.Context, c *Client) ([]Address, error) {
	return get[[]Address, addressListResponse](ctx, c, addressesPath, pairsQuery(e.page.Pairs()))
}

// ListRichestEndpoint fetches a page of addresses ordered by balance.
type ListRichestEndpoint struct {
	page Paginator
}

// ListRichest creates an endpoint to list addresses by descending balance.
func ListRichest() ListRichestEndpoint {
	return ListRichestEndpoint{page: NewPaginator()}
}

// Limit sets the maximum number of addresses returned. Values of 1000 or more
// are ignored.
func (e ListRichestEndpoint) Limit(limit uint) ListRichestEndpoint {
	e.page.SetLimit(limit)
	return e
}

// Offset sets how many addresses to skip.
func (e ListRichestEndpoint) Offset(offset uint) ListRichestEndpoint {
	e.page.SetOffset(offset)
	return e
}

// Get fetches one page of the richest addresses.
func (e ListRichestEndpoint) Get(ctx context.Context, c *Client) ([]Address, error) {
	return get[[]Address, addressListResponse](ctx, c, richPath, pairsQuery(e.page.Pairs()))
}

// AddressTransactionsEndpoint fetches the transaction history of an address,
// newest first.
type AddressTransactionsEndpoint struct {
	addr         string
	page         Paginator
	excludeMined bool
}

// AddressTransactions creates an endpoint to fetch the history of addr.
func AddressTransactions(addr string) AddressTransactionsEndpoint {
	return AddressTransactionsEndpoint{addr: addr, page: NewPaginator()}
}

// Limit sets the maximum number of transactions returned. Values of 1000 or
// more are ignored.
func (e AddressTransactionsEndpoint) Limit(limit uint) AddressTransactionsEndpoint {
	e.page.SetLimit(limit)
	return e
}

// Offset sets how many transactions to skip.
func (e AddressTransactionsEndpoint) Offset(offset uint) AddressTransactionsEndpoint {
	e.page.SetOffset(offset)
	return e
}

// ExcludeMined drops mined transactions from the history.
func (e AddressTransactionsEndpoint) ExcludeMined(exclude bool) AddressTransactionsEndpoint {
	e.excludeMined = exclude
	return e
}

// Page returns the current pagination settings.
func (e AddressTransactionsEndpoint) Page() Paginator {
	return e.page
}

// Get fetches one page of transactions. excludeMined is always sent.
func (e AddressTransactionsEndpoint) Get(ctx context.Context, c *Client) ([]Transaction, error) {
	query := url.Values{}
	e.page.AddTo(query)
	query.Set("excludeMined", strconv.FormatBool(e.excludeMined))

	return get[[]Transaction, transactionListResponse](ctx, c, addressesPath+"/"+e.addr+"/transactions", query)
}
