// Package api is a typed client for the Kromer2 Krist-compatible web API.
//
// Files:
//
//	config.go       - node URL, endpoint paths and pagination constants
//	types.go        - Address, Transaction, Motd records
//	decode.go       - field lookup with aliases and required members
//	envelope.go     - success-or-error response envelopes
//	paginator.go    - limit/offset handling
//	base.go         - Client, NewClient and the request chokepoint
//	addresses.go    - address lookup, listing, richest and history endpoints
//	misc.go         - message of the day
//
// Usage:
//
//	client, err := api.NewClient(api.DefaultURL, nil)
//	addr, err := api.GetAddress("kfartoolong").FetchNames(true).Get(ctx, client)
//	rich, err := api.ListRichest().Limit(10).Get(ctx, client)
//	motd, err := api.GetMotd().Get(ctx, client)
package api
