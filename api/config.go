package api

// DefaultURL is the public Kromer2 node.
const DefaultURL = "https://kromer.reconnected.cc"

// DefaultTimeout is the transport timeout in seconds.
const DefaultTimeout = 30

// endpoint paths
const (
	addressesPath = "/api/krist/addresses"
	richPath      = "/api/krist/addresses/rich"
	motdPath      = "/api/krist/motd"
)

// pagination bounds
const (
	DefaultLimit = 50
	MaxLimit     = 1000
)
